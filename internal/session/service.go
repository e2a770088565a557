package session

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quiz-arena/internal/achievement"
	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/question"
	"github.com/saulo-duarte/quiz-arena/internal/score"
	"github.com/saulo-duarte/quiz-arena/internal/user"
)

const (
	DefaultQuestionsPerQuiz = 10
	MaxQuestionsPerQuiz     = 10
)

type QuestionSource interface {
	Sample(ctx context.Context, difficulty question.Difficulty, category string, limit int) ([]question.Question, error)
}

type ScoreRecorder interface {
	Record(ctx context.Context, r *score.Record) error
}

type StatsRecorder interface {
	RecordCompletion(ctx context.Context, c user.Completion) (*user.User, []achievement.ID, error)
}

type Options struct {
	QuestionsPerQuiz int
	// RecordEveryAnswer writes a score row after each answer, carrying the
	// running score and no elapsed time, instead of one row at completion.
	RecordEveryAnswer bool
	Now               func() time.Time
}

type Service interface {
	Start(ctx context.Context, req StartRequest) (*StartResult, error)
	SubmitAnswer(ctx context.Context, handle uuid.UUID, chosen int) (*AnswerResult, error)
	Current(ctx context.Context, handle uuid.UUID) (*Progress, error)
	Discard(ctx context.Context, handle uuid.UUID) error
}

type service struct {
	store     Store
	questions QuestionSource
	scores    ScoreRecorder
	users     StatsRecorder
	opts      Options
}

// NewService wires the engine. users may be nil, in which case player stats
// and achievements are not tracked.
func NewService(store Store, questions QuestionSource, scores ScoreRecorder, users StatsRecorder, opts Options) Service {
	switch {
	case opts.QuestionsPerQuiz <= 0:
		opts.QuestionsPerQuiz = DefaultQuestionsPerQuiz
	case opts.QuestionsPerQuiz > MaxQuestionsPerQuiz:
		opts.QuestionsPerQuiz = MaxQuestionsPerQuiz
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		store:     store,
		questions: questions,
		scores:    scores,
		users:     users,
		opts:      opts,
	}
}

func (s *service) now() time.Time { return s.opts.Now().UTC() }

func (s *service) Start(ctx context.Context, req StartRequest) (*StartResult, error) {
	log := config.WithContext(ctx)

	difficulty, err := question.ParseDifficulty(req.Difficulty, question.Easy)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "all"
	}
	username := user.NormalizeUsername(req.Username)

	questions, err := s.questions.Sample(ctx, difficulty, category, s.opts.QuestionsPerQuiz)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	state := &State{
		Handle:     uuid.New(),
		Username:   username,
		Category:   category,
		Difficulty: difficulty,
		Questions:  questions,
		Answers:    []Answer{},
		StartedAt:  s.now(),
	}
	if err := s.store.Save(ctx, state); err != nil {
		log.WithError(err).Error("Failed to save new quiz session")
		return nil, err
	}

	if req.Supersedes != uuid.Nil && req.Supersedes != state.Handle {
		if err := s.store.Delete(ctx, req.Supersedes); err != nil {
			log.WithError(err).Warn("Failed to drop superseded quiz session")
		}
	}

	log.WithFields(logrus.Fields{
		"session_id": state.Handle,
		"username":   username,
		"difficulty": difficulty,
		"category":   category,
		"questions":  len(questions),
	}).Info("Quiz started")

	return &StartResult{
		Handle:    state.Handle,
		Questions: question.PublicList(questions),
		Total:     len(questions),
	}, nil
}

// SubmitAnswer grades chosen against the current question and advances the
// session. Nothing is mutated when the session is missing or finished, or
// when persisting the score fails.
func (s *service) SubmitAnswer(ctx context.Context, handle uuid.UUID, chosen int) (*AnswerResult, error) {
	log := config.WithContext(ctx).WithField("session_id", handle)

	current, err := s.store.Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	if current.Completed() {
		return nil, ErrAlreadyCompleted
	}

	now := s.now()
	next := current.clone()
	q, ans := next.answer(chosen, now)
	if !q.HasValidAnswer() {
		log.WithField("question_id", q.ID).Warn("Stored question has an out-of-range correct index")
	}

	result := &AnswerResult{
		IsCorrect:       ans.IsCorrect,
		CorrectAnswer:   q.Correct,
		Explanation:     q.Explanation,
		CurrentQuestion: next.Cursor,
		Score:           next.Score,
		IsCompleted:     next.Completed(),
	}

	if s.opts.RecordEveryAnswer {
		if err := s.record(ctx, &next, 0, now); err != nil {
			return nil, err
		}
	}

	if !result.IsCompleted {
		if err := s.store.Save(ctx, &next); err != nil {
			log.WithError(err).Error("Failed to save quiz session")
			return nil, err
		}
		return result, nil
	}

	elapsed := next.Elapsed(now)
	if !s.opts.RecordEveryAnswer {
		if err := s.record(ctx, &next, elapsed, now); err != nil {
			return nil, err
		}
	}

	next.CompletedAt = &now
	if err := s.store.Save(ctx, &next); err != nil {
		log.WithError(err).Error("Failed to save completed quiz session")
		return nil, err
	}

	result.Completion = &Completion{
		FinalScore:     next.Score,
		TotalQuestions: next.Total(),
		Percentage:     score.Percentage(next.Score, next.Total()),
		TimeTaken:      elapsed,
		Points:         next.Points,
		Achievements:   []achievement.ID{},
	}
	result.Achievements = s.updateStats(ctx, &next, result.Completion, now)

	log.WithFields(logrus.Fields{
		"username":   next.Username,
		"score":      next.Score,
		"total":      next.Total(),
		"time_taken": elapsed,
	}).Info("Quiz completed")
	return result, nil
}

// recordID is stable per session and cursor, so replaying an answer after a
// failed session save does not append a second row.
func recordID(st *State) uuid.UUID {
	return uuid.NewSHA1(st.Handle, []byte(strconv.Itoa(st.Cursor)))
}

func (s *service) record(ctx context.Context, st *State, elapsed int, at time.Time) error {
	return s.scores.Record(ctx, &score.Record{
		ID:         recordID(st),
		Username:   st.Username,
		Score:      st.Score,
		Total:      st.Total(),
		TimeTaken:  elapsed,
		Difficulty: string(st.Difficulty),
		Category:   st.Category,
		CreatedAt:  at,
	})
}

// updateStats feeds the finished quiz into the player's profile. Failures are
// logged and leave the achievement list empty; the score is already saved.
func (s *service) updateStats(ctx context.Context, st *State, c *Completion, at time.Time) []achievement.ID {
	if s.users == nil {
		return []achievement.ID{}
	}

	_, fresh, err := s.users.RecordCompletion(ctx, user.Completion{
		Username:       st.Username,
		Score:          st.Score,
		Total:          st.Total(),
		Points:         st.Points,
		Percentage:     c.Percentage,
		ElapsedSeconds: c.TimeTaken,
		LongestStreak:  st.LongestStreak,
		FinishedAt:     at,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to update user stats")
		return []achievement.ID{}
	}
	if fresh == nil {
		return []achievement.ID{}
	}
	return fresh
}

func (s *service) Current(ctx context.Context, handle uuid.UUID) (*Progress, error) {
	st, err := s.store.Get(ctx, handle)
	if err != nil {
		return nil, err
	}

	p := &Progress{
		Handle:          st.Handle,
		Username:        st.Username,
		Difficulty:      st.Difficulty,
		Category:        st.Category,
		Status:          st.Status(),
		CurrentQuestion: st.Cursor,
		TotalQuestions:  st.Total(),
		Score:           st.Score,
		StartedAt:       st.StartedAt,
	}
	if !st.Completed() {
		next := st.Questions[st.Cursor].Public()
		p.Next = &next
	}
	return p, nil
}

func (s *service) Discard(ctx context.Context, handle uuid.UUID) error {
	return s.store.Delete(ctx, handle)
}
