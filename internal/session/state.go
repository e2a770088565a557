package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/quiz-arena/internal/question"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Answer is one submitted choice. Entries are appended, never edited.
type Answer struct {
	QuestionID uuid.UUID `json:"question_id"`
	Chosen     int       `json:"chosen"`
	IsCorrect  bool      `json:"is_correct"`
	AnsweredAt time.Time `json:"answered_at"`
}

// State is one player's progress through a fixed batch of questions.
// 0 <= Cursor <= len(Questions) and 0 <= Score <= Cursor always hold.
type State struct {
	Handle        uuid.UUID           `json:"handle"`
	Username      string              `json:"username"`
	Category      string              `json:"category"`
	Difficulty    question.Difficulty `json:"difficulty"`
	Questions     []question.Question `json:"questions"`
	Cursor        int                 `json:"cursor"`
	Score         int                 `json:"score"`
	Points        int                 `json:"points"`
	Streak        int                 `json:"streak"`
	LongestStreak int                 `json:"longest_streak"`
	Answers       []Answer            `json:"answers"`
	StartedAt     time.Time           `json:"started_at"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
}

func (s *State) Total() int { return len(s.Questions) }

func (s *State) Completed() bool { return s.Cursor >= len(s.Questions) }

func (s *State) Status() Status {
	switch {
	case len(s.Questions) == 0:
		return StatusNotStarted
	case s.Completed():
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

// answer grades chosen against the question at the cursor and advances.
// The caller checks Completed first. A stored question whose correct index
// falls outside its options can never be answered correctly.
func (s *State) answer(chosen int, at time.Time) (question.Question, Answer) {
	q := s.Questions[s.Cursor]
	correct := q.HasValidAnswer() && chosen == q.Correct

	if correct {
		s.Score++
		s.Points += q.Points
		s.Streak++
		if s.Streak > s.LongestStreak {
			s.LongestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}

	a := Answer{
		QuestionID: q.ID,
		Chosen:     chosen,
		IsCorrect:  correct,
		AnsweredAt: at,
	}
	s.Answers = append(s.Answers, a)
	s.Cursor++
	return q, a
}

// Elapsed is whole seconds from start to at, truncated.
func (s *State) Elapsed(at time.Time) int {
	d := at.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// clone returns a copy that shares no mutable slices with s.
func (s *State) clone() State {
	c := *s
	c.Questions = append([]question.Question(nil), s.Questions...)
	c.Answers = append([]Answer(nil), s.Answers...)
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		c.CompletedAt = &t
	}
	return c
}
