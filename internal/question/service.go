package question

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

const DefaultSampleSize = 10

type Service interface {
	Sample(ctx context.Context, difficulty Difficulty, category string, limit int) ([]Question, error)
	Create(ctx context.Context, dto QuestionDTO) (*Question, error)
	CreateBatch(ctx context.Context, dtos []QuestionDTO) ([]Question, error)
	Update(ctx context.Context, id string, dto QuestionDTO) (*Question, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Question, error)
	List(ctx context.Context, filter ListFilter) ([]Question, error)
	Count(ctx context.Context) (int64, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryCount, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Sample returns up to limit active questions in random order. An empty
// result is ErrNoQuestions.
func (s *service) Sample(ctx context.Context, difficulty Difficulty, category string, limit int) ([]Question, error) {
	log := config.WithContext(ctx)

	if !difficulty.IsValid() {
		return nil, ErrInvalidDifficulty
	}
	if limit <= 0 {
		limit = DefaultSampleSize
	}

	questions, err := s.repo.Sample(ctx, difficulty, strings.TrimSpace(category), limit)
	if err != nil {
		log.WithError(err).Error("Failed to sample questions")
		return nil, err
	}
	if len(questions) == 0 {
		log.WithFields(logrus.Fields{
			"difficulty": difficulty,
			"category":   category,
		}).Warn("No questions match the requested filters")
		return nil, ErrNoQuestions
	}
	return questions, nil
}

func (s *service) Create(ctx context.Context, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	var q Question
	dto.apply(&q)

	if err := s.repo.Create(ctx, &q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Question created")
	return &q, nil
}

// CreateBatch validates every payload before inserting any of them.
func (s *service) CreateBatch(ctx context.Context, dtos []QuestionDTO) ([]Question, error) {
	log := config.WithContext(ctx)

	questions := make([]Question, len(dtos))
	for i, dto := range dtos {
		if err := dto.Validate(); err != nil {
			return nil, err
		}
		dto.apply(&questions[i])
	}

	if err := s.repo.CreateBatch(ctx, questions); err != nil {
		log.WithError(err).Error("Failed to create question batch")
		return nil, err
	}

	log.WithField("count", len(questions)).Info("Question batch created")
	return questions, nil
}

func (s *service) Update(ctx context.Context, id string, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx).WithField("question_id", id)

	qid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	q := Question{ID: qid}
	dto.apply(&q)
	q.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, &q); err != nil {
		log.WithError(err).Warn("Failed to update question")
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, qid)
	if err != nil {
		return nil, err
	}

	log.Info("Question updated")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("question_id", id)

	qid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, qid); err != nil {
		log.WithError(err).Warn("Failed to delete question")
		return err
	}

	log.Info("Question deleted")
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*Question, error) {
	qid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, qid)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Question, error) {
	if filter.Difficulty != "" {
		d, err := ParseDifficulty(filter.Difficulty, "")
		if err != nil {
			return nil, err
		}
		filter.Difficulty = string(d)
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) TopCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.CategoryCounts(ctx, limit)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
