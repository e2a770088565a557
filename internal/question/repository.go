package question

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
)

type Repository interface {
	Sample(ctx context.Context, difficulty Difficulty, category string, limit int) ([]Question, error)
	Create(ctx context.Context, q *Question) error
	CreateBatch(ctx context.Context, qs []Question) error
	Update(ctx context.Context, q *Question) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Question, error)
	List(ctx context.Context, filter ListFilter) ([]Question, error)
	Count(ctx context.Context) (int64, error)
	CategoryCounts(ctx context.Context, limit int) ([]CategoryCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Sample(ctx context.Context, difficulty Difficulty, category string, limit int) ([]Question, error) {
	query := r.db.WithContext(ctx).
		Where("difficulty = ? AND is_active = ?", difficulty, true)
	if !IsAllCategories(category) {
		query = query.Where("category = ?", category)
	}

	var questions []Question
	if err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error; err != nil {
		return nil, apperr.Store("sample questions", err)
	}
	return questions, nil
}

func (r *repository) Create(ctx context.Context, q *Question) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return apperr.Store("create question", err)
	}
	return nil
}

func (r *repository) CreateBatch(ctx context.Context, qs []Question) error {
	if len(qs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&qs).Error; err != nil {
		return apperr.Store("create questions", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, q *Question) error {
	res := r.db.WithContext(ctx).
		Model(q).
		Select("question", "options", "correct", "difficulty", "category", "explanation", "points", "time_limit", "is_active", "updated_at").
		Updates(q)
	if res.Error != nil {
		return apperr.Store("update question", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Question{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Store("delete question", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, apperr.Store("get question", err)
	}
	return &q, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Question, error) {
	query := r.db.WithContext(ctx).Model(&Question{})
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if !IsAllCategories(filter.Category) {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var questions []Question
	if err := query.Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, apperr.Store("list questions", err)
	}
	return questions, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Question{}).Count(&n).Error; err != nil {
		return 0, apperr.Store("count questions", err)
	}
	return n, nil
}

func (r *repository) CategoryCounts(ctx context.Context, limit int) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&Question{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, apperr.Store("count categories", err)
	}
	return counts, nil
}
