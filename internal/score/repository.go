package score

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
)

type Repository interface {
	Create(ctx context.Context, r *Record) error
	Top(ctx context.Context, difficulty string, limit int) ([]Record, error)
	Recent(ctx context.Context, limit int) ([]Record, error)
	Since(ctx context.Context, since time.Time) ([]Record, error)
	All(ctx context.Context) ([]Record, error)
	Totals(ctx context.Context) (Totals, error)
	DifficultyPerformance(ctx context.Context) ([]DifficultyPerformance, error)
	MedalCounts(ctx context.Context) ([]MedalCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts rec. A record whose id already exists is left untouched.
func (r *repository) Create(ctx context.Context, rec *Record) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rec).Error; err != nil {
		return apperr.Store("insert score", err)
	}
	return nil
}

func (r *repository) Top(ctx context.Context, difficulty string, limit int) ([]Record, error) {
	query := r.db.WithContext(ctx).Model(&Record{})
	if difficulty = strings.TrimSpace(difficulty); difficulty != "" && !strings.EqualFold(difficulty, "all") {
		query = query.Where("difficulty = ?", strings.ToLower(difficulty))
	}

	var records []Record
	if err := query.Order("score DESC").Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, apperr.Store("query leaderboard", err)
	}
	return records, nil
}

func (r *repository) Recent(ctx context.Context, limit int) ([]Record, error) {
	var records []Record
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, apperr.Store("query recent scores", err)
	}
	return records, nil
}

func (r *repository) Since(ctx context.Context, since time.Time) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since.UTC()).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, apperr.Store("query scores since", err)
	}
	return records, nil
}

func (r *repository) All(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, apperr.Store("query scores", err)
	}
	return records, nil
}

func (r *repository) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Select("COUNT(*) AS attempts, COUNT(DISTINCT username) AS users, " +
			"COALESCE(AVG(CASE WHEN total > 0 THEN score * 100.0 / total END), 0) AS avg_percentage").
		Scan(&t).Error
	if err != nil {
		return Totals{}, apperr.Store("aggregate scores", err)
	}
	return t, nil
}

func (r *repository) DifficultyPerformance(ctx context.Context) ([]DifficultyPerformance, error) {
	var rows []DifficultyPerformance
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Select("difficulty, " +
			"COALESCE(AVG(CASE WHEN total > 0 THEN score * 100.0 / total ELSE 0 END), 0) AS avg_score, " +
			"COUNT(*) AS count").
		Where("difficulty <> ''").
		Group("difficulty").
		Order("difficulty").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Store("aggregate difficulty performance", err)
	}
	return rows, nil
}

const medalCase = "CASE " +
	"WHEN score * 100.0 / total >= 90 THEN 'Gold' " +
	"WHEN score * 100.0 / total >= 75 THEN 'Silver' " +
	"WHEN score * 100.0 / total >= 60 THEN 'Bronze' " +
	"ELSE 'None' END"

func (r *repository) MedalCounts(ctx context.Context) ([]MedalCount, error) {
	var rows []MedalCount
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Select(medalCase + " AS medal, COUNT(*) AS count").
		Where("total > 0").
		Group("medal").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Store("aggregate medals", err)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Medal.order() < rows[j].Medal.order() })
	return rows, nil
}
