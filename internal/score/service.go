package score

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quiz-arena/internal/config"
	util "github.com/saulo-duarte/quiz-arena/internal/utils"
)

type Service interface {
	Record(ctx context.Context, r *Record) error
	Leaderboard(ctx context.Context, difficulty string, limit int) ([]LeaderboardEntry, error)
	Totals(ctx context.Context) (Totals, error)
	Recent(ctx context.Context, limit int) ([]Record, error)
	ActivityLog(ctx context.Context, limit int) ([]Activity, error)
	DailyAttempts(ctx context.Context, days int) ([]DailyAttempts, error)
	DifficultyPerformance(ctx context.Context) ([]DifficultyPerformance, error)
	MedalCounts(ctx context.Context) ([]MedalCount, error)
	All(ctx context.Context) ([]Record, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Record(ctx context.Context, r *Record) error {
	log := config.WithContext(ctx)

	if err := s.repo.Create(ctx, r); err != nil {
		log.WithError(err).WithField("username", r.Username).Error("Failed to record score")
		return err
	}

	log.WithFields(logrus.Fields{
		"username": r.Username,
		"score":    r.Score,
		"total":    r.Total,
	}).Debug("Score recorded")
	return nil
}

// Leaderboard ranks by score, newest first on ties. Ranks are 1-based
// positions in the returned slice.
func (s *service) Leaderboard(ctx context.Context, difficulty string, limit int) ([]LeaderboardEntry, error) {
	log := config.WithContext(ctx)

	records, err := s.repo.Top(ctx, difficulty, NormalizeLimit(limit))
	if err != nil {
		log.WithError(err).Error("Failed to load leaderboard")
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(records))
	for i, r := range records {
		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			Username:   r.Username,
			Score:      r.Score,
			Total:      r.Total,
			Percentage: Percentage(r.Score, r.Total),
			Date:       util.NewTimestamp(r.CreatedAt),
		})
	}
	return entries, nil
}

func (s *service) Totals(ctx context.Context) (Totals, error) {
	t, err := s.repo.Totals(ctx)
	if err != nil {
		return Totals{}, err
	}
	t.AvgPercentage = roundTwo(t.AvgPercentage)
	return t, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Record, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *service) ActivityLog(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 50
	}

	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	logs := make([]Activity, 0, len(records))
	for _, r := range records {
		logs = append(logs, Activity{
			Action:    "Quiz Completed",
			User:      r.Username,
			Details:   fmt.Sprintf("Score: %d/%d", r.Score, r.Total),
			Timestamp: util.NewTimestamp(r.CreatedAt),
		})
	}
	return logs, nil
}

func (s *service) DailyAttempts(ctx context.Context, days int) ([]DailyAttempts, error) {
	if days <= 0 {
		days = 7
	}

	now := s.now().UTC()
	since := now.Truncate(24*time.Hour).AddDate(0, 0, -(days - 1))

	records, err := s.repo.Since(ctx, since)
	if err != nil {
		return nil, err
	}
	return BucketDaily(records, now, days), nil
}

func (s *service) DifficultyPerformance(ctx context.Context) ([]DifficultyPerformance, error) {
	rows, err := s.repo.DifficultyPerformance(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AvgScore = roundTwo(rows[i].AvgScore)
	}
	return rows, nil
}

func (s *service) MedalCounts(ctx context.Context) ([]MedalCount, error) {
	return s.repo.MedalCounts(ctx)
}

func (s *service) All(ctx context.Context) ([]Record, error) {
	return s.repo.All(ctx)
}
