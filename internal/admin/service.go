package admin

import (
	"context"

	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/question"
	"github.com/saulo-duarte/quiz-arena/internal/score"
	"github.com/saulo-duarte/quiz-arena/internal/user"
)

const (
	recentActivityLimit = 5
	activityLogLimit    = 50
	analyticsDays       = 7
	topCategoriesLimit  = 5
)

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
	Users(ctx context.Context) ([]user.User, error)
	Analytics(ctx context.Context) (*Analytics, error)
	Medals(ctx context.Context) ([]score.MedalCount, error)
	Logs(ctx context.Context) ([]score.Activity, error)
	Settings() Settings
	Export(ctx context.Context, kind ExportType) ([][]string, error)
}

type service struct {
	questions question.Service
	scores    score.Service
	users     user.Service
	settings  Settings
}

func NewService(questions question.Service, scores score.Service, users user.Service, settings Settings) Service {
	return &service{
		questions: questions,
		scores:    scores,
		users:     users,
		settings:  settings,
	}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	log := config.WithContext(ctx)

	totalQuestions, err := s.questions.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count questions")
		return nil, err
	}
	totals, err := s.scores.Totals(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate scores")
		return nil, err
	}
	recent, err := s.scores.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalQuestions: totalQuestions,
		TotalUsers:     totals.Users,
		TotalAttempts:  totals.Attempts,
		AvgScore:       totals.AvgPercentage,
		RecentActivity: recent,
	}, nil
}

func (s *service) Users(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

func (s *service) Analytics(ctx context.Context) (*Analytics, error) {
	log := config.WithContext(ctx)

	daily, err := s.scores.DailyAttempts(ctx, analyticsDays)
	if err != nil {
		log.WithError(err).Error("Failed to load daily attempts")
		return nil, err
	}
	perf, err := s.scores.DifficultyPerformance(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load difficulty performance")
		return nil, err
	}
	categories, err := s.questions.TopCategories(ctx, topCategoriesLimit)
	if err != nil {
		log.WithError(err).Error("Failed to load top categories")
		return nil, err
	}

	return &Analytics{
		DailyAttempts:         daily,
		DifficultyPerformance: perf,
		TopCategories:         categories,
	}, nil
}

func (s *service) Medals(ctx context.Context) ([]score.MedalCount, error) {
	return s.scores.MedalCounts(ctx)
}

func (s *service) Logs(ctx context.Context) ([]score.Activity, error) {
	return s.scores.ActivityLog(ctx, activityLogLimit)
}

func (s *service) Settings() Settings {
	return s.settings
}
