package user

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quiz-arena/internal/achievement"
	"github.com/saulo-duarte/quiz-arena/internal/config"
)

const maxUsernameLength = 50

type Service interface {
	RecordCompletion(ctx context.Context, c Completion) (*User, []achievement.ID, error)
	Get(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// NormalizeUsername trims input and falls back to the anonymous name.
func NormalizeUsername(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return AnonymousUsername
	}
	if r := []rune(name); len(r) > maxUsernameLength {
		name = string(r[:maxUsernameLength])
	}
	return name
}

// RecordCompletion upserts the player's row, applies the quiz, and returns the
// achievements this quiz unlocked for the first time.
func (s *service) RecordCompletion(ctx context.Context, c Completion) (*User, []achievement.ID, error) {
	log := config.WithContext(ctx)
	c.Username = NormalizeUsername(c.Username)

	var fresh []achievement.ID
	u, err := s.repo.Upsert(ctx, c.Username, func(u *User) {
		u.Apply(c)

		fresh = achievement.Unlocked(achievement.Stats{
			Points:         c.Points,
			Accuracy:       c.Percentage,
			LongestStreak:  c.LongestStreak,
			ElapsedSeconds: c.ElapsedSeconds,
			TotalQuizzes:   u.TotalQuizzes,
		}, u.Achievements)
		for _, id := range fresh {
			u.Achievements = append(u.Achievements, string(id))
		}
	})
	if err != nil {
		log.WithError(err).Error("Failed to save user stats")
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"username":     u.Username,
		"total":        u.TotalQuizzes,
		"level":        u.Level,
		"achievements": fresh,
	}).Info("User stats updated")
	return u, fresh, nil
}

func (s *service) Get(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, NormalizeUsername(username))
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
