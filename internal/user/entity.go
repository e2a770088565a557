package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const AnonymousUsername = "Anonymous"

type User struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Username         string                      `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	TotalQuizzes     int                         `gorm:"not null;default:0" json:"total_quizzes"`
	TotalScore       int                         `gorm:"not null;default:0" json:"total_score"`
	BestScore        int                         `gorm:"not null;default:0" json:"best_score"`
	AverageAccuracy  float64                     `gorm:"not null;default:0" json:"average_accuracy"`
	TotalTimeSpent   int                         `gorm:"not null;default:0" json:"total_time_spent"`
	LongestStreak    int                         `gorm:"not null;default:0" json:"longest_streak"`
	Level            int                         `gorm:"not null" json:"level"`
	ExperiencePoints int                         `gorm:"not null;default:0" json:"experience_points"`
	Achievements     datatypes.JSONSlice[string] `json:"achievements"`
	LastActivityAt   *time.Time                  `json:"last_activity,omitempty"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Level == 0 {
		u.Level = 1
	}
	return nil
}

// Completion describes one finished quiz for stats purposes.
type Completion struct {
	Username       string
	Score          int
	Total          int
	Points         int
	Percentage     float64
	ElapsedSeconds int
	LongestStreak  int
	FinishedAt     time.Time
}

// Apply folds a finished quiz into the running totals. Accuracy is a running
// mean over quizzes; every 100 experience points is one level.
func (u *User) Apply(c Completion) {
	u.TotalQuizzes++
	u.TotalScore += c.Score
	u.TotalTimeSpent += c.ElapsedSeconds
	if c.Score > u.BestScore {
		u.BestScore = c.Score
	}
	if c.LongestStreak > u.LongestStreak {
		u.LongestStreak = c.LongestStreak
	}

	n := float64(u.TotalQuizzes)
	u.AverageAccuracy = (u.AverageAccuracy*(n-1) + c.Percentage) / n

	u.ExperiencePoints += c.Points
	u.Level = 1 + u.ExperiencePoints/100

	finished := c.FinishedAt
	u.LastActivityAt = &finished
}

func (u *User) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
