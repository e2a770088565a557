package score

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	util "github.com/saulo-duarte/quiz-arena/internal/utils"
)

// Record is one finished quiz attempt. Rows are append-only.
type Record struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username   string    `gorm:"type:varchar(50);not null;index" json:"username"`
	Score      int       `gorm:"not null" json:"score"`
	Total      int       `gorm:"not null" json:"total"`
	TimeTaken  int       `gorm:"not null;default:0" json:"time_taken"`
	Difficulty string    `gorm:"type:varchar(20);index" json:"difficulty"`
	Category   string    `gorm:"type:varchar(50)" json:"category"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (Record) TableName() string { return "scores" }

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

type LeaderboardEntry struct {
	Rank       int            `json:"rank"`
	Username   string         `json:"username"`
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Percentage float64        `json:"percentage"`
	Date       util.Timestamp `json:"date"`
}

type Totals struct {
	Attempts      int64   `json:"total_attempts"`
	Users         int64   `json:"total_users"`
	AvgPercentage float64 `json:"avg_score"`
}

type DifficultyPerformance struct {
	Difficulty string  `json:"difficulty"`
	AvgScore   float64 `json:"avg_score"`
	Count      int64   `json:"count"`
}

type DailyAttempts struct {
	Date     string `json:"date"`
	Attempts int    `json:"attempts"`
}

type MedalCount struct {
	Medal Medal `json:"medal"`
	Count int64 `json:"count"`
}

type Activity struct {
	Action    string         `json:"action"`
	User      string         `json:"user"`
	Details   string         `json:"details"`
	Timestamp util.Timestamp `json:"timestamp"`
}
