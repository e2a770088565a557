package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultCategory  = "General"
	DefaultPoints    = 10
	DefaultTimeLimit = 30
)

type Question struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Question    string                      `gorm:"type:text;not null" json:"question"`
	Options     datatypes.JSONSlice[string] `gorm:"not null" json:"options"`
	Correct     int                         `gorm:"not null" json:"correct"`
	Difficulty  Difficulty                  `gorm:"type:varchar(20);not null;index" json:"difficulty"`
	Category    string                      `gorm:"type:varchar(50);not null;index" json:"category"`
	Explanation *string                     `gorm:"type:text" json:"explanation,omitempty"`
	Points      int                         `gorm:"not null;default:10" json:"points"`
	TimeLimit   int                         `gorm:"not null;default:30" json:"time_limit"`
	IsActive    bool                        `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// PublicQuestion is what quiz takers see. It never carries the correct index.
type PublicQuestion struct {
	ID         uuid.UUID  `json:"id"`
	Question   string     `json:"question"`
	Options    []string   `json:"options"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
	Points     int        `json:"points"`
	TimeLimit  int        `json:"time_limit"`
}

func (q Question) Public() PublicQuestion {
	options := make([]string, len(q.Options))
	copy(options, q.Options)

	return PublicQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Options:    options,
		Difficulty: q.Difficulty,
		Category:   q.Category,
		Points:     q.Points,
		TimeLimit:  q.TimeLimit,
	}
}

func PublicList(qs []Question) []PublicQuestion {
	out := make([]PublicQuestion, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Public())
	}
	return out
}

// HasValidAnswer reports whether Correct indexes into Options.
func (q Question) HasValidAnswer() bool {
	return q.Correct >= 0 && q.Correct < len(q.Options)
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
