package question

import (
	"strings"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
)

// QuestionDTO is the admin payload for both create and full update.
type QuestionDTO struct {
	Question    string   `json:"question" validate:"required"`
	Options     []string `json:"options" validate:"required,min=2,max=10,dive,required"`
	Correct     *int     `json:"correct" validate:"required,gte=0"`
	Difficulty  string   `json:"difficulty" validate:"required"`
	Category    string   `json:"category" validate:"max=50"`
	Explanation *string  `json:"explanation"`
	Points      *int     `json:"points" validate:"omitempty,gt=0"`
	TimeLimit   *int     `json:"time_limit" validate:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active"`
}

func (d QuestionDTO) Validate() error {
	if err := apperr.ValidateStruct(d); err != nil {
		return err
	}
	if _, err := ParseDifficulty(d.Difficulty, ""); err != nil {
		return err
	}
	if *d.Correct >= len(d.Options) {
		return ErrCorrectOutOfRange
	}
	return nil
}

// apply copies the payload onto q. Validate must have passed.
func (d QuestionDTO) apply(q *Question) {
	difficulty, _ := ParseDifficulty(d.Difficulty, "")

	q.Question = strings.TrimSpace(d.Question)
	q.Options = append([]string(nil), d.Options...)
	q.Correct = *d.Correct
	q.Difficulty = difficulty
	q.Explanation = d.Explanation

	q.Category = strings.TrimSpace(d.Category)
	if q.Category == "" {
		q.Category = DefaultCategory
	}

	q.Points = DefaultPoints
	if d.Points != nil {
		q.Points = *d.Points
	}
	q.TimeLimit = DefaultTimeLimit
	if d.TimeLimit != nil {
		q.TimeLimit = *d.TimeLimit
	}
	q.IsActive = true
	if d.IsActive != nil {
		q.IsActive = *d.IsActive
	}
}

type ListFilter struct {
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
	ActiveOnly bool   `json:"active_only"`
}
