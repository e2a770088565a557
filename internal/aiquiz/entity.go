package aiquiz

import (
	"strings"

	"github.com/saulo-duarte/quiz-arena/internal/question"
)

// Draft is one generated question before an admin imports it.
type Draft struct {
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

func (d Draft) ToDTO() question.QuestionDTO {
	correct := d.Correct
	dto := question.QuestionDTO{
		Question:   d.Question,
		Options:    d.Options,
		Correct:    &correct,
		Difficulty: d.Difficulty,
		Category:   d.Category,
	}
	if e := strings.TrimSpace(d.Explanation); e != "" {
		dto.Explanation = &e
	}
	return dto
}

type GenerateRequest struct {
	Category   string `json:"category" validate:"required,max=50"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Count      int    `json:"count" validate:"gte=0,lte=10"`
	Context    string `json:"context" validate:"max=500"`
	Import     bool   `json:"import"`
}

type GenerateResponse struct {
	Drafts   []Draft             `json:"drafts"`
	Imported []question.Question `json:"imported,omitempty"`
}
