package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/quiz-arena/internal/achievement"
	"github.com/saulo-duarte/quiz-arena/internal/question"
)

type StartRequest struct {
	Username   string `json:"username"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`

	// Supersedes is the caller's previous handle, dropped once the new
	// session is saved.
	Supersedes uuid.UUID `json:"-"`
}

type StartResult struct {
	Handle    uuid.UUID                 `json:"session_id"`
	Questions []question.PublicQuestion `json:"questions"`
	Total     int                       `json:"total_questions"`
}

type AnswerRequest struct {
	Answer *int `json:"answer"`
}

// Completion is attached to the answer that finishes the quiz.
type Completion struct {
	FinalScore     int              `json:"final_score"`
	TotalQuestions int              `json:"total_questions"`
	Percentage     float64          `json:"percentage"`
	TimeTaken      int              `json:"time_taken"`
	Points         int              `json:"points"`
	Achievements   []achievement.ID `json:"achievements"`
}

type AnswerResult struct {
	IsCorrect       bool    `json:"is_correct"`
	CorrectAnswer   int     `json:"correct_answer"`
	Explanation     *string `json:"explanation,omitempty"`
	CurrentQuestion int     `json:"current_question"`
	Score           int     `json:"score"`
	IsCompleted     bool    `json:"is_completed"`
	*Completion
}

type Progress struct {
	Handle          uuid.UUID                `json:"session_id"`
	Username        string                   `json:"username"`
	Difficulty      question.Difficulty      `json:"difficulty"`
	Category        string                   `json:"category"`
	Status          Status                   `json:"status"`
	CurrentQuestion int                      `json:"current_question"`
	TotalQuestions  int                      `json:"total_questions"`
	Score           int                      `json:"score"`
	Next            *question.PublicQuestion `json:"next_question,omitempty"`
	StartedAt       time.Time                `json:"started_at"`
}
