package admin

import (
	"github.com/saulo-duarte/quiz-arena/internal/question"
	"github.com/saulo-duarte/quiz-arena/internal/score"
)

type Stats struct {
	TotalQuestions int64          `json:"total_questions"`
	TotalUsers     int64          `json:"total_users"`
	TotalAttempts  int64          `json:"total_attempts"`
	AvgScore       float64        `json:"avg_score"`
	RecentActivity []score.Record `json:"recent_activity"`
}

type Analytics struct {
	DailyAttempts         []score.DailyAttempts         `json:"daily_attempts"`
	DifficultyPerformance []score.DifficultyPerformance `json:"difficulty_performance"`
	TopCategories         []question.CategoryCount      `json:"top_categories"`
}

// Settings is the read-only view of quiz tuning knobs.
type Settings struct {
	QuestionsPerQuiz     int  `json:"questions_per_quiz"`
	TimeLimit            int  `json:"time_limit"`
	PassingScore         int  `json:"passing_score"`
	AllowNegativeMarking bool `json:"allow_negative_marking"`
	ShowCorrectAnswers   bool `json:"show_correct_answers"`
	RecordEveryAnswer    bool `json:"record_every_answer"`
}

type ExportType string

const (
	ExportScores    ExportType = "scores"
	ExportQuestions ExportType = "questions"
)
