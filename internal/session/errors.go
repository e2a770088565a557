package session

import (
	"github.com/saulo-duarte/quiz-arena/internal/apperr"
	"github.com/saulo-duarte/quiz-arena/internal/question"
)

var (
	ErrNoActiveSession      = apperr.New(apperr.ErrInvalidState, "no active quiz session")
	ErrAlreadyCompleted     = apperr.New(apperr.ErrInvalidState, "quiz already completed")
	ErrAnswerRequired       = apperr.New(apperr.ErrInvalidInput, "answer is required")
	ErrNoQuestionsAvailable = question.ErrNoQuestions
)
