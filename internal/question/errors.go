package question

import "github.com/saulo-duarte/quiz-arena/internal/apperr"

var (
	ErrQuestionNotFound  = apperr.New(apperr.ErrNotFound, "question not found")
	ErrNoQuestions       = apperr.New(apperr.ErrNotFound, "no questions found for the selected criteria")
	ErrInvalidDifficulty = apperr.New(apperr.ErrInvalidInput, "difficulty must be one of easy, medium, hard")
	ErrInvalidID         = apperr.New(apperr.ErrInvalidInput, "invalid question id")
	ErrCorrectOutOfRange = apperr.New(apperr.ErrInvalidInput, "correct must index into options")
)
