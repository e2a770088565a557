package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, model string, questions QuestionImporter) *AIQuizContainer {
	provider, err := NewGeminiProvider(ctx, model)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("AI question generation disabled")
		provider = nil
	}
	service := NewService(provider, questions)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}
}
