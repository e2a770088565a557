package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
	"github.com/saulo-duarte/quiz-arena/internal/config"
)

const defaultModel = "gemini-2.0-flash"

var ErrProviderUnavailable = apperr.New(apperr.ErrUnavailable, "question generator is not configured")

// Provider sends a prompt to a language model and returns its raw text.
type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider reads GEMINI_API_KEY or GOOGLE_API_KEY from the environment.
func NewGeminiProvider(ctx context.Context, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(system+"\n\n"+user),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", &apperr.Error{Kind: apperr.ErrUnavailable, Message: "question generator request failed", Cause: err}
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	if raw == "" {
		return "", errors.New("empty model response")
	}
	return raw, nil
}

// unavailableProvider stands in when no model client could be built.
type unavailableProvider struct{}

func (unavailableProvider) SendPrompt(context.Context, string, string) (string, error) {
	return "", ErrProviderUnavailable
}
