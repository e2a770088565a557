package aiquiz

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/question"
)

var ErrNoUsableDrafts = apperr.New(apperr.ErrUnavailable, "the generator returned no usable questions")

type QuestionImporter interface {
	CreateBatch(ctx context.Context, dtos []question.QuestionDTO) ([]question.Question, error)
}

type Service interface {
	GenerateQuestions(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type service struct {
	provider  Provider
	questions QuestionImporter
}

func NewService(provider Provider, questions QuestionImporter) Service {
	if provider == nil {
		provider = unavailableProvider{}
	}
	return &service{provider: provider, questions: questions}
}

// GenerateQuestions asks the model for drafts and keeps the ones that would
// pass admin validation. With req.Import the kept drafts are stored.
func (s *service) GenerateQuestions(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	req.Difficulty = strings.ToLower(strings.TrimSpace(req.Difficulty))
	if err := apperr.ValidateStruct(req); err != nil {
		return nil, err
	}

	raw, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	drafts, err := parseDrafts(raw)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Undecodable model response")
		return nil, ErrNoUsableDrafts
	}

	kept := make([]Draft, 0, len(drafts))
	for i, d := range drafts {
		d.Category = req.Category
		d.Difficulty = req.Difficulty
		if err := d.ToDTO().Validate(); err != nil {
			log.WithFields(logrus.Fields{"index": i, "reason": err.Error()}).Warn("[AIQUIZ] Dropping invalid draft")
			continue
		}
		kept = append(kept, d)
	}
	if len(kept) == 0 {
		return nil, ErrNoUsableDrafts
	}
	if limit := clampCount(req.Count); len(kept) > limit {
		kept = kept[:limit]
	}

	resp := &GenerateResponse{Drafts: kept}
	if req.Import {
		dtos := make([]question.QuestionDTO, len(kept))
		for i, d := range kept {
			dtos[i] = d.ToDTO()
		}
		imported, err := s.questions.CreateBatch(ctx, dtos)
		if err != nil {
			return nil, err
		}
		resp.Imported = imported
	}

	log.WithFields(logrus.Fields{"drafts": len(kept), "imported": len(resp.Imported)}).Info("[AIQUIZ] Questions generated")
	return resp, nil
}
