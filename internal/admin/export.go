package admin

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
	"github.com/saulo-duarte/quiz-arena/internal/question"
	util "github.com/saulo-duarte/quiz-arena/internal/utils"
)

var ErrInvalidExportType = apperr.New(apperr.ErrInvalidInput, "invalid export type")

// Export returns CSV rows, header first.
func (s *service) Export(ctx context.Context, kind ExportType) ([][]string, error) {
	switch kind {
	case ExportScores:
		return s.exportScores(ctx)
	case ExportQuestions:
		return s.exportQuestions(ctx)
	default:
		return nil, ErrInvalidExportType
	}
}

func (s *service) exportScores(ctx context.Context) ([][]string, error) {
	records, err := s.scores.All(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"Username", "Score", "Total", "Date"})
	for _, r := range records {
		rows = append(rows, []string{
			r.Username,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Total),
			util.NewTimestamp(r.CreatedAt).String(),
		})
	}
	return rows, nil
}

func (s *service) exportQuestions(ctx context.Context) ([][]string, error) {
	questions, err := s.questions.List(ctx, question.ListFilter{})
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(questions)+1)
	rows = append(rows, []string{"ID", "Question", "Options", "Correct", "Difficulty", "Category"})
	for _, q := range questions {
		options, err := json.Marshal([]string(q.Options))
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{
			q.ID.String(),
			q.Question,
			string(options),
			strconv.Itoa(q.Correct),
			string(q.Difficulty),
			q.Category,
		})
	}
	return rows, nil
}
