package question_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
	"github.com/saulo-duarte/quiz-arena/internal/question"
)

func intPtr(i int) *int { return &i }

func validDTO() question.QuestionDTO {
	return question.QuestionDTO{
		Question:   "What is the capital of France?",
		Options:    []string{"Berlin", "Madrid", "Paris", "Rome"},
		Correct:    intPtr(2),
		Difficulty: "easy",
		Category:   "Geography",
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := question.NewService(question.NewRepository(newTestDB(t)))

	t.Run("AppliesDefaults", func(t *testing.T) {
		dto := validDTO()
		dto.Category = ""

		q, err := svc.Create(ctx, dto)
		require.NoError(t, err)
		assert.Equal(t, question.DefaultCategory, q.Category)
		assert.Equal(t, question.DefaultPoints, q.Points)
		assert.Equal(t, question.DefaultTimeLimit, q.TimeLimit)
		assert.True(t, q.IsActive)
	})

	cases := []struct {
		name   string
		mutate func(*question.QuestionDTO)
	}{
		{"MissingQuestion", func(d *question.QuestionDTO) { d.Question = "" }},
		{"SingleOption", func(d *question.QuestionDTO) { d.Options = []string{"only"} }},
		{"MissingCorrect", func(d *question.QuestionDTO) { d.Correct = nil }},
		{"NegativeCorrect", func(d *question.QuestionDTO) { d.Correct = intPtr(-1) }},
		{"CorrectOutOfRange", func(d *question.QuestionDTO) { d.Correct = intPtr(4) }},
		{"UnknownDifficulty", func(d *question.QuestionDTO) { d.Difficulty = "extreme" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dto := validDTO()
			tc.mutate(&dto)

			_, err := svc.Create(ctx, dto)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		})
	}
}

func TestServiceSample(t *testing.T) {
	ctx := context.Background()
	svc := question.NewService(question.NewRepository(newTestDB(t)))

	_, err := svc.Sample(ctx, question.Easy, "all", 10)
	assert.ErrorIs(t, err, question.ErrNoQuestions)

	_, err = svc.Create(ctx, validDTO())
	require.NoError(t, err)

	qs, err := svc.Sample(ctx, question.Easy, "all", 0)
	require.NoError(t, err)
	assert.Len(t, qs, 1)

	_, err = svc.Sample(ctx, question.Difficulty("extreme"), "all", 10)
	assert.ErrorIs(t, err, question.ErrInvalidDifficulty)
}

func TestServiceUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := question.NewService(question.NewRepository(newTestDB(t)))

	created, err := svc.Create(ctx, validDTO())
	require.NoError(t, err)

	t.Run("Update", func(t *testing.T) {
		dto := validDTO()
		dto.Question = "Capital of France?"
		dto.Difficulty = "medium"

		updated, err := svc.Update(ctx, created.ID.String(), dto)
		require.NoError(t, err)
		assert.Equal(t, "Capital of France?", updated.Question)
		assert.Equal(t, question.Medium, updated.Difficulty)
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, err := svc.Update(ctx, "not-a-uuid", validDTO())
		assert.ErrorIs(t, err, question.ErrInvalidID)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID.String()))
		_, err := svc.Get(ctx, created.ID.String())
		assert.ErrorIs(t, err, question.ErrQuestionNotFound)
	})
}

func TestPublicHidesCorrect(t *testing.T) {
	q := question.Question{Question: "q", Options: []string{"a", "b"}, Correct: 1}
	pub := q.Public()

	assert.Equal(t, []string{"a", "b"}, pub.Options)
	pub.Options[0] = "mutated"
	assert.Equal(t, "a", q.Options[0], "public view must not alias the stored options")
}
