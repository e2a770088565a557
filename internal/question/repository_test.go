package question_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/question"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&question.Question{}))
	return db
}

func insert(t *testing.T, repo question.Repository, q question.Question) question.Question {
	t.Helper()
	if q.Category == "" {
		q.Category = question.DefaultCategory
	}
	if len(q.Options) == 0 {
		q.Options = []string{"a", "b", "c", "d"}
	}
	require.NoError(t, repo.Create(context.Background(), &q))
	return q
}

func TestRepositorySample(t *testing.T) {
	ctx := context.Background()
	repo := question.NewRepository(newTestDB(t))

	for i := 0; i < 12; i++ {
		insert(t, repo, question.Question{Question: "easy geo", Difficulty: question.Easy, Category: "Geography", IsActive: true})
	}
	insert(t, repo, question.Question{Question: "easy math", Difficulty: question.Easy, Category: "Mathematics", IsActive: true})
	insert(t, repo, question.Question{Question: "hard", Difficulty: question.Hard, Category: "Physics", IsActive: true})
	insert(t, repo, question.Question{Question: "retired", Difficulty: question.Easy, Category: "Mathematics", IsActive: false})

	t.Run("LimitCapsResult", func(t *testing.T) {
		qs, err := repo.Sample(ctx, question.Easy, "all", 10)
		require.NoError(t, err)
		assert.Len(t, qs, 10)
		for _, q := range qs {
			assert.Equal(t, question.Easy, q.Difficulty)
		}
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		qs, err := repo.Sample(ctx, question.Easy, "Mathematics", 10)
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, "easy math", qs[0].Question)
	})

	t.Run("BlankCategoryIsUnfiltered", func(t *testing.T) {
		qs, err := repo.Sample(ctx, question.Hard, "", 10)
		require.NoError(t, err)
		assert.Len(t, qs, 1)
	})

	t.Run("NoMatchIsEmptyNotError", func(t *testing.T) {
		qs, err := repo.Sample(ctx, question.Medium, "all", 10)
		require.NoError(t, err)
		assert.Empty(t, qs)
	})

	t.Run("OptionsRoundTrip", func(t *testing.T) {
		qs, err := repo.Sample(ctx, question.Hard, "Physics", 1)
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, []string{"a", "b", "c", "d"}, []string(qs[0].Options))
	})
}

func TestRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := question.NewRepository(newTestDB(t))

	q := insert(t, repo, question.Question{Question: "What is 2 + 2?", Options: []string{"3", "4"}, Correct: 1, Difficulty: question.Easy, IsActive: true})
	require.NotEqual(t, uuid.Nil, q.ID)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, "What is 2 + 2?", got.Question)
		assert.Equal(t, 1, got.Correct)
	})

	t.Run("UpdateIncludesZeroValues", func(t *testing.T) {
		q.Correct = 0
		q.IsActive = false
		require.NoError(t, repo.Update(ctx, &q))

		got, err := repo.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Correct)
		assert.False(t, got.IsActive)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		missing := question.Question{ID: uuid.New(), Options: []string{"x", "y"}, Difficulty: question.Easy}
		assert.ErrorIs(t, repo.Update(ctx, &missing), question.ErrQuestionNotFound)
	})

	t.Run("CategoryCounts", func(t *testing.T) {
		insert(t, repo, question.Question{Question: "a", Difficulty: question.Easy, Category: "Science"})
		insert(t, repo, question.Question{Question: "b", Difficulty: question.Easy, Category: "Science"})

		counts, err := repo.CategoryCounts(ctx, 5)
		require.NoError(t, err)
		require.NotEmpty(t, counts)
		assert.Equal(t, "Science", counts[0].Category)
		assert.EqualValues(t, 2, counts[0].Count)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, q.ID))

		_, err := repo.GetByID(ctx, q.ID)
		assert.ErrorIs(t, err, question.ErrQuestionNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, q.ID), question.ErrQuestionNotFound)
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := question.NewRepository(newTestDB(t))

	n, err := question.Seed(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = question.Seed(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, n, "seeding a populated table is a no-op")

	easy, err := repo.Sample(ctx, question.Easy, "Geography", 10)
	require.NoError(t, err)
	assert.Len(t, easy, 3)
	for _, q := range easy {
		assert.True(t, q.HasValidAnswer())
	}
}
