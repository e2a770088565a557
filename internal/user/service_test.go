package user_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quiz-arena/internal/achievement"
	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/user"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}))
	return db
}

func TestRecordCompletion(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(user.NewRepository(newTestDB(t)))
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("FirstQuizCreatesUser", func(t *testing.T) {
		u, fresh, err := svc.RecordCompletion(ctx, user.Completion{
			Username: "ana", Score: 10, Total: 10, Points: 100, Percentage: 100,
			ElapsedSeconds: 25, LongestStreak: 10, FinishedAt: now,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, u.TotalQuizzes)
		assert.Equal(t, 2, u.Level)
		assert.ElementsMatch(t, []achievement.ID{
			achievement.FirstQuiz, achievement.PerfectScore, achievement.SpeedDemon,
			achievement.OnFire, achievement.HighScorer,
		}, fresh)
	})

	t.Run("SecondQuizDoesNotRepeatAchievements", func(t *testing.T) {
		u, fresh, err := svc.RecordCompletion(ctx, user.Completion{
			Username: "ana", Score: 5, Total: 10, Points: 50, Percentage: 50,
			ElapsedSeconds: 60, LongestStreak: 1, FinishedAt: now.Add(time.Minute),
		})
		require.NoError(t, err)

		assert.Empty(t, fresh)
		assert.Equal(t, 2, u.TotalQuizzes)
		assert.Equal(t, 10, u.BestScore)
		assert.InDelta(t, 75.0, u.AverageAccuracy, 0.0001)
		assert.Len(t, u.Achievements, 5)
	})

	t.Run("PersistedAcrossLookups", func(t *testing.T) {
		u, err := svc.Get(ctx, "ana")
		require.NoError(t, err)
		assert.Equal(t, 2, u.TotalQuizzes)
		assert.True(t, u.HasAchievement(string(achievement.FirstQuiz)))
	})

	t.Run("BlankNameIsAnonymous", func(t *testing.T) {
		u, _, err := svc.RecordCompletion(ctx, user.Completion{Score: 1, Total: 2, Percentage: 50, FinishedAt: now})
		require.NoError(t, err)
		assert.Equal(t, user.AnonymousUsername, u.Username)
	})

	t.Run("ListOrdersByActivity", func(t *testing.T) {
		users, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "ana", users[0].Username)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := svc.Get(ctx, "nobody")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestRecordCompletionConcurrent(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(user.NewRepository(newTestDB(t)))
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	const players = 20
	errs := make(chan error, players)
	var wg sync.WaitGroup
	for i := 0; i < players; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.RecordCompletion(ctx, user.Completion{
				Username: "  ", Score: 5, Total: 10, Points: 50, Percentage: 50,
				ElapsedSeconds: 40, LongestStreak: 2, FinishedAt: now,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	u, err := svc.Get(ctx, user.AnonymousUsername)
	require.NoError(t, err)
	assert.Equal(t, players, u.TotalQuizzes)
	assert.Equal(t, players*5, u.TotalScore)
	assert.ElementsMatch(t, []string{string(achievement.FirstQuiz), string(achievement.QuizMaster)}, []string(u.Achievements))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
