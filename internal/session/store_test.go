package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quiz-arena/internal/session"
)

func sampleState() *session.State {
	return &session.State{
		Handle:     uuid.New(),
		Username:   "ana",
		Category:   "all",
		Difficulty: "easy",
		Questions:  makeQuestions(3),
		Answers:    []session.Answer{},
		StartedAt:  time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
	}
}

func exerciseStore(t *testing.T, store session.Store) {
	ctx := context.Background()

	t.Run("MissingHandle", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, session.ErrNoActiveSession)
	})

	t.Run("SaveGetDelete", func(t *testing.T) {
		st := sampleState()
		require.NoError(t, store.Save(ctx, st))

		got, err := store.Get(ctx, st.Handle)
		require.NoError(t, err)
		assert.Equal(t, st.Username, got.Username)
		assert.Equal(t, st.Questions[1].Correct, got.Questions[1].Correct)
		assert.Equal(t, []string(st.Questions[0].Options), []string(got.Questions[0].Options))
		assert.True(t, st.StartedAt.Equal(got.StartedAt))

		require.NoError(t, store.Delete(ctx, st.Handle))
		_, err = store.Get(ctx, st.Handle)
		assert.ErrorIs(t, err, session.ErrNoActiveSession)
	})

	t.Run("ReturnedStateIsDetached", func(t *testing.T) {
		st := sampleState()
		require.NoError(t, store.Save(ctx, st))

		got, err := store.Get(ctx, st.Handle)
		require.NoError(t, err)
		got.Cursor = 2
		got.Answers = append(got.Answers, session.Answer{Chosen: 1})

		again, err := store.Get(ctx, st.Handle)
		require.NoError(t, err)
		assert.Zero(t, again.Cursor)
		assert.Empty(t, again.Answers)
	})
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, session.NewMemoryStore(time.Hour))

	t.Run("ConcurrentAccess", func(t *testing.T) {
		ctx := context.Background()
		store := session.NewMemoryStore(time.Hour)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				st := sampleState()
				_ = store.Save(ctx, st)
				_, _ = store.Get(ctx, st.Handle)
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, store.Len())
	})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseStore(t, session.NewRedisStore(client, time.Hour))

	t.Run("KeysExpire", func(t *testing.T) {
		ctx := context.Background()
		store := session.NewRedisStore(client, time.Minute)

		st := sampleState()
		require.NoError(t, store.Save(ctx, st))
		assert.True(t, mr.Exists("quiz:session:"+st.Handle.String()))

		mr.FastForward(2 * time.Minute)
		_, err := store.Get(ctx, st.Handle)
		assert.ErrorIs(t, err, session.ErrNoActiveSession)
	})

	t.Run("EngineOverRedis", func(t *testing.T) {
		ctx := context.Background()
		scores := &fakeScores{}
		svc := session.NewService(session.NewRedisStore(client, time.Hour), &fakeQuestions{questions: makeQuestions(2)}, scores, nil, session.Options{})

		res, err := svc.Start(ctx, session.StartRequest{Username: "redis"})
		require.NoError(t, err)

		_, err = svc.SubmitAnswer(ctx, res.Handle, 0)
		require.NoError(t, err)
		last, err := svc.SubmitAnswer(ctx, res.Handle, 1)
		require.NoError(t, err)

		assert.True(t, last.IsCompleted)
		assert.Equal(t, 2, last.FinalScore)
		assert.Empty(t, last.Achievements)
		assert.Len(t, scores.records, 1)
	})
}
