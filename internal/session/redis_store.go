package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
)

const redisKeyPrefix = "quiz:session:"

// RedisStore keeps each session as a JSON value with a sliding TTL.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(handle uuid.UUID) string {
	return redisKeyPrefix + handle.String()
}

func (r *RedisStore) Get(ctx context.Context, handle uuid.UUID) (*State, error) {
	raw, err := r.client.Get(ctx, redisKey(handle)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, apperr.Store("load session", err)
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, apperr.Store("decode session", err)
	}
	return &st, nil
}

func (r *RedisStore) Save(ctx context.Context, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return apperr.Store("encode session", err)
	}
	if err := r.client.Set(ctx, redisKey(state.Handle), raw, r.ttl).Err(); err != nil {
		return apperr.Store("save session", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, handle uuid.UUID) error {
	if err := r.client.Del(ctx, redisKey(handle)).Err(); err != nil {
		return apperr.Store("delete session", err)
	}
	return nil
}
