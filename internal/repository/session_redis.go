package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/linskybing/support-tracker/internal/domain/session"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepo keeps sessions as JSON values that expire with the session.
type RedisSessionRepo struct {
	client *redis.Client
}

func NewRedisSessionRepo(client *redis.Client) *RedisSessionRepo {
	return &RedisSessionRepo{client: client}
}

func (r *RedisSessionRepo) CreateSession(ctx context.Context, s *session.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	value, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+s.ID, value, ttl).Err()
}

func (r *RedisSessionRepo) GetSession(ctx context.Context, id string) (session.Session, error) {
	var s session.Session
	val, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return s, ErrSessionNotFound
	}
	if err != nil {
		return s, err
	}
	err = json.Unmarshal(val, &s)
	return s, err
}

func (r *RedisSessionRepo) DeleteSession(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}
