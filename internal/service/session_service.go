package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/intervue/platform-api/internal/config"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps bearer tokens in Redis with a sliding TTL. A token maps
// to the user id; the profile is always re-read from the store so a role or
// auth change is visible on the next request, never cached past it.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{rdb: rdb, ttl: ttl}
}

// NewRedisClient builds the shared Redis connection.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create issues a fresh token for the user.
func (s *SessionStore) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionKey(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id behind a token and refreshes its TTL.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	s.rdb.Expire(ctx, sessionKey(token), s.ttl)
	return userID, nil
}

// Destroy invalidates a token. Destroying an unknown token is not an error.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
