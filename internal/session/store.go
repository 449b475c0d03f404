package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/commercekit/storefront-bff/internal/config"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Store persists the per-shopper session binding. Get on an unknown session id
// returns a zero-value SessionData, not an error: a fresh shopper simply has
// no binding yet.
type Store interface {
	Get(ctx context.Context, sessionID string) (models.SessionData, error)
	Put(ctx context.Context, sessionID string, data models.SessionData) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis", slog.String("host", cfg.RedisConnect.Host))
	return client, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (models.SessionData, error) {

	var data models.SessionData

	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return data, nil
		}

		return data, fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}

	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return models.SessionData{}, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}

	return data, nil
}

func (s *redisStore) Put(ctx context.Context, sessionID string, data models.SessionData) error {

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session %s: %w", sessionID, err)
	}

	return nil
}
