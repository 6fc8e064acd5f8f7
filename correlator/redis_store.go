package correlator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "oauth_state:"

// RedisStore keeps pending attempts in Redis with a TTL matching their expiry
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: redisKeyPrefix,
	}
}

// OpenRedis parses a redis:// URL and verifies the server is reachable
func OpenRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	if rawURL == "" {
		return nil, errors.New("redis: connection URL is required")
	}

	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

func (s *RedisStore) key(binding string) string {
	return s.prefix + binding
}

// Save stores p under binding until p.ExpiresAt
func (s *RedisStore) Save(ctx context.Context, binding string, p Pending) error {
	ttl := time.Until(p.ExpiresAt)
	if ttl <= 0 {
		return errors.New("redis store: pending login already expired")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("redis store: marshal: %w", err)
	}

	return s.client.Set(ctx, s.key(binding), data, ttl).Err()
}

// Take atomically reads and deletes the attempt for binding
func (s *RedisStore) Take(ctx context.Context, binding string) (*Pending, error) {
	val, err := s.client.GetDel(ctx, s.key(binding)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis store: getdel: %w", err)
	}

	var p Pending
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, fmt.Errorf("redis store: unmarshal: %w", err)
	}
	if p.Expired(time.Now()) {
		return nil, nil
	}
	return &p, nil
}
