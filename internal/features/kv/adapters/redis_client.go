package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient implements ports.RemoteClient using go-redis.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new remote client.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRedisClient(redisURL string) (*RedisClient, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &RedisClient{client: redis.NewClient(opts)}, nil
}

// Get returns the raw bytes stored under key, or (nil, nil) on a miss.
func (r *RedisClient) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

// Set stores value under key. ttlSeconds <= 0 stores without expiration.
func (r *RedisClient) Set(ctx context.Context, key string, value []byte, ttlSeconds int64) error {
	var ttl time.Duration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Del removes the given keys and returns how many of them existed.
func (r *RedisClient) Del(ctx context.Context, keys ...string) (int64, error) {
	n, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to delete keys: %w", err)
	}
	return n, nil
}

// MGet returns one slot per key, aligned to input order, nil on a miss.
func (r *RedisClient) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mget keys: %w", err)
	}

	out := make([][]byte, len(vals))
	for i, val := range vals {
		if val == nil {
			continue
		}
		str, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected mget reply type %T for key %s", val, keys[i])
		}
		out[i] = []byte(str)
	}
	return out, nil
}

// PipelineSet issues one SET per entry in a single round trip and returns
// the server's ack for each.
func (r *RedisClient) PipelineSet(ctx context.Context, values map[string][]byte, ttlSeconds int64) ([]string, error) {
	var ttl time.Duration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StatusCmd, 0, len(values))
	for key, value := range values {
		cmds = append(cmds, pipe.Set(ctx, key, value, ttl))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to execute set pipeline: %w", err)
	}

	acks := make([]string, len(cmds))
	for i, cmd := range cmds {
		acks[i] = cmd.Val()
	}
	return acks, nil
}

// Exists reports whether key is present.
func (r *RedisClient) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key %s: %w", key, err)
	}
	return n > 0, nil
}

// FlushAll removes every key on the server.
func (r *RedisClient) FlushAll(ctx context.Context) error {
	if err := r.client.FlushAll(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisClient) Close() error {
	return r.client.Close()
}
