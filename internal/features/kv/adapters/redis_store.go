package adapters

import (
	"context"
	"fmt"
	"time"

	"kvcache/internal/features/kv/domain"
	"kvcache/internal/features/kv/ports"

	"github.com/vmihailenco/msgpack/v5"
)

const ackOK = "OK"

// RedisStore implements ports.Store on top of a ports.RemoteClient. Values
// are msgpack-encoded before they leave the process. Expiry is enforced by
// the server, so a non-zero TTL is clamped up to at least one second and is
// never treated as already expired; this deliberately contrasts with the
// file-backed policy.
type RedisStore struct {
	client ports.RemoteClient
}

// NewRedisStore wraps a remote client in the cache contract.
func NewRedisStore(client ports.RemoteClient) *RedisStore {
	return &RedisStore{client: client}
}

// remoteTTLSeconds converts a TTL to the SET EX argument. Zero means no
// expiration; anything else is clamped to at least one second.
func remoteTTLSeconds(ttl time.Duration) int64 {
	if ttl == 0 {
		return 0
	}
	secs := int64(ttl / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

func encodeValue(value any) ([]byte, error) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	return data, nil
}

func decodeValue(data []byte) (any, error) {
	var value any
	if err := msgpack.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	return value, nil
}

func (s *RedisStore) Get(ctx context.Context, key string, def any) (any, error) {
	if err := domain.ValidateKey(key); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return def, nil
	}
	return decodeValue(data)
}

func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := domain.ValidateKey(key); err != nil {
		return err
	}

	data, err := encodeValue(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, remoteTTLSeconds(ttl))
}

func (s *RedisStore) Delete(ctx context.Context, key string) (bool, error) {
	if err := domain.ValidateKey(key); err != nil {
		return false, err
	}

	n, err := s.client.Del(ctx, key)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.FlushAll(ctx)
}

func (s *RedisStore) Has(ctx context.Context, key string) (bool, error) {
	if err := domain.ValidateKey(key); err != nil {
		return false, err
	}
	return s.client.Exists(ctx, key)
}

// GetMultiple resolves all keys in a single MGET round trip. Missing keys
// yield def; the reply is aligned to input order by the client.
func (s *RedisStore) GetMultiple(ctx context.Context, keys []string, def any) (map[string]any, error) {
	for _, key := range keys {
		if err := domain.ValidateKey(key); err != nil {
			return nil, err
		}
	}
	if len(keys) == 0 {
		return map[string]any{}, nil
	}

	slots, err := s.client.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(keys))
	for i, key := range keys {
		if slots[i] == nil {
			out[key] = def
			continue
		}
		value, err := decodeValue(slots[i])
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}

// SetMultiple pipelines one SET per entry and is atomic at the ack level:
// it fails if any pipelined write did not acknowledge success. This is
// stricter than the best-effort file-backed batches, intentionally so.
func (s *RedisStore) SetMultiple(ctx context.Context, values map[string]any, ttl time.Duration) error {
	for key := range values {
		if err := domain.ValidateKey(key); err != nil {
			return err
		}
	}
	if len(values) == 0 {
		return nil
	}

	encoded := make(map[string][]byte, len(values))
	for key, value := range values {
		data, err := encodeValue(value)
		if err != nil {
			return err
		}
		encoded[key] = data
	}

	acks, err := s.client.PipelineSet(ctx, encoded, remoteTTLSeconds(ttl))
	if err != nil {
		return err
	}
	for _, ack := range acks {
		if ack != ackOK {
			return fmt.Errorf("remote batch set rejected: ack %q", ack)
		}
	}
	return nil
}

// DeleteMultiple removes all keys in one DEL round trip. It reports success
// when the round trip succeeded, whether or not every key existed.
func (s *RedisStore) DeleteMultiple(ctx context.Context, keys []string) (bool, error) {
	for _, key := range keys {
		if err := domain.ValidateKey(key); err != nil {
			return false, err
		}
	}
	if len(keys) == 0 {
		return true, nil
	}

	if _, err := s.client.Del(ctx, keys...); err != nil {
		return false, err
	}
	return true, nil
}
