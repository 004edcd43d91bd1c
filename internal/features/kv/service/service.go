package service

import (
	"context"
	"fmt"
	"time"

	"kvcache/internal/features/kv/ports"
)

// miss is a private default sentinel, so a stored nil value can still be
// told apart from an absent key at this layer.
type miss struct{}

var missSentinel = miss{}

// KVServiceImpl implements ports.KVService over any cache backend.
type KVServiceImpl struct {
	store ports.Store
}

// NewKVService creates a new KVServiceImpl.
func NewKVService(store ports.Store) *KVServiceImpl {
	return &KVServiceImpl{store: store}
}

// Get returns the value for key and whether it was present.
func (s *KVServiceImpl) Get(ctx context.Context, key string) (any, bool, error) {
	val, err := s.store.Get(ctx, key, missSentinel)
	if err != nil {
		return nil, false, fmt.Errorf("service: failed to get key: %w", err)
	}
	if _, absent := val.(miss); absent {
		return nil, false, nil
	}
	return val, true, nil
}

// Set stores value under key with the given TTL.
func (s *KVServiceImpl) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := s.store.Set(ctx, key, value, ttl); err != nil {
		return fmt.Errorf("service: failed to set key: %w", err)
	}
	return nil
}

// Delete removes key and reports whether anything was removed.
func (s *KVServiceImpl) Delete(ctx context.Context, key string) (bool, error) {
	deleted, err := s.store.Delete(ctx, key)
	if err != nil {
		return false, fmt.Errorf("service: failed to delete key: %w", err)
	}
	return deleted, nil
}

// Flush empties the backend.
func (s *KVServiceImpl) Flush(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("service: failed to flush: %w", err)
	}
	return nil
}

// Has reports whether key holds a live value.
func (s *KVServiceImpl) Has(ctx context.Context, key string) (bool, error) {
	ok, err := s.store.Has(ctx, key)
	if err != nil {
		return false, fmt.Errorf("service: failed to check key: %w", err)
	}
	return ok, nil
}

// GetMany returns one entry per key, def for misses.
func (s *KVServiceImpl) GetMany(ctx context.Context, keys []string, def any) (map[string]any, error) {
	out, err := s.store.GetMultiple(ctx, keys, def)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get keys: %w", err)
	}
	return out, nil
}

// SetMany stores every entry with the same TTL.
func (s *KVServiceImpl) SetMany(ctx context.Context, values map[string]any, ttl time.Duration) error {
	if err := s.store.SetMultiple(ctx, values, ttl); err != nil {
		return fmt.Errorf("service: failed to set keys: %w", err)
	}
	return nil
}

// DeleteMany removes every key, reporting the backend's batch outcome.
func (s *KVServiceImpl) DeleteMany(ctx context.Context, keys []string) (bool, error) {
	deleted, err := s.store.DeleteMultiple(ctx, keys)
	if err != nil {
		return false, fmt.Errorf("service: failed to delete keys: %w", err)
	}
	return deleted, nil
}
