package adapters

import (
	"context"
	"time"

	"kvcache/internal/features/kv/domain"
)

// MemoryStore is the mapping-backed baseline implementation of ports.Store.
// TTLs are never enforced and there is no internal locking; it is safe only
// under single-threaded or externally synchronized use.
type MemoryStore struct {
	entries map[string]any
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]any)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, def any) (any, error) {
	if err := domain.ValidateKey(key); err != nil {
		return nil, err
	}
	val, ok := s.entries[key]
	if !ok {
		return def, nil
	}
	return val, nil
}

// Set stores the value. The ttl argument is ignored.
func (s *MemoryStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := domain.ValidateKey(key); err != nil {
		return err
	}
	s.entries[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) (bool, error) {
	if err := domain.ValidateKey(key); err != nil {
		return false, err
	}
	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.entries = make(map[string]any)
	return nil
}

func (s *MemoryStore) Has(ctx context.Context, key string) (bool, error) {
	val, err := s.Get(ctx, key, nil)
	if err != nil {
		return false, err
	}
	return val != nil, nil
}

func (s *MemoryStore) GetMultiple(ctx context.Context, keys []string, def any) (map[string]any, error) {
	for _, key := range keys {
		if err := domain.ValidateKey(key); err != nil {
			return nil, err
		}
	}

	out := make(map[string]any, len(keys))
	for _, key := range keys {
		val, err := s.Get(ctx, key, def)
		if err != nil {
			out[key] = def
			continue
		}
		out[key] = val
	}
	return out, nil
}

func (s *MemoryStore) SetMultiple(ctx context.Context, values map[string]any, ttl time.Duration) error {
	for key := range values {
		if err := domain.ValidateKey(key); err != nil {
			return err
		}
	}

	for key, value := range values {
		s.entries[key] = value
	}
	return nil
}

// DeleteMultiple removes every key and reports false if any single delete
// missed. This is stricter than the file variants' always-true policy; the
// asymmetry is intentional.
func (s *MemoryStore) DeleteMultiple(ctx context.Context, keys []string) (bool, error) {
	for _, key := range keys {
		if err := domain.ValidateKey(key); err != nil {
			return false, err
		}
	}

	ok := true
	for _, key := range keys {
		deleted, _ := s.Delete(ctx, key)
		if !deleted {
			ok = false
		}
	}
	return ok, nil
}
