package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kvcache/internal/features/kv/domain"

	"github.com/gofrs/flock"
)

// FileStore implements ports.Store with one file per key under a root
// directory, named by the key's digest. The codec decides the record
// encoding and the file extension, so the binary and JSON variants share
// this implementation. The instance assumes exclusive ownership of the
// root directory; cross-process safety relies only on the OS advisory
// lock held during writes.
type FileStore struct {
	root  string
	codec Codec

	// now is swappable for expiry tests.
	now func() time.Time
}

// NewFileStore creates the storage root (including parents) if absent and
// returns a store using the given codec.
func NewFileStore(root string, codec Codec) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileStore{root: root, codec: codec, now: time.Now}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.root, domain.KeyDigest(key)+s.codec.Extension())
}

// Get returns the live value for key, or def on a miss. An expired record
// is removed before the miss is reported. Undecodable bytes surface as
// domain.ErrCorruptRecord rather than a silent miss.
func (s *FileStore) Get(ctx context.Context, key string, def any) (any, error) {
	if err := domain.ValidateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	rec, err := s.codec.Decode(data)
	if err != nil {
		return nil, err
	}

	if rec.LiveAt(s.now()) {
		return rec.Value, nil
	}

	// Lazy expiry: the removal outcome does not change the miss.
	_, _ = s.Delete(ctx, key)
	return def, nil
}

// Set encodes the record and rewrites the whole file under an exclusive
// advisory lock held for the duration of the write.
func (s *FileStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := domain.ValidateKey(key); err != nil {
		return err
	}

	rec := domain.Record{Value: value, ExpiresAt: domain.AbsoluteExpiry(ttl, s.now())}
	data, err := s.codec.Encode(rec)
	if err != nil {
		return err
	}

	path := s.path(key)
	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock cache file: %w", err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	n, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("failed to write cache file: %w", werr)
	}
	if n != len(data) {
		return fmt.Errorf("short write to cache file: %d of %d bytes", n, len(data))
	}
	if cerr != nil {
		return fmt.Errorf("failed to close cache file: %w", cerr)
	}
	return nil
}

// Delete removes the key's file. A missing file yields (false, nil).
func (s *FileStore) Delete(ctx context.Context, key string) (bool, error) {
	if err := domain.ValidateKey(key); err != nil {
		return false, err
	}

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to remove cache file: %w", err)
	}
	return true, nil
}

// Clear removes everything under the root, child-first, then recreates the
// root. Individual unlink failures are not surfaced.
func (s *FileStore) Clear(ctx context.Context) error {
	_ = os.RemoveAll(s.root)
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to recreate cache directory: %w", err)
	}
	return nil
}

// Has reports whether key holds a live, non-nil value.
func (s *FileStore) Has(ctx context.Context, key string) (bool, error) {
	if err := domain.ValidateKey(key); err != nil {
		return false, err
	}
	val, err := s.Get(ctx, key, nil)
	if err != nil {
		return false, err
	}
	return val != nil, nil
}

// GetMultiple resolves each key independently; a key that misses or fails
// yields def. All keys are validated before any I/O happens.
func (s *FileStore) GetMultiple(ctx context.Context, keys []string, def any) (map[string]any, error) {
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

// SetMultiple applies Set to every entry independently. Once iteration
// completes it reports success regardless of per-entry outcome; that is
// the documented best-effort policy of the file variants.
func (s *FileStore) SetMultiple(ctx context.Context, values map[string]any, ttl time.Duration) error {
	for key := range values {
		if err := domain.ValidateKey(key); err != nil {
			return err
		}
	}

	for key, value := range values {
		_ = s.Set(ctx, key, value, ttl)
	}
	return nil
}

// DeleteMultiple applies Delete to every key independently and reports
// success once iteration completes, regardless of per-key outcome.
func (s *FileStore) DeleteMultiple(ctx context.Context, keys []string) (bool, error) {
	for _, key := range keys {
		if err := domain.ValidateKey(key); err != nil {
			return false, err
		}
	}

	for _, key := range keys {
		_, _ = s.Delete(ctx, key)
	}
	return true, nil
}
