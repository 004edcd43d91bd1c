package ports

import (
	"context"
	"time"
)

// Store is the capability contract implemented by every cache backend
// (in-memory, binary file, JSON file, redis). Backends are interchangeable
// but keep their own quirks; notably, batch atomicity differs by backend:
//
//   - file-backed stores apply batch entries independently and report
//     success once iteration completes, regardless of per-entry outcome
//   - the in-memory store reports DeleteMultiple as false if any single
//     delete missed
//   - the redis store's SetMultiple is atomic at the ack level and fails
//     if any pipelined write did not acknowledge success
//
// These asymmetries are intentional and must not be unified.
type Store interface {
	// Get returns the live value for key, or def if the key is absent or
	// its record has expired. Expired records are deleted on read.
	Get(ctx context.Context, key string, def any) (any, error)

	// Set stores value under key. A zero ttl means the record never
	// expires. File backends treat a negative ttl as already expired; the
	// redis backend clamps any non-zero ttl up to at least one second.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key. It returns false with a nil error when the key
	// was not present; absence is not an error, but not a removal either.
	Delete(ctx context.Context, key string) (bool, error)

	// Clear removes every entry owned by the backend.
	Clear(ctx context.Context) error

	// Has reports whether key holds a live value. A stored nil value is
	// indistinguishable from absence.
	Has(ctx context.Context, key string) (bool, error)

	// GetMultiple returns one entry per input key, with def filled in for
	// keys that are absent or expired. Entries are resolved independently.
	// The result map is unordered; callers that need the original order
	// should iterate their input keys and index into the result.
	GetMultiple(ctx context.Context, keys []string, def any) (map[string]any, error)

	// SetMultiple stores every entry of values with the same ttl.
	SetMultiple(ctx context.Context, values map[string]any, ttl time.Duration) error

	// DeleteMultiple removes every key. The boolean follows the backend's
	// batch policy described on Store.
	DeleteMultiple(ctx context.Context, keys []string) (bool, error)
}

// KVService is the primary port consumed by the HTTP handlers.
type KVService interface {
	Get(ctx context.Context, key string) (any, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
	Flush(ctx context.Context) error
	Has(ctx context.Context, key string) (bool, error)
	GetMany(ctx context.Context, keys []string, def any) (map[string]any, error)
	SetMany(ctx context.Context, values map[string]any, ttl time.Duration) error
	DeleteMany(ctx context.Context, keys []string) (bool, error)
}

// RemoteClient is the boundary to the remote key-value server. The cache
// core issues only these commands; connection management, retries and
// timeouts belong to the implementing client.
type RemoteClient interface {
	// Get returns the raw stored bytes, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores raw bytes. ttlSeconds <= 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttlSeconds int64) error

	// Del removes the given keys and returns how many existed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// MGet returns one slot per input key, aligned to input order, with a
	// nil slot for every miss.
	MGet(ctx context.Context, keys ...string) ([][]byte, error)

	// PipelineSet issues one SET per entry in a single round trip and
	// returns the server ack for each, one per entry.
	PipelineSet(ctx context.Context, values map[string][]byte, ttlSeconds int64) ([]string, error)

	// Exists reports whether key is present on the server.
	Exists(ctx context.Context, key string) (bool, error)

	// FlushAll removes every key on the server.
	FlushAll(ctx context.Context) error

	// Ping checks that the server is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection.
	Close() error
}
