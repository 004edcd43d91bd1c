package domain

import "time"

// Record is the unit of storage: an opaque value plus an optional absolute
// expiry instant. A nil ExpiresAt means the record never expires.
type Record struct {
	Value     any
	ExpiresAt *time.Time
}

// AbsoluteExpiry converts a TTL into an absolute expiry instant.
// A zero TTL means "never expires" and yields nil. A negative TTL is not
// rejected; it yields an already-past instant, so the very next read treats
// the record as expired. That quirk is part of the contract.
func AbsoluteExpiry(ttl time.Duration, now time.Time) *time.Time {
	if ttl == 0 {
		return nil
	}
	at := now.Add(ttl)
	return &at
}

// LiveAt reports whether the record is still live at the given instant.
// The boundary is inclusive: a record expiring exactly now is still live.
func (r Record) LiveAt(now time.Time) bool {
	return r.ExpiresAt == nil || !r.ExpiresAt.Before(now)
}
