package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// ValidateKey checks that a cache key is usable. It must be the first call
// of every public store operation.
func ValidateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}

// KeyDigest maps a raw key to its fixed-length hex storage locator.
// Keys are never persisted as-is; the digest is the filename-safe identity.
// Collisions are accepted as an extremely low-probability risk.
func KeyDigest(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
