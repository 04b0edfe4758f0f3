package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ProfileKey generates the cache key for one source's profile. Keys
// are versioned so a methodology change invalidates stale profiles.
func ProfileKey(domain string) string {
	hash := sha256.Sum256([]byte(domain))
	return "mediascope:v2:" + hex.EncodeToString(hash[:])
}
