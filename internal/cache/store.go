package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/akoval/mediascope/internal/model"
)

// ProfileStore persists finished profiles per domain. A profile stays
// valid for the configured freshness window (disk TTL); within it,
// repeat runs against the same source return the stored result instead
// of re-scraping and re-asking the oracle.
type ProfileStore struct {
	cache Cache
}

// NewProfileStore wraps a cache with profile serialization
func NewProfileStore(c Cache) *ProfileStore {
	return &ProfileStore{cache: c}
}

// Load returns the cached profile for a domain, if fresh
func (s *ProfileStore) Load(domain string) (*model.Profile, bool) {
	data, found := s.cache.Get(ProfileKey(domain))
	if !found {
		return nil, false
	}

	var p model.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		// Corrupt or pre-versioning entry; drop it
		_ = s.cache.Delete(ProfileKey(domain))
		return nil, false
	}
	return &p, true
}

// Save stores a profile for a domain with the given freshness window
func (s *ProfileStore) Save(domain string, p *model.Profile, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.cache.Set(ProfileKey(domain), data, ttl); err != nil {
		return fmt.Errorf("store profile: %w", err)
	}
	return nil
}
