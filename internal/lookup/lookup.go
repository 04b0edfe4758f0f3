// Package lookup serves the static auxiliary tables: country
// press-freedom tiers, domain traffic tiers, and media types. The
// defaults ship embedded as CSV; malformed embedded data is a startup
// error, never a per-run one.
package lookup

import (
	"embed"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/akoval/mediascope/internal/model"
)

//go:embed data/freedom.csv data/traffic.csv data/media_types.csv
var dataFS embed.FS

// Tables holds the loaded lookup data
type Tables struct {
	freedom   map[string]model.FreedomTier
	traffic   map[string]model.TrafficTier
	mediaType map[string]string
}

// Load parses the embedded tables
func Load() (*Tables, error) {
	t := &Tables{
		freedom:   make(map[string]model.FreedomTier),
		traffic:   make(map[string]model.TrafficTier),
		mediaType: make(map[string]string),
	}

	if err := readCSV("data/freedom.csv", func(key, val string) {
		t.freedom[key] = model.FreedomTier(val)
	}); err != nil {
		return nil, err
	}
	if err := readCSV("data/traffic.csv", func(key, val string) {
		t.traffic[key] = model.TrafficTier(val)
	}); err != nil {
		return nil, err
	}
	if err := readCSV("data/media_types.csv", func(key, val string) {
		t.mediaType[key] = val
	}); err != nil {
		return nil, err
	}

	return t, nil
}

func readCSV(name string, add func(key, val string)) error {
	f, err := dataFS.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		add(normalize(rec[0]), strings.TrimSpace(rec[1]))
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Freedom returns the press-freedom tier for a country. Unknown
// countries report Partly Free: no penalty, no credit.
func (t *Tables) Freedom(country string) model.FreedomTier {
	if tier, ok := t.freedom[normalize(country)]; ok {
		return tier
	}
	return model.FreedomPartlyFree
}

// Traffic returns the traffic tier for a domain, Minimal when unlisted
func (t *Tables) Traffic(domain string) model.TrafficTier {
	if tier, ok := t.traffic[normalizeDomain(domain)]; ok {
		return tier
	}
	return model.TrafficMinimal
}

// MediaType returns the media type for a domain, "Website" when unlisted
func (t *Tables) MediaType(domain string) string {
	if mt, ok := t.mediaType[normalizeDomain(domain)]; ok {
		return mt
	}
	return "Website"
}

func normalizeDomain(domain string) string {
	d := normalize(domain)
	d = strings.TrimPrefix(d, "www.")
	return d
}
