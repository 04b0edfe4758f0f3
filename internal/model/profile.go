package model

import "time"

// Article is one scraped page from the source under analysis
type Article struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// Profile is the complete structured result for one news source.
// Everything here is produced once per run and never mutated after
// assembly; repeated runs on identical inputs render byte-identically.
type Profile struct {
	Outlet      string    `json:"outlet"`
	SourceURL   string    `json:"source_url"`
	GeneratedAt time.Time `json:"generated_at"`

	ArticlesAnalyzed int `json:"articles_analyzed"`

	// Per-topic and per-dimension audit trail
	Topics     []TopicResult    `json:"topics"`
	Dimensions []DimensionScore `json:"dimensions"`

	// Composite inputs, kept for auditability
	BiasComponents       []Component `json:"bias_components"`
	FactualityComponents []Component `json:"factuality_components"`

	BiasScore       float64 `json:"bias_score"` // [-10,+10], 2 decimals
	BiasLabel       string  `json:"bias_label"`
	FactualityScore float64 `json:"factuality_score"` // [0,10], 2 decimals
	FactualityLabel string  `json:"factuality_label"`

	// Auxiliary signals feeding the credibility tally
	Traffic   TrafficTier `json:"traffic"`
	SiteAge   int         `json:"site_age_years"`
	Country   string      `json:"country,omitempty"`
	Freedom   FreedomTier `json:"freedom"`
	MediaType string      `json:"media_type,omitempty"`

	CredibilityPoints int    `json:"credibility_points"` // may exceed 0-10 when bonuses stack
	CredibilityLevel  string `json:"credibility_level"`

	Warnings []string `json:"warnings,omitempty"`
}
