package model

import "time"

// Config holds the full runtime configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Oracle      OracleConfig      `yaml:"oracle"`
	Scrape      ScrapeConfig      `yaml:"scrape"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls outbound fetching
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	RatePerSec   float64       `yaml:"rate_per_sec"` // per-domain fetch rate
	RateBurst    int           `yaml:"rate_burst"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
	NoProxy    string `yaml:"no_proxy"`
}

// CacheConfig controls the layered profile cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"` // profile freshness window
}

// OracleConfig selects and tunes the LLM oracle backend
type OracleConfig struct {
	Provider  string `yaml:"provider"` // openai, anthropic, ollama
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // environment only, never persisted
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds, per call
	MaxTokens int    `yaml:"max_tokens"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
	NoProxy    string `yaml:"no_proxy"`
}

// ScrapeConfig controls corpus building from the source site
type ScrapeConfig struct {
	MaxArticles   int  `yaml:"max_articles"`
	MinTextLength int  `yaml:"min_text_length"` // skip navigation/stub pages
	RespectRobots bool `yaml:"respect_robots"`
}

// ConcurrencyConfig sizes the worker pools
type ConcurrencyConfig struct {
	TopicWorkers int `yaml:"topic_workers"` // parallel decision-tree evaluations
	FetchWorkers int `yaml:"fetch_workers"` // parallel article fetches
	BatchWorkers int `yaml:"batch_workers"` // parallel sources in batch mode
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Mediascope/0.2 (+https://github.com/akoval/mediascope)",
			MaxBodyBytes: 2_000_000,
			RatePerSec:   2,
			RateBurst:    4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   30 * 24 * time.Hour,
		},
		Oracle: OracleConfig{
			Provider:  "openai",
			Model:     "",
			Timeout:   30,
			MaxTokens: 256,
		},
		Scrape: ScrapeConfig{
			MaxArticles:   20,
			MinTextLength: 400,
			RespectRobots: true,
		},
		Concurrency: ConcurrencyConfig{
			TopicWorkers: 4,
			FetchWorkers: 4,
			BatchWorkers: 2,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
