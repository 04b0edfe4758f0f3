// Package oracle answers the engine's questions with an LLM backend.
// The engine never sees prompts or providers: it consumes booleans,
// stances, and numeric component scores through narrow interfaces, so
// every decision the LLM makes is replayable with a scripted oracle.
package oracle

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Client is a minimal completion client. Implementations wrap one
// provider API; every higher-level judgment goes through Ask.
type Client interface {
	// Name returns the provider name
	Name() string

	// Ask sends one system+user prompt pair and returns the raw reply
	Ask(ctx context.Context, system, prompt string) (string, error)

	// IsAvailable checks the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Config holds oracle provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Timeout:   30,
		MaxTokens: 256,
	}
}

const systemPrompt = "You are a media-bias analyst. Answer strictly in the format requested, with no commentary. Judge only what the supplied coverage supports; never use outside knowledge of the outlet."

// parseYesNo reads a YES/NO reply
func parseYesNo(reply string) (bool, error) {
	token := firstToken(reply)
	switch token {
	case "YES":
		return true, nil
	case "NO":
		return false, nil
	}
	return false, fmt.Errorf("unparseable yes/no reply: %q", truncate(reply, 80))
}

// parseChoice reads a reply expected to be one of the given uppercase
// options
func parseChoice(reply string, options ...string) (string, error) {
	token := firstToken(reply)
	for _, opt := range options {
		if token == opt {
			return opt, nil
		}
	}
	return "", fmt.Errorf("unparseable choice reply: %q", truncate(reply, 80))
}

// parseScore reads a numeric reply and checks the declared range.
// Out-of-range values are the caller's problem (the combiner clamps);
// only non-numbers are errors here.
func parseScore(reply string) (float64, error) {
	token := strings.Trim(firstToken(reply), "+")
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable score reply: %q", truncate(reply, 80))
	}
	return v, nil
}

func firstToken(s string) string {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(strings.Trim(fields[0], ".,:;!\"'`"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
