package worker

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter spaces outbound fetches per source domain. A profiling run
// hits one news site tens of times in quick succession; each domain
// gets its own token bucket so the scraper stays polite without
// unrelated hosts throttling each other.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*rate.Limiter
	perSec  rate.Limit
	burst   int
}

// NewLimiter creates a limiter applying the given rate to every domain
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		buckets: make(map[string]*rate.Limiter),
		perSec:  rate.Limit(requestsPerSecond),
		burst:   burst,
	}
}

// Wait blocks until the URL's domain has rate clearance
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	domain, err := extractDomain(rawURL)
	if err != nil {
		return err
	}
	return l.bucket(domain).Wait(ctx)
}

// WaitWithDelay waits for rate clearance, then sleeps the additional
// delay. The scraper passes the robots.txt crawl-delay here so both
// politeness mechanisms apply in sequence.
func (l *Limiter) WaitWithDelay(ctx context.Context, rawURL string, additionalDelay time.Duration) error {
	if err := l.Wait(ctx, rawURL); err != nil {
		return err
	}

	if additionalDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(additionalDelay):
		}
	}

	return nil
}

// bucket returns the token bucket for a domain, creating it on first use
func (l *Limiter) bucket(domain string) *rate.Limiter {
	l.mu.RLock()
	b, ok := l.buckets[domain]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-check: a concurrent fetch may have created it between locks
	if b, ok := l.buckets[domain]; ok {
		return b
	}
	b = rate.NewLimiter(l.perSec, l.burst)
	l.buckets[domain] = b
	return b
}

// extractDomain extracts the host portion of a URL
func extractDomain(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return parsed.Host, nil
}
