// Package pipeline orchestrates a profiling run: build the article
// corpus from the source site, interrogate the oracle, and reduce the
// answers to a finished profile.
package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/akoval/mediascope/internal/model"
	"github.com/akoval/mediascope/internal/util"
	"github.com/akoval/mediascope/internal/worker"
)

// datePath matches the /2024/05/ style archive segments most news CMSs
// put in article URLs.
var datePath = regexp.MustCompile(`/20\d\d/`)

// skipExtensions are link targets that are never articles
var skipExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".svg": true,
	".pdf": true, ".zip": true, ".mp3": true, ".mp4": true, ".css": true,
	".js": true, ".xml": true, ".rss": true, ".ico": true,
}

// Scraper builds a source's article corpus from its homepage: discover
// candidate article links, fetch them concurrently, and keep the ones
// with enough body text to be worth judging.
type Scraper struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	robots       *util.RobotsChecker
	limiter      *worker.Limiter
	scrape       model.ScrapeConfig
	fetchWorkers int
}

// NewScraper creates a scraper from the HTTP and scrape configuration
func NewScraper(httpCfg model.HTTPConfig, scrapeCfg model.ScrapeConfig, fetchWorkers int) *Scraper {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
	}
	if httpCfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	s := &Scraper{
		client: &http.Client{
			Timeout:   httpCfg.Timeout,
			Transport: transport,
		},
		userAgent:    httpCfg.UserAgent,
		maxBodyBytes: httpCfg.MaxBodyBytes,
		limiter:      worker.NewLimiter(httpCfg.RatePerSec, httpCfg.RateBurst),
		scrape:       scrapeCfg,
		fetchWorkers: fetchWorkers,
	}
	if scrapeCfg.RespectRobots {
		s.robots = util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout)
	}
	return s
}

// Scrape fetches the homepage, discovers article links on the same
// host, and returns up to MaxArticles articles that pass the minimum
// text length filter.
func (s *Scraper) Scrape(ctx context.Context, sourceURL string) ([]model.Article, error) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("parse source URL: %w", err)
	}
	if base.Scheme == "" {
		base.Scheme = "https"
	}

	homepage, err := s.fetch(ctx, base.String())
	if err != nil {
		return nil, fmt.Errorf("fetch homepage: %w", err)
	}

	links := s.discoverLinks(base, homepage)
	if len(links) == 0 {
		return nil, fmt.Errorf("no article links found on %s", base.Host)
	}

	// Fetch more candidates than needed; short stub pages get filtered
	limit := s.scrape.MaxArticles * 2
	if len(links) > limit {
		links = links[:limit]
	}

	pool := worker.NewPool(ctx, s.fetchWorkers)
	pool.Start()
	for _, link := range links {
		pool.Submit(&fetchJob{scraper: s, url: link})
	}

	byURL := make(map[string]model.Article, len(links))
	for _, res := range pool.Wait() {
		fr := res.(*fetchJobResult)
		if fr.err != nil {
			continue // blocked, unreachable, or too short; not fatal
		}
		byURL[fr.article.URL] = fr.article
	}

	// Keep discovery order so repeated runs see the same corpus
	articles := make([]model.Article, 0, s.scrape.MaxArticles)
	for _, link := range links {
		if a, ok := byURL[link]; ok {
			articles = append(articles, a)
			if len(articles) >= s.scrape.MaxArticles {
				break
			}
		}
	}
	return articles, nil
}

// fetchJob fetches and extracts one candidate article
type fetchJob struct {
	scraper *Scraper
	url     string
}

type fetchJobResult struct {
	article model.Article
	err     error
}

func (r *fetchJobResult) GetError() error { return r.err }

func (j *fetchJob) Execute(ctx context.Context) worker.Result {
	body, err := j.scraper.fetch(ctx, j.url)
	if err != nil {
		return &fetchJobResult{err: err}
	}

	title, text := extractArticle(body)
	if len(text) < j.scraper.scrape.MinTextLength {
		return &fetchJobResult{err: fmt.Errorf("body too short: %d chars", len(text))}
	}
	if title == "" {
		title = j.url
	}
	return &fetchJobResult{article: model.Article{URL: j.url, Title: title, Text: text}}
}

// fetch performs one robots-checked, rate-limited GET
func (s *Scraper) fetch(ctx context.Context, rawURL string) (string, error) {
	crawlDelay := time.Duration(0)
	if s.robots != nil {
		allowed, delay, err := s.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return "", err
		}
		if !allowed {
			return "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		crawlDelay = delay
	}

	if err := s.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}

// discoverLinks extracts same-host links that look like articles,
// deduplicated, in document order.
func (s *Scraper) discoverLinks(base *url.URL, homepage string) []string {
	doc, err := html.Parse(strings.NewReader(homepage))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				link, ok := resolveArticleLink(base, attr.Val)
				if ok && !seen[link] {
					seen[link] = true
					links = append(links, link)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links
}

// resolveArticleLink resolves href against the base URL and reports
// whether the result looks like an article on the same host.
func resolveArticleLink(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	u := base.ResolveReference(ref)

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if !sameHost(base.Host, u.Host) {
		return "", false
	}
	if skipExtensions[strings.ToLower(path.Ext(u.Path))] {
		return "", false
	}
	if !articleLike(u.Path) {
		return "", false
	}

	u.Fragment = ""
	u.RawQuery = ""
	return u.String(), true
}

func sameHost(a, b string) bool {
	return strings.TrimPrefix(strings.ToLower(a), "www.") == strings.TrimPrefix(strings.ToLower(b), "www.")
}

// articleLike applies cheap URL heuristics: a dated archive path, or a
// slug-bearing final segment under at least one section.
func articleLike(p string) bool {
	if datePath.MatchString(p) {
		return true
	}

	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return false
	}
	segments := strings.Split(trimmed, "/")
	last := segments[len(segments)-1]

	return len(segments) >= 2 && strings.Count(last, "-") >= 2
}

// extractArticle pulls the title and readable text out of an HTML page.
// Text is the concatenation of paragraph nodes, which is crude but
// works on the long-form pages the length filter selects for.
func extractArticle(src string) (title, text string) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", ""
	}

	var paragraphs []string
	var h1 string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "header", "footer", "aside":
				return
			case "title":
				if title == "" {
					title = strings.TrimSpace(nodeText(n))
				}
			case "h1":
				if h1 == "" {
					h1 = strings.TrimSpace(nodeText(n))
				}
			case "p":
				if t := strings.TrimSpace(nodeText(n)); t != "" {
					paragraphs = append(paragraphs, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if h1 != "" {
		title = h1
	}
	return title, strings.Join(paragraphs, "\n\n")
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
