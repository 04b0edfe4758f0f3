package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/akoval/mediascope/internal/model"
)

func TestDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.example.com/path", "example.com"},
		{"http://example.com", "example.com"},
		{"example.com", "example.com"}, // scheme optional
		{"https://News.Example.COM", "news.example.com"},
	}
	for _, tc := range cases {
		got, err := Domain(tc.in)
		if err != nil {
			t.Errorf("Domain(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Domain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := Domain("https://"); err == nil {
		t.Errorf("expected error for URL without host")
	}
}

func TestArticleLike(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/2024/05/some-story", true},
		{"/politics/senate-passes-budget-bill", true},
		{"/", false},
		{"/about", false},
		{"/contact-us", false}, // single segment, not an article
		{"/tags/economy", false},
	}
	for _, tc := range cases {
		if got := articleLike(tc.path); got != tc.want {
			t.Errorf("articleLike(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestResolveArticleLink(t *testing.T) {
	base, _ := url.Parse("https://example.com/")

	link, ok := resolveArticleLink(base, "/politics/senate-passes-budget-bill?utm=x#top")
	if !ok {
		t.Fatalf("expected article link")
	}
	if link != "https://example.com/politics/senate-passes-budget-bill" {
		t.Errorf("query/fragment not stripped: %s", link)
	}

	if _, ok := resolveArticleLink(base, "https://other-site.com/politics/some-big-story"); ok {
		t.Errorf("cross-host link accepted")
	}
	if _, ok := resolveArticleLink(base, "/assets/photo-of-the-day.jpg"); ok {
		t.Errorf("image link accepted")
	}
	if _, ok := resolveArticleLink(base, "mailto:tips@example.com"); ok {
		t.Errorf("mailto link accepted")
	}

	// www and bare host are the same site
	wwwBase, _ := url.Parse("https://www.example.com/")
	if _, ok := resolveArticleLink(wwwBase, "https://example.com/politics/senate-passes-budget-bill"); !ok {
		t.Errorf("bare-host link rejected from www base")
	}
}

func TestExtractArticle(t *testing.T) {
	page := `<html><head><title>Page Title | Site</title></head>
<body>
<nav><p>Menu item that must not leak into the text</p></nav>
<h1>The Real Headline</h1>
<p>First paragraph of the story.</p>
<script>var x = "not text";</script>
<p>Second paragraph of the story.</p>
<footer><p>Copyright notice</p></footer>
</body></html>`

	title, text := extractArticle(page)
	if title != "The Real Headline" {
		t.Errorf("title = %q", title)
	}
	if !strings.Contains(text, "First paragraph") || !strings.Contains(text, "Second paragraph") {
		t.Errorf("paragraphs missing from text: %q", text)
	}
	if strings.Contains(text, "Menu item") || strings.Contains(text, "Copyright") || strings.Contains(text, "not text") {
		t.Errorf("chrome leaked into text: %q", text)
	}
}

func TestExtractArticle_TitleFallback(t *testing.T) {
	title, _ := extractArticle(`<html><head><title>Only The Tag</title></head><body><p>Body.</p></body></html>`)
	if title != "Only The Tag" {
		t.Errorf("title = %q", title)
	}
}

const testBody = "Paragraph with enough words to clear the minimum text length filter for the scraper test."

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "User-agent: *\nDisallow: /politics/blocked-by-robots-rule")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
<a href="/politics/first-big-story-today">one</a>
<a href="/politics/second-big-story-today">two</a>
<a href="/politics/blocked-by-robots-rule">blocked</a>
<a href="/about">about</a>
<a href="https://elsewhere.example/politics/other-site-story">external</a>
</body></html>`)
	})
	article := func(title string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "<html><head><title>%s</title></head><body>", title)
			for i := 0; i < 8; i++ {
				fmt.Fprintf(w, "<p>%s</p>", testBody)
			}
			fmt.Fprint(w, "</body></html>")
		}
	}
	mux.HandleFunc("/politics/first-big-story-today", article("First Story"))
	mux.HandleFunc("/politics/second-big-story-today", article("Second Story"))
	mux.HandleFunc("/politics/blocked-by-robots-rule", article("Blocked Story"))

	return httptest.NewServer(mux)
}

func TestScraper_Scrape(t *testing.T) {
	srv := testServer(t)
	defer srv.Close()

	httpCfg := model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "mediascope-test",
		MaxBodyBytes: 1 << 20,
		RatePerSec:   100,
		RateBurst:    10,
	}
	scrapeCfg := model.ScrapeConfig{
		MaxArticles:   5,
		MinTextLength: 100,
		RespectRobots: true,
	}

	articles, err := NewScraper(httpCfg, scrapeCfg, 2).Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "First Story" || articles[1].Title != "Second Story" {
		t.Errorf("discovery order not preserved: %q, %q", articles[0].Title, articles[1].Title)
	}
	for _, a := range articles {
		if len(a.Text) < scrapeCfg.MinTextLength {
			t.Errorf("article %s below minimum length", a.URL)
		}
		if strings.Contains(a.URL, "blocked-by-robots-rule") {
			t.Errorf("robots-disallowed article fetched: %s", a.URL)
		}
	}
}

func TestScraper_MaxArticlesCap(t *testing.T) {
	srv := testServer(t)
	defer srv.Close()

	httpCfg := model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "mediascope-test",
		MaxBodyBytes: 1 << 20,
		RatePerSec:   100,
		RateBurst:    10,
	}
	scrapeCfg := model.ScrapeConfig{
		MaxArticles:   1,
		MinTextLength: 100,
		RespectRobots: false,
	}

	articles, err := NewScraper(httpCfg, scrapeCfg, 2).Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("expected 1 article under the cap, got %d", len(articles))
	}
}
