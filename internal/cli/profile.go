package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/akoval/mediascope/internal/model"
	"github.com/akoval/mediascope/internal/pipeline"
	"github.com/akoval/mediascope/internal/report"
	"github.com/spf13/cobra"
)

var (
	outJSON        string
	outMD          string
	timeout        time.Duration
	userAgent      string
	maxBytes       int64
	maxArticles    int
	noCache        bool
	noFooter       bool
	insecureTLS    bool
	noRobots       bool
	httpProxy      string
	httpsProxy     string
	oracleProvider string
	oracleModel    string
	outletName     string
	outletCountry  string
	siteAgeYears   int
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile <url>",
	Short: "Profile a single news source and generate a credibility report",
	Long: `Profile analyzes one news source end to end:
- Scrape a sample of recent articles from the site
- Walk 14 ideology decision trees (7 economic, 7 social) against the oracle
- Rate news reporting balance, editorial bias, and 4 factuality components
- Combine into composite bias and factuality scores with rating labels
- Tally credibility points and write JSON/Markdown reports

Example:
  mediascope profile https://example-news.com
  mediascope profile https://example-news.com --json profile.json --md profile.md
  mediascope profile https://example-news.com --oracle ollama --model llama3.1
  mediascope profile https://example-news.com --name "Example News" --country "United States" --age 25`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	// Output flags
	profileCmd.Flags().StringVar(&outJSON, "json", "profile.json", "output JSON path")
	profileCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	profileCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// HTTP flags
	profileCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "overall profiling timeout (covers scraping and every oracle call)")
	profileCmd.Flags().StringVar(&userAgent, "ua", "Mediascope/0.2 (+https://github.com/akoval/mediascope)", "HTTP User-Agent")
	profileCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read per page")
	profileCmd.Flags().IntVar(&maxArticles, "max-articles", 20, "max articles in the corpus")
	profileCmd.Flags().BoolVar(&noCache, "no-cache", false, "ignore cached profiles (force a fresh run)")
	profileCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	profileCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt (not recommended)")
	profileCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	profileCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Oracle flags
	profileCmd.Flags().StringVar(&oracleProvider, "oracle", "openai", "oracle provider (openai, anthropic, ollama)")
	profileCmd.Flags().StringVar(&oracleModel, "model", "", "oracle model name (provider default when empty)")

	// Source fact flags
	profileCmd.Flags().StringVar(&outletName, "name", "", "outlet display name (defaults to the domain)")
	profileCmd.Flags().StringVar(&outletCountry, "country", "", "country of origin for the press-freedom tier")
	profileCmd.Flags().IntVar(&siteAgeYears, "age", 0, "site age in years for the longevity bonus")
}

func runProfile(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Profiling: %s\n", url)
		fmt.Fprintf(os.Stderr, "Oracle: %s\n", oracleProvider)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	profile, err := p.Profile(ctx, url, pipeline.Overrides{
		Outlet:       outletName,
		Country:      outletCountry,
		SiteAgeYears: siteAgeYears,
		NoCache:      noCache,
	})
	if err != nil {
		return fmt.Errorf("profile failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Analyzed %d articles\n", profile.ArticlesAnalyzed)
		fmt.Fprintf(os.Stderr, "✓ Bias: %s (%.2f)\n", profile.BiasLabel, profile.BiasScore)
		fmt.Fprintf(os.Stderr, "✓ Factual Reporting: %s (%.2f)\n", profile.FactualityLabel, profile.FactualityScore)
		fmt.Fprintf(os.Stderr, "✓ Credibility: %s (%d points)\n", profile.CredibilityLevel, profile.CredibilityPoints)
		fmt.Fprintln(os.Stderr)
	}

	renderer := report.NewRenderer(cfg.Output.IncludeFooter)
	if err := renderer.RenderJSON(profile, outJSON); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(profile, outMD); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}

	return nil
}

// buildConfig assembles the run configuration from defaults, flags, and
// environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = 30 * time.Second
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Scrape.MaxArticles = maxArticles
	cfg.Scrape.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if cfg.Cache.Dir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Cache.Dir = home + "/.mediascope/cache"
		}
	}

	cfg.Oracle.Provider = oracleProvider
	if oracleModel != "" {
		cfg.Oracle.Model = oracleModel
	}

	// API keys come from the environment only
	switch oracleProvider {
	case "openai":
		cfg.Oracle.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Oracle.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Oracle.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Oracle.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.Oracle.BaseURL = baseURL
		}
	}

	return cfg, nil
}
