package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akoval/mediascope/internal/pipeline"
	"github.com/akoval/mediascope/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchWorkers int
	outputDir    string
	batchTimeout time.Duration
	summaryPath  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Profile multiple news sources from a file in parallel",
	Long: `Batch profiles multiple sources concurrently:
- Read sources from a JSON array of entries or a plain text file of URLs
- Process sources in parallel with a configurable worker count
- Generate individual JSON/Markdown reports per source
- When entries carry published bias/factuality ratings, report the mean
  absolute ordinal error of the computed labels against them

Example:
  mediascope batch urls.txt
  mediascope batch sources.json --workers 4 --output-dir ./profiles
  mediascope batch sources.json --summary summary.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 2, "number of sources profiled concurrently")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./mediascope-profiles", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 2*time.Hour, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&summaryPath, "summary", "", "write the batch summary JSON to this path (optional)")

	// Shared with the profile command
	batchCmd.Flags().StringVar(&userAgent, "ua", "Mediascope/0.2 (+https://github.com/akoval/mediascope)", "HTTP User-Agent")
	batchCmd.Flags().IntVar(&maxArticles, "max-articles", 20, "max articles in each corpus")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "ignore cached profiles (force fresh runs)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Oracle flags
	batchCmd.Flags().StringVar(&oracleProvider, "oracle", "openai", "oracle provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&oracleModel, "model", "", "oracle model name (provider default when empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	entries, err := pipeline.LoadBatch(file)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Mediascope Batch Profiling\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Sources:      %d\n", len(entries))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", batchWorkers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = batchWorkers

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Profiling sources with %d workers...\n\n", batchWorkers)

	summary := p.Batch(ctx, entries)

	renderer := report.NewRenderer(cfg.Output.IncludeFooter)
	for _, res := range summary.Results {
		if res.Profile == nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", res.Entry.URL, res.Err)
			continue
		}

		slug := sanitizeFilename(res.Profile.Outlet)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(res.Profile, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", res.Entry.URL, err)
			continue
		}
		if err := renderer.RenderMarkdown(res.Profile, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", res.Entry.URL, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s: %s / %s (%d points)\n",
			res.Profile.Outlet, res.Profile.BiasLabel, res.Profile.FactualityLabel, res.Profile.CredibilityPoints)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d sources\n", len(entries))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", summary.Succeeded)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", summary.Failed)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	if summary.Compared > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  Ground truth comparison (%d sources):\n", summary.Compared)
		fmt.Fprintf(os.Stderr, "  Bias MAE:        %.2f ordinal classes\n", summary.BiasMAE)
		if summary.FactualityMAE >= 0 {
			fmt.Fprintf(os.Stderr, "  Factuality MAE:  %.2f ordinal classes\n", summary.FactualityMAE)
		}
	}
	fmt.Fprintf(os.Stderr, "\n")

	if summaryPath != "" {
		if err := pipeline.WriteBatchSummary(summary, summaryPath); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		fmt.Fprintf(os.Stderr, "  Summary:   %s\n\n", summaryPath)
	}

	return nil
}

// sanitizeFilename sanitizes an outlet name for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(strings.ToLower(s))

	// Limit length
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
