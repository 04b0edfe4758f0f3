package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/akoval/mediascope/internal/model"
	"github.com/akoval/mediascope/internal/report"
	"github.com/akoval/mediascope/internal/worker"
)

// BatchEntry is one source in a batch run. The rating fields are
// optional published ground truth; when present the summary reports
// how far the computed labels land from them.
type BatchEntry struct {
	Name          string `json:"name,omitempty"`
	URL           string `json:"url"`
	Country       string `json:"country,omitempty"`
	SiteAgeYears  int    `json:"site_age_years,omitempty"`
	BiasRating    string `json:"bias_rating,omitempty"`
	FactualRating string `json:"factual_reporting,omitempty"`
}

// BatchResult pairs one entry with its outcome
type BatchResult struct {
	Entry   BatchEntry     `json:"entry"`
	Profile *model.Profile `json:"profile,omitempty"`
	Err     string         `json:"error,omitempty"`
}

// BatchSummary is the aggregate outcome of a batch run. The MAE fields
// are mean absolute ordinal errors against ground truth, -1 when no
// entry carried a rating to compare against.
type BatchSummary struct {
	Results       []BatchResult `json:"results"`
	Succeeded     int           `json:"succeeded"`
	Failed        int           `json:"failed"`
	Compared      int           `json:"compared"`
	BiasMAE       float64       `json:"bias_mae"`
	FactualityMAE float64       `json:"factuality_mae"`
}

// LoadBatch reads a batch file. A JSON array of entries is the full
// form; anything else is treated as plain text with one URL per line,
// blank lines and # comments skipped.
func LoadBatch(path string) ([]BatchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var entries []BatchEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		for i, e := range entries {
			if e.URL == "" {
				return nil, fmt.Errorf("batch entry %d: missing url", i)
			}
		}
		return entries, nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, BatchEntry{URL: line})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("batch file %s: no entries", path)
	}
	return entries, nil
}

// batchJob profiles one source inside the batch pool
type batchJob struct {
	pipeline *Pipeline
	entry    BatchEntry
}

type batchJobResult struct {
	result BatchResult
	err    error
}

func (r *batchJobResult) GetError() error { return r.err }

func (j *batchJob) Execute(ctx context.Context) worker.Result {
	profile, err := j.pipeline.Profile(ctx, j.entry.URL, Overrides{
		Outlet:       j.entry.Name,
		Country:      j.entry.Country,
		SiteAgeYears: j.entry.SiteAgeYears,
	})

	res := BatchResult{Entry: j.entry, Profile: profile}
	if err != nil {
		res.Err = err.Error()
	}
	return &batchJobResult{result: res, err: err}
}

// Batch profiles every entry concurrently and summarizes the outcomes.
// Individual failures never abort the batch; they surface per-entry.
func (p *Pipeline) Batch(ctx context.Context, entries []BatchEntry) *BatchSummary {
	pool := worker.NewPool(ctx, p.cfg.Concurrency.BatchWorkers)
	pool.Start()
	for _, entry := range entries {
		pool.Submit(&batchJob{pipeline: p, entry: entry})
	}

	byURL := make(map[string]BatchResult, len(entries))
	for _, res := range pool.Wait() {
		br := res.(*batchJobResult).result
		byURL[br.Entry.URL] = br
	}

	summary := &BatchSummary{}
	var biasErrs, factErrs []int

	for _, entry := range entries {
		br, ok := byURL[entry.URL]
		if !ok {
			br = BatchResult{Entry: entry, Err: context.Canceled.Error()}
		}
		summary.Results = append(summary.Results, br)

		if br.Profile == nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++

		if entry.BiasRating != "" {
			biasErrs = append(biasErrs,
				report.BiasOrdinal(br.Profile.BiasLabel)-report.BiasOrdinal(entry.BiasRating))
		}
		if entry.FactualRating != "" {
			factErrs = append(factErrs,
				report.FactualityOrdinal(br.Profile.FactualityLabel)-report.FactualityOrdinal(entry.FactualRating))
		}
	}

	summary.Compared = len(biasErrs)
	summary.BiasMAE = report.MeanAbsoluteError(biasErrs)
	summary.FactualityMAE = report.MeanAbsoluteError(factErrs)
	return summary
}

// WriteBatchSummary writes the summary as indented JSON
func WriteBatchSummary(s *BatchSummary, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
