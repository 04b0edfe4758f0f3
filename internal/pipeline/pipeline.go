package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/akoval/mediascope/internal/bank"
	"github.com/akoval/mediascope/internal/cache"
	"github.com/akoval/mediascope/internal/ideology"
	"github.com/akoval/mediascope/internal/lookup"
	"github.com/akoval/mediascope/internal/model"
	"github.com/akoval/mediascope/internal/oracle"
	"github.com/akoval/mediascope/internal/report"
	"github.com/akoval/mediascope/internal/score"
)

// Pipeline wires every stage of a profiling run. Construction
// validates the question bank, the label tables, and the combiner
// weights, so a misconfigured methodology fails at startup instead of
// mid-run.
type Pipeline struct {
	cfg       *model.Config
	scraper   *Scraper
	evaluator *ideology.Evaluator
	bias      *score.Combiner
	fact      *score.Combiner
	tables    *lookup.Tables
	client    oracle.Client
	store     *cache.ProfileStore
}

// Overrides carries per-run facts the caller knows and the scraper
// cannot discover: the outlet's display name, its country, and its age.
type Overrides struct {
	Outlet       string
	Country      string
	SiteAgeYears int
	NoCache      bool
}

// New builds a pipeline from configuration
func New(cfg *model.Config) (*Pipeline, error) {
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("question bank: %w", err)
	}
	if err := score.BiasTable().Validate(); err != nil {
		return nil, fmt.Errorf("bias labels: %w", err)
	}
	if err := score.FactualityTable().Validate(); err != nil {
		return nil, fmt.Errorf("factuality labels: %w", err)
	}

	bias, err := score.NewBiasCombiner()
	if err != nil {
		return nil, err
	}
	fact, err := score.NewFactualityCombiner()
	if err != nil {
		return nil, err
	}

	tables, err := lookup.Load()
	if err != nil {
		return nil, fmt.Errorf("lookup tables: %w", err)
	}

	client, err := oracle.NewClient(oracle.ConfigFromModel(cfg.Oracle))
	if err != nil {
		return nil, fmt.Errorf("create oracle client: %w", err)
	}

	p := &Pipeline{
		cfg:       cfg,
		scraper:   NewScraper(cfg.HTTP, cfg.Scrape, cfg.Concurrency.FetchWorkers),
		evaluator: ideology.NewEvaluator(),
		bias:      bias,
		fact:      fact,
		tables:    tables,
		client:    client,
	}

	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		p.store = cache.NewProfileStore(layered)
	}

	return p, nil
}

// Profile runs the full evaluation for one source URL and returns its
// finished profile. A fresh cached profile short-circuits the run.
func (p *Pipeline) Profile(ctx context.Context, rawURL string, o Overrides) (*model.Profile, error) {
	domain, err := Domain(rawURL)
	if err != nil {
		return nil, err
	}

	outlet := o.Outlet
	if outlet == "" {
		outlet = domain
	}

	if p.store != nil && !o.NoCache {
		if cached, ok := p.store.Load(domain); ok {
			return cached, nil
		}
	}

	articles, err := p.scraper.Scrape(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("build corpus for %s: %w", domain, err)
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("no usable articles on %s", domain)
	}

	judge := oracle.NewJudge(p.client, outlet, articles)

	var warnings []string

	topics := bank.Topics()
	results := p.evaluator.EvaluateAll(ctx, topics, judge, p.cfg.Concurrency.TopicWorkers)

	econ := ideology.Aggregate(model.DimensionEconomic, filterDimension(topics, results, model.DimensionEconomic))
	soc := ideology.Aggregate(model.DimensionSocial, filterDimension(topics, results, model.DimensionSocial))

	biasValues := make(map[string]float64)
	if !econ.NoData {
		biasValues[score.ComponentEconomic] = econ.Score
	}
	if !soc.NoData {
		biasValues[score.ComponentSocial] = soc.Score
	}
	p.rateInto(ctx, biasValues, &warnings, score.ComponentNewsReporting, judge.NewsReportingBalance)
	p.rateInto(ctx, biasValues, &warnings, score.ComponentEditorial, judge.EditorialBias)

	biasComposite, err := p.bias.Combine(biasValues)
	if err != nil {
		return nil, fmt.Errorf("bias score for %s: %w", domain, err)
	}

	factValues := make(map[string]float64)
	p.rateInto(ctx, factValues, &warnings, score.ComponentFactCheck, judge.FactCheckRecord)
	p.rateInto(ctx, factValues, &warnings, score.ComponentSourcing, judge.Sourcing)
	p.rateInto(ctx, factValues, &warnings, score.ComponentTransparency, judge.Transparency)
	p.rateInto(ctx, factValues, &warnings, score.ComponentPropaganda, judge.Propaganda)

	factComposite, err := p.fact.Combine(factValues)
	if err != nil {
		return nil, fmt.Errorf("factuality score for %s: %w", domain, err)
	}

	profile := report.Assemble(report.Inputs{
		Outlet:     outlet,
		SourceURL:  rawURL,
		Articles:   len(articles),
		Topics:     results,
		Dimensions: []model.DimensionScore{econ, soc},
		Bias:       biasComposite,
		Factuality: factComposite,
		Traffic:    p.tables.Traffic(domain),
		SiteAge:    o.SiteAgeYears,
		Country:    o.Country,
		Freedom:    p.tables.Freedom(o.Country),
		MediaType:  p.tables.MediaType(domain),
		Warnings:   warnings,
	})

	if p.store != nil {
		if err := p.store.Save(domain, profile, p.cfg.Cache.DiskTTL); err != nil {
			profile.Warnings = append(profile.Warnings, fmt.Sprintf("cache save failed: %v", err))
		}
	}

	return profile, nil
}

// rateInto records one oracle component rating, or a warning when the
// call fails. A failed component is omitted, not zeroed; the combiner
// renormalizes around it.
func (p *Pipeline) rateInto(ctx context.Context, values map[string]float64, warnings *[]string, name string, rate func(context.Context) (float64, error)) {
	v, err := rate(ctx)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("component %s unavailable: %v", name, err))
		return
	}
	values[name] = v
}

// filterDimension selects the results whose topics belong to one dimension
func filterDimension(topics []model.Topic, results []model.TopicResult, d model.Dimension) []model.TopicResult {
	var out []model.TopicResult
	for i, t := range topics {
		if t.Dimension == d {
			out = append(out, results[i])
		}
	}
	return out
}

// Domain extracts the registrable host from a source URL, without the
// www prefix. It is the cache key and the lookup-table key.
func Domain(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse URL %q: %w", rawURL, err)
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return "", fmt.Errorf("no host in URL %q", rawURL)
	}
	return host, nil
}
