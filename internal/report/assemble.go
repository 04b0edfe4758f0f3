// Package report assembles the final structured profile and renders it
// to JSON and Markdown.
package report

import (
	"math"
	"time"

	"github.com/akoval/mediascope/internal/model"
	"github.com/akoval/mediascope/internal/score"
)

// Round2 rounds half away from zero to 2 decimals. One canonical
// rounding rule for every numeric output keeps repeated runs on
// identical inputs byte-identical.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds half away from zero to 1 decimal, for display values
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Inputs collects everything a finished run produced
type Inputs struct {
	Outlet    string
	SourceURL string
	Articles  int

	Topics     []model.TopicResult
	Dimensions []model.DimensionScore

	Bias       score.Composite
	Factuality score.Composite

	Traffic   model.TrafficTier
	SiteAge   int
	Country   string
	Freedom   model.FreedomTier
	MediaType string

	Warnings []string
}

// Assemble packages a run into the final immutable profile: labels the
// two composite scores, tallies credibility points, and carries the
// per-topic and per-dimension breakdowns through for auditability.
func Assemble(in Inputs) *model.Profile {
	biasScore := Round2(in.Bias.Score)
	factScore := Round2(in.Factuality.Score)

	biasLabel := score.BiasTable().Label(biasScore)
	factLabel := score.FactualityTable().Label(factScore)

	points, level := score.Credibility(score.CredibilityInputs{
		FactualityLabel: factLabel,
		BiasLabel:       biasLabel,
		Traffic:         in.Traffic,
		SiteAgeYears:    in.SiteAge,
		Freedom:         in.Freedom,
	})

	warnings := append([]string{}, in.Warnings...)
	warnings = append(warnings, in.Bias.Warnings...)
	warnings = append(warnings, in.Factuality.Warnings...)

	return &model.Profile{
		Outlet:               in.Outlet,
		SourceURL:            in.SourceURL,
		GeneratedAt:          time.Now().UTC(),
		ArticlesAnalyzed:     in.Articles,
		Topics:               in.Topics,
		Dimensions:           in.Dimensions,
		BiasComponents:       in.Bias.Components,
		FactualityComponents: in.Factuality.Components,
		BiasScore:            biasScore,
		BiasLabel:            biasLabel,
		FactualityScore:      factScore,
		FactualityLabel:      factLabel,
		Traffic:              in.Traffic,
		SiteAge:              in.SiteAge,
		Country:              in.Country,
		Freedom:              in.Freedom,
		MediaType:            in.MediaType,
		CredibilityPoints:    points,
		CredibilityLevel:     level,
		Warnings:             warnings,
	}
}
