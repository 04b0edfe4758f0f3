package report

import (
	"strings"

	"github.com/akoval/mediascope/internal/score"
)

// Ordinal class mappings for comparing a profile against published
// ground-truth ratings. Bias spans 7 ordinal classes (Extreme Left=0
// to Extreme Right=6), factuality 6 (Very High=0 to Very Low=5); the
// mean absolute ordinal error is the benchmark metric.

var biasOrdinals = map[string]int{
	"EXTREME LEFT":  0,
	"LEFT":          1,
	"LEFT CENTER":   2,
	"LEAST BIASED":  3,
	"CENTER":        3,
	"RIGHT CENTER":  4,
	"RIGHT":         5,
	"EXTREME RIGHT": 6,
}

var factualityOrdinals = map[string]int{
	"VERY HIGH":      0,
	"HIGH":           1,
	"MOSTLY FACTUAL": 2,
	"MIXED":          3,
	"LOW":            4,
	"VERY LOW":       5,
}

// BiasOrdinal converts a bias label to its ordinal class. Unknown
// labels default to center.
func BiasOrdinal(label string) int {
	key := strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(label, "-", " ")))
	if ord, ok := biasOrdinals[key]; ok {
		return ord
	}
	return 3
}

// FactualityOrdinal converts a factuality label to its ordinal class.
// Unknown labels default to mixed.
func FactualityOrdinal(label string) int {
	key := strings.ToUpper(strings.TrimSpace(label))
	if ord, ok := factualityOrdinals[key]; ok {
		return ord
	}
	return 3
}

// BiasScoreOrdinal converts a bias score to its ordinal class through
// the label table, so score and label conversions can never disagree.
func BiasScoreOrdinal(s float64) int {
	return BiasOrdinal(score.BiasTable().Label(s))
}

// FactualityScoreOrdinal converts a factuality score to its ordinal class
func FactualityScoreOrdinal(s float64) int {
	return FactualityOrdinal(score.FactualityTable().Label(s))
}

// MeanAbsoluteError averages absolute ordinal errors. An empty input
// has no defined error and returns -1.
func MeanAbsoluteError(errors []int) float64 {
	if len(errors) == 0 {
		return -1
	}
	sum := 0
	for _, e := range errors {
		if e < 0 {
			e = -e
		}
		sum += e
	}
	return float64(sum) / float64(len(errors))
}
