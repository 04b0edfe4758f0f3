package score

import "github.com/akoval/mediascope/internal/model"

// Credibility levels
const (
	LevelHigh   = "High Credibility"
	LevelMedium = "Medium Credibility"
	LevelLow    = "Low Credibility"
)

// CredibilityInputs are the five signals feeding the tally. All
// categorical or small integers; the calculator is a pure function of
// these plus the point tables below.
type CredibilityInputs struct {
	FactualityLabel string
	BiasLabel       string
	Traffic         model.TrafficTier
	SiteAgeYears    int
	Freedom         model.FreedomTier
}

// LongevityYears is the site age above which the traffic bonus gains
// an extra point, independent of tier.
const LongevityYears = 10

var factualityPoints = map[string]int{
	LabelVeryHigh:      4,
	LabelHigh:          3,
	LabelMostlyFactual: 2,
	LabelMixed:         1,
	LabelLow:           0,
	LabelVeryLow:       0,
}

var biasPoints = map[string]int{
	LabelLeastBiased:  3,
	LabelLeftCenter:   2,
	LabelRightCenter:  2,
	LabelLeft:         1,
	LabelRight:        1,
	LabelExtremeLeft:  0,
	LabelExtremeRight: 0,
}

var trafficPoints = map[model.TrafficTier]int{
	model.TrafficHigh:    2,
	model.TrafficMedium:  1,
	model.TrafficMinimal: 0,
}

var freedomPenalty = map[model.FreedomTier]int{
	model.FreedomLimitedFreedom:  -1,
	model.FreedomTotalOppression: -2,
}

// Credibility converts the categorical labels plus the auxiliary
// signals into integer points and a three-tier level. Points are not
// clamped: stacked bonuses can exceed the nominal 0-10 display range,
// and the level mapping saturates instead of failing (>=6 is always
// High, <=2 always Low, anything between is Medium).
func Credibility(in CredibilityInputs) (int, string) {
	points := factualityPoints[in.FactualityLabel] + biasPoints[in.BiasLabel] + trafficPoints[in.Traffic]
	if in.SiteAgeYears > LongevityYears {
		points++
	}
	points += freedomPenalty[in.Freedom]

	switch {
	case points >= 6:
		return points, LevelHigh
	case points >= 3:
		return points, LevelMedium
	default:
		return points, LevelLow
	}
}
