package score

import (
	"testing"

	"github.com/akoval/mediascope/internal/model"
)

func TestCredibility_PointsAndLevel(t *testing.T) {
	// High factuality + centrist lean + high traffic on an old site
	points, level := Credibility(CredibilityInputs{
		FactualityLabel: LabelHigh,         // 3
		BiasLabel:       LabelLeftCenter,   // 2
		Traffic:         model.TrafficHigh, // 2
		SiteAgeYears:    25,                // +1
		Freedom:         model.FreedomFree,
	})
	if points != 8 {
		t.Errorf("expected 8 points, got %d", points)
	}
	if level != LevelHigh {
		t.Errorf("expected %q, got %q", LevelHigh, level)
	}
}

func TestCredibility_FreedomPenalty(t *testing.T) {
	points, level := Credibility(CredibilityInputs{
		FactualityLabel: LabelMixed,          // 1
		BiasLabel:       LabelRight,          // 1
		Traffic:         model.TrafficMedium, // 1
		SiteAgeYears:    3,
		Freedom:         model.FreedomTotalOppression, // -2
	})
	if points != 1 {
		t.Errorf("expected 1 point, got %d", points)
	}
	if level != LevelLow {
		t.Errorf("expected %q, got %q", LevelLow, level)
	}
}

func TestCredibility_LevelThresholds(t *testing.T) {
	cases := []struct {
		in   CredibilityInputs
		want string
	}{
		// 4+3+2+1 = 10, still High
		{CredibilityInputs{LabelVeryHigh, LabelLeastBiased, model.TrafficHigh, 20, model.FreedomFree}, LevelHigh},
		// 2+1+0 = 3, the Medium floor
		{CredibilityInputs{LabelMostlyFactual, LabelLeft, model.TrafficMinimal, 0, model.FreedomFree}, LevelMedium},
		// 0+0+0-2 < 0, saturates at Low
		{CredibilityInputs{LabelVeryLow, LabelExtremeRight, model.TrafficMinimal, 0, model.FreedomTotalOppression}, LevelLow},
	}
	for _, tc := range cases {
		_, level := Credibility(tc.in)
		if level != tc.want {
			t.Errorf("Credibility(%+v) level = %q, want %q", tc.in, level, tc.want)
		}
	}
}

func TestCredibility_LongevityEdge(t *testing.T) {
	base := CredibilityInputs{
		FactualityLabel: LabelHigh,
		BiasLabel:       LabelLeastBiased,
		Traffic:         model.TrafficMinimal,
		Freedom:         model.FreedomFree,
	}

	base.SiteAgeYears = LongevityYears
	atEdge, _ := Credibility(base)

	base.SiteAgeYears = LongevityYears + 1
	overEdge, _ := Credibility(base)

	if overEdge != atEdge+1 {
		t.Errorf("expected bonus only above %d years: at=%d over=%d", LongevityYears, atEdge, overEdge)
	}
}

func TestCredibility_Deterministic(t *testing.T) {
	in := CredibilityInputs{
		FactualityLabel: LabelMostlyFactual,
		BiasLabel:       LabelRightCenter,
		Traffic:         model.TrafficMedium,
		SiteAgeYears:    12,
		Freedom:         model.FreedomLimitedFreedom,
	}

	p1, l1 := Credibility(in)
	p2, l2 := Credibility(in)
	if p1 != p2 || l1 != l2 {
		t.Errorf("same inputs gave (%d,%q) then (%d,%q)", p1, l1, p2, l2)
	}
}

func TestCredibility_UnknownLabelsScoreZero(t *testing.T) {
	points, level := Credibility(CredibilityInputs{
		FactualityLabel: "Unrated",
		BiasLabel:       "Unrated",
		Traffic:         model.TrafficMinimal,
		Freedom:         model.FreedomFree,
	})
	if points != 0 || level != LevelLow {
		t.Errorf("expected (0, Low), got (%d, %q)", points, level)
	}
}
