package score

import (
	"errors"
	"math"
	"testing"

	"github.com/akoval/mediascope/internal/model"
)

func TestCombiners_WeightsSumToOne(t *testing.T) {
	bias, err := NewBiasCombiner()
	if err != nil {
		t.Fatalf("bias combiner: %v", err)
	}
	fact, err := NewFactualityCombiner()
	if err != nil {
		t.Fatalf("factuality combiner: %v", err)
	}

	if sum := bias.WeightSum(); math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("bias weights sum to %v", sum)
	}
	if sum := fact.WeightSum(); math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("factuality weights sum to %v", sum)
	}
}

func TestNewCombiner_RejectsBadWeights(t *testing.T) {
	cases := []struct {
		name    string
		weights map[string]float64
	}{
		{"sum below one", map[string]float64{"a": 0.5, "b": 0.4}},
		{"sum above one", map[string]float64{"a": 0.7, "b": 0.4}},
		{"negative weight", map[string]float64{"a": 1.2, "b": -0.2}},
	}
	for _, tc := range cases {
		components := componentsFrom(tc.weights)
		if _, err := NewCombiner("test", 0, 10, components); err == nil {
			t.Errorf("%s: expected construction error", tc.name)
		}
	}

	if _, err := NewCombiner("empty", 0, 10, nil); err == nil {
		t.Errorf("expected error for empty combiner")
	}
}

func TestCombine_FullBias(t *testing.T) {
	bias, _ := NewBiasCombiner()

	got, err := bias.Combine(map[string]float64{
		ComponentEconomic:      -2.5,
		ComponentSocial:        -2.5,
		ComponentNewsReporting: -1.8,
		ComponentEditorial:     -2.1,
	})
	if err != nil {
		t.Fatalf("combine: %v", err)
	}

	if math.Abs(got.Score-(-2.335)) > 1e-9 {
		t.Errorf("expected -2.335, got %v", got.Score)
	}
	if label := BiasTable().Label(got.Score); label != LabelLeftCenter {
		t.Errorf("expected %s, got %s", LabelLeftCenter, label)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", got.Warnings)
	}
}

func TestCombine_FullFactuality(t *testing.T) {
	fact, _ := NewFactualityCombiner()

	got, err := fact.Combine(map[string]float64{
		ComponentFactCheck:    1.0,
		ComponentSourcing:     1.5,
		ComponentTransparency: 0.0,
		ComponentPropaganda:   3.0,
	})
	if err != nil {
		t.Fatalf("combine: %v", err)
	}

	if math.Abs(got.Score-1.075) > 1e-9 {
		t.Errorf("expected 1.075, got %v", got.Score)
	}
	if label := FactualityTable().Label(got.Score); label != LabelHigh {
		t.Errorf("expected %s, got %s", LabelHigh, label)
	}
}

func TestCombine_MissingComponentRenormalizes(t *testing.T) {
	bias, _ := NewBiasCombiner()

	// Editorial missing: remaining weights .35/.35/.15 renormalize over
	// .85, they do not treat the absent value as zero.
	got, err := bias.Combine(map[string]float64{
		ComponentEconomic:      -4.0,
		ComponentSocial:        -4.0,
		ComponentNewsReporting: -4.0,
	})
	if err != nil {
		t.Fatalf("combine: %v", err)
	}

	// Every present component is -4, so the renormalized mean is -4
	if math.Abs(got.Score-(-4.0)) > 1e-9 {
		t.Errorf("expected -4.0, got %v", got.Score)
	}
	if len(got.Warnings) != 1 {
		t.Errorf("expected one missing-component warning, got %v", got.Warnings)
	}

	weightSum := 0.0
	for _, c := range got.Components {
		weightSum += c.Weight
	}
	if math.Abs(weightSum-1.0) > 1e-9 {
		t.Errorf("effective weights sum to %v after renormalization", weightSum)
	}
}

func TestCombine_NoComponents(t *testing.T) {
	bias, _ := NewBiasCombiner()

	_, err := bias.Combine(map[string]float64{})
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestCombine_ClampsOutOfRange(t *testing.T) {
	fact, _ := NewFactualityCombiner()

	got, err := fact.Combine(map[string]float64{
		ComponentFactCheck:    14.0, // clamps to 10
		ComponentSourcing:     10.0,
		ComponentTransparency: 10.0,
		ComponentPropaganda:   10.0,
	})
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if got.Score != 10.0 {
		t.Errorf("expected clamped score 10, got %v", got.Score)
	}
	if len(got.Warnings) != 1 {
		t.Errorf("expected one clamp warning, got %v", got.Warnings)
	}
}

func TestCombine_ZeroIsARealScore(t *testing.T) {
	bias, _ := NewBiasCombiner()

	got, err := bias.Combine(map[string]float64{
		ComponentEconomic:      0,
		ComponentSocial:        0,
		ComponentNewsReporting: 0,
		ComponentEditorial:     0,
	})
	if err != nil {
		t.Fatalf("all-zero input must combine cleanly: %v", err)
	}
	if got.Score != 0 {
		t.Errorf("expected 0, got %v", got.Score)
	}
}

func componentsFrom(weights map[string]float64) []model.Component {
	var out []model.Component
	for name, w := range weights {
		out = append(out, model.Component{Name: name, Weight: w})
	}
	return out
}
