package score

import (
	"testing"
)

func TestTables_Validate(t *testing.T) {
	if err := BiasTable().Validate(); err != nil {
		t.Errorf("bias table: %v", err)
	}
	if err := FactualityTable().Validate(); err != nil {
		t.Errorf("factuality table: %v", err)
	}
}

func TestBiasTable_Boundaries(t *testing.T) {
	table := BiasTable()

	cases := []struct {
		score float64
		want  string
	}{
		{-10.0, LabelExtremeLeft},
		{-8.0, LabelExtremeLeft}, // inclusive toward the pole
		{-7.999, LabelLeft},
		{-5.0, LabelLeft},
		{-4.999, LabelLeftCenter},
		{-2.0, LabelLeftCenter}, // exactly -2.0 stays Left-Center
		{-1.999, LabelLeastBiased},
		{0.0, LabelLeastBiased},
		{1.999, LabelLeastBiased},
		{2.0, LabelRightCenter}, // exactly +2.0 crosses to Right-Center
		{4.999, LabelRightCenter},
		{5.0, LabelRight},
		{7.999, LabelRight},
		{8.0, LabelExtremeRight},
		{10.0, LabelExtremeRight},
	}
	for _, tc := range cases {
		if got := table.Label(tc.score); got != tc.want {
			t.Errorf("Label(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestFactualityTable_Boundaries(t *testing.T) {
	table := FactualityTable()

	cases := []struct {
		score float64
		want  string
	}{
		{0.0, LabelVeryHigh},
		{0.499, LabelVeryHigh},
		{0.5, LabelHigh},
		{1.999, LabelHigh},
		{2.0, LabelMostlyFactual},
		{4.499, LabelMostlyFactual},
		{4.5, LabelMixed},
		{6.499, LabelMixed},
		{6.5, LabelLow},
		{8.499, LabelLow},
		{8.5, LabelVeryLow},
		{10.0, LabelVeryLow},
	}
	for _, tc := range cases {
		if got := table.Label(tc.score); got != tc.want {
			t.Errorf("Label(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestTables_ClampOutOfRange(t *testing.T) {
	if got := BiasTable().Label(-99); got != LabelExtremeLeft {
		t.Errorf("Label(-99) = %q", got)
	}
	if got := BiasTable().Label(99); got != LabelExtremeRight {
		t.Errorf("Label(99) = %q", got)
	}
	if got := FactualityTable().Label(-1); got != LabelVeryHigh {
		t.Errorf("Label(-1) = %q", got)
	}
	if got := FactualityTable().Label(11); got != LabelVeryLow {
		t.Errorf("Label(11) = %q", got)
	}
}

// Every sampled score across each domain must map to exactly one label,
// with no gaps between adjacent bins.
func TestTables_Total(t *testing.T) {
	const samples = 10000

	bias := BiasTable()
	for i := 0; i <= samples; i++ {
		score := -10 + 20*float64(i)/samples
		if bias.Label(score) == "" {
			t.Fatalf("bias table has no label for %v", score)
		}
	}

	fact := FactualityTable()
	for i := 0; i <= samples; i++ {
		score := 10 * float64(i) / samples
		if fact.Label(score) == "" {
			t.Fatalf("factuality table has no label for %v", score)
		}
	}
}
