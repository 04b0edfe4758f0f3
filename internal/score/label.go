package score

import "fmt"

// Bias labels
const (
	LabelExtremeLeft  = "Extreme Left"
	LabelLeft         = "Left"
	LabelLeftCenter   = "Left-Center"
	LabelLeastBiased  = "Least Biased"
	LabelRightCenter  = "Right-Center"
	LabelRight        = "Right"
	LabelExtremeRight = "Extreme Right"
)

// Factuality labels (0 is best, 10 is worst)
const (
	LabelVeryHigh      = "Very High"
	LabelHigh          = "High"
	LabelMostlyFactual = "Mostly Factual"
	LabelMixed         = "Mixed"
	LabelLow           = "Low"
	LabelVeryLow       = "Very Low"
)

// Bin is one ordered label bucket. Upper is the bin's upper bound;
// Inclusive picks between score <= Upper and score < Upper. The last
// bin of a table always absorbs the remainder, which makes the lookup
// total over the table's range by construction.
type Bin struct {
	Upper     float64
	Inclusive bool
	Label     string
}

// Table is an ordered, gap-free partition of a score range into labels
type Table struct {
	name   string
	lo, hi float64
	bins   []Bin
}

// BiasTable maps bias scores on [-10,+10] to the published labels.
// Boundary convention, fixed here and tested at every edge: the bins
// nearer the poles are inclusive on their center-facing bound (so
// exactly -8.0 is Extreme Left and exactly -2.0 is Left-Center), and
// the Least Biased bin is open on both sides (so exactly +2.0 is
// Right-Center).
func BiasTable() Table {
	return Table{
		name: "bias",
		lo:   -10, hi: 10,
		bins: []Bin{
			{Upper: -8.0, Inclusive: true, Label: LabelExtremeLeft},
			{Upper: -5.0, Inclusive: true, Label: LabelLeft},
			{Upper: -2.0, Inclusive: true, Label: LabelLeftCenter},
			{Upper: 2.0, Inclusive: false, Label: LabelLeastBiased},
			{Upper: 5.0, Inclusive: false, Label: LabelRightCenter},
			{Upper: 8.0, Inclusive: false, Label: LabelRight},
			{Upper: 10.0, Inclusive: true, Label: LabelExtremeRight},
		},
	}
}

// FactualityTable maps factuality scores on [0,10] to labels. Every
// bin is half-open on its upper bound except the last.
func FactualityTable() Table {
	return Table{
		name: "factuality",
		lo:   0, hi: 10,
		bins: []Bin{
			{Upper: 0.5, Inclusive: false, Label: LabelVeryHigh},
			{Upper: 2.0, Inclusive: false, Label: LabelHigh},
			{Upper: 4.5, Inclusive: false, Label: LabelMostlyFactual},
			{Upper: 6.5, Inclusive: false, Label: LabelMixed},
			{Upper: 8.5, Inclusive: false, Label: LabelLow},
			{Upper: 10.0, Inclusive: true, Label: LabelVeryLow},
		},
	}
}

// Label maps a score to its bin's label. Scores outside the table's
// range clamp to the nearest bin rather than failing; the mapping is
// total.
func (t Table) Label(score float64) string {
	if score < t.lo {
		score = t.lo
	}
	if score > t.hi {
		score = t.hi
	}
	for _, bin := range t.bins {
		if bin.Inclusive {
			if score <= bin.Upper {
				return bin.Label
			}
		} else if score < bin.Upper {
			return bin.Label
		}
	}
	// Unreachable while the last bin's Upper equals hi and is inclusive
	return t.bins[len(t.bins)-1].Label
}

// Validate checks the table partitions its range: bins strictly
// ordered, the last bin inclusive at the range's top. Construction-time
// check, fatal at startup.
func (t Table) Validate() error {
	if len(t.bins) == 0 {
		return fmt.Errorf("label table %s: no bins", t.name)
	}
	prev := t.lo
	for i, bin := range t.bins {
		if i > 0 && bin.Upper <= prev {
			return fmt.Errorf("label table %s: bins not strictly ordered at %q", t.name, bin.Label)
		}
		prev = bin.Upper
	}
	last := t.bins[len(t.bins)-1]
	if last.Upper != t.hi || !last.Inclusive {
		return fmt.Errorf("label table %s: final bin must close the range at %v inclusive", t.name, t.hi)
	}
	return nil
}
