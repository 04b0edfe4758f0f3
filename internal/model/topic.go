package model

// Dimension is a top-level axis of ideological measurement
type Dimension string

const (
	DimensionEconomic Dimension = "economic"
	DimensionSocial   Dimension = "social"
)

// Stance is the pole an article leans toward on one topic
type Stance string

const (
	StanceLeft  Stance = "left"
	StanceRight Stance = "right"
)

// LadderSize is the number of rungs in every ladder, ordered
// strictly from most-extreme to most-moderate
const LadderSize = 4

// Question is a single yes/no rung with a fixed target score
type Question struct {
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	Citation string  `json:"citation,omitempty"` // academic reference, carried through for the report
}

// Topic is one measurable subject within a dimension. The left ladder
// carries negative scores (-10, -7.5, -5, -2.5), the right ladder the
// mirrored positives. Ordering inside each ladder is load-bearing: the
// evaluator stops at the first confirmed rung, so extreme rungs must
// come first.
type Topic struct {
	ID        string                          `json:"id"`
	Name      string                          `json:"name"`
	Dimension Dimension                       `json:"dimension"`
	Relevance string                          `json:"relevance"` // yes/no check: does the corpus cover this topic at all
	Ladders   map[Stance][LadderSize]Question `json:"ladders"`
	Centrism  Question                        `json:"centrism"`
}

// Ladder returns the rung sequence for one stance
func (t Topic) Ladder(s Stance) [LadderSize]Question {
	return t.Ladders[s]
}
