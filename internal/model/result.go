package model

// TopicResult is the outcome of walking one topic's decision tree.
// Score is nil when the topic was excluded: not relevant to the corpus,
// oracle failure, or run cancellation. A nil score removes the topic
// from its dimension's average entirely; it is never folded in as zero,
// because zero means "measured as centrist".
type TopicResult struct {
	TopicID string   `json:"topic_id"`
	Score   *float64 `json:"score"`
	Stance  Stance   `json:"stance,omitempty"`
	Rung    int      `json:"rung"` // 0-based rung that stopped the walk, RungCentrism, RungDefault, or RungNone
	Weak    bool     `json:"weak,omitempty"` // score is the most-moderate default, no rung confirmed
	Error   string   `json:"error,omitempty"`
}

// Sentinel rung markers for TopicResult.Rung
const (
	RungNone     = -1 // excluded, no score
	RungCentrism = -2 // centrism check confirmed, score 0
	RungDefault  = -3 // nothing confirmed, weak most-moderate default
)

// Scored reports whether the topic produced a usable score
func (r TopicResult) Scored() bool {
	return r.Score != nil
}

// DimensionScore is the unweighted mean of the scored topics in one
// dimension. NoData distinguishes "no measurements at all" from a real
// mean near zero; both render numerically as 0.
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Count     int       `json:"count"`
	NoData    bool      `json:"no_data,omitempty"`
}

// Component is one named sub-score feeding a weighted combiner
type Component struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// TrafficTier buckets a source's reach
type TrafficTier string

const (
	TrafficHigh    TrafficTier = "High"
	TrafficMedium  TrafficTier = "Medium"
	TrafficMinimal TrafficTier = "Minimal"
)

// FreedomTier buckets the press-freedom rating of the source's country
type FreedomTier string

const (
	FreedomFree            FreedomTier = "Free"
	FreedomMostlyFree      FreedomTier = "Mostly Free"
	FreedomPartlyFree      FreedomTier = "Partly Free"
	FreedomLimitedFreedom  FreedomTier = "Limited Freedom"
	FreedomTotalOppression FreedomTier = "Total Oppression"
)
