package ideology

import "github.com/akoval/mediascope/internal/model"

// Aggregate computes the unweighted mean of the scored topics in one
// dimension. Excluded topics (nil score) contribute nothing, not zero:
// the mean moves only through Count. With zero scored topics the score
// is 0 with NoData set, so callers can tell "measured centrist" from
// "no measurements".
func Aggregate(d model.Dimension, results []model.TopicResult) model.DimensionScore {
	sum := 0.0
	count := 0
	for _, r := range results {
		if !r.Scored() {
			continue
		}
		sum += *r.Score
		count++
	}

	if count == 0 {
		return model.DimensionScore{Dimension: d, NoData: true}
	}
	return model.DimensionScore{Dimension: d, Score: sum / float64(count), Count: count}
}
