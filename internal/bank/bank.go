// Package bank holds the static ideology question bank: 14 topics
// across the economic and social dimensions, each with a relevance
// check, two four-rung ladders ordered extreme-to-moderate, and a
// centrism check. Pure data, no behavior beyond lookup and validation.
package bank

import (
	"fmt"
	"math"

	"github.com/akoval/mediascope/internal/model"
)

// Target scores for ladder rungs. Left ladders use the negated values.
const (
	ScoreExtreme  = 10.0
	ScoreStrong   = 7.5
	ScoreModerate = 5.0
	ScoreMild     = 2.5
)

// Topics returns all topics in the bank, economic first
func Topics() []model.Topic {
	all := make([]model.Topic, 0, len(economicTopics)+len(socialTopics))
	all = append(all, economicTopics...)
	all = append(all, socialTopics...)
	return all
}

// ByDimension returns the topics of one dimension
func ByDimension(d model.Dimension) []model.Topic {
	var out []model.Topic
	for _, t := range Topics() {
		if t.Dimension == d {
			out = append(out, t)
		}
	}
	return out
}

// ladder is a construction helper: texts ordered extreme to moderate,
// scores assigned |10|, |7.5|, |5|, |2.5| with the stance's sign.
func ladder(s model.Stance, texts [model.LadderSize]string) [model.LadderSize]model.Question {
	sign := 1.0
	if s == model.StanceLeft {
		sign = -1.0
	}
	scores := [model.LadderSize]float64{ScoreExtreme, ScoreStrong, ScoreModerate, ScoreMild}
	var qs [model.LadderSize]model.Question
	for i, text := range texts {
		qs[i] = model.Question{Text: text, Score: sign * scores[i]}
	}
	return qs
}

// Validate checks the structural invariants the evaluator depends on:
// every topic has both ladders, each ladder has exactly LadderSize
// rungs ordered strictly from most-extreme to most-moderate with the
// stance's sign, and the centrism rung scores zero. Called once at
// startup; a failure here is fatal before any run begins.
func Validate() error {
	topics := Topics()
	if len(topics) != 14 {
		return fmt.Errorf("question bank: expected 14 topics, have %d", len(topics))
	}
	seen := make(map[string]bool, len(topics))
	for _, t := range topics {
		if seen[t.ID] {
			return fmt.Errorf("question bank: duplicate topic id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Relevance == "" {
			return fmt.Errorf("topic %s: missing relevance check", t.ID)
		}
		if t.Centrism.Text == "" || t.Centrism.Score != 0 {
			return fmt.Errorf("topic %s: centrism check must exist and score 0", t.ID)
		}
		for _, stance := range []model.Stance{model.StanceLeft, model.StanceRight} {
			rungs, ok := t.Ladders[stance]
			if !ok {
				return fmt.Errorf("topic %s: missing %s ladder", t.ID, stance)
			}
			for i, q := range rungs {
				if q.Text == "" {
					return fmt.Errorf("topic %s: %s ladder rung %d has no text", t.ID, stance, i)
				}
				if stance == model.StanceLeft && q.Score >= 0 {
					return fmt.Errorf("topic %s: left ladder rung %d has non-negative score %v", t.ID, i, q.Score)
				}
				if stance == model.StanceRight && q.Score <= 0 {
					return fmt.Errorf("topic %s: right ladder rung %d has non-positive score %v", t.ID, i, q.Score)
				}
				if i > 0 && math.Abs(q.Score) >= math.Abs(rungs[i-1].Score) {
					return fmt.Errorf("topic %s: %s ladder not ordered extreme to moderate at rung %d", t.ID, stance, i)
				}
			}
		}
	}
	return nil
}
