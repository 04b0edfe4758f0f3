// Package ideology walks the question-bank decision trees against an
// external oracle and aggregates topic scores into dimension scores.
package ideology

import (
	"context"

	"github.com/akoval/mediascope/internal/model"
)

// Oracle answers the three question kinds the decision tree needs.
// Implementations are LLM-backed (or scripted, in tests) and may fail
// transiently; the evaluator treats any error as "exclude this topic",
// never as a run failure. Retry policy belongs to the implementation.
type Oracle interface {
	// Relevant reports whether the corpus covers the topic at all
	Relevant(ctx context.Context, check string) (bool, error)

	// Stance picks which pole the coverage leans toward. Called only
	// after Relevant returned true; the evaluator commits to the
	// returned ladder and never backtracks.
	Stance(ctx context.Context, topic model.Topic) (model.Stance, error)

	// Confirms answers a single yes/no rung or centrism question
	Confirms(ctx context.Context, q model.Question) (bool, error)
}
