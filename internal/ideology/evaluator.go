package ideology

import (
	"context"

	"github.com/akoval/mediascope/internal/model"
	"github.com/akoval/mediascope/internal/worker"
)

// Evaluator walks one topic's ladder against an oracle
type Evaluator struct{}

// NewEvaluator creates a new evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate runs the decision tree for a single topic:
//
//  1. Relevance gate. Irrelevant topics return a nil score and drop out
//     of the dimension average entirely; zero would falsely read as
//     "measured as centrist".
//  2. Stance fork. One call commits the walk to a single ladder.
//  3. Ladder walk, extreme rung first. The first confirmed rung wins.
//     The order is a correctness requirement: a moderate statement is
//     also true of someone holding the extreme position, so walking
//     moderate-first would systematically under-report extremity.
//  4. Centrism check, then the most-moderate rung's score as a weak
//     default when nothing at all confirmed.
//
// Any oracle error excludes this topic only; the run continues.
// The walk is a plain loop over the ordered rungs, and rungs are asked
// strictly in sequence because each answer decides whether the next
// question is needed.
func (e *Evaluator) Evaluate(ctx context.Context, topic model.Topic, oracle Oracle) model.TopicResult {
	excluded := func(err error) model.TopicResult {
		res := model.TopicResult{TopicID: topic.ID, Rung: model.RungNone}
		if err != nil {
			res.Error = err.Error()
		}
		return res
	}

	relevant, err := oracle.Relevant(ctx, topic.Relevance)
	if err != nil {
		return excluded(err)
	}
	if !relevant {
		return excluded(nil)
	}

	stance, err := oracle.Stance(ctx, topic)
	if err != nil {
		return excluded(err)
	}

	rungs := topic.Ladder(stance)
	for i, q := range rungs {
		yes, err := oracle.Confirms(ctx, q)
		if err != nil {
			return excluded(err)
		}
		if yes {
			score := q.Score
			return model.TopicResult{TopicID: topic.ID, Score: &score, Stance: stance, Rung: i}
		}
	}

	centrist, err := oracle.Confirms(ctx, topic.Centrism)
	if err != nil {
		return excluded(err)
	}
	if centrist {
		zero := 0.0
		return model.TopicResult{TopicID: topic.ID, Score: &zero, Stance: stance, Rung: model.RungCentrism}
	}

	// Nothing confirmed either way. The stance call still indicated a
	// lean, so fall back to the most-moderate rung of that ladder,
	// flagged weak so the report can surface the low confidence.
	weak := rungs[model.LadderSize-1].Score
	return model.TopicResult{TopicID: topic.ID, Score: &weak, Stance: stance, Rung: model.RungDefault, Weak: true}
}

// topicJob adapts one topic evaluation to the worker pool
type topicJob struct {
	evaluator *Evaluator
	topic     model.Topic
	oracle    Oracle
}

func (j *topicJob) Execute(ctx context.Context) worker.Result {
	return &topicJobResult{result: j.evaluator.Evaluate(ctx, j.topic, j.oracle)}
}

type topicJobResult struct {
	result model.TopicResult
}

func (r *topicJobResult) GetError() error { return nil }

// EvaluateAll evaluates the given topics concurrently, one pool job per
// topic, and returns the results keyed back into input order. Topics
// are mutually independent, so completion order does not matter; the
// dimension mean is commutative. Cancellation of ctx surfaces as oracle
// errors inside individual topics, which render them nil (excluded)
// rather than failing the run.
func (e *Evaluator) EvaluateAll(ctx context.Context, topics []model.Topic, oracle Oracle, workers int) []model.TopicResult {
	pool := worker.NewPool(ctx, workers)
	pool.Start()

	for _, topic := range topics {
		pool.Submit(&topicJob{evaluator: e, topic: topic, oracle: oracle})
	}

	byID := make(map[string]model.TopicResult, len(topics))
	for _, res := range pool.Wait() {
		tr := res.(*topicJobResult).result
		byID[tr.TopicID] = tr
	}

	ordered := make([]model.TopicResult, len(topics))
	for i, topic := range topics {
		if tr, ok := byID[topic.ID]; ok {
			ordered[i] = tr
		} else {
			// Pool drained before this topic ran (cancellation)
			ordered[i] = model.TopicResult{TopicID: topic.ID, Rung: model.RungNone, Error: context.Canceled.Error()}
		}
	}
	return ordered
}
