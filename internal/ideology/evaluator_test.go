package ideology

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/akoval/mediascope/internal/model"
)

// scriptedOracle answers from fixed tables, keyed by question text.
// Safe for the concurrent use EvaluateAll makes of it.
type scriptedOracle struct {
	relevant    bool
	relevantErr error
	stance      model.Stance
	stanceErr   error
	confirms    map[string]bool
	confirmErrs map[string]error

	mu    sync.Mutex
	calls []string
}

func (o *scriptedOracle) record(call string) {
	o.mu.Lock()
	o.calls = append(o.calls, call)
	o.mu.Unlock()
}

func (o *scriptedOracle) Relevant(ctx context.Context, check string) (bool, error) {
	o.record(check)
	return o.relevant, o.relevantErr
}

func (o *scriptedOracle) Stance(ctx context.Context, topic model.Topic) (model.Stance, error) {
	o.record("stance:" + topic.ID)
	return o.stance, o.stanceErr
}

func (o *scriptedOracle) Confirms(ctx context.Context, q model.Question) (bool, error) {
	o.record(q.Text)
	if err, ok := o.confirmErrs[q.Text]; ok {
		return false, err
	}
	return o.confirms[q.Text], nil
}

func testTopic(id string) model.Topic {
	left := [model.LadderSize]model.Question{
		{Text: id + "-L0", Score: -10},
		{Text: id + "-L1", Score: -7.5},
		{Text: id + "-L2", Score: -5},
		{Text: id + "-L3", Score: -2.5},
	}
	right := [model.LadderSize]model.Question{
		{Text: id + "-R0", Score: 10},
		{Text: id + "-R1", Score: 7.5},
		{Text: id + "-R2", Score: 5},
		{Text: id + "-R3", Score: 2.5},
	}
	return model.Topic{
		ID:        id,
		Name:      id,
		Dimension: model.DimensionEconomic,
		Relevance: "relevant:" + id,
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft:  left,
			model.StanceRight: right,
		},
		Centrism: model.Question{Text: id + "-center"},
	}
}

func TestEvaluate_IrrelevantTopicExcluded(t *testing.T) {
	oracle := &scriptedOracle{relevant: false}
	res := NewEvaluator().Evaluate(context.Background(), testTopic("t"), oracle)

	if res.Score != nil {
		t.Errorf("expected nil score, got %v", *res.Score)
	}
	if res.Rung != model.RungNone {
		t.Errorf("expected RungNone, got %d", res.Rung)
	}
	if res.Error != "" {
		t.Errorf("irrelevance is not an error, got %q", res.Error)
	}
	if len(oracle.calls) != 1 {
		t.Errorf("expected only the relevance call, got %v", oracle.calls)
	}
}

func TestEvaluate_ExtremeRungWinsOverModerate(t *testing.T) {
	// Both the extreme and a moderate statement would confirm; the walk
	// must stop at the extreme rung.
	oracle := &scriptedOracle{
		relevant: true,
		stance:   model.StanceRight,
		confirms: map[string]bool{"t-R0": true, "t-R3": true},
	}
	res := NewEvaluator().Evaluate(context.Background(), testTopic("t"), oracle)

	if res.Score == nil || *res.Score != 10 {
		t.Fatalf("expected score 10, got %v", res.Score)
	}
	if res.Rung != 0 {
		t.Errorf("expected rung 0, got %d", res.Rung)
	}
	if res.Weak {
		t.Errorf("confirmed rung must not be weak")
	}
}

func TestEvaluate_MidRungLeft(t *testing.T) {
	oracle := &scriptedOracle{
		relevant: true,
		stance:   model.StanceLeft,
		confirms: map[string]bool{"t-L2": true},
	}
	res := NewEvaluator().Evaluate(context.Background(), testTopic("t"), oracle)

	if res.Score == nil || *res.Score != -5 {
		t.Fatalf("expected score -5, got %v", res.Score)
	}
	if res.Rung != 2 {
		t.Errorf("expected rung 2, got %d", res.Rung)
	}
	if res.Stance != model.StanceLeft {
		t.Errorf("expected left stance, got %s", res.Stance)
	}
}

func TestEvaluate_CentrismConfirmed(t *testing.T) {
	oracle := &scriptedOracle{
		relevant: true,
		stance:   model.StanceRight,
		confirms: map[string]bool{"t-center": true},
	}
	res := NewEvaluator().Evaluate(context.Background(), testTopic("t"), oracle)

	if res.Score == nil || *res.Score != 0 {
		t.Fatalf("expected score 0, got %v", res.Score)
	}
	if res.Rung != model.RungCentrism {
		t.Errorf("expected RungCentrism, got %d", res.Rung)
	}
	if res.Weak {
		t.Errorf("confirmed centrism is a real measurement, not weak")
	}
}

func TestEvaluate_WeakDefault(t *testing.T) {
	// Nothing confirms, centrism included. The stance still indicated a
	// lean, so the most-moderate rung of that ladder applies, flagged.
	oracle := &scriptedOracle{
		relevant: true,
		stance:   model.StanceRight,
		confirms: map[string]bool{},
	}
	res := NewEvaluator().Evaluate(context.Background(), testTopic("t"), oracle)

	if res.Score == nil || *res.Score != 2.5 {
		t.Fatalf("expected weak default 2.5, got %v", res.Score)
	}
	if !res.Weak {
		t.Errorf("weak default must be flagged")
	}
	if res.Rung != model.RungDefault {
		t.Errorf("expected RungDefault, got %d", res.Rung)
	}
}

func TestEvaluate_OracleErrorExcludesTopic(t *testing.T) {
	oracle := &scriptedOracle{
		relevant:    true,
		stance:      model.StanceRight,
		confirmErrs: map[string]error{"t-R1": errors.New("oracle timeout")},
	}
	res := NewEvaluator().Evaluate(context.Background(), testTopic("t"), oracle)

	if res.Score != nil {
		t.Errorf("expected nil score on oracle error, got %v", *res.Score)
	}
	if res.Error == "" {
		t.Errorf("expected error recorded on result")
	}
}

func TestEvaluate_StanceErrorExcludesTopic(t *testing.T) {
	oracle := &scriptedOracle{relevant: true, stanceErr: errors.New("no answer")}
	res := NewEvaluator().Evaluate(context.Background(), testTopic("t"), oracle)

	if res.Score != nil || res.Error == "" {
		t.Errorf("expected excluded topic with error, got score=%v error=%q", res.Score, res.Error)
	}
}

func TestEvaluateAll_PreservesInputOrder(t *testing.T) {
	topics := []model.Topic{testTopic("a"), testTopic("b"), testTopic("c")}
	oracle := &scriptedOracle{
		relevant: true,
		stance:   model.StanceRight,
		confirms: map[string]bool{"a-R0": true, "b-R2": true, "c-center": true},
	}

	results := NewEvaluator().EvaluateAll(context.Background(), topics, oracle, 2)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, topic := range topics {
		if results[i].TopicID != topic.ID {
			t.Errorf("result %d: got topic %s, want %s", i, results[i].TopicID, topic.ID)
		}
	}
	if *results[0].Score != 10 || *results[1].Score != 5 || *results[2].Score != 0 {
		t.Errorf("unexpected scores: %v %v %v", *results[0].Score, *results[1].Score, *results[2].Score)
	}
}

func TestAggregate_NoData(t *testing.T) {
	results := []model.TopicResult{
		{TopicID: "a", Rung: model.RungNone},
		{TopicID: "b", Rung: model.RungNone, Error: "oracle down"},
	}
	ds := Aggregate(model.DimensionEconomic, results)

	if !ds.NoData {
		t.Errorf("expected NoData with zero scored topics")
	}
	if ds.Count != 0 {
		t.Errorf("expected count 0, got %d", ds.Count)
	}
}

func TestAggregate_ExcludedTopicsDoNotDilute(t *testing.T) {
	neg := -10.0
	pos := 5.0
	results := []model.TopicResult{
		{TopicID: "a", Score: &neg, Rung: 0},
		{TopicID: "b", Rung: model.RungNone},
		{TopicID: "c", Score: &pos, Rung: 2},
	}
	ds := Aggregate(model.DimensionEconomic, results)

	if ds.NoData {
		t.Fatalf("unexpected NoData")
	}
	if ds.Count != 2 {
		t.Errorf("expected count 2, got %d", ds.Count)
	}
	if ds.Score != -2.5 {
		t.Errorf("expected mean -2.5, got %v", ds.Score)
	}
}

func TestAggregate_SingleTopic(t *testing.T) {
	v := 7.5
	ds := Aggregate(model.DimensionSocial, []model.TopicResult{{TopicID: "a", Score: &v, Rung: 1}})

	if ds.Score != 7.5 || ds.Count != 1 {
		t.Errorf("expected 7.5 across 1 topic, got %v across %d", ds.Score, ds.Count)
	}
}
