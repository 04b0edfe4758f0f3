package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/akoval/mediascope/internal/model"
)

// corpusCharBudget caps how much article text one prompt carries
const corpusCharBudget = 24000

// Judge binds a completion client to one source's article corpus and
// answers the engine's questions about it. It satisfies the decision
// tree's oracle contract (Relevant/Stance/Confirms) and additionally
// rates the four factuality components and the two non-tree bias
// components.
type Judge struct {
	client Client
	outlet string
	digest string
}

// NewJudge builds a judge over the given corpus. The digest embedded
// in every prompt holds titles plus truncated bodies, newest first,
// within a fixed character budget.
func NewJudge(client Client, outlet string, articles []model.Article) *Judge {
	return &Judge{
		client: client,
		outlet: outlet,
		digest: buildDigest(articles),
	}
}

func buildDigest(articles []model.Article) string {
	var b strings.Builder
	remaining := corpusCharBudget
	perArticle := corpusCharBudget
	if len(articles) > 0 {
		perArticle = corpusCharBudget / len(articles)
	}
	for i, a := range articles {
		if remaining <= 0 {
			break
		}
		text := a.Text
		if len(text) > perArticle {
			text = text[:perArticle]
		}
		entry := fmt.Sprintf("[Article %d] %s\n%s\n\n", i+1, a.Title, text)
		if len(entry) > remaining {
			entry = entry[:remaining]
		}
		b.WriteString(entry)
		remaining -= len(entry)
	}
	return b.String()
}

func (j *Judge) prompt(question, format string) string {
	return fmt.Sprintf("Coverage from %s:\n\n%s\n---\nQuestion: %s\n\nAnswer with %s only.", j.outlet, j.digest, question, format)
}

// Relevant reports whether the corpus covers the topic at all
func (j *Judge) Relevant(ctx context.Context, check string) (bool, error) {
	reply, err := j.client.Ask(ctx, systemPrompt, j.prompt(check, "YES or NO"))
	if err != nil {
		return false, fmt.Errorf("relevance check: %w", err)
	}
	return parseYesNo(reply)
}

// Stance picks the pole the coverage leans toward on one topic
func (j *Judge) Stance(ctx context.Context, topic model.Topic) (model.Stance, error) {
	question := fmt.Sprintf("On the subject of %s, does this coverage lean LEFT (progressive pole) or RIGHT (conservative pole)?", strings.ToLower(topic.Name))
	reply, err := j.client.Ask(ctx, systemPrompt, j.prompt(question, "LEFT or RIGHT"))
	if err != nil {
		return "", fmt.Errorf("stance for %s: %w", topic.ID, err)
	}
	choice, err := parseChoice(reply, "LEFT", "RIGHT")
	if err != nil {
		return "", fmt.Errorf("stance for %s: %w", topic.ID, err)
	}
	if choice == "LEFT" {
		return model.StanceLeft, nil
	}
	return model.StanceRight, nil
}

// Confirms answers a single yes/no rung or centrism question
func (j *Judge) Confirms(ctx context.Context, q model.Question) (bool, error) {
	reply, err := j.client.Ask(ctx, systemPrompt, j.prompt(q.Text, "YES or NO"))
	if err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return parseYesNo(reply)
}

func (j *Judge) rate(ctx context.Context, name, question, scale string) (float64, error) {
	reply, err := j.client.Ask(ctx, systemPrompt, j.prompt(question, "a single number on "+scale))
	if err != nil {
		return 0, fmt.Errorf("%s rating: %w", name, err)
	}
	v, err := parseScore(reply)
	if err != nil {
		return 0, fmt.Errorf("%s rating: %w", name, err)
	}
	return v, nil
}

// NewsReportingBalance rates story selection and framing of the news
// coverage on [-10,+10], negative leaning left.
func (j *Judge) NewsReportingBalance(ctx context.Context) (float64, error) {
	return j.rate(ctx, "news reporting",
		"Considering only straight news reporting (not opinion pieces): how balanced is story selection, sourcing, and framing? -10 is maximally left-slanted, 0 is balanced, +10 is maximally right-slanted.",
		"[-10,+10]")
}

// EditorialBias rates opinion and editorial content on [-10,+10]
func (j *Judge) EditorialBias(ctx context.Context) (float64, error) {
	return j.rate(ctx, "editorial bias",
		"Considering only opinion and editorial content: how strong and in which direction is the editorial position? -10 is maximally left, 0 is none, +10 is maximally right.",
		"[-10,+10]")
}

// FactCheckRecord rates the corpus against known failed fact checks
// and unsupported claims, on [0,10] where 0 is a clean record.
func (j *Judge) FactCheckRecord(ctx context.Context) (float64, error) {
	return j.rate(ctx, "fact check",
		"How many claims in this coverage are false, misleading, or contradicted by established reporting? 0 means a clean record, 10 means pervasive failed claims.",
		"[0,10]")
}

// Sourcing rates citation hygiene on [0,10], 0 best
func (j *Judge) Sourcing(ctx context.Context) (float64, error) {
	return j.rate(ctx, "sourcing",
		"How well does this coverage attribute claims to credible, checkable sources? 0 means consistently well-sourced, 10 means largely unsourced or circular.",
		"[0,10]")
}

// Transparency rates disclosure of authorship, ownership, and
// corrections on [0,10], 0 best.
func (j *Judge) Transparency(ctx context.Context) (float64, error) {
	return j.rate(ctx, "transparency",
		"How transparent is this outlet in its coverage about authorship, ownership, funding, and corrections? 0 means fully transparent, 10 means opaque.",
		"[0,10]")
}

// Propaganda rates use of loaded language and propaganda techniques on
// [0,10], 0 meaning none detected.
func (j *Judge) Propaganda(ctx context.Context) (float64, error) {
	return j.rate(ctx, "propaganda",
		"How heavily does this coverage use propaganda techniques: loaded language, name-calling, fear appeals, whataboutism? 0 means none, 10 means saturated.",
		"[0,10]")
}
