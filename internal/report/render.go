package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/akoval/mediascope/internal/model"
	"github.com/akoval/mediascope/internal/score"
)

// Renderer writes profiles to JSON and Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the profile as indented JSON
func (r *Renderer) RenderJSON(p *model.Profile, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// RenderMarkdown writes the profile as a human-readable report: header
// block keyed by the bias label, overall summary, detailed metric
// list, and a per-topic audit appendix.
func (r *Renderer) RenderMarkdown(p *model.Profile, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Outlet)
	fmt.Fprintf(&b, "%s\n\n", biasHeader(p.BiasLabel))

	fmt.Fprintf(&b, "**Overall, we rate %s %s based on a composite bias score of %.2f. We also rate them %s for factual reporting based on a composite factuality score of %.2f.**\n\n",
		p.Outlet, p.BiasLabel, p.BiasScore, p.FactualityLabel, p.FactualityScore)

	b.WriteString("## Detailed Report\n\n")
	fmt.Fprintf(&b, "- Bias Rating: %s (%.2f)\n", strings.ToUpper(p.BiasLabel), p.BiasScore)
	fmt.Fprintf(&b, "- Factual Reporting: %s (%.2f)\n", strings.ToUpper(p.FactualityLabel), p.FactualityScore)
	if p.Country != "" {
		fmt.Fprintf(&b, "- Country: %s (%s)\n", p.Country, p.Freedom)
	} else {
		fmt.Fprintf(&b, "- Press Freedom: %s\n", p.Freedom)
	}
	if p.MediaType != "" {
		fmt.Fprintf(&b, "- Media Type: %s\n", p.MediaType)
	}
	fmt.Fprintf(&b, "- Traffic/Popularity: %s\n", p.Traffic)
	if p.SiteAge > 0 {
		fmt.Fprintf(&b, "- Site Age: %d years\n", p.SiteAge)
	}
	fmt.Fprintf(&b, "- Credibility Rating: %s (%d points)\n\n", strings.ToUpper(p.CredibilityLevel), p.CredibilityPoints)

	b.WriteString("## Bias Breakdown\n\n")
	b.WriteString("| Component | Value | Weight |\n|---|---|---|\n")
	for _, c := range p.BiasComponents {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f |\n", c.Name, c.Value, c.Weight)
	}
	b.WriteString("\n## Factuality Breakdown\n\n")
	b.WriteString("| Component | Value | Weight |\n|---|---|---|\n")
	for _, c := range p.FactualityComponents {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f |\n", c.Name, c.Value, c.Weight)
	}

	b.WriteString("\n## Topic Audit\n\n")
	b.WriteString("| Topic | Score | Stance | Outcome |\n|---|---|---|---|\n")
	for _, t := range p.Topics {
		scoreCol := "excluded"
		if t.Scored() {
			scoreCol = fmt.Sprintf("%.1f", Round1(*t.Score))
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", t.TopicID, scoreCol, stanceCol(t), outcome(t))
	}

	for _, d := range p.Dimensions {
		if d.NoData {
			fmt.Fprintf(&b, "\n%s dimension: no data (no relevant topics scored)\n", d.Dimension)
		} else {
			fmt.Fprintf(&b, "\n%s dimension: %.2f across %d topics\n", d.Dimension, Round2(d.Score), d.Count)
		}
	}

	if len(p.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range p.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "\n---\nGenerated by Mediascope on %s. Scores are oracle-derived estimates, not assertions of truth.\n",
			p.GeneratedAt.Format("2006-01-02"))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func biasHeader(label string) string {
	switch label {
	case score.LabelLeft, score.LabelLeftCenter, score.LabelExtremeLeft:
		return "These sources are moderately to strongly biased toward liberal causes through story selection and/or political affiliation."
	case score.LabelRight, score.LabelRightCenter, score.LabelExtremeRight:
		return "These sources are moderately to strongly biased toward conservative causes through story selection and/or political affiliation."
	default:
		return "These sources have minimal bias and use very few loaded words. Reporting is factual and usually sourced."
	}
}

func stanceCol(t model.TopicResult) string {
	if t.Stance == "" {
		return "-"
	}
	return string(t.Stance)
}

func outcome(t model.TopicResult) string {
	switch {
	case t.Error != "":
		return "error: " + t.Error
	case t.Rung == model.RungNone:
		return "not relevant"
	case t.Rung == model.RungCentrism:
		return "centrism confirmed"
	case t.Rung == model.RungDefault:
		return "weak default"
	default:
		return fmt.Sprintf("rung %d confirmed", t.Rung+1)
	}
}
