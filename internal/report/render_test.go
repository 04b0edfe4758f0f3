package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akoval/mediascope/internal/model"
)

func TestRenderJSON_RoundTrips(t *testing.T) {
	p := Assemble(assembleInputs())
	path := filepath.Join(t.TempDir(), "profile.json")

	if err := NewRenderer(true).RenderJSON(p, path); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got model.Profile
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Outlet != p.Outlet || got.BiasLabel != p.BiasLabel || got.CredibilityPoints != p.CredibilityPoints {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestRenderMarkdown_Sections(t *testing.T) {
	p := Assemble(assembleInputs())
	path := filepath.Join(t.TempDir(), "profile.md")

	if err := NewRenderer(true).RenderMarkdown(p, path); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"# Example News",
		"## Detailed Report",
		"## Bias Breakdown",
		"## Factuality Breakdown",
		"## Topic Audit",
		"econ-taxation",
		"Credibility Rating",
		"Generated by Mediascope",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderMarkdown_NoFooter(t *testing.T) {
	p := Assemble(assembleInputs())
	path := filepath.Join(t.TempDir(), "profile.md")

	if err := NewRenderer(false).RenderMarkdown(p, path); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "Generated by Mediascope") {
		t.Errorf("footer rendered despite being disabled")
	}
}
