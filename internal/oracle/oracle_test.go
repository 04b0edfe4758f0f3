package oracle

import (
	"testing"
)

func TestParseYesNo(t *testing.T) {
	cases := []struct {
		reply   string
		want    bool
		wantErr bool
	}{
		{"YES", true, false},
		{"yes", true, false},
		{"Yes.", true, false},
		{"NO", false, false},
		{"no, the coverage avoids it", false, false},
		{"  YES\n", true, false},
		{"maybe", false, true},
		{"", false, true},
	}
	for _, tc := range cases {
		got, err := parseYesNo(tc.reply)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseYesNo(%q): expected error", tc.reply)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseYesNo(%q): %v", tc.reply, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseYesNo(%q) = %v, want %v", tc.reply, got, tc.want)
		}
	}
}

func TestParseChoice(t *testing.T) {
	got, err := parseChoice("left", "LEFT", "RIGHT")
	if err != nil {
		t.Fatalf("parseChoice: %v", err)
	}
	if got != "LEFT" {
		t.Errorf("expected LEFT, got %s", got)
	}

	if _, err := parseChoice("center", "LEFT", "RIGHT"); err == nil {
		t.Errorf("expected error for option outside the set")
	}
}

func TestParseScore(t *testing.T) {
	cases := []struct {
		reply   string
		want    float64
		wantErr bool
	}{
		{"-2.5", -2.5, false},
		{"7", 7, false},
		{"+3.5", 3.5, false},
		{"0", 0, false},
		{"4.5 (mostly factual)", 4.5, false},
		{"around four", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := parseScore(tc.reply)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseScore(%q): expected error", tc.reply)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseScore(%q): %v", tc.reply, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseScore(%q) = %v, want %v", tc.reply, got, tc.want)
		}
	}
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(Config{Provider: "gemini"})
	if err == nil {
		t.Errorf("expected error for unknown provider")
	}
}
