package summarizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestSummarizeShortText(t *testing.T) {
	s := NewFrequencySummarizer(nil)
	got, err := s.Summarize("  The phone was stolen.  ", 2)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "The phone was stolen." {
		t.Errorf("got %q", got)
	}
	if got, _ := s.Summarize("", 2); got != "" {
		t.Errorf("empty text gave %q", got)
	}
}

func TestSummarizeKeepsOrderAndLimit(t *testing.T) {
	text := "On Monday night the complainant was walking home. " +
		"Two men attacked the complainant with a knife and stole the complainant's phone. " +
		"The weather was pleasant. " +
		"The men fled with the phone and the knife towards the market"
	s := NewFrequencySummarizer(nil)
	got, err := s.Summarize(text, 2)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if strings.Contains(got, "weather") {
		t.Errorf("low-value sentence kept: %q", got)
	}
	if n := strings.Count(got, "."); n > 2 {
		t.Errorf("too many sentences in %q", got)
	}
	if i, j := strings.Index(got, "attacked"), strings.Index(got, "fled"); i < 0 || j < 0 || i > j {
		t.Errorf("expected the two knife sentences in order, got %q", got)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"He ran... Then he stopped?! Police came.", []string{"He ran...", "Then he stopped?!", "Police came."}},
		{"Help!! They took the bag", []string{"Help!!", "They took the bag"}},
		{"No punctuation at all", []string{"No punctuation at all"}},
		{"One. Two.  ", []string{"One.", "Two."}},
	}
	for _, tt := range tests {
		got := splitSentences(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitSentences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
