package retrieval

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	tok := NewTokenizer()
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"The accused MURDERED the victim!", []string{"accus", "murder", "victim"}},
		{"murder, murders; murdered", []string{"murder", "murder", "murder"}},
		{"Section 302 of the IPC", []string{"section", "302", "ipc"}},
		{"a b c", nil},
	}
	for _, tt := range tests {
		got := tok.Tokens(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokens(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsStopword(t *testing.T) {
	tok := NewTokenizer()
	for _, w := range []string{"the", "and", "with", "of"} {
		if !tok.IsStopword(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}
	for _, w := range []string{"murder", "knife", "property"} {
		if tok.IsStopword(w) {
			t.Errorf("%q should not be a stopword", w)
		}
	}
}
