package retrieval

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

// Tokenizer turns free text into index terms: lower-cased alphanumeric runs of
// two or more characters, English stop-words removed, then stemmed.
// The same Tokenizer must be used to build an index and to query it.
type Tokenizer struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewTokenizer creates a tokenizer with the default English stop-word list.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]{2,}`),
		stopwords:    defaultStopwords(),
	}
}

// Tokens returns the terms of text in order of appearance, duplicates kept.
func (t *Tokenizer) Tokens(text string) []string {
	lower := strings.ToLower(text)
	raw := t.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, w := range raw {
		if t.IsStopword(w) {
			continue
		}
		out = append(out, english.Stem(w, false))
	}
	return out
}

// IsStopword reports whether a lower-cased word is dropped by the tokenizer.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}
