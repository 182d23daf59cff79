package domain

import (
	"context"
	"time"
)

// StatuteEntry is one section of a statute with its descriptive text.
type StatuteEntry struct {
	SectionID   string `yaml:"section"`
	Description string `yaml:"description"`
}

// SectionMatch is a statute section ranked against a case description.
type SectionMatch struct {
	SectionID   string
	Description string
	Score       float64
}

// Generator produces free-form text for a prompt.
// Implementations talk to an external language model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Numberer assigns report numbers.
type Numberer interface {
	Next(now time.Time) string
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
