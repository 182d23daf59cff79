// Package generator holds text generation collaborators used for FIR drafting.
package generator

import "context"

// OfflineNotice is returned by Static when no generation service is configured.
const OfflineNotice = "Text generation is not configured. Review the matched sections and draft the report manually."

// Static returns a fixed text for every prompt.
type Static struct {
	Text string
}

// NewStatic creates a generator that always answers with OfflineNotice.
func NewStatic() *Static { return &Static{Text: OfflineNotice} }

// Generate returns the configured text.
func (s *Static) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Text, nil
}
