// Package report drafts First Information Reports from a case description,
// the statute sections it matches, and a text generation service.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"firassist/internal/domain"
)

// Retriever ranks statute sections against free text.
type Retriever interface {
	Query(text string, k int, minScore float64) ([]domain.SectionMatch, error)
}

// Analysis is the outcome of matching a case description.
type Analysis struct {
	CaseDescription string
	Brief           string
	Sections        []domain.SectionMatch
	Text            string
}

// Report is a drafted FIR.
type Report struct {
	ID           uuid.UUID
	Number       string
	RegisteredAt time.Time
	Details      IncidentDetails
	Analysis     Analysis
	Text         string
}

// Options configures a Service.
type Options struct {
	TopK           int
	MinScore       float64
	BriefSentences int
	PoliceStation  string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service drafts FIRs.
type Service struct {
	retriever  Retriever
	generator  domain.Generator
	numberer   domain.Numberer
	summarizer domain.Summarizer
	opts       Options
	log        zerolog.Logger
}

// NewService wires the drafting collaborators together.
func NewService(r Retriever, g domain.Generator, n domain.Numberer, s domain.Summarizer, opts Options, log zerolog.Logger) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		retriever:  r,
		generator:  g,
		numberer:   n,
		summarizer: s,
		opts:       opts,
		log:        log.With().Str("component", "report").Logger(),
	}
}

// Analyze matches caseDescription against the statute index and asks the
// generator for a legal analysis. If generation fails the matched sections are
// still returned together with the error.
func (s *Service) Analyze(ctx context.Context, caseDescription string) (Analysis, error) {
	caseDescription = strings.TrimSpace(caseDescription)
	if caseDescription == "" {
		return Analysis{}, fmt.Errorf("%w: case description is empty", domain.ErrInvalidArgument)
	}
	matches, err := s.retriever.Query(caseDescription, s.opts.TopK, s.opts.MinScore)
	if err != nil {
		return Analysis{}, err
	}
	a := Analysis{CaseDescription: caseDescription, Sections: matches}
	if s.summarizer != nil {
		if brief, err := s.summarizer.Summarize(caseDescription, s.opts.BriefSentences); err == nil {
			a.Brief = brief
		}
	}
	s.log.Info().Int("sections", len(matches)).Msg("case matched")

	prompt, err := render(analysisTmpl, a)
	if err != nil {
		return a, err
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Msg("case analysis unavailable")
		return a, fmt.Errorf("analyze case: %w", err)
	}
	a.Text = text
	return a, nil
}

// Draft numbers and generates the FIR for an analysed case.
func (s *Service) Draft(ctx context.Context, a Analysis, details IncidentDetails) (Report, error) {
	if strings.TrimSpace(a.CaseDescription) == "" {
		return Report{}, fmt.Errorf("%w: case description is empty", domain.ErrInvalidArgument)
	}
	now := s.opts.Now()
	r := Report{
		ID:           uuid.New(),
		Number:       s.numberer.Next(now),
		RegisteredAt: now,
		Details:      details,
		Analysis:     a,
	}
	prompt, err := render(firTmpl, struct {
		CaseDescription string
		Sections        []domain.SectionMatch
		Details         string
		Number          string
		RegisteredAt    time.Time
		Station         string
	}{a.CaseDescription, a.Sections, details.String(), r.Number, now, s.opts.PoliceStation})
	if err != nil {
		return r, err
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Str("fir", r.Number).Msg("FIR generation failed")
		return r, fmt.Errorf("draft FIR %s: %w", r.Number, err)
	}
	r.Text = text
	s.log.Info().Str("fir", r.Number).Str("report_id", r.ID.String()).Msg("FIR drafted")
	return r, nil
}
