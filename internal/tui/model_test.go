package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"firassist/internal/domain"
	"firassist/internal/report"
)

type fakeDrafter struct {
	analyzeErr error
	draftErr   error
	gotCase    string
	gotDetails report.IncidentDetails
}

func (f *fakeDrafter) Analyze(ctx context.Context, desc string) (report.Analysis, error) {
	f.gotCase = desc
	return report.Analysis{
		CaseDescription: desc,
		Sections:        []domain.SectionMatch{{SectionID: "302", Description: "murder", Score: 0.47}},
		Text:            "analysis text",
	}, f.analyzeErr
}

func (f *fakeDrafter) Draft(ctx context.Context, a report.Analysis, d report.IncidentDetails) (report.Report, error) {
	f.gotDetails = d
	return report.Report{
		Number:       "1/2024",
		RegisteredAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Analysis:     a,
		Text:         "FIR text",
	}, f.draftErr
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestFormFlow(t *testing.T) {
	d := &fakeDrafter{}
	dir := t.TempDir()
	m := New(d, dir)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = send(t, m, key("enter"))
	if m.page != pageForm {
		t.Fatalf("expected form page, got %v", m.page)
	}

	// Generating without a case description is refused.
	m, cmd := send(t, m, key("ctrl+g"))
	if cmd != nil || m.busy {
		t.Fatal("generation started without a case description")
	}
	if !strings.Contains(m.status, "case description") {
		t.Errorf("status = %q", m.status)
	}

	// Jump to the place field and type.
	m, _ = send(t, m, key("tab"), key("tab"), key("Saket"))
	if got := m.inputs[2].Value(); got != "Saket" {
		t.Errorf("place = %q", got)
	}

	// shift+tab from the first field wraps to the case description.
	m.focus = 0
	m, _ = send(t, m, key("shift+tab"))
	if m.focus != len(m.inputs) {
		t.Fatalf("focus = %d, want case description", m.focus)
	}
	m, _ = send(t, m, key("knife attack"))

	m, cmd = send(t, m, key("ctrl+g"))
	if cmd == nil || !m.busy {
		t.Fatal("expected generation command")
	}
	m, _ = send(t, m, cmd())
	if m.page != pageResult {
		t.Fatalf("expected result page, got %v (status %q)", m.page, m.status)
	}
	if d.gotCase != "knife attack" || d.gotDetails.PlaceOfOccurrence != "Saket" {
		t.Errorf("drafter got case %q details %+v", d.gotCase, d.gotDetails)
	}
	view := m.View()
	for _, want := range []string{"FIR text", "Section 302"} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q", want)
		}
	}

	m, _ = send(t, m, key("ctrl+s"))
	if _, err := os.Stat(filepath.Join(dir, "FIR_1_2024.txt")); err != nil {
		t.Errorf("export not written: %v (status %q)", err, m.status)
	}

	m, _ = send(t, m, key("ctrl+n"))
	if m.page != pageForm || m.caseInput.Value() != "" || m.report != nil {
		t.Error("ctrl+n should reset the form")
	}
	m, _ = send(t, m, key("esc"))
	if m.page != pageHome {
		t.Errorf("esc should return home, got %v", m.page)
	}
}

func TestGenerationFailureStillShowsSections(t *testing.T) {
	d := &fakeDrafter{analyzeErr: domain.ErrGeneration}
	m := New(d, t.TempDir())
	m, _ = send(t, m, key("enter"), key("shift+tab"), key("x"))
	m, cmd := send(t, m, key("ctrl+g"))
	m, _ = send(t, m, cmd())
	if m.page != pageResult {
		t.Fatalf("expected result page, got %v", m.page)
	}
	if !strings.Contains(m.status, "errors") {
		t.Errorf("status = %q", m.status)
	}
}

func TestInvalidCaseStaysOnForm(t *testing.T) {
	d := &fakeDrafter{analyzeErr: domain.ErrInvalidArgument}
	m := New(d, t.TempDir())
	m, _ = send(t, m, key("enter"), key("shift+tab"), key("x"))
	m, cmd := send(t, m, key("ctrl+g"))
	m, _ = send(t, m, cmd())
	if m.page != pageForm || m.busy {
		t.Errorf("expected form page and idle, got page %v busy %v", m.page, m.busy)
	}
	if !strings.HasPrefix(m.status, "Error:") {
		t.Errorf("status = %q", m.status)
	}
}

func TestFormDateMatchesReportLayout(t *testing.T) {
	m := New(&fakeDrafter{}, t.TempDir())
	m.now = func() time.Time { return time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC) }
	m.resetForm()
	if got := m.inputs[0].Value(); got != "05-03-2024" {
		t.Errorf("date field = %q, want 05-03-2024", got)
	}
	if got := m.inputs[1].Value(); got != "14:30" {
		t.Errorf("time field = %q, want 14:30", got)
	}
}
