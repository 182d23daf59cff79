package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"firassist/internal/domain"
	"firassist/internal/report"
)

// Drafter is the TUI-facing subset of the report service.
type Drafter interface {
	Analyze(ctx context.Context, caseDescription string) (report.Analysis, error)
	Draft(ctx context.Context, a report.Analysis, details report.IncidentDetails) (report.Report, error)
}

type page int

const (
	pageHome page = iota
	pageForm
	pageResult
)

// generationTimeout bounds one analyse-and-draft round trip.
const generationTimeout = 3 * time.Minute

var fieldLabels = []string{
	"Date of Incident",
	"Time of Incident",
	"Place of Occurrence",
	"Nature of the Offense",
	"Complainant Name",
	"Complainant Contact",
	"Complainant Address",
	"ID Proof Details",
	"Accused Name",
	"Accused Address",
	"Accused Description",
}

type draftMsg struct {
	report report.Report
	err    error
}

// Model is the Bubble Tea model for the FIR assistant.
type Model struct {
	drafter   Drafter
	exportDir string
	now       func() time.Time

	page      page
	inputs    []textinput.Model
	caseInput textarea.Model
	focus     int
	viewport  viewport.Model
	report    *report.Report
	status    string
	busy      bool
	width     int
	height    int
}

// New creates a new TUI model instance. Exports are written to exportDir.
func New(drafter Drafter, exportDir string) Model {
	m := Model{
		drafter:   drafter,
		exportDir: exportDir,
		now:       time.Now,
		viewport:  viewport.New(0, 0),
		status:    "Press Enter to start a new FIR.",
	}
	m.resetForm()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key, window and generation events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case draftMsg:
		m.busy = false
		if msg.report.Number == "" {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		r := msg.report
		m.report = &r
		m.page = pageResult
		m.viewport.SetContent(renderReport(r))
		m.viewport.GotoTop()
		if msg.err != nil {
			m.status = "Generated with errors: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("FIR %s drafted. ctrl+s export, ctrl+n new FIR, esc home.", r.Number)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.page {
		case pageHome:
			return m.updateHome(msg)
		case pageForm:
			return m.updateForm(msg)
		case pageResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "n":
		m.page = pageForm
		m.status = "Fill in the details. tab/shift+tab move, ctrl+g generates, esc home."
		cmd := m.setFocus(0)
		return m, cmd
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.page = pageHome
		m.status = "Press Enter to start a new FIR."
		return m, nil
	case "tab":
		cmd := m.setFocus((m.focus + 1) % (len(m.inputs) + 1))
		return m, cmd
	case "shift+tab":
		cmd := m.setFocus((m.focus + len(m.inputs)) % (len(m.inputs) + 1))
		return m, cmd
	case "enter":
		if m.focus < len(m.inputs) {
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		}
	case "ctrl+g":
		if strings.TrimSpace(m.caseInput.Value()) == "" {
			m.status = "Please enter a case description."
			return m, nil
		}
		m.busy = true
		m.status = "Generating FIR... This may take a moment."
		return m, m.generate()
	}

	var cmd tea.Cmd
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else {
		m.caseInput, cmd = m.caseInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.page = pageHome
		m.status = "Press Enter to start a new FIR."
		return m, nil
	case "ctrl+n":
		m.resetForm()
		m.page = pageForm
		m.status = "Fill in the details. tab/shift+tab move, ctrl+g generates, esc home."
		cmd := m.setFocus(0)
		return m, cmd
	case "ctrl+s":
		if m.report == nil {
			return m, nil
		}
		path, err := m.report.Save(m.exportDir)
		if err != nil {
			m.status = "Export failed: " + err.Error()
		} else {
			m.status = "Saved " + path
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// generate analyses the case and drafts the FIR off the UI goroutine. A failed
// analysis still drafts with whatever sections matched.
func (m Model) generate() tea.Cmd {
	drafter := m.drafter
	desc := m.caseInput.Value()
	details := m.details()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()
		a, err := drafter.Analyze(ctx, desc)
		if err != nil && !errors.Is(err, domain.ErrGeneration) {
			return draftMsg{err: err}
		}
		r, derr := drafter.Draft(ctx, a, details)
		return draftMsg{report: r, err: errors.Join(err, derr)}
	}
}

func (m Model) details() report.IncidentDetails {
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return report.IncidentDetails{
		DateOfIncident:     v(0),
		TimeOfIncident:     v(1),
		PlaceOfOccurrence:  v(2),
		NatureOfOffense:    v(3),
		ComplainantName:    v(4),
		ComplainantContact: v(5),
		ComplainantAddress: v(6),
		ComplainantID:      v(7),
		AccusedName:        v(8),
		AccusedAddress:     v(9),
		AccusedDescription: v(10),
	}
}

func (m *Model) resetForm() {
	now := m.now()
	m.inputs = make([]textinput.Model, len(fieldLabels))
	for i, label := range fieldLabels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = label
		ti.CharLimit = 0
		m.inputs[i] = ti
	}
	m.inputs[0].SetValue(now.Format(report.DateLayout))
	m.inputs[1].SetValue(now.Format("15:04"))

	ta := textarea.New()
	ta.Placeholder = "Provide detailed facts of the incident"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	m.caseInput = ta
	m.focus = 0
	m.report = nil
	m.layout()
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.caseInput.Blur()
	if i < len(m.inputs) {
		return m.inputs[i].Focus()
	}
	return m.caseInput.Focus()
}

func (m *Model) layout() {
	w := max(40, m.width)
	for i := range m.inputs {
		m.inputs[i].Width = max(20, w/2-labelWidth)
	}
	m.caseInput.SetWidth(max(20, w-4))
	m.caseInput.SetHeight(5)
	_, fh := boxStyle.GetFrameSize()
	m.viewport.Width = max(20, w-2)
	m.viewport.Height = max(3, m.height-fh-3)
}

// View renders the current page.
func (m Model) View() string {
	header := titleStyle.Render("FIR Assistant – Indian Police Report Generator")
	status := statusStyle.Render(m.status)
	switch m.page {
	case pageForm:
		return header + "\n" + m.viewForm() + "\n" + status
	case pageResult:
		return header + "\n" + boxStyle.Render(m.viewport.View()) + "\n" + status
	default:
		welcome := "This tool helps police officers and legal professionals create structured\n" +
			"First Information Reports (FIRs) with relevant legal sections."
		return header + "\n\n" + welcome + "\n\n" + status
	}
}

func (m Model) viewForm() string {
	var b strings.Builder
	for i, label := range fieldLabels {
		l := labelStyle.Render(label)
		if i == m.focus {
			l = focusStyle.Render(label)
		}
		b.WriteString(l + m.inputs[i].View() + "\n")
	}
	caseLabel := "Case Description"
	if m.focus == len(m.inputs) {
		caseLabel = focusStyle.Render(caseLabel)
	}
	b.WriteString(caseLabel + "\n" + boxStyle.Render(m.caseInput.View()))
	return b.String()
}

func renderReport(r report.Report) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("Generated FIR %s", r.Number)) + "\n\n")
	if strings.TrimSpace(r.Text) != "" {
		b.WriteString(r.Text)
	} else {
		b.WriteString("FIR text was not generated.")
	}
	b.WriteString("\n\n" + sectionStyle.Render("Relevant Sections") + "\n\n")
	if len(r.Analysis.Sections) == 0 {
		b.WriteString("No sections matched the case description.\n")
	}
	for _, s := range r.Analysis.Sections {
		b.WriteString(highlightStyle.Render("Section "+s.SectionID) + fmt.Sprintf("  score=%.3f\n", s.Score))
		b.WriteString(s.Description + "\n\n")
	}
	b.WriteString("\n" + sectionStyle.Render("Case Analysis") + "\n\n")
	if r.Analysis.Brief != "" {
		b.WriteString(briefStyle.Render(r.Analysis.Brief) + "\n\n")
	}
	if strings.TrimSpace(r.Analysis.Text) != "" {
		b.WriteString(r.Analysis.Text)
	} else {
		b.WriteString("Case analysis was not generated.")
	}
	return b.String()
}

const labelWidth = 24

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle     = lipgloss.NewStyle().Width(labelWidth)
	focusStyle     = lipgloss.NewStyle().Width(labelWidth).Foreground(lipgloss.Color("11")).Bold(true)
	sectionStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	briefStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)
