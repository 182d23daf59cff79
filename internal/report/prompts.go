package report

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"firassist/internal/domain"
)

var analysisTmpl = template.Must(template.New("analysis").Funcs(funcs).Parse(`You are a legal expert specializing in Indian criminal law. Based on the following case description, provide a comprehensive list of all possible relevant sections from the Indian Penal Code (IPC) and other applicable acts.

Case Description: {{.CaseDescription}}

Initial Relevant Sections from Analysis:
{{sections .Sections}}
Please provide:
1. A complete list of applicable sections with brief explanations of why each section applies
2. Any additional sections that might be relevant but weren't in the initial analysis
3. A detailed legal analysis of the case considering:
   - Primary offenses
   - Secondary or related offenses
   - Aggravating factors
   - Procedural considerations
   - Potential defenses

Format your response as:
APPLICABLE SECTIONS:
Section [Number] - [Brief explanation of relevance]

CASE ANALYSIS:
[Detailed analysis of the legal aspects of the case]

INVESTIGATION RECOMMENDATIONS:
[Suggestions for evidence collection and next steps]
`))

var firTmpl = template.Must(template.New("fir").Funcs(funcs).Parse(`You are a senior police officer with expertise in drafting First Information Reports (FIRs) in India.
Based on the following information, generate a professionally formatted FIR document.

CASE DESCRIPTION:
{{.CaseDescription}}

RELEVANT SECTIONS:
{{sections .Sections}}
USER INPUTS:
{{.Details}}
FIR NUMBER: {{.Number}}
REGISTRATION DATE: {{date .RegisteredAt}}

Please format the FIR with the following sections:

FIRST INFORMATION REPORT

1. FIR Number and Registration Details
2. Date, Time and Place of Occurrence
3. Information Received At Police Station (use current date/time)
4. Type of Information: Written/Oral
5. Complainant Details (name, address, contact)
6. Details of Known/Unknown Accused
7. Reasons for delay in reporting (if applicable)
8. Particulars of properties stolen (if applicable)
9. Description of the Incident (detailed facts)
10. Sections of Law Applied
11. Action Taken (initial steps)
12. Signature/Thumb Impression of Complainant
13. Officer Details (use "Investigating Officer, {{station .Station}}")

Format the FIR in a clear, professional manner suitable for official police records. Use formal language appropriate for legal documents.
`))

var funcs = template.FuncMap{
	"sections": formatSections,
	"station": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "[Police Station Name]"
		}
		return s
	},
	"date": func(t time.Time) string { return t.Format(DateLayout) },
}

// formatSections renders matches one per line, or a placeholder when none matched.
func formatSections(matches []domain.SectionMatch) string {
	if len(matches) == 0 {
		return "No sections matched the case description.\n"
	}
	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "Section %s: %s\n", m.SectionID, m.Description)
	}
	return b.String()
}

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", t.Name(), err)
	}
	return b.String(), nil
}
