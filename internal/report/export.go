package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Filename returns the export file name for the report, e.g. FIR_12_2024.txt.
func (r Report) Filename() string {
	return "FIR_" + strings.ReplaceAll(r.Number, "/", "_") + ".txt"
}

// Export writes the report as plain text: the FIR, the relevant sections and
// the case analysis.
func (r Report) Export(w io.Writer) error {
	var b strings.Builder
	b.WriteString("FIRST INFORMATION REPORT (FIR)\n")
	fmt.Fprintf(&b, "FIR No. %s    Registered %s\n", r.Number, r.RegisteredAt.Format(DateLayout))
	fmt.Fprintf(&b, "Report ID %s\n\n", r.ID)
	b.WriteString(orPlaceholder(r.Text, "FIR text was not generated."))
	b.WriteString("\n\nRELEVANT SECTIONS\n\n")
	b.WriteString(formatSections(r.Analysis.Sections))
	b.WriteString("\nCASE ANALYSIS\n\n")
	b.WriteString(orPlaceholder(r.Analysis.Text, "Case analysis was not generated."))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Save exports the report into dir and returns the written path.
func (r Report) Save(dir string) (string, error) {
	path := filepath.Join(dir, r.Filename())
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := r.Export(f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
