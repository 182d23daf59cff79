package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"firassist/internal/domain"
)

func TestLoadCSV(t *testing.T) {
	in := "Description,Section\n" +
		"\"Punishment for murder, death or life\", 302 \n" +
		"no section here,\n" +
		"Cheating,420\n"
	entries, err := LoadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	want := []domain.StatuteEntry{
		{SectionID: "302", Description: "Punishment for murder, death or life"},
		{SectionID: "420", Description: "Cheating"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestLoadCSVMissingColumns(t *testing.T) {
	tests := []string{
		"",
		"Section,Text\n302,murder\n",
		"Id,Description\n302,murder\n",
	}
	for _, in := range tests {
		if _, err := LoadCSV(strings.NewReader(in)); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("LoadCSV(%q): expected ErrInvalidArgument, got %v", in, err)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	in := `
- section: "302"
  description: Punishment for murder.
- section: ""
  description: skipped
- section: "379"
  description: " Punishment for theft. "
`
	entries, err := LoadYAML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries: %+v", len(entries), entries)
	}
	if entries[1].SectionID != "379" || entries[1].Description != "Punishment for theft." {
		t.Errorf("unexpected entry: %+v", entries[1])
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sections.csv")
	if err := os.WriteFile(csvPath, []byte("Section,Description\n302,murder\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	entries, err := LoadFile(csvPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) != 1 || entries[0].SectionID != "302" {
		t.Errorf("unexpected entries: %+v", entries)
	}

	txtPath := filepath.Join(dir, "sections.txt")
	if err := os.WriteFile(txtPath, []byte("302 murder"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(txtPath); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for .txt, got %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadSampleCorpus(t *testing.T) {
	entries, err := LoadFile(filepath.Join("..", "..", "testdata", "fir_sections.csv"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) < 10 {
		t.Errorf("sample corpus too small: %d entries", len(entries))
	}
}
