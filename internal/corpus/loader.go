// Package corpus loads statute sections from tabular or YAML files.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"firassist/internal/domain"
)

const (
	sectionColumn     = "section"
	descriptionColumn = "description"
)

// LoadFile reads a corpus from path. CSV files need Section and Description
// columns; YAML files hold a list of {section, description} records.
func LoadFile(path string) ([]domain.StatuteEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return nil, fmt.Errorf("%w: unsupported corpus format %q", domain.ErrInvalidArgument, filepath.Ext(path))
	}
}

// LoadCSV parses a corpus with a header row. Rows without a section are skipped.
func LoadCSV(r io.Reader) ([]domain.StatuteEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: corpus has no header", domain.ErrInvalidArgument)
		}
		return nil, err
	}
	secIdx, descIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case sectionColumn:
			secIdx = i
		case descriptionColumn:
			descIdx = i
		}
	}
	if secIdx < 0 || descIdx < 0 {
		return nil, fmt.Errorf("%w: corpus needs Section and Description columns, got %v", domain.ErrInvalidArgument, header)
	}

	var entries []domain.StatuteEntry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if secIdx >= len(rec) {
			continue
		}
		id := strings.TrimSpace(rec[secIdx])
		if id == "" {
			continue
		}
		var desc string
		if descIdx < len(rec) {
			desc = strings.TrimSpace(rec[descIdx])
		}
		entries = append(entries, domain.StatuteEntry{SectionID: id, Description: desc})
	}
	return entries, nil
}

// LoadYAML parses a corpus given as a YAML sequence.
func LoadYAML(r io.Reader) ([]domain.StatuteEntry, error) {
	var entries []domain.StatuteEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	out := entries[:0]
	for _, e := range entries {
		e.SectionID = strings.TrimSpace(e.SectionID)
		e.Description = strings.TrimSpace(e.Description)
		if e.SectionID == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
