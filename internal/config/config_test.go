package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"firassist/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Retriever.TopK != 5 || cfg.Retriever.MinScore != 0.1 {
		t.Errorf("unexpected retriever defaults: %+v", cfg.Retriever)
	}
	if cfg.Generator.Model != "llama3-70b-8192" {
		t.Errorf("unexpected model default: %q", cfg.Generator.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
corpus:
  path: data/sections.yaml
retriever:
  top_k: 3
  min_score: 0.25
generator:
  type: openai
  model: ""
log:
  level: debug
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Corpus.Path != "data/sections.yaml" {
		t.Errorf("corpus path = %q", cfg.Corpus.Path)
	}
	if cfg.Retriever.TopK != 3 || cfg.Retriever.MinScore != 0.25 {
		t.Errorf("retriever = %+v", cfg.Retriever)
	}
	if cfg.Generator.Model != "llama3-70b-8192" {
		t.Errorf("empty model should fall back to default, got %q", cfg.Generator.Model)
	}
	if cfg.Generator.APIKeyEnv != "GROQ_API_KEY" {
		t.Errorf("api key env = %q", cfg.Generator.APIKeyEnv)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero top_k", "retriever:\n  top_k: 0\n"},
		{"negative min_score", "retriever:\n  min_score: -0.5\n"},
		{"min_score above one", "retriever:\n  min_score: 2\n"},
		{"unknown generator", "generator:\n  type: carrier-pigeon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if err := cfg.Validate(); !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Report.PoliceStation = "Connaught Place"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Report.PoliceStation != "Connaught Place" {
		t.Errorf("police station = %q", loaded.Report.PoliceStation)
	}
}
