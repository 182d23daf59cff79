package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"firassist/internal/domain"
)

// CorpusConfig points at the statute section file.
type CorpusConfig struct {
	Path string `yaml:"path"`
}

// RetrieverConfig tunes section ranking.
type RetrieverConfig struct {
	TopK     int     `yaml:"top_k"`
	MinScore float64 `yaml:"min_score"`
}

// GeneratorConfig selects and configures the text generation service.
type GeneratorConfig struct {
	Type        string  `yaml:"type"`
	BaseURL     string  `yaml:"base_url"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	TimeoutSecs int     `yaml:"timeout_secs"`
	MaxRetries  int     `yaml:"max_retries"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Pretty bool   `yaml:"pretty"`
}

// ReportConfig configures FIR drafting.
type ReportConfig struct {
	ExportDir      string `yaml:"export_dir"`
	BriefSentences int    `yaml:"brief_sentences"`
	PoliceStation  string `yaml:"police_station"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Retriever RetrieverConfig `yaml:"retriever"`
	Generator GeneratorConfig `yaml:"generator"`
	Report    ReportConfig    `yaml:"report"`
	Log       LogConfig       `yaml:"log"`
}

// Validate checks the values a query depends on.
func (c *AppConfig) Validate() error {
	if c.Retriever.TopK < 1 {
		return fmt.Errorf("%w: retriever.top_k must be at least 1", domain.ErrInvalidArgument)
	}
	if math.IsNaN(c.Retriever.MinScore) || c.Retriever.MinScore < 0 || c.Retriever.MinScore > 1 {
		return fmt.Errorf("%w: retriever.min_score must be in [0,1]", domain.ErrInvalidArgument)
	}
	switch c.Generator.Type {
	case "openai", "none":
	default:
		return fmt.Errorf("%w: unknown generator %q", domain.ErrInvalidArgument, c.Generator.Type)
	}
	return nil
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config data and fills in defaults for unset fields.
func Parse(data []byte) (*AppConfig, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/firassist/config.yaml.
// If neither exists, it writes defaults to ~/.config/firassist/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "firassist", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Corpus:    CorpusConfig{Path: "fir_sections.csv"},
		Retriever: RetrieverConfig{TopK: 5, MinScore: 0.1},
		Generator: GeneratorConfig{
			Type:        "openai",
			BaseURL:     "https://api.groq.com/openai/v1",
			APIKeyEnv:   "GROQ_API_KEY",
			Model:       "llama3-70b-8192",
			Temperature: 0.5,
			MaxTokens:   2000,
			TimeoutSecs: 60,
			MaxRetries:  2,
		},
		Report: ReportConfig{ExportDir: ".", BriefSentences: 2},
		Log:    LogConfig{Level: "info", File: "firassist.log"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = def.Corpus.Path
	}
	if cfg.Generator.Type == "" {
		cfg.Generator.Type = def.Generator.Type
	}
	if cfg.Generator.Type == "openai" {
		if cfg.Generator.BaseURL == "" {
			cfg.Generator.BaseURL = def.Generator.BaseURL
		}
		if cfg.Generator.APIKeyEnv == "" {
			cfg.Generator.APIKeyEnv = def.Generator.APIKeyEnv
		}
		if cfg.Generator.Model == "" {
			cfg.Generator.Model = def.Generator.Model
		}
		if cfg.Generator.MaxTokens == 0 {
			cfg.Generator.MaxTokens = def.Generator.MaxTokens
		}
		if cfg.Generator.TimeoutSecs == 0 {
			cfg.Generator.TimeoutSecs = def.Generator.TimeoutSecs
		}
	}
	if cfg.Report.ExportDir == "" {
		cfg.Report.ExportDir = def.Report.ExportDir
	}
	if cfg.Report.BriefSentences == 0 {
		cfg.Report.BriefSentences = def.Report.BriefSentences
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}
