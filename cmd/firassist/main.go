package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"firassist/internal/config"
	"firassist/internal/corpus"
	"firassist/internal/domain"
	"firassist/internal/generator"
	"firassist/internal/generator/openai"
	"firassist/internal/logging"
	"firassist/internal/report"
	"firassist/internal/retrieval"
	"firassist/internal/summarizer"
	"firassist/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath  string
		match    string
		topK     int
		minScore float64
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/firassist/config.yaml if not provided)")
	flag.StringVar(&match, "match", "", "Print the sections matching this case description and exit")
	flag.IntVar(&topK, "k", 0, "Number of ranked sections to consider (overrides config)")
	flag.Float64Var(&minScore, "min-score", -1, "Exclusive similarity threshold (overrides config)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if topK != 0 {
		cfg.Retriever.TopK = topK
	}
	if minScore >= 0 {
		cfg.Retriever.MinScore = minScore
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logOut, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logOut.Close()
	logger := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Output: logOut})

	if err := run(cfg, match, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, "firassist:", err)
		logger.Fatal().Err(err).Msg("firassist failed")
	}
}

// run builds the section index and either prints matches for match or starts
// the TUI. Failures are returned for main to log.
func run(cfg *config.AppConfig, match string, stdout io.Writer, logger zerolog.Logger) error {
	entries, err := corpus.LoadFile(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	tok := retrieval.NewTokenizer()
	start := time.Now()
	index, err := retrieval.BuildWithTokenizer(entries, tok)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	logger.Info().
		Str("corpus", cfg.Corpus.Path).
		Int("sections", index.Len()).
		Int("vocabulary", index.VocabularySize()).
		Dur("duration", time.Since(start)).
		Msg("section index built")

	if match != "" {
		if err := printMatches(stdout, index, match, cfg.Retriever); err != nil {
			return fmt.Errorf("match: %w", err)
		}
		return nil
	}

	gen, err := newGenerator(cfg.Generator, logger)
	if err != nil {
		return fmt.Errorf("generator init: %w", err)
	}
	svc := report.NewService(index, gen,
		report.NewRandomNumberer(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		summarizer.NewFrequencySummarizer(tok),
		report.Options{
			TopK:           cfg.Retriever.TopK,
			MinScore:       cfg.Retriever.MinScore,
			BriefSentences: cfg.Report.BriefSentences,
			PoliceStation:  cfg.Report.PoliceStation,
		}, logger)

	m := tui.New(svc, cfg.Report.ExportDir)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func newGenerator(cfg config.GeneratorConfig, logger zerolog.Logger) (domain.Generator, error) {
	switch cfg.Type {
	case "none":
		return generator.NewStatic(), nil
	case "openai", "":
		return openai.NewClient(openai.Config{
			BaseURL:     cfg.BaseURL,
			APIKeyEnv:   cfg.APIKeyEnv,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     time.Duration(cfg.TimeoutSecs) * time.Second,
			MaxRetries:  cfg.MaxRetries,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown generator: %s", cfg.Type)
	}
}

func printMatches(w io.Writer, index *retrieval.Index, text string, cfg config.RetrieverConfig) error {
	matches, err := index.Query(text, cfg.TopK, cfg.MinScore)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(w, "no sections matched")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s\t%.4f\t%s\n", m.SectionID, m.Score, m.Description)
	}
	return nil
}
