// prepare builds the frozen paper catalog from raw conference title
// lists: it keeps benchmark-related titles, classifies them via the
// configured LLM provider, and writes the merged, sorted papers.json.
//
// Usage:
//
//	prepare -paper-list ./paper-list -out data/papers.json
//
// Classification runs only when classifier.api_key is configured
// (config/<ENV>.yaml); -skip-classify forces it off.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/redreamality/benchmark-papers/internal/config"
	logpkg "github.com/redreamality/benchmark-papers/internal/logger"
	"github.com/redreamality/benchmark-papers/internal/transport/openai"
	"github.com/redreamality/benchmark-papers/internal/usecase/prepare"
)

type flags struct {
	paperListDir string
	outPath      string
	skipClassify bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.paperListDir, "paper-list", "paper-list", "directory with <conference>_<year>.txt title lists")
	flag.StringVar(&f.outPath, "out", "data/papers.json", "output catalog path")
	flag.BoolVar(&f.skipClassify, "skip-classify", false, "skip LLM category classification")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := run(ctx, f, cfg, logger); err != nil {
		logger.Fatal("prepare failed", zap.Error(err))
	}
}

func run(ctx context.Context, f flags, cfg config.Config, logger *zap.Logger) error {
	papers, err := prepare.ScanDir(f.paperListDir)
	if err != nil {
		return err
	}
	logger.Info("scanned title lists",
		zap.String("dir", f.paperListDir),
		zap.Int("kept", len(papers)),
	)

	if !f.skipClassify && cfg.Classifier.APIKey != "" {
		classifier := openai.NewClassifier(&openai.Config{
			APIKey:  cfg.Classifier.APIKey,
			BaseURL: cfg.Classifier.BaseURL,
			Model:   cfg.Classifier.Model,
			Logger:  logger,
		})
		if err := prepare.ClassifyAll(ctx, classifier, papers, cfg.Classifier.BatchSize, logger); err != nil {
			// Partial classification is acceptable; the catalog stays usable.
			logger.Warn("classification incomplete", zap.Error(err))
		}
	} else {
		logger.Info("classification skipped")
	}

	papers = prepare.Finalize(papers)

	if err := os.MkdirAll(filepath.Dir(f.outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(papers, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(f.outPath, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	byDomain := make(map[string]int)
	for _, p := range papers {
		byDomain[p.Domain]++
	}
	logger.Info("catalog written",
		zap.String("path", f.outPath),
		zap.Int("papers", len(papers)),
		zap.Any("by_domain", byDomain),
	)
	return nil
}
