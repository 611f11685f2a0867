package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halvard/tfengine"
	"github.com/halvard/tfengine/internal/config"
	"github.com/halvard/tfengine/requestqueue"
)

// appState is the shared, lazily-built state every subcommand operates on:
// the loaded config, an engine populated from --documents, and a request
// queue wrapping it.
type appState struct {
	cfg    config.Config
	engine *tfengine.Engine
	queue  *requestqueue.RequestQueue
}

var (
	flagConfigPath    string
	flagDocumentsPath string
	flagStopWords     string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tfengine",
		Short: "In-memory TF-IDF search engine",
	}

	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flagDocumentsPath, "documents", "", "path to a documents file to ingest at startup")
	root.PersistentFlags().StringVar(&flagStopWords, "stop-words", "", "whitespace-separated stop words, added to those from config")

	root.AddCommand(
		newQueryCmd(),
		newMatchCmd(),
		newRemoveCmd(),
		newDedupCmd(),
		newStatsCmd(),
	)
	return root
}

// loadState loads config, builds a logger, constructs an engine, and
// ingests --documents if given.
func loadState() (*appState, error) {
	cfg, err := config.Load(flagConfigPath, nil)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	stopWords := cfg.Engine.StopWords
	if cfg.Engine.StopWordsFile != "" {
		data, err := os.ReadFile(cfg.Engine.StopWordsFile)
		if err != nil {
			return nil, fmt.Errorf("read stop words file: %w", err)
		}
		stopWords = append(stopWords, strings.Fields(string(data))...)
	}
	if flagStopWords != "" {
		stopWords = append(stopWords, strings.Fields(flagStopWords)...)
	}

	engine, err := tfengine.NewEngineFromWords(stopWords,
		tfengine.WithShardCount(cfg.Engine.ShardCount),
		tfengine.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	if flagDocumentsPath != "" {
		if err := ingestFile(engine, flagDocumentsPath); err != nil {
			return nil, err
		}
	}

	queue := requestqueue.NewRequestQueue(engine, cfg.RequestQueue.WindowSize)

	return &appState{cfg: cfg, engine: engine, queue: queue}, nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
