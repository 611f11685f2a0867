// Package config loads tfengine's runtime configuration: engine tuning
// knobs, the stop-word source, and logging options.
package config

import "fmt"

// Config is the full runtime configuration for the tfengine CLI.
type Config struct {
	// Engine holds engine-construction settings.
	Engine EngineConfig `koanf:"engine"`

	// Log holds logging settings.
	Log LogConfig `koanf:"log"`

	// RequestQueue holds the sliding-window request counter settings.
	RequestQueue RequestQueueConfig `koanf:"request_queue"`
}

// EngineConfig configures the engine itself.
type EngineConfig struct {
	// ShardCount is the accumulator bucket count used by the parallel
	// query path. 0 means use the engine's built-in default.
	ShardCount int `koanf:"shard_count"`

	// StopWords is an inline list of stop words.
	StopWords []string `koanf:"stop_words"`

	// StopWordsFile, if set, is read and whitespace-split into additional
	// stop words on top of StopWords.
	StopWordsFile string `koanf:"stop_words_file"`
}

// LogConfig configures the slog handler used by the CLI and the engine.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is one of text or json.
	Format string `koanf:"format"`
}

// RequestQueueConfig configures requestqueue.RequestQueue.
type RequestQueueConfig struct {
	// WindowSize is the number of trailing ticks tracked. 0 means use
	// requestqueue.DefaultWindowSize.
	WindowSize int `koanf:"window_size"`
}

// Default returns the configuration used when no file or override is
// supplied.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			ShardCount: 500,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		RequestQueue: RequestQueueConfig{
			WindowSize: 1440,
		},
	}
}

// Validate checks the configuration for internally inconsistent values.
func (c Config) Validate() error {
	if c.Engine.ShardCount < 0 {
		return fmt.Errorf("engine.shard_count must not be negative, got %d", c.Engine.ShardCount)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug/info/warn/error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be one of text/json, got %q", c.Log.Format)
	}
	if c.RequestQueue.WindowSize < 0 {
		return fmt.Errorf("request_queue.window_size must not be negative, got %d", c.RequestQueue.WindowSize)
	}
	return nil
}
