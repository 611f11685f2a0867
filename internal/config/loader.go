package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const delimiter = "."

// Load builds the configuration by layering, lowest priority first:
// built-in defaults, an optional YAML file, then programmatic overrides.
// An empty configPath skips the file layer entirely (it is not an error
// for the file to be absent when configPath is "").
func Load(configPath string, overrides map[string]interface{}) (Config, error) {
	k := koanf.New(delimiter)

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"engine.shard_count":        defaults.Engine.ShardCount,
		"log.level":                 defaults.Log.Level,
		"log.format":                defaults.Log.Format,
		"request_queue.window_size": defaults.RequestQueue.WindowSize,
	}, delimiter), nil); err != nil {
		return Config{}, fmt.Errorf("load config defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", configPath, err)
		}
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, delimiter), nil); err != nil {
			return Config{}, fmt.Errorf("apply config overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
