package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Engine.ShardCount != 500 {
		t.Errorf("Engine.ShardCount = %d, want 500", cfg.Engine.ShardCount)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if cfg.RequestQueue.WindowSize != 1440 {
		t.Errorf("RequestQueue.WindowSize = %d, want 1440", cfg.RequestQueue.WindowSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestValidate_NegativeShardCount(t *testing.T) {
	cfg := Default()
	cfg.Engine.ShardCount = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a negative shard count")
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an unknown log level")
	}
}

func TestValidate_BadLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an unknown log format")
	}
}

func TestValidate_NegativeWindowSize(t *testing.T) {
	cfg := Default()
	cfg.RequestQueue.WindowSize = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a negative window size")
	}
}
