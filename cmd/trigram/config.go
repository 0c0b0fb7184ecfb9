package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/natefinch/atomic"
	"github.com/urfave/cli/v3"

	"github.com/CTAG07/trigram/pkg/trigram"
)

// ModelConfig holds the settings used to train a model.
type ModelConfig struct {
	CorpusPath string `json:"corpus_path"`
	MinFreq    int    `json:"min_freq"`
}

// GenerateConfig holds the sampling settings.
type GenerateConfig struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"top_k"`
	// Seed of 0 means the process-wide random generator.
	Seed  uint64 `json:"seed"`
	Count int    `json:"count"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	LogLevel string          `json:"log_level"`
	Model    *ModelConfig    `json:"model_config"`
	Generate *GenerateConfig `json:"generate_config"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Model: &ModelConfig{
			CorpusPath: "./data/example_corpus.txt",
			MinFreq:    1,
		},
		Generate: &GenerateConfig{
			MaxLength:   trigram.DefaultMaxLength,
			Temperature: 1.0,
			TopK:        0,
			Seed:        0,
			Count:       1,
		},
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The defaults are still usable without a file on disk.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Model == nil {
		config.Model = DefaultConfig().Model
	}
	if config.Generate == nil {
		config.Generate = DefaultConfig().Generate
	}

	return config, nil
}

// applyFlags overrides config values with the flags explicitly set on the
// command line.
func applyFlags(cmd *cli.Command, cfg *Config) {
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("corpus") {
		cfg.Model.CorpusPath = cmd.String("corpus")
	}
	if cmd.IsSet("min-freq") {
		cfg.Model.MinFreq = cmd.Int("min-freq")
	}
	if cmd.IsSet("max-length") {
		cfg.Generate.MaxLength = cmd.Int("max-length")
	}
	if cmd.IsSet("temperature") {
		cfg.Generate.Temperature = cmd.Float("temperature")
	}
	if cmd.IsSet("top-k") {
		cfg.Generate.TopK = cmd.Int("top-k")
	}
	if cmd.IsSet("seed") {
		cfg.Generate.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("count") {
		cfg.Generate.Count = cmd.Int("count")
	}
}

// newLogger builds the application logger. Unknown levels fall back to info.
func newLogger(cmd *cli.Command, level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(errWriter(cmd), &slog.HandlerOptions{Level: logLevel}))
}
