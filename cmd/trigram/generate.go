package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/CTAG07/trigram/pkg/trigram"
)

func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "corpus",
			Usage: "path to the training corpus (plain text)",
		},
		&cli.IntFlag{
			Name:  "min-freq",
			Usage: "minimum token frequency to stay out of <unk>",
			Value: 1,
		},
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "train on a corpus and print generated text",
		Flags: append(corpusFlags(),
			&cli.IntFlag{
				Name:    "max-length",
				Aliases: []string{"n"},
				Usage:   "maximum number of generated tokens",
				Value:   trigram.DefaultMaxLength,
			},
			&cli.FloatFlag{
				Name:    "temperature",
				Aliases: []string{"t"},
				Usage:   "sampling temperature, 0 picks the most frequent token",
				Value:   1.0,
			},
			&cli.IntFlag{
				Name:  "top-k",
				Usage: "sample only from the k most frequent candidates (0 disables)",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "random seed, 0 uses the process-wide generator",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of sequences to generate",
				Value: 1,
			},
			&cli.StringFlag{
				Name:    "prompt",
				Aliases: []string{"p"},
				Usage:   "text to continue",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			model, cfg, err := trainFromConfig(cmd)
			if err != nil {
				return err
			}

			opts := []trigram.GenerateOption{
				trigram.WithMaxLength(cfg.Generate.MaxLength),
				trigram.WithTemperature(cfg.Generate.Temperature),
				trigram.WithTopK(cfg.Generate.TopK),
			}

			w := outWriter(cmd)
			_, _ = fmt.Fprintln(w, "Generated Text:")
			for i := 0; i < max(cfg.Generate.Count, 1); i++ {
				_, _ = fmt.Fprintln(w, model.GenerateFromString(cmd.String("prompt"), opts...))
			}
			return nil
		},
	}
}

// trainFromConfig loads the config, applies flag overrides and trains a model
// on the configured corpus.
func trainFromConfig(cmd *cli.Command) (*trigram.Model, *Config, error) {
	cfg, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, cfg)
	logger := newLogger(cmd, cfg.LogLevel)

	opts := []trigram.Option{
		trigram.WithMinFreq(cfg.Model.MinFreq),
		trigram.WithLogger(logger),
	}
	if cfg.Generate.Seed != 0 {
		opts = append(opts, trigram.WithSampler(trigram.NewRandSampler(cfg.Generate.Seed)))
	}
	model := trigram.New(opts...)

	f, err := os.Open(cfg.Model.CorpusPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	if err = model.FitReader(f); err != nil {
		return nil, nil, err
	}
	if !model.Fitted() {
		logger.Warn("Corpus produced no trigrams", slog.String("corpus", cfg.Model.CorpusPath))
	}
	return model, cfg, nil
}
