package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
)

type statsOutput struct {
	Corpus         string   `json:"corpus"`
	MinFreq        int      `json:"min_freq"`
	VocabSize      int      `json:"vocab_size"`
	Contexts       int      `json:"contexts"`
	Links          int      `json:"links"`
	TotalFrequency int      `json:"total_frequency"`
	StartingTokens int      `json:"starting_tokens"`
	Vocabulary     []string `json:"vocabulary,omitempty"`
}

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "train on a corpus and print model statistics",
		Flags: append(corpusFlags(),
			&cli.IntFlag{
				Name:  "prune",
				Usage: "drop trigrams seen at most this many times before reporting (0 keeps all)",
			},
			&cli.BoolFlag{
				Name:  "vocab",
				Usage: "include the vocabulary",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print JSON instead of text",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			model, cfg, err := trainFromConfig(cmd)
			if err != nil {
				return err
			}
			if n := cmd.Int("prune"); n > 0 {
				model.Prune(n)
			}

			s := model.Stats()
			out := statsOutput{
				Corpus:         cfg.Model.CorpusPath,
				MinFreq:        model.MinFreq(),
				VocabSize:      s.VocabSize,
				Contexts:       s.Contexts,
				Links:          s.Links,
				TotalFrequency: s.TotalFrequency,
				StartingTokens: s.StartingTokens,
			}
			if cmd.Bool("vocab") {
				out.Vocabulary = model.Vocabulary()
			}

			w := outWriter(cmd)
			if cmd.Bool("json") {
				encoder := json.NewEncoder(w)
				encoder.SetIndent("", "  ")
				return encoder.Encode(out)
			}

			_, _ = fmt.Fprintf(w, "Corpus:          %s\n", out.Corpus)
			_, _ = fmt.Fprintf(w, "Min frequency:   %d\n", out.MinFreq)
			_, _ = fmt.Fprintf(w, "Vocabulary size: %d\n", out.VocabSize)
			_, _ = fmt.Fprintf(w, "Contexts:        %d\n", out.Contexts)
			_, _ = fmt.Fprintf(w, "Links:           %d\n", out.Links)
			_, _ = fmt.Fprintf(w, "Trigrams:        %d\n", out.TotalFrequency)
			_, _ = fmt.Fprintf(w, "Starting tokens: %d\n", out.StartingTokens)
			for _, token := range out.Vocabulary {
				_, _ = fmt.Fprintf(w, "  %s\n", token)
			}
			return nil
		},
	}
}
