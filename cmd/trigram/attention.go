package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/mat"

	"github.com/CTAG07/trigram/pkg/attention"
)

type attentionOutput struct {
	Q       [][]float64 `json:"q"`
	K       [][]float64 `json:"k"`
	V       [][]float64 `json:"v"`
	Mask    [][]bool    `json:"mask"`
	Weights [][]float64 `json:"weights"`
	Output  [][]float64 `json:"output"`
}

func attentionCmd() *cli.Command {
	return &cli.Command{
		Name:  "attention",
		Usage: "run scaled dot-product attention on random toy matrices",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "queries", Usage: "number of queries", Value: 2},
			&cli.IntFlag{Name: "keys", Usage: "number of keys and values", Value: 3},
			&cli.IntFlag{Name: "depth", Usage: "query/key depth", Value: 4},
			&cli.IntFlag{Name: "value-depth", Usage: "value depth", Value: 5},
			&cli.Uint64Flag{Name: "seed", Usage: "random seed", Value: 42},
			&cli.BoolFlag{Name: "json", Usage: "print JSON instead of text"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, n := cmd.Int("queries"), cmd.Int("keys")
			d, e := cmd.Int("depth"), cmd.Int("value-depth")
			if m < 1 || n < 1 || d < 1 || e < 1 {
				return fmt.Errorf("all dimensions must be positive, got queries=%d keys=%d depth=%d value-depth=%d", m, n, d, e)
			}

			seed := cmd.Uint64("seed")
			rng := rand.New(rand.NewPCG(seed, seed))
			q, k, v := randomDense(rng, m, d), randomDense(rng, n, d), randomDense(rng, n, e)

			// Hide the last key from the last query.
			mask := make(attention.Mask, m)
			for i := range mask {
				mask[i] = make([]bool, n)
			}
			mask[m-1][n-1] = true

			out, weights, err := attention.ScaledDotProduct(q, k, v, mask)
			if err != nil {
				return err
			}

			w := outWriter(cmd)
			if cmd.Bool("json") {
				encoder := json.NewEncoder(w)
				encoder.SetIndent("", "  ")
				return encoder.Encode(attentionOutput{
					Q:       denseRows(q),
					K:       denseRows(k),
					V:       denseRows(v),
					Mask:    mask,
					Weights: denseRows(weights),
					Output:  denseRows(out),
				})
			}

			printMatrix(w, "Q", q)
			printMatrix(w, "K", k)
			printMatrix(w, "V", v)
			_, _ = fmt.Fprintln(w, "Mask:")
			for _, row := range mask {
				_, _ = fmt.Fprintf(w, "  %v\n", row)
			}
			printMatrix(w, "Attention weights", weights)
			printMatrix(w, "Output", out)
			return nil
		},
	}
}

func randomDense(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return mat.NewDense(r, c, data)
}

func denseRows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return rows
}

func printMatrix(w io.Writer, name string, m mat.Matrix) {
	_, _ = fmt.Fprintf(w, "%s:\n%.4f\n\n", name, mat.Formatted(m, mat.Prefix(""), mat.Squeeze()))
}
