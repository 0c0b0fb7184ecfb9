package trigram

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const scenarioCorpus = "The cat sat. The cat ran."

// setupTestModel creates a model with a seeded sampler and trains it on text.
func setupTestModel(t *testing.T, text string, opts ...Option) *Model {
	t.Helper()
	opts = append([]Option{WithSampler(NewRandSampler(1))}, opts...)
	m := New(opts...)
	m.Fit(text)
	return m
}

// assertTotalsConsistent checks that every row sums to its context total.
func assertTotalsConsistent(t *testing.T, m *Model) {
	t.Helper()
	for _, ctx := range m.Contexts() {
		candidates, total := m.Candidates(ctx)
		var sum int
		for _, c := range candidates {
			sum += c.Count
		}
		if sum != total || total != m.ContextTotal(ctx) {
			t.Errorf("context %q: candidate sum %d, total %d, ContextTotal %d", ctx, sum, total, m.ContextTotal(ctx))
		}
	}
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
