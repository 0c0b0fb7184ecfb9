package trigram

import (
	"math"
	"strings"
	"testing"
)

func TestChooseWeightedBias(t *testing.T) {
	const trials = 10000
	sampler := NewRandSampler(42)

	var hits int
	for i := 0; i < trials; i++ {
		if sampler.Choose([]float64{9, 1}) == 0 {
			hits++
		}
	}

	if ratio := float64(hits) / trials; math.Abs(ratio-0.9) > 0.05 {
		t.Errorf("expected index 0 about 90%% of the time, got %.3f", ratio)
	}
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	sampler := NewRandSampler(1)

	if got := sampler.Choose(nil); got != -1 {
		t.Errorf("expected -1 for no weights, got %d", got)
	}
	if got := sampler.Choose([]float64{0, 0}); got != -1 {
		t.Errorf("expected -1 for all-zero weights, got %d", got)
	}
	for i := 0; i < 100; i++ {
		if got := sampler.Choose([]float64{0, 3, 0}); got != 1 {
			t.Fatalf("expected the only positive weight to be chosen, got %d", got)
		}
	}
	if got := (GlobalSampler{}).Choose([]float64{0, 0, 5}); got != 2 {
		t.Errorf("GlobalSampler: expected 2, got %d", got)
	}
}

func TestSampleNextBias(t *testing.T) {
	const trials = 10000
	corpus := strings.Repeat("a. ", 9) + "b."
	m := setupTestModel(t, corpus)

	var hits int
	for i := 0; i < trials; i++ {
		token, ok := m.SampleNext(startContext)
		if !ok {
			t.Fatal("expected a candidate for the start context")
		}
		if token == "a" {
			hits++
		}
	}

	if ratio := float64(hits) / trials; math.Abs(ratio-0.9) > 0.05 {
		t.Errorf("expected 'a' about 90%% of the time, got %.3f", ratio)
	}

	if _, ok := m.SampleNext(Context{First: "never", Second: "seen"}); ok {
		t.Error("expected no candidate for an unseen context")
	}
	if m.table.Len() != 3 {
		t.Errorf("sampling modified the table: %d contexts", m.table.Len())
	}
}

func TestChooseNextToken(t *testing.T) {
	choices := func() []Candidate {
		return []Candidate{{Token: "rare", Count: 1}, {Token: "common", Count: 5}, {Token: "mid", Count: 3}}
	}
	sampler := NewRandSampler(3)

	t.Run("Deterministic at zero temperature", func(t *testing.T) {
		got, ok := chooseNextToken(choices(), sampler, &generateOptions{temperature: 0})
		if !ok || got != "common" {
			t.Errorf("expected 'common', got %q (%v)", got, ok)
		}
	})

	t.Run("TopK of one", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			got, _ := chooseNextToken(choices(), sampler, &generateOptions{temperature: 1.0, topK: 1})
			if got != "common" {
				t.Fatalf("expected 'common', got %q", got)
			}
		}
	})

	t.Run("TopK excludes the rarest", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			got, _ := chooseNextToken(choices(), sampler, &generateOptions{temperature: 0.5, topK: 2})
			if got == "rare" {
				t.Fatal("token outside the top-k was chosen")
			}
		}
	})

	t.Run("No choices", func(t *testing.T) {
		if _, ok := chooseNextToken(nil, sampler, &generateOptions{temperature: 1.0}); ok {
			t.Error("expected no token from an empty candidate list")
		}
	})
}
