package trigram

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Sampler draws a weighted choice. Choose returns an index i with probability
// weights[i] / sum(weights), or -1 if no weight is positive.
type Sampler interface {
	Choose(weights []float64) int
}

// GlobalSampler draws from the process-wide math/rand/v2 generator.
type GlobalSampler struct{}

// Choose implements Sampler.
func (GlobalSampler) Choose(weights []float64) int {
	return chooseWeighted(weights, rand.Float64)
}

// RandSampler draws from its own generator, so a fixed seed yields a fixed
// sequence of choices.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler returns a RandSampler seeded with seed.
func NewRandSampler(seed uint64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Choose implements Sampler.
func (s *RandSampler) Choose(weights []float64) int {
	return chooseWeighted(weights, s.rng.Float64)
}

func chooseWeighted(weights []float64, float func() float64) int {
	var total float64
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}

	randChoice := float() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		randChoice -= w
		if randChoice < 0 {
			return i
		}
	}
	// Rounding can leave a tiny remainder; it belongs to the last positive weight.
	return last
}

// chooseNextToken applies top-K filtering and temperature to choices and lets
// the sampler pick one. It returns false if there is nothing to choose from.
func chooseNextToken(choices []Candidate, sampler Sampler, options *generateOptions) (string, bool) {
	if len(choices) == 0 {
		return "", false
	}

	// topK filtering; the stable sort keeps first-seen order among ties.
	if options.topK > 0 && options.topK < len(choices) {
		sort.SliceStable(choices, func(i, j int) bool {
			return choices[i].Count > choices[j].Count
		})
		choices = choices[:options.topK]
	}

	if options.temperature <= 0 { // Deterministic
		best := 0
		for i, choice := range choices {
			if choice.Count > choices[best].Count {
				best = i
			}
		}
		return choices[best].Token, true
	}

	weights := make([]float64, len(choices))
	if options.temperature == 1.0 {
		for i, choice := range choices {
			weights[i] = float64(choice.Count)
		}
	} else {
		maxLog := math.Inf(-1)
		for i, choice := range choices {
			lp := math.Log(float64(choice.Count)) / options.temperature
			weights[i] = lp
			if lp > maxLog {
				maxLog = lp
			}
		}
		for i, lp := range weights {
			weights[i] = math.Exp(lp - maxLog)
		}
	}

	i := sampler.Choose(weights)
	if i < 0 {
		return "", false
	}
	return choices[i].Token, true
}
