package trigram

import (
	"iter"
	"log/slog"
	"strings"
)

// DefaultMaxLength is the number of tokens Generate produces at most when no
// WithMaxLength option is given.
const DefaultMaxLength = 50

// generateOptions is used by the generate functions to configure default options.
type generateOptions struct {
	maxLength   int
	temperature float64
	topK        int
}

// GenerateOption is a function that configures generation parameters. It's
// used as a variadic argument in Generate, GenerateFromString and Tokens.
type GenerateOption func(*generateOptions)

// WithMaxLength sets the maximum number of tokens to generate. Zero or a
// negative value produces an empty result.
func WithMaxLength(n int) GenerateOption {
	return func(o *generateOptions) { o.maxLength = n }
}

// WithTemperature adjusts the randomness of the token selection.
// A value of 1.0 samples proportionally to the observed counts.
// Values > 1.0 flatten the distribution, values < 1.0 sharpen it.
// A value of 0 or less always chooses the most frequent token.
func WithTemperature(t float64) GenerateOption {
	return func(o *generateOptions) { o.temperature = t }
}

// WithTopK restricts the selection pool to the k most frequent candidates
// at each step. A value of 0 disables Top-K sampling.
func WithTopK(k int) GenerateOption {
	return func(o *generateOptions) { o.topK = k }
}

func newGenerateOptions(opts []GenerateOption) *generateOptions {
	options := &generateOptions{
		maxLength:   DefaultMaxLength,
		temperature: 1.0,
		topK:        0,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// SampleNext draws one continuation of ctx from P(next | ctx). It returns
// false if ctx was never observed. The model is not modified.
func (m *Model) SampleNext(ctx Context) (string, bool) {
	choices, _ := m.table.Candidates(ctx)
	return chooseNextToken(choices, m.sampler, newGenerateOptions(nil))
}

// Generate samples a new sequence starting from two start markers and returns
// its tokens joined by single spaces. Generation stops when the end marker is
// drawn (it is not included), when the current context has no continuation,
// or after the maximum length. An untrained model yields "".
func (m *Model) Generate(opts ...GenerateOption) string {
	var tokens []string
	for token := range m.Tokens(opts...) {
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, " ")
}

// Tokens is like Generate but yields the tokens one at a time as they are
// sampled. Stopping the iteration early stops generation.
func (m *Model) Tokens(opts ...GenerateOption) iter.Seq[string] {
	options := newGenerateOptions(opts)
	return func(yield func(string) bool) {
		m.walk(startContext, options.maxLength, options, yield)
	}
}

// GenerateFromString continues generation from seed. The seed is tokenized
// like training text and every token is mapped through the vocabulary, so
// unseen words become UnknownToken. The seed tokens start the output and
// count toward the maximum length. An empty seed behaves like Generate.
func (m *Model) GenerateFromString(seed string, opts ...GenerateOption) string {
	options := newGenerateOptions(opts)
	if !m.fitted || options.maxLength <= 0 {
		return ""
	}

	var seedTokens []string
	for _, sentence := range m.tokenizer.Sentences(seed) {
		for _, token := range sentence {
			seedTokens = append(seedTokens, m.vocab.Normalize(token))
		}
	}
	if len(seedTokens) > options.maxLength {
		seedTokens = seedTokens[:options.maxLength]
	}

	ctx := startContext
	for _, token := range seedTokens {
		ctx = ctx.Shift(token)
	}

	tokens := seedTokens
	m.walk(ctx, options.maxLength-len(seedTokens), options, func(token string) bool {
		tokens = append(tokens, token)
		return true
	})
	return strings.Join(tokens, " ")
}

// walk contains the main loop for generating a sequence. It yields at most
// limit tokens sampled from ctx onwards.
func (m *Model) walk(ctx Context, limit int, options *generateOptions, yield func(string) bool) {
	if !m.fitted || m.table.Len() == 0 {
		return
	}

	for generated := 0; generated < limit; generated++ {
		choices, _ := m.table.Candidates(ctx)
		next, ok := chooseNextToken(choices, m.sampler, options)
		if !ok { // Dead end in chain
			m.logger.Debug("Generation terminated due to dead-end",
				slog.String("last_context", ctx.String()),
				slog.Int("generated_length", generated),
			)
			return
		}

		if next == EndToken {
			m.logger.Debug("Generation terminated by end token",
				slog.Int("generated_length", generated),
			)
			return
		}

		if !yield(next) {
			return
		}
		ctx = ctx.Shift(next)
	}

	m.logger.Debug("Generation terminated by reaching maxLength",
		slog.Int("max_length", limit),
	)
}
