package trigram

import (
	"io"
	"log/slog"
)

// Model is a trigram language model. Create one with New, train it with Fit
// and sample from it with Generate.
type Model struct {
	minFreq   int
	tokenizer Tokenizer
	sampler   Sampler
	logger    *slog.Logger

	vocab  Vocabulary
	table  *Table
	fitted bool
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithMinFreq sets the minimum number of occurrences a token needs in a
// training corpus to stay in the vocabulary. Rarer tokens are counted as
// UnknownToken. Values below 1 are treated as 1.
// Default: 1
func WithMinFreq(n int) Option {
	return func(m *Model) { m.minFreq = max(n, 1) }
}

// WithTokenizer replaces the DefaultTokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(m *Model) {
		if t != nil {
			m.tokenizer = t
		}
	}
}

// WithSampler sets the random source used during generation.
// Default: GlobalSampler
func WithSampler(s Sampler) Option {
	return func(m *Model) {
		if s != nil {
			m.sampler = s
		}
	}
}

// WithLogger sets the logger. See SetLogger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.SetLogger(logger) }
}

// New returns an untrained model. The minimum frequency is fixed for the
// lifetime of the model.
func New(opts ...Option) *Model {
	m := &Model{
		minFreq:   1,
		tokenizer: NewDefaultTokenizer(),
		sampler:   GlobalSampler{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		vocab:     Vocabulary{},
		table:     NewTable(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetLogger sets the logger for the Model. By default, all logs are discarded.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// MinFreq returns the minimum token frequency the model was built with.
func (m *Model) MinFreq() int {
	return m.minFreq
}

// Fitted reports whether the last call to Fit recorded at least one trigram.
func (m *Model) Fitted() bool {
	return m.fitted
}

// Vocabulary returns the sorted vocabulary of the last training call. It is
// empty for an untrained model.
func (m *Model) Vocabulary() []string {
	return m.vocab.Tokens()
}

// InVocabulary reports whether token is part of the current vocabulary.
func (m *Model) InVocabulary(token string) bool {
	return m.vocab.Contains(token)
}

// Candidates returns the observed continuations of ctx and their total count.
// It returns nil and 0 for a context that was never observed.
func (m *Model) Candidates(ctx Context) ([]Candidate, int) {
	return m.table.Candidates(ctx)
}

// ContextTotal returns the number of trigrams recorded for ctx.
func (m *Model) ContextTotal(ctx Context) int {
	return m.table.Total(ctx)
}

// Contexts returns every context observed during training, sorted.
func (m *Model) Contexts() []Context {
	return m.table.Contexts()
}

// reset puts the model back into its freshly constructed state.
func (m *Model) reset() {
	m.table.Reset()
	m.vocab = Vocabulary{}
	m.fitted = false
}
