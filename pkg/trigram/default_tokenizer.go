package trigram

import (
	"regexp"
	"strings"
)

// Tokenizer turns raw text into sentences of normalized word tokens. This
// allows the model to stay independent of the tokenization strategy.
type Tokenizer interface {
	// Sentences returns the non-empty sentences found in text, in order.
	// Implementations must be pure: the same input always yields the same
	// tokens.
	Sentences(text string) [][]string
}

// DefaultTokenizer is the default implementation of the Tokenizer interface.
// It lowercases the input, splits it on runs of sentence-ending punctuation
// and extracts word-character runs from each segment.
type DefaultTokenizer struct {
	sentenceRegex *regexp.Regexp
	wordRegex     *regexp.Regexp
}

// TokenizerOption is a function that configures a DefaultTokenizer.
type TokenizerOption func(*DefaultTokenizer)

// WithSentenceRegex sets the regex used to split text into sentences.
// Matched delimiters are discarded.
// Default: `[.!?]+`
func WithSentenceRegex(expr string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.sentenceRegex = regexp.MustCompile(expr)
	}
}

// WithWordRegex sets the regex used to extract tokens from a sentence.
// Default: `[\p{L}\p{M}\p{N}_]+`
func WithWordRegex(expr string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.wordRegex = regexp.MustCompile(expr)
	}
}

// NewDefaultTokenizer creates a new tokenizer with default settings, which can
// be overridden by providing one or more TokenizerOption functions.
func NewDefaultTokenizer(opts ...TokenizerOption) *DefaultTokenizer {
	t := &DefaultTokenizer{
		sentenceRegex: regexp.MustCompile(`[.!?]+`),
		// Maximal runs of letters, digits and underscore. \w is ASCII-only in RE2.
		wordRegex: regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Sentences lowercases text, splits it into sentences and tokenizes each one.
// Segments without any token are dropped, so every returned sentence has at
// least one token.
func (t *DefaultTokenizer) Sentences(text string) [][]string {
	text = strings.ToLower(text)

	var sentences [][]string
	for _, segment := range t.sentenceRegex.Split(text, -1) {
		if tokens := t.Tokenize(segment); len(tokens) > 0 {
			sentences = append(sentences, tokens)
		}
	}
	return sentences
}

// Tokenize returns the word tokens of a single sentence, without case folding.
func (t *DefaultTokenizer) Tokenize(sentence string) []string {
	return t.wordRegex.FindAllString(sentence, -1)
}
