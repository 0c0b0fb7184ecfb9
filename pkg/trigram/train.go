package trigram

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Fit trains the model on text, replacing any previous training. Empty or
// whitespace-only text, or text without a single word, leaves the model in
// the same state as a freshly constructed one. Fit never fails.
func (m *Model) Fit(text string) {
	m.reset()

	if strings.TrimSpace(text) == "" {
		m.logger.Debug("Training skipped, empty corpus")
		return
	}

	sentences := m.tokenizer.Sentences(text)
	if len(sentences) == 0 {
		m.logger.Debug("Training skipped, no sentences found")
		return
	}

	m.vocab = buildVocabulary(sentences, m.minFreq)

	var padded []string
	var trigrams int
	for _, sentence := range sentences {
		padded = padSentence(padded[:0], sentence, m.vocab)
		for i := 0; i+2 < len(padded); i++ {
			m.table.Add(Context{First: padded[i], Second: padded[i+1]}, padded[i+2])
			trigrams++
		}
	}
	m.fitted = trigrams > 0

	m.logger.Info("Training completed",
		slog.Int("sentences_processed", len(sentences)),
		slog.Int("min_frequency", m.minFreq),
		slog.Int("vocab_size", len(m.vocab)),
		slog.Int("contexts", m.table.Len()),
		slog.Int("trigrams", trigrams),
	)
}

// FitReader reads all of r and trains on it with Fit. The only error it
// returns is a read error, in which case the model is left untouched.
func (m *Model) FitReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read corpus: %w", err)
	}
	m.Fit(string(data))
	return nil
}

// padSentence appends <s> <s> sentence... </s> to buf, mapping every token
// through vocab.
func padSentence(buf []string, sentence []string, vocab Vocabulary) []string {
	buf = append(buf, StartToken, StartToken)
	for _, token := range sentence {
		buf = append(buf, vocab.Normalize(token))
	}
	return append(buf, EndToken)
}
