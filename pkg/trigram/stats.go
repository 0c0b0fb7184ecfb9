package trigram

import "log/slog"

// ModelStats holds aggregated statistics for a trained model.
type ModelStats struct {
	VocabSize      int // The number of tokens in the vocabulary, reserved markers included
	Contexts       int // The number of distinct two-token contexts
	Links          int // The number of unique context->next_token links
	TotalFrequency int // The sum of all link counts; the number of trained transitions
	StartingTokens int // The number of unique tokens that can start a sentence
}

// Stats returns a snapshot of the model's statistics.
func (m *Model) Stats() ModelStats {
	starters, _ := m.table.Candidates(startContext)
	stats := ModelStats{
		VocabSize:      len(m.vocab),
		Contexts:       m.table.Len(),
		Links:          m.table.Links(),
		StartingTokens: len(starters),
	}
	for _, r := range m.table.rows {
		stats.TotalFrequency += r.total
	}
	return stats
}

// Prune removes every trigram observed at most minFreq times and returns how
// many were removed. Context totals are kept consistent with the remaining
// counts. If nothing is left the model becomes untrained.
func (m *Model) Prune(minFreq int) int {
	removed := m.table.prune(minFreq)
	if m.table.Len() == 0 {
		m.fitted = false
	}

	m.logger.Info("Model pruned",
		slog.Int("min_frequency", minFreq),
		slog.Int("trigrams_removed", removed),
		slog.Int("contexts_left", m.table.Len()),
	)
	return removed
}
