package trigram

import "sort"

// Vocabulary is the set of tokens a model knows about. It always contains the
// three reserved markers.
type Vocabulary map[string]struct{}

// buildVocabulary counts every token across all sentences of one training
// call and keeps those seen at least minFreq times.
func buildVocabulary(sentences [][]string, minFreq int) Vocabulary {
	freq := make(map[string]int)
	for _, sentence := range sentences {
		for _, token := range sentence {
			freq[token]++
		}
	}

	vocab := Vocabulary{
		StartToken:   {},
		EndToken:     {},
		UnknownToken: {},
	}
	for token, count := range freq {
		if count >= minFreq {
			vocab[token] = struct{}{}
		}
	}
	return vocab
}

// Contains reports whether token is part of the vocabulary.
func (v Vocabulary) Contains(token string) bool {
	_, ok := v[token]
	return ok
}

// Normalize maps token to itself if it is in the vocabulary, else to
// UnknownToken.
func (v Vocabulary) Normalize(token string) string {
	if v.Contains(token) {
		return token
	}
	return UnknownToken
}

// Tokens returns the vocabulary as a sorted slice.
func (v Vocabulary) Tokens() []string {
	tokens := make([]string, 0, len(v))
	for token := range v {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
