package trigram

import "sort"

// row holds every observed continuation of one context. Candidates keep the
// order in which they were first seen so sampling with a seeded Sampler is
// reproducible.
type row struct {
	index      map[string]int // token -> position in candidates
	candidates []Candidate
	total      int
}

// Table is the trigram count table: Context -> (next token -> count), plus the
// per-context totals used to normalize counts into probabilities.
//
// Rows are created only by Add. Lookups of a context that was never added
// return empty results and leave the table untouched.
type Table struct {
	rows map[Context]*row
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{rows: make(map[Context]*row)}
}

// Add records one occurrence of next following ctx.
func (t *Table) Add(ctx Context, next string) {
	r, ok := t.rows[ctx]
	if !ok {
		r = &row{index: make(map[string]int)}
		t.rows[ctx] = r
	}

	if i, ok := r.index[next]; ok {
		r.candidates[i].Count++
	} else {
		r.index[next] = len(r.candidates)
		r.candidates = append(r.candidates, Candidate{Token: next, Count: 1})
	}
	r.total++
}

// Candidates returns a copy of the continuations of ctx and the sum of their
// counts. If ctx has never been seen, it returns a nil slice and 0.
func (t *Table) Candidates(ctx Context) ([]Candidate, int) {
	r, ok := t.rows[ctx]
	if !ok {
		return nil, 0
	}
	out := make([]Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out, r.total
}

// Count returns how often next followed ctx.
func (t *Table) Count(ctx Context, next string) int {
	r, ok := t.rows[ctx]
	if !ok {
		return 0
	}
	if i, ok := r.index[next]; ok {
		return r.candidates[i].Count
	}
	return 0
}

// Total returns the number of trigrams recorded for ctx.
func (t *Table) Total(ctx Context) int {
	if r, ok := t.rows[ctx]; ok {
		return r.total
	}
	return 0
}

// Len returns the number of distinct contexts.
func (t *Table) Len() int {
	return len(t.rows)
}

// Links returns the number of distinct (context, next) pairs.
func (t *Table) Links() int {
	var n int
	for _, r := range t.rows {
		n += len(r.candidates)
	}
	return n
}

// Contexts returns every known context, sorted.
func (t *Table) Contexts() []Context {
	out := make([]Context, 0, len(t.rows))
	for ctx := range t.rows {
		out = append(out, ctx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].First != out[j].First {
			return out[i].First < out[j].First
		}
		return out[i].Second < out[j].Second
	})
	return out
}

// Reset removes every row.
func (t *Table) Reset() {
	clear(t.rows)
}

// prune drops every candidate whose count is <= minFreq, rebuilding totals and
// removing rows left empty. It returns the number of removed candidates.
func (t *Table) prune(minFreq int) int {
	var removed int
	for ctx, r := range t.rows {
		kept := r.candidates[:0]
		r.total = 0
		clear(r.index)
		for _, c := range r.candidates {
			if c.Count <= minFreq {
				removed++
				continue
			}
			r.index[c.Token] = len(kept)
			kept = append(kept, c)
			r.total += c.Count
		}
		r.candidates = kept
		if len(kept) == 0 {
			delete(t.rows, ctx)
		}
	}
	return removed
}
