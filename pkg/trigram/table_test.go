package trigram

import (
	"reflect"
	"testing"
)

func TestTableAddAndLookup(t *testing.T) {
	table := NewTable()
	ctx := Context{First: "a", Second: "b"}

	table.Add(ctx, "c")
	table.Add(ctx, "d")
	table.Add(ctx, "c")

	candidates, total := table.Candidates(ctx)
	expected := []Candidate{{Token: "c", Count: 2}, {Token: "d", Count: 1}}
	if !reflect.DeepEqual(candidates, expected) {
		t.Errorf("expected candidates %+v, got %+v", expected, candidates)
	}
	if total != 3 || table.Total(ctx) != 3 {
		t.Errorf("expected total 3, got %d / %d", total, table.Total(ctx))
	}
	if got := table.Count(ctx, "c"); got != 2 {
		t.Errorf("expected count 2 for 'c', got %d", got)
	}
	if table.Len() != 1 || table.Links() != 2 {
		t.Errorf("expected 1 context and 2 links, got %d and %d", table.Len(), table.Links())
	}

	// Returned candidates are a copy.
	candidates[0].Count = 100
	if got := table.Count(ctx, "c"); got != 2 {
		t.Errorf("modifying returned candidates changed the table: count %d", got)
	}
}

func TestTableUnknownLookupDoesNotCreateRow(t *testing.T) {
	table := NewTable()
	unseen := Context{First: "x", Second: "y"}

	candidates, total := table.Candidates(unseen)
	if candidates != nil || total != 0 {
		t.Errorf("expected nil, 0 for an unseen context, got %+v, %d", candidates, total)
	}
	if table.Count(unseen, "z") != 0 || table.Total(unseen) != 0 {
		t.Error("expected zero counts for an unseen context")
	}
	if table.Len() != 0 {
		t.Errorf("lookups created %d rows", table.Len())
	}
}

func TestTablePrune(t *testing.T) {
	table := NewTable()
	ab := Context{First: "a", Second: "b"}
	bc := Context{First: "b", Second: "c"}
	table.Add(ab, "c")
	table.Add(ab, "c")
	table.Add(ab, "d")
	table.Add(bc, "e")

	if removed := table.prune(1); removed != 2 {
		t.Errorf("expected 2 removed links, got %d", removed)
	}
	if table.Len() != 1 {
		t.Errorf("expected the emptied context to be removed, %d contexts left", table.Len())
	}
	if table.Total(ab) != 2 || table.Count(ab, "d") != 0 {
		t.Errorf("unexpected row after prune: total %d, count(d) %d", table.Total(ab), table.Count(ab, "d"))
	}
}
