package types

import "testing"

func TestSkolemCheckCollapsesSingleSkolemWCC(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{NewSkolem("a"), av("v")}})
	sub, err := SkolemCheck(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := sub.Lookup("v")
	if !ok || got.String() != "%a" {
		t.Errorf("expected v -> %%a, got %v", got)
	}
	if len(g.Nodes()) != 0 {
		t.Errorf("expected the collapsed WCC to be removed from the graph, got %v", g.Nodes())
	}
}

func TestSkolemCheckRejectsTwoSkolems(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{NewSkolem("a"), NewSkolem("b")}})
	if _, err := SkolemCheck(g, SortMap{}); err == nil {
		t.Error("expected two skolems in one component to fail")
	}
}

func TestSkolemCheckRejectsSkolemWithBase(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{NewSkolem("a"), &ABase{Base: BInt}}})
	if _, err := SkolemCheck(g, SortMap{}); err == nil {
		t.Error("expected a skolem mixed with a base type to fail")
	}
}

func TestSkolemCheckRejectsSkolemWithSortedVariable(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{NewSkolem("a"), av("v")}})
	sorts := SortMap{"v": NewSort(QNum)}
	if _, err := SkolemCheck(g, sorts); err == nil {
		t.Error("expected a skolem mixed with a sorted variable to fail")
	}
}

func TestSkolemCheckIgnoresSkolemFreeWCC(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{av("v"), &ABase{Base: BInt}}})
	sub, err := SkolemCheck(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Len() != 0 {
		t.Errorf("expected no bindings for a skolem-free component, got %d", sub.Len())
	}
	if len(g.Nodes()) != 2 {
		t.Error("expected a skolem-free component to be left untouched")
	}
}
