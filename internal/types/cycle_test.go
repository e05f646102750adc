package types

import "testing"

func TestEliminateCyclesCollapsesSCC(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{av("v1"), av("v2")}, {av("v2"), av("v1")}})
	condensed, sub, err := EliminateCycles(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(condensed.Nodes()) != 1 {
		t.Fatalf("expected the 2-cycle to condense to 1 node, got %d", len(condensed.Nodes()))
	}
	if sub.Len() != 1 {
		t.Errorf("expected exactly one binding from collapsing the cycle, got %d", sub.Len())
	}
}

func TestEliminateCyclesLeavesDAGUntouched(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{av("v1"), av("v2")}})
	condensed, sub, err := EliminateCycles(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(condensed.Nodes()) != 2 {
		t.Errorf("expected an already-acyclic graph to keep both nodes, got %d", len(condensed.Nodes()))
	}
	if sub.Len() != 0 {
		t.Errorf("expected no bindings for an acyclic graph, got %d", sub.Len())
	}
}

func TestEliminateCyclesRejectsSortViolation(t *testing.T) {
	// v <: Bool <: v forms a cycle that must collapse v and Bool to the
	// same atom; if v is required to satisfy num, that binding is illegal.
	g := NewGraph(nil, [][2]Atom{{av("v"), &ABase{Base: BBool}}, {&ABase{Base: BBool}, av("v")}})
	sorts := SortMap{"v": NewSort(QNum)}
	if _, _, err := EliminateCycles(g, sorts); err == nil {
		t.Error("expected a cycle collapsing to a sort-violating base to fail")
	}
}
