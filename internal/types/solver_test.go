package types

import "testing"

func TestSolveGraphLowerBoundOnly(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{&ABase{Base: BNat}, av("v")}})
	sub, err := SolveGraph(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := sub.Lookup("v")
	if got.String() != "Nat" {
		t.Errorf("expected v -> Nat (its only lower bound), got %v", got)
	}
}

func TestSolveGraphUpperBoundOnly(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{av("v"), &ABase{Base: BInt}}})
	sub, err := SolveGraph(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := sub.Lookup("v")
	if got.String() != "Int" {
		t.Errorf("expected v -> Int (its only upper bound), got %v", got)
	}
}

func TestSolveGraphBothBoundsPicksLowerBound(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{
		{&ABase{Base: BNat}, av("v")},
		{av("v"), &ABase{Base: BReal}},
	})
	sub, err := SolveGraph(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := sub.Lookup("v")
	if got.String() != "Nat" {
		t.Errorf("expected the lower-bound tie-break to pick Nat, got %v", got)
	}
}

func TestSolveGraphInconsistentBoundsFails(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{
		{&ABase{Base: BReal}, av("v")},
		{av("v"), &ABase{Base: BNat}},
	})
	if _, err := SolveGraph(g, SortMap{}); err == nil {
		t.Error("expected Real <: v <: Nat to fail (no consistent base type)")
	}
}

func TestSolveGraphPicksSortBaseWhenNoPressure(t *testing.T) {
	g := NewGraph(nil, nil)
	g.AddNode(av("v"))
	sorts := SortMap{"v": NewSort(QBool)}
	sub, err := SolveGraph(g, sorts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := sub.Lookup("v")
	if got.String() != "Bool" {
		t.Errorf("expected v -> Bool (the only base satisfying bool), got %v", got)
	}
}

func TestSolveGraphArrowVarianceScenario(t *testing.T) {
	// (v1 -> v2) <: (Int -> Nat): contravariant input means v1 has Int as
	// a lower bound, v2 has Nat as an upper bound.
	g := NewGraph(nil, [][2]Atom{
		{&ABase{Base: BInt}, av("v1")},
		{av("v2"), &ABase{Base: BNat}},
	})
	sub, err := SolveGraph(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := sub.Lookup("v1"); got.String() != "Int" {
		t.Errorf("expected v1 -> Int, got %v", got)
	}
	if got, _ := sub.Lookup("v2"); got.String() != "Nat" {
		t.Errorf("expected v2 -> Nat, got %v", got)
	}
}

func TestUnifyResidualWCCsCollapsesVarOnlyComponent(t *testing.T) {
	g := NewGraph(nil, [][2]Atom{{av("v1"), av("v2")}, {av("v2"), av("v1")}})
	sub, err := SolveGraph(g, SortMap{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Len() != 1 {
		t.Errorf("expected exactly one binding collapsing the mutual-subtype pair, got %d", sub.Len())
	}
}
