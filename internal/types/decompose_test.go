package types

import "testing"

func TestDecomposeSubAndEq(t *testing.T) {
	alts, err := Decompose(Sub{T1: NewUnifVar("v"), T2: &ABase{Base: BInt}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts) != 1 || len(alts[0].Simples) != 1 || alts[0].Simples[0].Rel != RelSub {
		t.Fatalf("unexpected decomposition: %+v", alts)
	}

	alts, err = Decompose(Eq{T1: NewUnifVar("v"), T2: &ABase{Base: BInt}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts) != 1 || alts[0].Simples[0].Rel != RelEq {
		t.Fatalf("unexpected decomposition: %+v", alts)
	}
}

func TestDecomposeAndIsCartesianProduct(t *testing.T) {
	c := And{Cs: []Constraint{
		Or{Cs: []Constraint{Eq{T1: NewUnifVar("v"), T2: &ABase{Base: BInt}}, Eq{T1: NewUnifVar("v"), T2: &ABase{Base: BNat}}}},
		Sub{T1: NewUnifVar("w"), T2: &ABase{Base: BReal}},
	}}
	alts, err := Decompose(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts) != 2 {
		t.Fatalf("expected 2 alternatives from the Cartesian product, got %d", len(alts))
	}
	for _, alt := range alts {
		if len(alt.Simples) != 2 {
			t.Errorf("expected each alternative to carry both simples, got %+v", alt.Simples)
		}
	}
}

func TestDecomposeOrPreservesFirstErrorOnTotalFailure(t *testing.T) {
	// Both children fail qualifier decomposition; the first child's
	// error must be the one returned.
	c := Or{Cs: []Constraint{
		Qual{Q: QNum, T: &ABase{Base: BBool}},
		Qual{Q: QNum, T: &ABase{Base: BUnit}},
	}}
	_, err := Decompose(c)
	if err == nil {
		t.Fatal("expected an error when every Or branch fails")
	}
	se, ok := err.(*SolveError)
	if !ok || se.Base != BBool {
		t.Errorf("expected the first branch's error (Bool), got %v", err)
	}
}

func TestDecomposeOrDropsFailingBranches(t *testing.T) {
	c := Or{Cs: []Constraint{
		Qual{Q: QNum, T: &ABase{Base: BBool}},
		Eq{T1: NewUnifVar("v"), T2: &ABase{Base: BInt}},
	}}
	alts, err := Decompose(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts) != 1 {
		t.Fatalf("expected the failing branch to be dropped, got %d alternatives", len(alts))
	}
}

func TestDecomposeAllInstantiatesSkolem(t *testing.T) {
	c := All{Vars: []string{"a"}, Body: Sub{T1: NewUnifVar("a"), T2: &ABase{Base: BInt}}}
	alts, err := Decompose(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts) != 1 || len(alts[0].Simples) != 1 {
		t.Fatalf("unexpected decomposition: %+v", alts)
	}
	v, ok := alts[0].Simples[0].T1.(*AVar)
	if !ok || v.Kind != Skolem {
		t.Errorf("expected T1 to be a skolem after instantiation, got %v", alts[0].Simples[0].T1)
	}
}

func TestDecomposeQualSkolemFails(t *testing.T) {
	c := All{Vars: []string{"a"}, Body: Qual{Q: QNum, T: NewUnifVar("a")}}
	_, err := Decompose(c)
	if err == nil {
		t.Fatal("expected qualifying a skolem to fail")
	}
	se := err.(*SolveError)
	if se.Kind != ErrQualSkolem {
		t.Errorf("expected ErrQualSkolem, got %v", se.Kind)
	}
}

func TestDecomposeQualOnBase(t *testing.T) {
	alts, err := Decompose(Qual{Q: QNum, T: &ABase{Base: BInt}})
	if err != nil {
		t.Fatalf("Int should satisfy num, got %v", err)
	}
	if len(alts[0].Sorts) != 0 {
		t.Errorf("expected an empty sort map for a satisfied base qualifier, got %+v", alts[0].Sorts)
	}

	_, err = Decompose(Qual{Q: QNum, T: &ABase{Base: BBool}})
	if err == nil {
		t.Fatal("Bool should not satisfy num")
	}
	if err.(*SolveError).Kind != ErrUnqualBase {
		t.Errorf("expected ErrUnqualBase, got %v", err)
	}
}

func TestDecomposeQualOnVariable(t *testing.T) {
	alts, err := Decompose(Qual{Q: QNum, T: NewUnifVar("v")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := alts[0].Sorts["v"]
	if !ok || !s.Has(QNum) {
		t.Errorf("expected v's sort to record num, got %+v", alts[0].Sorts)
	}
}

func TestDecomposeQualOnContainer(t *testing.T) {
	// list(Bool) is finite because Bool is; list(Int) is not, since Int is not finite.
	alts, err := Decompose(Qual{Q: QFinite, T: ListOf(&ABase{Base: BBool})})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts[0].Sorts) != 0 {
		t.Errorf("expected no residual sort obligations, got %+v", alts[0].Sorts)
	}

	_, err = Decompose(Qual{Q: QFinite, T: ListOf(&ABase{Base: BInt})})
	if err == nil {
		t.Fatal("expected list(Int) to fail the finite qualifier (Int is not finite)")
	}
}

func TestDecomposeQualOnSynonymFails(t *testing.T) {
	_, err := Decompose(Qual{Q: QNum, T: &TyDef{Name: "Foo"}})
	if err == nil || err.(*SolveError).Kind != ErrUnqual {
		t.Fatalf("expected ErrUnqual for a synonym in qualifier position, got %v", err)
	}
}

func TestDecomposeQualOnArrowFails(t *testing.T) {
	_, err := Decompose(Qual{Q: QContainer, T: Arrow(&ABase{Base: BInt}, &ABase{Base: BInt})})
	if err == nil || err.(*SolveError).Kind != ErrUnqual {
		t.Fatalf("expected arrow to never satisfy a data qualifier, got %v", err)
	}
}

func TestDecomposeTrue(t *testing.T) {
	alts, err := Decompose(True{})
	if err != nil || len(alts) != 1 || len(alts[0].Simples) != 0 {
		t.Fatalf("unexpected decomposition of True: %+v, %v", alts, err)
	}
}
