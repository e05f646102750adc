package types

import "fmt"

// limDirection selects which bound lim_by_sort computes.
type limDirection int

const (
	limLUB limDirection = iota // least upper bound: a lower-bound requirement
	limGLB                     // greatest lower bound: an upper-bound requirement
)

// SolveGraph iteratively assigns base types to the unification
// variables remaining in a (post-skolem-check, post-cycle-elimination)
// DAG, then unifies any residual variable-only weakly-connected
// components — spec.md §4.9.
func SolveGraph(g *Graph, sorts SortMap) (*Substitution, *SolveError) {
	sub := NewSubstitution()
	for {
		v, hasPressure := chooseVariable(g, sorts)
		if v == nil {
			break
		}
		base, err := chooseBaseType(g, sorts, v)
		if err != nil {
			return nil, err
		}
		bindVariableToBase(g, v, base)
		sub = Compose(SingleSubst(v.Name, &ABase{Base: base}), sub)
		_ = hasPressure
	}

	finalSub, err := unifyResidualWCCs(g)
	if err != nil {
		return nil, err
	}
	sub = Compose(finalSub, sub)
	return sub, nil
}

// chooseVariable implements the two-tier preference in spec.md §4.9:
// first a variable with base pressure in either direction, otherwise a
// variable carrying a nontrivial sort. Selection order among equally
// eligible variables is the graph's deterministic insertion order, so
// results (and any resulting error) are reproducible.
func chooseVariable(g *Graph, sorts SortMap) (*AVar, bool) {
	var withSort *AVar
	for _, n := range g.Nodes() {
		v, ok := n.(*AVar)
		if !ok {
			continue
		}
		basePred, _, baseSucc, _ := splitNeighbors(g, v)
		if len(basePred) > 0 || len(baseSucc) > 0 {
			return v, true
		}
		if withSort == nil && len(sorts.Get(v.Name)) > 0 {
			withSort = v
		}
	}
	if withSort != nil {
		return withSort, true
	}
	return nil, false
}

func splitNeighbors(g *Graph, v *AVar) (basePred []BaseAtom, varPred []*AVar, baseSucc []BaseAtom, varSucc []*AVar) {
	for _, p := range g.Pred(v) {
		switch n := p.(type) {
		case *ABase:
			basePred = append(basePred, n.Base)
		case *AVar:
			varPred = append(varPred, n)
		}
	}
	for _, s := range g.Succ(v) {
		switch n := s.(type) {
		case *ABase:
			baseSucc = append(baseSucc, n.Base)
		case *AVar:
			varSucc = append(varSucc, n)
		}
	}
	return
}

// chooseBaseType picks the base type bound for v per the table in
// spec.md §4.9. When both a lower and an upper bound are determined by
// base neighbors, the lower bound wins (the documented "simpler types
// win" tie-break; see SPEC_FULL.md §5).
func chooseBaseType(g *Graph, sorts SortMap, v *AVar) (BaseAtom, *SolveError) {
	basePred, varPred, baseSucc, varSucc := splitNeighbors(g, v)
	s := sorts.Get(v.Name)

	switch {
	case len(basePred) == 0 && len(baseSucc) == 0:
		b, ok := PickSortBase(s)
		if !ok {
			return "", errNoUnifyMsg(fmt.Sprintf("no base type satisfies sort %s for %s", s, v.Name))
		}
		return b, nil

	case len(basePred) == 0:
		return limBySort(limGLB, baseSucc, s, varSucc, sorts)

	case len(baseSucc) == 0:
		return limBySort(limLUB, basePred, s, varPred, sorts)

	default:
		lb, err := limBySort(limLUB, basePred, s, varPred, sorts)
		if err != nil {
			return "", err
		}
		ub, err := limBySort(limGLB, baseSucc, s, varSucc, sorts)
		if err != nil {
			return "", err
		}
		if !LeqBase(lb, ub) {
			return "", errNoUnifyMsg(fmt.Sprintf(
				"%s has inconsistent bounds: lower bound %s is not a subtype of upper bound %s", v.Name, lb, ub))
		}
		return lb, nil
	}
}

// limBySort picks the direction-limit (LUB of predecessors, or GLB of
// successors) of ts within sort s, adjusting along the lattice if the
// raw limit doesn't itself satisfy s, and checking it remains
// consistent with every variable neighbor's own recorded sort
// (spec.md §4.9's X set).
func limBySort(dir limDirection, ts []BaseAtom, s Sort, neighbors []*AVar, sorts SortMap) (BaseAtom, *SolveError) {
	if len(ts) == 0 {
		b, ok := PickSortBase(s)
		if !ok {
			return "", errNoUnifyMsg(fmt.Sprintf("no base type satisfies sort %s", s))
		}
		return b, nil
	}

	combined := ts[0]
	for _, t := range ts[1:] {
		var ok bool
		if dir == limLUB {
			combined, ok = TyLUB(combined, t)
		} else {
			combined, ok = TyGLB(combined, t)
		}
		if !ok {
			return "", errNoUnifyMsg(fmt.Sprintf("base types %v have no common bound", ts))
		}
	}

	if !HasSort(combined, s) {
		walkDir := DirSuper
		if dir == limGLB {
			walkDir = DirSub
		}
		found := false
		cands := DirTypes(walkDir, combined)
		for i := range cands {
			// DirTypes lists subtypes bottom-up; walk them top-down so
			// the GLB case finds the greatest qualifying subtype.
			cand := cands[i]
			if dir == limGLB {
				cand = cands[len(cands)-1-i]
			}
			if HasSort(cand, s) {
				combined = cand
				found = true
				break
			}
		}
		if !found {
			return "", errNoUnifyMsg(fmt.Sprintf("no type both bounded by %v and satisfying sort %s", ts, s))
		}
	}

	for _, nb := range neighbors {
		ns := sorts.Get(nb.Name)
		if len(ns) == 0 {
			continue
		}
		if _, ok := PickSortBase(ns); !ok {
			return "", errNoUnifyMsg(fmt.Sprintf("neighbor %s's sort %s is uninhabited", nb.Name, ns))
		}
	}

	return combined, nil
}

// bindVariableToBase rewires every edge incident to v onto the base
// atom node b, then removes v from the graph.
func bindVariableToBase(g *Graph, v *AVar, b BaseAtom) {
	baseNode := &ABase{Base: b}
	g.AddNode(baseNode)
	for _, p := range g.Pred(v) {
		if p.AtomEquals(v) {
			continue
		}
		g.AddEdge(p, baseNode)
	}
	for _, s := range g.Succ(v) {
		if s.AtomEquals(v) {
			continue
		}
		g.AddEdge(baseNode, s)
	}
	g.Delete(v)
}

// unifyResidualWCCs quotients every remaining weakly-connected
// component (now containing only variable-variable subtype edges, no
// base pressure and no active sort) by unification: pick any member as
// canonical and map every other member onto it. This is sound because
// a subtype edge between two variables is satisfied by making them
// equal, and it produces simpler types (spec.md §4.9).
func unifyResidualWCCs(g *Graph) (*Substitution, *SolveError) {
	sub := NewSubstitution()
	for _, wcc := range g.WCC() {
		// Base nodes left behind by bindVariableToBase form their own
		// components (their bounds were already checked); only the
		// variable members are unified.
		var vars []Atom
		for _, a := range wcc {
			if _, ok := a.(*AVar); ok {
				vars = append(vars, a)
			}
		}
		if len(vars) <= 1 {
			continue
		}
		s2, err := UnifyAtoms(vars)
		if err != nil {
			return nil, err
		}
		sub = Compose(s2, sub)
	}
	return sub, nil
}
