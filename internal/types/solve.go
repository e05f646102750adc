package types

import "sort"

// Solve is the sole entry point of the type-inference core (spec.md
// §6): given a table of type-synonym expansions and a constraint tree,
// it returns a substitution that closes every constraint, or a
// structured SolveError describing the first failure.
//
// Solve never returns a partial substitution alongside an error, never
// blocks or spawns goroutines, and is re-entrant provided its inputs
// are not aliased by concurrent callers — the whole core is
// synchronous and CPU-bound (spec.md §5).
func Solve(synonyms TypeSynonyms, constraint Constraint) (*Substitution, *SolveError) {
	alts, err := Decompose(constraint)
	if err != nil {
		return nil, asSolveError(err)
	}

	var firstErr *SolveError
	for _, alt := range alts {
		sub, serr := solveAlternative(synonyms, alt.Sorts, alt.Simples)
		if serr == nil {
			return sub, nil
		}
		if firstErr == nil {
			firstErr = serr
		}
	}
	if firstErr == nil {
		firstErr = errNoUnifyMsg("constraint has no satisfiable alternative")
	}
	return nil, firstErr
}

func asSolveError(err error) *SolveError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SolveError); ok {
		return se
	}
	return errNoUnifyMsg(err.Error())
}

// solveAlternative runs steps 2-9 of spec.md §4.10 over one
// (SortMap, []SimpleConstraint) alternative produced by decomposition.
func solveAlternative(defs TypeSynonyms, sorts SortMap, simples []SimpleConstraint) (*Substitution, *SolveError) {
	// Step 2: weak unification — proves the subtyping problem is finite
	// before the simplifier is allowed to run at all (property P3).
	if werr := WeakUnify(defs, simples); werr != nil {
		return nil, werr
	}

	// Step 3: simplify down to atomic subtype constraints.
	subSimp, sorts2, atomic, serr := Simplify(defs, sorts, simples)
	if serr != nil {
		return nil, serr
	}

	// Step 4: build the constraint graph.
	g := buildGraph(atomic, sorts2, subSimp)

	// Step 5: skolem check.
	subSkolem, serr := SkolemCheck(g, sorts2)
	if serr != nil {
		return nil, serr
	}

	// Step 6: cycle elimination.
	condensed, subCycle, serr := EliminateCycles(g, sorts2)
	if serr != nil {
		return nil, serr
	}

	// Steps 7-8: graph solver.
	subSolve, serr := SolveGraph(condensed, sorts2)
	if serr != nil {
		return nil, serr
	}

	// Step 9: compose σ_sol ∘ σ_cyc ∘ σ_skolem ∘ σ_simp.
	final := Compose(subSolve, Compose(subCycle, Compose(subSkolem, subSimp)))
	return final, nil
}

// buildGraph collects every atom appearing in an atomic subtype
// constraint as a vertex, wires the corresponding edges, and also adds
// an isolated vertex for any sorted unification variable that the
// simplifier left unbound but that carries no subtype edge of its own
// — otherwise the graph solver would never see it to ground it via
// pick_sort_base.
func buildGraph(atomic []SimpleConstraint, sorts SortMap, subSimp *Substitution) *Graph {
	var edges [][2]Atom
	seen := make(map[string]bool)
	for _, c := range atomic {
		a1, ok1 := c.T1.(Atom)
		a2, ok2 := c.T2.(Atom)
		if !ok1 || !ok2 {
			continue
		}
		edges = append(edges, [2]Atom{a1, a2})
		seen[key(a1)] = true
		seen[key(a2)] = true
	}
	g := NewGraph(nil, edges)
	names := make([]string, 0, len(sorts))
	for vname := range sorts {
		names = append(names, vname)
	}
	sort.Strings(names)
	for _, vname := range names {
		if _, bound := subSimp.Lookup(vname); bound {
			continue
		}
		av := NewUnifVar(vname)
		if seen[key(av)] {
			continue
		}
		g.AddNode(av)
	}
	return g
}
