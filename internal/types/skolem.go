package types

// SkolemCheck walks the weakly-connected components of g and rejects
// any that mix a rigid skolem with a base type or with a variable
// carrying a nontrivial sort, or that contain more than one skolem
// (spec.md §4.7). A WCC with exactly one skolem and otherwise
// unsorted unification variables is safe to collapse: every member
// unifies with the skolem, and the WCC is removed from g so the
// remaining graph solver never has to consider it.
func SkolemCheck(g *Graph, sorts SortMap) (*Substitution, *SolveError) {
	sub := NewSubstitution()
	for _, wcc := range g.WCC() {
		var skolems, bases, vars []Atom
		for _, a := range wcc {
			switch v := a.(type) {
			case *ABase:
				bases = append(bases, a)
			case *AVar:
				if v.Kind == Skolem {
					skolems = append(skolems, a)
				} else {
					vars = append(vars, a)
				}
			}
		}

		if len(skolems) == 0 {
			continue
		}
		if len(skolems) > 1 {
			return nil, errNoUnifyMsg("more than one skolem variable in the same connected component")
		}
		if len(bases) > 0 {
			return nil, errNoUnifyMsg("skolem variable mixed with a base type in the same connected component")
		}
		for _, a := range vars {
			av := a.(*AVar)
			if len(sorts.Get(av.Name)) > 0 {
				return nil, errNoUnifyMsg("skolem variable mixed with a sorted unification variable")
			}
		}

		collapse := append(append([]Atom{}, skolems...), vars...)
		s2, err := UnifyAtoms(collapse)
		if err != nil {
			return nil, err
		}
		sub = Compose(s2, sub)
		for _, a := range wcc {
			g.Delete(a)
		}
	}
	return sub, nil
}
