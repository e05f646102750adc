package types

import "fmt"

// EliminateCycles condenses every strongly-connected component of g by
// unifying all its members to a single atom, producing a DAG
// (invariant I5) plus the substitution that performed the collapse.
// Every resulting base-atom binding is checked against the sort map
// (spec.md §4.8).
func EliminateCycles(g *Graph, sorts SortMap) (*Graph, *Substitution, *SolveError) {
	sub := NewSubstitution()
	for _, comp := range g.SCC() {
		if len(comp) <= 1 {
			continue
		}
		s2, err := UnifyAtoms(comp)
		if err != nil {
			return nil, nil, err
		}
		sub = Compose(s2, sub)
	}

	for _, vname := range sub.Domain() {
		t, _ := sub.Lookup(vname)
		b, ok := t.(*ABase)
		if !ok {
			continue
		}
		if s, ok := sorts[vname]; ok && !HasSort(b.Base, s) {
			return nil, nil, errNoUnifyMsg(fmt.Sprintf(
				"cycle elimination would bind %s to %s, which violates its required sort %s", vname, b.Base, s))
		}
	}

	condensed, _ := g.Condensation()
	condensed = condensed.MapNodes(func(a Atom) Atom {
		if t, ok := Apply(sub, a).(Atom); ok {
			return t
		}
		return a
	})
	return condensed, sub, nil
}
