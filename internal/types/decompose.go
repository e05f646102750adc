package types

// Alternative is one (SortMap, []SimpleConstraint) produced by
// decomposing a Constraint. Sub, Eq, Qual and True yield exactly one;
// Or concatenates the alternatives of its surviving children, And takes
// the Cartesian product of its children's alternatives, and All yields
// those of its body.
type Alternative struct {
	Sorts   SortMap
	Simples []SimpleConstraint
}

// Decompose opens universal quantifiers (introducing skolems),
// flattens And/Or, and extracts a sort map plus a list of simple
// constraints — spec.md §4.4.
func Decompose(c Constraint) ([]Alternative, error) {
	switch n := c.(type) {
	case True:
		return []Alternative{{Sorts: SortMap{}}}, nil

	case Sub:
		return []Alternative{{Sorts: SortMap{}, Simples: []SimpleConstraint{{Rel: RelSub, T1: n.T1, T2: n.T2}}}}, nil

	case Eq:
		return []Alternative{{Sorts: SortMap{}, Simples: []SimpleConstraint{{Rel: RelEq, T1: n.T1, T2: n.T2}}}}, nil

	case Qual:
		sorts, err := decomposeQual(n.T, n.Q)
		if err != nil {
			return nil, err
		}
		return []Alternative{{Sorts: sorts}}, nil

	case And:
		return decomposeAnd(n.Cs)

	case Or:
		return decomposeOr(n.Cs)

	case All:
		sub := NewSubstitution()
		for _, v := range n.Vars {
			sub.set(v, NewSkolem(v))
		}
		body := substituteConstraint(sub, n.Body)
		return Decompose(body)

	default:
		return []Alternative{{Sorts: SortMap{}}}, nil
	}
}

// decomposeAnd takes the Cartesian product of decomposing each child,
// joining sort maps (union per-key) and concatenating constraint lists.
func decomposeAnd(cs []Constraint) ([]Alternative, error) {
	result := []Alternative{{Sorts: SortMap{}}}
	for _, c := range cs {
		alts, err := Decompose(c)
		if err != nil {
			return nil, err
		}
		var next []Alternative
		for _, acc := range result {
			for _, alt := range alts {
				next = append(next, Alternative{
					Sorts:   acc.Sorts.Merge(alt.Sorts),
					Simples: append(append([]SimpleConstraint{}, acc.Simples...), alt.Simples...),
				})
			}
		}
		result = next
	}
	return result, nil
}

// decomposeOr concatenates all children's alternative lists. A child
// that raises an error is dropped; if every child raises, the first
// child's error is re-raised (spec.md §4.4, and the Open Question in
// §9: error prioritisation preserves the first failure).
func decomposeOr(cs []Constraint) ([]Alternative, error) {
	var out []Alternative
	var firstErr error
	for _, c := range cs {
		alts, err := Decompose(c)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, alts...)
	}
	if len(out) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// decomposeQual implements decompose_qual(t, q) — spec.md §4.4.
func decomposeQual(t Type, qq Qualifier) (SortMap, error) {
	switch n := t.(type) {
	case *AVar:
		if n.Kind == Skolem {
			return nil, errQualSkolem(qq, n.Name)
		}
		return SortMap{n.Name: NewSort(qq)}, nil

	case *ABase:
		if HasQual(n.Base, qq) {
			return SortMap{}, nil
		}
		return nil, errUnqualBase(qq, n.Base)

	case *TyCon:
		rules, ok := qualRules[n.Con]
		if !ok {
			return nil, errUnqual(qq, t)
		}
		argRules, ok := rules[qq]
		if !ok {
			return nil, errUnqual(qq, t)
		}
		out := SortMap{}
		for i, rule := range argRules {
			if rule == nil {
				continue
			}
			if i >= len(n.Args) {
				continue
			}
			sub, err := decomposeQual(n.Args[i], *rule)
			if err != nil {
				return nil, err
			}
			out = out.Merge(sub)
		}
		return out, nil

	case *TyDef:
		return nil, errUnqual(qq, t)

	default:
		return nil, errUnqual(qq, t)
	}
}

// substituteConstraint applies a substitution throughout a Constraint
// tree (used only to instantiate All's bound variables as skolems).
func substituteConstraint(s *Substitution, c Constraint) Constraint {
	switch n := c.(type) {
	case Sub:
		return Sub{T1: Apply(s, n.T1), T2: Apply(s, n.T2)}
	case Eq:
		return Eq{T1: Apply(s, n.T1), T2: Apply(s, n.T2)}
	case Qual:
		return Qual{Q: n.Q, T: Apply(s, n.T)}
	case And:
		cs := make([]Constraint, len(n.Cs))
		for i, sub := range n.Cs {
			cs[i] = substituteConstraint(s, sub)
		}
		return And{Cs: cs}
	case Or:
		cs := make([]Constraint, len(n.Cs))
		for i, sub := range n.Cs {
			cs[i] = substituteConstraint(s, sub)
		}
		return Or{Cs: cs}
	case All:
		// Bound variables shadow; only substitute free occurrences.
		shadowed := make(map[string]bool, len(n.Vars))
		for _, v := range n.Vars {
			shadowed[v] = true
		}
		filtered := NewSubstitution()
		for _, k := range s.Domain() {
			if !shadowed[k] {
				v, _ := s.Lookup(k)
				filtered.set(k, v)
			}
		}
		return All{Vars: n.Vars, Body: substituteConstraint(filtered, n.Body)}
	case True:
		return n
	default:
		return c
	}
}
