package types

// TypeEq is a single equation fed to Unify or WeakUnify.
type TypeEq struct{ T1, T2 Type }

// Unify attempts to find the most general unifier of a list of type
// equations, per the algorithm in spec.md §4.3.
func Unify(defs TypeSynonyms, eqs []TypeEq) (*Substitution, *SolveError) {
	sub := NewSubstitution()
	queue := append([]TypeEq{}, eqs...)
	for len(queue) > 0 {
		eq := queue[0]
		queue = queue[1:]
		t1 := Apply(sub, eq.T1)
		t2 := Apply(sub, eq.T2)
		s2, more, err := unifyStep(defs, t1, t2)
		if err != nil {
			return nil, err
		}
		if s2 != nil {
			sub = Compose(s2, sub)
		}
		queue = append(queue, more...)
	}
	return sub, nil
}

// unifyStep reduces one equation by exactly one rule of the table in
// spec.md §4.3, returning either a new single-variable substitution, a
// list of smaller equations to continue with, or an error.
func unifyStep(defs TypeSynonyms, t1, t2 Type) (*Substitution, []TypeEq, *SolveError) {
	if b1, ok := t1.(*ABase); ok {
		if b2, ok := t2.(*ABase); ok {
			if b1.Base == b2.Base {
				return nil, nil, nil
			}
			return nil, nil, errNoUnify(t1, t2)
		}
	}

	if d1, ok := t1.(*TyDef); ok {
		exp, ok := defs.Expand(d1.Name)
		if !ok {
			return nil, nil, errUnknown(d1.Name)
		}
		return nil, []TypeEq{{exp, t2}}, nil
	}
	if d2, ok := t2.(*TyDef); ok {
		exp, ok := defs.Expand(d2.Name)
		if !ok {
			return nil, nil, errUnknown(d2.Name)
		}
		return nil, []TypeEq{{t1, exp}}, nil
	}

	if v1, ok := t1.(*AVar); ok {
		if v2, ok := t2.(*AVar); ok && v1.Name == v2.Name && v1.Kind == v2.Kind {
			return nil, nil, nil
		}
		if v1.Kind == Skolem {
			if v2, ok := t2.(*AVar); ok && v2.Kind == Skolem && v2.Name == v1.Name {
				return nil, nil, nil
			}
			if v2, ok := t2.(*AVar); ok && v2.Kind == Unification {
				return SingleSubst(v2.Name, t1), nil, nil
			}
			return nil, nil, errNoUnify(t1, t2)
		}
		if Occurs(v1.Name, t2) {
			return nil, nil, errNoUnify(t1, t2)
		}
		return SingleSubst(v1.Name, t2), nil, nil
	}
	if v2, ok := t2.(*AVar); ok {
		if v2.Kind == Skolem {
			return nil, nil, errNoUnify(t1, t2)
		}
		if Occurs(v2.Name, t1) {
			return nil, nil, errNoUnify(t1, t2)
		}
		return SingleSubst(v2.Name, t1), nil, nil
	}

	c1, ok1 := t1.(*TyCon)
	c2, ok2 := t2.(*TyCon)
	if ok1 && ok2 {
		if c1.Con != c2.Con || len(c1.Args) != len(c2.Args) {
			return nil, nil, errNoUnify(t1, t2)
		}
		more := make([]TypeEq, len(c1.Args))
		for i := range c1.Args {
			more[i] = TypeEq{c1.Args[i], c2.Args[i]}
		}
		return nil, more, nil
	}

	return nil, nil, errNoUnify(t1, t2)
}

// Occurs performs the occurs check: does varName appear free in t?
func Occurs(varName string, t Type) bool {
	switch n := t.(type) {
	case *AVar:
		return n.Name == varName
	case *ABase:
		return false
	case *TyCon:
		for _, a := range n.Args {
			if Occurs(varName, a) {
				return true
			}
		}
		return false
	case *TyDef:
		return false
	}
	return false
}

// WeakUnify runs the same algorithm as Unify but treats every
// subtyping constraint as an equation. Its only purpose is to prove
// the subtyping problem is finite; its result is discarded and only
// success/failure matters (spec.md §4.3).
func WeakUnify(defs TypeSynonyms, simples []SimpleConstraint) *SolveError {
	eqs := make([]TypeEq, len(simples))
	for i, c := range simples {
		eqs[i] = TypeEq{c.T1, c.T2}
	}
	_, err := Unify(defs, eqs)
	if err != nil {
		if err.Kind == ErrUnknown {
			return err
		}
		return errNoWeakUnifier()
	}
	return nil
}

// UnifyAtoms is the atom-level unification used to collapse an SCC (or
// a skolem-safe WCC): every atom in the set must unify to a single
// atom. Fails on two distinct bases, or a base mixed with a skolem.
func UnifyAtoms(atoms []Atom) (*Substitution, *SolveError) {
	if len(atoms) == 0 {
		return NewSubstitution(), nil
	}
	eqs := make([]TypeEq, 0, len(atoms)-1)
	for _, a := range atoms[1:] {
		eqs = append(eqs, TypeEq{atoms[0], a})
	}
	return Unify(nil, eqs)
}
