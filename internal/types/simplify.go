package types

// simplifyState is the simplifier's mutable workspace. One Simplify call
// (made once per solveAlternative) owns it, and it is discarded when that
// call returns, whether it succeeded or failed.
type simplifyState struct {
	defs        TypeSynonyms
	sorts       SortMap
	constraints []SimpleConstraint
	sub         *Substitution
	seen        map[string]bool
	fresh       *freshCounter
}

// Simplify repeatedly reduces simplifiable constraints until only
// atomic subtype constraints remain (spec.md §4.5). It returns the
// accumulated substitution, the updated sort map, and the surviving
// atomic constraints.
func Simplify(defs TypeSynonyms, sorts SortMap, simples []SimpleConstraint) (*Substitution, SortMap, []SimpleConstraint, *SolveError) {
	st := &simplifyState{
		defs:        defs,
		sorts:       sorts,
		constraints: append([]SimpleConstraint{}, simples...),
		sub:         NewSubstitution(),
		seen:        make(map[string]bool),
		fresh:       newFreshCounter(simples, sorts),
	}
	for {
		idx := st.pickSimplifiable()
		if idx < 0 {
			break
		}
		c := st.constraints[idx]
		key := c.String()
		st.constraints = removeAt(st.constraints, idx)
		if st.seen[key] {
			continue
		}
		st.seen[key] = true
		added, err := st.reduce(c)
		if err != nil {
			return nil, nil, nil, err
		}
		st.constraints = append(st.constraints, added...)
	}
	return st.sub, st.sorts, st.constraints, nil
}

func removeAt(cs []SimpleConstraint, idx int) []SimpleConstraint {
	out := make([]SimpleConstraint, 0, len(cs)-1)
	out = append(out, cs[:idx]...)
	out = append(out, cs[idx+1:]...)
	return out
}

// simplifiable reports whether c matches one of the reducible shapes
// in spec.md §4.5 step 1. An atomic subtype constraint (both sides
// variable or base-vs-variable with no constructor/synonym present) is
// the terminal form and is left alone here.
func simplifiable(c SimpleConstraint) bool {
	if c.Rel == RelEq {
		return true
	}
	if _, ok := c.T1.(*TyDef); ok {
		return true
	}
	if _, ok := c.T2.(*TyDef); ok {
		return true
	}
	_, t1Con := c.T1.(*TyCon)
	_, t2Con := c.T2.(*TyCon)
	if t1Con && t2Con {
		return true
	}
	_, t1Var := c.T1.(*AVar)
	_, t2Var := c.T2.(*AVar)
	if t1Var && t2Con {
		return true
	}
	if t1Con && t2Var {
		return true
	}
	b1, t1Base := c.T1.(*ABase)
	b2, t2Base := c.T2.(*ABase)
	if t1Base && t2Base {
		_ = b1
		_ = b2
		return true
	}
	return false
}

func (st *simplifyState) pickSimplifiable() int {
	for i, c := range st.constraints {
		if simplifiable(c) {
			return i
		}
	}
	return -1
}

// reduce applies the rule matching c's shape, returning any new
// constraints produced (to be appended back onto the workspace).
func (st *simplifyState) reduce(c SimpleConstraint) ([]SimpleConstraint, *SolveError) {
	if c.Rel == RelEq {
		sigma, err := Unify(st.defs, []TypeEq{{c.T1, c.T2}})
		if err != nil {
			return nil, err
		}
		if err := st.extendSubst(sigma); err != nil {
			return nil, err
		}
		return nil, nil
	}

	// Sub
	if d1, ok := c.T1.(*TyDef); ok {
		exp, ok := st.defs.Expand(d1.Name)
		if !ok {
			return nil, errUnknown(d1.Name)
		}
		return []SimpleConstraint{{Rel: RelSub, T1: exp, T2: c.T2}}, nil
	}
	if d2, ok := c.T2.(*TyDef); ok {
		exp, ok := st.defs.Expand(d2.Name)
		if !ok {
			return nil, errUnknown(d2.Name)
		}
		return []SimpleConstraint{{Rel: RelSub, T1: c.T1, T2: exp}}, nil
	}

	if con1, ok := c.T1.(*TyCon); ok {
		if con2, ok := c.T2.(*TyCon); ok {
			if con1.Con != con2.Con || len(con1.Args) != len(con2.Args) {
				return nil, errNoUnify(c.T1, c.T2)
			}
			variances, _ := Arity(con1.Con)
			out := make([]SimpleConstraint, len(con1.Args))
			for i := range con1.Args {
				if variances[i] == Covariant {
					out[i] = SimpleConstraint{Rel: RelSub, T1: con1.Args[i], T2: con2.Args[i]}
				} else {
					out[i] = SimpleConstraint{Rel: RelSub, T1: con2.Args[i], T2: con1.Args[i]}
				}
			}
			return out, nil
		}
		if v2, ok := c.T2.(*AVar); ok {
			return st.expandVarVsCon(v2, con1, c, true)
		}
	}
	if v1, ok := c.T1.(*AVar); ok {
		if con2, ok := c.T2.(*TyCon); ok {
			return st.expandVarVsCon(v1, con2, c, false)
		}
	}

	if b1, ok := c.T1.(*ABase); ok {
		if b2, ok := c.T2.(*ABase); ok {
			if LeqBase(b1.Base, b2.Base) {
				return nil, nil
			}
			return nil, errNoUnify(c.T1, c.T2)
		}
	}

	// Not actually simplifiable; keep as-is (defensive — pickSimplifiable
	// should never select this path).
	return []SimpleConstraint{c}, nil
}

// expandVarVsCon handles "v <: C(_)" or "C(_) <: v": generates fresh
// unification variables matching C's arity, binds v to C(freshVars),
// and re-enqueues the (now structurally reducible) original constraint.
func (st *simplifyState) expandVarVsCon(v *AVar, con *TyCon, orig SimpleConstraint, varIsRHS bool) ([]SimpleConstraint, *SolveError) {
	variances, ok := Arity(con.Con)
	if !ok {
		return nil, errNoUnify(orig.T1, orig.T2)
	}
	if v.Kind == Skolem {
		return nil, errNoUnify(orig.T1, orig.T2)
	}
	args := make([]Type, len(variances))
	for i := range variances {
		args[i] = st.fresh.freshVar()
	}
	expanded := &TyCon{Con: con.Con, Args: args}
	sigma := SingleSubst(v.Name, expanded)
	if err := st.extendSubst(sigma); err != nil {
		return nil, err
	}
	next := ApplySimple(sigma, orig)
	return []SimpleConstraint{next}, nil
}

// extendSubst composes sigma' into the running substitution, applies it
// to the remaining constraint workspace, and propagates it through the
// sort map: every bound variable's recorded sort is re-derived by
// decomposing Qual on its new binding for each qualifier it carried
// (spec.md §4.5).
func (st *simplifyState) extendSubst(sigma *Substitution) *SolveError {
	st.sub = Compose(sigma, st.sub)
	for i := range st.constraints {
		st.constraints[i] = ApplySimple(sigma, st.constraints[i])
	}
	for _, vname := range sigma.Domain() {
		s, ok := st.sorts[vname]
		if !ok || len(s) == 0 {
			continue
		}
		bound, _ := sigma.Lookup(vname)
		merged := SortMap{}
		for q := range s {
			sm, err := decomposeQual(bound, q)
			if err != nil {
				return asSolveError(err)
			}
			merged = merged.Merge(sm)
		}
		st.sorts = st.sorts.Delete(vname).Merge(merged)
	}
	return nil
}
