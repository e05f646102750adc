package types

// Substitution is a finite, ordered map from unification-variable names
// to types. Skolem variables must never appear as a key (invariant I3).
type Substitution struct {
	order []string
	bind  map[string]Type
}

// NewSubstitution returns the identity substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bind: make(map[string]Type)}
}

// SingleSubst builds a one-binding substitution.
func SingleSubst(name string, t Type) *Substitution {
	s := NewSubstitution()
	s.set(name, t)
	return s
}

func (s *Substitution) set(name string, t Type) {
	if _, exists := s.bind[name]; !exists {
		s.order = append(s.order, name)
	}
	s.bind[name] = t
}

// Lookup returns the binding for name, if any.
func (s *Substitution) Lookup(name string) (Type, bool) {
	t, ok := s.bind[name]
	return t, ok
}

// Domain returns the substitution's keys in insertion order.
func (s *Substitution) Domain() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len reports the number of bindings.
func (s *Substitution) Len() int { return len(s.order) }

// Apply rewrites t by substituting every free variable bound in s.
// Application is not implicitly recursive through a bound type's own
// free variables: callers that need a fixpoint (e.g. after composing
// several substitutions) rely on Compose having already flattened
// chains, per invariant I2 (idempotence).
func Apply(s *Substitution, t Type) Type {
	if s == nil || s.Len() == 0 {
		return t
	}
	switch n := t.(type) {
	case *AVar:
		if n.Kind == Skolem {
			return n
		}
		if bound, ok := s.Lookup(n.Name); ok {
			return bound
		}
		return n
	case *ABase:
		return n
	case *TyCon:
		args := make([]Type, len(n.Args))
		for i, a := range n.Args {
			args[i] = Apply(s, a)
		}
		return &TyCon{Con: n.Con, Args: args}
	case *TyDef:
		return n
	}
	return t
}

// Compose returns s2 ∘ s1: s2 is applied to the range of s1, then the
// merged map is produced with s1's bindings for any shared key
// overriding the plain s2 binding (per spec.md §4.2: "s1's mapping
// wins"). Composition must be implemented in exactly this order —
// getting it backwards silently produces wrong answers (property P6,
// idempotence, is the test that would catch it).
func Compose(s2, s1 *Substitution) *Substitution {
	out := NewSubstitution()
	if s1 != nil {
		for _, k := range s1.order {
			v, _ := s1.Lookup(k)
			out.set(k, Apply(s2, v))
		}
	}
	if s2 != nil {
		for _, k := range s2.order {
			if _, exists := out.bind[k]; exists {
				continue
			}
			v, _ := s2.Lookup(k)
			out.set(k, v)
		}
	}
	return out
}

// Restrict keeps only the bindings whose key is in keep.
func Restrict(s *Substitution, keep map[string]bool) *Substitution {
	out := NewSubstitution()
	for _, k := range s.order {
		if keep[k] {
			v, _ := s.Lookup(k)
			out.set(k, v)
		}
	}
	return out
}

// Idempotent reports whether applying s twice to every bound value
// equals applying it once — invariant I2.
func (s *Substitution) Idempotent() bool {
	for _, k := range s.order {
		v, _ := s.Lookup(k)
		again := Apply(s, v)
		if again.String() != v.String() {
			return false
		}
	}
	return true
}
