// Package types implements disco's type-inference and constraint-solving
// core: the type language, substitution, unification, constraint
// decomposition and simplification, the constraint graph, and the
// graph-based solver that assigns base types to unification variables
// under coercive numeric subtyping and qualified (sort) polymorphism.
package types

import "fmt"

// VarKind distinguishes flexible unification variables, which may be
// refined by a substitution, from rigid skolem variables introduced by
// opening a universal quantifier, which are never bound by a
// substitution: a skolem unifies with itself, and a unification
// variable may be bound to it, but it never unifies with a base type
// or with a different skolem.
type VarKind int

const (
	Unification VarKind = iota
	Skolem
)

func (k VarKind) String() string {
	if k == Skolem {
		return "skolem"
	}
	return "unif"
}

// BaseAtom is a concrete, non-variable leaf type drawn from a fixed
// enumeration ordered by a subtype relation.
type BaseAtom string

const (
	BNat      BaseAtom = "Nat"
	BInt      BaseAtom = "Int"
	BRational BaseAtom = "Rational"
	BReal     BaseAtom = "Real"
	BBool     BaseAtom = "Bool"
	BUnit     BaseAtom = "Unit"
	BChar     BaseAtom = "Char"
)

// numericChain lists the numeric base atoms in increasing subtype
// order: Nat <= Int <= Rational <= Real. Atoms outside this chain are
// pairwise incomparable (and incomparable to the chain).
var numericChain = []BaseAtom{BNat, BInt, BRational, BReal}

func chainIndex(b BaseAtom) (int, bool) {
	for i, c := range numericChain {
		if c == b {
			return i, true
		}
	}
	return -1, false
}

// LeqBase reports whether a <= b under the base-atom subtype order.
func LeqBase(a, b BaseAtom) bool {
	if a == b {
		return true
	}
	ia, aOk := chainIndex(a)
	ib, bOk := chainIndex(b)
	if aOk && bOk {
		return ia <= ib
	}
	return false
}

// TyLUB returns the least upper bound of two base atoms, or ("", false)
// if they have no common supertype in the lattice.
func TyLUB(a, b BaseAtom) (BaseAtom, bool) {
	if a == b {
		return a, true
	}
	ia, aOk := chainIndex(a)
	ib, bOk := chainIndex(b)
	if aOk && bOk {
		if ia >= ib {
			return a, true
		}
		return b, true
	}
	return "", false
}

// TyGLB returns the greatest lower bound of two base atoms, or
// ("", false) if they have no common subtype.
func TyGLB(a, b BaseAtom) (BaseAtom, bool) {
	if a == b {
		return a, true
	}
	ia, aOk := chainIndex(a)
	ib, bOk := chainIndex(b)
	if aOk && bOk {
		if ia <= ib {
			return a, true
		}
		return b, true
	}
	return "", false
}

// Direction selects which side of the base lattice DirTypes walks.
type Direction int

const (
	DirSuper Direction = iota
	DirSub
)

// DirTypes returns all supertypes of b (DirSuper) or all subtypes of b
// (DirSub), including b itself. Non-numeric atoms have only themselves
// in either direction.
func DirTypes(dir Direction, b BaseAtom) []BaseAtom {
	idx, ok := chainIndex(b)
	if !ok {
		return []BaseAtom{b}
	}
	var out []BaseAtom
	switch dir {
	case DirSuper:
		out = append(out, numericChain[idx:]...)
	case DirSub:
		out = append(out, numericChain[:idx+1]...)
	}
	return out
}

func otherDirection(dir Direction) Direction {
	if dir == DirSuper {
		return DirSub
	}
	return DirSuper
}

// Qualifier is an atomic predicate on types, the building block of a Sort.
type Qualifier string

const (
	QNum       Qualifier = "num"
	QSub       Qualifier = "sub"
	QFinite    Qualifier = "finite"
	QBool      Qualifier = "bool"
	QEnum      Qualifier = "enum"
	QContainer Qualifier = "container"
	QOrd       Qualifier = "ord"
)

// Sort is a set of qualifiers: the top sort is the empty set, and sorts
// compose by union.
type Sort map[Qualifier]struct{}

// NewSort builds a Sort from a list of qualifiers.
func NewSort(qs ...Qualifier) Sort {
	s := make(Sort, len(qs))
	for _, q := range qs {
		s[q] = struct{}{}
	}
	return s
}

// Union returns the union of two sorts, leaving both inputs unmodified.
func (s Sort) Union(other Sort) Sort {
	out := make(Sort, len(s)+len(other))
	for q := range s {
		out[q] = struct{}{}
	}
	for q := range other {
		out[q] = struct{}{}
	}
	return out
}

// Has reports whether q is a member of the sort.
func (s Sort) Has(q Qualifier) bool {
	_, ok := s[q]
	return ok
}

func (s Sort) String() string {
	if len(s) == 0 {
		return "{}"
	}
	out := "{"
	first := true
	for _, q := range orderedQualifiers(s) {
		if !first {
			out += ", "
		}
		out += string(q)
		first = false
	}
	return out + "}"
}

func orderedQualifiers(s Sort) []Qualifier {
	order := []Qualifier{QNum, QSub, QFinite, QBool, QEnum, QContainer, QOrd}
	var out []Qualifier
	for _, q := range order {
		if s.Has(q) {
			out = append(out, q)
		}
	}
	return out
}

// baseQuals is the declarative has_qual table: which qualifiers each
// base atom satisfies.
var baseQuals = map[BaseAtom]Sort{
	BNat:      NewSort(QNum, QEnum, QOrd),
	BInt:      NewSort(QNum, QSub, QEnum, QOrd),
	BRational: NewSort(QNum, QSub, QOrd),
	BReal:     NewSort(QNum, QSub, QOrd),
	BBool:     NewSort(QBool, QFinite, QEnum, QOrd),
	BUnit:     NewSort(QFinite, QEnum, QOrd),
	BChar:     NewSort(QFinite, QEnum, QOrd),
}

// HasQual reports whether base atom b satisfies qualifier q.
func HasQual(b BaseAtom, q Qualifier) bool {
	s, ok := baseQuals[b]
	if !ok {
		return false
	}
	return s.Has(q)
}

// HasSort reports whether base atom b satisfies every qualifier in sort s.
func HasSort(b BaseAtom, s Sort) bool {
	for q := range s {
		if !HasQual(b, q) {
			return false
		}
	}
	return true
}

// baseOrder is the fixed enumeration order candidates are tried in when
// picking a canonical inhabitant of a sort.
var baseOrder = []BaseAtom{BNat, BInt, BRational, BReal, BBool, BUnit, BChar}

// PickSortBase returns a canonical base atom inhabiting sort s. It is
// used when a variable carries a nontrivial sort but neither subtype
// nor supertype pressure determines its binding.
func PickSortBase(s Sort) (BaseAtom, bool) {
	if len(s) == 0 {
		return BInt, true
	}
	for _, b := range baseOrder {
		if HasSort(b, s) {
			return b, true
		}
	}
	return "", false
}

// RegisterBase extends the base-atom lattice and qualifier table at
// runtime, letting a host (internal/discocfg) declare additional base
// types from configuration instead of recompiling. quals is the set
// of qualifiers the new base satisfies. If above is non-empty, name is
// spliced into the numeric subtype chain directly above it (so
// above <: name); if above is empty, name is added as a standalone
// atom incomparable to every other base, the same way Bool, Unit, and
// Char are.
func RegisterBase(name BaseAtom, quals Sort, above BaseAtom) error {
	if _, exists := baseQuals[name]; exists {
		return fmt.Errorf("types: base %s is already registered", name)
	}
	if above != "" {
		idx, ok := chainIndex(above)
		if !ok {
			return fmt.Errorf("types: cannot extend numeric chain above unknown base %s", above)
		}
		extended := append([]BaseAtom{}, numericChain[:idx+1]...)
		extended = append(extended, name)
		extended = append(extended, numericChain[idx+1:]...)
		numericChain = extended
	}
	baseQuals[name] = quals
	baseOrder = append(baseOrder, name)
	return nil
}

// Atom is a leaf of the type language: either a base atom or a
// variable atom (unification or skolem).
type Atom interface {
	Type
	isAtom()
	AtomEquals(Atom) bool
}

// ABase is a concrete base type atom.
type ABase struct {
	Base BaseAtom
}

func (a *ABase) isType() {}
func (a *ABase) isAtom() {}
func (a *ABase) String() string {
	return string(a.Base)
}
func (a *ABase) AtomEquals(o Atom) bool {
	ob, ok := o.(*ABase)
	return ok && ob.Base == a.Base
}

// AVar is a variable atom, tagged unification or skolem.
type AVar struct {
	Name string
	Kind VarKind
}

func (a *AVar) isType() {}
func (a *AVar) isAtom() {}
func (a *AVar) String() string {
	if a.Kind == Skolem {
		return fmt.Sprintf("%%%s", a.Name)
	}
	return a.Name
}
func (a *AVar) AtomEquals(o Atom) bool {
	ov, ok := o.(*AVar)
	return ok && ov.Name == a.Name && ov.Kind == a.Kind
}

// NewUnifVar builds a fresh unification-variable atom.
func NewUnifVar(name string) *AVar { return &AVar{Name: name, Kind: Unification} }

// NewSkolem builds a skolem-variable atom.
func NewSkolem(name string) *AVar { return &AVar{Name: name, Kind: Skolem} }
