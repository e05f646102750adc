package types

import (
	"fmt"
	"strings"
)

// Type is the type language: an Atom, a constructor application, or a
// reference to a user-declared type synonym.
type Type interface {
	isType()
	String() string
}

// Constructor names a fixed built-in type constructor. User-declared
// synonyms are referenced through TyDef instead, never through
// Constructor, so arity/variance lookups never need a dynamic table.
type Constructor string

const (
	CArrow Constructor = "arrow"
	CPair  Constructor = "pair"
	CSum   Constructor = "sum"
	CList  Constructor = "list"
)

// Variance is the policy by which a constructor's argument position
// propagates subtyping.
type Variance int

const (
	Covariant Variance = iota
	Contravariant
)

// conArity is the static arity+variance table for built-in constructors.
// arrow is contravariant in its input and covariant in its output;
// every other current constructor is covariant in all positions.
var conArity = map[Constructor][]Variance{
	CArrow: {Contravariant, Covariant},
	CPair:  {Covariant, Covariant},
	CSum:   {Covariant, Covariant},
	CList:  {Covariant},
}

// Arity returns the per-argument variance list for constructor c, and
// false if c is not a known built-in constructor.
func Arity(c Constructor) ([]Variance, bool) {
	v, ok := conArity[c]
	return v, ok
}

// TyCon is a constructor application C(t1,...,tn).
type TyCon struct {
	Con  Constructor
	Args []Type
}

func (t *TyCon) isType() {}
func (t *TyCon) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", t.Con, strings.Join(parts, ", "))
}

// TyDef is a reference to a user-declared, non-recursive type synonym.
// It is expanded on demand against the synonym table passed to Solve;
// it never appears in a fully-simplified constraint (§4.5 says
// expansion always re-enqueues the constraint rather than retaining
// the TyDef node).
type TyDef struct {
	Name string
}

func (t *TyDef) isType() {}
func (t *TyDef) String() string { return t.Name }

// TypeSynonyms maps a synonym name to its (non-recursive) expansion.
type TypeSynonyms map[string]Type

// Expand looks up a type synonym by name.
func (defs TypeSynonyms) Expand(name string) (Type, bool) {
	t, ok := defs[name]
	return t, ok
}

// Arrow, Pair, Sum, ListOf are convenience constructors for TyCon values.
func Arrow(in, out Type) *TyCon  { return &TyCon{Con: CArrow, Args: []Type{in, out}} }
func Pair(a, b Type) *TyCon      { return &TyCon{Con: CPair, Args: []Type{a, b}} }
func Sum(a, b Type) *TyCon       { return &TyCon{Con: CSum, Args: []Type{a, b}} }
func ListOf(elem Type) *TyCon    { return &TyCon{Con: CList, Args: []Type{elem}} }

// FreeVars collects the names of every unification and skolem variable
// free in t.
func FreeVars(t Type) map[string]VarKind {
	out := make(map[string]VarKind)
	collectFreeVars(t, out)
	return out
}

func collectFreeVars(t Type, out map[string]VarKind) {
	switch n := t.(type) {
	case *AVar:
		out[n.Name] = n.Kind
	case *ABase:
		// no variables
	case *TyCon:
		for _, a := range n.Args {
			collectFreeVars(a, out)
		}
	case *TyDef:
		// synonym names are not variables
	}
}
