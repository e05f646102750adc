package types

import "fmt"

// SolveErrorKind enumerates the failure modes of Solve (spec.md §7).
type SolveErrorKind int

const (
	ErrNoUnify SolveErrorKind = iota
	ErrNoWeakUnifier
	ErrUnqualBase
	ErrUnqual
	ErrQualSkolem
	ErrUnknown
)

func (k SolveErrorKind) String() string {
	switch k {
	case ErrNoUnify:
		return "NoUnify"
	case ErrNoWeakUnifier:
		return "NoWeakUnifier"
	case ErrUnqualBase:
		return "UnqualBase"
	case ErrUnqual:
		return "Unqual"
	case ErrQualSkolem:
		return "QualSkolem"
	case ErrUnknown:
		return "Unknown"
	default:
		return "UnknownSolveError"
	}
}

// SolveError is the single structured error type Solve returns. Never
// returned alongside a partial substitution (spec.md §7).
type SolveError struct {
	Kind      SolveErrorKind
	Qualifier Qualifier
	Base      BaseAtom
	Var       string
	T1, T2    Type
	Name      string // unknown-synonym name, for ErrUnknown
	Detail    string
}

func (e *SolveError) Error() string {
	switch e.Kind {
	case ErrNoUnify:
		if e.T1 != nil && e.T2 != nil {
			return fmt.Sprintf("cannot unify %s with %s", e.T1, e.T2)
		}
		if e.Detail != "" {
			return e.Detail
		}
		return "no unifier"
	case ErrNoWeakUnifier:
		return "no weak unifier: subtyping problem is not finite"
	case ErrUnqualBase:
		return fmt.Sprintf("base type %s does not satisfy qualifier %s", e.Base, e.Qualifier)
	case ErrUnqual:
		t := "?"
		if e.T1 != nil {
			t = e.T1.String()
		}
		return fmt.Sprintf("no rule for qualifier %s on type %s", e.Qualifier, t)
	case ErrQualSkolem:
		return fmt.Sprintf("qualifier %s required of rigid variable %s", e.Qualifier, e.Var)
	case ErrUnknown:
		return fmt.Sprintf("unknown type synonym: %s", e.Name)
	default:
		return e.Detail
	}
}

func errNoUnify(t1, t2 Type) *SolveError {
	return &SolveError{Kind: ErrNoUnify, T1: t1, T2: t2}
}

func errNoUnifyMsg(detail string) *SolveError {
	return &SolveError{Kind: ErrNoUnify, Detail: detail}
}

func errNoWeakUnifier() *SolveError {
	return &SolveError{Kind: ErrNoWeakUnifier}
}

func errUnqualBase(q Qualifier, b BaseAtom) *SolveError {
	return &SolveError{Kind: ErrUnqualBase, Qualifier: q, Base: b}
}

func errUnqual(q Qualifier, t Type) *SolveError {
	return &SolveError{Kind: ErrUnqual, Qualifier: q, T1: t}
}

func errQualSkolem(q Qualifier, v string) *SolveError {
	return &SolveError{Kind: ErrQualSkolem, Qualifier: q, Var: v}
}

func errUnknown(name string) *SolveError {
	return &SolveError{Kind: ErrUnknown, Name: name}
}
