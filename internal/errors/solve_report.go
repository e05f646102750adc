package errors

import (
	"fmt"

	"github.com/discolang/disco/internal/types"
)

// kindCode maps a types.SolveErrorKind to its TC0xx code.
var kindCode = map[types.SolveErrorKind]string{
	types.ErrNoUnify:       TC001,
	types.ErrNoWeakUnifier: TC002,
	types.ErrUnqualBase:    TC003,
	types.ErrUnqual:        TC004,
	types.ErrQualSkolem:    TC005,
	types.ErrUnknown:       TC006,
}

// FromSolveError converts a solver failure into a structured Report.
// This is the only place the types package's error values are turned
// into the ambient Report/Fix shape consumed by the CLI and REPL.
func FromSolveError(err *types.SolveError) *Report {
	if err == nil {
		return nil
	}
	code, ok := kindCode[err.Kind]
	if !ok {
		code = "TC001"
	}

	data := map[string]any{}
	if err.T1 != nil {
		data["t1"] = err.T1.String()
	}
	if err.T2 != nil {
		data["t2"] = err.T2.String()
	}
	if err.Qualifier != "" {
		data["qualifier"] = string(err.Qualifier)
	}
	if err.Base != "" {
		data["base"] = string(err.Base)
	}
	if err.Var != "" {
		data["var"] = err.Var
	}
	if err.Name != "" {
		data["name"] = err.Name
	}

	return &Report{
		Schema:  "disco.error/v1",
		Code:    code,
		Phase:   "typecheck",
		Message: err.Error(),
		Data:    data,
		Fix:     fixFor(err),
	}
}

// fixFor suggests a remedy where the solver's failure carries enough
// structure to propose something concrete; other kinds leave the
// report's Fix unset.
func fixFor(err *types.SolveError) *Fix {
	switch err.Kind {
	case types.ErrUnqualBase:
		alt, ok := types.PickSortBase(types.NewSort(err.Qualifier))
		if !ok || alt == err.Base {
			return nil
		}
		return &Fix{
			Suggestion: fmt.Sprintf("use %s instead of %s, which satisfies the %q qualifier", alt, err.Base, err.Qualifier),
			Confidence: 0.5,
		}
	case types.ErrUnknown:
		return &Fix{
			Suggestion: fmt.Sprintf("add an entry for type synonym %q to the synonym table", err.Name),
			Confidence: 0.8,
		}
	case types.ErrQualSkolem:
		return &Fix{
			Suggestion: fmt.Sprintf("the %q qualifier cannot be required of universally-quantified variable %s; constrain it before quantifying, not after", err.Qualifier, err.Var),
			Confidence: 0.4,
		}
	default:
		return nil
	}
}
