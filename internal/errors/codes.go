// Package errors provides centralized error code definitions for disco.
// Error codes follow a consistent taxonomy so tooling can key off a
// stable string instead of matching on message text.
package errors

// Error code constants, one per types.SolveErrorKind.
const (
	// TC001 indicates two types could not be unified or made a subtype
	// of one another.
	TC001 = "TC001"

	// TC002 indicates the weak-unification termination guard failed:
	// the subtyping problem is not known to be finite.
	TC002 = "TC002"

	// TC003 indicates a concrete base type does not satisfy a required
	// qualifier.
	TC003 = "TC003"

	// TC004 indicates a qualifier has no decomposition rule for the
	// type it was applied to (e.g. an arrow type, or a type synonym in
	// qualifier position).
	TC004 = "TC004"

	// TC005 indicates a qualifier was required of a rigid (skolem)
	// variable, which can never be instantiated to satisfy it.
	TC005 = "TC005"

	// TC006 indicates a constraint referenced a type synonym with no
	// entry in the synonym table.
	TC006 = "TC006"
)

// ErrorInfo provides structured information about an error code.
type ErrorInfo struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// ErrorRegistry maps error codes to their information.
var ErrorRegistry = map[string]ErrorInfo{
	TC001: {TC001, "typecheck", "unification", "No unifier"},
	TC002: {TC002, "typecheck", "termination", "No weak unifier"},
	TC003: {TC003, "typecheck", "qualifier", "Base type fails qualifier"},
	TC004: {TC004, "typecheck", "qualifier", "No qualifier rule for type"},
	TC005: {TC005, "typecheck", "qualifier", "Qualifier required of rigid variable"},
	TC006: {TC006, "typecheck", "synonym", "Unknown type synonym"},
}

// GetErrorInfo returns information about an error code.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, exists := ErrorRegistry[code]
	return info, exists
}

// IsTypeError reports whether code belongs to the typecheck phase.
func IsTypeError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "typecheck"
}
