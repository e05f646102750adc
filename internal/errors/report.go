package errors

import "encoding/json"

// Report is the canonical structured error type for disco.
// solve_report.go's FromSolveError is the sole producer, translating a
// *types.SolveError into this shape so the CLI and REPL can key off
// Code and Data instead of parsing Message.
type Report struct {
	Schema  string         `json:"schema"`         // always "disco.error/v1"
	Code    string         `json:"code"`           // TC001, TC002, ...
	Phase   string         `json:"phase"`          // always "typecheck" (disco has one solve phase)
	Message string         `json:"message"`        // human-readable message
	Data    map[string]any `json:"data,omitempty"` // structured detail (e.g. the two types)
	Fix     *Fix           `json:"fix,omitempty"`  // suggested fix, if any
}

// Fix is a suggested remedy for a Report, with a confidence score.
// FromSolveError fills this in for the error kinds where the solver
// has enough structure to suggest something concrete (e.g. a base type
// that would satisfy a missing qualifier); other kinds leave it nil.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// ToJSON converts a Report to JSON.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
