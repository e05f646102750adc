package errors

import (
	"strings"
	"testing"

	"github.com/discolang/disco/internal/types"
)

func TestFromSolveError_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  *types.SolveError
		code string
	}{
		{"no-unify", &types.SolveError{Kind: types.ErrNoUnify}, TC001},
		{"no-weak-unifier", &types.SolveError{Kind: types.ErrNoWeakUnifier}, TC002},
		{"unqual-base", &types.SolveError{Kind: types.ErrUnqualBase, Qualifier: types.QNum, Base: types.BBool}, TC003},
		{"unqual", &types.SolveError{Kind: types.ErrUnqual, Qualifier: types.QNum}, TC004},
		{"qual-skolem", &types.SolveError{Kind: types.ErrQualSkolem, Qualifier: types.QNum, Var: "a"}, TC005},
		{"unknown", &types.SolveError{Kind: types.ErrUnknown, Name: "Foo"}, TC006},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := FromSolveError(tt.err)
			if report.Code != tt.code {
				t.Errorf("Code = %s, want %s", report.Code, tt.code)
			}
			if report.Phase != "typecheck" {
				t.Errorf("Phase = %s, want typecheck", report.Phase)
			}
			if report.Schema != "disco.error/v1" {
				t.Errorf("Schema = %s, want disco.error/v1", report.Schema)
			}
		})
	}
}

func TestFromSolveError_Nil(t *testing.T) {
	if FromSolveError(nil) != nil {
		t.Error("expected a nil SolveError to produce a nil Report")
	}
}

func TestFromSolveError_FixSuggestions(t *testing.T) {
	unqualBase := FromSolveError(&types.SolveError{Kind: types.ErrUnqualBase, Qualifier: types.QNum, Base: types.BBool})
	if unqualBase.Fix == nil {
		t.Fatal("expected a Fix suggestion for UnqualBase")
	}
	if !strings.Contains(unqualBase.Fix.Suggestion, "num") {
		t.Errorf("expected the Fix to mention the missing qualifier, got %q", unqualBase.Fix.Suggestion)
	}

	unknown := FromSolveError(&types.SolveError{Kind: types.ErrUnknown, Name: "Missing"})
	if unknown.Fix == nil || !strings.Contains(unknown.Fix.Suggestion, "Missing") {
		t.Fatal("expected a Fix suggestion naming the missing synonym")
	}

	qualSkolem := FromSolveError(&types.SolveError{Kind: types.ErrQualSkolem, Qualifier: types.QNum, Var: "a"})
	if qualSkolem.Fix == nil {
		t.Fatal("expected a Fix suggestion for QualSkolem")
	}

	noUnify := FromSolveError(&types.SolveError{Kind: types.ErrNoUnify, T1: &types.ABase{Base: types.BBool}, T2: &types.ABase{Base: types.BInt}})
	if noUnify.Fix != nil {
		t.Error("expected no Fix suggestion for a bare NoUnify failure")
	}
}

func TestReportToJSON(t *testing.T) {
	report := FromSolveError(&types.SolveError{Kind: types.ErrUnqualBase, Qualifier: types.QNum, Base: types.BBool})
	out, err := report.ToJSON(true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(out, `"code":"TC003"`) {
		t.Errorf("expected compact JSON to contain the error code, got %s", out)
	}
}
