package errors

import "testing"

func TestErrorCodeTaxonomy(t *testing.T) {
	tests := []struct {
		code     string
		phase    string
		category string
	}{
		{TC001, "typecheck", "unification"},
		{TC002, "typecheck", "termination"},
		{TC003, "typecheck", "qualifier"},
		{TC004, "typecheck", "qualifier"},
		{TC005, "typecheck", "qualifier"},
		{TC006, "typecheck", "synonym"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			info, exists := GetErrorInfo(tt.code)
			if !exists {
				t.Fatalf("error code %s not found in registry", tt.code)
			}
			if info.Code != tt.code {
				t.Errorf("code mismatch: got %s, want %s", info.Code, tt.code)
			}
			if info.Phase != tt.phase {
				t.Errorf("phase mismatch for %s: got %s, want %s", tt.code, info.Phase, tt.phase)
			}
			if info.Category != tt.category {
				t.Errorf("category mismatch for %s: got %s, want %s", tt.code, info.Category, tt.category)
			}
			if !IsTypeError(tt.code) {
				t.Errorf("IsTypeError(%s) = false, want true", tt.code)
			}
		})
	}
}

func TestUnknownErrorCode(t *testing.T) {
	if _, exists := GetErrorInfo("TC999"); exists {
		t.Error("expected TC999 to be absent from the registry")
	}
	if IsTypeError("TC999") {
		t.Error("IsTypeError(TC999) = true, want false")
	}
}

func TestAllErrorCodesInRegistry(t *testing.T) {
	allCodes := []string{TC001, TC002, TC003, TC004, TC005, TC006}
	for _, code := range allCodes {
		if _, exists := GetErrorInfo(code); !exists {
			t.Errorf("error code %s is defined but not in registry", code)
		}
	}
	if len(ErrorRegistry) != len(allCodes) {
		t.Errorf("registry has %d codes, want %d", len(ErrorRegistry), len(allCodes))
	}
}
