package domain

import "testing"

func TestComplianceScope_ReturnsCopy(t *testing.T) {
	scope := ComplianceScope()
	if len(scope) != 5 {
		t.Fatalf("expected 5 frameworks, got %d", len(scope))
	}

	scope[0].Name = "mutated"

	fresh := ComplianceScope()
	if fresh[0].Name == "mutated" {
		t.Fatalf("expected the fixed scope to be immutable")
	}
}

func TestFrameworkNames_MatchScopeOrder(t *testing.T) {
	scope := ComplianceScope()
	names := FrameworkNames()

	if len(names) != len(scope) {
		t.Fatalf("expected %d names, got %d", len(scope), len(names))
	}
	for i, f := range scope {
		if names[i] != f.Name {
			t.Fatalf("expected name %q at index %d, got %q", f.Name, i, names[i])
		}
	}
}
