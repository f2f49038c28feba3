package ledger

import (
	"testing"

	"risparmio/internal/domain"
)

func TestClassify(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		label    string
		expected domain.CategoryType
	}{
		{"Savings", domain.CategoryTypeSavings},
		{"Risparmio", domain.CategoryTypeSavings},
		{"Allocation", domain.CategoryTypeAllocation},
		{"Accantonamento", domain.CategoryTypeAllocation},
		{"Groceries", domain.CategoryTypeOther},
		{"savings", domain.CategoryTypeOther}, // labels are matched literally
		{"", domain.CategoryTypeOther},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.label); got != tt.expected {
			t.Errorf("Classify(%q) = %q, want %q", tt.label, got, tt.expected)
		}
	}
}

func TestClassify_CustomLabels(t *testing.T) {
	c := NewClassifier([]string{"SetAside"}, []string{"Earmarked"})

	if got := c.Classify("SetAside"); got != domain.CategoryTypeSavings {
		t.Errorf("Classify(SetAside) = %q, want Savings", got)
	}
	if got := c.Classify("Earmarked"); got != domain.CategoryTypeAllocation {
		t.Errorf("Classify(Earmarked) = %q, want Allocation", got)
	}
	// Default labels are not recognized when custom ones are configured
	if got := c.Classify("Savings"); got != domain.CategoryTypeOther {
		t.Errorf("Classify(Savings) = %q, want Other", got)
	}
}
