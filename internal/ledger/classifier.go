package ledger

import "risparmio/internal/domain"

// Classifier maps the raw category-type label on a savings transaction to its
// classified CategoryType. Label sets are configurable because the source
// sheets are bilingual ("Accantonamento" is an Allocation label, "Risparmio" a
// Savings label). Unrecognized labels map to Other with no error; an
// unrecognized-type outflow therefore still counts toward spending.
type Classifier struct {
	savings    map[string]struct{}
	allocation map[string]struct{}
}

// NewClassifier creates a Classifier recognizing the given label sets.
func NewClassifier(savingsLabels, allocationLabels []string) *Classifier {
	c := &Classifier{
		savings:    make(map[string]struct{}, len(savingsLabels)),
		allocation: make(map[string]struct{}, len(allocationLabels)),
	}
	for _, l := range savingsLabels {
		c.savings[l] = struct{}{}
	}
	for _, l := range allocationLabels {
		c.allocation[l] = struct{}{}
	}
	return c
}

// DefaultClassifier recognizes the standard English and Italian labels.
func DefaultClassifier() *Classifier {
	return NewClassifier(
		[]string{"Savings", "Risparmio"},
		[]string{"Allocation", "Accantonamento"},
	)
}

// Classify returns the CategoryType for a raw label.
func (c *Classifier) Classify(label string) domain.CategoryType {
	if _, ok := c.allocation[label]; ok {
		return domain.CategoryTypeAllocation
	}
	if _, ok := c.savings[label]; ok {
		return domain.CategoryTypeSavings
	}
	return domain.CategoryTypeOther
}
