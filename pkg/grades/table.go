// Package grades maps achieved fractions to institutional letter grades and
// back. Tables are built once and never mutated.
package grades

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Grade is one label with the minimum fraction needed to earn it.
type Grade struct {
	Label string          `json:"label" yaml:"label"`
	Min   decimal.Decimal `json:"min" yaml:"min"`
}

// Table is an institution's grading scheme, ordered from the highest
// threshold down to a catch-all at zero.
type Table struct {
	ID      string
	Name    string
	Aliases []string
	grades  []Grade
}

// NewTable validates and builds a table. Thresholds must strictly decrease
// and the last one must be zero so that every fraction maps to a label.
func NewTable(id, name string, aliases []string, grades []Grade) (*Table, error) {
	if id == "" {
		return nil, fmt.Errorf("grade table id is required")
	}
	if len(grades) == 0 {
		return nil, fmt.Errorf("grade table %s: no grades", id)
	}
	seen := make(map[string]bool, len(grades))
	for i, g := range grades {
		if g.Label == "" {
			return nil, fmt.Errorf("grade table %s: grade %d has no label", id, i)
		}
		if seen[g.Label] {
			return nil, fmt.Errorf("grade table %s: duplicate label %q", id, g.Label)
		}
		seen[g.Label] = true
		if i > 0 && !g.Min.LessThan(grades[i-1].Min) {
			return nil, fmt.Errorf("grade table %s: threshold for %s (%s) must be below %s (%s)",
				id, g.Label, g.Min, grades[i-1].Label, grades[i-1].Min)
		}
	}
	if bottom := grades[len(grades)-1]; !bottom.Min.IsZero() {
		return nil, fmt.Errorf("grade table %s: bottom grade %s must start at 0, got %s", id, bottom.Label, bottom.Min)
	}

	cp := make([]Grade, len(grades))
	copy(cp, grades)
	return &Table{ID: id, Name: name, Aliases: aliases, grades: cp}, nil
}

// Grades returns a copy of the table's grades, highest first.
func (t *Table) Grades() []Grade {
	cp := make([]Grade, len(t.grades))
	copy(cp, t.grades)
	return cp
}

// Label returns the highest grade whose minimum is at or below fraction.
// Fractions below zero fall through to the bottom grade.
func (t *Table) Label(fraction decimal.Decimal) string {
	for _, g := range t.grades {
		if g.Min.LessThanOrEqual(fraction) {
			return g.Label
		}
	}
	return t.grades[len(t.grades)-1].Label
}

// Threshold returns the minimum fraction for a label. Matching is exact
// after trimming surrounding whitespace.
func (t *Table) Threshold(label string) (decimal.Decimal, bool) {
	label = strings.TrimSpace(label)
	for _, g := range t.grades {
		if g.Label == label {
			return g.Min, true
		}
	}
	return decimal.Zero, false
}

// Matches reports whether key names this table by id or alias, ignoring case.
func (t *Table) Matches(key string) bool {
	key = strings.TrimSpace(key)
	if strings.EqualFold(t.ID, key) {
		return true
	}
	for _, a := range t.Aliases {
		if strings.EqualFold(a, key) {
			return true
		}
	}
	return false
}
