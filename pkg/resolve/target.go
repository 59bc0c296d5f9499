package resolve

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gradereach/gradereach/pkg/grades"
	"github.com/gradereach/gradereach/pkg/numeric"
)

// TargetMode says how the target text is read.
type TargetMode string

const (
	ModePercentage TargetMode = "percentage"
	ModeGrade      TargetMode = "grade"
)

// DefaultOutOf is used when the "out of" input is missing or unusable.
var DefaultOutOf = decimal.NewFromInt(100)

// Target is what the student wants to reach: a percentage such as "80" or
// "80%", or a grade label looked up in a table.
type Target struct {
	Mode    TargetMode `json:"mode"`
	Raw     string     `json:"raw"`
	TableID string     `json:"table,omitempty"`

	table *grades.Table
}

// PercentTarget reads raw as a percentage.
func PercentTarget(raw string) Target {
	return Target{Mode: ModePercentage, Raw: raw}
}

// GradeTarget reads raw as a label in table.
func GradeTarget(raw string, table *grades.Table) Target {
	t := Target{Mode: ModeGrade, Raw: raw, table: table}
	if table != nil {
		t.TableID = table.ID
	}
	return t
}

// Table returns the grade table of a grade target, or nil.
func (t Target) Table() *grades.Table {
	return t.table
}

// Text is the target as the user typed it, trimmed.
func (t Target) Text() string {
	return strings.TrimSpace(t.Raw)
}

// Threshold converts the target into a fraction of the whole course.
func (t Target) Threshold() (decimal.Decimal, bool) {
	switch t.Mode {
	case ModePercentage:
		return numeric.ParseNumOrPercent(t.Raw)
	case ModeGrade:
		if t.table == nil {
			return decimal.Zero, false
		}
		return t.table.Threshold(t.Raw)
	default:
		return decimal.Zero, false
	}
}

// Equal compares mode, text and table.
func (t Target) Equal(o Target) bool {
	return t.Mode == o.Mode && t.Raw == o.Raw && t.TableID == o.TableID
}

// ParseOutOf reads the "out of" denominator. Anything that isn't a positive
// number falls back to DefaultOutOf.
func ParseOutOf(raw string) decimal.Decimal {
	d, ok := numeric.ParseNumber(raw)
	if !ok || d.Sign() <= 0 {
		return DefaultOutOf
	}
	return d
}
