package assignment

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gradereach/gradereach/pkg/numeric"
)

// Weight is the fraction of the course an assignment is worth.
//
// A weight string is always read in percentage units: "2.5", "2.5%" and
// "2.50" all mean 0.025. A bare "0.025" therefore means 0.025%, not 2.5%.
type Weight struct {
	value decimal.Decimal
	raw   string
}

// ParseWeight parses a weight string. It does not check the range; see Valid.
func ParseWeight(s string) (Weight, bool) {
	s = strings.TrimSpace(s)
	v, ok := numeric.ParseNumOrPercent(s)
	if !ok {
		return Weight{}, false
	}
	return Weight{value: v, raw: s}, true
}

// Fraction returns the weight as a fraction of the whole course.
func (w Weight) Fraction() decimal.Decimal { return w.value }

// String returns the weight as originally entered.
func (w Weight) String() string { return w.raw }

// Valid reports whether the weight lies in [0, 1). A single assignment can't
// be worth the whole course.
func (w Weight) Valid() bool {
	return w.value.Sign() >= 0 && w.value.LessThan(numeric.One)
}
