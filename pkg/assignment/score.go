package assignment

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gradereach/gradereach/pkg/numeric"
)

var fractionPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?|\.\d+)\s*/\s*(\d+(?:\.\d+)?|\.\d+)$`)

// ScoreForm records which surface grammar a score was written in.
type ScoreForm int

const (
	FormFraction ScoreForm = iota // "49/50"
	FormPercent                   // "98%"
	FormNumber                    // "0.98"
)

// Score is an achieved fraction parsed from user input. The original text is
// kept so that "45/50" and "0.9" stay distinguishable.
type Score struct {
	value decimal.Decimal
	form  ScoreForm
	raw   string
}

// ParseScore parses a score string. The first matching grammar wins:
// "a/b" with b > 0, "NN%", then a bare number taken as the fraction itself.
// Values above 1 are accepted.
func ParseScore(s string) (Score, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Score{}, false
	}

	if m := fractionPattern.FindStringSubmatch(s); m != nil {
		num, ok := numeric.ParseNumber(m[1])
		if !ok {
			return Score{}, false
		}
		den, ok := numeric.ParseNumber(m[2])
		if !ok || den.Sign() <= 0 {
			return Score{}, false
		}
		return Score{value: numeric.Div(num, den), form: FormFraction, raw: s}, true
	}

	if numeric.IsPercent(s) {
		n, ok := numeric.ParseNumber(strings.TrimSuffix(s, "%"))
		if !ok {
			return Score{}, false
		}
		return Score{value: numeric.Div(n, numeric.Hundred), form: FormPercent, raw: s}, true
	}

	if n, ok := numeric.ParseNumber(s); ok {
		return Score{value: n, form: FormNumber, raw: s}, true
	}

	return Score{}, false
}

// Fraction returns the achieved fraction.
func (s Score) Fraction() decimal.Decimal { return s.value }

// Form returns the grammar the score was written in.
func (s Score) Form() ScoreForm { return s.form }

// String returns the score as originally entered.
func (s Score) String() string { return s.raw }

// Equal is change detection, not numeric equivalence: both the fraction and
// the original text must match.
func (s Score) Equal(o Score) bool {
	return s.raw == o.raw && s.form == o.form && s.value.Equal(o.value)
}
