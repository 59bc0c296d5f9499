// Package numeric wraps shopspring/decimal with the fixed precision and
// rounding rules used across gradereach. No float64 arithmetic is done on
// weights, scores or sums.
package numeric

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places kept by every division.
const Precision int32 = 20

// DisplayPlaces is the number of decimal places shown to the user.
const DisplayPlaces int32 = 2

var (
	Zero    = decimal.Zero
	One     = decimal.NewFromInt(1)
	Hundred = decimal.NewFromInt(100)
)

var (
	numberPattern  = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)$`)
	percentPattern = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)%$`)
)

// Div divides a by b at Precision places. The caller must ensure b != 0.
func Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, Precision)
}

// IsNumber reports whether s is an unsigned decimal token such as "12", "0.5" or ".5".
func IsNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// IsPercent reports whether s is an unsigned decimal token followed by "%".
func IsPercent(s string) bool {
	return percentPattern.MatchString(s)
}

// ParseNumber parses an unsigned decimal token. Signs, exponents and
// surrounding text are rejected.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if !IsNumber(s) {
		return Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, false
	}
	return d, true
}

// ParseNumOrPercent parses "NN%" or a bare "NN" and divides by 100 in both
// cases, so "2.5" and "2.5%" both yield 0.025.
func ParseNumOrPercent(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if IsPercent(s) {
		s = strings.TrimSuffix(s, "%")
	}
	d, ok := ParseNumber(s)
	if !ok {
		return Zero, false
	}
	return Div(d, Hundred), true
}

// CeilPercent renders a fraction as a percentage rounded up to two places:
// 0.123456 becomes "12.35".
func CeilPercent(fraction decimal.Decimal) string {
	return Ceil2(fraction.Mul(Hundred))
}

// Ceil2 rounds d up to two places and formats it with exactly two places.
func Ceil2(d decimal.Decimal) string {
	return d.RoundCeil(DisplayPlaces).StringFixed(DisplayPlaces)
}

// Fixed2 formats d with two places using half-up rounding.
func Fixed2(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}

// Percent renders a fraction as a percentage with two places, half-up.
func Percent(fraction decimal.Decimal) string {
	return Fixed2(fraction.Mul(Hundred))
}
