package resolve

import (
	"github.com/shopspring/decimal"

	"github.com/gradereach/gradereach/pkg/assignment"
	"github.com/gradereach/gradereach/pkg/numeric"
)

// Resolve classifies the current input. It is a pure function of its
// arguments and is recomputed from scratch on every change.
//
// Add placeholders are skipped. Any stub row makes the whole input
// incomplete before the target is even looked at.
func Resolve(rows []assignment.Assignment, target Target, outOf decimal.Decimal) Outcome {
	if outOf.Sign() <= 0 {
		outOf = DefaultOutOf
	}
	out := Outcome{Target: target, OutOf: outOf}

	valid := make([]assignment.Assignment, 0, len(rows))
	for _, a := range rows {
		switch a.Kind() {
		case assignment.KindAdd:
			continue
		case assignment.KindValid:
			valid = append(valid, a)
		default:
			out.Kind = KindIncompleteInput
			return out
		}
	}

	threshold, ok := target.Threshold()
	if !ok {
		out.Kind = KindInvalidTarget
		return out
	}
	out.Threshold = threshold

	totalWeight, totalAchieved := sums(valid)
	out.TotalWeight = totalWeight
	out.TotalAchieved = totalAchieved

	left := numeric.One.Sub(totalWeight)
	out.TotalWeightLeft = left
	switch left.Sign() {
	case -1:
		out.Kind = KindOverCommitted
		out.Overage = left.Neg()
		return out
	case 0:
		out.Kind = KindAlreadyFinal
		return out
	}

	required := numeric.Div(threshold.Sub(totalAchieved), left)
	out.RequiredPercentage = required
	out.RequiredAchieved = required.Mul(outOf)

	switch {
	case required.Sign() <= 0:
		out.Kind = KindAlreadyReached
		out.RequiredPercentage = decimal.Zero
		out.RequiredAchieved = decimal.Zero
	case required.GreaterThan(numeric.One):
		out.Kind = KindUnreachable
		out.TheoreticalMaximum = totalAchieved.Add(left)
	default:
		out.Kind = KindAchievable
	}
	return out
}

// sums returns the total weight and the weighted achieved total.
func sums(rows []assignment.Assignment) (weight, achieved decimal.Decimal) {
	weight, achieved = decimal.Zero, decimal.Zero
	for _, a := range rows {
		w, _ := a.Weight()
		s, _ := a.Score()
		weight = weight.Add(w.Fraction())
		achieved = achieved.Add(s.Fraction().Mul(w.Fraction()))
	}
	return weight, achieved
}
