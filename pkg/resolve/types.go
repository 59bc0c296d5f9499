// Package resolve implements the gradereach resolution engine. Given the
// assignments entered so far, a target and an "out of" denominator, it works
// out what is still needed on the remaining coursework and classifies the
// answer into one Outcome.
package resolve

import (
	"github.com/shopspring/decimal"

	"github.com/gradereach/gradereach/pkg/numeric"
)

// Kind classifies an Outcome.
type Kind string

const (
	// KindIncompleteInput: at least one row is still a stub.
	KindIncompleteInput Kind = "incomplete_input"
	// KindInvalidTarget: the target didn't parse or isn't in the grade table.
	KindInvalidTarget Kind = "invalid_target"
	// KindOverCommitted: the weights already add up to more than 100%.
	KindOverCommitted Kind = "over_committed"
	// KindAlreadyFinal: the weights add up to exactly 100%.
	KindAlreadyFinal Kind = "already_final"
	// KindAlreadyReached: the target is met whatever happens next.
	KindAlreadyReached Kind = "already_reached"
	// KindUnreachable: even full marks on the rest fall short.
	KindUnreachable Kind = "unreachable"
	// KindAchievable: a concrete result on the remaining weight is needed.
	KindAchievable Kind = "achievable"
)

// Outcome is the result of one resolution. Only the fields relevant to Kind
// are set; the rest are zero. Immutable once computed.
type Outcome struct {
	Kind   Kind   `json:"kind"`
	Target Target `json:"target"`

	Threshold          decimal.Decimal `json:"threshold,omitzero"`
	TotalWeight        decimal.Decimal `json:"total_weight,omitzero"`
	TotalAchieved      decimal.Decimal `json:"total_achieved,omitzero"`
	TotalWeightLeft    decimal.Decimal `json:"total_weight_left,omitzero"`
	Overage            decimal.Decimal `json:"overage,omitzero"`             // over_committed
	TheoreticalMaximum decimal.Decimal `json:"theoretical_maximum,omitzero"` // unreachable
	RequiredPercentage decimal.Decimal `json:"required_percentage,omitzero"` // achievable, unreachable
	RequiredAchieved   decimal.Decimal `json:"required_achieved,omitzero"`   // achievable, unreachable
	OutOf              decimal.Decimal `json:"out_of,omitzero"`
}

// Terminal reports whether the outcome carries no required result, i.e.
// anything other than Achievable.
func (o Outcome) Terminal() bool {
	return o.Kind != KindAchievable
}

// AchievedPercent is the total achieved so far as a percentage, rounded up.
func (o Outcome) AchievedPercent() string {
	return numeric.CeilPercent(o.TotalAchieved)
}

// RequiredPercent is the required share of the remaining weight, rounded up.
func (o Outcome) RequiredPercent() string {
	return numeric.CeilPercent(o.RequiredPercentage)
}

// RequiredAchievedStr is the required result expressed out of OutOf, rounded up.
func (o Outcome) RequiredAchievedStr() string {
	return numeric.Ceil2(o.RequiredAchieved)
}

// WeightLeftPercent is the remaining weight as a percentage, rounded up.
func (o Outcome) WeightLeftPercent() string {
	return numeric.CeilPercent(o.TotalWeightLeft)
}

// CompletedPercent is the total weight entered as a percentage.
func (o Outcome) CompletedPercent() string {
	return numeric.Percent(o.TotalWeight)
}

// MaximumPercent is the best possible final result, rounded up.
func (o Outcome) MaximumPercent() string {
	return numeric.CeilPercent(o.TheoreticalMaximum)
}

// AchievedGrade maps TotalAchieved through the target's grade table. It
// returns "" for percentage targets.
func (o Outcome) AchievedGrade() string {
	return o.gradeFor(o.TotalAchieved)
}

// MaxGrade maps TheoreticalMaximum through the target's grade table.
func (o Outcome) MaxGrade() string {
	return o.gradeFor(o.TheoreticalMaximum)
}

func (o Outcome) gradeFor(fraction decimal.Decimal) string {
	table := o.Target.Table()
	if table == nil {
		return ""
	}
	return table.Label(fraction)
}

// Equal compares two outcomes field by field.
func (o Outcome) Equal(other Outcome) bool {
	return o.Kind == other.Kind &&
		o.Target.Equal(other.Target) &&
		o.Threshold.Equal(other.Threshold) &&
		o.TotalWeight.Equal(other.TotalWeight) &&
		o.TotalAchieved.Equal(other.TotalAchieved) &&
		o.TotalWeightLeft.Equal(other.TotalWeightLeft) &&
		o.Overage.Equal(other.Overage) &&
		o.TheoreticalMaximum.Equal(other.TheoreticalMaximum) &&
		o.RequiredPercentage.Equal(other.RequiredPercentage) &&
		o.RequiredAchieved.Equal(other.RequiredAchieved) &&
		o.OutOf.Equal(other.OutOf)
}
