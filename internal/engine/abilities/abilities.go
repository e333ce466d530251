// Package abilities prices ability score changes and checks the score
// limits. Checks return verdicts; only caller bugs return errors.
package abilities

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/formula"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	// MinScore is the lowest any single score may go.
	MinScore = -2
	// NegativeSumCap bounds the sum of all scores below zero.
	NegativeSumCap = -3

	// Raising from a value of increaseStepUp or higher costs 2.
	increaseStepUp = 4
	// Lowering from a value of refundStepUp or higher refunds 2. Together
	// with increaseStepUp this makes every raise/lower pair cost-neutral.
	refundStepUp = 5
)

// Reason explains why a change was refused.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonAtCeiling         Reason = "at_ceiling"
	ReasonBelowMinimum      Reason = "below_minimum"
	ReasonNegativeSumCap    Reason = "negative_sum_cap"
	ReasonBelowAncestryBase Reason = "below_ancestry_base"
)

// IncreaseCheck is the verdict for raising a score by one.
type IncreaseCheck struct {
	Allowed bool
	Reason  Reason
	Cost    int
	// Remaining is the ability point balance after paying Cost. It may be
	// negative; overspend is reported through OverBudget, not refused.
	Remaining  int
	OverBudget bool
}

// DecreaseCheck is the verdict for lowering a score by one.
type DecreaseCheck struct {
	Allowed bool
	Reason  Reason
	Refund  int
}

// IncreaseCost is the price of raising a score from current to current+1.
func IncreaseCost(current int) int {
	if current < increaseStepUp {
		return 1
	}
	return 2
}

// DecreaseRefund is the points returned by lowering a score from current
// to current-1.
func DecreaseRefund(current int) int {
	if current < refundStepUp {
		return 1
	}
	return 2
}

// StepCost is the stepped price of moving a score from one value to another.
// Moving down yields a negative number.
func StepCost(from, to int) int {
	total := 0
	for v := from; v < to; v++ {
		total += IncreaseCost(v)
	}
	for v := from; v > to; v-- {
		total -= DecreaseRefund(v)
	}
	return total
}

// PointsSpent sums the stepped cost from base to current over every ability.
func PointsSpent(scores character.AbilityScores) int {
	total := 0
	for _, a := range character.Abilities {
		total += StepCost(scores.BaseValue(a), scores.Value(a))
	}
	return total
}

// NegativeSum adds up every score below zero.
func NegativeSum(scores character.AbilityScores) int {
	sum := 0
	for _, a := range character.Abilities {
		if v := scores.Value(a); v < 0 {
			sum += v
		}
	}
	return sum
}

// CanIncrease checks raising a by one at the given level. Only the level
// ceiling refuses the change; running out of points is flagged.
func CanIncrease(scores character.AbilityScores, a character.Ability, level int) (IncreaseCheck, error) {
	if err := checkArgs(a, level); err != nil {
		return IncreaseCheck{}, err
	}

	current := scores.Value(a)
	cost := IncreaseCost(current)
	remaining := formula.AbilityPoints(level) - PointsSpent(scores) - cost

	if current >= formula.MaxAbility(level) {
		return IncreaseCheck{Reason: ReasonAtCeiling, Cost: cost, Remaining: remaining + cost}, nil
	}

	return IncreaseCheck{
		Allowed:    true,
		Cost:       cost,
		Remaining:  remaining,
		OverBudget: remaining < 0,
	}, nil
}

// CanDecrease checks lowering a by one against the minimum score, a
// positive ancestry baseline and the shared negative-sum cap. The cap is
// evaluated against the scores as they are now, so edit order matters.
func CanDecrease(scores character.AbilityScores, a character.Ability) (DecreaseCheck, error) {
	if !a.Valid() {
		return DecreaseCheck{}, errors.InvalidArgumentf("unknown ability %q", a)
	}

	current := scores.Value(a)
	refund := DecreaseRefund(current)
	next := current - 1

	if next < MinScore {
		return DecreaseCheck{Reason: ReasonBelowMinimum, Refund: refund}, nil
	}
	if base := scores.BaseValue(a); base > 0 && next < base {
		return DecreaseCheck{Reason: ReasonBelowAncestryBase, Refund: refund}, nil
	}
	if NegativeSum(scores.With(a, next)) < NegativeSumCap {
		return DecreaseCheck{Reason: ReasonNegativeSumCap, Refund: refund}, nil
	}

	return DecreaseCheck{Allowed: true, Refund: refund}, nil
}

func checkArgs(a character.Ability, level int) error {
	if !a.Valid() {
		return errors.InvalidArgumentf("unknown ability %q", a)
	}
	if !formula.ValidLevel(level) {
		return errors.InvalidArgumentf("level %d outside %d-%d", level, formula.MinLevel, formula.MaxLevel)
	}
	return nil
}
