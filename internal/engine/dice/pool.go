// Package dice rolls dice pools, d20 checks and damage expressions into
// log entries. A lone d20 showing its maximum or minimum adjusts the total
// by two; no other roll is ever critical.
package dice

import (
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Die is a die type named by its number of sides.
type Die int

const (
	D4  Die = 4
	D6  Die = 6
	D8  Die = 8
	D10 Die = 10
	D12 Die = 12
	D20 Die = 20
)

// Dice lists the pool's die types in roll order.
var Dice = []Die{D4, D6, D8, D10, D12, D20}

// MaxPerDie is the soft ceiling on each die count.
const MaxPerDie = 20

// Valid reports whether d is one of the pool's die types.
func (d Die) Valid() bool {
	for _, known := range Dice {
		if d == known {
			return true
		}
	}
	return false
}

// Pool is a set of die counts plus a flat modifier.
type Pool struct {
	Counts   map[Die]int `json:"counts"`
	Modifier int         `json:"modifier"`
}

// NewPool returns an empty pool.
func NewPool() Pool {
	return Pool{Counts: make(map[Die]int, len(Dice))}
}

// Increment adds one die of type d, stopping at MaxPerDie. It reports
// whether the count changed.
func (p *Pool) Increment(d Die) (bool, error) {
	if !d.Valid() {
		return false, errors.InvalidArgumentf("unsupported die d%d", d)
	}
	if p.Counts == nil {
		p.Counts = make(map[Die]int, len(Dice))
	}
	if p.Counts[d] >= MaxPerDie {
		return false, nil
	}
	p.Counts[d]++
	return true, nil
}

// Decrement removes one die of type d, stopping at zero.
func (p *Pool) Decrement(d Die) (bool, error) {
	if !d.Valid() {
		return false, errors.InvalidArgumentf("unsupported die d%d", d)
	}
	if p.Counts[d] <= 0 {
		return false, nil
	}
	p.Counts[d]--
	return true, nil
}

// AdjustModifier shifts the modifier by delta. It is unbounded.
func (p *Pool) AdjustModifier(delta int) {
	p.Modifier += delta
}

// Size is the number of dice in the pool.
func (p Pool) Size() int {
	n := 0
	for _, d := range Dice {
		n += p.Counts[d]
	}
	return n
}

// Empty reports whether the pool holds no dice.
func (p Pool) Empty() bool {
	return p.Size() == 0
}

// Validate rejects unknown die types and counts outside 0..MaxPerDie.
func (p Pool) Validate() error {
	for d, n := range p.Counts {
		if !d.Valid() {
			return errors.InvalidArgumentf("unsupported die d%d", d)
		}
		if n < 0 || n > MaxPerDie {
			return errors.InvalidArgumentf("d%d count %d outside 0-%d", d, n, MaxPerDie)
		}
	}
	return nil
}
