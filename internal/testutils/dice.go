package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRoller satisfies the rpg-toolkit dice.Roller interface by
// returning preset values in order. It fails once the script runs out or
// when a value does not fit the requested die.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
}

// NewScriptedRoller returns a roller that yields values in order.
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Roll returns the next scripted value.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next(size)
}

// RollN returns the next count scripted values. Nothing is consumed when
// the script cannot cover the whole roll.
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if count > len(r.values) {
		return nil, fmt.Errorf("scripted roller: need %d values, have %d", count, len(r.values))
	}

	saved := r.values
	out := make([]int, count)
	for i := range out {
		v, err := r.next(size)
		if err != nil {
			r.values = saved
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Remaining is the number of unused values.
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func (r *ScriptedRoller) next(size int) (int, error) {
	if len(r.values) == 0 {
		return 0, fmt.Errorf("scripted roller: out of values")
	}
	v := r.values[0]
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted roller: %d does not fit d%d", v, size)
	}
	r.values = r.values[1:]
	return v, nil
}
