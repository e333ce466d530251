package dice

import (
	"time"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

// CritAdjustment is added on a critical success and subtracted on a fumble.
const CritAdjustment = 2

const (
	MessageCriticalSuccess = "Critical success! +2"
	MessageCriticalFumble  = "Critical fumble! -2"
)

// Kind labels what a roll was for.
type Kind string

const (
	KindCustom  Kind = "custom"
	KindAttack  Kind = "attack"
	KindDamage  Kind = "damage"
	KindSkill   Kind = "skill"
	KindAbility Kind = "ability"
	KindDefense Kind = "defense"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCustom, KindAttack, KindDamage, KindSkill, KindAbility, KindDefense:
		return true
	}
	return false
}

// DieResult is one drawn die with flags for rendering.
type DieResult struct {
	Sides int  `json:"sides"`
	Value int  `json:"value"`
	Max   bool `json:"max,omitempty"`
	Min   bool `json:"min,omitempty"`
}

// Entry is one completed roll.
type Entry struct {
	ID              string      `json:"id"`
	Kind            Kind        `json:"kind"`
	Label           string      `json:"label,omitempty"`
	Dice            []DieResult `json:"dice"`
	Modifier        int         `json:"modifier"`
	Total           int         `json:"total"`
	CriticalSuccess bool        `json:"critical_success,omitempty"`
	CriticalFumble  bool        `json:"critical_fumble,omitempty"`
	Message         string      `json:"message,omitempty"`
	DamageType      string      `json:"damage_type,omitempty"`
	RolledAt        time.Time   `json:"rolled_at"`
}

// Config holds the dependencies for the roller
type Config struct {
	Roller      toolkitdice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Roller turns pools and expressions into entries.
type Roller struct {
	rng   toolkitdice.Roller
	idGen idgen.Generator
	clock clock.Clock
}

// NewRoller creates a roller with the provided dependencies
func NewRoller(cfg *Config) (*Roller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Roller{
		rng:   cfg.Roller,
		idGen: cfg.IDGenerator,
		clock: cfg.Clock,
	}, nil
}

// RollPool rolls every die in the pool. An empty pool is not rolled and
// yields a nil entry.
func (r *Roller) RollPool(pool Pool, kind Kind, label string) (*Entry, error) {
	if err := pool.Validate(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, errors.InvalidArgumentf("unknown roll kind %q", kind)
	}
	if pool.Empty() {
		return nil, nil
	}

	var results []DieResult
	for _, d := range Dice {
		drawn, err := r.draw(pool.Counts[d], int(d))
		if err != nil {
			return nil, err
		}
		results = append(results, drawn...)
	}

	entry := r.newEntry(kind, label, results, pool.Modifier)
	if pool.Counts[D20] == 1 {
		applyCrit(entry, d20Value(results))
	}
	return entry, nil
}

// RollCheck rolls a single d20 plus bonus under the crit rule.
func (r *Roller) RollCheck(kind Kind, label string, bonus int) (*Entry, error) {
	if !kind.Valid() {
		return nil, errors.InvalidArgumentf("unknown roll kind %q", kind)
	}

	results, err := r.draw(1, int(D20))
	if err != nil {
		return nil, err
	}

	entry := r.newEntry(kind, label, results, bonus)
	applyCrit(entry, results[0].Value)
	return entry, nil
}

// RollDamage rolls a damage expression plus an external bonus. Damage is
// never critical.
func (r *Roller) RollDamage(d Damage, label string, bonus int) (*Entry, error) {
	if d.Count <= 0 || d.Sides <= 0 || d.Count > MaxDamageDice {
		return nil, errors.InvalidArgumentf("invalid damage expression %q", d.String())
	}

	results, err := r.draw(d.Count, d.Sides)
	if err != nil {
		return nil, err
	}

	entry := r.newEntry(KindDamage, label, results, d.Modifier+bonus)
	entry.DamageType = d.Type
	return entry, nil
}

func (r *Roller) draw(count, sides int) ([]DieResult, error) {
	if count == 0 {
		return nil, nil
	}

	values, err := r.rng.RollN(count, sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", count, sides)
	}

	out := make([]DieResult, len(values))
	for i, v := range values {
		out[i] = DieResult{Sides: sides, Value: v, Max: v == sides, Min: v == 1}
	}
	return out, nil
}

func (r *Roller) newEntry(kind Kind, label string, results []DieResult, modifier int) *Entry {
	total := modifier
	for _, d := range results {
		total += d.Value
	}
	return &Entry{
		ID:       r.idGen.Generate(),
		Kind:     kind,
		Label:    label,
		Dice:     results,
		Modifier: modifier,
		Total:    total,
		RolledAt: r.clock.Now(),
	}
}

func applyCrit(e *Entry, d20 int) {
	switch d20 {
	case int(D20):
		e.CriticalSuccess = true
		e.Total += CritAdjustment
		e.Message = MessageCriticalSuccess
	case 1:
		e.CriticalFumble = true
		e.Total -= CritAdjustment
		e.Message = MessageCriticalFumble
	}
}

func d20Value(results []DieResult) int {
	for _, d := range results {
		if d.Sides == int(D20) {
			return d.Value
		}
	}
	return 0
}
