package character

import (
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Ability names one of the six core scores.
type Ability string

const (
	Strength     Ability = "strength"
	Vitality     Ability = "vitality"
	Agility      Ability = "agility"
	Acuity       Ability = "acuity"
	Intelligence Ability = "intelligence"
	Charisma     Ability = "charisma"
)

// Abilities lists the abilities in sheet order.
var Abilities = []Ability{Strength, Vitality, Agility, Acuity, Intelligence, Charisma}

var defenses = map[Ability]string{
	Strength:     "might",
	Vitality:     "fortitude",
	Agility:      "reflex",
	Acuity:       "discernment",
	Intelligence: "mental_fortitude",
	Charisma:     "resolve",
}

// Valid reports whether a is one of the six abilities.
func (a Ability) Valid() bool {
	_, ok := defenses[a]
	return ok
}

// Defense returns the name of the defense paired with the ability.
func (a Ability) Defense() string {
	return defenses[a]
}

// ParseAbility validates a raw ability name.
func ParseAbility(name string) (Ability, error) {
	a := Ability(name)
	if !a.Valid() {
		return "", errors.InvalidArgumentf("unknown ability %q", name)
	}
	return a, nil
}

// AbilityScores pairs the ancestry baseline with the current values.
type AbilityScores struct {
	Base    map[Ability]int `json:"base"`
	Current map[Ability]int `json:"current"`
}

// NewAbilityScores starts every current value at its base.
func NewAbilityScores(base map[Ability]int) AbilityScores {
	scores := AbilityScores{
		Base:    make(map[Ability]int, len(Abilities)),
		Current: make(map[Ability]int, len(Abilities)),
	}
	for _, a := range Abilities {
		scores.Base[a] = base[a]
		scores.Current[a] = base[a]
	}
	return scores
}

// Value returns the current value of a.
func (s AbilityScores) Value(a Ability) int {
	return s.Current[a]
}

// BaseValue returns the ancestry baseline of a.
func (s AbilityScores) BaseValue(a Ability) int {
	return s.Base[a]
}

// With returns a copy with the current value of a replaced.
func (s AbilityScores) With(a Ability, value int) AbilityScores {
	out := s.Clone()
	out.Current[a] = value
	return out
}

// Clone deep copies the score maps.
func (s AbilityScores) Clone() AbilityScores {
	out := AbilityScores{
		Base:    make(map[Ability]int, len(s.Base)),
		Current: make(map[Ability]int, len(s.Current)),
	}
	for a, v := range s.Base {
		out.Base[a] = v
	}
	for a, v := range s.Current {
		out.Current[a] = v
	}
	return out
}
