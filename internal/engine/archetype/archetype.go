// Package archetype derives a character's archetype from its proficiency
// counters and computes the innate energy and bonus feat progression that
// goes with it, including the milestone choices of mixed characters.
package archetype

import (
	"sort"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
)

// Type is the archetype classification.
type Type string

const (
	TypeNone    Type = "none"
	TypePower   Type = "power"
	TypeMartial Type = "martial"
	TypeMixed   Type = "mixed"
)

const (
	firstMilestone  = 4
	milestoneStride = 3

	powerBaseThreshold   = 8
	powerBasePools       = 2
	martialBaseFeats     = 2
	mixedBaseThreshold   = 6
	mixedBasePools       = 1
	mixedBaseFeats       = 1
	armamentUntrained    = 3
	armamentFirstRank    = 8
	armamentSecondRank   = 12
	armamentPerExtraRank = 3
)

// Classify is a pure function of the two counters.
func Classify(martialProf, powerProf int) Type {
	switch {
	case martialProf > 0 && powerProf > 0:
		return TypeMixed
	case powerProf > 0:
		return TypePower
	case martialProf > 0:
		return TypeMartial
	default:
		return TypeNone
	}
}

// steps counts the progression steps earned by level: one at 4, 7, 10, ...
func steps(level int) int {
	if level < firstMilestone {
		return 0
	}
	return (level - 1) / milestoneStride
}

// InnateThreshold is the power archetype's per-pool innate energy.
func InnateThreshold(level int) int {
	return powerBaseThreshold + steps(level)
}

// InnatePools is the power archetype's number of innate pools.
func InnatePools(level int) int {
	return powerBasePools + steps(level)
}

// BonusArchetypeFeats is the martial archetype's extra archetype feat slots.
func BonusArchetypeFeats(level int) int {
	return martialBaseFeats + steps(level)
}

// ArmamentProficiency is the armament budget granted by martial proficiency.
func ArmamentProficiency(martialProf int) int {
	switch {
	case martialProf <= 0:
		return armamentUntrained
	case martialProf == 1:
		return armamentFirstRank
	default:
		return armamentSecondRank + armamentPerExtraRank*(martialProf-2)
	}
}

// IsMilestone reports whether level is one of 4, 7, 10, ...
func IsMilestone(level int) bool {
	return level >= firstMilestone && (level-firstMilestone)%milestoneStride == 0
}

// Milestones lists the milestone levels reached by level, ascending.
func Milestones(level int) []int {
	var out []int
	for m := firstMilestone; m <= level; m += milestoneStride {
		out = append(out, m)
	}
	return out
}

// Progress is the archetype summary shown on the sheet.
type Progress struct {
	Type                Type  `json:"type"`
	InnateThreshold     int   `json:"innate_threshold"`
	InnatePools         int   `json:"innate_pools"`
	InnateEnergy        int   `json:"innate_energy"`
	BonusArchetypeFeats int   `json:"bonus_archetype_feats"`
	ArmamentProficiency int   `json:"armament_proficiency"`
	AvailableMilestones []int `json:"available_milestones,omitempty"`
}

// Compute derives the full progression for a character's counters, level
// and milestone choices. Choices are only read for mixed characters;
// unset milestones contribute nothing.
func Compute(level, martialProf, powerProf int, choices map[int]character.MilestoneChoice) Progress {
	p := Progress{
		Type:                Classify(martialProf, powerProf),
		ArmamentProficiency: ArmamentProficiency(martialProf),
	}

	switch p.Type {
	case TypePower:
		p.InnateThreshold = InnateThreshold(level)
		p.InnatePools = InnatePools(level)
	case TypeMartial:
		p.BonusArchetypeFeats = BonusArchetypeFeats(level)
	case TypeMixed:
		p.InnateThreshold = mixedBaseThreshold
		p.InnatePools = mixedBasePools
		p.BonusArchetypeFeats = mixedBaseFeats
		p.AvailableMilestones = Milestones(level)
		for _, m := range p.AvailableMilestones {
			switch choices[m] {
			case character.ChoiceInnate:
				p.InnateThreshold++
				p.InnatePools++
			case character.ChoiceFeat:
				p.BonusArchetypeFeats++
			}
		}
	}

	p.InnateEnergy = p.InnateThreshold * p.InnatePools
	return p
}

// Reason explains a refused milestone choice.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotMixed         Reason = "not_mixed"
	ReasonNotMilestone     Reason = "not_milestone"
	ReasonMilestoneTooHigh Reason = "milestone_above_level"
	ReasonInvalidChoice    Reason = "invalid_choice"
)

// ChoiceCheck is the verdict of ApplyMilestoneChoice.
type ChoiceCheck struct {
	Allowed bool
	Reason  Reason
}

// ApplyMilestoneChoice records choice at milestone and returns the new map.
// The input map is never modified; on refusal it is returned unchanged.
func ApplyMilestoneChoice(
	choices map[int]character.MilestoneChoice,
	level, milestone int,
	choice character.MilestoneChoice,
	martialProf, powerProf int,
) (map[int]character.MilestoneChoice, ChoiceCheck) {
	switch {
	case Classify(martialProf, powerProf) != TypeMixed:
		return choices, ChoiceCheck{Reason: ReasonNotMixed}
	case !IsMilestone(milestone):
		return choices, ChoiceCheck{Reason: ReasonNotMilestone}
	case milestone > level:
		return choices, ChoiceCheck{Reason: ReasonMilestoneTooHigh}
	case !choice.Valid():
		return choices, ChoiceCheck{Reason: ReasonInvalidChoice}
	}

	out := copyChoices(choices)
	out[milestone] = choice
	return out, ChoiceCheck{Allowed: true}
}

// PruneChoices drops entries that are no longer reachable: every entry when
// the character is not mixed, and any milestone above level otherwise. It
// returns the kept map and the levels that were dropped, ascending.
func PruneChoices(
	choices map[int]character.MilestoneChoice,
	level, martialProf, powerProf int,
) (map[int]character.MilestoneChoice, []int) {
	mixed := Classify(martialProf, powerProf) == TypeMixed

	out := make(map[int]character.MilestoneChoice, len(choices))
	var dropped []int
	for m, c := range choices {
		if mixed && IsMilestone(m) && m <= level && c.Valid() {
			out[m] = c
			continue
		}
		dropped = append(dropped, m)
	}
	sort.Ints(dropped)
	return out, dropped
}

func copyChoices(in map[int]character.MilestoneChoice) map[int]character.MilestoneChoice {
	out := make(map[int]character.MilestoneChoice, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
