package budget

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/formula"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	// proficientBaseSkillCost is charged once per proficient base skill.
	proficientBaseSkillCost = 1
	// DefensePointCost is the skill point price of one defense allocation.
	DefensePointCost = 2
	// SkillRankCost is the skill point price of one point of skill value.
	SkillRankCost = 1
)

// Reason explains a refused skill or defense change.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonBaseNotProficient Reason = "base_skill_not_proficient"
	ReasonNotProficient     Reason = "skill_not_proficient"
	ReasonAtMinimum         Reason = "at_minimum"
	ReasonDefenseCeiling    Reason = "defense_ceiling"
)

// Check is a soft verdict.
type Check struct {
	Allowed bool
	Reason  Reason
	Cost    int
}

// SkillSpend is the skill point spend of skills and defense allocations.
// Non-proficient skills cost nothing.
func SkillSpend(skills []character.Skill, defenses map[character.Ability]int) int {
	spent := 0
	for _, s := range skills {
		if !s.Proficient {
			continue
		}
		spent += s.Value
		if !s.IsSubSkill() {
			spent += proficientBaseSkillCost
		}
	}
	for _, alloc := range defenses {
		spent += DefensePointCost * alloc
	}
	return spent
}

// CanSetProficient checks making the named skill proficient. Sub-skills need
// a proficient base skill. An unknown name is a caller bug.
func CanSetProficient(skills []character.Skill, name string) (Check, error) {
	i := indexOf(skills, name)
	if i < 0 {
		return Check{}, errors.NotFoundf("unknown skill %q", name)
	}

	s := skills[i]
	if !s.IsSubSkill() {
		return Check{Allowed: true, Cost: proficientBaseSkillCost}, nil
	}

	base := indexOf(skills, s.BaseSkill)
	if base < 0 || !skills[base].Proficient {
		return Check{Reason: ReasonBaseNotProficient}, nil
	}
	return Check{Allowed: true}, nil
}

// CanIncreaseSkill checks raising the named skill's value by one. Only a
// proficient skill takes points, and a sub-skill also needs its base skill
// proficient. Running over the skill point budget is not a refusal.
func CanIncreaseSkill(skills []character.Skill, name string) (Check, error) {
	i := indexOf(skills, name)
	if i < 0 {
		return Check{}, errors.NotFoundf("unknown skill %q", name)
	}

	s := skills[i]
	if !s.Proficient {
		return Check{Reason: ReasonNotProficient, Cost: SkillRankCost}, nil
	}
	if s.IsSubSkill() {
		base := indexOf(skills, s.BaseSkill)
		if base < 0 || !skills[base].Proficient {
			return Check{Reason: ReasonBaseNotProficient, Cost: SkillRankCost}, nil
		}
	}
	return Check{Allowed: true, Cost: SkillRankCost}, nil
}

// CanDecreaseSkill checks lowering the named skill's value by one. Values
// stop at zero.
func CanDecreaseSkill(skills []character.Skill, name string) (Check, error) {
	i := indexOf(skills, name)
	if i < 0 {
		return Check{}, errors.NotFoundf("unknown skill %q", name)
	}

	if skills[i].Value <= 0 {
		return Check{Reason: ReasonAtMinimum}, nil
	}
	return Check{Allowed: true}, nil
}

// ReconcileSkills is the pass run after any proficiency change: sub-skills
// whose base skill is not proficient are made non-proficient with value 0.
// It returns a new slice and the names of the skills it reset.
func ReconcileSkills(skills []character.Skill) ([]character.Skill, []string) {
	proficientBase := make(map[string]bool, len(skills))
	for _, s := range skills {
		if !s.IsSubSkill() && s.Proficient {
			proficientBase[s.Name] = true
		}
	}

	out := make([]character.Skill, len(skills))
	var reset []string
	for i, s := range skills {
		if s.IsSubSkill() && !proficientBase[s.BaseSkill] && (s.Proficient || s.Value != 0) {
			s.Proficient = false
			s.Value = 0
			reset = append(reset, s.Name)
		}
		out[i] = s
	}
	return out, reset
}

// CanIncreaseDefense checks adding one allocation point to the defense
// paired with a. Ability value plus allocation may not pass level + 10.
func CanIncreaseDefense(
	scores character.AbilityScores,
	defenses map[character.Ability]int,
	a character.Ability,
	level int,
) (Check, error) {
	if !a.Valid() {
		return Check{}, errors.InvalidArgumentf("unknown ability %q", a)
	}

	bonus := scores.Value(a) + defenses[a] + 1
	if bonus > formula.MaxDefenseBonus(level) {
		return Check{Reason: ReasonDefenseCeiling, Cost: DefensePointCost}, nil
	}
	return Check{Allowed: true, Cost: DefensePointCost}, nil
}

func indexOf(skills []character.Skill, name string) int {
	for i, s := range skills {
		if s.Name == name {
			return i
		}
	}
	return -1
}
