package budget

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/formula"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Input is everything the validator prices. Training entries and the
// archetype feat bonus are resolved by the caller.
type Input struct {
	Level     int
	Abilities character.AbilityScores
	Defenses  map[character.Ability]int
	Skills    []character.Skill
	Training  []TrainingEntry
	Feats     []character.Feat

	HighestArchetypeAbility int
	MartialProficiency      int
	PowerProficiency        int
	BonusArchetypeFeats     int

	HealthEnergy character.HealthEnergy
}

// Report holds every pool plus the visible training lines.
type Report struct {
	Pools    map[Category]Pool `json:"pools"`
	Training []PricedEntry     `json:"training,omitempty"`
}

// OverBudget lists the categories currently overspent, in display order.
func (r *Report) OverBudget() []Category {
	var out []Category
	for _, c := range Categories {
		if p, ok := r.Pools[c]; ok && p.State == StateOverBudget {
			out = append(out, c)
		}
	}
	return out
}

// Evaluate prices every budget.
func Evaluate(in Input) (*Report, error) {
	if !formula.ValidLevel(in.Level) {
		return nil, errors.InvalidArgumentf("level %d outside %d-%d", in.Level, formula.MinLevel, formula.MaxLevel)
	}

	trainingSpent, trainingLines := TrainingSpend(in.Training)

	archetypeFeats, characterFeats := 0, 0
	for _, f := range in.Feats {
		if f.Kind == character.FeatArchetype {
			archetypeFeats++
		} else {
			characterFeats++
		}
	}

	pools := map[Category]Pool{
		CategoryAbilityPoints: NewPool(
			formula.AbilityPoints(in.Level),
			abilities.PointsSpent(in.Abilities),
		),
		CategorySkillPoints: NewPool(
			formula.SkillPoints(in.Level),
			SkillSpend(in.Skills, in.Defenses),
		),
		CategoryTrainingPoints: NewPool(
			formula.TrainingPoints(in.Level, in.HighestArchetypeAbility),
			trainingSpent,
		),
		CategoryProficiencyPoints: NewPool(
			formula.ProficiencyPoints(in.Level),
			in.MartialProficiency+in.PowerProficiency,
		),
		CategoryArchetypeFeats: NewPool(in.Level+in.BonusArchetypeFeats, archetypeFeats),
		CategoryCharacterFeats: NewPool(in.Level, characterFeats),
		CategoryHealthEnergy: NewPool(
			formula.HealthEnergyPoints(in.Level),
			in.HealthEnergy.Health+in.HealthEnergy.Energy,
		),
	}

	return &Report{Pools: pools, Training: trainingLines}, nil
}
