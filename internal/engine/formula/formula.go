// Package formula holds the level-driven point totals of the ruleset.
// Every function is total over levels 1-20; callers validate the level.
package formula

const (
	MinLevel = 1
	MaxLevel = 20

	baseHealthEnergy     = 18
	healthEnergyPerLevel = 12

	baseAbilityPoints   = 7
	abilityPointCadence = 3

	baseSkillPoints     = 2
	skillPointsPerLevel = 3

	baseTrainingPoints     = 22
	trainingPointsPerLevel = 2

	baseProficiencyPoints   = 2
	proficiencyPointCadence = 5

	// Ability ceilings: 3 at level 1, 4 from level 2, then +1 every
	// abilityCeilingCadence levels starting at level 4, topping out at 9.
	firstAbilityCeiling   = 3
	abilityCeilingCadence = 3
	maxAbilityCeiling     = 9

	defenseBonusOverLevel = 10
)

// HealthEnergyPoints is the pool split between health and energy.
func HealthEnergyPoints(level int) int {
	return baseHealthEnergy + healthEnergyPerLevel*(level-1)
}

// AbilityPoints gains one point at level 3 and every third level after.
func AbilityPoints(level int) int {
	return baseAbilityPoints + level/abilityPointCadence
}

// SkillPoints returns 2 + 3 per level.
func SkillPoints(level int) int {
	return baseSkillPoints + skillPointsPerLevel*level
}

// TrainingPoints scales with the character's highest archetype ability.
func TrainingPoints(level, highestArchetypeAbility int) int {
	a := highestArchetypeAbility
	return baseTrainingPoints + a + (trainingPointsPerLevel+a)*(level-1)
}

// ProficiencyPoints gains one point every fifth level.
func ProficiencyPoints(level int) int {
	return baseProficiencyPoints + level/proficiencyPointCadence
}

// MaxAbility is the highest value any ability score may reach at level.
func MaxAbility(level int) int {
	if level <= 1 {
		return firstAbilityCeiling
	}
	ceiling := firstAbilityCeiling + 1 + (level-1)/abilityCeilingCadence
	if ceiling > maxAbilityCeiling {
		return maxAbilityCeiling
	}
	return ceiling
}

// MaxDefenseBonus caps ability value plus allocated defense points.
func MaxDefenseBonus(level int) int {
	return level + defenseBonusOverLevel
}

// ValidLevel reports whether level is inside the supported range.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}
