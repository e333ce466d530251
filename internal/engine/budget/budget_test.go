package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func TestNewPoolStates(t *testing.T) {
	tests := []struct {
		name  string
		total int
		spent int
		want  budget.State
	}{
		{name: "over", total: 7, spent: 9, want: budget.StateOverBudget},
		{name: "left", total: 7, spent: 3, want: budget.StateHasPoints},
		{name: "exact", total: 7, spent: 7, want: budget.StateNoPoints},
		{name: "empty", total: 0, spent: 0, want: budget.StateNoPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := budget.NewPool(tt.total, tt.spent)
			assert.Equal(t, tt.want, p.State)
			assert.Equal(t, tt.total-tt.spent, p.Remaining)
		})
	}
}

type SkillsTestSuite struct {
	suite.Suite
	skills []character.Skill
}

func TestSkillsSuite(t *testing.T) {
	suite.Run(t, new(SkillsTestSuite))
}

func (s *SkillsTestSuite) SetupTest() {
	s.skills = []character.Skill{
		{Name: "Athletics", Proficient: true, Value: 2},
		{Name: "Climbing", BaseSkill: "Athletics", Proficient: true, Value: 1},
		{Name: "Insight", Proficient: false, Value: 3},
		{Name: "Lore", Proficient: false},
		{Name: "History", BaseSkill: "Lore", Proficient: true, Value: 2},
	}
}

func (s *SkillsTestSuite) TestSkillSpend() {
	defenses := map[character.Ability]int{character.Vitality: 1}

	// Athletics 2+1, Climbing 1, History 2, Insight ignored, 2 per defense point.
	s.Equal(8, budget.SkillSpend(s.skills, defenses))
	s.Equal(6, budget.SkillSpend(s.skills, nil))
}

func (s *SkillsTestSuite) TestCanSetProficientBaseSkill() {
	check, err := budget.CanSetProficient(s.skills, "Insight")
	s.Require().NoError(err)
	s.True(check.Allowed)
	s.Equal(1, check.Cost)
}

func (s *SkillsTestSuite) TestCanSetProficientSubSkill() {
	check, err := budget.CanSetProficient(s.skills, "Climbing")
	s.Require().NoError(err)
	s.True(check.Allowed)

	check, err = budget.CanSetProficient(s.skills, "History")
	s.Require().NoError(err)
	s.False(check.Allowed)
	s.Equal(budget.ReasonBaseNotProficient, check.Reason)
}

func (s *SkillsTestSuite) TestCanSetProficientUnknown() {
	_, err := budget.CanSetProficient(s.skills, "Juggling")
	s.True(errors.IsNotFound(err))
}

func (s *SkillsTestSuite) TestCanIncreaseSkill() {
	check, err := budget.CanIncreaseSkill(s.skills, "Climbing")
	s.Require().NoError(err)
	s.True(check.Allowed)
	s.Equal(budget.SkillRankCost, check.Cost)

	check, err = budget.CanIncreaseSkill(s.skills, "Lore")
	s.Require().NoError(err)
	s.False(check.Allowed)
	s.Equal(budget.ReasonNotProficient, check.Reason)

	// History is proficient but Lore is not
	check, err = budget.CanIncreaseSkill(s.skills, "History")
	s.Require().NoError(err)
	s.False(check.Allowed)
	s.Equal(budget.ReasonBaseNotProficient, check.Reason)

	_, err = budget.CanIncreaseSkill(s.skills, "Juggling")
	s.True(errors.IsNotFound(err))
}

func (s *SkillsTestSuite) TestCanDecreaseSkill() {
	check, err := budget.CanDecreaseSkill(s.skills, "Athletics")
	s.Require().NoError(err)
	s.True(check.Allowed)

	check, err = budget.CanDecreaseSkill(s.skills, "Lore")
	s.Require().NoError(err)
	s.False(check.Allowed)
	s.Equal(budget.ReasonAtMinimum, check.Reason)

	_, err = budget.CanDecreaseSkill(s.skills, "Juggling")
	s.True(errors.IsNotFound(err))
}

func (s *SkillsTestSuite) TestReconcileSkills() {
	out, reset := budget.ReconcileSkills(s.skills)

	s.Equal([]string{"History"}, reset)
	s.False(out[4].Proficient)
	s.Equal(0, out[4].Value)
	s.True(out[1].Proficient, "sub-skill of a proficient base is kept")

	// input untouched
	s.True(s.skills[4].Proficient)
}

func (s *SkillsTestSuite) TestReconcileAfterBaseDropped() {
	s.skills[0].Proficient = false

	out, reset := budget.ReconcileSkills(s.skills)
	s.ElementsMatch([]string{"Climbing", "History"}, reset)

	again, none := budget.ReconcileSkills(out)
	s.Empty(none)
	s.Equal(out, again)
}

func (s *SkillsTestSuite) TestCanIncreaseDefense() {
	scores := character.NewAbilityScores(nil).With(character.Agility, 3)

	check, err := budget.CanIncreaseDefense(scores, map[character.Ability]int{character.Agility: 7}, character.Agility, 1)
	s.Require().NoError(err)
	s.True(check.Allowed, "3+8 reaches the ceiling of 11")
	s.Equal(budget.DefensePointCost, check.Cost)

	check, err = budget.CanIncreaseDefense(scores, map[character.Ability]int{character.Agility: 8}, character.Agility, 1)
	s.Require().NoError(err)
	s.False(check.Allowed)
	s.Equal(budget.ReasonDefenseCeiling, check.Reason)

	_, err = budget.CanIncreaseDefense(scores, nil, character.Ability("luck"), 1)
	s.True(errors.IsInvalidArgument(err))
}

func TestTrainingCostFloors(t *testing.T) {
	e := budget.TrainingEntry{
		Name:         "Damage",
		BaseCost:     1,
		OptionCosts:  [3]float64{1, 0.5, 0},
		OptionLevels: [3]int{2, 1, 4},
	}
	// 1 + 2 + 0.5 = 3.5
	assert.Equal(t, 3, e.Cost())
}

func TestTrainingSpendDedupAndVisibility(t *testing.T) {
	entries := []budget.TrainingEntry{
		{Name: "Damage", BaseCost: 1, OptionCosts: [3]float64{1, 0.5, 0}, OptionLevels: [3]int{1, 2, 0}},
		{Name: "Range", BaseCost: 0, OptionCosts: [3]float64{0.5, 0, 0}, OptionLevels: [3]int{1, 0, 0}},
		{Name: "Damage", BaseCost: 1, OptionCosts: [3]float64{1, 0.5, 0}, OptionLevels: [3]int{3, 0, 0}},
		{Name: "Reach", BaseCost: 1, OptionCosts: [3]float64{1, 0, 0}},
	}

	deduped := budget.DedupTraining(entries)
	require.Len(t, deduped, 3)
	assert.Equal(t, [3]int{3, 2, 0}, deduped[0].OptionLevels)

	spent, visible := budget.TrainingSpend(entries)
	// Damage 1+3+1 = 5, Range floor(0.5) = 0 hidden, Reach 1
	assert.Equal(t, 6, spent)
	assert.Equal(t, []budget.PricedEntry{
		{Name: "Damage", Cost: 5},
		{Name: "Reach", Cost: 1},
	}, visible)
}

func TestDedupTrainingKeepsDifferentlyPricedParts(t *testing.T) {
	entries := []budget.TrainingEntry{
		{Name: "Damage", BaseCost: 1, OptionCosts: [3]float64{1, 0, 0}, OptionLevels: [3]int{1, 0, 0}},
		{Name: "Damage", BaseCost: 4, OptionCosts: [3]float64{2, 0, 0}, OptionLevels: [3]int{1, 0, 0}},
		{Name: "Damage", BaseCost: 1, OptionCosts: [3]float64{1, 0, 0}, OptionLevels: [3]int{2, 0, 0}},
	}

	deduped := budget.DedupTraining(entries)
	require.Len(t, deduped, 2)
	assert.Equal(t, 1.0, deduped[0].BaseCost)
	assert.Equal(t, [3]int{2, 0, 0}, deduped[0].OptionLevels)
	assert.Equal(t, 4.0, deduped[1].BaseCost)

	spent, visible := budget.TrainingSpend(entries)
	// 1+2 for the catalog record, 4+2 for the homebrew one
	assert.Equal(t, 9, spent)
	assert.Equal(t, []budget.PricedEntry{
		{Name: "Damage", Cost: 3},
		{Name: "Damage", Cost: 6},
	}, visible)
}

func TestEvaluate(t *testing.T) {
	scores := character.NewAbilityScores(map[character.Ability]int{character.Vitality: 1}).
		With(character.Strength, 4).
		With(character.Agility, 2)

	in := budget.Input{
		Level:     1,
		Abilities: scores,
		Defenses:  map[character.Ability]int{character.Strength: 1},
		Skills: []character.Skill{
			{Name: "Athletics", Proficient: true, Value: 1},
		},
		Training: []budget.TrainingEntry{
			{Name: "Damage", BaseCost: 1, OptionCosts: [3]float64{1, 0, 0}, OptionLevels: [3]int{2, 0, 0}},
		},
		Feats: []character.Feat{
			{Name: "Tough", Kind: character.FeatCharacter},
			{Name: "Brawler", Kind: character.FeatArchetype},
			{Name: "Shield Master", Kind: character.FeatArchetype},
		},
		HighestArchetypeAbility: 4,
		MartialProficiency:      2,
		BonusArchetypeFeats:     0,
		HealthEnergy:            character.HealthEnergy{Health: 10, Energy: 10},
	}

	report, err := budget.Evaluate(in)
	require.NoError(t, err)

	// strength 0->4 costs 4, agility 0->2 costs 2, vitality sits at its base
	assert.Equal(t, budget.Pool{Total: 7, Spent: 6, Remaining: 1, State: budget.StateHasPoints},
		report.Pools[budget.CategoryAbilityPoints])
	assert.Equal(t, budget.Pool{Total: 5, Spent: 4, Remaining: 1, State: budget.StateHasPoints},
		report.Pools[budget.CategorySkillPoints])
	assert.Equal(t, budget.Pool{Total: 26, Spent: 3, Remaining: 23, State: budget.StateHasPoints},
		report.Pools[budget.CategoryTrainingPoints])
	assert.Equal(t, budget.Pool{Total: 2, Spent: 2, Remaining: 0, State: budget.StateNoPoints},
		report.Pools[budget.CategoryProficiencyPoints])
	assert.Equal(t, budget.Pool{Total: 1, Spent: 2, Remaining: -1, State: budget.StateOverBudget},
		report.Pools[budget.CategoryArchetypeFeats])
	assert.Equal(t, budget.StateNoPoints, report.Pools[budget.CategoryCharacterFeats].State)
	assert.Equal(t, budget.Pool{Total: 18, Spent: 20, Remaining: -2, State: budget.StateOverBudget},
		report.Pools[budget.CategoryHealthEnergy])

	assert.Equal(t, []budget.Category{budget.CategoryArchetypeFeats, budget.CategoryHealthEnergy}, report.OverBudget())
	assert.Len(t, report.Pools, len(budget.Categories))
}

func TestEvaluateRejectsBadLevel(t *testing.T) {
	_, err := budget.Evaluate(budget.Input{Level: 21})
	assert.True(t, errors.IsInvalidArgument(err))
}
