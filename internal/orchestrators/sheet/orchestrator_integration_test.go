package sheet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/archetype"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

// IntegrationTestSuite runs the orchestrator against the real engine and a
// miniredis-backed repository.
type IntegrationTestSuite struct {
	suite.Suite
	orchestrator *sheet.Orchestrator
	repo         characterrepo.Repository
	cleanup      func()
	ctx          context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(testutils.FixtureTime),
	})
	s.Require().NoError(err)
	s.repo = repo

	eng, err := engine.New(&engine.Config{Catalog: testutils.CreateTestCatalog()})
	s.Require().NoError(err)

	s.orchestrator, err = sheet.New(&sheet.Config{
		CharacterRepo: repo,
		Engine:        eng,
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *IntegrationTestSuite) create() *character.Character {
	out, err := s.orchestrator.CreateCharacter(s.ctx, &sheet.CreateCharacterInput{
		PlayerID: testPlayerID,
		Name:     testutils.TestCharacterName,
		Species:  "Dwarf",
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *IntegrationTestSuite) stored(id string) *character.Character {
	out, err := s.orchestrator.GetCharacter(s.ctx, &sheet.GetCharacterInput{CharacterID: id})
	s.Require().NoError(err)
	return out.Character
}

func (s *IntegrationTestSuite) TestCreateSeedsSpecies() {
	ch := s.create()

	s.Equal("char_1", ch.ID)
	s.Equal(1, ch.Level)
	s.Equal(1, ch.Abilities.BaseValue(character.Vitality))
	s.Equal(-1, ch.Abilities.Value(character.Agility))

	summary, err := s.orchestrator.GetSummary(s.ctx, &sheet.GetSummaryInput{CharacterID: ch.ID})
	s.Require().NoError(err)
	s.Equal(ch.ID, summary.Summary.CharacterID)
	s.Equal(archetype.TypeNone, summary.Summary.Archetype.Type)
}

func (s *IntegrationTestSuite) TestIncreaseUntilCeiling() {
	ch := s.create()

	for want := 1; want <= 3; want++ {
		out, err := s.orchestrator.IncreaseAbility(s.ctx, &sheet.AbilityChangeInput{
			CharacterID: ch.ID,
			Ability:     character.Strength,
		})
		s.Require().NoError(err)
		s.Require().True(out.Saved, "step %d", want)
		s.Equal(want, s.stored(ch.ID).Abilities.Value(character.Strength))
	}

	out, err := s.orchestrator.IncreaseAbility(s.ctx, &sheet.AbilityChangeInput{
		CharacterID: ch.ID,
		Ability:     character.Strength,
	})
	s.Require().NoError(err)
	s.False(out.Saved)
	s.Equal(abilities.ReasonAtCeiling, out.Check.Reason)
	s.Equal(3, s.stored(ch.ID).Abilities.Value(character.Strength))
}

func (s *IntegrationTestSuite) TestAncestryBaseFloor() {
	ch := s.create()

	out, err := s.orchestrator.DecreaseAbility(s.ctx, &sheet.AbilityChangeInput{
		CharacterID: ch.ID,
		Ability:     character.Vitality,
	})
	s.Require().NoError(err)
	s.False(out.Saved)
	s.Equal(abilities.ReasonBelowAncestryBase, out.Check.Reason)
}

func (s *IntegrationTestSuite) TestUnsettingBaseSkillResetsSubSkill() {
	ch := s.create()

	climb, err := s.orchestrator.SetSkillProficiency(s.ctx, &sheet.SetSkillProficiencyInput{
		CharacterID: ch.ID,
		Skill:       "Climbing",
		Proficient:  true,
	})
	s.Require().NoError(err)
	s.Require().True(climb.Saved)

	out, err := s.orchestrator.SetSkillProficiency(s.ctx, &sheet.SetSkillProficiencyInput{
		CharacterID: ch.ID,
		Skill:       "Athletics",
		Proficient:  false,
	})
	s.Require().NoError(err)
	s.True(out.Saved)
	s.Equal([]string{"Climbing"}, out.Cleanup.ResetSkills)

	for _, skill := range s.stored(ch.ID).Skills {
		s.False(skill.Proficient, skill.Name)
	}

	refused, err := s.orchestrator.SetSkillProficiency(s.ctx, &sheet.SetSkillProficiencyInput{
		CharacterID: ch.ID,
		Skill:       "Climbing",
		Proficient:  true,
	})
	s.Require().NoError(err)
	s.False(refused.Saved)
	s.Equal(budget.ReasonBaseNotProficient, refused.Check.Reason)
}

func (s *IntegrationTestSuite) TestSkillValueFollowsProficiency() {
	ch := s.create()

	for want := 1; want <= 2; want++ {
		out, err := s.orchestrator.IncreaseSkill(s.ctx, &sheet.SkillChangeInput{CharacterID: ch.ID, Skill: "Athletics"})
		s.Require().NoError(err)
		s.Require().True(out.Saved, "step %d", want)
		s.Equal(want, s.stored(ch.ID).Skills[0].Value)
	}

	summary, err := s.orchestrator.GetSummary(s.ctx, &sheet.GetSummaryInput{CharacterID: ch.ID})
	s.Require().NoError(err)
	// base proficiency 1, value 2
	s.Equal(3, summary.Summary.Budget.Pools[budget.CategorySkillPoints].Spent)

	refused, err := s.orchestrator.IncreaseSkill(s.ctx, &sheet.SkillChangeInput{CharacterID: ch.ID, Skill: "Climbing"})
	s.Require().NoError(err)
	s.False(refused.Saved)
	s.Equal(budget.ReasonNotProficient, refused.Check.Reason)

	down, err := s.orchestrator.DecreaseSkill(s.ctx, &sheet.SkillChangeInput{CharacterID: ch.ID, Skill: "Athletics"})
	s.Require().NoError(err)
	s.True(down.Saved)
	s.Equal(1, s.stored(ch.ID).Skills[0].Value)
}

func (s *IntegrationTestSuite) TestSavedRecordsCarryResolvedParts() {
	ch := testutils.CreateTestMixedCharacter(testPlayerID)
	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: ch})
	s.Require().NoError(err)

	out, err := s.orchestrator.IncreaseSkill(s.ctx, &sheet.SkillChangeInput{CharacterID: ch.ID, Skill: "Athletics"})
	s.Require().NoError(err)
	s.Require().True(out.Saved)

	stored := s.stored(ch.ID)
	for _, use := range stored.Powers[0].Parts {
		s.Require().NotNil(use.Ref.Inline, use.Ref.Name)
	}
	s.Equal(0.5, stored.Powers[0].Parts[1].Ref.Inline.OptionCosts[0])
	s.Require().NotNil(stored.Items[0].Properties[0].Ref.Inline)
	s.Equal(1.0, stored.Items[0].Properties[0].Ref.Inline.BaseCost)
}

func (s *IntegrationTestSuite) TestUnknownPartFailsOnSave() {
	ch := testutils.CreateTestCharacter(testPlayerID)
	ch.Powers = []character.Power{{Name: "Blink", Parts: []catalog.Use{{Ref: catalog.RefTo("Teleport")}}}}
	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: ch})
	s.Require().NoError(err)

	_, err = s.orchestrator.IncreaseSkill(s.ctx, &sheet.SkillChangeInput{CharacterID: ch.ID, Skill: "Athletics"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(0, s.stored(ch.ID).Skills[0].Value)
}

func (s *IntegrationTestSuite) TestDefenseAllocation() {
	ch := s.create()

	out, err := s.orchestrator.IncreaseDefense(s.ctx, &sheet.AbilityChangeInput{
		CharacterID: ch.ID,
		Ability:     character.Agility,
	})
	s.Require().NoError(err)
	s.Require().True(out.Saved)
	s.Equal(budget.DefensePointCost, out.Check.Cost)
	s.Equal(1, s.stored(ch.ID).Defenses[character.Agility])

	dec, err := s.orchestrator.DecreaseDefense(s.ctx, &sheet.AbilityChangeInput{
		CharacterID: ch.ID,
		Ability:     character.Agility,
	})
	s.Require().NoError(err)
	s.True(dec.Saved)
	s.NotContains(s.stored(ch.ID).Defenses, character.Agility)

	again, err := s.orchestrator.DecreaseDefense(s.ctx, &sheet.AbilityChangeInput{
		CharacterID: ch.ID,
		Ability:     character.Agility,
	})
	s.Require().NoError(err)
	s.False(again.Saved)
}

func (s *IntegrationTestSuite) TestMilestoneChoicesFollowArchetypeAndLevel() {
	ch := s.create()

	_, err := s.orchestrator.SetLevel(s.ctx, &sheet.SetLevelInput{CharacterID: ch.ID, Level: 10})
	s.Require().NoError(err)

	prof, err := s.orchestrator.SetProficiency(s.ctx, &sheet.SetProficiencyInput{
		CharacterID: ch.ID,
		Martial:     1,
		Power:       1,
	})
	s.Require().NoError(err)
	s.Equal(archetype.TypeMixed, prof.Archetype)

	for _, m := range []int{4, 7, 10} {
		out, err := s.orchestrator.SetMilestoneChoice(s.ctx, &sheet.SetMilestoneChoiceInput{
			CharacterID: ch.ID,
			Milestone:   m,
			Choice:      character.ChoiceFeat,
		})
		s.Require().NoError(err)
		s.Require().True(out.Saved, "milestone %d", m)
	}

	level, err := s.orchestrator.SetLevel(s.ctx, &sheet.SetLevelInput{CharacterID: ch.ID, Level: 5})
	s.Require().NoError(err)
	s.Equal([]int{7, 10}, level.Cleanup.DroppedMilestones)
	s.Equal(map[int]character.MilestoneChoice{4: character.ChoiceFeat}, s.stored(ch.ID).MilestoneChoices)

	martial, err := s.orchestrator.SetProficiency(s.ctx, &sheet.SetProficiencyInput{
		CharacterID: ch.ID,
		Martial:     2,
	})
	s.Require().NoError(err)
	s.Equal(archetype.TypeMartial, martial.Archetype)
	s.Equal([]int{4}, martial.Cleanup.DroppedMilestones)
	s.Empty(s.stored(ch.ID).MilestoneChoices)
}
