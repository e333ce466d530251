package archetype_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/archetype"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
)

type ArchetypeTestSuite struct {
	suite.Suite
}

func TestArchetypeSuite(t *testing.T) {
	suite.Run(t, new(ArchetypeTestSuite))
}

func (s *ArchetypeTestSuite) TestClassify() {
	s.Equal(archetype.TypeNone, archetype.Classify(0, 0))
	s.Equal(archetype.TypePower, archetype.Classify(0, 3))
	s.Equal(archetype.TypeMartial, archetype.Classify(2, 0))
	s.Equal(archetype.TypeMixed, archetype.Classify(1, 1))
}

func (s *ArchetypeTestSuite) TestArmamentProficiency() {
	s.Equal(3, archetype.ArmamentProficiency(0))
	s.Equal(8, archetype.ArmamentProficiency(1))
	s.Equal(12, archetype.ArmamentProficiency(2))
	s.Equal(15, archetype.ArmamentProficiency(3))
	s.Equal(18, archetype.ArmamentProficiency(4))
}

func (s *ArchetypeTestSuite) TestSteppedProgression() {
	testCases := []struct {
		level     int
		threshold int
		pools     int
		feats     int
	}{
		{1, 8, 2, 2},
		{3, 8, 2, 2},
		{4, 9, 3, 3},
		{6, 9, 3, 3},
		{7, 10, 4, 4},
		{20, 14, 8, 8},
	}

	for _, tc := range testCases {
		s.Equal(tc.threshold, archetype.InnateThreshold(tc.level), "level %d", tc.level)
		s.Equal(tc.pools, archetype.InnatePools(tc.level), "level %d", tc.level)
		s.Equal(tc.feats, archetype.BonusArchetypeFeats(tc.level), "level %d", tc.level)
	}
}

func (s *ArchetypeTestSuite) TestMilestones() {
	s.Nil(archetype.Milestones(3))
	s.Equal([]int{4, 7, 10}, archetype.Milestones(12))
	s.True(archetype.IsMilestone(19))
	s.False(archetype.IsMilestone(1))
	s.False(archetype.IsMilestone(5))
}

func (s *ArchetypeTestSuite) TestComputePower() {
	p := archetype.Compute(4, 0, 2, nil)
	s.Equal(archetype.TypePower, p.Type)
	s.Equal(9, p.InnateThreshold)
	s.Equal(3, p.InnatePools)
	s.Equal(27, p.InnateEnergy)
	s.Zero(p.BonusArchetypeFeats)
	s.Equal(3, p.ArmamentProficiency)
	s.Empty(p.AvailableMilestones)
}

func (s *ArchetypeTestSuite) TestComputeMartialAndNone() {
	p := archetype.Compute(7, 2, 0, nil)
	s.Equal(archetype.TypeMartial, p.Type)
	s.Equal(4, p.BonusArchetypeFeats)
	s.Zero(p.InnateEnergy)
	s.Equal(12, p.ArmamentProficiency)

	p = archetype.Compute(7, 0, 0, map[int]character.MilestoneChoice{4: character.ChoiceFeat})
	s.Equal(archetype.TypeNone, p.Type)
	s.Zero(p.BonusArchetypeFeats)
	s.Zero(p.InnateEnergy)
}

func (s *ArchetypeTestSuite) TestComputeMixed() {
	choices := map[int]character.MilestoneChoice{
		4:  character.ChoiceInnate,
		7:  character.ChoiceFeat,
		13: character.ChoiceInnate, // above level, ignored
	}

	p := archetype.Compute(10, 1, 1, choices)
	s.Equal(archetype.TypeMixed, p.Type)
	s.Equal(7, p.InnateThreshold)
	s.Equal(2, p.InnatePools)
	s.Equal(14, p.InnateEnergy)
	s.Equal(2, p.BonusArchetypeFeats)
	s.Equal([]int{4, 7, 10}, p.AvailableMilestones)

	base := archetype.Compute(10, 1, 1, nil)
	s.Equal(6, base.InnateEnergy)
	s.Equal(1, base.BonusArchetypeFeats)
}

func (s *ArchetypeTestSuite) TestApplyMilestoneChoice() {
	original := map[int]character.MilestoneChoice{4: character.ChoiceFeat}

	testCases := []struct {
		name      string
		level     int
		milestone int
		choice    character.MilestoneChoice
		martial   int
		power     int
		reason    archetype.Reason
	}{
		{"power archetype", 10, 7, character.ChoiceInnate, 0, 2, archetype.ReasonNotMixed},
		{"not a milestone", 10, 5, character.ChoiceInnate, 1, 1, archetype.ReasonNotMilestone},
		{"level one is not a milestone", 10, 1, character.ChoiceInnate, 1, 1, archetype.ReasonNotMilestone},
		{"above character level", 6, 7, character.ChoiceInnate, 1, 1, archetype.ReasonMilestoneTooHigh},
		{"unknown choice", 10, 7, "both", 1, 1, archetype.ReasonInvalidChoice},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, check := archetype.ApplyMilestoneChoice(original, tc.level, tc.milestone, tc.choice, tc.martial, tc.power)
			s.False(check.Allowed)
			s.Equal(tc.reason, check.Reason)
			s.Equal(original, out)
		})
	}

	out, check := archetype.ApplyMilestoneChoice(original, 10, 7, character.ChoiceInnate, 1, 1)
	s.True(check.Allowed)
	s.Equal(character.ChoiceInnate, out[7])
	s.Len(original, 1, "input must not be modified")

	again, check := archetype.ApplyMilestoneChoice(out, 10, 7, character.ChoiceInnate, 1, 1)
	s.True(check.Allowed)
	s.Equal(out, again)
}

func (s *ArchetypeTestSuite) TestPruneChoices() {
	choices := map[int]character.MilestoneChoice{
		4:  character.ChoiceInnate,
		7:  character.ChoiceFeat,
		10: character.ChoiceFeat,
	}

	kept, dropped := archetype.PruneChoices(choices, 8, 1, 1)
	s.Equal(map[int]character.MilestoneChoice{4: character.ChoiceInnate, 7: character.ChoiceFeat}, kept)
	s.Equal([]int{10}, dropped)
	s.Len(choices, 3)

	kept, dropped = archetype.PruneChoices(choices, 20, 2, 0)
	s.Empty(kept)
	s.Equal([]int{4, 7, 10}, dropped)

	kept, dropped = archetype.PruneChoices(nil, 20, 1, 1)
	s.Empty(kept)
	s.Nil(dropped)
}
