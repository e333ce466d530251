package character_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func newCharacter() *character.Character {
	return &character.Character{
		ID:    "char-1",
		Name:  "Maren",
		Level: 4,
		Abilities: character.NewAbilityScores(map[character.Ability]int{
			character.Vitality: 1,
			character.Agility:  -1,
		}),
		Defenses:           map[character.Ability]int{character.Agility: 2},
		ArchetypeAbilities: []character.Ability{character.Acuity, character.Strength},
		MilestoneChoices:   map[int]character.MilestoneChoice{4: character.ChoiceFeat},
		Skills:             []character.Skill{{Name: "Athletics", Proficient: true, Value: 1}},
		Powers: []character.Power{{
			Name:  "Firebolt",
			Parts: []catalog.Use{{Ref: catalog.RefTo("Damage"), OptionLevels: [3]int{1, 0, 0}}},
		}},
	}
}

func TestAbilityScores(t *testing.T) {
	scores := character.NewAbilityScores(map[character.Ability]int{character.Vitality: 1})
	assert.Len(t, scores.Current, len(character.Abilities))
	assert.Equal(t, 1, scores.Value(character.Vitality))
	assert.Equal(t, 0, scores.Value(character.Strength))

	raised := scores.With(character.Strength, 2)
	assert.Equal(t, 2, raised.Value(character.Strength))
	assert.Equal(t, 0, scores.Value(character.Strength), "With must not mutate the receiver")
	assert.Equal(t, 0, raised.BaseValue(character.Strength))
}

func TestParseAbility(t *testing.T) {
	a, err := character.ParseAbility("acuity")
	require.NoError(t, err)
	assert.Equal(t, character.Acuity, a)
	assert.Equal(t, "discernment", a.Defense())

	_, err = character.ParseAbility("wisdom")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCharacterEntity(t *testing.T) {
	c := newCharacter()
	assert.Equal(t, "char-1", c.GetID())
	assert.Equal(t, character.EntityType, c.GetType())
}

func TestCloneIsDeep(t *testing.T) {
	c := newCharacter()
	clone := c.Clone()

	clone.Abilities.Current[character.Strength] = 3
	clone.Defenses[character.Agility] = 5
	clone.MilestoneChoices[7] = character.ChoiceInnate
	clone.Skills[0].Proficient = false
	clone.Powers[0].Parts[0].OptionLevels[0] = 4

	assert.Equal(t, 0, c.Abilities.Value(character.Strength))
	assert.Equal(t, 2, c.Defenses[character.Agility])
	assert.Len(t, c.MilestoneChoices, 1)
	assert.True(t, c.Skills[0].Proficient)
	assert.Equal(t, 1, c.Powers[0].Parts[0].OptionLevels[0])
}

func TestCloneCopiesInlineParts(t *testing.T) {
	c := newCharacter()
	c.Powers[0].Parts[0].Ref = catalog.InlineRef(catalog.Part{Name: "Damage", BaseCost: 1})

	clone := c.Clone()
	clone.Powers[0].Parts[0].Ref.Inline.BaseCost = 9

	assert.Equal(t, 1.0, c.Powers[0].Parts[0].Ref.Inline.BaseCost)
}

func TestValidate(t *testing.T) {
	require.NoError(t, newCharacter().Validate())

	c := newCharacter()
	c.Level = 21
	c.ArchetypeAbilities = []character.Ability{"luck"}
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "level")
	assert.Contains(t, err.Error(), "archetype_abilities")
}

func TestValidateRejectsNegativeOptionLevels(t *testing.T) {
	c := newCharacter()
	c.Powers[0].Parts = append(c.Powers[0].Parts, catalog.Use{
		Ref:          catalog.RefTo("Free Action"),
		OptionLevels: [3]int{-50, 0, 0},
	})
	c.Techniques = []character.Technique{{
		Name:  "Sweep",
		Parts: []catalog.Use{{Ref: catalog.RefTo("Reach"), OptionLevels: [3]int{0, 0, -1}}},
	}}
	c.Items = []character.Item{{
		Name:       "Cloak",
		Properties: []catalog.Use{{Ref: catalog.RefTo("Warded"), OptionLevels: [3]int{0, -2, 0}}},
	}}

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Free Action")
	assert.Contains(t, err.Error(), "Reach")
	assert.Contains(t, err.Error(), "Warded")
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		edit  func(c *character.Character)
	}{
		{
			name:  "base ability",
			field: "abilities.base",
			edit:  func(c *character.Character) { c.Abilities.Base["luck"] = 1 },
		},
		{
			name:  "milestone choice",
			field: "milestone_choices",
			edit:  func(c *character.Character) { c.MilestoneChoices[7] = "both" },
		},
		{
			name:  "feat kind",
			field: "feats",
			edit: func(c *character.Character) {
				c.Feats = []character.Feat{{Name: "Tough", Kind: "racial"}}
			},
		},
		{
			name:  "negative skill value",
			field: "skills",
			edit:  func(c *character.Character) { c.Skills[0].Value = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCharacter()
			tt.edit(c)

			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestHighestArchetypeAbility(t *testing.T) {
	c := newCharacter()
	c.Abilities.Current[character.Acuity] = 2
	c.Abilities.Current[character.Strength] = 3
	assert.Equal(t, 3, c.HighestArchetypeAbility())

	c.ArchetypeAbilities = nil
	assert.Equal(t, 0, c.HighestArchetypeAbility())
}

func TestFeatUnmarshal(t *testing.T) {
	var feats []character.Feat
	err := json.Unmarshal([]byte(`["Tough", {"name": "Quick Strike", "kind": "archetype", "max_uses": 2}, {"name": "Lucky"}]`), &feats)
	require.NoError(t, err)
	require.Len(t, feats, 3)
	assert.Equal(t, character.Feat{Name: "Tough", Kind: character.FeatCharacter}, feats[0])
	assert.Equal(t, character.FeatArchetype, feats[1].Kind)
	assert.Equal(t, 2, feats[1].MaxUses)
	assert.Equal(t, character.FeatCharacter, feats[2].Kind)
}

func TestJSONRoundTripKeepsMilestones(t *testing.T) {
	data, err := json.Marshal(newCharacter())
	require.NoError(t, err)

	var back character.Character
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, character.ChoiceFeat, back.MilestoneChoices[4])
	assert.Equal(t, "Damage", back.Powers[0].Parts[0].Ref.Name)
	assert.Equal(t, 1, back.Abilities.BaseValue(character.Vitality))
}
