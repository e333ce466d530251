package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Brenna Stonefist"
	// TestCharacterID is the id of CreateTestCharacter
	TestCharacterID = "char-test-001"
)

// FixtureTime is the UpdatedAt stamped on fixtures.
var FixtureTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// CreateTestCharacter creates a level 1 dwarf with nothing spent.
func CreateTestCharacter(playerID string) *character.Character {
	return &character.Character{
		ID:        TestCharacterID,
		PlayerID:  playerID,
		Name:      TestCharacterName,
		Species:   "Dwarf",
		Level:     1,
		Abilities: character.NewAbilityScores(map[character.Ability]int{character.Vitality: 1, character.Agility: -1}),
		Defenses:  map[character.Ability]int{},
		Skills: []character.Skill{
			{Name: "Athletics", Proficient: true},
			{Name: "Climbing", BaseSkill: "Athletics"},
			{Name: "Insight"},
		},
		MilestoneChoices: map[int]character.MilestoneChoice{},
		UpdatedAt:        FixtureTime,
	}
}

// CreateTestMixedCharacter creates a level 10 mixed archetype with one
// power and one equipped item.
func CreateTestMixedCharacter(playerID string) *character.Character {
	ch := CreateTestCharacter(playerID)
	ch.ID = "char-test-mixed"
	ch.Level = 10
	ch.MartialProficiency = 1
	ch.PowerProficiency = 1
	ch.ArchetypeAbilities = []character.Ability{character.Strength, character.Acuity}
	ch.Abilities = ch.Abilities.With(character.Strength, 3).With(character.Acuity, 2)
	ch.MilestoneChoices = map[int]character.MilestoneChoice{
		4: character.ChoiceInnate,
		7: character.ChoiceFeat,
	}
	ch.Feats = []character.Feat{
		{Name: "Brawler", Kind: character.FeatArchetype},
		{Name: "Tough", Kind: character.FeatCharacter},
	}
	ch.Powers = []character.Power{
		{Name: "Fire Bolt", Parts: []catalog.Use{
			{Ref: catalog.RefTo("Damage"), OptionLevels: [catalog.OptionTiers]int{2, 0, 0}},
			{Ref: catalog.RefTo("Range"), OptionLevels: [catalog.OptionTiers]int{2, 0, 0}},
		}},
	}
	ch.Items = []character.Item{
		{Name: "Spear", Equipped: true, Properties: []catalog.Use{{Ref: catalog.RefTo("Reach")}}},
		{Name: "Rapier", Properties: []catalog.Use{{Ref: catalog.RefTo("Finesse")}}},
	}
	ch.HealthEnergy = character.HealthEnergy{Health: 60, Energy: 30}
	return ch
}

// TestCatalogTables mirrors the catalog used across engine and
// orchestrator tests.
func TestCatalogTables() catalog.Tables {
	return catalog.Tables{
		Parts: []catalog.Part{
			{Name: "Damage", BaseCost: 1, OptionCosts: [catalog.OptionTiers]float64{1, 0.5, 0}},
			{Name: "Range", BaseCost: 0, OptionCosts: [catalog.OptionTiers]float64{0.5, 0, 0}},
			{Name: "Free Action", BaseCost: 3},
		},
		Properties: []catalog.Part{
			{Name: "Reach", BaseCost: 1, OptionCosts: [catalog.OptionTiers]float64{1, 0, 0}},
			{Name: "Finesse", BaseCost: 0.5},
		},
		Skills: []catalog.Skill{
			{Name: "Athletics", Ability: "strength"},
			{Name: "Climbing", Ability: "strength", BaseSkill: "Athletics"},
			{Name: "Insight", Ability: "acuity"},
		},
		Species: []catalog.Species{
			{Name: "Dwarf", Abilities: map[string]int{"vitality": 1, "agility": -1}, Skills: []string{"Athletics"}},
			{Name: "Human"},
		},
	}
}

// CreateTestCatalog builds the catalog from TestCatalogTables.
func CreateTestCatalog() *catalog.Catalog {
	c, err := catalog.New(TestCatalogTables())
	if err != nil {
		panic(err)
	}
	return c
}
