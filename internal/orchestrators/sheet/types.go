package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/archetype"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
)

// Cleanup lists what reconciliation changed before a save
type Cleanup struct {
	ResetSkills       []string
	DroppedMilestones []int
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	PlayerID string
	Name     string
	Species  string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *character.Character
}

// GetCharacterInput defines the request for loading a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for loading a character
type GetCharacterOutput struct {
	Character *character.Character
}

// ListCharactersInput defines the request for a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for a player's characters
type ListCharactersOutput struct {
	Characters []*character.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// GetSummaryInput defines the request for a character summary
type GetSummaryInput struct {
	CharacterID string
}

// GetSummaryOutput defines the response for a character summary
type GetSummaryOutput struct {
	Summary *engine.Summary
}

// AbilityChangeInput targets one ability, or its paired defense
type AbilityChangeInput struct {
	CharacterID string
	Ability     character.Ability
}

// IncreaseAbilityOutput defines the response for raising an ability.
// Saved is false when the check refused the change.
type IncreaseAbilityOutput struct {
	Character *character.Character
	Check     abilities.IncreaseCheck
	Saved     bool
	Cleanup   Cleanup
}

// DecreaseAbilityOutput defines the response for lowering an ability
type DecreaseAbilityOutput struct {
	Character *character.Character
	Check     abilities.DecreaseCheck
	Saved     bool
	Cleanup   Cleanup
}

// SetSkillProficiencyInput defines the request for toggling a skill
type SetSkillProficiencyInput struct {
	CharacterID string
	Skill       string
	Proficient  bool
}

// SetSkillProficiencyOutput defines the response for toggling a skill
type SetSkillProficiencyOutput struct {
	Character *character.Character
	Check     budget.Check
	Saved     bool
	Cleanup   Cleanup
}

// SkillChangeInput targets one skill's value
type SkillChangeInput struct {
	CharacterID string
	Skill       string
}

// IncreaseSkillOutput defines the response for raising a skill's value
type IncreaseSkillOutput struct {
	Character *character.Character
	Check     budget.Check
	Saved     bool
	Cleanup   Cleanup
}

// DecreaseSkillOutput defines the response for lowering a skill's value
type DecreaseSkillOutput struct {
	Character *character.Character
	Check     budget.Check
	Saved     bool
	Cleanup   Cleanup
}

// IncreaseDefenseOutput defines the response for raising a defense
type IncreaseDefenseOutput struct {
	Character *character.Character
	Check     budget.Check
	Saved     bool
	Cleanup   Cleanup
}

// DecreaseDefenseOutput defines the response for lowering a defense
type DecreaseDefenseOutput struct {
	Character *character.Character
	Saved     bool
	Cleanup   Cleanup
}

// SetMilestoneChoiceInput defines the request for a milestone pick
type SetMilestoneChoiceInput struct {
	CharacterID string
	Milestone   int
	Choice      character.MilestoneChoice
}

// SetMilestoneChoiceOutput defines the response for a milestone pick
type SetMilestoneChoiceOutput struct {
	Character *character.Character
	Check     archetype.ChoiceCheck
	Saved     bool
	Cleanup   Cleanup
}

// SetProficiencyInput defines the request for changing both counters
type SetProficiencyInput struct {
	CharacterID string
	Martial     int
	Power       int
}

// SetProficiencyOutput defines the response for changing proficiency
type SetProficiencyOutput struct {
	Character *character.Character
	Archetype archetype.Type
	Cleanup   Cleanup
}

// SetLevelInput defines the request for changing character level
type SetLevelInput struct {
	CharacterID string
	Level       int
}

// SetLevelOutput defines the response for changing character level
type SetLevelOutput struct {
	Character *character.Character
	Cleanup   Cleanup
}
