package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/archetype"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
)

// NewCharacterInput names a fresh character and its species
type NewCharacterInput struct {
	ID       string
	PlayerID string
	Name     string
	Species  string
}

// NewCharacterOutput contains a level 1 character seeded from the catalog
type NewCharacterOutput struct {
	Character *character.Character
}

// SummarizeInput contains the character to summarize
type SummarizeInput struct {
	Character *character.Character
}

// Summary is every derived value the sheet displays
type Summary struct {
	CharacterID    string                    `json:"character_id"`
	Level          int                       `json:"level"`
	Archetype      archetype.Progress        `json:"archetype"`
	Budget         *budget.Report            `json:"budget"`
	AbilityCeiling int                       `json:"ability_ceiling"`
	DefenseCeiling int                       `json:"defense_ceiling"`
	NegativeSum    int                       `json:"negative_sum"`
	Defenses       map[string]int            `json:"defenses"`
	Abilities      map[character.Ability]int `json:"abilities"`
}

// SummarizeOutput contains the computed summary
type SummarizeOutput struct {
	Summary *Summary
}

// AbilityInput targets one ability (or its paired defense)
type AbilityInput struct {
	Character *character.Character
	Ability   character.Ability
}

// IncreaseAbilityOutput carries the verdict and, when allowed, the raised
// character. A refused change returns the character unchanged.
type IncreaseAbilityOutput struct {
	Character *character.Character
	Check     abilities.IncreaseCheck
}

// DecreaseAbilityOutput carries the verdict and the resulting character
type DecreaseAbilityOutput struct {
	Character *character.Character
	Check     abilities.DecreaseCheck
}

// SetSkillProficiencyInput toggles a skill's proficiency
type SetSkillProficiencyInput struct {
	Character  *character.Character
	Skill      string
	Proficient bool
}

// SetSkillProficiencyOutput includes the sub-skills reset by reconciliation
type SetSkillProficiencyOutput struct {
	Character   *character.Character
	Check       budget.Check
	ResetSkills []string
}

// SkillInput names the skill whose value changes by one
type SkillInput struct {
	Character *character.Character
	Skill     string
}

// IncreaseSkillOutput carries the skill verdict
type IncreaseSkillOutput struct {
	Character *character.Character
	Check     budget.Check
}

// DecreaseSkillOutput carries the skill verdict
type DecreaseSkillOutput struct {
	Character *character.Character
	Check     budget.Check
}

// IncreaseDefenseOutput carries the defense ceiling verdict
type IncreaseDefenseOutput struct {
	Character *character.Character
	Check     budget.Check
}

// DecreaseDefenseOutput reports whether an allocation point was removed
type DecreaseDefenseOutput struct {
	Character *character.Character
	Changed   bool
}

// SetMilestoneChoiceInput picks innate or feat at a milestone level
type SetMilestoneChoiceInput struct {
	Character *character.Character
	Milestone int
	Choice    character.MilestoneChoice
}

// SetMilestoneChoiceOutput carries the verdict and resulting character
type SetMilestoneChoiceOutput struct {
	Character *character.Character
	Check     archetype.ChoiceCheck
}

// SetProficiencyInput replaces both proficiency counters
type SetProficiencyInput struct {
	Character *character.Character
	Martial   int
	Power     int
}

// SetProficiencyOutput lists milestone choices dropped by the change
type SetProficiencyOutput struct {
	Character         *character.Character
	Archetype         archetype.Type
	DroppedMilestones []int
}

// ReconcileInput contains the character to clean up
type ReconcileInput struct {
	Character *character.Character
}

// ReconcileOutput lists everything the cleanup passes changed
type ReconcileOutput struct {
	Character         *character.Character
	ResetSkills       []string
	DroppedMilestones []int
}

// Changed reports whether reconciliation touched anything
func (o *ReconcileOutput) Changed() bool {
	return len(o.ResetSkills) > 0 || len(o.DroppedMilestones) > 0
}
