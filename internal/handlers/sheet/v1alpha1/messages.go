package v1alpha1

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
)

// CreateCharacterRequest creates a level 1 character
type CreateCharacterRequest struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Species  string `json:"species"`
}

// CharacterResponse carries a single character
type CharacterResponse struct {
	Character *character.Character `json:"character"`
}

// CharacterRequest addresses one character
type CharacterRequest struct {
	CharacterID string `json:"character_id"`
}

// ListCharactersRequest lists a player's characters
type ListCharactersRequest struct {
	PlayerID string `json:"player_id"`
}

// ListCharactersResponse contains a player's characters
type ListCharactersResponse struct {
	Characters []*character.Character `json:"characters"`
}

// DeleteCharacterResponse is empty on success
type DeleteCharacterResponse struct{}

// GetSummaryResponse contains every derived sheet value
type GetSummaryResponse struct {
	Summary *engine.Summary `json:"summary"`
}

// AbilityRequest targets an ability or its paired defense
type AbilityRequest struct {
	CharacterID string `json:"character_id"`
	Ability     string `json:"ability"`
}

// SetSkillProficiencyRequest toggles a skill
type SetSkillProficiencyRequest struct {
	CharacterID string `json:"character_id"`
	Skill       string `json:"skill"`
	Proficient  bool   `json:"proficient"`
}

// SkillRequest targets one skill's value
type SkillRequest struct {
	CharacterID string `json:"character_id"`
	Skill       string `json:"skill"`
}

// SetMilestoneChoiceRequest picks innate or feat at a milestone
type SetMilestoneChoiceRequest struct {
	CharacterID string `json:"character_id"`
	Milestone   int    `json:"milestone"`
	Choice      string `json:"choice"`
}

// SetProficiencyRequest replaces both proficiency counters
type SetProficiencyRequest struct {
	CharacterID string `json:"character_id"`
	Martial     int    `json:"martial"`
	Power       int    `json:"power"`
}

// SetLevelRequest moves a character to a level
type SetLevelRequest struct {
	CharacterID string `json:"character_id"`
	Level       int    `json:"level"`
}

// Check is the wire form of every rule verdict
type Check struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	Cost       int    `json:"cost,omitempty"`
	Refund     int    `json:"refund,omitempty"`
	Remaining  int    `json:"remaining,omitempty"`
	OverBudget bool   `json:"over_budget,omitempty"`
}

// ChangeResponse is returned by every character mutation
type ChangeResponse struct {
	Character         *character.Character `json:"character"`
	Check             *Check               `json:"check,omitempty"`
	Saved             bool                 `json:"saved"`
	Archetype         string               `json:"archetype,omitempty"`
	ResetSkills       []string             `json:"reset_skills,omitempty"`
	DroppedMilestones []int                `json:"dropped_milestones,omitempty"`
}

// RollPoolRequest rolls a pool. Dice keys are die names such as "d6".
type RollPoolRequest struct {
	SessionID string         `json:"session_id"`
	Dice      map[string]int `json:"dice"`
	Modifier  int            `json:"modifier"`
	Kind      string         `json:"kind,omitempty"`
	Label     string         `json:"label,omitempty"`
}

// RollCheckRequest rolls a d20 check
type RollCheckRequest struct {
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
	Label     string `json:"label,omitempty"`
	Bonus     int    `json:"bonus"`
}

// RollDamageRequest rolls damage notation such as "2d6+3 fire"
type RollDamageRequest struct {
	SessionID string `json:"session_id"`
	Notation  string `json:"notation"`
	Label     string `json:"label,omitempty"`
	Bonus     int    `json:"bonus"`
}

// RollResponse carries a roll. Entry is nil when an empty pool was sent.
type RollResponse struct {
	Entry *dice.Entry `json:"entry,omitempty"`
}

// RollLogRequest addresses a session's roll log
type RollLogRequest struct {
	SessionID string `json:"session_id"`
	Limit     int    `json:"limit,omitempty"`
}

// GetRollLogResponse contains a session's entries, newest first
type GetRollLogResponse struct {
	Entries  []dice.Entry `json:"entries"`
	Mirrored bool         `json:"mirrored,omitempty"`
}

// ClearRollLogResponse reports how many entries were removed
type ClearRollLogResponse struct {
	RollsDeleted int `json:"rolls_deleted"`
}
