// Package engine composes the rules packages over a character record and
// the read-only catalog. Every operation works on a copy of the character
// it is given; rule refusals come back as checks, caller bugs as errors.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import (
	"context"
)

// Engine provides the sheet's rules calculations
type Engine interface {
	// Character setup
	NewCharacter(ctx context.Context, input *NewCharacterInput) (*NewCharacterOutput, error)

	// Read-only summaries
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)

	// Ability scores
	IncreaseAbility(ctx context.Context, input *AbilityInput) (*IncreaseAbilityOutput, error)
	DecreaseAbility(ctx context.Context, input *AbilityInput) (*DecreaseAbilityOutput, error)

	// Skills and defenses
	SetSkillProficiency(ctx context.Context, input *SetSkillProficiencyInput) (*SetSkillProficiencyOutput, error)
	IncreaseSkill(ctx context.Context, input *SkillInput) (*IncreaseSkillOutput, error)
	DecreaseSkill(ctx context.Context, input *SkillInput) (*DecreaseSkillOutput, error)
	IncreaseDefense(ctx context.Context, input *AbilityInput) (*IncreaseDefenseOutput, error)
	DecreaseDefense(ctx context.Context, input *AbilityInput) (*DecreaseDefenseOutput, error)

	// Archetype
	SetMilestoneChoice(ctx context.Context, input *SetMilestoneChoiceInput) (*SetMilestoneChoiceOutput, error)
	SetProficiency(ctx context.Context, input *SetProficiencyInput) (*SetProficiencyOutput, error)

	// Cleanup passes
	Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error)
}
