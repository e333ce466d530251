// Package sheet implements the sheet orchestrator. Every mutation loads the
// character, asks the engine, reconciles and saves only when the engine
// allowed the change.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/formula"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
)

// Service defines the character sheet operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Derived values
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// Mutations
	IncreaseAbility(ctx context.Context, input *AbilityChangeInput) (*IncreaseAbilityOutput, error)
	DecreaseAbility(ctx context.Context, input *AbilityChangeInput) (*DecreaseAbilityOutput, error)
	SetSkillProficiency(ctx context.Context, input *SetSkillProficiencyInput) (*SetSkillProficiencyOutput, error)
	IncreaseSkill(ctx context.Context, input *SkillChangeInput) (*IncreaseSkillOutput, error)
	DecreaseSkill(ctx context.Context, input *SkillChangeInput) (*DecreaseSkillOutput, error)
	IncreaseDefense(ctx context.Context, input *AbilityChangeInput) (*IncreaseDefenseOutput, error)
	DecreaseDefense(ctx context.Context, input *AbilityChangeInput) (*DecreaseDefenseOutput, error)
	SetMilestoneChoice(ctx context.Context, input *SetMilestoneChoiceInput) (*SetMilestoneChoiceOutput, error)
	SetProficiency(ctx context.Context, input *SetProficiencyInput) (*SetProficiencyOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	engine        engine.Engine
	idGen         idgen.Generator
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		engine:        cfg.Engine,
		idGen:         cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// CreateCharacter builds a level 1 character from its species and stores it
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("species", input.Species, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	newOutput, err := o.engine.NewCharacter(ctx, &engine.NewCharacterInput{
		ID:       o.idGen.Generate(),
		PlayerID: input.PlayerID,
		Name:     input.Name,
		Species:  input.Species,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build character")
	}

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{
		Character: newOutput.Character,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.Info("Character created",
		"character_id", createOutput.Character.ID,
		"player_id", input.PlayerID,
		"species", createOutput.Character.Species,
	)

	return &CreateCharacterOutput{Character: createOutput.Character}, nil
}

// GetCharacter loads a character by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: ch}, nil
}

// ListCharacters returns a player's characters ordered by ID
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *ListCharactersInput,
) (*ListCharactersOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listOutput, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: listOutput.Characters}, nil
}

// DeleteCharacter removes a character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	slog.Info("Character deleted", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{}, nil
}

// GetSummary computes every derived value for a stored character
func (o *Orchestrator) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	summaryOutput, err := o.engine.Summarize(ctx, &engine.SummarizeInput{Character: ch})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize character")
	}

	return &GetSummaryOutput{Summary: summaryOutput.Summary}, nil
}

// IncreaseAbility raises one ability score by a point
func (o *Orchestrator) IncreaseAbility(
	ctx context.Context,
	input *AbilityChangeInput,
) (*IncreaseAbilityOutput, error) {
	ch, err := o.loadFor(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.IncreaseAbility(ctx, &engine.AbilityInput{Character: ch, Ability: input.Ability})
	if err != nil {
		return nil, errors.Wrap(err, "failed to increase ability")
	}

	out := &IncreaseAbilityOutput{Character: ch, Check: result.Check}
	if !result.Check.Allowed {
		slog.Debug("Ability increase refused",
			"character_id", ch.ID,
			"ability", input.Ability,
			"reason", result.Check.Reason,
		)
		return out, nil
	}

	out.Character, out.Cleanup, err = o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	out.Saved = true

	slog.Info("Ability increased",
		"character_id", ch.ID,
		"ability", input.Ability,
		"cost", result.Check.Cost,
		"over_budget", result.Check.OverBudget,
	)

	return out, nil
}

// DecreaseAbility lowers one ability score by a point
func (o *Orchestrator) DecreaseAbility(
	ctx context.Context,
	input *AbilityChangeInput,
) (*DecreaseAbilityOutput, error) {
	ch, err := o.loadFor(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.DecreaseAbility(ctx, &engine.AbilityInput{Character: ch, Ability: input.Ability})
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrease ability")
	}

	out := &DecreaseAbilityOutput{Character: ch, Check: result.Check}
	if !result.Check.Allowed {
		slog.Debug("Ability decrease refused",
			"character_id", ch.ID,
			"ability", input.Ability,
			"reason", result.Check.Reason,
		)
		return out, nil
	}

	out.Character, out.Cleanup, err = o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	out.Saved = true

	slog.Info("Ability decreased",
		"character_id", ch.ID,
		"ability", input.Ability,
		"refund", result.Check.Refund,
	)

	return out, nil
}

// SetSkillProficiency marks a skill proficient or not
func (o *Orchestrator) SetSkillProficiency(
	ctx context.Context,
	input *SetSkillProficiencyInput,
) (*SetSkillProficiencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.SetSkillProficiency(ctx, &engine.SetSkillProficiencyInput{
		Character:  ch,
		Skill:      input.Skill,
		Proficient: input.Proficient,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set skill proficiency")
	}

	out := &SetSkillProficiencyOutput{Character: ch, Check: result.Check}
	if !result.Check.Allowed {
		slog.Debug("Skill proficiency refused",
			"character_id", ch.ID,
			"skill", input.Skill,
			"reason", result.Check.Reason,
		)
		return out, nil
	}

	out.Character, out.Cleanup, err = o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	out.Cleanup.ResetSkills = append(result.ResetSkills, out.Cleanup.ResetSkills...)
	out.Saved = true

	slog.Info("Skill proficiency set",
		"character_id", ch.ID,
		"skill", input.Skill,
		"proficient", input.Proficient,
		"reset_skills", out.Cleanup.ResetSkills,
	)

	return out, nil
}

// IncreaseSkill raises a proficient skill's value by a point
func (o *Orchestrator) IncreaseSkill(ctx context.Context, input *SkillChangeInput) (*IncreaseSkillOutput, error) {
	ch, err := o.loadForSkill(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.IncreaseSkill(ctx, &engine.SkillInput{Character: ch, Skill: input.Skill})
	if err != nil {
		return nil, errors.Wrap(err, "failed to increase skill")
	}

	out := &IncreaseSkillOutput{Character: ch, Check: result.Check}
	if !result.Check.Allowed {
		slog.Debug("Skill increase refused",
			"character_id", ch.ID,
			"skill", input.Skill,
			"reason", result.Check.Reason,
		)
		return out, nil
	}

	out.Character, out.Cleanup, err = o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	out.Saved = true

	slog.Info("Skill increased",
		"character_id", ch.ID,
		"skill", input.Skill,
		"cost", result.Check.Cost,
	)

	return out, nil
}

// DecreaseSkill lowers a skill's value by a point, stopping at zero
func (o *Orchestrator) DecreaseSkill(ctx context.Context, input *SkillChangeInput) (*DecreaseSkillOutput, error) {
	ch, err := o.loadForSkill(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.DecreaseSkill(ctx, &engine.SkillInput{Character: ch, Skill: input.Skill})
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrease skill")
	}

	out := &DecreaseSkillOutput{Character: ch, Check: result.Check}
	if !result.Check.Allowed {
		slog.Debug("Skill decrease refused",
			"character_id", ch.ID,
			"skill", input.Skill,
			"reason", result.Check.Reason,
		)
		return out, nil
	}

	out.Character, out.Cleanup, err = o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	out.Saved = true

	slog.Info("Skill decreased",
		"character_id", ch.ID,
		"skill", input.Skill,
	)

	return out, nil
}

// IncreaseDefense adds an allocation point to an ability's paired defense
func (o *Orchestrator) IncreaseDefense(
	ctx context.Context,
	input *AbilityChangeInput,
) (*IncreaseDefenseOutput, error) {
	ch, err := o.loadFor(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.IncreaseDefense(ctx, &engine.AbilityInput{Character: ch, Ability: input.Ability})
	if err != nil {
		return nil, errors.Wrap(err, "failed to increase defense")
	}

	out := &IncreaseDefenseOutput{Character: ch, Check: result.Check}
	if !result.Check.Allowed {
		slog.Debug("Defense increase refused",
			"character_id", ch.ID,
			"defense", input.Ability.Defense(),
			"reason", result.Check.Reason,
		)
		return out, nil
	}

	out.Character, out.Cleanup, err = o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	out.Saved = true

	slog.Info("Defense increased",
		"character_id", ch.ID,
		"defense", input.Ability.Defense(),
		"cost", result.Check.Cost,
	)

	return out, nil
}

// DecreaseDefense removes an allocation point. Nothing is saved when the
// allocation is already zero.
func (o *Orchestrator) DecreaseDefense(
	ctx context.Context,
	input *AbilityChangeInput,
) (*DecreaseDefenseOutput, error) {
	ch, err := o.loadFor(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.DecreaseDefense(ctx, &engine.AbilityInput{Character: ch, Ability: input.Ability})
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrease defense")
	}

	out := &DecreaseDefenseOutput{Character: ch}
	if !result.Changed {
		return out, nil
	}

	out.Character, out.Cleanup, err = o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	out.Saved = true

	slog.Info("Defense decreased",
		"character_id", ch.ID,
		"defense", input.Ability.Defense(),
	)

	return out, nil
}

// SetMilestoneChoice records innate or feat at a mixed-archetype milestone
func (o *Orchestrator) SetMilestoneChoice(
	ctx context.Context,
	input *SetMilestoneChoiceInput,
) (*SetMilestoneChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.SetMilestoneChoice(ctx, &engine.SetMilestoneChoiceInput{
		Character: ch,
		Milestone: input.Milestone,
		Choice:    input.Choice,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set milestone choice")
	}

	out := &SetMilestoneChoiceOutput{Character: ch, Check: result.Check}
	if !result.Check.Allowed {
		slog.Debug("Milestone choice refused",
			"character_id", ch.ID,
			"milestone", input.Milestone,
			"reason", result.Check.Reason,
		)
		return out, nil
	}

	out.Character, out.Cleanup, err = o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	out.Saved = true

	slog.Info("Milestone choice set",
		"character_id", ch.ID,
		"milestone", input.Milestone,
		"choice", input.Choice,
	)

	return out, nil
}

// SetProficiency replaces the martial and power counters. Choices the new
// archetype no longer supports are dropped.
func (o *Orchestrator) SetProficiency(
	ctx context.Context,
	input *SetProficiencyInput,
) (*SetProficiencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.SetProficiency(ctx, &engine.SetProficiencyInput{
		Character: ch,
		Martial:   input.Martial,
		Power:     input.Power,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set proficiency")
	}

	saved, cleanup, err := o.save(ctx, result.Character)
	if err != nil {
		return nil, err
	}
	cleanup.DroppedMilestones = append(result.DroppedMilestones, cleanup.DroppedMilestones...)

	slog.Info("Proficiency set",
		"character_id", ch.ID,
		"martial", input.Martial,
		"power", input.Power,
		"archetype", result.Archetype,
		"dropped_milestones", cleanup.DroppedMilestones,
	)

	return &SetProficiencyOutput{
		Character: saved,
		Archetype: result.Archetype,
		Cleanup:   cleanup,
	}, nil
}

// SetLevel moves the character to a new level. Milestone choices above the
// new level are dropped.
func (o *Orchestrator) SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !formula.ValidLevel(input.Level) {
		return nil, errors.InvalidArgumentf("level must be between %d and %d", formula.MinLevel, formula.MaxLevel)
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	updated := ch.Clone()
	updated.Level = input.Level

	saved, cleanup, err := o.save(ctx, updated)
	if err != nil {
		return nil, err
	}

	slog.Info("Level set",
		"character_id", ch.ID,
		"from", ch.Level,
		"to", input.Level,
		"dropped_milestones", cleanup.DroppedMilestones,
	)

	return &SetLevelOutput{Character: saved, Cleanup: cleanup}, nil
}

func (o *Orchestrator) load(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return getOutput.Character, nil
}

func (o *Orchestrator) loadFor(ctx context.Context, input *AbilityChangeInput) (*character.Character, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := character.ParseAbility(string(input.Ability)); err != nil {
		return nil, err
	}
	return o.load(ctx, input.CharacterID)
}

func (o *Orchestrator) loadForSkill(ctx context.Context, input *SkillChangeInput) (*character.Character, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}
	return o.load(ctx, input.CharacterID)
}

// save runs the reconciliation passes, which also resolve every part
// reference into its catalog record, and persists the result

func (o *Orchestrator) save(ctx context.Context, ch *character.Character) (*character.Character, Cleanup, error) {
	reconciled, err := o.engine.Reconcile(ctx, &engine.ReconcileInput{Character: ch})
	if err != nil {
		return nil, Cleanup{}, errors.Wrap(err, "failed to reconcile character")
	}

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{
		Character: reconciled.Character,
	})
	if err != nil {
		return nil, Cleanup{}, errors.Wrap(err, "failed to save character")
	}

	return updateOutput.Character, Cleanup{
		ResetSkills:       reconciled.ResetSkills,
		DroppedMilestones: reconciled.DroppedMilestones,
	}, nil
}
