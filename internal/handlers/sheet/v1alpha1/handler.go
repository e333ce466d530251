// Package v1alpha1 handles the sheet gRPC service interface
package v1alpha1

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/archetype"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	enginedice "github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SheetService sheet.Service
	DiceService  dice.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}

	return vb.Build()
}

// Handler implements SheetServiceServer
type Handler struct {
	sheetService sheet.Service
	diceService  dice.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
		diceService:  cfg.DiceService,
	}, nil
}

// Ensure Handler implements the server interface
var _ SheetServiceServer = (*Handler)(nil)

// CreateCharacter creates a level 1 character for a player
func (h *Handler) CreateCharacter(ctx context.Context, req *CreateCharacterRequest) (*CharacterResponse, error) {
	output, err := h.sheetService.CreateCharacter(ctx, &sheet.CreateCharacterInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Species:  req.Species,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CharacterResponse{Character: output.Character}, nil
}

// GetCharacter returns a stored character
func (h *Handler) GetCharacter(ctx context.Context, req *CharacterRequest) (*CharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.sheetService.GetCharacter(ctx, &sheet.GetCharacterInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CharacterResponse{Character: output.Character}, nil
}

// ListCharacters returns a player's characters
func (h *Handler) ListCharacters(ctx context.Context, req *ListCharactersRequest) (*ListCharactersResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.sheetService.ListCharacters(ctx, &sheet.ListCharactersInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListCharactersResponse{Characters: output.Characters}, nil
}

// DeleteCharacter removes a character
func (h *Handler) DeleteCharacter(ctx context.Context, req *CharacterRequest) (*DeleteCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	if _, err := h.sheetService.DeleteCharacter(ctx, &sheet.DeleteCharacterInput{
		CharacterID: req.CharacterID,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteCharacterResponse{}, nil
}

// GetSummary returns every derived value for a character
func (h *Handler) GetSummary(ctx context.Context, req *CharacterRequest) (*GetSummaryResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.sheetService.GetSummary(ctx, &sheet.GetSummaryInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSummaryResponse{Summary: output.Summary}, nil
}

// IncreaseAbility raises an ability by one point
func (h *Handler) IncreaseAbility(ctx context.Context, req *AbilityRequest) (*ChangeResponse, error) {
	input, err := abilityInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.IncreaseAbility(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Check:             increaseCheck(output.Check),
		Saved:             output.Saved,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// DecreaseAbility lowers an ability by one point
func (h *Handler) DecreaseAbility(ctx context.Context, req *AbilityRequest) (*ChangeResponse, error) {
	input, err := abilityInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.DecreaseAbility(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Check:             decreaseCheck(output.Check),
		Saved:             output.Saved,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// SetSkillProficiency toggles a skill
func (h *Handler) SetSkillProficiency(ctx context.Context, req *SetSkillProficiencyRequest) (*ChangeResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Skill == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	output, err := h.sheetService.SetSkillProficiency(ctx, &sheet.SetSkillProficiencyInput{
		CharacterID: req.CharacterID,
		Skill:       req.Skill,
		Proficient:  req.Proficient,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Check:             budgetCheck(output.Check),
		Saved:             output.Saved,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// IncreaseSkill raises a skill's value by one point
func (h *Handler) IncreaseSkill(ctx context.Context, req *SkillRequest) (*ChangeResponse, error) {
	input, err := skillInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.IncreaseSkill(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Check:             budgetCheck(output.Check),
		Saved:             output.Saved,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// DecreaseSkill lowers a skill's value by one point
func (h *Handler) DecreaseSkill(ctx context.Context, req *SkillRequest) (*ChangeResponse, error) {
	input, err := skillInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.DecreaseSkill(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Check:             budgetCheck(output.Check),
		Saved:             output.Saved,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// IncreaseDefense adds an allocation point to a defense
func (h *Handler) IncreaseDefense(ctx context.Context, req *AbilityRequest) (*ChangeResponse, error) {
	input, err := abilityInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.IncreaseDefense(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Check:             budgetCheck(output.Check),
		Saved:             output.Saved,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// DecreaseDefense removes an allocation point from a defense
func (h *Handler) DecreaseDefense(ctx context.Context, req *AbilityRequest) (*ChangeResponse, error) {
	input, err := abilityInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.DecreaseDefense(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Saved:             output.Saved,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// SetMilestoneChoice picks innate or feat at a milestone
func (h *Handler) SetMilestoneChoice(ctx context.Context, req *SetMilestoneChoiceRequest) (*ChangeResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.sheetService.SetMilestoneChoice(ctx, &sheet.SetMilestoneChoiceInput{
		CharacterID: req.CharacterID,
		Milestone:   req.Milestone,
		Choice:      character.MilestoneChoice(strings.ToLower(req.Choice)),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Check:             choiceCheck(output.Check),
		Saved:             output.Saved,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// SetProficiency replaces both proficiency counters
func (h *Handler) SetProficiency(ctx context.Context, req *SetProficiencyRequest) (*ChangeResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.sheetService.SetProficiency(ctx, &sheet.SetProficiencyInput{
		CharacterID: req.CharacterID,
		Martial:     req.Martial,
		Power:       req.Power,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Saved:             true,
		Archetype:         string(output.Archetype),
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// SetLevel moves a character to a level
func (h *Handler) SetLevel(ctx context.Context, req *SetLevelRequest) (*ChangeResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.sheetService.SetLevel(ctx, &sheet.SetLevelInput{
		CharacterID: req.CharacterID,
		Level:       req.Level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeResponse{
		Character:         output.Character,
		Saved:             true,
		ResetSkills:       output.Cleanup.ResetSkills,
		DroppedMilestones: output.Cleanup.DroppedMilestones,
	}, nil
}

// RollPool rolls a pool of dice into the session log
func (h *Handler) RollPool(ctx context.Context, req *RollPoolRequest) (*RollResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	pool, err := toPool(req.Dice, req.Modifier)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.diceService.RollPool(ctx, &dice.RollPoolInput{
		SessionID: req.SessionID,
		Pool:      pool,
		Kind:      enginedice.Kind(req.Kind),
		Label:     req.Label,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollResponse{Entry: output.Entry}, nil
}

// RollCheck rolls a d20 check into the session log
func (h *Handler) RollCheck(ctx context.Context, req *RollCheckRequest) (*RollResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	if req.Kind == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("kind is required"))
	}

	output, err := h.diceService.RollCheck(ctx, &dice.RollCheckInput{
		SessionID: req.SessionID,
		Kind:      enginedice.Kind(req.Kind),
		Label:     req.Label,
		Bonus:     req.Bonus,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollResponse{Entry: output.Entry}, nil
}

// RollDamage rolls damage notation into the session log
func (h *Handler) RollDamage(ctx context.Context, req *RollDamageRequest) (*RollResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	if req.Notation == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}

	output, err := h.diceService.RollDamage(ctx, &dice.RollDamageInput{
		SessionID: req.SessionID,
		Notation:  req.Notation,
		Label:     req.Label,
		Bonus:     req.Bonus,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollResponse{Entry: output.Entry}, nil
}

// GetRollLog returns a session's roll log, newest first
func (h *Handler) GetRollLog(ctx context.Context, req *RollLogRequest) (*GetRollLogResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.diceService.GetLog(ctx, &dice.GetLogInput{
		SessionID: req.SessionID,
		Limit:     req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetRollLogResponse{Entries: output.Entries, Mirrored: output.Mirrored}, nil
}

// ClearRollLog empties a session's roll log
func (h *Handler) ClearRollLog(ctx context.Context, req *RollLogRequest) (*ClearRollLogResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.diceService.ClearLog(ctx, &dice.ClearLogInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearRollLogResponse{RollsDeleted: output.RollsDeleted}, nil
}

func abilityInput(req *AbilityRequest) (*sheet.AbilityChangeInput, error) {
	if req.CharacterID == "" {
		return nil, errors.InvalidArgument("character_id is required")
	}

	ability, err := character.ParseAbility(req.Ability)
	if err != nil {
		return nil, err
	}

	return &sheet.AbilityChangeInput{CharacterID: req.CharacterID, Ability: ability}, nil
}

func skillInput(req *SkillRequest) (*sheet.SkillChangeInput, error) {
	if req.CharacterID == "" {
		return nil, errors.InvalidArgument("character_id is required")
	}
	if req.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}
	return &sheet.SkillChangeInput{CharacterID: req.CharacterID, Skill: req.Skill}, nil
}

// toPool converts "d6"-style keys into a dice pool
func toPool(counts map[string]int, modifier int) (enginedice.Pool, error) {
	pool := enginedice.NewPool()
	pool.Modifier = modifier

	for name, count := range counts {
		sides, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(name), "d"))
		if err != nil || !enginedice.Die(sides).Valid() {
			return enginedice.Pool{}, errors.InvalidArgumentf("unknown die %q", name)
		}
		if count == 0 {
			continue
		}
		pool.Counts[enginedice.Die(sides)] = count
	}

	return pool, nil
}

func increaseCheck(c abilities.IncreaseCheck) *Check {
	return &Check{
		Allowed:    c.Allowed,
		Reason:     string(c.Reason),
		Cost:       c.Cost,
		Remaining:  c.Remaining,
		OverBudget: c.OverBudget,
	}
}

func decreaseCheck(c abilities.DecreaseCheck) *Check {
	return &Check{Allowed: c.Allowed, Reason: string(c.Reason), Refund: c.Refund}
}

func budgetCheck(c budget.Check) *Check {
	return &Check{Allowed: c.Allowed, Reason: string(c.Reason), Cost: c.Cost}
}

func choiceCheck(c archetype.ChoiceCheck) *Check {
	return &Check{Allowed: c.Allowed, Reason: string(c.Reason)}
}
