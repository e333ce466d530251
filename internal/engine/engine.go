package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/archetype"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/formula"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type engine struct {
	catalog *catalog.Catalog
}

// Config holds the dependencies for the engine
type Config struct {
	Catalog *catalog.Catalog
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// New creates an engine over the given catalog
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &engine{catalog: cfg.Catalog}, nil
}

func (e *engine) NewCharacter(_ context.Context, input *NewCharacterInput) (*NewCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("species", input.Species, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	species, err := e.catalog.Species(input.Species)
	if err != nil {
		return nil, err
	}

	base := make(map[character.Ability]int, len(species.Abilities))
	for name, v := range species.Abilities {
		a, err := character.ParseAbility(name)
		if err != nil {
			return nil, errors.Wrapf(err, "species %q", species.Name)
		}
		base[a] = v
	}

	granted := make(map[string]bool, len(species.Skills))
	for _, s := range species.Skills {
		granted[s] = true
	}

	var skills []character.Skill
	for _, s := range e.catalog.Skills() {
		skills = append(skills, character.Skill{
			Name:       s.Name,
			BaseSkill:  s.BaseSkill,
			Proficient: granted[s.Name] && s.BaseSkill == "",
		})
	}

	return &NewCharacterOutput{Character: &character.Character{
		ID:               input.ID,
		PlayerID:         input.PlayerID,
		Name:             input.Name,
		Species:          species.Name,
		Level:            formula.MinLevel,
		Abilities:        character.NewAbilityScores(base),
		Defenses:         map[character.Ability]int{},
		MilestoneChoices: map[int]character.MilestoneChoice{},
		Skills:           skills,
	}}, nil
}

func (e *engine) Summarize(_ context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	ch, err := characterFrom(input)
	if err != nil {
		return nil, err
	}

	if err := e.normalizeParts(ch); err != nil {
		return nil, err
	}

	progress := archetype.Compute(ch.Level, ch.MartialProficiency, ch.PowerProficiency, ch.MilestoneChoices)
	training := trainingEntries(ch)

	report, err := budget.Evaluate(budget.Input{
		Level:                   ch.Level,
		Abilities:               ch.Abilities,
		Defenses:                ch.Defenses,
		Skills:                  ch.Skills,
		Training:                training,
		Feats:                   ch.Feats,
		HighestArchetypeAbility: ch.HighestArchetypeAbility(),
		MartialProficiency:      ch.MartialProficiency,
		PowerProficiency:        ch.PowerProficiency,
		BonusArchetypeFeats:     progress.BonusArchetypeFeats,
		HealthEnergy:            ch.HealthEnergy,
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		CharacterID:    ch.ID,
		Level:          ch.Level,
		Archetype:      progress,
		Budget:         report,
		AbilityCeiling: formula.MaxAbility(ch.Level),
		DefenseCeiling: formula.MaxDefenseBonus(ch.Level),
		NegativeSum:    abilities.NegativeSum(ch.Abilities),
		Abilities:      make(map[character.Ability]int, len(character.Abilities)),
		Defenses:       make(map[string]int, len(character.Abilities)),
	}
	for _, a := range character.Abilities {
		summary.Abilities[a] = ch.Abilities.Value(a)
		summary.Defenses[a.Defense()] = ch.Abilities.Value(a) + ch.Defenses[a]
	}

	return &SummarizeOutput{Summary: summary}, nil
}

func (e *engine) IncreaseAbility(_ context.Context, input *AbilityInput) (*IncreaseAbilityOutput, error) {
	ch, err := abilityTarget(input)
	if err != nil {
		return nil, err
	}

	check, err := abilities.CanIncrease(ch.Abilities, input.Ability, ch.Level)
	if err != nil {
		return nil, err
	}
	if check.Allowed {
		ch.Abilities = ch.Abilities.With(input.Ability, ch.Abilities.Value(input.Ability)+1)
	}
	return &IncreaseAbilityOutput{Character: ch, Check: check}, nil
}

func (e *engine) DecreaseAbility(_ context.Context, input *AbilityInput) (*DecreaseAbilityOutput, error) {
	ch, err := abilityTarget(input)
	if err != nil {
		return nil, err
	}

	check, err := abilities.CanDecrease(ch.Abilities, input.Ability)
	if err != nil {
		return nil, err
	}
	if check.Allowed {
		ch.Abilities = ch.Abilities.With(input.Ability, ch.Abilities.Value(input.Ability)-1)
	}
	return &DecreaseAbilityOutput{Character: ch, Check: check}, nil
}

func (e *engine) SetSkillProficiency(
	_ context.Context,
	input *SetSkillProficiencyInput,
) (*SetSkillProficiencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ch, err := characterFrom(&SummarizeInput{Character: input.Character})
	if err != nil {
		return nil, err
	}

	i := ch.SkillIndex(input.Skill)
	if i < 0 {
		return nil, errors.NotFoundf("unknown skill %q", input.Skill)
	}

	var check budget.Check
	if input.Proficient {
		check, err = budget.CanSetProficient(ch.Skills, input.Skill)
		if err != nil {
			return nil, err
		}
		if !check.Allowed {
			return &SetSkillProficiencyOutput{Character: ch, Check: check}, nil
		}
		ch.Skills[i].Proficient = true
	} else {
		check = budget.Check{Allowed: true}
		ch.Skills[i].Proficient = false
		ch.Skills[i].Value = 0
	}

	var reset []string
	ch.Skills, reset = budget.ReconcileSkills(ch.Skills)

	return &SetSkillProficiencyOutput{Character: ch, Check: check, ResetSkills: reset}, nil
}

func (e *engine) IncreaseSkill(_ context.Context, input *SkillInput) (*IncreaseSkillOutput, error) {
	ch, i, err := skillTarget(input)
	if err != nil {
		return nil, err
	}

	check, err := budget.CanIncreaseSkill(ch.Skills, input.Skill)
	if err != nil {
		return nil, err
	}
	if check.Allowed {
		ch.Skills[i].Value++
	}
	return &IncreaseSkillOutput{Character: ch, Check: check}, nil
}

func (e *engine) DecreaseSkill(_ context.Context, input *SkillInput) (*DecreaseSkillOutput, error) {
	ch, i, err := skillTarget(input)
	if err != nil {
		return nil, err
	}

	check, err := budget.CanDecreaseSkill(ch.Skills, input.Skill)
	if err != nil {
		return nil, err
	}
	if check.Allowed {
		ch.Skills[i].Value--
	}
	return &DecreaseSkillOutput{Character: ch, Check: check}, nil
}

func (e *engine) IncreaseDefense(_ context.Context, input *AbilityInput) (*IncreaseDefenseOutput, error) {
	ch, err := abilityTarget(input)
	if err != nil {
		return nil, err
	}

	check, err := budget.CanIncreaseDefense(ch.Abilities, ch.Defenses, input.Ability, ch.Level)
	if err != nil {
		return nil, err
	}
	if check.Allowed {
		ch.Defenses[input.Ability]++
	}
	return &IncreaseDefenseOutput{Character: ch, Check: check}, nil
}

func (e *engine) DecreaseDefense(_ context.Context, input *AbilityInput) (*DecreaseDefenseOutput, error) {
	ch, err := abilityTarget(input)
	if err != nil {
		return nil, err
	}

	if ch.Defenses[input.Ability] <= 0 {
		return &DecreaseDefenseOutput{Character: ch}, nil
	}
	ch.Defenses[input.Ability]--
	if ch.Defenses[input.Ability] == 0 {
		delete(ch.Defenses, input.Ability)
	}
	return &DecreaseDefenseOutput{Character: ch, Changed: true}, nil
}

func (e *engine) SetMilestoneChoice(
	_ context.Context,
	input *SetMilestoneChoiceInput,
) (*SetMilestoneChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ch, err := characterFrom(&SummarizeInput{Character: input.Character})
	if err != nil {
		return nil, err
	}

	choices, check := archetype.ApplyMilestoneChoice(
		ch.MilestoneChoices, ch.Level, input.Milestone, input.Choice,
		ch.MartialProficiency, ch.PowerProficiency,
	)
	ch.MilestoneChoices = choices

	return &SetMilestoneChoiceOutput{Character: ch, Check: check}, nil
}

func (e *engine) SetProficiency(_ context.Context, input *SetProficiencyInput) (*SetProficiencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Martial < 0 || input.Power < 0 {
		return nil, errors.InvalidArgumentf("proficiency must not be negative (martial %d, power %d)",
			input.Martial, input.Power)
	}
	ch, err := characterFrom(&SummarizeInput{Character: input.Character})
	if err != nil {
		return nil, err
	}

	ch.MartialProficiency = input.Martial
	ch.PowerProficiency = input.Power

	var dropped []int
	ch.MilestoneChoices, dropped = archetype.PruneChoices(
		ch.MilestoneChoices, ch.Level, ch.MartialProficiency, ch.PowerProficiency,
	)

	return &SetProficiencyOutput{
		Character:         ch,
		Archetype:         archetype.Classify(ch.MartialProficiency, ch.PowerProficiency),
		DroppedMilestones: dropped,
	}, nil
}

func (e *engine) Reconcile(_ context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ch, err := characterFrom(&SummarizeInput{Character: input.Character})
	if err != nil {
		return nil, err
	}

	if err := e.normalizeParts(ch); err != nil {
		return nil, err
	}

	out := &ReconcileOutput{Character: ch}
	ch.Skills, out.ResetSkills = budget.ReconcileSkills(ch.Skills)
	ch.MilestoneChoices, out.DroppedMilestones = archetype.PruneChoices(
		ch.MilestoneChoices, ch.Level, ch.MartialProficiency, ch.PowerProficiency,
	)
	return out, nil
}

// normalizeParts replaces every part and property reference on ch with the
// resolved record. Unknown names fail here, before anything is priced.
func (e *engine) normalizeParts(ch *character.Character) error {
	for _, p := range ch.Powers {
		if err := normalizeUses(p.Name, p.Parts, e.catalog.NormalizePart); err != nil {
			return err
		}
	}
	for _, t := range ch.Techniques {
		if err := normalizeUses(t.Name, t.Parts, e.catalog.NormalizePart); err != nil {
			return err
		}
	}
	for _, it := range ch.Items {
		if err := normalizeUses(it.Name, it.Properties, e.catalog.NormalizeProperty); err != nil {
			return err
		}
	}
	return nil
}

// normalizeUses rewrites uses in place
func normalizeUses(owner string, uses []catalog.Use, normalize func(catalog.Use) (catalog.Use, error)) error {
	for i, use := range uses {
		n, err := normalize(use)
		if err != nil {
			return errors.Wrapf(err, "resolving %s", owner)
		}
		uses[i] = n
	}
	return nil
}

// trainingEntries prices every learned part and equipped property of a
// normalized character.
func trainingEntries(ch *character.Character) []budget.TrainingEntry {
	var entries []budget.TrainingEntry

	add := func(use catalog.Use) {
		part := use.Ref.Inline
		entries = append(entries, budget.TrainingEntry{
			Name:         part.Name,
			BaseCost:     part.BaseCost,
			OptionCosts:  part.OptionCosts,
			OptionLevels: use.OptionLevels,
		})
	}

	for _, p := range ch.Powers {
		for _, use := range p.Parts {
			add(use)
		}
	}
	for _, t := range ch.Techniques {
		for _, use := range t.Parts {
			add(use)
		}
	}
	for _, it := range ch.Items {
		if !it.Equipped {
			continue
		}
		for _, use := range it.Properties {
			add(use)
		}
	}
	return entries
}

// characterFrom validates the input character and returns a private copy.
func characterFrom(input *SummarizeInput) (*character.Character, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := input.Character.Validate(); err != nil {
		return nil, err
	}
	return input.Character.Clone(), nil
}

func abilityTarget(input *AbilityInput) (*character.Character, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Ability.Valid() {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}
	return characterFrom(&SummarizeInput{Character: input.Character})
}

func skillTarget(input *SkillInput) (*character.Character, int, error) {
	if input == nil {
		return nil, 0, errors.InvalidArgument("input is required")
	}
	ch, err := characterFrom(&SummarizeInput{Character: input.Character})
	if err != nil {
		return nil, 0, err
	}
	i := ch.SkillIndex(input.Skill)
	if i < 0 {
		return nil, 0, errors.NotFoundf("unknown skill %q", input.Skill)
	}
	return ch, i, nil
}
