// Package character defines the character record the rules engine reads.
// The record is plain data; every rule is re-derived from it on each call.
package character

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// EntityType is reported through core.Entity.
const EntityType = "character"

// MilestoneChoice is what a mixed archetype takes at a milestone level.
type MilestoneChoice string

const (
	ChoiceInnate MilestoneChoice = "innate"
	ChoiceFeat   MilestoneChoice = "feat"
)

// Valid reports whether c is a known choice.
func (c MilestoneChoice) Valid() bool {
	return c == ChoiceInnate || c == ChoiceFeat
}

// Skill is a base skill or, when BaseSkill is set, a sub-skill of it.
type Skill struct {
	Name       string `json:"name"`
	BaseSkill  string `json:"base_skill,omitempty"`
	Proficient bool   `json:"proficient"`
	Value      int    `json:"value"`
}

// IsSubSkill reports whether the skill hangs off a base skill.
func (s Skill) IsSubSkill() bool {
	return s.BaseSkill != ""
}

// FeatKind separates the two feat slot budgets.
type FeatKind string

const (
	FeatArchetype FeatKind = "archetype"
	FeatCharacter FeatKind = "character"
)

// Feat is a selected feat with its usage counter.
type Feat struct {
	Name    string   `json:"name"`
	Kind    FeatKind `json:"kind"`
	Uses    int      `json:"uses,omitempty"`
	MaxUses int      `json:"max_uses,omitempty"`
}

// UnmarshalJSON accepts a bare feat name as a character feat.
func (f *Feat) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*f = Feat{Name: name, Kind: FeatCharacter}
		return nil
	}

	type plain Feat
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.Wrap(err, "feat must be a name or an object")
	}
	if p.Kind == "" {
		p.Kind = FeatCharacter
	}
	*f = Feat(p)
	return nil
}

// Power is a learned power built from catalog parts.
type Power struct {
	Name  string        `json:"name"`
	Parts []catalog.Use `json:"parts"`
}

// Technique is a learned martial technique built from catalog parts.
type Technique struct {
	Name  string        `json:"name"`
	Parts []catalog.Use `json:"parts"`
}

// Item is an equipped item with its properties.
type Item struct {
	Name       string        `json:"name"`
	Equipped   bool          `json:"equipped"`
	Properties []catalog.Use `json:"properties"`
}

// HealthEnergy is how the health/energy pool has been split.
type HealthEnergy struct {
	Health int `json:"health"`
	Energy int `json:"energy"`
}

// Character is the full record persisted by the character repository.
type Character struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name"`
	Species  string `json:"species,omitempty"`
	Level    int    `json:"level"`

	Abilities AbilityScores   `json:"abilities"`
	Defenses  map[Ability]int `json:"defenses"`

	MartialProficiency int                     `json:"martial_proficiency"`
	PowerProficiency   int                     `json:"power_proficiency"`
	ArchetypeAbilities []Ability               `json:"archetype_abilities"`
	MilestoneChoices   map[int]MilestoneChoice `json:"milestone_choices"`

	Skills       []Skill      `json:"skills"`
	Feats        []Feat       `json:"feats"`
	Powers       []Power      `json:"powers"`
	Techniques   []Technique  `json:"techniques"`
	Items        []Item       `json:"items"`
	HealthEnergy HealthEnergy `json:"health_energy"`

	UpdatedAt time.Time `json:"updated_at"`
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityType
}

// Validate catches records that indicate a caller bug rather than a rule
// violation.
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateRange("level", c.Level, 1, 20, vb)

	for a := range c.Abilities.Base {
		if !a.Valid() {
			vb.Fieldf("abilities.base", "unknown ability %q", a)
		}
	}
	for a := range c.Abilities.Current {
		if !a.Valid() {
			vb.Fieldf("abilities", "unknown ability %q", a)
		}
	}
	for a := range c.Defenses {
		if !a.Valid() {
			vb.Fieldf("defenses", "unknown ability %q", a)
		}
	}
	for _, a := range c.ArchetypeAbilities {
		if !a.Valid() {
			vb.Fieldf("archetype_abilities", "unknown ability %q", a)
		}
	}
	if c.MartialProficiency < 0 || c.PowerProficiency < 0 {
		vb.Field("proficiency", "must not be negative")
	}
	for lvl, choice := range c.MilestoneChoices {
		if !choice.Valid() {
			vb.Fieldf("milestone_choices", "unknown choice %q at level %d", choice, lvl)
		}
	}
	for _, s := range c.Skills {
		if s.Value < 0 {
			vb.Fieldf("skills", "%s has a negative value", s.Name)
		}
	}
	for _, f := range c.Feats {
		if f.Kind != FeatArchetype && f.Kind != FeatCharacter {
			vb.Fieldf("feats", "%s has unknown kind %q", f.Name, f.Kind)
		}
	}
	for _, p := range c.Powers {
		validateUses("powers", p.Name, p.Parts, vb)
	}
	for _, t := range c.Techniques {
		validateUses("techniques", t.Name, t.Parts, vb)
	}
	for _, it := range c.Items {
		validateUses("items", it.Name, it.Properties, vb)
	}

	return vb.Build()
}

// validateUses rejects negative option levels. A negative level would
// subtract from the part's cost instead of buying nothing.
func validateUses(field, owner string, uses []catalog.Use, vb *errors.ValidationBuilder) {
	for _, u := range uses {
		for tier, lvl := range u.OptionLevels {
			if lvl < 0 {
				vb.Fieldf(field, "%s: %s option %d has negative level %d", owner, u.Ref.Name, tier+1, lvl)
			}
		}
	}
}

// Clone returns a deep copy so callers can derive new states without
// touching the original.
func (c *Character) Clone() *Character {
	out := *c
	out.Abilities = c.Abilities.Clone()

	out.Defenses = make(map[Ability]int, len(c.Defenses))
	for a, v := range c.Defenses {
		out.Defenses[a] = v
	}

	out.ArchetypeAbilities = append([]Ability(nil), c.ArchetypeAbilities...)

	if c.MilestoneChoices != nil {
		out.MilestoneChoices = make(map[int]MilestoneChoice, len(c.MilestoneChoices))
		for lvl, ch := range c.MilestoneChoices {
			out.MilestoneChoices[lvl] = ch
		}
	}

	out.Skills = append([]Skill(nil), c.Skills...)
	out.Feats = append([]Feat(nil), c.Feats...)

	out.Powers = make([]Power, len(c.Powers))
	for i, p := range c.Powers {
		out.Powers[i] = Power{Name: p.Name, Parts: cloneUses(p.Parts)}
	}
	out.Techniques = make([]Technique, len(c.Techniques))
	for i, t := range c.Techniques {
		out.Techniques[i] = Technique{Name: t.Name, Parts: cloneUses(t.Parts)}
	}
	out.Items = make([]Item, len(c.Items))
	for i, it := range c.Items {
		out.Items[i] = Item{Name: it.Name, Equipped: it.Equipped, Properties: cloneUses(it.Properties)}
	}

	return &out
}

// cloneUses copies uses along with any inline part they carry
func cloneUses(uses []catalog.Use) []catalog.Use {
	if uses == nil {
		return nil
	}
	out := make([]catalog.Use, len(uses))
	for i, u := range uses {
		if u.Ref.Inline != nil {
			u.Ref = catalog.InlineRef(*u.Ref.Inline)
		}
		out[i] = u
	}
	return out
}

// HighestArchetypeAbility is the best current score among the archetype
// abilities, or 0 when none are chosen.
func (c *Character) HighestArchetypeAbility() int {
	best := 0
	for i, a := range c.ArchetypeAbilities {
		v := c.Abilities.Value(a)
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}

// SkillIndex finds a skill by name.
func (c *Character) SkillIndex(name string) int {
	for i, s := range c.Skills {
		if s.Name == name {
			return i
		}
	}
	return -1
}
