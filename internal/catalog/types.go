// Package catalog holds the read-only game content the rules engine prices
// against: parts, item properties, skills and species. Tables are loaded
// once and never mutated.
package catalog

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// OptionTiers is the number of independently leveled options on a part or property.
const OptionTiers = 3

// Part is a power/technique part or an item property with its training point
// costs. OptionCosts[i] is charged once per level of option i.
type Part struct {
	Name        string               `json:"name" yaml:"name"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	BaseCost    float64              `json:"base_cost" yaml:"base_cost"`
	OptionCosts [OptionTiers]float64 `json:"option_costs" yaml:"option_costs"`
}

// Skill is a catalog skill. Sub-skills name their base skill.
type Skill struct {
	Name      string `json:"name" yaml:"name"`
	Ability   string `json:"ability,omitempty" yaml:"ability,omitempty"`
	BaseSkill string `json:"base_skill,omitempty" yaml:"base_skill,omitempty"`
}

// Species supplies the ancestry baseline for ability scores.
type Species struct {
	Name      string         `json:"name" yaml:"name"`
	Abilities map[string]int `json:"abilities" yaml:"abilities"`
	Skills    []string       `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Ref points at a catalog part either by name or by carrying the full
// record. On the wire it is a bare string or an object.
type Ref struct {
	Name   string
	Inline *Part
}

// RefTo builds a by-name reference.
func RefTo(name string) Ref {
	return Ref{Name: name}
}

// InlineRef builds a reference that carries its own record.
func InlineRef(p Part) Ref {
	return Ref{Name: p.Name, Inline: &p}
}

// MarshalJSON writes a bare name unless the reference is inline.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Inline != nil {
		return json.Marshal(r.Inline)
	}
	return json.Marshal(r.Name)
}

// UnmarshalJSON accepts either a string or a Part object.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*r = RefTo(name)
		return nil
	}

	var p Part
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.Wrap(err, "part reference must be a name or an object")
	}
	*r = InlineRef(p)
	return nil
}

// UnmarshalYAML accepts either a scalar name or a mapping.
func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*r = RefTo(node.Value)
		return nil
	}

	var p Part
	if err := node.Decode(&p); err != nil {
		return errors.Wrap(err, "part reference must be a name or a mapping")
	}
	*r = InlineRef(p)
	return nil
}

// Use is a part or property as taken by a character, with the level chosen
// for each option tier.
type Use struct {
	Ref          Ref              `json:"ref" yaml:"ref"`
	OptionLevels [OptionTiers]int `json:"option_levels" yaml:"option_levels"`
}
