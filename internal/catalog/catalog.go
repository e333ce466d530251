package catalog

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Tables is the serialized catalog layout.
type Tables struct {
	Parts      []Part    `yaml:"parts"`
	Properties []Part    `yaml:"properties"`
	Skills     []Skill   `yaml:"skills"`
	Species    []Species `yaml:"species"`
}

// Catalog indexes Tables by name.
type Catalog struct {
	parts      map[string]Part
	properties map[string]Part
	skills     map[string]Skill
	species    map[string]Species
	skillOrder []string
}

// New indexes the given tables. Duplicate names are rejected.
func New(t Tables) (*Catalog, error) {
	c := &Catalog{
		parts:      make(map[string]Part, len(t.Parts)),
		properties: make(map[string]Part, len(t.Properties)),
		skills:     make(map[string]Skill, len(t.Skills)),
		species:    make(map[string]Species, len(t.Species)),
	}

	for _, p := range t.Parts {
		if _, dup := c.parts[p.Name]; dup {
			return nil, errors.AlreadyExistsf("duplicate part %q", p.Name)
		}
		c.parts[p.Name] = p
	}
	for _, p := range t.Properties {
		if _, dup := c.properties[p.Name]; dup {
			return nil, errors.AlreadyExistsf("duplicate property %q", p.Name)
		}
		c.properties[p.Name] = p
	}
	for _, s := range t.Skills {
		if _, dup := c.skills[s.Name]; dup {
			return nil, errors.AlreadyExistsf("duplicate skill %q", s.Name)
		}
		c.skills[s.Name] = s
		c.skillOrder = append(c.skillOrder, s.Name)
	}
	for _, s := range t.Species {
		if _, dup := c.species[s.Name]; dup {
			return nil, errors.AlreadyExistsf("duplicate species %q", s.Name)
		}
		c.species[s.Name] = s
	}

	for _, s := range t.Skills {
		if s.BaseSkill == "" {
			continue
		}
		if _, ok := c.skills[s.BaseSkill]; !ok {
			return nil, errors.NotFoundf("skill %q names unknown base skill %q", s.Name, s.BaseSkill)
		}
	}

	return c, nil
}

// Empty returns a catalog with no entries. Inline references still resolve.
func Empty() *Catalog {
	c, _ := New(Tables{})
	return c
}

// LoadYAML reads a catalog file.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	return ParseYAML(data)
}

// ParseYAML decodes catalog tables from YAML.
func ParseYAML(data []byte) (*Catalog, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog YAML")
	}
	return New(t)
}

// ResolvePart normalizes a part reference.
func (c *Catalog) ResolvePart(r Ref) (Part, error) {
	return resolve(r, c.parts, "part")
}

// ResolveProperty normalizes an item property reference.
func (c *Catalog) ResolveProperty(r Ref) (Part, error) {
	return resolve(r, c.properties, "property")
}

// NormalizePart returns u with its reference replaced by the resolved part.
// A normalized use prices the same without the tables.
func (c *Catalog) NormalizePart(u Use) (Use, error) {
	return normalize(u, c.parts, "part")
}

// NormalizeProperty is NormalizePart for item properties.
func (c *Catalog) NormalizeProperty(u Use) (Use, error) {
	return normalize(u, c.properties, "property")
}

func normalize(u Use, table map[string]Part, kind string) (Use, error) {
	if u.Ref.Inline != nil {
		return u, nil
	}
	p, err := resolve(u.Ref, table, kind)
	if err != nil {
		return Use{}, err
	}
	u.Ref = InlineRef(p)
	return u, nil
}

func resolve(r Ref, table map[string]Part, kind string) (Part, error) {
	if r.Inline != nil {
		return *r.Inline, nil
	}
	p, ok := table[r.Name]
	if !ok {
		return Part{}, errors.NotFoundf("unknown %s %q", kind, r.Name)
	}
	return p, nil
}

// Skill looks up a skill by name.
func (c *Catalog) Skill(name string) (Skill, bool) {
	s, ok := c.skills[name]
	return s, ok
}

// Skills returns every skill in file order.
func (c *Catalog) Skills() []Skill {
	out := make([]Skill, 0, len(c.skillOrder))
	for _, name := range c.skillOrder {
		out = append(out, c.skills[name])
	}
	return out
}

// Species looks up a species by name.
func (c *Catalog) Species(name string) (Species, error) {
	s, ok := c.species[name]
	if !ok {
		return Species{}, errors.NotFoundf("unknown species %q", name)
	}
	return s, nil
}

// SpeciesNames lists species in sorted order.
func (c *Catalog) SpeciesNames() []string {
	names := make([]string, 0, len(c.species))
	for name := range c.species {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
