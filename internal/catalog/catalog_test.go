package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	c, err := catalog.LoadYAML("testdata/catalog.yaml")
	s.Require().NoError(err)
	s.catalog = c
}

func (s *CatalogTestSuite) TestResolveByName() {
	p, err := s.catalog.ResolvePart(catalog.RefTo("Damage"))
	s.Require().NoError(err)
	s.Equal(1.0, p.BaseCost)
	s.Equal([catalog.OptionTiers]float64{1, 0.5, 0}, p.OptionCosts)

	prop, err := s.catalog.ResolveProperty(catalog.RefTo("Reach"))
	s.Require().NoError(err)
	s.Equal("Reach", prop.Name)
}

func (s *CatalogTestSuite) TestResolveInlineSkipsTables() {
	inline := catalog.InlineRef(catalog.Part{Name: "Homebrew", BaseCost: 4})

	p, err := s.catalog.ResolvePart(inline)
	s.Require().NoError(err)
	s.Equal(4.0, p.BaseCost)

	p, err = catalog.Empty().ResolveProperty(inline)
	s.Require().NoError(err)
	s.Equal("Homebrew", p.Name)
}

func (s *CatalogTestSuite) TestResolveUnknown() {
	_, err := s.catalog.ResolvePart(catalog.RefTo("Teleport"))
	s.True(errors.IsNotFound(err))

	// parts and properties are separate tables
	_, err = s.catalog.ResolveProperty(catalog.RefTo("Damage"))
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestNormalizeInlinesTheRecord() {
	use := catalog.Use{Ref: catalog.RefTo("Damage"), OptionLevels: [catalog.OptionTiers]int{2, 0, 0}}

	n, err := s.catalog.NormalizePart(use)
	s.Require().NoError(err)
	s.Require().NotNil(n.Ref.Inline)
	s.Equal("Damage", n.Ref.Name)
	s.Equal(1.0, n.Ref.Inline.BaseCost)
	s.Equal(use.OptionLevels, n.OptionLevels)
	s.Nil(use.Ref.Inline, "the argument is not modified")

	// already normalized uses need no table
	again, err := catalog.Empty().NormalizePart(n)
	s.Require().NoError(err)
	s.Equal(n, again)

	_, err = s.catalog.NormalizeProperty(catalog.Use{Ref: catalog.RefTo("Teleport")})
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestSkillsAndSpecies() {
	skills := s.catalog.Skills()
	s.Require().Len(skills, 3)
	s.Equal("Athletics", skills[0].Name)
	s.Equal("Athletics", skills[1].BaseSkill)

	sk, ok := s.catalog.Skill("Insight")
	s.True(ok)
	s.Equal("acuity", sk.Ability)

	dwarf, err := s.catalog.Species("Dwarf")
	s.Require().NoError(err)
	s.Equal(1, dwarf.Abilities["vitality"])
	s.Equal([]string{"Dwarf", "Human"}, s.catalog.SpeciesNames())

	_, err = s.catalog.Species("Elf")
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestNewRejectsBadTables() {
	_, err := catalog.New(catalog.Tables{Parts: []catalog.Part{{Name: "A"}, {Name: "A"}}})
	s.True(errors.IsAlreadyExists(err))

	_, err = catalog.New(catalog.Tables{Skills: []catalog.Skill{{Name: "Climbing", BaseSkill: "Athletics"}}})
	s.True(errors.IsNotFound(err))

	_, err = catalog.ParseYAML([]byte("parts: [unterminated"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestRefJSON() {
	var uses []catalog.Use
	err := json.Unmarshal([]byte(`[
		{"ref": "Damage", "option_levels": [2, 0, 0]},
		{"ref": {"name": "Homebrew", "base_cost": 2, "option_costs": [1, 0, 0]}, "option_levels": [1, 0, 0]}
	]`), &uses)
	s.Require().NoError(err)
	s.Require().Len(uses, 2)
	s.Equal("Damage", uses[0].Ref.Name)
	s.Nil(uses[0].Ref.Inline)
	s.Require().NotNil(uses[1].Ref.Inline)
	s.Equal(2.0, uses[1].Ref.Inline.BaseCost)

	out, err := json.Marshal(uses[0].Ref)
	s.Require().NoError(err)
	s.JSONEq(`"Damage"`, string(out))

	out, err = json.Marshal(uses[1].Ref)
	s.Require().NoError(err)
	s.Contains(string(out), `"base_cost":2`)
}

func (s *CatalogTestSuite) TestRefYAML() {
	var uses []catalog.Use
	err := yaml.Unmarshal([]byte(`
- ref: Reach
  option_levels: [1, 0, 0]
- ref:
    name: Spiked
    base_cost: 1.5
    option_costs: [0, 0, 0]
  option_levels: [0, 0, 0]
`), &uses)
	s.Require().NoError(err)
	s.Require().Len(uses, 2)
	s.Equal("Reach", uses[0].Ref.Name)
	s.Equal(1, uses[0].OptionLevels[0])
	s.Require().NotNil(uses[1].Ref.Inline)
	s.Equal(1.5, uses[1].Ref.Inline.BaseCost)
}
