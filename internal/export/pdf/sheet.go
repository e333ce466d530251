// Package pdf renders a printable character sheet.
package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	margin     = 40.0
	lineHeight = 14.0
	labelWidth = 160.0
	valueWidth = 80.0
)

// RenderSheet draws the character and its derived summary on A4 pages.
func RenderSheet(ch *character.Character, summary *engine.Summary) ([]byte, error) {
	if ch == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if summary == nil {
		return nil, errors.InvalidArgument("summary is required")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(ch.Name, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, ch.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	subtitle := fmt.Sprintf("Level %d  %s  %s archetype", ch.Level, ch.Species, summary.Archetype.Type)
	pdf.CellFormat(0, lineHeight, subtitle, "", 1, "L", false, 0, "")
	pdf.Ln(lineHeight)

	heading(pdf, "Abilities")
	for _, a := range character.Abilities {
		row(pdf, display(string(a)), fmt.Sprintf("%d", ch.Abilities.Value(a)))
	}
	row(pdf, "ceiling", fmt.Sprintf("%d", summary.AbilityCeiling))
	pdf.Ln(lineHeight / 2)

	heading(pdf, "Defenses")
	for _, a := range character.Abilities {
		name := a.Defense()
		row(pdf, display(name), fmt.Sprintf("%d", summary.Defenses[name]))
	}
	pdf.Ln(lineHeight / 2)

	heading(pdf, "Archetype")
	p := summary.Archetype
	row(pdf, "martial proficiency", fmt.Sprintf("%d", ch.MartialProficiency))
	row(pdf, "power proficiency", fmt.Sprintf("%d", ch.PowerProficiency))
	row(pdf, "innate threshold", fmt.Sprintf("%d", p.InnateThreshold))
	row(pdf, "innate pools", fmt.Sprintf("%d", p.InnatePools))
	row(pdf, "innate energy", fmt.Sprintf("%d", p.InnateEnergy))
	row(pdf, "bonus archetype feats", fmt.Sprintf("%d", p.BonusArchetypeFeats))
	row(pdf, "armament proficiency", fmt.Sprintf("%d", p.ArmamentProficiency))
	for _, m := range sortedMilestones(ch.MilestoneChoices) {
		row(pdf, fmt.Sprintf("milestone %d", m), string(ch.MilestoneChoices[m]))
	}
	pdf.Ln(lineHeight / 2)

	if summary.Budget != nil {
		heading(pdf, "Budgets")
		for _, c := range budget.Categories {
			pool, ok := summary.Budget.Pools[c]
			if !ok {
				continue
			}
			row(pdf, display(string(c)), fmt.Sprintf("%d / %d", pool.Spent, pool.Total))
		}
		pdf.Ln(lineHeight / 2)
	}

	if len(ch.Skills) > 0 {
		heading(pdf, "Skills")
		for _, s := range ch.Skills {
			if !s.Proficient {
				continue
			}
			name := s.Name
			if s.IsSubSkill() {
				name = "  " + s.Name
			}
			row(pdf, name, fmt.Sprintf("%d", s.Value))
		}
		pdf.Ln(lineHeight / 2)
	}

	if len(ch.Feats) > 0 {
		heading(pdf, "Feats")
		for _, f := range ch.Feats {
			row(pdf, f.Name, string(f.Kind))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render character sheet")
	}
	return buf.Bytes(), nil
}

func heading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, lineHeight+4, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(labelWidth, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(valueWidth, lineHeight, value, "", 1, "R", false, 0, "")
}

// display turns a snake_case rule name into a label. Casers hold state, so
// each call gets its own.
func display(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func sortedMilestones(choices map[int]character.MilestoneChoice) []int {
	out := make([]int, 0, len(choices))
	for m := range choices {
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}
