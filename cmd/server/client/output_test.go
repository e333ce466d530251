package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/archetype"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
)

func TestPrintEntry(t *testing.T) {
	var buf bytes.Buffer
	printEntry(&buf, &dice.Entry{
		Kind:       dice.KindDamage,
		Label:      "Axe",
		Dice:       []dice.DieResult{{Sides: 6, Value: 4}, {Sides: 6, Value: 2}},
		Modifier:   3,
		Total:      9,
		DamageType: "slashing",
		RolledAt:   time.Date(2024, 1, 1, 12, 30, 5, 0, time.UTC),
	})

	assert.Equal(t, "[12:30:05] damage Axe  d6:4 d6:2 +3 = 9 slashing\n", buf.String())
}

func TestPrintEntry_CriticalMessage(t *testing.T) {
	var buf bytes.Buffer
	printEntry(&buf, &dice.Entry{
		Kind:            dice.KindAttack,
		Dice:            []dice.DieResult{{Sides: 20, Value: 20, Max: true}},
		Modifier:        -1,
		Total:           19,
		CriticalSuccess: true,
		Message:         "Critical success!",
	})

	assert.Contains(t, buf.String(), "d20:20 -1 = 19  Critical success!")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &engine.Summary{
		CharacterID: "char_1",
		Level:       2,
		Archetype:   archetype.Progress{Type: archetype.TypeMartial},
		Abilities:   map[character.Ability]int{character.Strength: 3},
		Defenses:    map[string]int{"might": 1},
		Budget: &budget.Report{Pools: map[budget.Category]budget.Pool{
			budget.CategoryAbilityPoints: budget.NewPool(7, 9),
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "Character char_1, level 2")
	assert.Contains(t, out, "strength")
	assert.Contains(t, out, "might")
	assert.Contains(t, out, "ability_points")
	assert.Contains(t, out, "over-budget")
}
