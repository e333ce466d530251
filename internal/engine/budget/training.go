package budget

import (
	"math"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
)

// TrainingEntry is a proficiency entry derived from a learned part or an
// equipped item property.
type TrainingEntry struct {
	Name         string
	BaseCost     float64
	OptionCosts  [catalog.OptionTiers]float64
	OptionLevels [catalog.OptionTiers]int
}

// Cost is base + sum(optionCost * optionLevel), floored.
func (e TrainingEntry) Cost() int {
	total := e.BaseCost
	for i := range e.OptionCosts {
		total += e.OptionCosts[i] * float64(e.OptionLevels[i])
	}
	return int(math.Floor(total))
}

// PricedEntry is a visible line of the training budget.
type PricedEntry struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// trainingKey identifies a resolved part. Two entries only merge when they
// priced the same record, so a homebrew part that reuses a catalog name is
// counted on its own.
type trainingKey struct {
	name        string
	baseCost    float64
	optionCosts [catalog.OptionTiers]float64
}

// DedupTraining merges entries for the same resolved part (name and costs),
// keeping the highest level taken for each option tier. First-seen order is
// preserved.
func DedupTraining(entries []TrainingEntry) []TrainingEntry {
	index := make(map[trainingKey]int, len(entries))
	out := make([]TrainingEntry, 0, len(entries))

	for _, e := range entries {
		key := trainingKey{name: e.Name, baseCost: e.BaseCost, optionCosts: e.OptionCosts}
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, e)
			continue
		}
		for tier := range e.OptionLevels {
			if e.OptionLevels[tier] > out[i].OptionLevels[tier] {
				out[i].OptionLevels[tier] = e.OptionLevels[tier]
			}
		}
	}
	return out
}

// TrainingSpend prices deduplicated entries. Only entries with a positive
// cost are listed and counted.
func TrainingSpend(entries []TrainingEntry) (int, []PricedEntry) {
	spent := 0
	var visible []PricedEntry
	for _, e := range DedupTraining(entries) {
		cost := e.Cost()
		if cost <= 0 {
			continue
		}
		spent += cost
		visible = append(visible, PricedEntry{Name: e.Name, Cost: cost})
	}
	return spent, visible
}
