// Package budget totals every point budget on the sheet and classifies each
// one as over budget, with points left, or exactly spent. Overspending is
// a valid state; it is flagged, never refused. Everything is recomputed
// from scratch on each call.
package budget

// State is the UI-facing classification of a pool.
type State string

const (
	StateOverBudget State = "over-budget"
	StateHasPoints  State = "has-points"
	StateNoPoints   State = "no-points"
)

// Category names a budget.
type Category string

const (
	CategoryAbilityPoints     Category = "ability_points"
	CategorySkillPoints       Category = "skill_points"
	CategoryTrainingPoints    Category = "training_points"
	CategoryProficiencyPoints Category = "proficiency_points"
	CategoryArchetypeFeats    Category = "archetype_feats"
	CategoryCharacterFeats    Category = "character_feats"
	CategoryHealthEnergy      Category = "health_energy"
)

// Categories lists every budget in display order.
var Categories = []Category{
	CategoryAbilityPoints,
	CategorySkillPoints,
	CategoryTrainingPoints,
	CategoryProficiencyPoints,
	CategoryArchetypeFeats,
	CategoryCharacterFeats,
	CategoryHealthEnergy,
}

// Pool is one budget's accounting.
type Pool struct {
	Total     int   `json:"total"`
	Spent     int   `json:"spent"`
	Remaining int   `json:"remaining"`
	State     State `json:"state"`
}

// NewPool derives Remaining and State from a total and a spend.
func NewPool(total, spent int) Pool {
	p := Pool{Total: total, Spent: spent, Remaining: total - spent}
	switch {
	case p.Remaining < 0:
		p.State = StateOverBudget
	case p.Remaining > 0:
		p.State = StateHasPoints
	default:
		p.State = StateNoPoints
	}
	return p
}
