package dice

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
)

// RollPoolInput defines the request for rolling a built pool
type RollPoolInput struct {
	SessionID string
	Pool      dice.Pool
	Kind      dice.Kind // defaults to custom
	Label     string
}

// RollPoolOutput defines the response for rolling a pool. Entry is nil when
// the pool was empty and nothing was rolled.
type RollPoolOutput struct {
	Entry *dice.Entry
}

// RollCheckInput defines the request for a d20 check
type RollCheckInput struct {
	SessionID string
	Kind      dice.Kind
	Label     string
	Bonus     int
}

// RollCheckOutput defines the response for a d20 check
type RollCheckOutput struct {
	Entry *dice.Entry
}

// RollDamageInput defines the request for a damage roll from notation
type RollDamageInput struct {
	SessionID string
	Notation  string // e.g. "2d6+3 fire"
	Label     string
	Bonus     int
}

// RollDamageOutput defines the response for a damage roll
type RollDamageOutput struct {
	Entry *dice.Entry
}

// GetLogInput defines the request for reading a session log
type GetLogInput struct {
	SessionID string
	Limit     int
}

// GetLogOutput contains the session's entries, newest first
type GetLogOutput struct {
	Entries []dice.Entry
	// Mirrored is set when the entries came from the shared store because
	// this process holds no log for the session.
	Mirrored bool
}

// ClearLogInput defines the request for clearing a session log
type ClearLogInput struct {
	SessionID string
}

// ClearLogOutput defines the response for clearing a session log
type ClearLogOutput struct {
	RollsDeleted int
}
