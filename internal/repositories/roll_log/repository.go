// Package rolllog mirrors a session's dice roll log into a shared store so
// other devices can read it. The in-memory log stays authoritative.
package rolllog

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log Repository

// AppendInput adds one entry to the front of a session's log
type AppendInput struct {
	SessionID string
	Entry     *dice.Entry
}

// AppendOutput reports the log length after the append and any trim
type AppendOutput struct {
	Length int
}

// ListInput reads a session's log, newest first. Limit <= 0 reads all.
type ListInput struct {
	SessionID string
	Limit     int
}

// ListOutput contains the mirrored entries, newest first
type ListOutput struct {
	Entries []dice.Entry
}

// ClearInput removes a session's log
type ClearInput struct {
	SessionID string
}

// ClearOutput contains the number of entries removed
type ClearOutput struct {
	RollsDeleted int
}

// Repository defines the interface for roll log storage operations
type Repository interface {
	// Append pushes an entry, trims to the configured cap and refreshes the TTL
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns entries newest first; an unknown session is an empty log
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear deletes a session's log
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
