// Package dice implements the dice orchestrator that keeps a roll log per session
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

// DefaultMaxEntries caps each session log when the config leaves it unset
const DefaultMaxEntries = 50

// sweepInterval bounds how often idle sessions are looked for
const sweepInterval = time.Minute

// Service defines the interface for dice operations
type Service interface {
	RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error)
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)

	GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error)
	ClearLog(ctx context.Context, input *ClearLogInput) (*ClearLogOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Roller *dice.Roller
	// RollLogRepo is optional. When set every entry is mirrored to it.
	RollLogRepo rolllog.Repository
	MaxEntries  int
	// IdleTTL drops a session's in-memory log once it has gone unused for
	// this long. Zero keeps sessions until they are cleared.
	IdleTTL time.Duration
	Clock   clock.Clock // defaults to the system clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.MaxEntries < 0 {
		vb.Field("MaxEntries", "must not be negative")
	}
	if c.IdleTTL < 0 {
		vb.Field("IdleTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	roller      *dice.Roller
	rollLogRepo rolllog.Repository
	maxEntries  int
	idleTTL     time.Duration
	clock       clock.Clock

	mu        sync.Mutex
	sessions  map[string]*session
	lastSweep time.Time
}

type session struct {
	log      *dice.Log
	lastUsed time.Time
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		roller:      cfg.Roller,
		rollLogRepo: cfg.RollLogRepo,
		maxEntries:  maxEntries,
		idleTTL:     cfg.IdleTTL,
		clock:       clk,
		sessions:    make(map[string]*session),
	}, nil
}

// RollPool rolls the pool and records the entry. An empty pool is a no-op.
func (o *orchestrator) RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	kind := input.Kind
	if kind == "" {
		kind = dice.KindCustom
	}

	entry, err := o.roller.RollPool(input.Pool, kind, input.Label)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll pool")
	}
	if entry == nil {
		return &RollPoolOutput{}, nil
	}

	o.record(ctx, input.SessionID, entry)

	return &RollPoolOutput{Entry: entry}, nil
}

// RollCheck rolls a d20 plus bonus and records the entry
func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Kind == "" {
		return nil, errors.InvalidArgument("roll kind is required")
	}

	entry, err := o.roller.RollCheck(input.Kind, input.Label, input.Bonus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll check")
	}

	o.record(ctx, input.SessionID, entry)

	return &RollCheckOutput{Entry: entry}, nil
}

// RollDamage parses damage notation, rolls it and records the entry
func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("damage notation is required")
	}

	dmg, err := dice.ParseDamage(input.Notation)
	if err != nil {
		return nil, err
	}

	entry, err := o.roller.RollDamage(dmg, input.Label, input.Bonus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage")
	}

	o.record(ctx, input.SessionID, entry)

	return &RollDamageOutput{Entry: entry}, nil
}

// GetLog returns the session log, newest first. A session this process has
// never seen is read from the shared store when one is configured.
func (o *orchestrator) GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	if log, ok := o.session(input.SessionID, false); ok {
		entries := log.Entries()
		if input.Limit > 0 && len(entries) > input.Limit {
			entries = entries[:input.Limit]
		}
		return &GetLogOutput{Entries: entries}, nil
	}

	if o.rollLogRepo == nil {
		return &GetLogOutput{Entries: []dice.Entry{}}, nil
	}

	listOutput, err := o.rollLogRepo.List(ctx, rolllog.ListInput{
		SessionID: input.SessionID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mirrored roll log")
	}

	return &GetLogOutput{Entries: listOutput.Entries, Mirrored: true}, nil
}

// ClearLog empties the session log here and in the shared store
func (o *orchestrator) ClearLog(ctx context.Context, input *ClearLogInput) (*ClearLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	deleted := o.dropSession(input.SessionID)

	if o.rollLogRepo != nil {
		clearOutput, err := o.rollLogRepo.Clear(ctx, rolllog.ClearInput{SessionID: input.SessionID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to clear mirrored roll log")
		}
		if clearOutput.RollsDeleted > deleted {
			deleted = clearOutput.RollsDeleted
		}
	}

	slog.Info("Roll log cleared",
		"session_id", input.SessionID,
		"rolls_deleted", deleted,
	)

	return &ClearLogOutput{RollsDeleted: deleted}, nil
}

// record appends to the in-memory log, then mirrors. The local log stays
// authoritative so a mirror failure is logged and dropped.
func (o *orchestrator) record(ctx context.Context, sessionID string, entry *dice.Entry) {
	log, _ := o.session(sessionID, true)
	log.Append(entry)

	slog.Info("Dice rolled",
		"session_id", sessionID,
		"roll_id", entry.ID,
		"kind", entry.Kind,
		"total", entry.Total,
		"critical_success", entry.CriticalSuccess,
		"critical_fumble", entry.CriticalFumble,
	)

	if o.rollLogRepo == nil {
		return
	}

	if _, err := o.rollLogRepo.Append(ctx, rolllog.AppendInput{
		SessionID: sessionID,
		Entry:     entry,
	}); err != nil {
		slog.Warn("Failed to mirror roll",
			"session_id", sessionID,
			"roll_id", entry.ID,
			"error", err,
		)
	}
}

// session returns the log for id, creating it when asked. Every lookup
// marks the session used and may evict others that have gone idle.
func (o *orchestrator) session(id string, create bool) (*dice.Log, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.clock.Now()
	o.evictIdle(now)

	s, ok := o.sessions[id]
	if !ok {
		if !create {
			return nil, false
		}
		s = &session{log: dice.NewLog(o.maxEntries)}
		o.sessions[id] = s
	}
	s.lastUsed = now
	return s.log, true
}

// dropSession forgets the session and reports how many entries it held
func (o *orchestrator) dropSession(id string) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.sessions[id]
	if !ok {
		return 0
	}
	delete(o.sessions, id)
	return s.log.Clear()
}

// evictIdle must be called with mu held
func (o *orchestrator) evictIdle(now time.Time) {
	if o.idleTTL <= 0 || now.Sub(o.lastSweep) < min(sweepInterval, o.idleTTL) {
		return
	}
	o.lastSweep = now

	evicted := 0
	for id, s := range o.sessions {
		if now.Sub(s.lastUsed) >= o.idleTTL {
			delete(o.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		slog.Debug("Evicted idle roll log sessions",
			"evicted", evicted,
			"remaining", len(o.sessions),
		)
	}
}
