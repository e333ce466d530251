package rolllog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: roll_log:{session_id}
	rollLogKeyPrefix = "roll_log:"
	defaultTTL       = 24 * time.Hour

	errSessionIDEmpty = "session ID cannot be empty"
	errEntryNil       = "entry cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	// TTL is refreshed on every append. Zero means 24h.
	TTL time.Duration
	// MaxEntries caps the list. Zero keeps everything.
	MaxEntries int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	if c.MaxEntries < 0 {
		return errors.InvalidArgument("max entries must not be negative")
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	ttl        time.Duration
	maxEntries int
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client:     cfg.Client,
		ttl:        ttl,
		maxEntries: cfg.MaxEntries,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal roll entry")
	}

	key := buildKey(input.SessionID)

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	if r.maxEntries > 0 {
		pipe.LTrim(ctx, key, 0, int64(r.maxEntries-1))
	}
	pipe.Expire(ctx, key, r.ttl)
	length := pipe.LLen(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to append roll entry")
	}

	return &AppendOutput{Length: int(length.Val())}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	raw, err := r.client.LRange(ctx, buildKey(input.SessionID), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read roll log")
	}

	entries := make([]dice.Entry, 0, len(raw))
	for _, item := range raw {
		var e dice.Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal roll entry")
		}
		entries = append(entries, e)
	}

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := buildKey(input.SessionID)

	pipe := r.client.TxPipeline()
	length := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to clear roll log")
	}

	return &ClearOutput{RollsDeleted: int(length.Val())}, nil
}

func buildKey(sessionID string) string {
	return rollLogKeyPrefix + sessionID
}
