package character

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	charentity "github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS characters (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL DEFAULT '',
		data TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_characters_player_id ON characters(player_id)`,
}

// OpenSQLite opens or creates the database at path and applies the
// connection pragmas. Use MemoryDSN for tests.
func OpenSQLite(path string) (*sql.DB, error) {
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create database directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database")
	}
	// one connection: sqlite serializes writers, and :memory: is per connection
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "failed to apply %q", pragma)
		}
	}
	return db, nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite character repository.
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a SQLite-backed character repository, migrating the
// schema first. Characters are stored as a JSON column.
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, m := range sqliteMigrations {
		if _, err := cfg.DB.ExecContext(ctx, m); err != nil {
			return nil, errors.Wrapf(err, "failed to run migrations")
		}
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: cfg.DB, clock: c}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	ch := input.Character.Clone()
	ch.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(ch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO characters (id, player_id, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		ch.ID, ch.PlayerID, string(data), ch.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	} else if n == 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", ch.ID)
	}

	return &CreateOutput{Character: ch}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM characters WHERE id = ?`, input.ID).Scan(&data)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	ch, err := decodeCharacter(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: ch}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	ch := input.Character.Clone()
	ch.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(ch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE characters SET player_id = ?, data = ?, updated_at = ? WHERE id = ?`,
		ch.PlayerID, string(data), ch.UpdatedAt.Format(time.RFC3339Nano), ch.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if err := requireRow(res, ch.ID); err != nil {
		return nil, err
	}

	return &UpdateOutput{Character: ch}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if err := requireRow(res, input.ID); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM characters WHERE player_id = ? ORDER BY id`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := []*charentity.Character{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrapf(err, "failed to scan character")
		}
		ch, err := decodeCharacter(data)
		if err != nil {
			return nil, err
		}
		characters = append(characters, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &ListByPlayerIDOutput{Characters: characters}, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.NotFoundf("character with ID %s not found", id)
	}
	return nil
}

func decodeCharacter(data string) (*charentity.Character, error) {
	var ch charentity.Character
	if err := json.Unmarshal([]byte(data), &ch); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}
	return &ch, nil
}
