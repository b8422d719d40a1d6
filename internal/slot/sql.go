package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/erazemk/reciklaza/internal/db"
)

// SQL is a slot stored as one row of the slots table.
type SQL struct {
	db       *sql.DB
	key      string
	loadStmt string
	saveStmt string
	owned    bool
}

const (
	sqliteLoad = `SELECT value FROM slots WHERE key = ?`
	sqliteSave = `INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	postgresSchema = `CREATE TABLE IF NOT EXISTS slots (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	postgresLoad = `SELECT value FROM slots WHERE key = $1`
	postgresSave = `INSERT INTO slots (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// NewSQLite returns a slot in an already open SQLite database. The caller
// keeps ownership of database and must have applied the schema.
func NewSQLite(database *sql.DB, key string) *SQL {
	return &SQL{db: database, key: key, loadStmt: sqliteLoad, saveStmt: sqliteSave}
}

// OpenSQLite opens (or creates) the SQLite database at path and returns a
// slot owning it.
func OpenSQLite(ctx context.Context, path, key string) (*SQL, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite slot: path required")
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		database.Close()
		return nil, err
	}
	s := NewSQLite(database, key)
	s.owned = true
	return s, nil
}

// OpenPostgres connects to Postgres and ensures the slots table exists.
func OpenPostgres(ctx context.Context, dsn, key string) (*SQL, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres slot: dsn required")
	}
	database, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if _, err := database.ExecContext(ctx, postgresSchema); err != nil {
		database.Close()
		return nil, fmt.Errorf("creating slots table: %w", err)
	}
	return &SQL{db: database, key: key, loadStmt: postgresLoad, saveStmt: postgresSave, owned: true}, nil
}

// Load returns the stored value.
func (s *SQL) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, s.loadStmt, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("loading slot %q: %w", s.key, err)
	}
	return data, nil
}

// Save upserts the value in a single statement.
func (s *SQL) Save(ctx context.Context, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, s.saveStmt, s.key, data); err != nil {
		return fmt.Errorf("saving slot %q: %w", s.key, err)
	}
	return nil
}

// Close closes the database if the slot opened it.
func (s *SQL) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}
