package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/oryn/internal/dbx"
	"github.com/dmitrijs2005/oryn/internal/filex"
	"github.com/dmitrijs2005/oryn/internal/store/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLite implements KV over the kv table. It is bound either to a *sql.DB
// or, inside Atomically, to the enclosing *sql.Tx.
type SQLite struct {
	db   dbx.DBTX
	root *sql.DB
}

// NewSQLite returns a KV over db. The kv table must exist (see OpenSQLite).
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db, root: db}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed, along with its directory) the SQLite
// database at dsn and migrates it. A single connection is kept so that ":memory:" databases
// survive between calls.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to prepare store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}
	return db, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLite) Atomically(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
	if s.root == nil {
		return fn(ctx, s)
	}
	return dbx.WithTx(ctx, s.root, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &SQLite{db: tx})
	})
}
