// Package sqlite guarda lotes y contagens en un archivo SQLite local (modo offline).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/contagem-estoque/internal/application/counting"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
)

var _ counting.LedgerTxRunner = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS lotes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	produtos   TEXT    NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS contagens (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	codigo        TEXT    NOT NULL,
	corredor      TEXT    NOT NULL,
	coluna        TEXT    NOT NULL,
	andar         TEXT    NOT NULL,
	tipo_contagem TEXT    NOT NULL,
	quantidade    TEXT    NOT NULL DEFAULT '0',
	sistema       TEXT    NOT NULL DEFAULT '',
	descricao     TEXT    NOT NULL DEFAULT '',
	embalagem     TEXT    NOT NULL DEFAULT '',
	created_at    INTEGER NOT NULL,
	updated_at    INTEGER NOT NULL,
	UNIQUE (codigo, corredor, coluna, andar, tipo_contagem)
);`

// querier lo común a *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store base SQLite con una sola conexión abierta: las escrituras quedan
// serializadas por el propio pool de database/sql.
type Store struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) la base en path y aplica el esquema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path archivo de la base.
func (s *Store) Path() string { return s.path }

// Close cierra la base.
func (s *Store) Close() error { return s.db.Close() }

// Lots repositorio de lotes fuera de transacción.
func (s *Store) Lots() *LotRepo { return &LotRepo{q: s.db} }

// Counts repositorio de contagens fuera de transacción.
func (s *Store) Counts() *CountRepo { return &CountRepo{q: s.db} }

// RunLedger ejecuta fn dentro de una transacción. Commit si fn devuelve nil, Rollback si no.
func (s *Store) RunLedger(ctx context.Context, fn func(counts repository.CountRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&CountRepo{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
