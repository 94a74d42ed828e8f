package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/contagem-estoque/internal/application/counting"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
)

var _ counting.LedgerTxRunner = (*TxRunner)(nil)

// maxLedgerAttempts intentos de RunLedger cuando dos procesos insertan la misma clave.
const maxLedgerAttempts = 3

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunLedger inicia una transacción, ejecuta fn con el repo de contagens atado a la tx
// y hace Commit o Rollback. Si el insert choca con la clave única (otro proceso la
// creó entre el SELECT FOR UPDATE y el INSERT) se reintenta: en el siguiente intento
// la fila ya existe y queda bloqueada.
func (r *TxRunner) RunLedger(ctx context.Context, fn func(counts repository.CountRepository) error) error {
	var err error
	for attempt := 1; attempt <= maxLedgerAttempts; attempt++ {
		err = r.runLedgerOnce(ctx, fn)
		if !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}
	return err
}

func (r *TxRunner) runLedgerOnce(ctx context.Context, fn func(counts repository.CountRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
