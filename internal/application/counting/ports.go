package counting

import (
	"context"

	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
)

// LedgerTxRunner ejecuta una función dentro de una transacción del almacenamiento,
// pasando un repositorio de contagens atado a esa tx. Commit si fn devuelve nil, Rollback si no.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(counts repository.CountRepository) error) error
}
