package repository

import (
	"context"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para Lot (DIP).
// Los lotes solo se agregan; el borrado es una acción administrativa externa.
type LotRepository interface {
	// Create persiste el lote y asigna lot.ID.
	Create(ctx context.Context, lot *entity.Lot) error
	// List devuelve los lotes en orden de creación.
	List(ctx context.Context) ([]*entity.Lot, error)
	DeleteAll(ctx context.Context) error
}
