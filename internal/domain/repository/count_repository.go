package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// CountRepository define el puerto de persistencia del libro de contagens.
// Las claves llegan ya normalizadas.
type CountRepository interface {
	// GetByKeyForUpdate obtiene la entrada de la clave y la bloquea hasta el fin de la tx.
	// Devuelve (nil, nil) si no existe.
	GetByKeyForUpdate(ctx context.Context, key entity.CountKey) (*entity.CountEntry, error)
	// Create inserta una entrada nueva y asigna entry.ID.
	Create(ctx context.Context, entry *entity.CountEntry) error
	UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal, updatedAt time.Time) error
	// List devuelve todas las entradas en orden de almacenamiento (id ascendente).
	List(ctx context.Context) ([]*entity.CountEntry, error)
	DeleteAll(ctx context.Context) error
}
