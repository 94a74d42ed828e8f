package catalog

import (
	"context"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// RowSource origen de las filas del catálogo (archivo CSV, upload HTTP...).
type RowSource interface {
	Load(ctx context.Context) ([]entity.CatalogRow, error)
}
