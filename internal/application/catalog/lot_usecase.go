package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
)

// LotUseCase persiste y lista los lotes confirmados por el operador.
type LotUseCase struct {
	repo repository.LotRepository
	now  func() time.Time
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository) *LotUseCase {
	return &LotUseCase{repo: repo, now: time.Now}
}

// CommitLot guarda las filas serializadas como un lote nuevo y devuelve su ID.
func (uc *LotUseCase) CommitLot(ctx context.Context, rows []string) (int64, error) {
	if len(rows) == 0 {
		return 0, domain.NewValidationError("produtos", domain.ErrEmptySelection.Error())
	}
	products := make([]string, len(rows))
	copy(products, rows)
	lot := &entity.Lot{Products: products, CreatedAt: uc.now()}
	if err := uc.repo.Create(ctx, lot); err != nil {
		return 0, domain.StorageError("salvar lote", err)
	}
	return lot.ID, nil
}

// List lista los lotes en orden de creación.
func (uc *LotUseCase) List(ctx context.Context) (*dto.LotListResponse, error) {
	lots, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.StorageError("listar lotes", err)
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, dto.LotResponse{ID: l.ID, Products: l.Products, CreatedAt: l.CreatedAt})
	}
	return &dto.LotListResponse{Items: items, Total: len(items)}, nil
}

// DeleteAll borra todos los lotes (acción administrativa).
func (uc *LotUseCase) DeleteAll(ctx context.Context) error {
	if err := uc.repo.DeleteAll(ctx); err != nil {
		return domain.StorageError("limpar lotes", err)
	}
	return nil
}
