package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create inserta el lote y asigna el ID devuelto por la base.
func (r *LotRepo) Create(ctx context.Context, lot *entity.Lot) error {
	query := `
		INSERT INTO lotes (produtos, created_at)
		VALUES ($1, $2)
		RETURNING id`
	if lot.CreatedAt.IsZero() {
		lot.CreatedAt = time.Now()
	}
	if err := r.q.QueryRow(ctx, query, lot.Products, lot.CreatedAt).Scan(&lot.ID); err != nil {
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// List lista los lotes por ID ascendente.
func (r *LotRepo) List(ctx context.Context) ([]*entity.Lot, error) {
	rows, err := r.q.Query(ctx, `SELECT id, produtos, created_at FROM lotes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.Products, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteAll borra todos los lotes.
func (r *LotRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM lotes`); err != nil {
		return fmt.Errorf("delete lotes: %w", err)
	}
	return nil
}
