package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
)

var _ repository.CountRepository = (*CountRepo)(nil)

const countColumns = `id, codigo, corredor, coluna, andar, tipo_contagem, quantidade,
		sistema, descricao, embalagem, created_at, updated_at`

// CountRepo implementación de CountRepository sobre PostgreSQL (usable con pool o tx).
type CountRepo struct {
	q Querier
}

// NewCountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCountRepository(q Querier) *CountRepo {
	return &CountRepo{q: q}
}

// GetByKeyForUpdate obtiene la contagem de la clave y bloquea la fila (SELECT FOR UPDATE).
// Devuelve (nil, nil) si no existe.
func (r *CountRepo) GetByKeyForUpdate(ctx context.Context, key entity.CountKey) (*entity.CountEntry, error) {
	query := `SELECT ` + countColumns + `
		FROM contagens
		WHERE codigo = $1 AND corredor = $2 AND coluna = $3 AND andar = $4 AND tipo_contagem = $5
		FOR UPDATE`
	e, err := scanCount(r.q.QueryRow(ctx, query, key.Code, key.Corridor, key.Column, key.Floor, key.CountType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contagem for update: %w", err)
	}
	return e, nil
}

// Create inserta la contagem. Si otra transacción insertó la misma clave antes,
// devuelve domain.ErrDuplicate (el TxRunner reintenta).
func (r *CountRepo) Create(ctx context.Context, e *entity.CountEntry) error {
	query := `
		INSERT INTO contagens (codigo, corredor, coluna, andar, tipo_contagem, quantidade,
			sistema, descricao, embalagem, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.Key.Code, e.Key.Corridor, e.Key.Column, e.Key.Floor, e.Key.CountType, e.Quantity,
		e.Description.SystemCode, e.Description.Name, e.Description.Packaging, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert contagem: %w: %w", domain.ErrDuplicate, err)
		}
		return fmt.Errorf("insert contagem: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza la cantidad acumulada.
func (r *CountRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE contagens SET quantidade = $2, updated_at = $3 WHERE id = $1`, id, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update contagem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update contagem %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List lista las contagens por ID ascendente (orden de almacenamiento).
func (r *CountRepo) List(ctx context.Context) ([]*entity.CountEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+countColumns+` FROM contagens ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list contagens: %w", err)
	}
	defer rows.Close()
	var list []*entity.CountEntry
	for rows.Next() {
		e, err := scanCount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contagem: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// DeleteAll borra todas las contagens.
func (r *CountRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM contagens`); err != nil {
		return fmt.Errorf("delete contagens: %w", err)
	}
	return nil
}

func scanCount(row pgx.Row) (*entity.CountEntry, error) {
	var e entity.CountEntry
	err := row.Scan(
		&e.ID, &e.Key.Code, &e.Key.Corridor, &e.Key.Column, &e.Key.Floor, &e.Key.CountType, &e.Quantity,
		&e.Description.SystemCode, &e.Description.Name, &e.Description.Packaging, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
