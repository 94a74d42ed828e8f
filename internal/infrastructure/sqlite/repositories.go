package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
)

var (
	_ repository.LotRepository   = (*LotRepo)(nil)
	_ repository.CountRepository = (*CountRepo)(nil)
)

// LotRepo lotes en SQLite. Los productos se guardan como un arreglo JSON.
type LotRepo struct {
	q querier
}

func (r *LotRepo) Create(ctx context.Context, lot *entity.Lot) error {
	products, err := json.Marshal(lot.Products)
	if err != nil {
		return fmt.Errorf("codificar produtos: %w", err)
	}
	if lot.CreatedAt.IsZero() {
		lot.CreatedAt = time.Now()
	}
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO lotes (produtos, created_at) VALUES (?, ?)`,
		string(products), lot.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert lote: %w", err)
	}
	lot.ID, err = res.LastInsertId()
	return err
}

func (r *LotRepo) List(ctx context.Context) ([]*entity.Lot, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, produtos, created_at FROM lotes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		var (
			l        entity.Lot
			products string
			created  int64
		)
		if err := rows.Scan(&l.ID, &products, &created); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		if err := json.Unmarshal([]byte(products), &l.Products); err != nil {
			return nil, fmt.Errorf("lote %d: %w", l.ID, err)
		}
		l.CreatedAt = time.UnixMilli(created)
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LotRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM lotes`); err != nil {
		return fmt.Errorf("delete lotes: %w", err)
	}
	return nil
}

const countColumns = `id, codigo, corredor, coluna, andar, tipo_contagem, quantidade,
	sistema, descricao, embalagem, created_at, updated_at`

// CountRepo contagens en SQLite. La cantidad se guarda como texto decimal exacto.
type CountRepo struct {
	q querier
}

// GetByKeyForUpdate busca por clave. SQLite no tiene FOR UPDATE: el bloqueo lo da la
// transacción de escritura sobre la única conexión.
func (r *CountRepo) GetByKeyForUpdate(ctx context.Context, key entity.CountKey) (*entity.CountEntry, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+countColumns+` FROM contagens
		WHERE codigo = ? AND corredor = ? AND coluna = ? AND andar = ? AND tipo_contagem = ?`,
		key.Code, key.Corridor, key.Column, key.Floor, key.CountType)
	e, err := scanCount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contagem: %w", err)
	}
	return e, nil
}

func (r *CountRepo) Create(ctx context.Context, e *entity.CountEntry) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO contagens (codigo, corredor, coluna, andar, tipo_contagem, quantidade,
			sistema, descricao, embalagem, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Key.Code, e.Key.Corridor, e.Key.Column, e.Key.Floor, e.Key.CountType, e.Quantity.String(),
		e.Description.SystemCode, e.Description.Name, e.Description.Packaging,
		e.CreatedAt.UnixMilli(), e.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert contagem: %w", err)
	}
	e.ID, err = res.LastInsertId()
	return err
}

func (r *CountRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal, updatedAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `UPDATE contagens SET quantidade = ?, updated_at = ? WHERE id = ?`,
		quantity.String(), updatedAt.UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("update contagem: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update contagem %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *CountRepo) List(ctx context.Context) ([]*entity.CountEntry, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+countColumns+` FROM contagens ORDER BY id`)
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

func (r *CountRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM contagens`); err != nil {
		return fmt.Errorf("delete contagens: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCount(s scanner) (*entity.CountEntry, error) {
	var (
		e                entity.CountEntry
		qty              string
		created, updated int64
	)
	err := s.Scan(
		&e.ID, &e.Key.Code, &e.Key.Corridor, &e.Key.Column, &e.Key.Floor, &e.Key.CountType, &qty,
		&e.Description.SystemCode, &e.Description.Name, &e.Description.Packaging, &created, &updated,
	)
	if err != nil {
		return nil, err
	}
	// Un valor ilegible cuenta como 0, igual que una observación no numérica.
	if e.Quantity, err = decimal.NewFromString(qty); err != nil {
		e.Quantity = decimal.Zero
	}
	e.CreatedAt = time.UnixMilli(created)
	e.UpdatedAt = time.UnixMilli(updated)
	return &e, nil
}
