// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa en tests y en modo efímero (STORE_DRIVER=memory).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contagem-estoque/internal/application/counting"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
)

var (
	_ repository.LotRepository   = (*Lots)(nil)
	_ repository.CountRepository = (*Counts)(nil)
	_ counting.LedgerTxRunner    = (*Store)(nil)
)

type state struct {
	lots      []entity.Lot
	counts    []entity.CountEntry
	nextLot   int64
	nextCount int64
}

func (s state) clone() state {
	c := s
	c.lots = append([]entity.Lot(nil), s.lots...)
	c.counts = append([]entity.CountEntry(nil), s.counts...)
	return c
}

// Store almacén en memoria con transacciones por copia: RunLedger trabaja sobre
// una copia del estado y la publica solo si fn no devuelve error.
type Store struct {
	mu    sync.RWMutex
	state state
}

// NewStore construye el almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// RunLedger ejecuta fn con acceso exclusivo al estado.
func (s *Store) RunLedger(ctx context.Context, fn func(counts repository.CountRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &txView{state: s.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

// ── Lotes ─────────────────────────────────────────────────────────────────────

// Lots vista de lotes del almacén.
func (s *Store) Lots() *Lots {
	return &Lots{store: s}
}

// Lots implementa repository.LotRepository sobre el Store.
type Lots struct {
	store *Store
}

// Create guarda el lote con un ID autoincremental.
func (l *Lots) Create(_ context.Context, lot *entity.Lot) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	l.store.state.nextLot++
	lot.ID = l.store.state.nextLot
	l.store.state.lots = append(l.store.state.lots, entity.Lot{
		ID:        lot.ID,
		Products:  append([]string(nil), lot.Products...),
		CreatedAt: lot.CreatedAt,
	})
	return nil
}

// List devuelve copias de los lotes en orden de creación.
func (l *Lots) List(_ context.Context) ([]*entity.Lot, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	out := make([]*entity.Lot, 0, len(l.store.state.lots))
	for _, lot := range l.store.state.lots {
		lot.Products = append([]string(nil), lot.Products...)
		out = append(out, &lot)
	}
	return out, nil
}

// DeleteAll borra todos los lotes.
func (l *Lots) DeleteAll(_ context.Context) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	l.store.state.lots = nil
	return nil
}

// ── Contagens ─────────────────────────────────────────────────────────────────

// Counts vista de contagens del almacén fuera de transacción.
func (s *Store) Counts() *Counts {
	return &Counts{store: s}
}

// Counts implementa repository.CountRepository sobre el Store fuera de transacción.
// Las escrituras abren su propia transacción.
type Counts struct {
	store *Store
}

func (c *Counts) GetByKeyForUpdate(_ context.Context, key entity.CountKey) (*entity.CountEntry, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return findByKey(c.store.state.counts, key), nil
}

func (c *Counts) Create(ctx context.Context, entry *entity.CountEntry) error {
	return c.store.RunLedger(ctx, func(counts repository.CountRepository) error {
		return counts.Create(ctx, entry)
	})
}

func (c *Counts) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal, updatedAt time.Time) error {
	return c.store.RunLedger(ctx, func(counts repository.CountRepository) error {
		return counts.UpdateQuantity(ctx, id, quantity, updatedAt)
	})
}

func (c *Counts) List(_ context.Context) ([]*entity.CountEntry, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return listCounts(c.store.state.counts), nil
}

func (c *Counts) DeleteAll(_ context.Context) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	c.store.state.counts = nil
	return nil
}

// txView repositorio de contagens atado a una copia del estado.
type txView struct {
	state state
}

func (t *txView) GetByKeyForUpdate(_ context.Context, key entity.CountKey) (*entity.CountEntry, error) {
	return findByKey(t.state.counts, key), nil
}

func (t *txView) Create(_ context.Context, entry *entity.CountEntry) error {
	t.state.nextCount++
	entry.ID = t.state.nextCount
	t.state.counts = append(t.state.counts, *entry)
	return nil
}

func (t *txView) UpdateQuantity(_ context.Context, id int64, quantity decimal.Decimal, updatedAt time.Time) error {
	for i := range t.state.counts {
		if t.state.counts[i].ID == id {
			t.state.counts[i].Quantity = quantity
			t.state.counts[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return nil
}

func (t *txView) List(_ context.Context) ([]*entity.CountEntry, error) {
	return listCounts(t.state.counts), nil
}

func (t *txView) DeleteAll(_ context.Context) error {
	t.state.counts = nil
	return nil
}

func findByKey(counts []entity.CountEntry, key entity.CountKey) *entity.CountEntry {
	for _, e := range counts {
		if e.Key == key {
			found := e
			return &found
		}
	}
	return nil
}

func listCounts(counts []entity.CountEntry) []*entity.CountEntry {
	out := make([]*entity.CountEntry, 0, len(counts))
	for _, e := range counts {
		out = append(out, &e)
	}
	return out
}
