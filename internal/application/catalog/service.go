// Package catalog contiene los casos de uso de catálogo: carga de filas,
// sesiones de selección sobre el árbol y confirmación de lotes.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/contagem-estoque/internal/domain"
	domcatalog "github.com/jhoicas/contagem-estoque/internal/domain/catalog"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// Snapshot filas del catálogo y su índice, inmutables una vez publicados.
type Snapshot struct {
	Rows     []entity.CatalogRow
	Index    *domcatalog.Index
	LoadedAt time.Time
}

// CatalogService repositorio explícito de las filas del catálogo. Cada carga
// reconstruye filas e índice desde cero y los publica de forma atómica.
type CatalogService struct {
	mu       sync.RWMutex
	source   RowSource
	snapshot *Snapshot
	log      *logger.Logger
	now      func() time.Time
}

// NewCatalogService construye el servicio. No carga nada hasta Reload o Replace.
func NewCatalogService(source RowSource, log *logger.Logger) *CatalogService {
	return &CatalogService{source: source, log: log, now: time.Now}
}

// Reload vuelve a leer el origen y reemplaza el catálogo publicado.
func (s *CatalogService) Reload(ctx context.Context) (*Snapshot, error) {
	if s.source == nil {
		return nil, fmt.Errorf("recargar catálogo: %w", domain.ErrCatalogNotLoaded)
	}
	rows, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("recargar catálogo: %w", err)
	}
	return s.Replace(rows), nil
}

// Replace publica un catálogo a partir de filas ya leídas.
func (s *CatalogService) Replace(rows []entity.CatalogRow) *Snapshot {
	snap := &Snapshot{
		Rows:     rows,
		Index:    domcatalog.BuildIndex(rows),
		LoadedAt: s.now(),
	}
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	s.log.Info().
		Int("linhas", len(rows)).
		Int("nos", snap.Index.Size()).
		Msg("catálogo carregado")
	return snap
}

// Current devuelve el catálogo publicado o domain.ErrCatalogNotLoaded.
func (s *CatalogService) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return s.snapshot, nil
}

// Close libera el catálogo publicado.
func (s *CatalogService) Close() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
}
