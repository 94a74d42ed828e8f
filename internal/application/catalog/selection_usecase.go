package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	domcatalog "github.com/jhoicas/contagem-estoque/internal/domain/catalog"
)

// DefaultSessionTTL tiempo sin uso tras el cual una sesión se descarta.
const DefaultSessionTTL = 30 * time.Minute

type selectionSession struct {
	mu       sync.Mutex
	snapshot *Snapshot
	agg      *domcatalog.SelectionAggregator
	lastUsed time.Time // protegido por SelectionUseCase.mu
}

// SelectionUseCase sesiones de selección sobre el árbol del catálogo. Cada sesión
// queda atada al catálogo publicado cuando se abrió, aunque luego se recargue.
// Las sesiones inactivas por más de ttl se eliminan al abrir una nueva.
type SelectionUseCase struct {
	mu       sync.Mutex
	catalog  *CatalogService
	lots     *LotUseCase
	sessions map[string]*selectionSession
	ttl      time.Duration
	now      func() time.Time
}

// SelectionOption ajusta el caso de uso.
type SelectionOption func(*SelectionUseCase)

// WithSessionTTL cambia el tiempo de inactividad permitido (<= 0 desactiva la expiración).
func WithSessionTTL(ttl time.Duration) SelectionOption {
	return func(uc *SelectionUseCase) { uc.ttl = ttl }
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) SelectionOption {
	return func(uc *SelectionUseCase) { uc.now = now }
}

// NewSelectionUseCase construye el caso de uso.
func NewSelectionUseCase(catalog *CatalogService, lots *LotUseCase, opts ...SelectionOption) *SelectionUseCase {
	uc := &SelectionUseCase{
		catalog:  catalog,
		lots:     lots,
		sessions: make(map[string]*selectionSession),
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Start abre una sesión vacía sobre el catálogo actual.
func (uc *SelectionUseCase) Start() (*dto.SelectionResponse, error) {
	snap, err := uc.catalog.Current()
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	s := &selectionSession{snapshot: snap, agg: domcatalog.NewSelectionAggregator(snap.Rows)}
	uc.mu.Lock()
	now := uc.now()
	uc.sweepLocked(now)
	s.lastUsed = now
	uc.sessions[id] = s
	uc.mu.Unlock()
	return toSelectionResponse(id, s), nil
}

// Open cantidad de sesiones abiertas.
func (uc *SelectionUseCase) Open() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.sessions)
}

func (uc *SelectionUseCase) sweepLocked(now time.Time) {
	if uc.ttl <= 0 {
		return
	}
	for id, s := range uc.sessions {
		if now.Sub(s.lastUsed) > uc.ttl {
			delete(uc.sessions, id)
		}
	}
}

// Toggle aplica el evento de checkbox del nodo en path.
func (uc *SelectionUseCase) Toggle(id string, in dto.ToggleRequest) (*dto.SelectionResponse, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	node, ok := s.snapshot.Index.Lookup(in.Path)
	if !ok {
		return nil, domain.NewValidationError("path", fmt.Sprintf("nó %q inexistente", in.Path))
	}
	s.agg.Toggle(node, in.Checked)
	return toSelectionResponseLocked(id, s), nil
}

// Get devuelve el estado de la sesión.
func (uc *SelectionUseCase) Get(id string) (*dto.SelectionResponse, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}
	return toSelectionResponse(id, s), nil
}

// Commit persiste la vista activa como un Lot y cierra la sesión.
func (uc *SelectionUseCase) Commit(ctx context.Context, id string) (*dto.CommitLotResponse, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	rows := s.agg.Serialized()
	s.mu.Unlock()

	lotID, err := uc.lots.CommitLot(ctx, rows)
	if err != nil {
		return nil, err
	}
	_ = uc.Discard(id)
	return &dto.CommitLotResponse{ID: lotID, Products: len(rows)}, nil
}

// Discard cierra la sesión sin guardar. ErrNotFound si no existe.
func (uc *SelectionUseCase) Discard(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(uc.sessions, id)
	return nil
}

// session devuelve la sesión y renueva su uso; una sesión vencida cuenta como inexistente.
func (uc *SelectionUseCase) session(id string) (*selectionSession, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, ok := uc.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	if uc.ttl > 0 && now.Sub(s.lastUsed) > uc.ttl {
		delete(uc.sessions, id)
		return nil, domain.ErrNotFound
	}
	s.lastUsed = now
	return s, nil
}

func toSelectionResponse(id string, s *selectionSession) *dto.SelectionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toSelectionResponseLocked(id, s)
}

func toSelectionResponseLocked(id string, s *selectionSession) *dto.SelectionResponse {
	checked := s.agg.Checked()
	paths := make([]string, 0, len(checked))
	for _, n := range checked {
		paths = append(paths, n.Path)
	}
	active := s.agg.Active()
	rows := make([]dto.ActiveRowDTO, 0, len(active))
	for _, ar := range active {
		rows = append(rows, dto.ActiveRowDTO{ID: ar.ID, Depth: ar.Depth, Row: domcatalog.SerializeRow(ar.Row)})
	}
	return &dto.SelectionResponse{ID: id, Checked: paths, Rows: rows, Total: len(rows)}
}
