package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contagem-estoque/internal/application/catalog"
	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/memory"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

func row(id, name, ean string, levels ...string) entity.CatalogRow {
	r := entity.CatalogRow{ProductID: id, FullDescription: name, AccessCode: ean, PackagingUnit: "UN", PackagingQty: "1"}
	copy(r.Levels[:], levels)
	return r
}

func sampleRows() []entity.CatalogRow {
	return []entity.CatalogRow{
		row("1", "ARROZ 5KG", "7891234567890", "MERCEARIA", "GRAOS"),
		row("2", "FEIJAO 1KG", "7891234567891", "MERCEARIA", "GRAOS"),
		row("3", "SABAO EM PO", "7891234567893", "LIMPEZA"),
	}
}

// stubSource origen en memoria para Reload.
type stubSource struct {
	rows []entity.CatalogRow
	err  error
}

func (s stubSource) Load(context.Context) ([]entity.CatalogRow, error) { return s.rows, s.err }

func setup(t *testing.T) (*catalog.SelectionUseCase, *catalog.LotUseCase, *memory.Store) {
	t.Helper()
	svc := catalog.NewCatalogService(stubSource{rows: sampleRows()}, logger.Nop())
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)
	store := memory.NewStore()
	lots := catalog.NewLotUseCase(store.Lots())
	return catalog.NewSelectionUseCase(svc, lots), lots, store
}

// ─── CatalogService ──────────────────────────────────────────────────────────

func TestCatalogService_SinCargaDevuelveErrCatalogNotLoaded(t *testing.T) {
	svc := catalog.NewCatalogService(nil, logger.Nop())

	_, err := svc.Current()
	assert.ErrorIs(t, err, domain.ErrCatalogNotLoaded)

	_, err = svc.Reload(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogNotLoaded)
}

func TestCatalogService_ReloadConErrorConservaElAnterior(t *testing.T) {
	svc := catalog.NewCatalogService(stubSource{err: errors.New("arquivo ausente")}, logger.Nop())
	svc.Replace(sampleRows())

	_, err := svc.Reload(context.Background())
	require.Error(t, err)

	snap, err := svc.Current()
	require.NoError(t, err)
	assert.Len(t, snap.Rows, 3)
	assert.Len(t, snap.Index.Roots(), 2)
}

func TestCatalogService_Close(t *testing.T) {
	svc := catalog.NewCatalogService(nil, logger.Nop())
	svc.Replace(sampleRows())
	svc.Close()

	_, err := svc.Current()
	assert.ErrorIs(t, err, domain.ErrCatalogNotLoaded)
}

// ─── Sesiones de selección ───────────────────────────────────────────────────

func TestSelection_ToggleYCommit(t *testing.T) {
	uc, lots, _ := setup(t)
	ctx := context.Background()

	sess, err := uc.Start()
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	got, err := uc.Toggle(sess.ID, dto.ToggleRequest{Path: "0", Checked: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, got.Checked)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, "1;ARROZ 5KG;7891234567890;UN;1;", got.Rows[0].Row)

	committed, err := uc.Commit(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), committed.ID)
	assert.Equal(t, 2, committed.Products)

	list, err := lots.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Len(t, list.Items[0].Products, 2)

	_, err = uc.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la sesión se cierra al confirmar")
}

func TestSelection_DesmarcarQuitaFilas(t *testing.T) {
	uc, _, _ := setup(t)

	sess, err := uc.Start()
	require.NoError(t, err)
	_, err = uc.Toggle(sess.ID, dto.ToggleRequest{Path: "1", Checked: true})
	require.NoError(t, err)

	got, err := uc.Toggle(sess.ID, dto.ToggleRequest{Path: "1", Checked: false})
	require.NoError(t, err)
	assert.Empty(t, got.Checked)
	assert.Equal(t, 0, got.Total)
}

func TestSelection_CommitVacioEsValidacion(t *testing.T) {
	uc, _, _ := setup(t)

	sess, err := uc.Start()
	require.NoError(t, err)

	_, err = uc.Commit(context.Background(), sess.ID)
	require.Error(t, err)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "produtos", ve.Field)

	_, err = uc.Get(sess.ID)
	assert.NoError(t, err, "la sesión sigue abierta tras un commit rechazado")
}

func TestSelection_PathInexistente(t *testing.T) {
	uc, _, _ := setup(t)

	sess, err := uc.Start()
	require.NoError(t, err)

	_, err = uc.Toggle(sess.ID, dto.ToggleRequest{Path: "9.9", Checked: true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSelection_SesionDesconocida(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Toggle("nope", dto.ToggleRequest{Path: "0", Checked: true})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSelection_DiscardEliminaLaSesion(t *testing.T) {
	uc, _, _ := setup(t)

	sess, err := uc.Start()
	require.NoError(t, err)
	require.Equal(t, 1, uc.Open())

	require.NoError(t, uc.Discard(sess.ID))
	assert.Equal(t, 0, uc.Open())
	_, err = uc.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Discard(sess.ID), domain.ErrNotFound)
}

func TestSelection_SesionesInactivasExpiran(t *testing.T) {
	svc := catalog.NewCatalogService(stubSource{rows: sampleRows()}, logger.Nop())
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)
	lots := catalog.NewLotUseCase(memory.NewStore().Lots())

	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	uc := catalog.NewSelectionUseCase(svc, lots,
		catalog.WithSessionTTL(10*time.Minute),
		catalog.WithClock(func() time.Time { return now }),
	)

	abandoned, err := uc.Start()
	require.NoError(t, err)
	rejected, err := uc.Start()
	require.NoError(t, err)
	_, err = uc.Commit(context.Background(), rejected.ID)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	now = now.Add(8 * time.Minute)
	_, err = uc.Get(rejected.ID)
	require.NoError(t, err, "el uso renueva la sesión")

	now = now.Add(5 * time.Minute)
	_, err = uc.Start()
	require.NoError(t, err)

	assert.Equal(t, 2, uc.Open(), "la sesión abandonada se descarta al abrir otra")
	_, err = uc.Get(abandoned.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	now = now.Add(11 * time.Minute)
	_, err = uc.Get(rejected.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "vencida aunque nadie haya abierto otra")
}

// ─── LotUseCase ──────────────────────────────────────────────────────────────

func TestCommitLot_IDsCrecientesYBorrado(t *testing.T) {
	_, lots, _ := setup(t)
	ctx := context.Background()

	id1, err := lots.CommitLot(ctx, []string{"a"})
	require.NoError(t, err)
	id2, err := lots.CommitLot(ctx, []string{"b"})
	require.NoError(t, err)
	assert.Less(t, id1, id2)

	require.NoError(t, lots.DeleteAll(ctx))
	list, err := lots.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}
