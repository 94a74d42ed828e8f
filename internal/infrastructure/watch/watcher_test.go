package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/contagem-estoque/internal/application/catalog"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/watch"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

type countingReloader struct {
	calls atomic.Int32
}

func (r *countingReloader) Reload(context.Context) (*catalog.Snapshot, error) {
	r.calls.Add(1)
	return &catalog.Snapshot{}, nil
}

func TestCatalogWatcher_RecargaAlEscribir(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalogo.csv")
	require.NoError(t, os.WriteFile(path, []byte("cabecalho\n"), 0o644))

	reloader := &countingReloader{}
	w, err := watch.NewCatalogWatcher(path, reloader, logger.Nop(), 50*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Varias escrituras seguidas se agrupan en una sola recarga.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("cabecalho\nlinha\n"), 0o644))
	}

	require.Eventually(t, func() bool { return w.Reloads() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), reloader.calls.Load())
}

func TestCatalogWatcher_IgnoraOtrosArchivos(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalogo.csv")
	require.NoError(t, os.WriteFile(path, []byte("cabecalho\n"), 0o644))

	reloader := &countingReloader{}
	w, err := watch.NewCatalogWatcher(path, reloader, logger.Nop(), 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "outro.txt"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	w.Stop()

	assert.Zero(t, reloader.calls.Load())
}
