// Package watch recarga el catálogo cuando el archivo de origen cambia en disco.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jhoicas/contagem-estoque/internal/application/catalog"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// DefaultDebounce espera tras el último evento antes de recargar (los editores y las
// copias por red escriben el archivo en varias tandas).
const DefaultDebounce = 500 * time.Millisecond

// Reloader lo que el watcher necesita del CatalogService.
type Reloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

// CatalogWatcher observa el directorio del catálogo y llama a Reload cuando el
// archivo se crea, se escribe o se reemplaza por rename.
type CatalogWatcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	path     string
	reloader Reloader
	log      *logger.Logger
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	reloads  int
}

// NewCatalogWatcher construye el watcher. debounce <= 0 usa DefaultDebounce.
func NewCatalogWatcher(path string, reloader Reloader, log *logger.Logger, debounce time.Duration) (*CatalogWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return &CatalogWatcher{
		fsw:      fsw,
		path:     abs,
		reloader: reloader,
		log:      log,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start comienza a observar. Se observa el directorio y no el archivo, porque
// muchos programas guardan escribiendo un temporal y renombrándolo.
func (w *CatalogWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.log.Info().Str("arquivo", w.path).Msg("observando catálogo")

	go w.run(ctx)
	return nil
}

// Stop detiene el watcher y espera a que termine la goroutine.
func (w *CatalogWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.fsw.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.fsw.Close(); err != nil {
		w.log.Error().Err(err).Msg("fechar watcher")
	}
}

// Reloads cantidad de recargas hechas.
func (w *CatalogWatcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

func (w *CatalogWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 4
	if tick > 100*time.Millisecond {
		tick = 100 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var (
		pending   bool
		lastEvent time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				pending = true
				lastEvent = time.Now()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("watcher do catálogo")
		case <-ticker.C:
			if pending && time.Since(lastEvent) >= w.debounce {
				pending = false
				w.reload(ctx)
			}
		}
	}
}

func (w *CatalogWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}

func (w *CatalogWatcher) reload(ctx context.Context) {
	snap, err := w.reloader.Reload(ctx)
	if err != nil {
		// El catálogo anterior sigue publicado.
		w.log.Warn().Err(err).Str("arquivo", w.path).Msg("recarga do catálogo falhou")
		return
	}
	w.mu.Lock()
	w.reloads++
	w.mu.Unlock()
	w.log.Info().Int("linhas", len(snap.Rows)).Msg("catálogo recarregado")
}
