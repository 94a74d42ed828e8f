// Package bootstrap arma las dependencias de la aplicación a partir de la
// configuración. Lo comparten el servidor HTTP y el CLI.
package bootstrap

import (
	"context"
	"fmt"

	appcatalog "github.com/jhoicas/contagem-estoque/internal/application/catalog"
	"github.com/jhoicas/contagem-estoque/internal/application/counting"
	"github.com/jhoicas/contagem-estoque/internal/application/report"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/csvsource"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/export"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/contagem-estoque/internal/infrastructure/pdf"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/postgres"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/sqlite"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/watch"
	"github.com/jhoicas/contagem-estoque/pkg/config"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// Container casos de uso listos para usar.
type Container struct {
	Config      *config.Config
	Log         *logger.Logger
	Catalog     *appcatalog.CatalogService
	Selection   *appcatalog.SelectionUseCase
	Lots        *appcatalog.LotUseCase
	Ledger      *counting.CountLedger
	Resolver    *counting.ProductResolver
	RecordCount *counting.RecordCountUseCase
	Export      *report.ExportUseCase

	source  *csvsource.FileSource
	watcher *watch.CatalogWatcher
	closers []func()
}

type stores struct {
	lots   repository.LotRepository
	counts repository.CountRepository
	tx     counting.LedgerTxRunner
	close  func()
}

// New abre el almacenamiento elegido en STORE_DRIVER y carga el catálogo.
// Un catálogo ausente o ilegible no impide arrancar: se registra y queda sin publicar.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Log: log}
	if st.close != nil {
		c.closers = append(c.closers, st.close)
	}

	c.source = csvsource.NewFileSource(cfg.Catalog.Path, csvsource.Options{Encoding: cfg.Catalog.Encoding}, log.Named("catalogo"))
	c.Catalog = appcatalog.NewCatalogService(c.source, log.Named("catalogo"))
	if _, err := c.Catalog.Reload(ctx); err != nil {
		log.Warn().Err(err).Str("arquivo", cfg.Catalog.Path).Msg("catálogo não carregado")
	}
	c.closers = append(c.closers, c.Catalog.Close)

	c.Lots = appcatalog.NewLotUseCase(st.lots)
	c.Selection = appcatalog.NewSelectionUseCase(c.Catalog, c.Lots)
	c.Ledger = counting.NewCountLedger(st.tx, st.counts, log.Named("contagens"))
	c.Resolver = counting.NewProductResolver(st.lots, st.counts)
	c.RecordCount = counting.NewRecordCountUseCase(c.Ledger, c.Resolver)
	c.Export = report.NewExportUseCase(c.Ledger, cfg.Report.Operator, cfg.Report.Store,
		export.NewTextWriter(),
		export.NewXLSXWriter(),
		infrapdf.NewMarotoReportWriter(),
	)
	return c, nil
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		s := memory.NewStore()
		log.Warn().Msg("armazenamento em memória: as contagens se perdem ao sair")
		return &stores{lots: s.Lots(), counts: s.Counts(), tx: s}, nil
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("armazenamento PostgreSQL")
		return &stores{
			lots:   postgres.NewLotRepository(pool),
			counts: postgres.NewCountRepository(pool),
			tx:     postgres.NewTxRunner(pool),
			close:  pool.Close,
		}, nil
	default:
		s, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("arquivo", s.Path()).Msg("armazenamento SQLite")
		return &stores{
			lots:   s.Lots(),
			counts: s.Counts(),
			tx:     s,
			close: func() {
				if err := s.Close(); err != nil {
					log.Error().Err(err).Msg("fechar SQLite")
				}
			},
		}, nil
	}
}

// WatchCatalog recarga el catálogo cuando cambia el archivo (CATALOG_WATCH=true).
func (c *Container) WatchCatalog(ctx context.Context) error {
	if !c.Config.Catalog.Watch || c.watcher != nil {
		return nil
	}
	w, err := watch.NewCatalogWatcher(c.source.Path(), c.Catalog, c.Log.Named("watcher"), watch.DefaultDebounce)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	c.watcher = w
	return nil
}

// Close libera watcher, catálogo y almacenamiento, en orden inverso de apertura.
func (c *Container) Close() {
	if c.watcher != nil {
		c.watcher.Stop()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
