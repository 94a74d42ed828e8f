package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/contagem-estoque/internal/application/catalog"
	"github.com/jhoicas/contagem-estoque/internal/application/counting"
	"github.com/jhoicas/contagem-estoque/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog     *appcatalog.CatalogService
	SelectionUC *appcatalog.SelectionUseCase
	LotUC       *appcatalog.LotUseCase
	RecordCount *counting.RecordCountUseCase
	Ledger      *counting.CountLedger
	Resolver    *counting.ProductResolver
	ExportUC    *report.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.Catalog)
	api.Post("/catalog/reload", catalogHandler.Reload)
	api.Get("/catalog/tree", RequireCatalog(deps.Catalog), catalogHandler.Tree)

	// Selección del árbol (requiere catálogo cargado)
	selections := api.Group("/selections", RequireCatalog(deps.Catalog))
	selectionHandler := NewSelectionHandler(deps.SelectionUC)
	selections.Post("/", selectionHandler.Start)
	selections.Get("/:id", selectionHandler.Get)
	selections.Delete("/:id", selectionHandler.Discard)
	selections.Post("/:id/toggle", selectionHandler.Toggle)
	selections.Post("/:id/commit", selectionHandler.Commit)

	// Lotes
	lots := api.Group("/lots")
	lotHandler := NewLotHandler(deps.LotUC)
	lots.Get("/", lotHandler.List)
	lots.Delete("/", lotHandler.DeleteAll)

	// Búsqueda y contagens
	countHandler := NewCountHandler(deps.RecordCount, deps.Ledger, deps.Resolver)
	api.Get("/products/search", countHandler.Search)

	counts := api.Group("/counts")
	exportHandler := NewExportHandler(deps.ExportUC)
	counts.Get("/export", exportHandler.Export)
	counts.Post("/", countHandler.Record)
	counts.Get("/", countHandler.List)
	counts.Delete("/", countHandler.Reset)
}
