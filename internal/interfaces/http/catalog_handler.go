package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/contagem-estoque/internal/application/catalog"
	"github.com/jhoicas/contagem-estoque/internal/application/dto"
)

// CatalogHandler expone el árbol de categorías.
type CatalogHandler struct {
	catalog *appcatalog.CatalogService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *appcatalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Tree godoc
// @Summary      Árbol de categorías del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogTreeResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/catalog/tree [get]
func (h *CatalogHandler) Tree(c *fiber.Ctx) error {
	snap, err := h.catalog.Current()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toTreeResponse(snap))
}

// Reload godoc
// @Summary      Recargar el catálogo desde el archivo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogTreeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/catalog/reload [post]
func (h *CatalogHandler) Reload(c *fiber.Ctx) error {
	snap, err := h.catalog.Reload(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toTreeResponse(snap))
}

func toTreeResponse(snap *appcatalog.Snapshot) dto.CatalogTreeResponse {
	return dto.CatalogTreeResponse{
		Nodes:    snap.Index.Roots(),
		Rows:     len(snap.Rows),
		LoadedAt: snap.LoadedAt,
	}
}
