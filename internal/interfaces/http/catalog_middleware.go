package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/contagem-estoque/internal/application/catalog"
)

// catalogProvider contrato mínimo que necesita el middleware; lo implementa *catalog.CatalogService.
type catalogProvider interface {
	Current() (*appcatalog.Snapshot, error)
}

// RequireCatalog corta con 503 CATALOG_NOT_LOADED las rutas que navegan el árbol
// mientras no hay catálogo publicado (archivo ausente o ilegible al arrancar).
func RequireCatalog(catalog catalogProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := catalog.Current(); err != nil {
			return writeError(c, err)
		}
		return c.Next()
	}
}
