package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/contagem-estoque/internal/application/catalog"
)

// LotHandler lotes confirmados.
type LotHandler struct {
	uc *appcatalog.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *appcatalog.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// List godoc
// @Summary      Listar lotes
// @Tags         lots
// @Produce      json
// @Success      200  {object}  dto.LotListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteAll godoc
// @Summary      Borrar todos los lotes
// @Tags         lots
// @Success      204
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/lots [delete]
func (h *LotHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.uc.DeleteAll(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
