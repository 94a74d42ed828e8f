package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/contagem-estoque/internal/application/catalog"
	"github.com/jhoicas/contagem-estoque/internal/application/dto"
)

// SelectionHandler sesiones de selección de nodos del árbol ("Criar Lote").
type SelectionHandler struct {
	uc *appcatalog.SelectionUseCase
}

// NewSelectionHandler construye el handler.
func NewSelectionHandler(uc *appcatalog.SelectionUseCase) *SelectionHandler {
	return &SelectionHandler{uc: uc}
}

// Start godoc
// @Summary      Abrir sesión de selección
// @Tags         selections
// @Produce      json
// @Success      201  {object}  dto.SelectionResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/selections [post]
func (h *SelectionHandler) Start(c *fiber.Ctx) error {
	out, err := h.uc.Start()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Toggle godoc
// @Summary      Marcar o desmarcar un nodo
// @Tags         selections
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID de la sesión"
// @Param        body  body  dto.ToggleRequest  true  "Nodo y estado"
// @Success      200   {object}  dto.SelectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/selections/{id}/toggle [post]
func (h *SelectionHandler) Toggle(c *fiber.Ctx) error {
	var in dto.ToggleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Toggle(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         selections
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SelectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/selections/{id} [get]
func (h *SelectionHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Confirmar la selección como lote
// @Tags         selections
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      201  {object}  dto.CommitLotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/selections/{id}/commit [post]
func (h *SelectionHandler) Commit(c *fiber.Ctx) error {
	out, err := h.uc.Commit(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Discard godoc
// @Summary      Descartar la sesión sin guardar
// @Tags         selections
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/selections/{id} [delete]
func (h *SelectionHandler) Discard(c *fiber.Ctx) error {
	if err := h.uc.Discard(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
