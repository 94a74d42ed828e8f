package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contagem-estoque/internal/application/counting"
	"github.com/jhoicas/contagem-estoque/internal/application/dto"
)

// CountHandler búsqueda de productos y registro de contagens.
type CountHandler struct {
	record   *counting.RecordCountUseCase
	ledger   *counting.CountLedger
	resolver *counting.ProductResolver
}

// NewCountHandler construye el handler.
func NewCountHandler(record *counting.RecordCountUseCase, ledger *counting.CountLedger, resolver *counting.ProductResolver) *CountHandler {
	return &CountHandler{record: record, ledger: ledger, resolver: resolver}
}

// Search godoc
// @Summary      Buscar producto en los lotes
// @Description  Solo dígitos: código de barras exacto. Si no, palabras en orden sobre la descripción.
// @Tags         products
// @Produce      json
// @Param        term      query  string  true   "Código o descripción"
// @Param        corredor  query  string  false  "Corredor"
// @Param        coluna    query  string  false  "Coluna"
// @Param        andar     query  string  false  "Andar"
// @Param        tipo      query  string  false  "Tipo de contagem"
// @Success      200  {object}  dto.SearchResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *CountHandler) Search(c *fiber.Ctx) error {
	out, err := h.resolver.Search(c.UserContext(), counting.SearchInput{
		Term:      c.Query("term"),
		Corridor:  c.Query("corredor"),
		Column:    c.Query("coluna"),
		Floor:     c.Query("andar"),
		CountType: c.Query("tipo"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Record godoc
// @Summary      Registrar contagem
// @Description  Suma la cantidad a la contagem existente de la misma ubicación o crea una nueva.
// @Tags         counts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordCountRequest  true  "Contagem"
// @Success      201   {object}  dto.RecordCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/counts [post]
func (h *CountHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordCountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.record.Record(c.UserContext(), counting.RecordCountInput{
		Code:      in.Codigo,
		Quantity:  in.Quantidade,
		Corridor:  in.Corredor,
		Column:    in.Coluna,
		Floor:     in.Andar,
		CountType: in.TipoContagem,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordCountResponse{
		Entry:   dto.ToCountEntryResponse(res.Entry),
		Product: res.Product,
	})
}

// List godoc
// @Summary      Listar contagens
// @Tags         counts
// @Produce      json
// @Success      200  {object}  dto.CountListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/counts [get]
func (h *CountHandler) List(c *fiber.Ctx) error {
	entries, err := h.ledger.ExportAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.CountEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ToCountEntryResponse(e))
	}
	return c.JSON(dto.CountListResponse{Items: items, Total: len(items)})
}

// Reset godoc
// @Summary      Borrar todas las contagens
// @Tags         counts
// @Success      204
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/counts [delete]
func (h *CountHandler) Reset(c *fiber.Ctx) error {
	if err := h.ledger.Reset(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
