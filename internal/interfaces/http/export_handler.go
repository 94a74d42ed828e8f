package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contagem-estoque/internal/application/report"
)

// ExportHandler descarga del reporte de contagens.
type ExportHandler struct {
	uc *report.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *report.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar contagens
// @Description  Archivo {USUARIO}_{LOJA}_{dd-mm-aaaa}.{formato} con una línea por contagem.
// @Tags         counts
// @Produce      plain
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        usuario  query  string  false  "Operador"  default(USUARIO)
// @Param        loja     query  string  false  "Loja"      default(LOJA)
// @Param        formato  query  string  false  "txt, xlsx o pdf"  default(txt)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/counts/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	res, err := h.uc.Export(c.UserContext(), report.ExportInput{
		Operator: c.Query("usuario"),
		Store:    c.Query("loja"),
		Format:   c.Query("formato"),
	})
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(res.FileName)
	c.Set(fiber.HeaderContentType, res.ContentType)
	return c.Send(res.Body)
}
