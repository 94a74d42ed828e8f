package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/contagem-estoque/internal/application/report"
)

var _ report.Writer = (*XLSXWriter)(nil)

const xlsxSheet = "Contagens"

// XLSXWriter reporte como planilla Excel con las mismas columnas del texto.
type XLSXWriter struct{}

// NewXLSXWriter construye el writer.
func NewXLSXWriter() *XLSXWriter { return &XLSXWriter{} }

func (XLSXWriter) Format() string { return "xlsx" }
func (XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Write genera el libro. La columna CONTAGEM se guarda como número cuando es posible.
func (XLSXWriter) Write(w io.Writer, r *report.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	header := make([]interface{}, len(r.Header))
	for i, h := range r.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado: %w", err)
	}
	last := len(r.Header) - 1
	for i, line := range r.Lines {
		values := make([]interface{}, len(line))
		for j, v := range line {
			values[j] = v
		}
		if len(line) > last {
			if n, err := strconv.ParseFloat(line[last], 64); err == nil {
				values[last] = n
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: línea %d: %w", i+1, err)
		}
	}
	if err := f.SetPanes(xlsxSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("xlsx: congelar encabezado: %w", err)
	}
	return f.Write(w)
}
