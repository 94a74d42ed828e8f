// Package pdf implementa la versión imprimible del reporte de contagens.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Contagem de estoque  │  Usuário / Loja / Data        │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Local | Corredor | Coluna | Andar | EAN | ... | Qtd  │
//	│  ──────────────────────────────────────────────────────────  │
//	│  FOOTER: total de linhas                                     │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"io"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/contagem-estoque/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 240, Blue: 240}
)

// gridSize columnas de la grilla; columnWidths suma gridSize y sigue el orden de report.Header.
const gridSize = 20

var columnWidths = []int{2, 2, 1, 1, 1, 3, 2, 5, 2, 1}

var _ report.Writer = (*MarotoReportWriter)(nil)

// MarotoReportWriter implementa report.Writer generando un PDF con Maroto v2.
type MarotoReportWriter struct{}

// NewMarotoReportWriter construye el writer.
func NewMarotoReportWriter() *MarotoReportWriter { return &MarotoReportWriter{} }

func (MarotoReportWriter) Format() string      { return "pdf" }
func (MarotoReportWriter) ContentType() string { return "application/pdf" }

// Write genera el PDF y lo copia en w.
func (MarotoReportWriter) Write(w io.Writer, r *report.Report) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle("Contagem de estoque", true).
		WithAuthor(r.Operator, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableRow(r.Header, true, false))
	for i, l := range r.Lines {
		m.AddRows(tableRow(l, false, i%2 == 1))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(
		col.New(gridSize).Add(text.New(fmt.Sprintf("Total de linhas: %d", len(r.Lines)), props.Text{
			Size: 7, Align: align.Right, Color: colorGray, Top: 1,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	_, err = w.Write(doc.GetBytes())
	return err
}

// headerRow: título (izq) y usuario/loja/fecha (der).
func headerRow(r *report.Report) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CONTAGEM DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(8).Add(
			text.New("Usuário: "+r.Operator+"   |   Loja: "+r.Store, props.Text{
				Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Data: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableRow(values []string, header, striped bool) core.Row {
	cols := make([]core.Col, 0, len(columnWidths))
	for i, width := range columnWidths {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		p := props.Text{Size: 7, Top: 1, Left: 1}
		if header {
			p.Style = fontstyle.Bold
			p.Color = colorPrimary
		}
		if i == len(columnWidths)-1 {
			p.Align = align.Right
			p.Right = 1
		}
		cols = append(cols, col.New(width).Add(text.New(v, p)))
	}
	r := row.New(5).Add(cols...)
	if striped {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}
