// Package report arma el reporte de contagens a partir del libro y lo entrega en
// el formato pedido.
package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// Header columnas del reporte, en orden.
var Header = []string{"USUARIO", "LOCAL", "CORREDOR", "COLUNA", "ANDAR", "EAN", "SISTEMA", "DESCRIÇÃO", "EMBALAGEM", "CONTAGEM"}

// Report contenido del reporte ya normalizado (todo en mayúsculas).
type Report struct {
	Operator    string
	Store       string
	GeneratedAt time.Time
	Header      []string
	Lines       [][]string
}

// Build convierte las entradas del libro en líneas del reporte, en el mismo orden.
func Build(operator, store string, entries []*entity.CountEntry, at time.Time) *Report {
	r := &Report{
		Operator:    upper(operator),
		Store:       upper(store),
		GeneratedAt: at,
		Header:      Header,
		Lines:       make([][]string, 0, len(entries)),
	}
	for _, e := range entries {
		r.Lines = append(r.Lines, []string{
			r.Operator,
			upper(e.Key.CountType),
			upper(e.Key.Corridor),
			upper(e.Key.Column),
			upper(e.Key.Floor),
			upper(e.Key.Code),
			upper(e.Description.SystemCode),
			upper(e.Description.Name),
			upper(e.Description.Packaging),
			upper(e.Quantity.String()),
		})
	}
	return r
}

// FileName nombre del archivo: {USUARIO}_{LOJA}_{dd}-{mm}-{yyyy}.{formato}.
func FileName(operator, store string, at time.Time, format string) string {
	return fmt.Sprintf("%s_%s_%s.%s", upper(operator), upper(store), at.Format("02-01-2006"), format)
}

// upper usa reglas de mayúsculas del portugués (ç, ã, é...).
func upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}

// EntrySource origen de las contagens (CountLedger.ExportAll).
type EntrySource interface {
	ExportAll(ctx context.Context) ([]*entity.CountEntry, error)
}

// ExportInput parámetros del export. Operator y Store vacíos toman los valores por defecto.
type ExportInput struct {
	Operator string
	Store    string
	Format   string
}

// ExportResult archivo listo para descargar.
type ExportResult struct {
	FileName    string
	ContentType string
	Body        []byte
	Lines       int
}

// ExportUseCase genera el reporte de contagens.
type ExportUseCase struct {
	source          EntrySource
	writers         map[string]Writer
	defaultOperator string
	defaultStore    string
	now             func() time.Time
}

// NewExportUseCase construye el caso de uso con los formatos disponibles.
func NewExportUseCase(source EntrySource, defaultOperator, defaultStore string, writers ...Writer) *ExportUseCase {
	uc := &ExportUseCase{
		source:          source,
		writers:         make(map[string]Writer, len(writers)),
		defaultOperator: defaultOperator,
		defaultStore:    defaultStore,
		now:             time.Now,
	}
	for _, w := range writers {
		uc.writers[w.Format()] = w
	}
	return uc
}

// Export lee todas las contagens y escribe el reporte en el formato pedido (txt por defecto).
func (uc *ExportUseCase) Export(ctx context.Context, in ExportInput) (*ExportResult, error) {
	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format == "" {
		format = "txt"
	}
	w, ok := uc.writers[format]
	if !ok {
		return nil, domain.NewValidationError("formato", fmt.Sprintf("formato %q não suportado", in.Format))
	}
	operator := firstNonEmpty(in.Operator, uc.defaultOperator, "USUARIO")
	store := firstNonEmpty(in.Store, uc.defaultStore, "LOJA")

	entries, err := uc.source.ExportAll(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	rep := Build(operator, store, entries, now)

	var buf bytes.Buffer
	if err := w.Write(&buf, rep); err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	return &ExportResult{
		FileName:    FileName(operator, store, now, format),
		ContentType: w.ContentType(),
		Body:        buf.Bytes(),
		Lines:       len(rep.Lines),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
