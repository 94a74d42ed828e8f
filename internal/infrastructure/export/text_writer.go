// Package export implementa los formatos de archivo del reporte de contagens.
package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/application/report"
)

var _ report.Writer = (*TextWriter)(nil)

// TextWriter reporte en texto plano separado por ';', una línea por contagem.
type TextWriter struct{}

// NewTextWriter construye el writer.
func NewTextWriter() *TextWriter { return &TextWriter{} }

func (TextWriter) Format() string      { return "txt" }
func (TextWriter) ContentType() string { return "text/plain; charset=utf-8" }

// Write escribe el encabezado y las líneas terminadas en "\n".
func (TextWriter) Write(w io.Writer, r *report.Report) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(r.Header, ";") + "\n"); err != nil {
		return err
	}
	for _, line := range r.Lines {
		if _, err := bw.WriteString(strings.Join(line, ";") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
