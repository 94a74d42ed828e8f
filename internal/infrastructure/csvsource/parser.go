// Package csvsource lee el catálogo de productos exportado por el ERP: texto
// separado por ';', una línea de encabezado y una fila por producto.
package csvsource

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	appcatalog "github.com/jhoicas/contagem-estoque/internal/application/catalog"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// MinFields campos esperados por fila: 6 de producto + 8 niveles.
const MinFields = 6 + entity.LevelCount

// Options opciones de lectura.
type Options struct {
	Encoding string // utf-8 (por defecto), windows-1252, iso-8859-1
}

func decoder(name string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("codificação não suportada: %q", name)
	}
}

// maxLineSize límite de una línea del catálogo.
const maxLineSize = 1 << 20

// Parse lee todas las filas. Cada línea se parte en ';' sin reglas de comillas:
// una comilla es un carácter más de la descripción. Las filas con menos de
// MinFields campos se aceptan con los campos faltantes vacíos y se registran como
// advertencia; las líneas en blanco se ignoran. Todos los valores se recortan.
func Parse(r io.Reader, opts Options, log *logger.Logger) ([]entity.CatalogRow, error) {
	dec, err := decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(transform.NewReader(r, dec))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		rows       []entity.CatalogRow
		index      int
		lineNo     int
		headerSeen bool
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if !headerSeen {
			headerSeen = true
			continue
		}
		record := strings.Split(line, ";")
		if blank(record) {
			continue
		}
		index++
		if len(record) < MinFields {
			log.Warn().
				Err(domain.ErrMalformedRow).
				Int("linha", index).
				Int("linha_arquivo", lineNo).
				Int("campos", len(record)).
				Msg("linha incompleta ou inválida")
		}
		rows = append(rows, toRow(record))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ler catálogo: %w", err)
	}
	return rows, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func toRow(record []string) entity.CatalogRow {
	get := func(i int) string {
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	r := entity.CatalogRow{
		ProductID:       get(0),
		FullDescription: get(1),
		AccessCode:      get(2),
		PackagingUnit:   get(3),
		PackagingQty:    get(4),
		AuxColumn:       get(5),
	}
	for d := 0; d < entity.LevelCount; d++ {
		r.Levels[d] = get(6 + d)
	}
	return r
}

var _ appcatalog.RowSource = (*FileSource)(nil)

// FileSource origen del catálogo en un archivo local.
type FileSource struct {
	path string
	opts Options
	log  *logger.Logger
}

// NewFileSource construye el origen.
func NewFileSource(path string, opts Options, log *logger.Logger) *FileSource {
	return &FileSource{path: path, opts: opts, log: log}
}

// Path ruta del archivo.
func (s *FileSource) Path() string { return s.path }

// Load abre y lee el archivo completo.
func (s *FileSource) Load(_ context.Context) ([]entity.CatalogRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()
	return Parse(f, s.opts, s.log)
}
