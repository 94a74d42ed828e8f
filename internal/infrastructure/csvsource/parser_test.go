package csvsource_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/contagem-estoque/internal/infrastructure/csvsource"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

const header = "SEQPRODUTO;DESCCOMPLETA;CODACESSO;EMB;QTDEMBALAGEM;Coluna9;Nível 0;Nível 1;Nível 2;Nível 3;Nível 4;Nível 5;Nível 6;Nível 7\n"

func TestParse_FilaCompleta(t *testing.T) {
	src := header + " 10 ; ARROZ 5KG ;7891234567890;PCT;1;PCT 1;MERCEARIA;GRAOS;ARROZ;;;;;\n"

	rows, err := csvsource.Parse(strings.NewReader(src), csvsource.Options{}, logger.Nop())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "10", r.ProductID)
	assert.Equal(t, "ARROZ 5KG", r.FullDescription)
	assert.Equal(t, "PCT 1", r.AuxColumn)
	assert.Equal(t, "MERCEARIA", r.Levels[0])
	assert.Equal(t, "ARROZ", r.Levels[2])
	assert.Empty(t, r.Levels[3])
}

func TestParse_FilaIncompletaSeAceptaYSeRegistra(t *testing.T) {
	var out bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &out})
	src := header + "11;FEIJAO;7891234567891;UN\n\n   \n"

	rows, err := csvsource.Parse(strings.NewReader(src), csvsource.Options{}, log)
	require.NoError(t, err)
	require.Len(t, rows, 1, "las líneas en blanco se ignoran")
	assert.Equal(t, "UN", rows[0].PackagingUnit)
	assert.Empty(t, rows[0].PackagingQty)
	assert.Empty(t, rows[0].Levels[0])
	assert.Contains(t, out.String(), "linha incompleta")
	assert.Contains(t, out.String(), `"campos":4`)
}

func TestParse_Windows1252(t *testing.T) {
	src := header + "12;AÇÚCAR REFINADO;7891234567892;UN;1;UN;MERCEARIA;DOCES;;;;;;\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(src)
	require.NoError(t, err)

	rows, err := csvsource.Parse(strings.NewReader(encoded), csvsource.Options{Encoding: "windows-1252"}, logger.Nop())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "AÇÚCAR REFINADO", rows[0].FullDescription)
}

func TestParse_CodificacionDesconocida(t *testing.T) {
	_, err := csvsource.Parse(strings.NewReader(header), csvsource.Options{Encoding: "ebcdic"}, logger.Nop())
	assert.Error(t, err)
}

func TestParse_SoloEncabezadoOVacio(t *testing.T) {
	rows, err := csvsource.Parse(strings.NewReader(header), csvsource.Options{}, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = csvsource.Parse(strings.NewReader(""), csvsource.Options{}, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogo.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeff"+header+"1;X;7890000000001;UN;1;UN;A;B;;;;;;\n"), 0o644))

	rows, err := csvsource.NewFileSource(path, csvsource.Options{}, logger.Nop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].Levels[1])
}

func TestParse_ComillasSonTextoYNoCortanLasFilasSiguientes(t *testing.T) {
	src := header +
		"10;\"ARROZ\" TIO JOAO;7891234567890;UN;1;UN;MERCEARIA;GRAOS;;;;;;\r\n" +
		"11;\"TV 32 POL;7891234567891;UN;1;UN;ELETRO;TV;;;;;;\r\n" +
		"12;FEIJAO 1KG;7891234567892;UN;1;UN;MERCEARIA;GRAOS;;;;;;\r\n"

	rows, err := csvsource.Parse(strings.NewReader(src), csvsource.Options{}, logger.Nop())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, `"ARROZ" TIO JOAO`, rows[0].FullDescription)
	assert.Equal(t, "7891234567890", rows[0].AccessCode)
	assert.Equal(t, "MERCEARIA", rows[0].Levels[0])

	assert.Equal(t, `"TV 32 POL`, rows[1].FullDescription)
	assert.Equal(t, "ELETRO", rows[1].Levels[0])
	assert.Equal(t, "TV", rows[1].Levels[1])

	assert.Equal(t, "12", rows[2].ProductID)
	assert.Empty(t, rows[2].Levels[7], "sin \\r residual en el último campo")
}
