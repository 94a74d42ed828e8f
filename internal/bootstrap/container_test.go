package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contagem-estoque/internal/bootstrap"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/pkg/config"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

const catalogCSV = "SEQPRODUTO;DESCCOMPLETA;CODACESSO;EMB;QTDEMBALAGEM;COLUNA9;N0;N1;N2;N3;N4;N5;N6;N7\n" +
	"10;ARROZ 5KG;7891234567890;PCT;1;FD 6;MERCEARIA;GRAOS;;;;;;\n"

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "catalogo.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(catalogCSV), 0o644))
	return &config.Config{
		Store:   config.StoreConfig{Driver: driver, SQLitePath: filepath.Join(dir, "contagens.db")},
		Catalog: config.CatalogConfig{Path: csvPath, Encoding: "utf-8"},
		Report:  config.ReportConfig{Operator: "USUARIO", Store: "LOJA"},
	}
}

func TestNew_SQLiteConCatalogo(t *testing.T) {
	c, err := bootstrap.New(context.Background(), testConfig(t, config.StoreSQLite), logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	snap, err := c.Catalog.Current()
	require.NoError(t, err)
	assert.Len(t, snap.Rows, 1)
}

func TestNew_CatalogoAusenteNoImpideArrancar(t *testing.T) {
	cfg := testConfig(t, config.StoreMemory)
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "nao-existe.csv")

	c, err := bootstrap.New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Catalog.Current()
	assert.ErrorIs(t, err, domain.ErrCatalogNotLoaded)
}
