package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contagem-estoque/internal/application/report"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/pdf"
)

func TestMarotoReportWriter_GeneraPDF(t *testing.T) {
	entries := []*entity.CountEntry{
		{Key: entity.CountKey{Code: "7891234567890", Corridor: "A", Column: "1", Floor: "2", CountType: "LOJA"}, Quantity: decimal.NewFromInt(3)},
		{Key: entity.CountKey{Code: "7891234567891", Corridor: "B", Column: "4", Floor: "1", CountType: "DEPOSITO"}, Quantity: decimal.RequireFromString("2.5")},
	}
	rep := report.Build("ana", "loja 1", entries, time.Now())

	w := pdf.NewMarotoReportWriter()
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, rep))

	assert.Equal(t, "pdf", w.Format())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "el archivo debe ser un PDF")
}
