package counting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contagem-estoque/internal/application/counting"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/search"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/memory"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

type fixture struct {
	store    *memory.Store
	ledger   *counting.CountLedger
	resolver *counting.ProductResolver
	record   *counting.RecordCountUseCase
}

func newFixture(t *testing.T, lots ...[]string) *fixture {
	t.Helper()
	store := memory.NewStore()
	for _, products := range lots {
		require.NoError(t, store.Lots().Create(context.Background(), &entity.Lot{Products: products}))
	}
	ledger := counting.NewCountLedger(store, store.Counts(), logger.Nop())
	resolver := counting.NewProductResolver(store.Lots(), store.Counts())
	return &fixture{
		store:    store,
		ledger:   ledger,
		resolver: resolver,
		record:   counting.NewRecordCountUseCase(ledger, resolver),
	}
}

var (
	lotGraos = []string{
		"1;ARROZ TIO JOAO TIPO 1 5KG PCT;7891234567890;PCT;1;FD 6",
		"2;FEIJAO CARIOCA 1KG;7891234567891;UN;1;",
	}
	lotLimpeza = []string{
		"4;SABAO EM PO 1KG;7891234567893;CX;10;",
		"9;ARROZ INTEGRAL 1KG;7891234567899;UN;1;",
	}
)

// ─── Resolve ─────────────────────────────────────────────────────────────────

func TestResolve_CodigoExacto(t *testing.T) {
	f := newFixture(t, lotGraos, lotLimpeza)

	res, err := f.resolver.Resolve(context.Background(), "7891234567891")
	require.NoError(t, err)

	assert.Equal(t, search.ModeCode, res.Mode)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "FEIJAO CARIOCA 1KG", res.Products[0].FullDescription)
}

func TestResolve_CodigoParcialNoCoincide(t *testing.T) {
	f := newFixture(t, lotGraos)

	res, err := f.resolver.Resolve(context.Background(), "789123")
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestResolve_NombreEnOrdenDeLotes(t *testing.T) {
	f := newFixture(t, lotGraos, lotLimpeza)

	res, err := f.resolver.Resolve(context.Background(), "arroz 1")
	require.NoError(t, err)

	assert.Equal(t, search.ModeName, res.Mode)
	require.Len(t, res.Products, 2)
	assert.Equal(t, "1", res.Products[0].ProductID)
	assert.Equal(t, "9", res.Products[1].ProductID)
	assert.Equal(t, "9", res.Last().ProductID)
}

func TestResolve_TerminoVacioNoDevuelveNada(t *testing.T) {
	f := newFixture(t, lotGraos)

	res, err := f.resolver.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, search.ModeNone, res.Mode)
	assert.True(t, res.Empty())
	assert.Nil(t, res.Last())
}

func TestResolve_SinLotes(t *testing.T) {
	f := newFixture(t)

	res, err := f.resolver.Resolve(context.Background(), "arroz")
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

// ─── FindByCode ──────────────────────────────────────────────────────────────

func TestFindByCode_GanaElUltimo(t *testing.T) {
	repetido := []string{"77;ARROZ NOVA EMBALAGEM;7891234567890;PCT;2;"}
	f := newFixture(t, lotGraos, repetido)

	p, err := f.resolver.FindByCode(context.Background(), "7891234567890")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "77", p.ProductID)
}

func TestFindByCode_PorSeqProduto(t *testing.T) {
	f := newFixture(t, lotLimpeza)

	p, err := f.resolver.FindByCode(context.Background(), "4")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "SABAO EM PO 1KG", p.FullDescription)
}

func TestFindByCode_Inexistente(t *testing.T) {
	f := newFixture(t, lotGraos)

	p, err := f.resolver.FindByCode(context.Background(), "0000000000000")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// ─── LookupCount ─────────────────────────────────────────────────────────────

func TestLookupCount_IgnoraNoDigitosEnCodigo(t *testing.T) {
	f := newFixture(t, lotGraos)
	ctx := context.Background()

	_, err := f.ledger.Record(ctx, observation("7891234567890", "A", "4"))
	require.NoError(t, err)

	got, err := f.resolver.LookupCount(ctx, entity.CountKey{
		Code:      "789-1234-567890",
		Corridor:  " a",
		Column:    "2",
		Floor:     "1",
		CountType: "Loja",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.Quantity.IntPart())
}

func TestLookupCount_OtraUbicacionNoCoincide(t *testing.T) {
	f := newFixture(t, lotGraos)
	ctx := context.Background()

	_, err := f.ledger.Record(ctx, observation("7891234567890", "A", "4"))
	require.NoError(t, err)

	got, err := f.resolver.LookupCount(ctx, entity.CountKey{
		Code: "7891234567890", Corridor: "A", Column: "3", Floor: "1", CountType: "LOJA",
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ─── RecordCountUseCase ──────────────────────────────────────────────────────

func TestRecordCount_CompletaDescripcionDesdeElLote(t *testing.T) {
	f := newFixture(t, lotGraos, lotLimpeza)

	res, err := f.record.Record(context.Background(), counting.RecordCountInput{
		Code: "7891234567893", Quantity: "3", Corridor: "b", Column: "1", Floor: "2", CountType: "deposito",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CountDescription{SystemCode: "4", Name: "SABAO EM PO 1KG", Packaging: "CX 10"}, res.Entry.Description)
	assert.Equal(t, "DEPOSITO", res.Entry.Key.CountType)
	require.NotNil(t, res.Product)
	assert.Equal(t, "4", res.Product.ProductID)
}

func TestRecordCount_EmbalagemPrefiereColuna9(t *testing.T) {
	f := newFixture(t, lotGraos)

	res, err := f.record.Record(context.Background(), counting.RecordCountInput{
		Code: "7891234567890", Quantity: "1", Corridor: "A", Column: "1", Floor: "1", CountType: "LOJA",
	})
	require.NoError(t, err)
	assert.Equal(t, "FD 6", res.Entry.Description.Packaging)
}

func TestRecordCount_ValidacionNoTocaAlmacenamiento(t *testing.T) {
	tests := []struct {
		name  string
		in    counting.RecordCountInput
		field string
	}{
		{"cantidad vacía", counting.RecordCountInput{Code: "7891234567890", Quantity: "  "}, "quantidade"},
		{"código corto", counting.RecordCountInput{Code: "1234567", Quantity: "1"}, "codigo"},
		{"código con letras", counting.RecordCountInput{Code: "78912345ABC90", Quantity: "1"}, "codigo"},
		{"código largo", counting.RecordCountInput{Code: "789123456789012", Quantity: "1"}, "codigo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, lotGraos)
			ctx := context.Background()

			_, err := f.record.Record(ctx, tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)

			all, err := f.ledger.ExportAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestRecordCount_ProductoFueraDeLotesSeRegistraSinDescripcion(t *testing.T) {
	f := newFixture(t)

	res, err := f.record.Record(context.Background(), counting.RecordCountInput{
		Code: "12345678", Quantity: "2", Corridor: "A", Column: "1", Floor: "1", CountType: "LOJA",
	})
	require.NoError(t, err)
	assert.Nil(t, res.Product)
	assert.Equal(t, entity.CountDescription{}, res.Entry.Description)
}

// ─── Search ──────────────────────────────────────────────────────────────────

func TestSearch_SinResultadosDevuelveMensaje(t *testing.T) {
	f := newFixture(t, lotGraos)

	out, err := f.resolver.Search(context.Background(), counting.SearchInput{Term: "chocolate"})
	require.NoError(t, err)
	assert.Empty(t, out.Products)
	assert.NotNil(t, out.Products)
	assert.Equal(t, counting.NoProductsMessage, out.Message)
}

func TestSearch_CodigoPrecargaCantidadDeLaUbicacion(t *testing.T) {
	f := newFixture(t, lotGraos)
	ctx := context.Background()

	_, err := f.ledger.Record(ctx, observation("7891234567890", "A", "4"))
	require.NoError(t, err)

	out, err := f.resolver.Search(ctx, counting.SearchInput{
		Term: "7891234567890", Corridor: "a", Column: "2", Floor: "1", CountType: "LOJA",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Quantidade)
	assert.Equal(t, "4", *out.Quantidade)

	out, err = f.resolver.Search(ctx, counting.SearchInput{Term: "7891234567890"})
	require.NoError(t, err)
	assert.Nil(t, out.Quantidade, "sin ubicación no hay precarga")
}
