package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/search"
)

func product(name, ean string) entity.Product {
	return entity.Product{FullDescription: name, AccessCode: ean}
}

func TestCompile_EligeModo(t *testing.T) {
	assert.Equal(t, search.ModeCode, search.Compile("7891234567890").Mode)
	assert.Equal(t, search.ModeName, search.Compile("arroz 5kg").Mode)
	assert.Equal(t, search.ModeName, search.Compile("789-123").Mode)
	assert.Equal(t, search.ModeNone, search.Compile("").Mode)
	assert.Equal(t, search.ModeNone, search.Compile("   ").Mode)
}

func TestCodigoExacto_NoCoincidePorSubcadena(t *testing.T) {
	q := search.Compile("7891234567890")

	assert.True(t, q.Match(product("X", "7891234567890")))
	assert.True(t, q.Match(product("X", "'7891234567890'")), "ignora caracteres no numéricos")
	assert.False(t, q.Match(product("X", "17891234567890")))
	assert.False(t, q.Match(product("X", "789123456789")))
}

func TestPalabrasEnOrden(t *testing.T) {
	q := search.Compile("arroz 5kg")

	assert.True(t, q.Match(product("ARROZ TIO JOAO TIPO 1 5KG PCT", "")))
	assert.False(t, q.Match(product("5KG ARROZ", "")), "orden invertido")
}

func TestPalabras_SeEscapanComoLiterales(t *testing.T) {
	q := search.Compile("1.5L (pet)")

	assert.True(t, q.Match(product("REFRIGERANTE 1.5L (PET) COLA", "")))
	assert.False(t, q.Match(product("REFRIGERANTE 125L PET", "")))
}

func TestTerminoVacio_NoEsComodin(t *testing.T) {
	q := search.Compile("")
	assert.False(t, q.Match(product("QUALQUER", "123")))
}

func TestSameCode(t *testing.T) {
	assert.True(t, search.SameCode("789-123", "789123"))
	assert.False(t, search.SameCode("", ""))
	assert.False(t, search.SameCode("abc", "def"))
}
