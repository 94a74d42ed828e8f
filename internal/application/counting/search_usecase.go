package counting

import (
	"context"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/search"
)

// NoProductsMessage mensaje cuando la búsqueda no encuentra productos.
const NoProductsMessage = "Nenhum produto encontrado."

// SearchInput término del operador y, opcionalmente, la ubicación donde está contando.
type SearchInput struct {
	Term      string
	Corridor  string
	Column    string
	Floor     string
	CountType string
}

// Search resuelve el término en los lotes. En modo código, si la ubicación está
// completa y ya hay una contagem para ese producto ahí, devuelve la cantidad
// registrada para precargarla.
func (r *ProductResolver) Search(ctx context.Context, in SearchInput) (*dto.SearchResponse, error) {
	res, err := r.Resolve(ctx, in.Term)
	if err != nil {
		return nil, err
	}
	out := &dto.SearchResponse{Mode: string(res.Mode), Products: res.Products}
	if res.Empty() {
		out.Products = []entity.Product{}
		out.Message = NoProductsMessage
		return out, nil
	}
	if res.Mode != search.ModeCode || !in.locationComplete() {
		return out, nil
	}
	entry, err := r.LookupCount(ctx, entity.CountKey{
		Code:      res.Last().AccessCode,
		Corridor:  in.Corridor,
		Column:    in.Column,
		Floor:     in.Floor,
		CountType: in.CountType,
	})
	if err != nil {
		return nil, err
	}
	if entry != nil {
		qty := entry.Quantity.String()
		out.Quantidade = &qty
	}
	return out, nil
}

func (in SearchInput) locationComplete() bool {
	for _, v := range []string{in.Corridor, in.Column, in.Floor, in.CountType} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
