package counting

import (
	"context"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/catalog"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
	"github.com/jhoicas/contagem-estoque/internal/domain/search"
)

// Resolution resultado de una búsqueda: el modo usado y los productos encontrados.
type Resolution struct {
	Mode     search.Mode
	Products []entity.Product
}

// Empty indica que la búsqueda no encontró nada (no es un error).
func (r *Resolution) Empty() bool {
	return r == nil || len(r.Products) == 0
}

// Last último producto encontrado; en modo código es el que se usa para precargar la cantidad.
func (r *Resolution) Last() *entity.Product {
	if r.Empty() {
		return nil
	}
	p := r.Products[len(r.Products)-1]
	return &p
}

// MatchProducts aplica la búsqueda sobre los productos de los lotes, en el orden dado.
func MatchProducts(products []entity.Product, term string) *Resolution {
	q := search.Compile(term)
	res := &Resolution{Mode: q.Mode}
	if q.Mode == search.ModeNone {
		return res
	}
	for _, p := range products {
		if q.Match(p) {
			res.Products = append(res.Products, p)
		}
	}
	return res
}

// ProductResolver resuelve términos del operador contra los productos de los lotes
// y localiza contagens ya registradas por clave de negocio.
type ProductResolver struct {
	lots   repository.LotRepository
	counts repository.CountRepository
}

// NewProductResolver construye el resolver.
func NewProductResolver(lots repository.LotRepository, counts repository.CountRepository) *ProductResolver {
	return &ProductResolver{lots: lots, counts: counts}
}

// Resolve busca el término en todos los lotes, en orden de lote y de producto.
func (r *ProductResolver) Resolve(ctx context.Context, term string) (*Resolution, error) {
	if search.Compile(term).Mode == search.ModeNone {
		return &Resolution{Mode: search.ModeNone}, nil
	}
	products, err := r.lotProducts(ctx)
	if err != nil {
		return nil, err
	}
	return MatchProducts(products, term), nil
}

// FindByCode busca un producto de los lotes cuyo código de acceso o SEQPRODUTO sea
// igual a code (sin distinguir mayúsculas). Si hay varios gana el último.
// Devuelve (nil, nil) si no existe.
func (r *ProductResolver) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	products, err := r.lotProducts(ctx)
	if err != nil {
		return nil, err
	}
	var found *entity.Product
	for i := range products {
		p := products[i]
		if strings.EqualFold(p.AccessCode, code) || strings.EqualFold(p.ProductID, code) {
			found = &p
		}
	}
	return found, nil
}

// LookupCount localiza la contagem registrada para la clave. Los campos se comparan
// en forma canónica y el código ignorando caracteres que no son dígitos.
// Devuelve (nil, nil) si no existe.
func (r *ProductResolver) LookupCount(ctx context.Context, key entity.CountKey) (*entity.CountEntry, error) {
	key = key.Normalize()
	entries, err := r.counts.List(ctx)
	if err != nil {
		return nil, domain.StorageError("buscar contagem", err)
	}
	for _, e := range entries {
		if !search.SameCode(e.Key.Code, key.Code) {
			continue
		}
		if e.Key.Corridor == key.Corridor &&
			e.Key.Column == key.Column &&
			e.Key.Floor == key.Floor &&
			strings.ToUpper(e.Key.CountType) == key.CountType {
			return e, nil
		}
	}
	return nil, nil
}

func (r *ProductResolver) lotProducts(ctx context.Context) ([]entity.Product, error) {
	lots, err := r.lots.List(ctx)
	if err != nil {
		return nil, domain.StorageError("buscar produto", err)
	}
	var products []entity.Product
	for _, lot := range lots {
		for _, raw := range lot.Products {
			products = append(products, catalog.ParseProduct(raw))
		}
	}
	return products, nil
}
