package catalog

import (
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// FieldSeparator separador de campos del catálogo, de los lotes y del reporte.
const FieldSeparator = ";"

// SerializeRow representación delimitada de una fila tal como se guarda en un Lot.
func SerializeRow(r entity.CatalogRow) string {
	return strings.Join([]string{
		r.ProductID, r.FullDescription, r.AccessCode,
		r.PackagingUnit, r.PackagingQty, r.AuxColumn,
	}, FieldSeparator)
}

// ParseProduct interpreta una fila serializada de un lote. Tolera comillas y
// apóstrofos alrededor de cada campo (vienen del export original del ERP).
func ParseProduct(raw string) entity.Product {
	fields := strings.Split(raw, FieldSeparator)
	get := func(i int) string {
		if i >= len(fields) {
			return ""
		}
		return strings.Trim(strings.TrimSpace(fields[i]), `'"`)
	}
	return entity.Product{
		ProductID:       get(0),
		FullDescription: get(1),
		AccessCode:      get(2),
		PackagingUnit:   get(3),
		PackagingQty:    get(4),
		AuxColumn:       get(5),
		Raw:             raw,
	}
}
