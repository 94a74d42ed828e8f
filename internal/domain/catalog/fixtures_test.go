package catalog_test

import "github.com/jhoicas/contagem-estoque/internal/domain/entity"

func row(id, name, ean string, levels ...string) entity.CatalogRow {
	r := entity.CatalogRow{ProductID: id, FullDescription: name, AccessCode: ean, PackagingUnit: "UN", PackagingQty: "1", AuxColumn: "UN 1"}
	copy(r.Levels[:], levels)
	return r
}

// sampleRows catálogo pequeño con dos ramas que repiten la etiqueta "DIVERSOS" en nivel 1.
func sampleRows() []entity.CatalogRow {
	return []entity.CatalogRow{
		row("1", "ARROZ TIO JOAO TIPO 1 5KG PCT", "7891234567890", "MERCEARIA", "GRAOS", "ARROZ"),
		row("2", "FEIJAO CARIOCA 1KG", "7891234567891", "MERCEARIA", "GRAOS", "FEIJAO"),
		row("3", "OLEO DE SOJA 900ML", "7891234567892", "MERCEARIA", "OLEOS"),
		row("4", "SABAO EM PO 1KG", "7891234567893", "LIMPEZA", "DIVERSOS"),
		row("5", "MACARRAO ESPAGUETE", "7891234567894", "MERCEARIA", "DIVERSOS"),
		row("6", "SEM CATEGORIA", "7891234567895"),
	}
}
