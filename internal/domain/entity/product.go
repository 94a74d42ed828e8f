package entity

// Product vista de un producto dentro de un lote (fila serializada ya parseada).
type Product struct {
	ProductID       string `json:"seq_produto"`
	FullDescription string `json:"desc_completa"`
	AccessCode      string `json:"cod_acesso"`
	PackagingUnit   string `json:"emb"`
	PackagingQty    string `json:"qtd_embalagem"`
	AuxColumn       string `json:"coluna9"`
	Raw             string `json:"raw"`
}

// Packaging devuelve la embalaje mostrada en el reporte: Coluna9 (EMB. 1) y,
// si falta, la unidad con su cantidad.
func (p Product) Packaging() string {
	if p.AuxColumn != "" {
		return p.AuxColumn
	}
	if p.PackagingQty == "" {
		return p.PackagingUnit
	}
	if p.PackagingUnit == "" {
		return p.PackagingQty
	}
	return p.PackagingUnit + " " + p.PackagingQty
}
