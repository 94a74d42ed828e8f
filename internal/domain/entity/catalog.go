package entity

// LevelCount cantidad de niveles jerárquicos de una fila del catálogo (Nível 0..7).
const LevelCount = 8

// CatalogRow representa una fila plana del catálogo de productos.
// Inmutable una vez cargada; Levels vacíos al final indican que la jerarquía termina antes.
type CatalogRow struct {
	ProductID       string             `json:"seq_produto" yaml:"seq_produto"`
	FullDescription string             `json:"desc_completa" yaml:"desc_completa"`
	AccessCode      string             `json:"cod_acesso" yaml:"cod_acesso"` // código de barras (EAN)
	PackagingUnit   string             `json:"emb" yaml:"emb"`
	PackagingQty    string             `json:"qtd_embalagem" yaml:"qtd_embalagem"`
	AuxColumn       string             `json:"coluna9" yaml:"coluna9"`
	Levels          [LevelCount]string `json:"niveis" yaml:"niveis"`
}

// Level devuelve la etiqueta del nivel depth o "" si está fuera de rango.
func (r CatalogRow) Level(depth int) string {
	if depth < 0 || depth >= LevelCount {
		return ""
	}
	return r.Levels[depth]
}

// CatalogNode nodo de la jerarquía de categorías.
// Children conserva el orden de primera aparición en las filas de origen.
type CatalogNode struct {
	Label    string         `json:"label" yaml:"label"`
	Depth    int            `json:"depth" yaml:"depth"`
	Path     string         `json:"path" yaml:"-"`
	Children []*CatalogNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Child busca un hijo directo por etiqueta.
func (n *CatalogNode) Child(label string) *CatalogNode {
	for _, c := range n.Children {
		if c.Label == label {
			return c
		}
	}
	return nil
}
