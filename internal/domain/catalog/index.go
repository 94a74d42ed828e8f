// Package catalog contiene la lógica pura sobre el catálogo: construcción de la
// jerarquía de categorías, proyección de la selección del operador a filas
// activas y serialización de filas para los lotes.
package catalog

import (
	"strconv"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// Index bosque de categorías construido a partir de las filas planas del catálogo.
type Index struct {
	roots  []*entity.CatalogNode
	byPath map[string]*entity.CatalogNode
}

// BuildIndex agrupa las filas en la jerarquía de niveles. El orden de los hermanos
// es el de primera aparición; una fila deja de descender en el primer nivel vacío.
// Etiquetas iguales bajo padres distintos no se fusionan.
func BuildIndex(rows []entity.CatalogRow) *Index {
	ix := &Index{byPath: make(map[string]*entity.CatalogNode)}
	root := &entity.CatalogNode{Depth: -1}
	children := make(map[*entity.CatalogNode]map[string]*entity.CatalogNode)

	for _, row := range rows {
		current := root
		for depth := 0; depth < entity.LevelCount; depth++ {
			label := row.Levels[depth]
			if label == "" {
				break
			}
			byLabel := children[current]
			if byLabel == nil {
				byLabel = make(map[string]*entity.CatalogNode)
				children[current] = byLabel
			}
			next, ok := byLabel[label]
			if !ok {
				next = &entity.CatalogNode{
					Label: label,
					Depth: depth,
					Path:  childPath(current.Path, len(current.Children)),
				}
				byLabel[label] = next
				current.Children = append(current.Children, next)
				ix.byPath[next.Path] = next
			}
			current = next
		}
	}
	ix.roots = root.Children
	return ix
}

func childPath(parent string, pos int) string {
	if parent == "" {
		return strconv.Itoa(pos)
	}
	return parent + "." + strconv.Itoa(pos)
}

// Roots devuelve los nodos de nivel 0.
func (ix *Index) Roots() []*entity.CatalogNode {
	return ix.roots
}

// Lookup busca un nodo por su ruta de posiciones ("0.2.1").
func (ix *Index) Lookup(path string) (*entity.CatalogNode, bool) {
	n, ok := ix.byPath[strings.TrimSpace(path)]
	return n, ok
}

// LookupLabels busca un nodo siguiendo las etiquetas desde la raíz.
func (ix *Index) LookupLabels(labels ...string) (*entity.CatalogNode, bool) {
	if len(labels) == 0 {
		return nil, false
	}
	var current *entity.CatalogNode
	siblings := ix.roots
	for _, label := range labels {
		current = nil
		for _, n := range siblings {
			if n.Label == label {
				current = n
				break
			}
		}
		if current == nil {
			return nil, false
		}
		siblings = current.Children
	}
	return current, true
}

// Size cantidad total de nodos del bosque.
func (ix *Index) Size() int {
	return len(ix.byPath)
}
