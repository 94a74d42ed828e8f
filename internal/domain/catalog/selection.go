package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// ActiveRow fila presente en la vista activa, aportada por un nodo a cierta profundidad.
type ActiveRow struct {
	ID    string
	Depth int
	Row   entity.CatalogRow
}

// RowIdentity identidad de una fila activa: productId-accessCode-depth. Incluye la
// profundidad para que la misma fila física pueda estar presente vía ancestros distintos.
func RowIdentity(r entity.CatalogRow, depth int) string {
	return r.ProductID + "-" + r.AccessCode + "-" + strconv.Itoa(depth)
}

// SelectionAggregator mantiene la vista derivada de filas activas a medida que el
// operador marca y desmarca nodos. No es seguro para uso concurrente.
//
// Activate propaga hacia los descendientes marcados; Deactivate nunca propaga.
type SelectionAggregator struct {
	rows    []entity.CatalogRow
	byLevel [entity.LevelCount]map[string][]int
	checked map[*entity.CatalogNode]bool
	active  []ActiveRow
	present map[string]struct{}
}

// NewSelectionAggregator construye el agregador sobre las filas del catálogo.
func NewSelectionAggregator(rows []entity.CatalogRow) *SelectionAggregator {
	a := &SelectionAggregator{
		rows:    rows,
		checked: make(map[*entity.CatalogNode]bool),
		present: make(map[string]struct{}),
	}
	for d := range a.byLevel {
		a.byLevel[d] = make(map[string][]int)
	}
	for i, r := range rows {
		for d, label := range r.Levels {
			if label == "" {
				continue
			}
			a.byLevel[d][label] = append(a.byLevel[d][label], i)
		}
	}
	return a
}

// SetChecked registra el estado de marcado de un nodo sin tocar la vista activa.
func (a *SelectionAggregator) SetChecked(node *entity.CatalogNode, checked bool) {
	if checked {
		a.checked[node] = true
		return
	}
	delete(a.checked, node)
}

// IsChecked indica si el nodo está marcado.
func (a *SelectionAggregator) IsChecked(node *entity.CatalogNode) bool {
	return a.checked[node]
}

// Checked nodos marcados ordenados por ruta.
func (a *SelectionAggregator) Checked() []*entity.CatalogNode {
	out := make([]*entity.CatalogNode, 0, len(a.checked))
	for n := range a.checked {
		out = append(out, n)
	}
	slices.SortFunc(out, func(x, y *entity.CatalogNode) int {
		return strings.Compare(x.Path, y.Path)
	})
	return out
}

// Toggle traduce un evento de la interfaz: marca o desmarca el nodo y activa o
// desactiva sus filas en su propia profundidad.
func (a *SelectionAggregator) Toggle(node *entity.CatalogNode, checked bool) {
	a.SetChecked(node, checked)
	if checked {
		a.Activate(node, node.Depth)
		return
	}
	a.Deactivate(node, node.Depth)
}

// Activate agrega las filas con Levels[depth] == node.Label que aún no están
// presentes y luego repite sobre cada hijo marcado en depth+1.
func (a *SelectionAggregator) Activate(node *entity.CatalogNode, depth int) {
	if node == nil {
		return
	}
	for _, i := range a.rowsAt(depth, node.Label) {
		id := RowIdentity(a.rows[i], depth)
		if _, ok := a.present[id]; ok {
			continue
		}
		a.present[id] = struct{}{}
		a.active = append(a.active, ActiveRow{ID: id, Depth: depth, Row: a.rows[i]})
	}
	for _, child := range node.Children {
		if a.checked[child] {
			a.Activate(child, depth+1)
		}
	}
}

// Deactivate quita solo las filas cuya identidad corresponde a node.Label en depth.
// Las filas aportadas por descendientes permanecen.
func (a *SelectionAggregator) Deactivate(node *entity.CatalogNode, depth int) {
	if node == nil {
		return
	}
	remove := make(map[string]struct{})
	for _, i := range a.rowsAt(depth, node.Label) {
		id := RowIdentity(a.rows[i], depth)
		if _, ok := a.present[id]; ok {
			remove[id] = struct{}{}
			delete(a.present, id)
		}
	}
	if len(remove) == 0 {
		return
	}
	kept := a.active[:0]
	for _, ar := range a.active {
		if _, ok := remove[ar.ID]; !ok {
			kept = append(kept, ar)
		}
	}
	a.active = kept
}

func (a *SelectionAggregator) rowsAt(depth int, label string) []int {
	if depth < 0 || depth >= entity.LevelCount {
		return nil
	}
	return a.byLevel[depth][label]
}

// Active devuelve una copia de la vista activa en orden de inserción.
func (a *SelectionAggregator) Active() []ActiveRow {
	out := make([]ActiveRow, len(a.active))
	copy(out, a.active)
	return out
}

// Len cantidad de filas activas.
func (a *SelectionAggregator) Len() int {
	return len(a.active)
}

// Serialized filas activas en el formato que se persiste en el Lot.
func (a *SelectionAggregator) Serialized() []string {
	out := make([]string, 0, len(a.active))
	for _, ar := range a.active {
		out = append(out, SerializeRow(ar.Row))
	}
	return out
}
