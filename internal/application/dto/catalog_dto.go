package dto

import (
	"time"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// CatalogTreeResponse jerarquía de categorías para renderizar el árbol.
type CatalogTreeResponse struct {
	Nodes    []*entity.CatalogNode `json:"nodes"`
	Rows     int                   `json:"rows"`
	LoadedAt time.Time             `json:"loaded_at"`
}

// ToggleRequest evento de checkbox de un nodo del árbol.
type ToggleRequest struct {
	Path    string `json:"path"`
	Checked bool   `json:"checked"`
}

// ActiveRowDTO fila de la vista activa.
type ActiveRowDTO struct {
	ID    string `json:"id"`
	Depth int    `json:"depth"`
	Row   string `json:"row"`
}

// SelectionResponse estado de una sesión de selección.
type SelectionResponse struct {
	ID      string         `json:"id"`
	Checked []string       `json:"checked"`
	Rows    []ActiveRowDTO `json:"rows"`
	Total   int            `json:"total"`
}
