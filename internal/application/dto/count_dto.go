package dto

import (
	"time"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// RecordCountRequest entrada de la pantalla de contagens.
type RecordCountRequest struct {
	Codigo       string `json:"codigo"`
	Quantidade   string `json:"quantidade"`
	Corredor     string `json:"corredor"`
	Coluna       string `json:"coluna"`
	Andar        string `json:"andar"`
	TipoContagem string `json:"tipo_contagem"`
}

// CountEntryResponse salida de una contagem acumulada.
type CountEntryResponse struct {
	ID           int64     `json:"id"`
	Codigo       string    `json:"codigo"`
	Corredor     string    `json:"corredor"`
	Coluna       string    `json:"coluna"`
	Andar        string    `json:"andar"`
	TipoContagem string    `json:"tipo_contagem"`
	Quantidade   string    `json:"quantidade"`
	Sistema      string    `json:"sistema"`
	Descricao    string    `json:"descricao"`
	Embalagem    string    `json:"embalagem"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecordCountResponse contagem acumulada y último producto contado.
type RecordCountResponse struct {
	Entry   CountEntryResponse `json:"entry"`
	Product *entity.Product    `json:"product,omitempty"`
}

// CountListResponse lista de contagens en orden de almacenamiento.
type CountListResponse struct {
	Items []CountEntryResponse `json:"items"`
	Total int                  `json:"total"`
}

// SearchResponse resultado de buscar un producto. Quantidade trae la cantidad ya
// registrada para la ubicación cuando la búsqueda fue por código.
type SearchResponse struct {
	Mode       string           `json:"mode"`
	Products   []entity.Product `json:"products"`
	Quantidade *string          `json:"quantidade,omitempty"`
	Message    string           `json:"message,omitempty"`
}

// ToCountEntryResponse convierte la entidad a su DTO.
func ToCountEntryResponse(e *entity.CountEntry) CountEntryResponse {
	return CountEntryResponse{
		ID:           e.ID,
		Codigo:       e.Key.Code,
		Corredor:     e.Key.Corridor,
		Coluna:       e.Key.Column,
		Andar:        e.Key.Floor,
		TipoContagem: e.Key.CountType,
		Quantidade:   e.Quantity.String(),
		Sistema:      e.Description.SystemCode,
		Descricao:    e.Description.Name,
		Embalagem:    e.Description.Packaging,
		UpdatedAt:    e.UpdatedAt,
	}
}
