package dto

import "time"

// CommitLotResponse salida de "Criar Lote".
type CommitLotResponse struct {
	ID       int64 `json:"id"`
	Products int   `json:"products"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID        int64     `json:"id"`
	Products  []string  `json:"produtos"`
	CreatedAt time.Time `json:"created_at"`
}

// LotListResponse lista de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Total int           `json:"total"`
}
