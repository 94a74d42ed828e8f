package entity

import "time"

// Lot subconjunto de filas del catálogo confirmado por el operador para una sesión de conteo.
// Se crea una vez por confirmación y nunca se modifica.
type Lot struct {
	ID        int64     `json:"id"`
	Products  []string  `json:"produtos"` // filas serializadas con ';'
	CreatedAt time.Time `json:"created_at"`
}
