package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CountKey clave compuesta de negocio de una contagem.
type CountKey struct {
	Code      string `json:"codigo"`
	Corridor  string `json:"corredor"`
	Column    string `json:"coluna"`
	Floor     string `json:"andar"`
	CountType string `json:"tipo_contagem"` // LOJA, DEPOSITO...
}

// Normalize devuelve la clave en forma canónica (sin espacios alrededor, mayúsculas).
func (k CountKey) Normalize() CountKey {
	return CountKey{
		Code:      canonical(k.Code),
		Corridor:  canonical(k.Corridor),
		Column:    canonical(k.Column),
		Floor:     canonical(k.Floor),
		CountType: canonical(k.CountType),
	}
}

func canonical(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CountDescription datos del producto asociados a la contagem (antes empaquetados en "descricao").
type CountDescription struct {
	SystemCode string `json:"sistema"`
	Name       string `json:"descricao"`
	Packaging  string `json:"embalagem"`
}

// CountEntry observación acumulada de cantidad para una clave compuesta.
// Existe a lo sumo una por clave; una nueva observación suma a Quantity.
type CountEntry struct {
	ID          int64            `json:"id"`
	Key         CountKey         `json:"chave"`
	Quantity    decimal.Decimal  `json:"quantidade"`
	Description CountDescription `json:"descricao"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
