package counting

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity interpreta una cantidad escrita por el operador. Acepta coma
// decimal; lo que no es numérico por completo vale 0 ("12abc" es 0, no 12).
func ParseQuantity(s string) decimal.Decimal {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
