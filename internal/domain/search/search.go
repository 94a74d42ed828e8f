// Package search implementa los dos modos de búsqueda de productos: coincidencia
// exacta por código de barras y coincidencia ordenada de palabras sobre el nombre.
package search

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// Mode modo de búsqueda elegido para un término.
type Mode string

const (
	ModeNone Mode = ""       // término vacío: no devuelve resultados
	ModeCode Mode = "codigo" // solo dígitos: código de acceso exacto
	ModeName Mode = "nome"   // palabras en orden sobre el nombre
)

var onlyDigits = regexp.MustCompile(`^\d+$`)

// Digits elimina todo lo que no sea dígito ASCII.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// IsCodeTerm indica si el término está formado solo por dígitos.
func IsCodeTerm(term string) bool {
	return onlyDigits.MatchString(term)
}

// Query término ya compilado.
type Query struct {
	Mode   Mode
	Term   string
	digits string
	re     *regexp.Regexp
}

// Compile elige el modo según el término. Un término vacío (o solo espacios) no
// tiene palabras y se trata como "sin resultados", nunca como comodín.
func Compile(term string) Query {
	term = strings.TrimSpace(term)
	if term == "" {
		return Query{Mode: ModeNone}
	}
	if IsCodeTerm(term) {
		return Query{Mode: ModeCode, Term: term, digits: Digits(term)}
	}
	tokens := strings.FieldsFunc(term, unicode.IsSpace)
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return Query{
		Mode: ModeName,
		Term: term,
		re:   regexp.MustCompile("(?i)" + strings.Join(quoted, ".*")),
	}
}

// Match evalúa el producto contra la consulta.
func (q Query) Match(p entity.Product) bool {
	switch q.Mode {
	case ModeCode:
		return Digits(p.AccessCode) == q.digits
	case ModeName:
		return q.re.MatchString(p.FullDescription)
	default:
		return false
	}
}

// SameCode compara dos códigos ignorando caracteres que no son dígitos.
// Un código sin dígitos nunca coincide.
func SameCode(a, b string) bool {
	da := Digits(a)
	return da != "" && da == Digits(b)
}
