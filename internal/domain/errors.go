package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
	ErrMalformedRow       = errors.New("linha do catálogo incompleta")
	ErrEmptySelection     = errors.New("nenhum produto selecionado")
	ErrCatalogNotLoaded   = errors.New("catálogo no cargado")
)

// ValidationError error de validación asociado a un campo de entrada.
// Nunca llega al almacenamiento; errors.Is(err, ErrInvalidInput) es verdadero.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite comparar con ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError envuelve un fallo del almacenamiento para que el caller lo reciba
// como ErrStorageUnavailable sin perder la causa original.
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
