package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ValidationKind clase de fallo de validación de un campo.
type ValidationKind string

const (
	MissingField ValidationKind = "missing_field"
	InvalidType  ValidationKind = "invalid_type"
)

// ValidationError fallo de validación sobre un campo concreto.
// Envuelve ErrInvalidInput para que errors.Is lo reconozca.
type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	if e.Kind == InvalidType {
		return fmt.Sprintf("el campo %s tiene un valor inválido", e.Field)
	}
	return fmt.Sprintf("el campo %s es requerido", e.Field)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Missing construye el error de campo requerido ausente o vacío.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Kind: MissingField}
}

// Invalid construye el error de campo con valor mal tipado o fuera de rango.
func Invalid(field string) *ValidationError {
	return &ValidationError{Field: field, Kind: InvalidType}
}
