package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrValidation          = errors.New("entrada inválida")
	ErrIndexOutOfRange     = errors.New("índice de línea fuera de rango")
	ErrDuplicateIdentifier = errors.New("identificador duplicado")
	ErrReferenceNotFound   = errors.New("referencia inexistente")
	ErrStorage             = errors.New("error de almacenamiento")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrUnauthorized        = errors.New("no autorizado")
)

// ValidationError describe un campo de entrada mal formado o ausente.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError atajo para construir un ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ReferenceError indica que un producto o tercero referenciado no existe.
type ReferenceError struct {
	Entity string // product, party, order
	ID     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrReferenceNotFound.Error(), e.Entity, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrReferenceNotFound }

// StorageError envuelve una falla de infraestructura (conexión, commit, SQL inesperado).
// errors.Is funciona tanto contra ErrStorage como contra el error original.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage.Error(), e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// AsStorage clasifica err como StorageError salvo que ya sea un error de dominio conocido.
func AsStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomainError(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsDomainError indica si err pertenece a la taxonomía de dominio.
func IsDomainError(err error) bool {
	return IsCallerFixable(err) || errors.Is(err, ErrStorage) || errors.Is(err, ErrNotFound)
}

// IsCallerFixable distingue errores que el usuario puede corregir (datos de entrada)
// de fallas de infraestructura.
func IsCallerFixable(err error) bool {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrIndexOutOfRange),
		errors.Is(err, ErrDuplicateIdentifier),
		errors.Is(err, ErrReferenceNotFound),
		errors.Is(err, ErrInsufficientStock):
		return true
	}
	return false
}
