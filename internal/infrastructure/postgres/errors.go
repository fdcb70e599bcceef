package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Ordenes-api/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02" // p. ej. "abc" contra una columna UUID
)

// classify traduce un error de pgx a la taxonomía de dominio: 23505 -> duplicado,
// 23503 y 22P02 -> referencia inexistente, cualquier otro -> StorageError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, domain.ErrDuplicateIdentifier, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, domain.ErrReferenceNotFound, pgErr.ConstraintName)
		case codeInvalidText:
			return fmt.Errorf("%s: %w (%s)", op, domain.ErrReferenceNotFound, pgErr.Message)
		}
	}
	return &domain.StorageError{Op: op, Err: err}
}

// noRow indica que la búsqueda no encontró fila. Un id que no es UUID tampoco puede existir.
func noRow(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeInvalidText
}
