package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jhoicas/Ordenes-api/internal/domain"
)

// classify traduce los errores de gorm (con TranslateError activo) a la taxonomía de dominio.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicateIdentifier)
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%s: %w", op, domain.ErrReferenceNotFound)
	}
	return &domain.StorageError{Op: op, Err: err}
}
