package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ordenes-api/internal/domain"
)

func TestClassify_UniqueEsDuplicado(t *testing.T) {
	err := classify("insert order", &pgconn.PgError{Code: "23505", ConstraintName: "orders_number_key"})
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
	assert.NotErrorIs(t, err, domain.ErrStorage)
	assert.Contains(t, err.Error(), "orders_number_key")
}

func TestClassify_ForeignKeyEsReferencia(t *testing.T) {
	err := classify("insert line", &pgconn.PgError{Code: "23503"})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestClassify_OtrosSonStorage(t *testing.T) {
	cause := errors.New("conexión cerrada")
	err := classify("insert order", cause)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, classify("noop", nil))
}

func TestClassify_TextoInvalidoEsReferencia(t *testing.T) {
	err := classify("get product", &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.True(t, domain.IsCallerFixable(err))
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestNoRow_SinFilaOUUIDInvalido(t *testing.T) {
	assert.True(t, noRow(pgx.ErrNoRows))
	assert.True(t, noRow(fmt.Errorf("scan: %w", &pgconn.PgError{Code: "22P02"})))
	assert.False(t, noRow(&pgconn.PgError{Code: "23505"}))
	assert.False(t, noRow(errors.New("conexión cerrada")))
}
