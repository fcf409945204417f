package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrCode_DistingueViolaciones(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeUniqueViolation})
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeForeignKeyViolation})

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))

	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(fk))
}

func TestPgErrCode_ErrorAjenoNoCoincide(t *testing.T) {
	err := errors.New("connection refused 23505")
	assert.False(t, isUniqueViolation(err))
	assert.False(t, isForeignKeyViolation(err))
}
