package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsExclusionConflict(t *testing.T) {
	assert.True(t, IsExclusionConflict(&pgconn.PgError{Code: "23P01"}))
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsExclusionConflict(errors.New("timeout")))
	assert.False(t, IsExclusionConflict(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23P01"}))
	assert.False(t, IsUniqueViolation(errors.New("timeout")))
}

func TestPgHelpersUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("create customer: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueViolation(wrapped))

	wrapped = fmt.Errorf("create appointment: %w", &pgconn.PgError{Code: "23P01"})
	assert.True(t, IsExclusionConflict(wrapped))
}
