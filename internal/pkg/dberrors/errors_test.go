package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "students_group_id_fkey"}

	assert.True(t, IsDuplicateKeyError(dup))
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("insert failed: %w", dup)))
	assert.False(t, IsDuplicateKeyError(fk))
	assert.False(t, IsDuplicateKeyError(errors.New("plain error")))
	assert.False(t, IsDuplicateKeyError(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}

	assert.True(t, IsDuplicateConstraintError(dup, "accounts_email_key"))
	assert.False(t, IsDuplicateConstraintError(dup, "subjects_name_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "students_group_id_fkey"}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsForeignKeyConstraintError(fk, "students_group_id_fkey"))
	assert.False(t, IsForeignKeyConstraintError(fk, "students_parent_id_fkey"))
	assert.False(t, IsForeignKeyViolation(errors.New("plain error")))
}
