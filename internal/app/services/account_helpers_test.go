package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/auth"
)

func TestNewAccountFromCreate(t *testing.T) {
	req := &dto.AccountCreate{
		Name:        "Amina Haddad",
		Email:       "amina@school.test",
		Password:    "secret123",
		Gender:      "female",
		Phone:       "+212600000000",
		Address:     "12 Rue des Ecoles",
		DateOfBirth: "1998-05-14",
	}

	account, err := newAccountFromCreate(req, models.RoleTeacher)
	require.NoError(t, err)

	assert.Equal(t, "Amina Haddad", account.Name)
	assert.Equal(t, models.RoleTeacher, account.Role)
	assert.NotEqual(t, "secret123", account.Password)
	assert.True(t, auth.CheckPassword(account.Password, "secret123"))

	require.NotNil(t, account.DateOfBirth)
	assert.Equal(t, time.Date(1998, 5, 14, 0, 0, 0, 0, time.UTC), *account.DateOfBirth)
}

func TestNewAccountFromCreate_NoDateOfBirth(t *testing.T) {
	req := &dto.AccountCreate{
		Name:     "Omar",
		Email:    "omar@school.test",
		Password: "secret123",
	}

	account, err := newAccountFromCreate(req, models.RoleStudent)
	require.NoError(t, err)
	assert.Nil(t, account.DateOfBirth)
}

func TestNewAccountFromCreate_BadDateOfBirth(t *testing.T) {
	req := &dto.AccountCreate{
		Name:        "Omar",
		Email:       "omar@school.test",
		Password:    "secret123",
		DateOfBirth: "14/05/1998",
	}

	_, err := newAccountFromCreate(req, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApplyAccountUpdate(t *testing.T) {
	account := &models.Account{
		Name:     "Old Name",
		Email:    "old@school.test",
		Password: "old-hash",
		Gender:   "male",
		Phone:    "+212600000000",
	}

	newName := "New Name"
	newPhone := "+212611111111"
	err := applyAccountUpdate(account, &dto.AccountUpdate{
		Name:  &newName,
		Phone: &newPhone,
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", account.Name)
	assert.Equal(t, "+212611111111", account.Phone)
	// Untouched fields keep their stored values.
	assert.Equal(t, "old@school.test", account.Email)
	assert.Equal(t, "old-hash", account.Password)
}

func TestApplyAccountUpdate_RehashesPassword(t *testing.T) {
	account := &models.Account{Password: "old-hash"}

	newPassword := "brand-new-pass"
	err := applyAccountUpdate(account, &dto.AccountUpdate{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, "old-hash", account.Password)
	assert.NotEqual(t, "brand-new-pass", account.Password)
	assert.True(t, auth.CheckPassword(account.Password, "brand-new-pass"))
}

func TestApplyAccountUpdate_BadDateOfBirth(t *testing.T) {
	account := &models.Account{}
	bad := "not-a-date"

	err := applyAccountUpdate(account, &dto.AccountUpdate{DateOfBirth: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
