package services

import (
	"fmt"
	"time"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/auth"
)

const dateOfBirthLayout = "2006-01-02"

// newAccountFromCreate builds an account row from the shared create fields,
// hashing the password before it ever leaves the service layer.
func newAccountFromCreate(req *dto.AccountCreate, role models.Role) (*models.Account, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
		Gender:   req.Gender,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("dateOfBirth must use the YYYY-MM-DD form")
		}
		account.DateOfBirth = &dob
	}

	return account, nil
}

// applyAccountUpdate merges the non-nil update fields into the stored
// account. A provided password is re-hashed.
func applyAccountUpdate(account *models.Account, upd *dto.AccountUpdate) error {
	if upd.Name != nil {
		account.Name = *upd.Name
	}
	if upd.Email != nil {
		account.Email = *upd.Email
	}
	if upd.Password != nil {
		hashed, err := auth.HashPassword(*upd.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		account.Password = hashed
	}
	if upd.Gender != nil {
		account.Gender = *upd.Gender
	}
	if upd.Phone != nil {
		account.Phone = *upd.Phone
	}
	if upd.Address != nil {
		account.Address = *upd.Address
	}
	if upd.DateOfBirth != nil {
		dob, err := time.Parse(dateOfBirthLayout, *upd.DateOfBirth)
		if err != nil {
			return apperrors.NewValidationError("dateOfBirth must use the YYYY-MM-DD form")
		}
		account.DateOfBirth = &dob
	}
	return nil
}
