package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/dberrors"
	"github.com/yassine/schoolhub/internal/pkg/logger"
)

// accountColumns are the scanned columns of the accounts table, in order.
var accountColumns = []string{
	"id", "name", "email", "password", "role",
	"gender", "phone", "address", "date_of_birth",
	"created_at", "updated_at",
}

// AccountRepository handles account database operations
type AccountRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAccount(row pgx.Row, account *models.Account) error {
	return row.Scan(
		&account.ID, &account.Name, &account.Email, &account.Password, &account.Role,
		&account.Gender, &account.Phone, &account.Address, &account.DateOfBirth,
		&account.CreatedAt, &account.UpdatedAt,
	)
}

// CreateAccount inserts an account row on the given executor (pool or
// transaction) and returns the new id.
func (r *AccountRepository) CreateAccount(ctx context.Context, q DBTX, account *models.Account) (int64, error) {
	sql, args, err := r.sb.Insert("accounts").
		Columns("name", "email", "password", "role", "gender", "phone", "address", "date_of_birth").
		Values(account.Name, account.Email, account.Password, account.Role,
			account.Gender, account.Phone, account.Address, account.DateOfBirth).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create account query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", account.Email).Msg("Error executing create account query")
		return 0, fmt.Errorf("error creating account: %w", err)
	}

	return id, nil
}

// GetAccountByID retrieves an account by id.
func (r *AccountRepository) GetAccountByID(ctx context.Context, id int64) (*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get account query: %w", err)
	}

	account := &models.Account{}
	if err := scanAccount(r.db.QueryRow(ctx, sql, args...), account); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Int64("accountID", id).Msg("Error scanning account row")
		return nil, fmt.Errorf("error getting account by id: %w", err)
	}

	return account, nil
}

// GetAccountByEmail retrieves an account by email.
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get account by email query: %w", err)
	}

	account := &models.Account{}
	if err := scanAccount(r.db.QueryRow(ctx, sql, args...), account); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning account row")
		return nil, fmt.Errorf("error getting account by email: %w", err)
	}

	return account, nil
}

// UpdateAccount writes the merged account fields back. The caller supplies
// the complete row (partial merging happens in the service layer).
func (r *AccountRepository) UpdateAccount(ctx context.Context, q DBTX, account *models.Account) error {
	sql, args, err := r.sb.Update("accounts").
		SetMap(map[string]interface{}{
			"name":          account.Name,
			"email":         account.Email,
			"password":      account.Password,
			"gender":        account.Gender,
			"phone":         account.Phone,
			"address":       account.Address,
			"date_of_birth": account.DateOfBirth,
			"updated_at":    squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": account.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update account query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("accountID", account.ID).Msg("Error executing update account query")
		return fmt.Errorf("error updating account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// DeleteAccount hard-deletes an account row on the given executor.
func (r *AccountRepository) DeleteAccount(ctx context.Context, q DBTX, id int64) error {
	sql, args, err := r.sb.Delete("accounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete account query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", id).Msg("Error executing delete account query")
		return fmt.Errorf("error deleting account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}
