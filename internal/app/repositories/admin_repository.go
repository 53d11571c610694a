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

// AdminRepository handles admin profile database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// adminJoinedColumns selects the admin row plus its joined account.
var adminJoinedColumns = []string{
	"a.id", "a.account_id", "a.admission_no",
	"u.id", "u.name", "u.email", "u.password", "u.role",
	"u.gender", "u.phone", "u.address", "u.date_of_birth",
	"u.created_at", "u.updated_at",
}

func scanAdminJoined(row pgx.Row) (*models.AdminProfile, error) {
	admin := &models.AdminProfile{Account: &models.Account{}}
	err := row.Scan(
		&admin.ID, &admin.AccountID, &admin.AdmissionNo,
		&admin.Account.ID, &admin.Account.Name, &admin.Account.Email, &admin.Account.Password, &admin.Account.Role,
		&admin.Account.Gender, &admin.Account.Phone, &admin.Account.Address, &admin.Account.DateOfBirth,
		&admin.Account.CreatedAt, &admin.Account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Create inserts an admin profile row on the given executor.
func (r *AdminRepository) Create(ctx context.Context, q DBTX, profile *models.AdminProfile) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("account_id", "admission_no").
		Values(profile.AccountID, profile.AdmissionNo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_admission_no_key") {
			return 0, apperrors.ErrAdmissionNoExists
		}
		if dberrors.IsDuplicateConstraintError(err, "admins_account_id_key") {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		logger.Error().Err(err).Int64("accountID", profile.AccountID).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	return id, nil
}

// GetByID retrieves an admin profile joined with its account.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.AdminProfile, error) {
	sql, args, err := r.sb.Select(adminJoinedColumns...).
		From("admins a").
		Join("accounts u ON a.account_id = u.id").
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdminJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin by id: %w", err)
	}

	return admin, nil
}

// List retrieves admin profiles with their accounts, optionally filtered by
// a free-text search over name/email/phone and optionally paginated
// (limit 0 means no pagination).
func (r *AdminRepository) List(ctx context.Context, search string, offset uint64, limit int) ([]*models.AdminProfile, error) {
	builder := r.sb.Select(adminJoinedColumns...).
		From("admins a").
		Join("accounts u ON a.account_id = u.id").
		OrderBy("a.id ASC")

	if search != "" {
		like := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"u.name": like},
			squirrel.ILike{"u.email": like},
			squirrel.ILike{"u.phone": like},
		})
	}
	if limit > 0 {
		builder = builder.Offset(offset).Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list admins query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list admins query")
		return nil, fmt.Errorf("error querying admins: %w", err)
	}
	defer rows.Close()

	admins := []*models.AdminProfile{}
	for rows.Next() {
		admin, err := scanAdminJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning admin row: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin rows: %w", err)
	}

	return admins, nil
}

// Count counts admin profiles matching the search filter.
func (r *AdminRepository) Count(ctx context.Context, search string) (int64, error) {
	builder := r.sb.Select("count(a.id)").
		From("admins a").
		Join("accounts u ON a.account_id = u.id")

	if search != "" {
		like := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"u.name": like},
			squirrel.ILike{"u.email": like},
			squirrel.ILike{"u.phone": like},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count admins query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return total, nil
}

// Update writes the merged admin profile fields back.
func (r *AdminRepository) Update(ctx context.Context, q DBTX, profile *models.AdminProfile) error {
	sql, args, err := r.sb.Update("admins").
		Set("admission_no", profile.AdmissionNo).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admin query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_admission_no_key") {
			return apperrors.ErrAdmissionNoExists
		}
		logger.Error().Err(err).Int64("adminID", profile.ID).Msg("Error executing update admin query")
		return fmt.Errorf("error updating admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// Delete removes an admin profile row on the given executor.
func (r *AdminRepository) Delete(ctx context.Context, q DBTX, id int64) error {
	sql, args, err := r.sb.Delete("admins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admin query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("adminID", id).Msg("Error executing delete admin query")
		return fmt.Errorf("error deleting admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}
