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

// ParentRepository handles parent profile database operations
type ParentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewParentRepository creates a new ParentRepository
func NewParentRepository(db *pgxpool.Pool) *ParentRepository {
	return &ParentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var parentJoinedColumns = []string{
	"p.id", "p.account_id", "p.admission_no",
	"u.id", "u.name", "u.email", "u.password", "u.role",
	"u.gender", "u.phone", "u.address", "u.date_of_birth",
	"u.created_at", "u.updated_at",
}

func scanParentJoined(row pgx.Row) (*models.ParentProfile, error) {
	parent := &models.ParentProfile{Account: &models.Account{}}
	err := row.Scan(
		&parent.ID, &parent.AccountID, &parent.AdmissionNo,
		&parent.Account.ID, &parent.Account.Name, &parent.Account.Email, &parent.Account.Password, &parent.Account.Role,
		&parent.Account.Gender, &parent.Account.Phone, &parent.Account.Address, &parent.Account.DateOfBirth,
		&parent.Account.CreatedAt, &parent.Account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return parent, nil
}

// Create inserts a parent profile row on the given executor.
func (r *ParentRepository) Create(ctx context.Context, q DBTX, profile *models.ParentProfile) (int64, error) {
	sql, args, err := r.sb.Insert("parents").
		Columns("account_id", "admission_no").
		Values(profile.AccountID, profile.AdmissionNo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create parent query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "parents_account_id_key") {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		logger.Error().Err(err).Int64("accountID", profile.AccountID).Msg("Error executing create parent query")
		return 0, fmt.Errorf("error creating parent: %w", err)
	}

	return id, nil
}

// GetByID retrieves a parent profile joined with its account.
func (r *ParentRepository) GetByID(ctx context.Context, id int64) (*models.ParentProfile, error) {
	sql, args, err := r.sb.Select(parentJoinedColumns...).
		From("parents p").
		Join("accounts u ON p.account_id = u.id").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get parent query: %w", err)
	}

	parent, err := scanParentJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParentNotFound
		}
		logger.Error().Err(err).Int64("parentID", id).Msg("Error scanning parent row")
		return nil, fmt.Errorf("error getting parent by id: %w", err)
	}

	return parent, nil
}

// Exists reports whether a parent profile with the given id exists.
func (r *ParentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("parents").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build parent exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking parent existence: %w", err)
	}
	return exists, nil
}

// List retrieves parent profiles with accounts, with optional search and
// pagination (limit 0 means no pagination).
func (r *ParentRepository) List(ctx context.Context, search string, offset uint64, limit int) ([]*models.ParentProfile, error) {
	builder := r.sb.Select(parentJoinedColumns...).
		From("parents p").
		Join("accounts u ON p.account_id = u.id").
		OrderBy("p.id ASC")

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
		return nil, fmt.Errorf("failed to build list parents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list parents query")
		return nil, fmt.Errorf("error querying parents: %w", err)
	}
	defer rows.Close()

	parents := []*models.ParentProfile{}
	for rows.Next() {
		parent, err := scanParentJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning parent row: %w", err)
		}
		parents = append(parents, parent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parent rows: %w", err)
	}

	return parents, nil
}

// Count counts parent profiles matching the search filter.
func (r *ParentRepository) Count(ctx context.Context, search string) (int64, error) {
	builder := r.sb.Select("count(p.id)").
		From("parents p").
		Join("accounts u ON p.account_id = u.id")

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
		return 0, fmt.Errorf("failed to build count parents query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting parents: %w", err)
	}
	return total, nil
}

// Update writes the merged parent profile fields back.
func (r *ParentRepository) Update(ctx context.Context, q DBTX, profile *models.ParentProfile) error {
	sql, args, err := r.sb.Update("parents").
		Set("admission_no", profile.AdmissionNo).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update parent query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("parentID", profile.ID).Msg("Error executing update parent query")
		return fmt.Errorf("error updating parent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParentNotFound
	}

	return nil
}

// GetStudents retrieves the students linked to a parent, with their
// accounts, ordered by id.
func (r *ParentRepository) GetStudents(ctx context.Context, parentID int64) ([]models.StudentProfile, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.account_id", "s.admission_no", "s.status", "s.group_id", "s.parent_id",
		"u.id", "u.name", "u.email", "u.password", "u.role",
		"u.gender", "u.phone", "u.address", "u.date_of_birth",
		"u.created_at", "u.updated_at",
	).
		From("students s").
		Join("accounts u ON s.account_id = u.id").
		Where(squirrel.Eq{"s.parent_id": parentID}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build parent students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("parentID", parentID).Msg("Error executing parent students query")
		return nil, fmt.Errorf("error querying parent students: %w", err)
	}
	defer rows.Close()

	students := []models.StudentProfile{}
	for rows.Next() {
		student := models.StudentProfile{Account: &models.Account{}}
		err := rows.Scan(
			&student.ID, &student.AccountID, &student.AdmissionNo, &student.Status, &student.GroupID, &student.ParentID,
			&student.Account.ID, &student.Account.Name, &student.Account.Email, &student.Account.Password, &student.Account.Role,
			&student.Account.Gender, &student.Account.Phone, &student.Account.Address, &student.Account.DateOfBirth,
			&student.Account.CreatedAt, &student.Account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning parent student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parent student rows: %w", err)
	}

	return students, nil
}

// Delete removes a parent profile row on the given executor. Parents still
// referenced by students are protected by the restrict FK.
func (r *ParentRepository) Delete(ctx context.Context, q DBTX, id int64) error {
	sql, args, err := r.sb.Delete("parents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete parent query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDependentRecords
		}
		logger.Error().Err(err).Int64("parentID", id).Msg("Error executing delete parent query")
		return fmt.Errorf("error deleting parent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParentNotFound
	}

	return nil
}
