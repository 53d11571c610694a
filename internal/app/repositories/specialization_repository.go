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

// SpecializationRepository handles specialization database operations
type SpecializationRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewSpecializationRepository creates a new SpecializationRepository
func NewSpecializationRepository(db *pgxpool.Pool) *SpecializationRepository {
	return &SpecializationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var specializationJoinedColumns = []string{"sp.id", "sp.name", "sp.field_id", "f.id", "f.name", "f.cycle_id"}

func scanSpecializationJoined(row pgx.Row) (*models.Specialization, error) {
	spec := &models.Specialization{Field: &models.Field{}}
	err := row.Scan(&spec.ID, &spec.Name, &spec.FieldID, &spec.Field.ID, &spec.Field.Name, &spec.Field.CycleID)
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// Create inserts a specialization and returns its id.
func (r *SpecializationRepository) Create(ctx context.Context, spec *models.Specialization) (int64, error) {
	sql, args, err := r.sb.Insert("specializations").
		Columns("name", "field_id").
		Values(spec.Name, spec.FieldID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create specialization query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Str("name", spec.Name).Msg("Error executing create specialization query")
		return 0, fmt.Errorf("error creating specialization: %w", err)
	}
	return id, nil
}

// GetByID retrieves a specialization with its field.
func (r *SpecializationRepository) GetByID(ctx context.Context, id int64) (*models.Specialization, error) {
	sql, args, err := r.sb.Select(specializationJoinedColumns...).
		From("specializations sp").
		Join("fields f ON sp.field_id = f.id").
		Where(squirrel.Eq{"sp.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get specialization query: %w", err)
	}

	spec, err := scanSpecializationJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSpecializationNotFound
		}
		logger.Error().Err(err).Int64("specializationID", id).Msg("Error scanning specialization row")
		return nil, fmt.Errorf("error getting specialization by id: %w", err)
	}
	return spec, nil
}

// List retrieves specializations with their fields, optionally filtered by
// field (fieldID 0 means all) and paginated (limit 0 means no pagination).
func (r *SpecializationRepository) List(ctx context.Context, fieldID int64, offset uint64, limit int) ([]*models.Specialization, error) {
	builder := r.sb.Select(specializationJoinedColumns...).
		From("specializations sp").
		Join("fields f ON sp.field_id = f.id").
		OrderBy("sp.id ASC")
	if fieldID > 0 {
		builder = builder.Where(squirrel.Eq{"sp.field_id": fieldID})
	}
	if limit > 0 {
		builder = builder.Offset(offset).Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list specializations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list specializations query")
		return nil, fmt.Errorf("error querying specializations: %w", err)
	}
	defer rows.Close()

	specs := []*models.Specialization{}
	for rows.Next() {
		spec, err := scanSpecializationJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning specialization row: %w", err)
		}
		specs = append(specs, spec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specialization rows: %w", err)
	}
	return specs, nil
}

// Count counts specializations, optionally restricted to one field.
func (r *SpecializationRepository) Count(ctx context.Context, fieldID int64) (int64, error) {
	builder := r.sb.Select("count(id)").From("specializations")
	if fieldID > 0 {
		builder = builder.Where(squirrel.Eq{"field_id": fieldID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count specializations query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting specializations: %w", err)
	}
	return total, nil
}

// Update writes the merged specialization row back.
func (r *SpecializationRepository) Update(ctx context.Context, spec *models.Specialization) error {
	sql, args, err := r.sb.Update("specializations").
		SetMap(map[string]interface{}{
			"name":     spec.Name,
			"field_id": spec.FieldID,
		}).
		Where(squirrel.Eq{"id": spec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update specialization query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Int64("specializationID", spec.ID).Msg("Error executing update specialization query")
		return fmt.Errorf("error updating specialization: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSpecializationNotFound
	}
	return nil
}

// Delete removes a specialization.
func (r *SpecializationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("specializations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete specialization query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDependentRecords
		}
		logger.Error().Err(err).Int64("specializationID", id).Msg("Error executing delete specialization query")
		return fmt.Errorf("error deleting specialization: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSpecializationNotFound
	}
	return nil
}
