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

// FieldRepository handles field database operations
type FieldRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewFieldRepository creates a new FieldRepository
func NewFieldRepository(db *pgxpool.Pool) *FieldRepository {
	return &FieldRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var fieldJoinedColumns = []string{"f.id", "f.name", "f.cycle_id", "c.id", "c.name"}

func scanFieldJoined(row pgx.Row) (*models.Field, error) {
	field := &models.Field{Cycle: &models.Cycle{}}
	err := row.Scan(&field.ID, &field.Name, &field.CycleID, &field.Cycle.ID, &field.Cycle.Name)
	if err != nil {
		return nil, err
	}
	return field, nil
}

// Create inserts a field and returns its id.
func (r *FieldRepository) Create(ctx context.Context, field *models.Field) (int64, error) {
	sql, args, err := r.sb.Insert("fields").
		Columns("name", "cycle_id").
		Values(field.Name, field.CycleID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create field query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Str("name", field.Name).Msg("Error executing create field query")
		return 0, fmt.Errorf("error creating field: %w", err)
	}
	return id, nil
}

// GetByID retrieves a field with its cycle.
func (r *FieldRepository) GetByID(ctx context.Context, id int64) (*models.Field, error) {
	sql, args, err := r.sb.Select(fieldJoinedColumns...).
		From("fields f").
		Join("cycles c ON f.cycle_id = c.id").
		Where(squirrel.Eq{"f.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get field query: %w", err)
	}

	field, err := scanFieldJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFieldNotFound
		}
		logger.Error().Err(err).Int64("fieldID", id).Msg("Error scanning field row")
		return nil, fmt.Errorf("error getting field by id: %w", err)
	}
	return field, nil
}

// List retrieves fields with their cycles, optionally filtered by cycle
// (cycleID 0 means all) and paginated (limit 0 means no pagination).
func (r *FieldRepository) List(ctx context.Context, cycleID int64, offset uint64, limit int) ([]*models.Field, error) {
	builder := r.sb.Select(fieldJoinedColumns...).
		From("fields f").
		Join("cycles c ON f.cycle_id = c.id").
		OrderBy("f.id ASC")
	if cycleID > 0 {
		builder = builder.Where(squirrel.Eq{"f.cycle_id": cycleID})
	}
	if limit > 0 {
		builder = builder.Offset(offset).Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list fields query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list fields query")
		return nil, fmt.Errorf("error querying fields: %w", err)
	}
	defer rows.Close()

	fields := []*models.Field{}
	for rows.Next() {
		field, err := scanFieldJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning field row: %w", err)
		}
		fields = append(fields, field)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating field rows: %w", err)
	}
	return fields, nil
}

// Count counts fields, optionally restricted to one cycle.
func (r *FieldRepository) Count(ctx context.Context, cycleID int64) (int64, error) {
	builder := r.sb.Select("count(id)").From("fields")
	if cycleID > 0 {
		builder = builder.Where(squirrel.Eq{"cycle_id": cycleID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count fields query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting fields: %w", err)
	}
	return total, nil
}

// Update writes the merged field row back.
func (r *FieldRepository) Update(ctx context.Context, field *models.Field) error {
	sql, args, err := r.sb.Update("fields").
		SetMap(map[string]interface{}{
			"name":     field.Name,
			"cycle_id": field.CycleID,
		}).
		Where(squirrel.Eq{"id": field.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update field query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Int64("fieldID", field.ID).Msg("Error executing update field query")
		return fmt.Errorf("error updating field: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFieldNotFound
	}
	return nil
}

// Delete removes a field.
func (r *FieldRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete field query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDependentRecords
		}
		logger.Error().Err(err).Int64("fieldID", id).Msg("Error executing delete field query")
		return fmt.Errorf("error deleting field: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFieldNotFound
	}
	return nil
}
