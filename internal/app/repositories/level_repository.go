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

// LevelRepository handles level database operations
type LevelRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewLevelRepository creates a new LevelRepository
func NewLevelRepository(db *pgxpool.Pool) *LevelRepository {
	return &LevelRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var levelJoinedColumns = []string{"l.id", "l.name", "l.specialization_id", "sp.id", "sp.name", "sp.field_id"}

func scanLevelJoined(row pgx.Row) (*models.Level, error) {
	level := &models.Level{Specialization: &models.Specialization{}}
	err := row.Scan(&level.ID, &level.Name, &level.SpecializationID,
		&level.Specialization.ID, &level.Specialization.Name, &level.Specialization.FieldID)
	if err != nil {
		return nil, err
	}
	return level, nil
}

// Create inserts a level and returns its id.
func (r *LevelRepository) Create(ctx context.Context, level *models.Level) (int64, error) {
	sql, args, err := r.sb.Insert("levels").
		Columns("name", "specialization_id").
		Values(level.Name, level.SpecializationID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create level query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Str("name", level.Name).Msg("Error executing create level query")
		return 0, fmt.Errorf("error creating level: %w", err)
	}
	return id, nil
}

// GetByID retrieves a level with its specialization.
func (r *LevelRepository) GetByID(ctx context.Context, id int64) (*models.Level, error) {
	sql, args, err := r.sb.Select(levelJoinedColumns...).
		From("levels l").
		Join("specializations sp ON l.specialization_id = sp.id").
		Where(squirrel.Eq{"l.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get level query: %w", err)
	}

	level, err := scanLevelJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLevelNotFound
		}
		logger.Error().Err(err).Int64("levelID", id).Msg("Error scanning level row")
		return nil, fmt.Errorf("error getting level by id: %w", err)
	}
	return level, nil
}

// List retrieves levels with their specializations, optionally filtered by
// specialization (specializationID 0 means all) and paginated (limit 0
// means no pagination).
func (r *LevelRepository) List(ctx context.Context, specializationID int64, offset uint64, limit int) ([]*models.Level, error) {
	builder := r.sb.Select(levelJoinedColumns...).
		From("levels l").
		Join("specializations sp ON l.specialization_id = sp.id").
		OrderBy("l.id ASC")
	if specializationID > 0 {
		builder = builder.Where(squirrel.Eq{"l.specialization_id": specializationID})
	}
	if limit > 0 {
		builder = builder.Offset(offset).Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list levels query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list levels query")
		return nil, fmt.Errorf("error querying levels: %w", err)
	}
	defer rows.Close()

	levels := []*models.Level{}
	for rows.Next() {
		level, err := scanLevelJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning level row: %w", err)
		}
		levels = append(levels, level)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating level rows: %w", err)
	}
	return levels, nil
}

// Count counts levels, optionally restricted to one specialization.
func (r *LevelRepository) Count(ctx context.Context, specializationID int64) (int64, error) {
	builder := r.sb.Select("count(id)").From("levels")
	if specializationID > 0 {
		builder = builder.Where(squirrel.Eq{"specialization_id": specializationID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count levels query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting levels: %w", err)
	}
	return total, nil
}

// Update writes the merged level row back.
func (r *LevelRepository) Update(ctx context.Context, level *models.Level) error {
	sql, args, err := r.sb.Update("levels").
		SetMap(map[string]interface{}{
			"name":              level.Name,
			"specialization_id": level.SpecializationID,
		}).
		Where(squirrel.Eq{"id": level.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update level query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Int64("levelID", level.ID).Msg("Error executing update level query")
		return fmt.Errorf("error updating level: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLevelNotFound
	}
	return nil
}

// Delete removes a level.
func (r *LevelRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("levels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete level query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDependentRecords
		}
		logger.Error().Err(err).Int64("levelID", id).Msg("Error executing delete level query")
		return fmt.Errorf("error deleting level: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLevelNotFound
	}
	return nil
}
