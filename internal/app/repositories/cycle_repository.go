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

// CycleRepository handles cycle database operations
type CycleRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCycleRepository creates a new CycleRepository
func NewCycleRepository(db *pgxpool.Pool) *CycleRepository {
	return &CycleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a cycle and returns its id.
func (r *CycleRepository) Create(ctx context.Context, cycle *models.Cycle) (int64, error) {
	sql, args, err := r.sb.Insert("cycles").
		Columns("name").
		Values(cycle.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create cycle query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", cycle.Name).Msg("Error executing create cycle query")
		return 0, fmt.Errorf("error creating cycle: %w", err)
	}
	return id, nil
}

// GetByID retrieves a single cycle.
func (r *CycleRepository) GetByID(ctx context.Context, id int64) (*models.Cycle, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("cycles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get cycle query: %w", err)
	}

	cycle := &models.Cycle{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&cycle.ID, &cycle.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCycleNotFound
		}
		logger.Error().Err(err).Int64("cycleID", id).Msg("Error scanning cycle row")
		return nil, fmt.Errorf("error getting cycle by id: %w", err)
	}
	return cycle, nil
}

// List retrieves all cycles ordered by id.
func (r *CycleRepository) List(ctx context.Context) ([]*models.Cycle, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("cycles").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list cycles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list cycles query")
		return nil, fmt.Errorf("error querying cycles: %w", err)
	}
	defer rows.Close()

	cycles := []*models.Cycle{}
	for rows.Next() {
		cycle := &models.Cycle{}
		if err := rows.Scan(&cycle.ID, &cycle.Name); err != nil {
			return nil, fmt.Errorf("error scanning cycle row: %w", err)
		}
		cycles = append(cycles, cycle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cycle rows: %w", err)
	}
	return cycles, nil
}

// Update renames a cycle.
func (r *CycleRepository) Update(ctx context.Context, cycle *models.Cycle) error {
	sql, args, err := r.sb.Update("cycles").
		Set("name", cycle.Name).
		Where(squirrel.Eq{"id": cycle.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update cycle query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("cycleID", cycle.ID).Msg("Error executing update cycle query")
		return fmt.Errorf("error updating cycle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCycleNotFound
	}
	return nil
}

// Delete removes a cycle.
func (r *CycleRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("cycles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete cycle query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDependentRecords
		}
		logger.Error().Err(err).Int64("cycleID", id).Msg("Error executing delete cycle query")
		return fmt.Errorf("error deleting cycle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCycleNotFound
	}
	return nil
}
