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

// GroupRepository handles group database operations
type GroupRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var groupJoinedColumns = []string{"g.id", "g.name", "g.level_id", "l.id", "l.name", "l.specialization_id"}

func scanGroupJoined(row pgx.Row) (*models.Group, error) {
	group := &models.Group{Level: &models.Level{}}
	err := row.Scan(&group.ID, &group.Name, &group.LevelID,
		&group.Level.ID, &group.Level.Name, &group.Level.SpecializationID)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// Create inserts a group and returns its id.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) (int64, error) {
	sql, args, err := r.sb.Insert("groups").
		Columns("name", "level_id").
		Values(group.Name, group.LevelID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create group query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Str("name", group.Name).Msg("Error executing create group query")
		return 0, fmt.Errorf("error creating group: %w", err)
	}
	return id, nil
}

// GetByID retrieves a group with its level.
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	sql, args, err := r.sb.Select(groupJoinedColumns...).
		From("groups g").
		Join("levels l ON g.level_id = l.id").
		Where(squirrel.Eq{"g.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get group query: %w", err)
	}

	group, err := scanGroupJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Int64("groupID", id).Msg("Error scanning group row")
		return nil, fmt.Errorf("error getting group by id: %w", err)
	}
	return group, nil
}

// List retrieves groups with their levels, optionally filtered by level
// (levelID 0 means all) and paginated (limit 0 means no pagination).
func (r *GroupRepository) List(ctx context.Context, levelID int64, offset uint64, limit int) ([]*models.Group, error) {
	builder := r.sb.Select(groupJoinedColumns...).
		From("groups g").
		Join("levels l ON g.level_id = l.id").
		OrderBy("g.id ASC")
	if levelID > 0 {
		builder = builder.Where(squirrel.Eq{"g.level_id": levelID})
	}
	if limit > 0 {
		builder = builder.Offset(offset).Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list groups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list groups query")
		return nil, fmt.Errorf("error querying groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.Group{}
	for rows.Next() {
		group, err := scanGroupJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}
	return groups, nil
}

// Count counts groups, optionally restricted to one level.
func (r *GroupRepository) Count(ctx context.Context, levelID int64) (int64, error) {
	builder := r.sb.Select("count(id)").From("groups")
	if levelID > 0 {
		builder = builder.Where(squirrel.Eq{"level_id": levelID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count groups query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting groups: %w", err)
	}
	return total, nil
}

// Update writes the merged group row back.
func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	sql, args, err := r.sb.Update("groups").
		SetMap(map[string]interface{}{
			"name":     group.Name,
			"level_id": group.LevelID,
		}).
		Where(squirrel.Eq{"id": group.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update group query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Int64("groupID", group.ID).Msg("Error executing update group query")
		return fmt.Errorf("error updating group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

// Delete removes a group.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("groups").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete group query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDependentRecords
		}
		logger.Error().Err(err).Int64("groupID", id).Msg("Error executing delete group query")
		return fmt.Errorf("error deleting group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}
	return nil
}
