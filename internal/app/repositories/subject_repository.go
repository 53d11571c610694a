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

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var subjectJoinedColumns = []string{"sub.id", "sub.name", "sub.level_id", "l.id", "l.name", "l.specialization_id"}

func scanSubjectJoined(row pgx.Row) (*models.Subject, error) {
	subject := &models.Subject{Level: &models.Level{}}
	err := row.Scan(&subject.ID, &subject.Name, &subject.LevelID,
		&subject.Level.ID, &subject.Level.Name, &subject.Level.SpecializationID)
	if err != nil {
		return nil, err
	}
	return subject, nil
}

// Create inserts a subject and returns its id.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (int64, error) {
	sql, args, err := r.sb.Insert("subjects").
		Columns("name", "level_id").
		Values(subject.Name, subject.LevelID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create subject query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_name_key") {
			return 0, apperrors.ErrSubjectNameExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Str("name", subject.Name).Msg("Error executing create subject query")
		return 0, fmt.Errorf("error creating subject: %w", err)
	}
	return id, nil
}

// GetByID retrieves a subject with its level.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := r.sb.Select(subjectJoinedColumns...).
		From("subjects sub").
		Join("levels l ON sub.level_id = l.id").
		Where(squirrel.Eq{"sub.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject, err := scanSubjectJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject by id: %w", err)
	}
	return subject, nil
}

// List retrieves subjects with their levels, optionally filtered by level
// (levelID 0 means all) and paginated (limit 0 means no pagination).
func (r *SubjectRepository) List(ctx context.Context, levelID int64, offset uint64, limit int) ([]*models.Subject, error) {
	builder := r.sb.Select(subjectJoinedColumns...).
		From("subjects sub").
		Join("levels l ON sub.level_id = l.id").
		OrderBy("sub.id ASC")
	if levelID > 0 {
		builder = builder.Where(squirrel.Eq{"sub.level_id": levelID})
	}
	if limit > 0 {
		builder = builder.Offset(offset).Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list subjects query")
		return nil, fmt.Errorf("error querying subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject, err := scanSubjectJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}
	return subjects, nil
}

// Count counts subjects, optionally restricted to one level.
func (r *SubjectRepository) Count(ctx context.Context, levelID int64) (int64, error) {
	builder := r.sb.Select("count(id)").From("subjects")
	if levelID > 0 {
		builder = builder.Where(squirrel.Eq{"level_id": levelID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count subjects query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return total, nil
}

// Exists reports whether a subject row exists.
func (r *SubjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build subject exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}
	return exists, nil
}

// Update writes the merged subject row back.
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Update("subjects").
		SetMap(map[string]interface{}{
			"name":     subject.Name,
			"level_id": subject.LevelID,
		}).
		Where(squirrel.Eq{"id": subject.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_name_key") {
			return apperrors.ErrSubjectNameExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrParentRefNotFound
		}
		logger.Error().Err(err).Int64("subjectID", subject.ID).Msg("Error executing update subject query")
		return fmt.Errorf("error updating subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// Delete removes a subject.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("subjects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDependentRecords
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error executing delete subject query")
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}
