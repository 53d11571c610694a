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

// CourseFileRepository handles course file metadata database operations
type CourseFileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseFileRepository creates a new CourseFileRepository
func NewCourseFileRepository(db *pgxpool.Pool) *CourseFileRepository {
	return &CourseFileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var courseFileJoinedColumns = []string{
	"cf.id", "cf.subject_id", "cf.teacher_id", "cf.file_name", "cf.file_path", "cf.created_at",
	"sub.id", "sub.name", "sub.level_id",
}

func scanCourseFileJoined(row pgx.Row) (*models.CourseFile, error) {
	file := &models.CourseFile{Subject: &models.Subject{}}
	err := row.Scan(
		&file.ID, &file.SubjectID, &file.TeacherID, &file.FileName, &file.FilePath, &file.CreatedAt,
		&file.Subject.ID, &file.Subject.Name, &file.Subject.LevelID,
	)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Create inserts a course file record and returns its id.
func (r *CourseFileRepository) Create(ctx context.Context, file *models.CourseFile) (int64, error) {
	sql, args, err := r.sb.Insert("course_files").
		Columns("subject_id", "teacher_id", "file_name", "file_path").
		Values(file.SubjectID, file.TeacherID, file.FileName, file.FilePath).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course file query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &file.CreatedAt); err != nil {
		if dberrors.IsForeignKeyConstraintError(err, "course_files_subject_id_fkey") {
			return 0, apperrors.NewValidationError("referenced subject does not exist")
		}
		if dberrors.IsForeignKeyConstraintError(err, "course_files_teacher_id_fkey") {
			return 0, apperrors.NewValidationError("referenced teacher does not exist")
		}
		logger.Error().Err(err).Int64("subjectID", file.SubjectID).Msg("Error executing create course file query")
		return 0, fmt.Errorf("error creating course file: %w", err)
	}
	return id, nil
}

// GetByID retrieves a course file record with its subject.
func (r *CourseFileRepository) GetByID(ctx context.Context, id int64) (*models.CourseFile, error) {
	sql, args, err := r.sb.Select(courseFileJoinedColumns...).
		From("course_files cf").
		Join("subjects sub ON cf.subject_id = sub.id").
		Where(squirrel.Eq{"cf.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course file query: %w", err)
	}

	file, err := scanCourseFileJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseFileNotFound
		}
		logger.Error().Err(err).Int64("courseFileID", id).Msg("Error scanning course file row")
		return nil, fmt.Errorf("error getting course file by id: %w", err)
	}
	return file, nil
}

// List retrieves course file records with their subjects, optionally
// filtered by subject (subjectID 0 means all) and paginated (limit 0 means
// no pagination).
func (r *CourseFileRepository) List(ctx context.Context, subjectID int64, offset uint64, limit int) ([]*models.CourseFile, error) {
	builder := r.sb.Select(courseFileJoinedColumns...).
		From("course_files cf").
		Join("subjects sub ON cf.subject_id = sub.id").
		OrderBy("cf.id ASC")
	if subjectID > 0 {
		builder = builder.Where(squirrel.Eq{"cf.subject_id": subjectID})
	}
	if limit > 0 {
		builder = builder.Offset(offset).Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list course files query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list course files query")
		return nil, fmt.Errorf("error querying course files: %w", err)
	}
	defer rows.Close()

	files := []*models.CourseFile{}
	for rows.Next() {
		file, err := scanCourseFileJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course file row: %w", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course file rows: %w", err)
	}
	return files, nil
}

// Count counts course file records, optionally restricted to one subject.
func (r *CourseFileRepository) Count(ctx context.Context, subjectID int64) (int64, error) {
	builder := r.sb.Select("count(id)").From("course_files")
	if subjectID > 0 {
		builder = builder.Where(squirrel.Eq{"subject_id": subjectID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count course files query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting course files: %w", err)
	}
	return total, nil
}

// Update writes the display name and stored path back.
func (r *CourseFileRepository) Update(ctx context.Context, file *models.CourseFile) error {
	sql, args, err := r.sb.Update("course_files").
		SetMap(map[string]interface{}{
			"file_name": file.FileName,
			"file_path": file.FilePath,
		}).
		Where(squirrel.Eq{"id": file.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course file query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseFileID", file.ID).Msg("Error executing update course file query")
		return fmt.Errorf("error updating course file: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseFileNotFound
	}
	return nil
}

// Delete removes a course file record.
func (r *CourseFileRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("course_files").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course file query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseFileID", id).Msg("Error executing delete course file query")
		return fmt.Errorf("error deleting course file: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseFileNotFound
	}
	return nil
}
