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

// TeacherRepository handles teacher profile database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var teacherJoinedColumns = []string{
	"t.id", "t.account_id", "t.admission_no", "t.status",
	"u.id", "u.name", "u.email", "u.password", "u.role",
	"u.gender", "u.phone", "u.address", "u.date_of_birth",
	"u.created_at", "u.updated_at",
}

func scanTeacherJoined(row pgx.Row) (*models.TeacherProfile, error) {
	teacher := &models.TeacherProfile{Account: &models.Account{}}
	err := row.Scan(
		&teacher.ID, &teacher.AccountID, &teacher.AdmissionNo, &teacher.Status,
		&teacher.Account.ID, &teacher.Account.Name, &teacher.Account.Email, &teacher.Account.Password, &teacher.Account.Role,
		&teacher.Account.Gender, &teacher.Account.Phone, &teacher.Account.Address, &teacher.Account.DateOfBirth,
		&teacher.Account.CreatedAt, &teacher.Account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

// Create inserts a teacher profile row on the given executor.
func (r *TeacherRepository) Create(ctx context.Context, q DBTX, profile *models.TeacherProfile) (int64, error) {
	sql, args, err := r.sb.Insert("teachers").
		Columns("account_id", "admission_no", "status").
		Values(profile.AccountID, profile.AdmissionNo, profile.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create teacher query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_admission_no_key") {
			return 0, apperrors.ErrAdmissionNoExists
		}
		if dberrors.IsDuplicateConstraintError(err, "teachers_account_id_key") {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		logger.Error().Err(err).Int64("accountID", profile.AccountID).Msg("Error executing create teacher query")
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}

	return id, nil
}

// GetByID retrieves a teacher profile joined with its account.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.TeacherProfile, error) {
	sql, args, err := r.sb.Select(teacherJoinedColumns...).
		From("teachers t").
		Join("accounts u ON t.account_id = u.id").
		Where(squirrel.Eq{"t.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacherJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by id: %w", err)
	}

	return teacher, nil
}

// GetByAccountID retrieves the teacher profile owned by an account.
func (r *TeacherRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.TeacherProfile, error) {
	sql, args, err := r.sb.Select(teacherJoinedColumns...).
		From("teachers t").
		Join("accounts u ON t.account_id = u.id").
		Where(squirrel.Eq{"t.account_id": accountID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher by account query: %w", err)
	}

	teacher, err := scanTeacherJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error getting teacher by account id: %w", err)
	}

	return teacher, nil
}

// List retrieves teacher profiles with accounts, with optional search and
// pagination (limit 0 means no pagination).
func (r *TeacherRepository) List(ctx context.Context, search string, offset uint64, limit int) ([]*models.TeacherProfile, error) {
	builder := r.sb.Select(teacherJoinedColumns...).
		From("teachers t").
		Join("accounts u ON t.account_id = u.id").
		OrderBy("t.id ASC")

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
		return nil, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.TeacherProfile{}
	for rows.Next() {
		teacher, err := scanTeacherJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// ListBySubject retrieves the teachers a subject is assigned to.
func (r *TeacherRepository) ListBySubject(ctx context.Context, subjectID int64) ([]*models.TeacherProfile, error) {
	sql, args, err := r.sb.Select(teacherJoinedColumns...).
		From("teachers t").
		Join("accounts u ON t.account_id = u.id").
		Join("teacher_subjects ts ON ts.teacher_id = t.id").
		Where(squirrel.Eq{"ts.subject_id": subjectID}).
		OrderBy("t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list teachers by subject query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing list teachers by subject query")
		return nil, fmt.Errorf("error querying teachers by subject: %w", err)
	}
	defer rows.Close()

	teachers := []*models.TeacherProfile{}
	for rows.Next() {
		teacher, err := scanTeacherJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// Count counts teacher profiles matching the search filter.
func (r *TeacherRepository) Count(ctx context.Context, search string) (int64, error) {
	builder := r.sb.Select("count(t.id)").
		From("teachers t").
		Join("accounts u ON t.account_id = u.id")

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
		return 0, fmt.Errorf("failed to build count teachers query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return total, nil
}

// Update writes the merged teacher profile fields back.
func (r *TeacherRepository) Update(ctx context.Context, q DBTX, profile *models.TeacherProfile) error {
	sql, args, err := r.sb.Update("teachers").
		SetMap(map[string]interface{}{
			"admission_no": profile.AdmissionNo,
			"status":       profile.Status,
		}).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_admission_no_key") {
			return apperrors.ErrAdmissionNoExists
		}
		logger.Error().Err(err).Int64("teacherID", profile.ID).Msg("Error executing update teacher query")
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete removes a teacher profile row on the given executor.
func (r *TeacherRepository) Delete(ctx context.Context, q DBTX, id int64) error {
	sql, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error executing delete teacher query")
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// AssignSubjects adds teacher-subject relations for the given subject ids.
// Existing relations are left untouched, so repeated calls are idempotent.
func (r *TeacherRepository) AssignSubjects(ctx context.Context, teacherID int64, subjectIDs []int64) error {
	if len(subjectIDs) == 0 {
		return nil
	}

	builder := r.sb.Insert("teacher_subjects").
		Columns("teacher_id", "subject_id")
	for _, subjectID := range subjectIDs {
		builder = builder.Values(teacherID, subjectID)
	}

	sql, args, err := builder.
		Suffix("ON CONFLICT (teacher_id, subject_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign subjects query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("one or more subject ids do not exist")
		}
		logger.Error().Err(err).Int64("teacherID", teacherID).Msg("Error executing assign subjects query")
		return fmt.Errorf("error assigning subjects: %w", err)
	}

	return nil
}

// GetSubjects retrieves the subjects assigned to a teacher, ordered by name.
func (r *TeacherRepository) GetSubjects(ctx context.Context, teacherID int64) ([]models.Subject, error) {
	sql, args, err := r.sb.Select("s.id", "s.name", "s.level_id").
		From("teacher_subjects ts").
		Join("subjects s ON ts.subject_id = s.id").
		Where(squirrel.Eq{"ts.teacher_id": teacherID}).
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying teacher subjects: %w", err)
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.LevelID); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// IsSubjectAssigned reports whether the teacher-subject relation exists.
func (r *TeacherRepository) IsSubjectAssigned(ctx context.Context, teacherID, subjectID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("teacher_subjects").
		Where(squirrel.Eq{"teacher_id": teacherID, "subject_id": subjectID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build subject assignment query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking subject assignment: %w", err)
	}
	return exists, nil
}
