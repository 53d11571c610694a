package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/dberrors"
	"github.com/yassine/schoolhub/internal/pkg/logger"
)

// StudentRepository handles student profile database operations plus the
// hierarchy roll-up counts.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// studentJoinedColumns selects the student row, its account, its group, and
// the (possibly absent) parent with the parent's account name.
var studentJoinedColumns = []string{
	"s.id", "s.account_id", "s.admission_no", "s.status", "s.group_id", "s.parent_id",
	"u.id", "u.name", "u.email", "u.password", "u.role",
	"u.gender", "u.phone", "u.address", "u.date_of_birth",
	"u.created_at", "u.updated_at",
	"g.id", "g.name", "g.level_id",
	"pp.id", "pp.account_id", "pp.admission_no", "pu.name",
}

func scanStudentJoined(row pgx.Row) (*models.StudentProfile, error) {
	student := &models.StudentProfile{
		Account: &models.Account{},
		Group:   &models.Group{},
	}
	var (
		parentID          *int64
		parentAccountID   *int64
		parentAdmissionNo *string
		parentName        *string
	)

	err := row.Scan(
		&student.ID, &student.AccountID, &student.AdmissionNo, &student.Status, &student.GroupID, &student.ParentID,
		&student.Account.ID, &student.Account.Name, &student.Account.Email, &student.Account.Password, &student.Account.Role,
		&student.Account.Gender, &student.Account.Phone, &student.Account.Address, &student.Account.DateOfBirth,
		&student.Account.CreatedAt, &student.Account.UpdatedAt,
		&student.Group.ID, &student.Group.Name, &student.Group.LevelID,
		&parentID, &parentAccountID, &parentAdmissionNo, &parentName,
	)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		student.Parent = &models.ParentProfile{
			ID:        *parentID,
			AccountID: *parentAccountID,
			Account:   &models.Account{ID: *parentAccountID},
		}
		if parentAdmissionNo != nil {
			student.Parent.AdmissionNo = *parentAdmissionNo
		}
		if parentName != nil {
			student.Parent.Account.Name = *parentName
		}
	}

	return student, nil
}

func (r *StudentRepository) joinedBuilder() squirrel.SelectBuilder {
	return r.sb.Select(studentJoinedColumns...).
		From("students s").
		Join("accounts u ON s.account_id = u.id").
		Join("groups g ON s.group_id = g.id").
		LeftJoin("parents pp ON s.parent_id = pp.id").
		LeftJoin("accounts pu ON pp.account_id = pu.id")
}

// Create inserts a student profile row on the given executor.
func (r *StudentRepository) Create(ctx context.Context, q DBTX, profile *models.StudentProfile) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("account_id", "admission_no", "status", "group_id", "parent_id").
		Values(profile.AccountID, profile.AdmissionNo, profile.Status, profile.GroupID, profile.ParentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_admission_no_key") {
			return 0, apperrors.ErrAdmissionNoExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_account_id_key") {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		if dberrors.IsForeignKeyConstraintError(err, "students_group_id_fkey") {
			return 0, apperrors.ErrStudentGroupNotFound
		}
		if dberrors.IsForeignKeyConstraintError(err, "students_parent_id_fkey") {
			return 0, apperrors.ErrStudentParentNotFound
		}
		logger.Error().Err(err).Int64("accountID", profile.AccountID).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student profile with account, group and parent.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	sql, args, err := r.joinedBuilder().
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudentJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by id: %w", err)
	}

	return student, nil
}

func withStudentSearch(builder squirrel.SelectBuilder, search string) squirrel.SelectBuilder {
	if search == "" {
		return builder
	}
	like := "%" + search + "%"
	return builder.Where(squirrel.Or{
		squirrel.ILike{"u.name": like},
		squirrel.ILike{"u.email": like},
		squirrel.ILike{"u.phone": like},
		squirrel.ILike{"pu.name": like},
	})
}

// withStudentFilter applies the free-text search and the hierarchy ancestor
// filter. The builder must already join groups as g. Ancestors above the
// level join the rest of the chain on demand.
func withStudentFilter(builder squirrel.SelectBuilder, filter *dto.StudentFilterRequest) squirrel.SelectBuilder {
	if filter == nil {
		return builder
	}
	builder = withStudentSearch(builder, filter.Search)
	switch {
	case filter.GroupID != nil:
		return builder.Where(squirrel.Eq{"s.group_id": *filter.GroupID})
	case filter.LevelID != nil:
		return builder.Where(squirrel.Eq{"g.level_id": *filter.LevelID})
	case filter.SpecializationID != nil:
		return builder.Join("levels l ON g.level_id = l.id").
			Where(squirrel.Eq{"l.specialization_id": *filter.SpecializationID})
	case filter.FieldID != nil:
		return builder.Join("levels l ON g.level_id = l.id").
			Join("specializations sp ON l.specialization_id = sp.id").
			Where(squirrel.Eq{"sp.field_id": *filter.FieldID})
	case filter.CycleID != nil:
		return builder.Join("levels l ON g.level_id = l.id").
			Join("specializations sp ON l.specialization_id = sp.id").
			Join("fields f ON sp.field_id = f.id").
			Where(squirrel.Eq{"f.cycle_id": *filter.CycleID})
	}
	return builder
}

// List retrieves student profiles with relations, optionally narrowed by
// the filter's free-text search and hierarchy ancestor, optionally
// paginated (limit 0 means no pagination).
func (r *StudentRepository) List(ctx context.Context, filter *dto.StudentFilterRequest, offset uint64, limit int) ([]*models.StudentProfile, error) {
	builder := withStudentFilter(r.joinedBuilder(), filter).OrderBy("s.id ASC")
	if limit > 0 {
		builder = builder.Offset(offset).Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.StudentProfile{}
	for rows.Next() {
		student, err := scanStudentJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Count counts student profiles matching the filter.
func (r *StudentRepository) Count(ctx context.Context, filter *dto.StudentFilterRequest) (int64, error) {
	builder := withStudentFilter(
		r.sb.Select("count(s.id)").
			From("students s").
			Join("accounts u ON s.account_id = u.id").
			Join("groups g ON s.group_id = g.id").
			LeftJoin("parents pp ON s.parent_id = pp.id").
			LeftJoin("accounts pu ON pp.account_id = pu.id"),
		filter,
	)

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return total, nil
}

// Update writes the merged student profile fields back.
func (r *StudentRepository) Update(ctx context.Context, q DBTX, profile *models.StudentProfile) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"admission_no": profile.AdmissionNo,
			"status":       profile.Status,
			"group_id":     profile.GroupID,
			"parent_id":    profile.ParentID,
		}).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_admission_no_key") {
			return apperrors.ErrAdmissionNoExists
		}
		if dberrors.IsForeignKeyConstraintError(err, "students_group_id_fkey") {
			return apperrors.ErrStudentGroupNotFound
		}
		if dberrors.IsForeignKeyConstraintError(err, "students_parent_id_fkey") {
			return apperrors.ErrStudentParentNotFound
		}
		logger.Error().Err(err).Int64("studentID", profile.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student profile row on the given executor.
func (r *StudentRepository) Delete(ctx context.Context, q DBTX, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// hierarchyJoins chains students up to cycles for the roll-up queries.
func (r *StudentRepository) hierarchyJoins(builder squirrel.SelectBuilder) squirrel.SelectBuilder {
	return builder.
		From("students s").
		Join("groups g ON s.group_id = g.id").
		Join("levels l ON g.level_id = l.id").
		Join("specializations sp ON l.specialization_id = sp.id").
		Join("fields f ON sp.field_id = f.id").
		Join("cycles c ON f.cycle_id = c.id")
}

// CycleFieldReportRow is one (cycle, field) head-count of the report query.
type CycleFieldReportRow struct {
	CycleID      int64
	CycleName    string
	FieldName    string
	StudentCount int64
}

// CountByCycleAndField counts students grouped by (cycle, field) across the
// whole hierarchy, ordered by cycle id ascending.
func (r *StudentRepository) CountByCycleAndField(ctx context.Context) ([]CycleFieldReportRow, error) {
	sql, args, err := r.hierarchyJoins(
		r.sb.Select("c.id", "c.name", "f.name", "count(s.id)"),
	).
		GroupBy("c.id", "c.name", "f.name").
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build cycle/field report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing cycle/field report query")
		return nil, fmt.Errorf("error querying cycle/field report: %w", err)
	}
	defer rows.Close()

	result := []CycleFieldReportRow{}
	for rows.Next() {
		var row CycleFieldReportRow
		if err := rows.Scan(&row.CycleID, &row.CycleName, &row.FieldName, &row.StudentCount); err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return result, nil
}

// CountByCycle counts the students whose group chain reaches the cycle.
func (r *StudentRepository) CountByCycle(ctx context.Context, cycleID int64) (int64, error) {
	return r.countByAncestor(ctx, squirrel.Eq{"c.id": cycleID})
}

// CountByField counts the students whose group chain reaches the field.
func (r *StudentRepository) CountByField(ctx context.Context, fieldID int64) (int64, error) {
	return r.countByAncestor(ctx, squirrel.Eq{"f.id": fieldID})
}

// CountBySpecialization counts the students whose group chain reaches the
// specialization.
func (r *StudentRepository) CountBySpecialization(ctx context.Context, specializationID int64) (int64, error) {
	return r.countByAncestor(ctx, squirrel.Eq{"sp.id": specializationID})
}

func (r *StudentRepository) countByAncestor(ctx context.Context, cond squirrel.Eq) (int64, error) {
	sql, args, err := r.hierarchyJoins(r.sb.Select("count(s.id)")).
		Where(cond).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build hierarchy count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students by ancestor: %w", err)
	}
	return total, nil
}

// CountAll counts every student profile.
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("count(id)").From("students").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count all students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return total, nil
}
