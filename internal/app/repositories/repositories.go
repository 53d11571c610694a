package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
// Repository methods that take part in multi-step writes accept it so the
// service layer can run them inside one transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository        *AccountRepository
	AdminRepository          *AdminRepository
	TeacherRepository        *TeacherRepository
	ParentRepository         *ParentRepository
	StudentRepository        *StudentRepository
	CycleRepository          *CycleRepository
	FieldRepository          *FieldRepository
	SpecializationRepository *SpecializationRepository
	LevelRepository          *LevelRepository
	GroupRepository          *GroupRepository
	SubjectRepository        *SubjectRepository
	CourseFileRepository     *CourseFileRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:        NewAccountRepository(db),
		AdminRepository:          NewAdminRepository(db),
		TeacherRepository:        NewTeacherRepository(db),
		ParentRepository:         NewParentRepository(db),
		StudentRepository:        NewStudentRepository(db),
		CycleRepository:          NewCycleRepository(db),
		FieldRepository:          NewFieldRepository(db),
		SpecializationRepository: NewSpecializationRepository(db),
		LevelRepository:          NewLevelRepository(db),
		GroupRepository:          NewGroupRepository(db),
		SubjectRepository:        NewSubjectRepository(db),
		CourseFileRepository:     NewCourseFileRepository(db),
	}
}
