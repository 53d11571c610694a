package services

import (
	"context"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/repositories"
)

// ReportService defines the interface for the student head-count reports
type ReportService interface {
	CountStudentsByCycleAndField(ctx context.Context) ([]dto.CycleFieldCount, error)
	CountStudentsByCycle(ctx context.Context, cycleID int64) (int64, error)
	CountStudentsByField(ctx context.Context, fieldID int64) (int64, error)
	CountStudentsBySpecialization(ctx context.Context, specializationID int64) (int64, error)
	CountAllStudents(ctx context.Context) (int64, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	studentRepo        *repositories.StudentRepository
	cycleRepo          *repositories.CycleRepository
	fieldRepo          *repositories.FieldRepository
	specializationRepo *repositories.SpecializationRepository
}

// NewReportService creates a new report service instance
func NewReportService(
	studentRepo *repositories.StudentRepository,
	cycleRepo *repositories.CycleRepository,
	fieldRepo *repositories.FieldRepository,
	specializationRepo *repositories.SpecializationRepository,
) ReportService {
	return &reportServiceImpl{
		studentRepo:        studentRepo,
		cycleRepo:          cycleRepo,
		fieldRepo:          fieldRepo,
		specializationRepo: specializationRepo,
	}
}

// CountStudentsByCycleAndField groups student head-counts by cycle and
// field. Cycles whose fields hold no students are absent from the result.
func (s *reportServiceImpl) CountStudentsByCycleAndField(ctx context.Context) ([]dto.CycleFieldCount, error) {
	rows, err := s.studentRepo.CountByCycleAndField(ctx)
	if err != nil {
		return nil, err
	}
	return buildCycleFieldReport(rows), nil
}

// buildCycleFieldReport folds the flat (cycle, field, count) rows into one
// entry per cycle. Rows arrive ordered by cycle id.
func buildCycleFieldReport(rows []repositories.CycleFieldReportRow) []dto.CycleFieldCount {
	report := []dto.CycleFieldCount{}
	for _, row := range rows {
		if len(report) == 0 || report[len(report)-1].CycleID != row.CycleID {
			report = append(report, dto.CycleFieldCount{
				CycleID:   row.CycleID,
				CycleName: row.CycleName,
				Fields:    []dto.FieldCount{},
			})
		}
		last := &report[len(report)-1]
		last.Fields = append(last.Fields, dto.FieldCount{
			FieldName:    row.FieldName,
			StudentCount: row.StudentCount,
		})
	}
	return report
}

// CountStudentsByCycle counts the students enrolled under a cycle. An
// unknown cycle id is a not-found error.
func (s *reportServiceImpl) CountStudentsByCycle(ctx context.Context, cycleID int64) (int64, error) {
	if _, err := s.cycleRepo.GetByID(ctx, cycleID); err != nil {
		return 0, err
	}
	return s.studentRepo.CountByCycle(ctx, cycleID)
}

// CountStudentsByField counts the students enrolled under a field. An
// unknown field id is a not-found error.
func (s *reportServiceImpl) CountStudentsByField(ctx context.Context, fieldID int64) (int64, error) {
	if _, err := s.fieldRepo.GetByID(ctx, fieldID); err != nil {
		return 0, err
	}
	return s.studentRepo.CountByField(ctx, fieldID)
}

// CountStudentsBySpecialization counts the students enrolled under a
// specialization. An unknown specialization id is a not-found error.
func (s *reportServiceImpl) CountStudentsBySpecialization(ctx context.Context, specializationID int64) (int64, error) {
	if _, err := s.specializationRepo.GetByID(ctx, specializationID); err != nil {
		return 0, err
	}
	return s.studentRepo.CountBySpecialization(ctx, specializationID)
}

// CountAllStudents counts every student profile.
func (s *reportServiceImpl) CountAllStudents(ctx context.Context) (int64, error) {
	return s.studentRepo.CountAll(ctx)
}
