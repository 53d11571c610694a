package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/filestorage"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
	"github.com/yassine/schoolhub/internal/pkg/logger"
)

const courseFileSubPath = "course_files"

// CourseFileService defines the interface for course file operations
type CourseFileService interface {
	AddCourseFile(ctx context.Context, accountID, subjectID int64, fileName string, file *multipart.FileHeader) (*models.CourseFile, error)
	GetCourseFileByID(ctx context.Context, id int64) (*models.CourseFile, error)
	ListCourseFiles(ctx context.Context, subjectID int64, page, size int) ([]*models.CourseFile, int64, error)
	UpdateCourseFile(ctx context.Context, id int64, req *dto.UpdateCourseFileRequest, file *multipart.FileHeader) (*models.CourseFile, error)
	DeleteCourseFile(ctx context.Context, id int64) error
	ResolveDownload(ctx context.Context, id int64) (fullPath, fileName string, err error)
}

// courseFileStore is the metadata persistence the service builds on.
type courseFileStore interface {
	Create(ctx context.Context, file *models.CourseFile) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.CourseFile, error)
	List(ctx context.Context, subjectID int64, offset uint64, limit int) ([]*models.CourseFile, error)
	Count(ctx context.Context, subjectID int64) (int64, error)
	Update(ctx context.Context, file *models.CourseFile) error
	Delete(ctx context.Context, id int64) error
}

// teacherDirectory resolves the caller's teacher profile and its subject
// assignments for the ownership check.
type teacherDirectory interface {
	GetByAccountID(ctx context.Context, accountID int64) (*models.TeacherProfile, error)
	IsSubjectAssigned(ctx context.Context, teacherID, subjectID int64) (bool, error)
}

// courseFileServiceImpl implements the CourseFileService interface
type courseFileServiceImpl struct {
	courseFileRepo courseFileStore
	teacherRepo    teacherDirectory
	storage        filestorage.FileStorage
}

// NewCourseFileService creates a new course file service instance
func NewCourseFileService(courseFileRepo courseFileStore, teacherRepo teacherDirectory, storage filestorage.FileStorage) CourseFileService {
	return &courseFileServiceImpl{
		courseFileRepo: courseFileRepo,
		teacherRepo:    teacherRepo,
		storage:        storage,
	}
}

// AddCourseFile stores the blob and records its metadata. The calling
// account must own a teacher profile that the subject is assigned to.
func (s *courseFileServiceImpl) AddCourseFile(ctx context.Context, accountID, subjectID int64, fileName string, file *multipart.FileHeader) (*models.CourseFile, error) {
	teacher, err := s.teacherRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		// Callers without a teacher profile are refused, not told the
		// profile lookup missed.
		if errors.Is(err, apperrors.ErrTeacherNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}

	assigned, err := s.teacherRepo.IsSubjectAssigned(ctx, teacher.ID, subjectID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperrors.ErrSubjectNotAssigned
	}

	storedPath, err := s.storage.SaveFile(file, courseFileSubPath)
	if err != nil {
		return nil, fmt.Errorf("error storing course file: %w", err)
	}

	courseFile := &models.CourseFile{
		SubjectID: subjectID,
		TeacherID: teacher.ID,
		FileName:  fileName,
		FilePath:  storedPath,
	}

	id, err := s.courseFileRepo.Create(ctx, courseFile)
	if err != nil {
		// The metadata write failed, drop the orphaned blob.
		if delErr := s.storage.DeleteFile(storedPath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", storedPath).Msg("Failed to remove stored file after create failure")
		}
		return nil, err
	}

	return s.courseFileRepo.GetByID(ctx, id)
}

// GetCourseFileByID retrieves a course file record with its subject.
func (s *courseFileServiceImpl) GetCourseFileByID(ctx context.Context, id int64) (*models.CourseFile, error) {
	return s.courseFileRepo.GetByID(ctx, id)
}

// ListCourseFiles retrieves course file records, optionally restricted to
// one subject. A page of 0 disables pagination. The second return value is
// the matching total.
func (s *courseFileServiceImpl) ListCourseFiles(ctx context.Context, subjectID int64, page, size int) ([]*models.CourseFile, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	files, err := s.courseFileRepo.List(ctx, subjectID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.courseFileRepo.Count(ctx, subjectID)
	if err != nil {
		return nil, 0, err
	}

	return files, total, nil
}

// UpdateCourseFile renames the record and, when a new blob is provided,
// swaps the stored file for it.
func (s *courseFileServiceImpl) UpdateCourseFile(ctx context.Context, id int64, req *dto.UpdateCourseFileRequest, file *multipart.FileHeader) (*models.CourseFile, error) {
	courseFile, err := s.courseFileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPath := courseFile.FilePath
	courseFile.FileName = req.FileName

	if file != nil {
		storedPath, err := s.storage.SaveFile(file, courseFileSubPath)
		if err != nil {
			return nil, fmt.Errorf("error storing course file: %w", err)
		}
		courseFile.FilePath = storedPath
	}

	if err := s.courseFileRepo.Update(ctx, courseFile); err != nil {
		if file != nil {
			if delErr := s.storage.DeleteFile(courseFile.FilePath); delErr != nil {
				logger.Warn().Err(delErr).Str("path", courseFile.FilePath).Msg("Failed to remove stored file after update failure")
			}
		}
		return nil, err
	}

	if file != nil && oldPath != courseFile.FilePath {
		if err := s.storage.DeleteFile(oldPath); err != nil {
			logger.Warn().Err(err).Str("path", oldPath).Msg("Failed to remove replaced course file")
		}
	}

	return s.courseFileRepo.GetByID(ctx, id)
}

// DeleteCourseFile removes the record and the stored file.
func (s *courseFileServiceImpl) DeleteCourseFile(ctx context.Context, id int64) error {
	courseFile, err := s.courseFileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.courseFileRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(courseFile.FilePath); err != nil {
		logger.Warn().Err(err).Str("path", courseFile.FilePath).Msg("Failed to remove stored course file")
	}

	return nil
}

// ResolveDownload returns the on-disk path and the display name for a
// stored course file.
func (s *courseFileServiceImpl) ResolveDownload(ctx context.Context, id int64) (string, string, error) {
	courseFile, err := s.courseFileRepo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	if !s.storage.Exists(courseFile.FilePath) {
		return "", "", apperrors.NewNotFoundError("stored file is missing")
	}

	fullPath := s.storage.FullPath(courseFile.FilePath)
	if fullPath == "" {
		return "", "", apperrors.NewNotFoundError("stored file is missing")
	}

	return fullPath, courseFile.FileName, nil
}
