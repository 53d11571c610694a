package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
)

type fakeCourseFileStore struct {
	files     map[int64]*models.CourseFile
	nextID    int64
	createErr error
}

func newFakeCourseFileStore() *fakeCourseFileStore {
	return &fakeCourseFileStore{files: map[int64]*models.CourseFile{}, nextID: 1}
}

func (f *fakeCourseFileStore) Create(_ context.Context, file *models.CourseFile) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	stored := *file
	stored.ID = id
	f.files[id] = &stored
	return id, nil
}

func (f *fakeCourseFileStore) GetByID(_ context.Context, id int64) (*models.CourseFile, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, apperrors.ErrCourseFileNotFound
	}
	copied := *file
	return &copied, nil
}

func (f *fakeCourseFileStore) List(_ context.Context, subjectID int64, _ uint64, _ int) ([]*models.CourseFile, error) {
	result := []*models.CourseFile{}
	for _, file := range f.files {
		if subjectID == 0 || file.SubjectID == subjectID {
			copied := *file
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeCourseFileStore) Count(_ context.Context, subjectID int64) (int64, error) {
	files, _ := f.List(context.Background(), subjectID, 0, 0)
	return int64(len(files)), nil
}

func (f *fakeCourseFileStore) Update(_ context.Context, file *models.CourseFile) error {
	if _, ok := f.files[file.ID]; !ok {
		return apperrors.ErrCourseFileNotFound
	}
	stored := *file
	f.files[file.ID] = &stored
	return nil
}

func (f *fakeCourseFileStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.files[id]; !ok {
		return apperrors.ErrCourseFileNotFound
	}
	delete(f.files, id)
	return nil
}

type fakeTeacherDirectory struct {
	teachersByAccount map[int64]*models.TeacherProfile
	assigned          map[int64]map[int64]bool
}

func (f *fakeTeacherDirectory) GetByAccountID(_ context.Context, accountID int64) (*models.TeacherProfile, error) {
	teacher, ok := f.teachersByAccount[accountID]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return teacher, nil
}

func (f *fakeTeacherDirectory) IsSubjectAssigned(_ context.Context, teacherID, subjectID int64) (bool, error) {
	return f.assigned[teacherID][subjectID], nil
}

type fakeBlobStorage struct {
	saved   []string
	deleted []string
	next    int
}

func (f *fakeBlobStorage) SaveFile(_ *multipart.FileHeader, subPath string) (string, error) {
	f.next++
	path := fmt.Sprintf("%s/blob-%d", subPath, f.next)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeBlobStorage) DeleteFile(relPath string) error {
	f.deleted = append(f.deleted, relPath)
	return nil
}

func (f *fakeBlobStorage) FullPath(relPath string) string { return "/store/" + relPath }

func (f *fakeBlobStorage) Exists(string) bool { return true }

func newCourseFileFixture() (*fakeCourseFileStore, *fakeTeacherDirectory, *fakeBlobStorage, CourseFileService) {
	store := newFakeCourseFileStore()
	teachers := &fakeTeacherDirectory{
		teachersByAccount: map[int64]*models.TeacherProfile{
			10: {ID: 3, AccountID: 10},
		},
		assigned: map[int64]map[int64]bool{
			3: {7: true},
		},
	}
	storage := &fakeBlobStorage{}
	return store, teachers, storage, NewCourseFileService(store, teachers, storage)
}

func TestAddCourseFile(t *testing.T) {
	store, _, storage, svc := newCourseFileFixture()

	file, err := svc.AddCourseFile(context.Background(), 10, 7, "Algebra notes", &multipart.FileHeader{Filename: "notes.pdf"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), file.SubjectID)
	assert.Equal(t, int64(3), file.TeacherID)
	assert.Equal(t, "Algebra notes", file.FileName)
	assert.Equal(t, storage.saved[0], file.FilePath)
	assert.Len(t, store.files, 1)
}

func TestAddCourseFileWithoutTeacherProfile(t *testing.T) {
	_, _, storage, svc := newCourseFileFixture()

	// Account 99 has no teacher profile behind it.
	_, err := svc.AddCourseFile(context.Background(), 99, 7, "Notes", &multipart.FileHeader{Filename: "notes.pdf"})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, storage.saved)
}

func TestAddCourseFileUnassignedSubject(t *testing.T) {
	_, _, storage, svc := newCourseFileFixture()

	_, err := svc.AddCourseFile(context.Background(), 10, 8, "Notes", &multipart.FileHeader{Filename: "notes.pdf"})

	assert.ErrorIs(t, err, apperrors.ErrSubjectNotAssigned)
	assert.Empty(t, storage.saved)
}

func TestAddCourseFileDropsBlobWhenCreateFails(t *testing.T) {
	store, _, storage, svc := newCourseFileFixture()
	store.createErr = assert.AnError

	_, err := svc.AddCourseFile(context.Background(), 10, 7, "Notes", &multipart.FileHeader{Filename: "notes.pdf"})

	require.Error(t, err)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, storage.saved, storage.deleted)
}

func TestUpdateCourseFileSwapsBlob(t *testing.T) {
	store, _, storage, svc := newCourseFileFixture()
	store.files[1] = &models.CourseFile{ID: 1, SubjectID: 7, TeacherID: 3, FileName: "Old", FilePath: "course_files/old"}

	updated, err := svc.UpdateCourseFile(context.Background(), 1, &dto.UpdateCourseFileRequest{FileName: "New"}, &multipart.FileHeader{Filename: "v2.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.FileName)
	assert.Equal(t, storage.saved[0], updated.FilePath)
	assert.Contains(t, storage.deleted, "course_files/old")
}

func TestUpdateCourseFileRenameOnly(t *testing.T) {
	store, _, storage, svc := newCourseFileFixture()
	store.files[1] = &models.CourseFile{ID: 1, SubjectID: 7, TeacherID: 3, FileName: "Old", FilePath: "course_files/old"}

	updated, err := svc.UpdateCourseFile(context.Background(), 1, &dto.UpdateCourseFileRequest{FileName: "Renamed"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.FileName)
	assert.Equal(t, "course_files/old", updated.FilePath)
	assert.Empty(t, storage.deleted)
}

func TestDeleteCourseFileTwice(t *testing.T) {
	store, _, storage, svc := newCourseFileFixture()
	store.files[1] = &models.CourseFile{ID: 1, SubjectID: 7, TeacherID: 3, FileName: "Old", FilePath: "course_files/old"}

	require.NoError(t, svc.DeleteCourseFile(context.Background(), 1))
	assert.Contains(t, storage.deleted, "course_files/old")

	err := svc.DeleteCourseFile(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrCourseFileNotFound)
}
