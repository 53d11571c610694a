package services

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/repositories"
	"github.com/yassine/schoolhub/internal/db"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
)

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	return fn(ctx, nil)
}

type fakeAccountStore struct {
	accounts  map[int64]*models.Account
	nextID    int64
	createErr error
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: map[int64]*models.Account{}, nextID: 1}
}

func (f *fakeAccountStore) CreateAccount(_ context.Context, _ repositories.DBTX, account *models.Account) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	stored := *account
	stored.ID = id
	f.accounts[id] = &stored
	return id, nil
}

func (f *fakeAccountStore) UpdateAccount(_ context.Context, _ repositories.DBTX, account *models.Account) error {
	if _, ok := f.accounts[account.ID]; !ok {
		return apperrors.ErrAccountNotFound
	}
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountStore) DeleteAccount(_ context.Context, _ repositories.DBTX, id int64) error {
	if _, ok := f.accounts[id]; !ok {
		return apperrors.ErrAccountNotFound
	}
	delete(f.accounts, id)
	return nil
}

type fakeTeacherStore struct {
	teachers  map[int64]*models.TeacherProfile
	assigned  map[int64]map[int64]bool
	nextID    int64
	createErr error
}

func newFakeTeacherStore() *fakeTeacherStore {
	return &fakeTeacherStore{
		teachers: map[int64]*models.TeacherProfile{},
		assigned: map[int64]map[int64]bool{},
		nextID:   1,
	}
}

func (f *fakeTeacherStore) Create(_ context.Context, _ repositories.DBTX, profile *models.TeacherProfile) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	stored := *profile
	stored.ID = id
	f.teachers[id] = &stored
	return id, nil
}

func (f *fakeTeacherStore) GetByID(_ context.Context, id int64) (*models.TeacherProfile, error) {
	teacher, ok := f.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	copied := *teacher
	if copied.Account == nil {
		copied.Account = &models.Account{ID: copied.AccountID}
	}
	return &copied, nil
}

func (f *fakeTeacherStore) List(_ context.Context, _ string, _ uint64, _ int) ([]*models.TeacherProfile, error) {
	result := []*models.TeacherProfile{}
	for _, teacher := range f.teachers {
		copied := *teacher
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeTeacherStore) Count(_ context.Context, _ string) (int64, error) {
	return int64(len(f.teachers)), nil
}

func (f *fakeTeacherStore) Update(_ context.Context, _ repositories.DBTX, profile *models.TeacherProfile) error {
	if _, ok := f.teachers[profile.ID]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	stored := *profile
	f.teachers[profile.ID] = &stored
	return nil
}

func (f *fakeTeacherStore) Delete(_ context.Context, _ repositories.DBTX, id int64) error {
	if _, ok := f.teachers[id]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	delete(f.teachers, id)
	return nil
}

func (f *fakeTeacherStore) AssignSubjects(_ context.Context, teacherID int64, subjectIDs []int64) error {
	links, ok := f.assigned[teacherID]
	if !ok {
		links = map[int64]bool{}
		f.assigned[teacherID] = links
	}
	for _, id := range subjectIDs {
		links[id] = true
	}
	return nil
}

func (f *fakeTeacherStore) GetSubjects(_ context.Context, teacherID int64) ([]models.Subject, error) {
	subjects := []models.Subject{}
	for id := range f.assigned[teacherID] {
		subjects = append(subjects, models.Subject{ID: id})
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects, nil
}

func newTeacherFixture() (*fakeTransactor, *fakeAccountStore, *fakeTeacherStore, TeacherService) {
	tx := &fakeTransactor{}
	accounts := newFakeAccountStore()
	teachers := newFakeTeacherStore()
	return tx, accounts, teachers, NewTeacherService(tx, accounts, teachers)
}

func createTeacherRequest() *dto.CreateTeacherRequest {
	return &dto.CreateTeacherRequest{
		AccountCreate: dto.AccountCreate{
			Name:     "Karim Bensaid",
			Email:    "karim@schoolhub.app",
			Password: "Secret123!",
			Gender:   "male",
			Phone:    "+212600000001",
			Address:  "5 Avenue Hassan II",
		},
		AdmissionNo: "TCH-0042",
		Status:      "permanent",
	}
}

func TestCreateTeacherWritesAccountAndProfileTogether(t *testing.T) {
	tx, accounts, teachers, svc := newTeacherFixture()

	teacher, err := svc.CreateTeacher(context.Background(), createTeacherRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, accounts.accounts, 1)
	require.Len(t, teachers.teachers, 1)
	assert.Equal(t, "karim@schoolhub.app", accounts.accounts[teacher.AccountID].Email)
	assert.Equal(t, models.RoleTeacher, accounts.accounts[teacher.AccountID].Role)
	assert.Equal(t, "TCH-0042", teacher.AdmissionNo)
}

func TestCreateTeacherAccountFailureWritesNoProfile(t *testing.T) {
	_, accounts, teachers, svc := newTeacherFixture()
	accounts.createErr = assert.AnError

	_, err := svc.CreateTeacher(context.Background(), createTeacherRequest())

	require.Error(t, err)
	assert.Empty(t, accounts.accounts)
	assert.Empty(t, teachers.teachers)
}

func TestDeleteTeacherRemovesAccount(t *testing.T) {
	_, accounts, teachers, svc := newTeacherFixture()
	accounts.accounts[8] = &models.Account{ID: 8, Role: models.RoleTeacher}
	teachers.teachers[1] = &models.TeacherProfile{ID: 1, AccountID: 8}

	require.NoError(t, svc.DeleteTeacher(context.Background(), 1))

	assert.Empty(t, teachers.teachers)
	assert.Empty(t, accounts.accounts)
}

func TestDeleteTeacherTwice(t *testing.T) {
	_, accounts, teachers, svc := newTeacherFixture()
	accounts.accounts[8] = &models.Account{ID: 8, Role: models.RoleTeacher}
	teachers.teachers[1] = &models.TeacherProfile{ID: 1, AccountID: 8}

	require.NoError(t, svc.DeleteTeacher(context.Background(), 1))

	err := svc.DeleteTeacher(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestAssignSubjectsKeepsExistingLinks(t *testing.T) {
	_, _, teachers, svc := newTeacherFixture()
	teachers.teachers[1] = &models.TeacherProfile{ID: 1, AccountID: 8}

	_, err := svc.AssignSubjects(context.Background(), 1, &dto.AssignSubjectsRequest{SubjectIDs: []int64{1, 2}})
	require.NoError(t, err)

	// Overlapping assignment adds the new link without duplicating the old.
	teacher, err := svc.AssignSubjects(context.Background(), 1, &dto.AssignSubjectsRequest{SubjectIDs: []int64{2, 3}})
	require.NoError(t, err)

	ids := []int64{}
	for _, subject := range teacher.Subjects {
		ids = append(ids, subject.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestAssignSubjectsUnknownTeacher(t *testing.T) {
	_, _, _, svc := newTeacherFixture()

	_, err := svc.AssignSubjects(context.Background(), 99, &dto.AssignSubjectsRequest{SubjectIDs: []int64{1}})

	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}
