package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassine/schoolhub/internal/pkg/apperrors"
)

// fakeExecutor satisfies DBTX, recording the statement and replaying a
// canned Exec result.
type fakeExecutor struct {
	execTag pgconn.CommandTag
	execErr error
	gotSQL  string
	gotArgs []any
}

func (f *fakeExecutor) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.gotSQL = sql
	f.gotArgs = args
	return f.execTag, f.execErr
}

func (f *fakeExecutor) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (f *fakeExecutor) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

type errRow struct{}

func (errRow) Scan(...any) error { return errors.New("unexpected QueryRow") }

func newCycleRepoOn(db DBTX) *CycleRepository {
	return &CycleRepository{db: db, sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

func TestCycleDeleteWithDependentsReportsDependentRecords(t *testing.T) {
	fake := &fakeExecutor{execErr: &pgconn.PgError{Code: "23503", ConstraintName: "fields_cycle_id_fkey"}}
	repo := newCycleRepoOn(fake)

	err := repo.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, apperrors.ErrDependentRecords)
	assert.Contains(t, fake.gotSQL, "DELETE FROM cycles")
	assert.Equal(t, []any{int64(4)}, fake.gotArgs)
}

func TestCycleDeleteMissingRow(t *testing.T) {
	fake := &fakeExecutor{execTag: pgconn.NewCommandTag("DELETE 0")}
	repo := newCycleRepoOn(fake)

	err := repo.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, apperrors.ErrCycleNotFound)
}

func TestCycleDelete(t *testing.T) {
	fake := &fakeExecutor{execTag: pgconn.NewCommandTag("DELETE 1")}
	repo := newCycleRepoOn(fake)

	require.NoError(t, repo.Delete(context.Background(), 4))
}

func TestGroupDeleteWithDependentsReportsDependentRecords(t *testing.T) {
	fake := &fakeExecutor{execErr: &pgconn.PgError{Code: "23503", ConstraintName: "students_group_id_fkey"}}
	repo := &GroupRepository{db: fake, sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}

	err := repo.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrDependentRecords)
}
