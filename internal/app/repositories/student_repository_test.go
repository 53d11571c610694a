package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassine/schoolhub/internal/app/models/dto"
)

func ptr(v int64) *int64 { return &v }

func studentCountBase() squirrel.SelectBuilder {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("count(s.id)").
		From("students s").
		Join("groups g ON s.group_id = g.id")
}

func TestWithStudentFilterAncestors(t *testing.T) {
	tests := []struct {
		name     string
		filter   *dto.StudentFilterRequest
		wantSQL  []string
		wantArgs []any
	}{
		{
			name:     "group",
			filter:   &dto.StudentFilterRequest{GroupID: ptr(4)},
			wantSQL:  []string{"s.group_id = $1"},
			wantArgs: []any{int64(4)},
		},
		{
			name:     "level",
			filter:   &dto.StudentFilterRequest{LevelID: ptr(3)},
			wantSQL:  []string{"g.level_id = $1"},
			wantArgs: []any{int64(3)},
		},
		{
			name:     "specialization",
			filter:   &dto.StudentFilterRequest{SpecializationID: ptr(2)},
			wantSQL:  []string{"JOIN levels l ON g.level_id = l.id", "l.specialization_id = $1"},
			wantArgs: []any{int64(2)},
		},
		{
			name:     "field",
			filter:   &dto.StudentFilterRequest{FieldID: ptr(6)},
			wantSQL:  []string{"JOIN specializations sp ON l.specialization_id = sp.id", "sp.field_id = $1"},
			wantArgs: []any{int64(6)},
		},
		{
			name:     "cycle",
			filter:   &dto.StudentFilterRequest{CycleID: ptr(1)},
			wantSQL:  []string{"JOIN fields f ON sp.field_id = f.id", "f.cycle_id = $1"},
			wantArgs: []any{int64(1)},
		},
		{
			name:     "most specific ancestor wins",
			filter:   &dto.StudentFilterRequest{CycleID: ptr(1), GroupID: ptr(4)},
			wantSQL:  []string{"s.group_id = $1"},
			wantArgs: []any{int64(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := withStudentFilter(studentCountBase(), tt.filter).ToSql()
			require.NoError(t, err)
			for _, fragment := range tt.wantSQL {
				assert.Contains(t, sql, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestWithStudentFilterEmpty(t *testing.T) {
	sql, args, err := withStudentFilter(studentCountBase(), &dto.StudentFilterRequest{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestWithStudentFilterSearchAndAncestor(t *testing.T) {
	filter := &dto.StudentFilterRequest{Search: "amina", LevelID: ptr(3)}

	sql, args, err := withStudentFilter(studentCountBase(), filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "u.name ILIKE")
	assert.Contains(t, sql, "g.level_id")
	assert.Len(t, args, 5)
}
