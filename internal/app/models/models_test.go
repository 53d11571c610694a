package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleTeacher, RoleParent, RoleStudent} {
		assert.True(t, role.Valid(), "role %q should be valid", role)
	}
	assert.False(t, Role("director").Valid())
	assert.False(t, Role("").Valid())
}

func TestStudentStatusValid(t *testing.T) {
	for _, status := range []StudentStatus{StudentActive, StudentInactive, StudentGraduated, StudentDroppedOut} {
		assert.True(t, status.Valid(), "status %q should be valid", status)
	}
	assert.False(t, StudentStatus("expelled").Valid())
}

func TestTeacherStatusValid(t *testing.T) {
	for _, status := range []TeacherStatus{TeacherPermanent, TeacherTemporary, TeacherContractual} {
		assert.True(t, status.Valid(), "status %q should be valid", status)
	}
	assert.False(t, TeacherStatus("retired").Valid())
}
