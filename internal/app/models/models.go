package models

// Role defines the account role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleParent, RoleStudent:
		return true
	}
	return false
}

// StudentStatus defines the student profile status
type StudentStatus string

const (
	StudentActive     StudentStatus = "active"
	StudentInactive   StudentStatus = "inactive"
	StudentGraduated  StudentStatus = "graduated"
	StudentDroppedOut StudentStatus = "dropped_out"
)

// Valid reports whether the status is one of the closed set.
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentGraduated, StudentDroppedOut:
		return true
	}
	return false
}

// TeacherStatus defines the teacher employment status
type TeacherStatus string

const (
	TeacherPermanent   TeacherStatus = "permanent"
	TeacherTemporary   TeacherStatus = "temporary"
	TeacherContractual TeacherStatus = "contractual"
)

// Valid reports whether the status is one of the closed set.
func (s TeacherStatus) Valid() bool {
	switch s {
	case TeacherPermanent, TeacherTemporary, TeacherContractual:
		return true
	}
	return false
}
