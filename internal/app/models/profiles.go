package models

// AdminProfile defines the admin profile row based on the 'admins' table.
type AdminProfile struct {
	ID          int64  `json:"id" db:"id"`
	AccountID   int64  `json:"accountId" db:"account_id"`
	AdmissionNo string `json:"admissionNo" db:"admission_no"`

	Account *Account `json:"account,omitempty"` // Relation, no db tag
}

// TeacherProfile defines the teacher profile row based on the 'teachers' table.
type TeacherProfile struct {
	ID          int64         `json:"id" db:"id"`
	AccountID   int64         `json:"accountId" db:"account_id"`
	AdmissionNo string        `json:"admissionNo" db:"admission_no"`
	Status      TeacherStatus `json:"status" db:"status"`

	Account  *Account  `json:"account,omitempty"`
	Subjects []Subject `json:"subjects,omitempty"` // m2m via teacher_subjects
}

// ParentProfile defines the parent profile row based on the 'parents' table.
type ParentProfile struct {
	ID          int64  `json:"id" db:"id"`
	AccountID   int64  `json:"accountId" db:"account_id"`
	AdmissionNo string `json:"admissionNo" db:"admission_no"`

	Account  *Account         `json:"account,omitempty"`
	Students []StudentProfile `json:"students,omitempty"`
}

// StudentProfile defines the student profile row based on the 'students' table.
type StudentProfile struct {
	ID          int64         `json:"id" db:"id"`
	AccountID   int64         `json:"accountId" db:"account_id"`
	AdmissionNo string        `json:"admissionNo" db:"admission_no"`
	Status      StudentStatus `json:"status" db:"status"`
	GroupID     int64         `json:"groupId" db:"group_id"`
	ParentID    *int64        `json:"parentId,omitempty" db:"parent_id"` // nullable

	Account *Account       `json:"account,omitempty"`
	Group   *Group         `json:"group,omitempty"`
	Parent  *ParentProfile `json:"parent,omitempty"`
}
