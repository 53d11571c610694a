package dto

// CreateAdminRequest is the payload for POST /register-admin.
type CreateAdminRequest struct {
	AccountCreate
	AdmissionNo string `json:"admissionNo" binding:"required,max=50" example:"ADM-0001"`
}

// UpdateAdminRequest is the partial-update payload for PUT /admins/:id.
type UpdateAdminRequest struct {
	AccountUpdate
	AdmissionNo *string `json:"admissionNo,omitempty" binding:"omitempty,max=50"`
}

// CreateTeacherRequest is the payload for POST /add-teacher.
type CreateTeacherRequest struct {
	AccountCreate
	AdmissionNo string `json:"admissionNo" binding:"required,max=50" example:"TCH-0001"`
	Status      string `json:"status" binding:"required,oneof=permanent temporary contractual" example:"permanent"`
}

// UpdateTeacherRequest is the partial-update payload for PUT /teachers/:id.
type UpdateTeacherRequest struct {
	AccountUpdate
	AdmissionNo *string `json:"admissionNo,omitempty" binding:"omitempty,max=50"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=permanent temporary contractual"`
}

// AssignSubjectsRequest is the payload for POST /teachers/:id/assign-subjects.
type AssignSubjectsRequest struct {
	SubjectIDs []int64 `json:"subjectIds" binding:"required,min=1,dive,gt=0" example:"5,9"`
}

// CreateParentRequest is the payload for POST /add-parent.
type CreateParentRequest struct {
	AccountCreate
	AdmissionNo string `json:"admissionNo" binding:"required,max=50" example:"PAR-0001"`
}

// UpdateParentRequest is the partial-update payload for PUT /parents/:id.
type UpdateParentRequest struct {
	AccountUpdate
	AdmissionNo *string `json:"admissionNo,omitempty" binding:"omitempty,max=50"`
}

// CreateStudentRequest is the payload for POST /add-student.
type CreateStudentRequest struct {
	AccountCreate
	AdmissionNo string `json:"admissionNo" binding:"required,max=50" example:"STU-0001"`
	Status      string `json:"status" binding:"required,oneof=active inactive graduated dropped_out" example:"active"`
	GroupID     int64  `json:"groupId" binding:"required,gt=0" example:"3"`
	ParentID    *int64 `json:"parentId,omitempty" binding:"omitempty,gt=0"`
}

// UpdateStudentRequest is the partial-update payload for PUT /students/:id.
type UpdateStudentRequest struct {
	AccountUpdate
	AdmissionNo *string `json:"admissionNo,omitempty" binding:"omitempty,max=50"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive graduated dropped_out"`
	GroupID     *int64  `json:"groupId,omitempty" binding:"omitempty,gt=0"`
	ParentID    *int64  `json:"parentId,omitempty" binding:"omitempty,gt=0"`
}

// StudentFilterRequest narrows student listings. The id filters follow the
// hierarchy chain, the most specific one provided wins.
type StudentFilterRequest struct {
	Search           string `form:"search"`
	CycleID          *int64 `form:"cycleId" binding:"omitempty,gt=0"`
	FieldID          *int64 `form:"fieldId" binding:"omitempty,gt=0"`
	SpecializationID *int64 `form:"specializationId" binding:"omitempty,gt=0"`
	LevelID          *int64 `form:"levelId" binding:"omitempty,gt=0"`
	GroupID          *int64 `form:"groupId" binding:"omitempty,gt=0"`
}
