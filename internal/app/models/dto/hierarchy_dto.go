package dto

// CreateCycleRequest is the payload for POST /cycles.
type CreateCycleRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Engineering"`
}

// UpdateCycleRequest is the partial-update payload for PUT /cycles/:id.
type UpdateCycleRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=255"`
}

// CreateFieldRequest is the payload for POST /fields.
type CreateFieldRequest struct {
	Name    string `json:"name" binding:"required,max=255" example:"Computer Science"`
	CycleID int64  `json:"cycleId" binding:"required,gt=0" example:"1"`
}

// UpdateFieldRequest is the partial-update payload for PUT /fields/:id.
type UpdateFieldRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=255"`
	CycleID *int64  `json:"cycleId,omitempty" binding:"omitempty,gt=0"`
}

// CreateSpecializationRequest is the payload for POST /specializations.
type CreateSpecializationRequest struct {
	Name    string `json:"name" binding:"required,max=255" example:"Software Engineering"`
	FieldID int64  `json:"fieldId" binding:"required,gt=0" example:"1"`
}

// UpdateSpecializationRequest is the partial-update payload for PUT /specializations/:id.
type UpdateSpecializationRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=255"`
	FieldID *int64  `json:"fieldId,omitempty" binding:"omitempty,gt=0"`
}

// CreateLevelRequest is the payload for POST /levels.
type CreateLevelRequest struct {
	Name             string `json:"name" binding:"required,max=255" example:"L1"`
	SpecializationID int64  `json:"specializationId" binding:"required,gt=0" example:"1"`
}

// UpdateLevelRequest is the partial-update payload for PUT /levels/:id.
type UpdateLevelRequest struct {
	Name             *string `json:"name,omitempty" binding:"omitempty,max=255"`
	SpecializationID *int64  `json:"specializationId,omitempty" binding:"omitempty,gt=0"`
}

// CreateGroupRequest is the payload for POST /groups.
type CreateGroupRequest struct {
	Name    string `json:"name" binding:"required,max=255" example:"G1"`
	LevelID int64  `json:"levelId" binding:"required,gt=0" example:"1"`
}

// UpdateGroupRequest is the partial-update payload for PUT /groups/:id.
type UpdateGroupRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=255"`
	LevelID *int64  `json:"levelId,omitempty" binding:"omitempty,gt=0"`
}

// CreateSubjectRequest is the payload for POST /subjects.
type CreateSubjectRequest struct {
	Name    string `json:"name" binding:"required,max=255" example:"Algorithms"`
	LevelID int64  `json:"levelId" binding:"required,gt=0" example:"1"`
}

// UpdateSubjectRequest is the partial-update payload for PUT /subjects/:id.
type UpdateSubjectRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=255"`
	LevelID *int64  `json:"levelId,omitempty" binding:"omitempty,gt=0"`
}
