package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrDependentRecords      = errors.New("resource has dependent records")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Profile errors
var (
	ErrAdminNotFound         = errors.New("admin not found")
	ErrTeacherNotFound       = errors.New("teacher not found")
	ErrParentNotFound        = errors.New("parent not found")
	ErrStudentNotFound       = errors.New("student not found")
	ErrAdmissionNoExists     = errors.New("admission number already exists")
	ErrSubjectNotAssigned    = errors.New("subject is not assigned to this teacher")
	ErrProfileAlreadyExists  = errors.New("profile already exists for this account")
	ErrStudentGroupNotFound  = errors.New("referenced group does not exist")
	ErrStudentParentNotFound = errors.New("referenced parent does not exist")
)

// Hierarchy errors
var (
	ErrCycleNotFound          = errors.New("cycle not found")
	ErrFieldNotFound          = errors.New("field not found")
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrLevelNotFound          = errors.New("level not found")
	ErrGroupNotFound          = errors.New("group not found")
	ErrSubjectNotFound        = errors.New("subject not found")
	ErrSubjectNameExists      = errors.New("subject with this name already exists")
	ErrParentRefNotFound      = errors.New("referenced parent entity does not exist")
)

// Course file errors
var (
	ErrCourseFileNotFound = errors.New("course file not found")
	ErrFileMissing        = errors.New("file is required")
)

// CustomError carries an underlying sentinel plus a human message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
