package dto

// AddCourseFileRequest is the multipart form payload for
// POST /course-files/:subjectId. The blob itself is read from the
// "file" form field.
type AddCourseFileRequest struct {
	FileName string `form:"fileName" binding:"required,max=255" example:"chapter-3.pdf"`
}

// UpdateCourseFileRequest is the multipart form payload for
// PUT /course-files/:id. The replacement blob itself is read from the
// "file" form field and is optional.
type UpdateCourseFileRequest struct {
	FileName string `form:"fileName" binding:"required,max=255" example:"chapter-3.pdf"`
}
