package models

import "time"

// CourseFile records the metadata of a file a teacher attached to a subject,
// based on the 'course_files' table. FilePath is the relative location in
// the file store.
type CourseFile struct {
	ID        int64     `json:"id" db:"id"`
	SubjectID int64     `json:"subjectId" db:"subject_id"`
	TeacherID int64     `json:"teacherId" db:"teacher_id"`
	FileName  string    `json:"fileName" db:"file_name"`
	FilePath  string    `json:"filePath" db:"file_path"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Subject *Subject        `json:"subject,omitempty"`
	Teacher *TeacherProfile `json:"teacher,omitempty"`
}
