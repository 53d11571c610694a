package filestorage

import "mime/multipart"

// FileStorage defines the interface for stored course files.
type FileStorage interface {
	// SaveFile stores an uploaded file under an optional subdirectory and
	// returns the relative path it was stored at.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an
	// error (the operation is idempotent).
	DeleteFile(relPath string) error

	// FullPath resolves a stored relative path to an absolute filesystem
	// path, or returns an empty string when the path escapes the store.
	FullPath(relPath string) string

	// Exists reports whether the stored file is present on disk.
	Exists(relPath string) bool
}
