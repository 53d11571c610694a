package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/yassine/schoolhub/internal/pkg/logger"
)

// LocalStorage saves files on the local filesystem under a base directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory when missing.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile stores the uploaded file under subPath with a uuid-based name to
// avoid collisions, returning the relative path (e.g. "course_files/<uuid>.pdf").
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dirPath := ls.basePath
	if subPath != "" {
		dirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create storage subdirectory")
			return "", fmt.Errorf("failed to create storage subdirectory: %w", err)
		}
	}

	uniqueName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(dirPath, uniqueName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := uniqueName
	if subPath != "" {
		relPath = filepath.Join(subPath, uniqueName)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// DeleteFile removes a stored file. A missing file is treated as already
// deleted.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	if relPath == "" {
		return nil
	}

	physicalPath := ls.FullPath(relPath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", relPath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FullPath resolves a stored relative path against the base directory.
// Paths that escape the base directory resolve to "".
func (ls *LocalStorage) FullPath(relPath string) string {
	cleaned := filepath.Clean(relPath)
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return ""
	}
	return filepath.Join(ls.basePath, cleaned)
}

// Exists reports whether the stored file is present on disk.
func (ls *LocalStorage) Exists(relPath string) bool {
	physicalPath := ls.FullPath(relPath)
	if physicalPath == "" {
		return false
	}
	_, err := os.Stat(physicalPath)
	return err == nil
}
