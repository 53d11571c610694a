package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveFileAndExists(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	header := newTestFileHeader(t, "notes.pdf", "pdf content")
	relPath, err := storage.SaveFile(header, "course_files")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "course_files"+string(filepath.Separator)))
	assert.True(t, strings.HasSuffix(relPath, ".pdf"))
	assert.True(t, storage.Exists(relPath))

	content, err := os.ReadFile(storage.FullPath(relPath))
	require.NoError(t, err)
	assert.Equal(t, "pdf content", string(content))
}

func TestSaveFile_NilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveFile(nil, "")
	assert.Error(t, err)
}

func TestDeleteFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	header := newTestFileHeader(t, "a.txt", "x")
	relPath, err := storage.SaveFile(header, "")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(relPath))
	assert.False(t, storage.Exists(relPath))

	// Deleting again is not an error.
	assert.NoError(t, storage.DeleteFile(relPath))
}

func TestFullPath_RejectsEscapes(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", storage.FullPath("../outside.txt"))
	assert.Equal(t, "", storage.FullPath("/etc/passwd"))
	assert.Equal(t, "", storage.FullPath(""))
	assert.False(t, storage.Exists("../outside.txt"))
}
