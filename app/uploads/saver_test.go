package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestSaverSave(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir)
	require.NoError(t, err)

	fh := multipartFile(t, "image", "my photo.png", "fake png bytes")
	path, err := saver.Save(PostDir, fh)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(path, "/uploads/posts/"))
	require.True(t, strings.HasSuffix(path, "-my_photo.png"))

	onDisk := filepath.Join(dir, PostDir, filepath.Base(path))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	require.Equal(t, "fake png bytes", string(data))
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "a_b.png", sanitize("a b.png"))
	require.NotContains(t, sanitize("../../evil.sh"), "/")
	require.Equal(t, "upload", sanitize("???"))
	require.Equal(t, "kept-01.JPG", sanitize("kept-01.JPG"))
}

func TestSaverCreatesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	_, err := NewSaver(dir)
	require.NoError(t, err)

	for _, sub := range []string{ProfileDir, PostDir} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}
}
