// Package uploads stores multipart image files under a fixed directory tree
// and hands back the public path they are served from.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Subdirectories for the two upload kinds.
const (
	ProfileDir = "profiles"
	PostDir    = "posts"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Saver writes uploaded files below BaseDir.
type Saver struct {
	BaseDir string
}

// NewSaver creates a Saver rooted at baseDir, creating the upload
// subdirectories if needed.
func NewSaver(baseDir string) (*Saver, error) {
	for _, sub := range []string{ProfileDir, PostDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, err
		}
	}
	return &Saver{BaseDir: baseDir}, nil
}

// Save stores the uploaded file under subdir with a timestamped, sanitized
// filename and returns the public /uploads/... path.
func (s *Saver) Save(subdir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(fh.Filename))
	dstPath := filepath.Join(s.BaseDir, subdir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", err
	}
	return "/uploads/" + subdir + "/" + name, nil
}

// sanitize strips everything but letters, digits, dots, underscores and
// hyphens from a client-supplied filename.
func sanitize(filename string) string {
	filename = strings.ReplaceAll(filename, " ", "_")
	filename = unsafeChars.ReplaceAllString(filename, "")
	if filename == "" {
		filename = "upload"
	}
	return filename
}
