// Package upload stores user-submitted images on local disk under the
// public document root and hands back the URL path they are served from.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Subdirectories for the two upload kinds.
const (
	CourtImages   = ""
	ProfilePhotos = "perfis"
)

type Store struct {
	root string
}

// NewStore roots the store at dir (e.g. "public/uploads"). Files saved under
// a subdir map to "/uploads/<subdir>/<name>" URLs.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

var uuidNewString = uuid.NewString

// Save writes the uploaded file under the store with a fresh unique name,
// keeping the original extension, and returns its URL path.
func (s *Store) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("upload: open: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("upload: mkdir: %w", err)
	}

	name := uuidNewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("upload: create: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("upload: write: %w", err)
	}

	if subdir == "" {
		return "/uploads/" + name, nil
	}
	return "/uploads/" + subdir + "/" + name, nil
}
