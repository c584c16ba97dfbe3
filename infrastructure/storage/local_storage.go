package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaStore persists photo originals and derivatives. Paths are relative to
// the media root; one directory per photo.
type MediaStore interface {
	// NewPhotoDir allocates a directory for one photo, keyed by upload time:
	// YYYY/MM/<uuid>. Returns the relative directory path.
	NewPhotoDir(uploadedAt time.Time) (string, error)

	// Save writes data under dir with the given file name and returns the
	// relative path of the written file.
	Save(dir, name string, data []byte) (string, error)

	// RemoveDir deletes a photo directory and everything in it.
	RemoveDir(dir string) error
}

type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) NewPhotoDir(uploadedAt time.Time) (string, error) {
	dir := filepath.Join(
		fmt.Sprintf("%04d", uploadedAt.Year()),
		fmt.Sprintf("%02d", int(uploadedAt.Month())),
		uuid.NewString(),
	)
	if err := os.MkdirAll(filepath.Join(s.root, dir), 0755); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}
	return filepath.ToSlash(dir), nil
}

func (s *LocalStorage) Save(dir, name string, data []byte) (string, error) {
	rel := filepath.ToSlash(filepath.Join(dir, sanitizeFileName(name)))
	if err := os.WriteFile(filepath.Join(s.root, filepath.FromSlash(rel)), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return rel, nil
}

func (s *LocalStorage) RemoveDir(dir string) error {
	clean := filepath.Clean(filepath.FromSlash(dir))
	if clean == "." || clean == string(filepath.Separator) || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("refusing to remove %q", dir)
	}
	return os.RemoveAll(filepath.Join(s.root, clean))
}

// sanitizeFileName strips path separators from client-supplied names.
func sanitizeFileName(name string) string {
	name = filepath.Base(filepath.FromSlash(name))
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}
