package memory

import (
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MediaStore keeps written files in memory, keyed by relative path.
type MediaStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMediaStore() *MediaStore {
	return &MediaStore{files: make(map[string][]byte)}
}

func (s *MediaStore) NewPhotoDir(uploadedAt time.Time) (string, error) {
	return path.Join(
		fmt.Sprintf("%04d", uploadedAt.Year()),
		fmt.Sprintf("%02d", int(uploadedAt.Month())),
		uuid.NewString(),
	), nil
}

func (s *MediaStore) Save(dir, name string, data []byte) (string, error) {
	rel := path.Join(dir, name)
	s.mu.Lock()
	s.files[rel] = append([]byte(nil), data...)
	s.mu.Unlock()
	return rel, nil
}

func (s *MediaStore) RemoveDir(dir string) error {
	prefix := dir + "/"
	s.mu.Lock()
	defer s.mu.Unlock()
	for rel := range s.files {
		if rel == dir || len(rel) > len(prefix) && rel[:len(prefix)] == prefix {
			delete(s.files, rel)
		}
	}
	return nil
}

// Get returns a stored file's bytes for assertions.
func (s *MediaStore) Get(rel string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[rel]
	return data, ok
}

// Len reports the number of stored files.
func (s *MediaStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
