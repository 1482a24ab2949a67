package store

import (
	"os"
	"path/filepath"
)

// FileStorage keeps each key as a small file in a state directory, one
// blob per key. Writes go through a temp file and a rename so a crash
// mid-write leaves either the old record or the new one, never a mix.
type FileStorage struct {
	dir string
}

// NewFileStorage returns storage rooted at dir. The directory is created
// lazily on first write.
func NewFileStorage(dir string) *FileStorage {
	if dir == "" {
		dir = "state"
	}
	return &FileStorage{dir: dir}
}

// WriteBytes stores data under key.
func (f *FileStorage) WriteBytes(key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(f.dir, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadBytes retrieves the bytes stored under key.
func (f *FileStorage) ReadBytes(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(f.dir, key))
}
