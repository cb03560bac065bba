package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the durable home of the persisted session entry. A Load on an
// absent entry returns (nil, nil); Delete on an absent entry is a no-op.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Delete() error
}

// FileStorage keeps the entry in a single file, created with 0600 since it
// holds a bearer token.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (f *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStorage) Delete() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
