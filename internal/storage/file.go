package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/financa-pro/backend/internal/models"
)

// File persists the snapshot document as a JSON file. The write goes
// through a temporary file and a rename so a crash mid-write leaves the
// previous snapshot intact.
type File struct {
	path string
}

// NewFile returns a file-backed persister, creating the parent
// directory if needed.
func NewFile(path string) (*File, error) {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return nil, err
	}

	return &File{path: path}, nil
}

// Load reads the snapshot document, if one exists.
func (f *File) Load() (models.Snapshot, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return models.Snapshot{}, false, err
	}

	return snapshot, true, nil
}

// Save overwrites the snapshot document.
func (f *File) Save(snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, f.path)
}

// Clear deletes the snapshot document. A missing file is not an error.
func (f *File) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}

	return err
}
