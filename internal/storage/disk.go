package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore saves uploaded files on local disk under a single
// directory. Files get a generated unique name so uploads never
// collide; the directory is served statically by the router.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the file and returns the generated filename. The original
// extension is kept, the rest of the client-supplied name is discarded.
func (s *DiskStore) Save(field, originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s-%s%s", field, uuid.New().String(), filepath.Ext(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return name, nil
}

// Dir returns the directory files are stored in.
func (s *DiskStore) Dir() string {
	return s.dir
}
