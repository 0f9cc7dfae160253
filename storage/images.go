package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"eventhub-backend/apperr"
)

// ImageStore persists uploaded gallery images and hands back the
// public URL they will be served under.
type ImageStore interface {
	Save(name string, content io.Reader) (string, error)
	Remove(name string) error
}

// DiskImageStore writes images under dir and serves them at
// /service-images/<name>.
type DiskImageStore struct {
	dir string
}

func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if dir == "" {
		dir = "uploads/service-images"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create upload directory", err)
	}
	return &DiskImageStore{dir: dir}, nil
}

// Dir returns the directory images are written to, for static serving.
func (s *DiskImageStore) Dir() string { return s.dir }

func (s *DiskImageStore) Save(name string, content io.Reader) (string, error) {
	name = filepath.Base(name) // no path traversal via upload names
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to store image", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to write image", err)
	}
	return "/service-images/" + name, nil
}

func (s *DiskImageStore) Remove(name string) error {
	name = filepath.Base(strings.TrimPrefix(name, "/service-images/"))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return apperr.New(apperr.NotFound, "image not found")
		}
		return apperr.Wrap(apperr.Internal, "failed to remove image", err)
	}
	return nil
}
