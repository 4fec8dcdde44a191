package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidName = errors.New("invalid page name")

// DiskStore writes pages under a root directory. The written file is served
// back by the HTTP layer under baseURL/pages/.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create pages dir: %w", err)
	}
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Write(ctx context.Context, name string, data []byte, contentType string) error {
	if !validName(name) {
		return ErrInvalidName
	}

	path := filepath.Join(s.root, name)

	// Temp file + rename so readers never see a half-written page.
	tmp, err := os.CreateTemp(s.root, "page-*")
	if err != nil {
		return fmt.Errorf("create temp page: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close page: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename page: %w", err)
	}
	return nil
}

func (s *DiskStore) PublicURL(name string) string {
	return s.baseURL + "/pages/" + name
}

// Root returns the directory pages are written to, for the file server.
func (s *DiskStore) Root() string {
	return s.root
}

func validName(name string) bool {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return false
	}
	return name != "." && name != ".." && !strings.HasPrefix(name, ".")
}
