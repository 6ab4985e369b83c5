package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileStore writes files below a root directory that is served at baseURL.
type LocalFileStore struct {
	root    string
	baseURL string
}

func NewLocalFileStore(root, baseURL string) (*LocalFileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &LocalFileStore{root: root, baseURL: baseURL}, nil
}

func (s *LocalFileStore) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	dst := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, dst)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("key %q escapes media root", key)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.baseURL + filepath.ToSlash(rel), nil
}

// Root is the directory served under the base URL.
func (s *LocalFileStore) Root() string {
	return s.root
}
