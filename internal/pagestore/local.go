package pagestore

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore writes pages below the static directory served at /static.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates {staticDir}/generated if needed.
func NewLocalStore(staticDir string) (*LocalStore, error) {
	if strings.TrimSpace(staticDir) == "" {
		return nil, fmt.Errorf("static directory is required")
	}
	dir := filepath.Join(staticDir, Prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create generated dir: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: "/static/" + Prefix}, nil
}

// Put overwrites {dir}/name and returns /static/generated/name.
func (s *LocalStore) Put(_ context.Context, name, html string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("file name is required")
	}
	full := filepath.Join(s.dir, name)
	if !strings.HasPrefix(filepath.Clean(full), filepath.Clean(s.dir)+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal detected")
	}
	if err := os.WriteFile(full, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	return path.Join(s.urlPrefix, filepath.ToSlash(name)), nil
}
