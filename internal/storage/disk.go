package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps blobs in a local directory served statically under
// /pictures. The stored path is the absolute file path on disk.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media dir: %w", err)
	}

	return &DiskStore{
		dir:     abs,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *DiskStore) Store(ctx context.Context, key, srcPath, contentType string) (string, string, error) {
	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create blob dir: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", "", fmt.Errorf("failed to write %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return "", "", fmt.Errorf("failed to close %s: %w", dst, err)
	}

	url := fmt.Sprintf("%s/pictures/%s", s.baseURL, key)
	return url, dst, nil
}

func (s *DiskStore) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotExist
		}
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}
