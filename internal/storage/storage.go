// Package storage keeps uploaded files on local disk or in an S3 bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidKey = errors.New("invalid object key")

type Storage interface {
	// Put stores data under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewKey returns a random object key keeping ext, e.g. "avatars/<uuid>.webp".
func NewKey(dir, ext string) string {
	return dir + "/" + uuid.NewString() + ext
}

func cleanKey(key string) (string, error) {
	key = strings.TrimLeft(filepath.ToSlash(filepath.Clean(key)), "/")
	if key == "" || key == "." || strings.HasPrefix(key, "..") {
		return "", ErrInvalidKey
	}
	return key, nil
}

// ===============================
// Disk
// ===============================

type DiskStorage struct {
	root    string
	baseURL string
}

func NewDiskStorage(root, baseURL string) *DiskStorage {
	return &DiskStorage{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStorage) Root() string {
	return s.root
}

func (s *DiskStorage) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", key, err)
	}

	return s.baseURL + "/files/" + key, nil
}

func (s *DiskStorage) Delete(_ context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

var _ Storage = (*DiskStorage)(nil)
