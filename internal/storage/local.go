package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalScratch stores scratch files under a root directory on the local
// filesystem.
type LocalScratch struct {
	root string
}

// NewLocalScratch creates the scratch store, creating the root directory if
// it does not exist.
func NewLocalScratch(root string) (*LocalScratch, error) {
	if root == "" {
		root = os.TempDir()
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	return &LocalScratch{root: root}, nil
}

// Root returns the scratch root directory.
func (s *LocalScratch) Root() string {
	return s.root
}

// Save writes the stream to a uniquely named file. The name is a fresh UUID
// plus the client file's extension — never the raw client name, so two
// concurrent uploads of "part.step" cannot clobber or delete each other.
func (s *LocalScratch) Save(ctx context.Context, fileName string, reader io.Reader) (string, error) {
	path := filepath.Join(s.root, uuid.NewString()+sanitizeExt(fileName))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}

	return path, nil
}

// Remove deletes a scratch file; a missing file is not an error.
func (s *LocalScratch) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete scratch file: %w", err)
	}
	return nil
}

// sanitizeExt keeps only a plain extension from the client-supplied name so
// path separators or traversal segments never reach the filesystem.
func sanitizeExt(fileName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(fileName)))
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
