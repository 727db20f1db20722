package mocks

import (
	"context"
	"path/filepath"
)

// MockCloner "clones" by creating the checkout in a MockFileSystem.
type MockCloner struct {
	FS       *MockFileSystem
	CloneErr error
	Cloned   []string
}

// NewMockCloner creates a cloner writing into fs.
func NewMockCloner(fs *MockFileSystem) *MockCloner {
	return &MockCloner{FS: fs}
}

func (c *MockCloner) Clone(ctx context.Context, url, dir string) error {
	c.Cloned = append(c.Cloned, url+" -> "+dir)
	if c.CloneErr != nil {
		return c.CloneErr
	}
	c.FS.CreateDir(filepath.Join(dir, ".git"))
	c.FS.CreateFile(filepath.Join(dir, "artisan"), []byte("#!/usr/bin/env php\n"))
	return nil
}

func (c *MockCloner) IsCheckout(dir string) bool {
	return c.FS.HasDir(filepath.Join(dir, ".git"))
}
