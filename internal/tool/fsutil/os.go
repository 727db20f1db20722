package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// writeSyncCloser defines the minimal interface for a writable file handle.
// This abstraction allows testing without depending on concrete *os.File.
type writeSyncCloser interface {
	io.Writer
	Sync() error
	Close() error
	Name() string
}

// OSFileSystem implements the filesystem gateway using local OS primitives.
// It uses internal function fields to enable testability via functional injection.
type OSFileSystem struct {
	// Internal syscall wrappers for testability
	createTemp func(dir, pattern string) (writeSyncCloser, error)
	rename     func(oldpath, newpath string) error
	chmod      func(name string, mode os.FileMode) error
	remove     func(name string) error
	chdir      func(dir string) error
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		createTemp: func(dir, pattern string) (writeSyncCloser, error) {
			return os.CreateTemp(dir, pattern)
		},
		rename: os.Rename,
		chmod:  os.Chmod,
		remove: os.Remove,
		chdir:  os.Chdir,
	}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// MakeDir creates path, including missing parents.
// It fails with *DirExistsError if anything already exists at path.
func (r *OSFileSystem) MakeDir(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return &DirExistsError{Path: path}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &MkdirError{Path: path, Cause: err}
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return &MkdirError{Path: path, Cause: err}
	}
	return nil
}

// ChangeDir switches the process working directory to path.
// It fails with *DirNotFoundError if path does not exist.
func (r *OSFileSystem) ChangeDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &DirNotFoundError{Path: path}
		}
		return &ChdirError{Path: path, Cause: err}
	}
	if !info.IsDir() {
		return &NotDirectoryError{Path: path}
	}

	if err := r.chdir(path); err != nil {
		return &ChdirError{Path: path, Cause: err}
	}
	return nil
}

// EnsureDirs creates the directory and its parents if they don't exist.
func (r *OSFileSystem) EnsureDirs(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return &MkdirError{Path: path, Cause: err}
	}
	return nil
}

// ReadFile reads the full contents of a file.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}
	return content, nil
}

// WriteFileAtomic writes content to a file atomically using temp file + rename pattern.
// If the process crashes mid-write, a previous version of the file remains intact.
// The temp file is created in the same directory as the target so the rename stays atomic.
func (r *OSFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := r.createTemp(dir, ".tmp-*")
	if err != nil {
		return &TempFileError{Dir: dir, Cause: err}
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = r.remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return &TempWriteError{Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		return &TempSyncError{Path: tmpPath, Cause: err}
	}

	// Close file before rename (required on some systems)
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return &TempCloseError{Path: tmpPath, Cause: err}
	}
	tmpFile = nil

	if err := r.rename(tmpPath, path); err != nil {
		return &RenameError{Old: tmpPath, New: path, Cause: err}
	}
	needsCleanup = false

	if err := r.chmod(path, perm); err != nil {
		return &ChmodError{Path: path, Mode: perm, Cause: err}
	}

	return nil
}
