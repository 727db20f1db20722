package fsutil

import (
	"fmt"
	"os"
)

// DirExistsError is returned when a directory to be created already exists.
type DirExistsError struct {
	Path string
}

func (e *DirExistsError) Error() string {
	return fmt.Sprintf("directory %q already exists", e.Path)
}

func (e *DirExistsError) Exists() bool {
	return true
}

// DirNotFoundError is returned when changing into a directory that does not exist.
type DirNotFoundError struct {
	Path string
}

func (e *DirNotFoundError) Error() string {
	return fmt.Sprintf("directory %q does not exist", e.Path)
}

func (e *DirNotFoundError) NotFound() bool {
	return true
}

// NotDirectoryError is returned when a path expected to be a directory is a file.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("%q is not a directory", e.Path)
}

func (e *NotDirectoryError) InvalidInput() bool {
	return true
}

// MkdirError is returned when creating a directory fails.
type MkdirError struct {
	Path  string
	Cause error
}

func (e *MkdirError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Cause)
}

func (e *MkdirError) Unwrap() error {
	return e.Cause
}

func (e *MkdirError) IOError() bool {
	return true
}

// ChdirError is returned when switching the working directory fails.
type ChdirError struct {
	Path  string
	Cause error
}

func (e *ChdirError) Error() string {
	return fmt.Sprintf("failed to change directory to %s: %v", e.Path, e.Cause)
}

func (e *ChdirError) Unwrap() error {
	return e.Cause
}

func (e *ChdirError) IOError() bool {
	return true
}

// ReadError is returned when reading a file fails.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

func (e *ReadError) IOError() bool {
	return true
}

// TempFileError is returned when creating a temp file fails.
type TempFileError struct {
	Dir   string
	Cause error
}

func (e *TempFileError) Error() string {
	return fmt.Sprintf("failed to create temp file in %s: %v", e.Dir, e.Cause)
}

func (e *TempFileError) Unwrap() error {
	return e.Cause
}

func (e *TempFileError) IOError() bool {
	return true
}

// TempWriteError is returned when writing to a temp file fails.
type TempWriteError struct {
	Path  string
	Cause error
}

func (e *TempWriteError) Error() string {
	return fmt.Sprintf("failed to write to temp file %s: %v", e.Path, e.Cause)
}

func (e *TempWriteError) Unwrap() error {
	return e.Cause
}

func (e *TempWriteError) IOError() bool {
	return true
}

// TempSyncError is returned when syncing a temp file fails.
type TempSyncError struct {
	Path  string
	Cause error
}

func (e *TempSyncError) Error() string {
	return fmt.Sprintf("failed to sync temp file %s: %v", e.Path, e.Cause)
}

func (e *TempSyncError) Unwrap() error {
	return e.Cause
}

func (e *TempSyncError) IOError() bool {
	return true
}

// TempCloseError is returned when closing a temp file fails.
type TempCloseError struct {
	Path  string
	Cause error
}

func (e *TempCloseError) Error() string {
	return fmt.Sprintf("failed to close temp file %s: %v", e.Path, e.Cause)
}

func (e *TempCloseError) Unwrap() error {
	return e.Cause
}

func (e *TempCloseError) IOError() bool {
	return true
}

// RenameError is returned when renaming a file fails.
type RenameError struct {
	Old   string
	New   string
	Cause error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("failed to rename %s to %s: %v", e.Old, e.New, e.Cause)
}

func (e *RenameError) Unwrap() error {
	return e.Cause
}

func (e *RenameError) IOError() bool {
	return true
}

// ChmodError is returned when changing file permissions fails.
type ChmodError struct {
	Path  string
	Mode  os.FileMode
	Cause error
}

func (e *ChmodError) Error() string {
	return fmt.Sprintf("failed to set permissions for %s to %v: %v", e.Path, e.Mode, e.Cause)
}

func (e *ChmodError) Unwrap() error {
	return e.Cause
}

func (e *ChmodError) IOError() bool {
	return true
}
