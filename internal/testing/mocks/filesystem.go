package mocks

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Cyclone1070/larastack/internal/tool/fsutil"
)

// MockFileSystem is an in-memory filesystem returning the same typed
// errors as fsutil.OSFileSystem.
type MockFileSystem struct {
	Mu sync.Mutex

	Dirs  map[string]bool
	Files map[string][]byte
	Perms map[string]os.FileMode
	Cwd   string

	// OpErrors forces an operation ("MakeDir", "ChangeDir", "EnsureDirs",
	// "ReadFile", "WriteFileAtomic") to fail for every path.
	OpErrors map[string]error
	// PathErrors forces an operation to fail for one path, keyed "Op:path".
	PathErrors map[string]error
}

// NewMockFileSystem creates a filesystem holding only "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Dirs:       map[string]bool{"/": true},
		Files:      map[string][]byte{},
		Perms:      map[string]os.FileMode{},
		Cwd:        "/",
		OpErrors:   map[string]error{},
		PathErrors: map[string]error{},
	}
}

// CreateDir adds path and its parents.
func (m *MockFileSystem) CreateDir(path string) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.addDir(path)
}

// CreateFile adds a file, creating its parent directories.
func (m *MockFileSystem) CreateFile(path string, content []byte) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.addDir(filepath.Dir(path))
	m.Files[filepath.Clean(path)] = content
}

// File returns a file's content and whether it exists.
func (m *MockFileSystem) File(path string) ([]byte, bool) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	content, ok := m.Files[filepath.Clean(path)]
	return content, ok
}

// HasDir reports whether path is a directory.
func (m *MockFileSystem) HasDir(path string) bool {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.Dirs[filepath.Clean(path)]
}

// FileNames lists every file path in sorted order.
func (m *MockFileSystem) FileNames() []string {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	names := make([]string, 0, len(m.Files))
	for name := range m.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *MockFileSystem) addDir(path string) {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.Dirs[p] = true
		if p == filepath.Dir(p) {
			return
		}
	}
}

func (m *MockFileSystem) forced(op, path string) error {
	if err, ok := m.OpErrors[op]; ok {
		return err
	}
	if err, ok := m.PathErrors[op+":"+filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

func (m *MockFileSystem) exists(path string) bool {
	_, isFile := m.Files[path]
	return isFile || m.Dirs[path]
}

func (m *MockFileSystem) MakeDir(path string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	path = filepath.Clean(path)

	if err := m.forced("MakeDir", path); err != nil {
		return &fsutil.MkdirError{Path: path, Cause: err}
	}
	if m.exists(path) {
		return &fsutil.DirExistsError{Path: path}
	}
	m.addDir(path)
	return nil
}

func (m *MockFileSystem) ChangeDir(path string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	path = filepath.Clean(path)

	if err := m.forced("ChangeDir", path); err != nil {
		return &fsutil.ChdirError{Path: path, Cause: err}
	}
	if _, isFile := m.Files[path]; isFile {
		return &fsutil.NotDirectoryError{Path: path}
	}
	if !m.Dirs[path] {
		return &fsutil.DirNotFoundError{Path: path}
	}
	m.Cwd = path
	return nil
}

func (m *MockFileSystem) EnsureDirs(path string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if err := m.forced("EnsureDirs", path); err != nil {
		return &fsutil.MkdirError{Path: path, Cause: err}
	}
	m.addDir(path)
	return nil
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	path = filepath.Clean(path)

	if err := m.forced("ReadFile", path); err != nil {
		return nil, &fsutil.ReadError{Path: path, Cause: err}
	}
	content, ok := m.Files[path]
	if !ok {
		return nil, &fsutil.ReadError{Path: path, Cause: os.ErrNotExist}
	}
	return append([]byte(nil), content...), nil
}

func (m *MockFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	if err := m.forced("WriteFileAtomic", path); err != nil {
		return &fsutil.RenameError{Old: dir, New: path, Cause: err}
	}
	if !m.Dirs[dir] {
		return &fsutil.TempFileError{Dir: dir, Cause: os.ErrNotExist}
	}
	m.Files[path] = append([]byte(nil), content...)
	m.Perms[path] = perm
	return nil
}
