package provision

import (
	"context"
	"os"

	"github.com/Cyclone1070/larastack/internal/tool/shell"
)

// fileSystem defines the filesystem operations the engine performs.
type fileSystem interface {
	MakeDir(path string) error
	ChangeDir(path string) error
	EnsureDirs(path string) error
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// launcher runs external commands with checked exit status.
type launcher interface {
	Run(ctx context.Context, command []string, dir string) (*shell.Response, error)
	Preflight(ctx context.Context, dir, required string) error
}

// cloner materializes the application skeleton.
type cloner interface {
	Clone(ctx context.Context, url, dir string) error
	IsCheckout(dir string) bool
}
