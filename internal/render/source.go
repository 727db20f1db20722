package render

import (
	"embed"
	"path/filepath"

	"github.com/Cyclone1070/larastack/internal/config"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// fileReader is the filesystem surface a DirSource needs.
type fileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Source supplies raw template text.
type Source interface {
	Read(t Template) (string, error)
	Describe() string
}

// DirSource reads templates from an operator-supplied directory.
type DirSource struct {
	root  string
	names config.TemplatesConfig
	fs    fileReader
}

// NewDirSource creates a DirSource rooted at root, resolving names from the configuration.
func NewDirSource(root string, names config.TemplatesConfig, fs fileReader) *DirSource {
	return &DirSource{root: root, names: names, fs: fs}
}

// Path returns the file a template is read from.
func (s *DirSource) Path(t Template) string {
	var name string
	switch t.Kind {
	case KindCompose:
		name = s.names.Compose
	case KindDockerfile:
		name = s.names.Dockerfile
	case KindWebServer:
		name = s.names.WebServer
	case KindEnv:
		name = s.names.Env
	}
	return filepath.Join(s.root, name)
}

func (s *DirSource) Read(t Template) (string, error) {
	content, err := s.fs.ReadFile(s.Path(t))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (s *DirSource) Describe() string {
	return s.root
}

// EmbeddedSource serves the templates compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Read(t Template) (string, error) {
	content, err := embedded.ReadFile("templates/" + t.File)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (EmbeddedSource) Describe() string {
	return "built-in templates"
}

// NewSource picks the embedded templates when sourcePath is empty.
func NewSource(sourcePath string, names config.TemplatesConfig, fs fileReader) Source {
	if sourcePath == "" {
		return EmbeddedSource{}
	}
	return NewDirSource(sourcePath, names, fs)
}
