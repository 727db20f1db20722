package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
// NOTE: This is a minimal mock for config loading tests.
// For comprehensive filesystem mocking, see internal/testing/mocks.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

const defaultPath = "/home/user/.config/larastack/config.yaml"

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs, "")

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "/var/www", cfg.Build.WorkingDirectory)
	assert.Equal(t, 8080, cfg.Build.AppExternalPort)
	assert.Equal(t, 3306, cfg.Build.MysqlExternalPort)
	assert.Equal(t, 7, cfg.Build.MysqlPasswordMin)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	configYAML := `
build:
  app_external_port: 9090
  settings:
    app: "memory_limit=512M"
`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(configYAML)},
	}
	loader := NewLoaderWithFS(fs, "")

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Build.AppExternalPort)                  // Overridden
	assert.Equal(t, "memory_limit=512M", cfg.Build.Settings.App)      // Overridden
	assert.Equal(t, 3306, cfg.Build.MysqlExternalPort)                // Default
	assert.Contains(t, cfg.Build.Settings.Database, "general_log = 1") // Default sibling kept
	assert.Equal(t, 5, cfg.Prompt.MaxAttempts)                        // Default section
}

func TestLoad_StringPort_WeaklyTyped(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte("build:\n  mysql_external_port: \"3307\"\n")},
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	require.NoError(t, err)
	assert.Equal(t, 3307, cfg.Build.MysqlExternalPort)
}

func TestLoad_ExplicitPath_UsedInsteadOfHome(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("homeless"),
		Files: map[string][]byte{
			"/etc/larastack.yaml": []byte("commands:\n  docker_start_command: [systemctl, start, docker]\n"),
		},
	}

	cfg, err := NewLoaderWithFS(fs, "/etc/larastack.yaml").Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"systemctl", "start", "docker"}, cfg.Commands.DockerStartCommand)
}

func TestLoad_EmptyConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte("")},
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("homeless"),
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Build.AppExternalPort)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_MalformedYAML_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte("build: [unclosed")},
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, defaultPath, loadErr.Path)
}

func TestLoad_UnknownKey_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte("build:\n  app_port: 9090\n")},
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "app_port")
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_ExplicitPathMissing_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{HomeDir: "/home/user", Files: map[string][]byte{}}

	cfg, err := NewLoaderWithFS(fs, "/nope.yaml").Load()

	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_WrongYAMLType_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte("- not\n- a\n- mapping\n")},
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// --- EDGE CASE TESTS ---

func TestLoad_ExplicitZero_OverridesAndFailsValidation(t *testing.T) {
	// Present keys always win, so an explicit zero reaches validation.
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte("prompt:\n  max_attempts: 0\n")},
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt.max_attempts")
}

func TestLoad_FixOwnershipFalse_Overrides(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte("commands:\n  fix_ownership: false\n")},
	}

	cfg, err := NewLoaderWithFS(fs, "").Load()

	require.NoError(t, err)
	assert.False(t, cfg.Commands.FixOwnership)
}
