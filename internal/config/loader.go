package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "larastack"
	// ConfigFile is the config file name
	ConfigFile = "config.yaml"
	// EnvConfigPath overrides the dotfile location when set.
	EnvConfigPath = "LARASTACK_CONFIG"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs   FileSystem
	path string
}

// NewLoader creates a production Loader using the real filesystem.
// An empty path selects $LARASTACK_CONFIG or ~/.config/larastack/config.yaml.
func NewLoader(path string) *Loader {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	return &Loader{fs: ConfigFileReader{}, path: path}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem, path string) *Loader {
	return &Loader{fs: fs, path: path}
}

// Load reads the dotfile and merges it with defaults. Dotfile values override defaults.
// Returns default config if the default dotfile doesn't exist. An explicitly named
// file that doesn't exist is an error.
//
// NOTE: The YAML document is decoded into a generic map first and then applied over
// the default configuration with mapstructure, so present keys overwrite defaults
// (even if zero) while missing keys leave the defaults untouched.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := l.path
	explicit := configPath != ""
	if !explicit {
		homeDir, err := l.fs.UserHomeDir()
		if err != nil {
			return cfg, nil // Use defaults if can't get home dir
		}
		configPath = filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)
	}

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, &LoadError{Path: configPath, Cause: err}
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: configPath, Cause: err}
	}

	if err := decodeInto(cfg, raw); err != nil {
		return nil, &LoadError{Path: configPath, Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeInto applies raw over cfg. Strings such as "8081" are accepted for numeric
// fields; unknown keys are rejected.
func decodeInto(cfg *Config, raw map[string]any) error {
	if raw == nil {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// LoadError is returned when the dotfile cannot be read or parsed.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load is a convenience function using the default loader
func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}
