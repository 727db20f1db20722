package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Build    BuildConfig    `yaml:"build"`
	Source   SourceConfig   `yaml:"source"`
	Prompt   PromptConfig   `yaml:"prompt"`
	Commands CommandsConfig `yaml:"commands"`
	UI       UIConfig       `yaml:"ui"`
}

// BuildConfig is the static record of values offered as defaults while provisioning.
type BuildConfig struct {
	WorkingDirectory  string         `yaml:"working_directory"`   // Default: /var/www
	AppExternalPort   int            `yaml:"app_external_port"`   // Default: 8080
	MysqlExternalPort int            `yaml:"mysql_external_port"` // Default: 3306
	MysqlPasswordMin  int            `yaml:"mysql_password_min"`  // Default: 7
	Settings          SettingsConfig `yaml:"settings"`
}

// SettingsConfig holds raw settings blobs written verbatim into the project.
type SettingsConfig struct {
	App      string `yaml:"app"`      // php/local.ini
	Database string `yaml:"database"` // mysql/my.cnf
}

// SourceConfig describes where the application skeleton and templates come from.
type SourceConfig struct {
	RepositoryURL string          `yaml:"repository_url"`
	Templates     TemplatesConfig `yaml:"templates"`
}

// TemplatesConfig names the template files, relative to the source path.
type TemplatesConfig struct {
	Compose    string `yaml:"compose"`
	Dockerfile string `yaml:"dockerfile"`
	WebServer  string `yaml:"web_server"`
	Env        string `yaml:"env"`
}

type PromptConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Default: 5
}

type CommandsConfig struct {
	TimeoutSeconds        int      `yaml:"timeout_seconds"`          // Default: 1800
	MaxOutputSize         int64    `yaml:"max_output_size"`          // Default: 1MB
	GracefulShutdownMs    int      `yaml:"graceful_shutdown_ms"`     // Default: 2000
	DockerRetryAttempts   int      `yaml:"docker_retry_attempts"`    // Default: 10
	DockerRetryIntervalMs int      `yaml:"docker_retry_interval_ms"` // Default: 1000
	MinComposeVersion     string   `yaml:"min_compose_version"`      // Default: 2.0.0
	FixOwnership          bool     `yaml:"fix_ownership"`            // Default: true
	DockerStartCommand    []string `yaml:"docker_start_command"`     // Default: empty (never start)
}

type UIConfig struct {
	ColorInfo    string `yaml:"color_info"`
	ColorSuccess string `yaml:"color_success"`
	ColorError   string `yaml:"color_error"`
	ColorPrompt  string `yaml:"color_prompt"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			WorkingDirectory:  "/var/www",
			AppExternalPort:   8080,
			MysqlExternalPort: 3306,
			MysqlPasswordMin:  7,
			Settings: SettingsConfig{
				App:      "upload_max_filesize=40M\npost_max_size=40M",
				Database: "[mysqld]\ngeneral_log = 1\ngeneral_log_file = /var/lib/mysql/general.log",
			},
		},
		Source: SourceConfig{
			RepositoryURL: "https://github.com/laravel/laravel.git",
			Templates: TemplatesConfig{
				Compose:    "templates/docker-compose.yml.tmpl",
				Dockerfile: "templates/Dockerfile.tmpl",
				WebServer:  "templates/nginx.conf.tmpl",
				Env:        "templates/env.tmpl",
			},
		},
		Prompt: PromptConfig{
			MaxAttempts: 5,
		},
		Commands: CommandsConfig{
			TimeoutSeconds:        1800,
			MaxOutputSize:         1024 * 1024,
			GracefulShutdownMs:    2000,
			DockerRetryAttempts:   10,
			DockerRetryIntervalMs: 1000,
			MinComposeVersion:     "2.0.0",
			FixOwnership:          true,
		},
		UI: UIConfig{
			ColorInfo:    "11",
			ColorSuccess: "10",
			ColorError:   "9",
			ColorPrompt:  "7",
		},
	}
}
