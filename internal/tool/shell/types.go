package shell

import "github.com/Cyclone1070/larastack/internal/config"

// DockerConfig contains configuration for Docker readiness checks.
type DockerConfig struct {
	CheckCommand    []string // e.g., ["docker", "info"]
	StartCommand    []string // e.g., ["systemctl", "start", "docker"]; empty means never start
	RetryAttempts   int
	RetryIntervalMs int
}

// NewDockerConfig builds the readiness settings from the loaded configuration.
func NewDockerConfig(cfg *config.Config) DockerConfig {
	return DockerConfig{
		CheckCommand:    []string{"docker", "info"},
		StartCommand:    cfg.Commands.DockerStartCommand,
		RetryAttempts:   cfg.Commands.DockerRetryAttempts,
		RetryIntervalMs: cfg.Commands.DockerRetryIntervalMs,
	}
}
