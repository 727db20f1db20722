package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// Build defaults
	if strings.TrimSpace(c.Build.WorkingDirectory) == "" {
		errs = append(errs, "build.working_directory must not be empty")
	}
	if !validPort(c.Build.AppExternalPort) {
		errs = append(errs, "build.app_external_port must be between 1 and 65535")
	}
	if !validPort(c.Build.MysqlExternalPort) {
		errs = append(errs, "build.mysql_external_port must be between 1 and 65535")
	}
	if c.Build.MysqlPasswordMin < 1 {
		errs = append(errs, "build.mysql_password_min must be >= 1")
	}

	// Source
	if strings.TrimSpace(c.Source.RepositoryURL) == "" {
		errs = append(errs, "source.repository_url must not be empty")
	}
	templates := []struct {
		key   string
		value string
	}{
		{"source.templates.compose", c.Source.Templates.Compose},
		{"source.templates.dockerfile", c.Source.Templates.Dockerfile},
		{"source.templates.web_server", c.Source.Templates.WebServer},
		{"source.templates.env", c.Source.Templates.Env},
	}
	for _, tmpl := range templates {
		if strings.TrimSpace(tmpl.value) == "" {
			errs = append(errs, tmpl.key+" must not be empty")
		}
	}

	// Prompt
	if c.Prompt.MaxAttempts < 1 {
		errs = append(errs, "prompt.max_attempts must be >= 1")
	}

	// Commands
	if c.Commands.TimeoutSeconds < 1 {
		errs = append(errs, "commands.timeout_seconds must be >= 1")
	}
	if c.Commands.MaxOutputSize < 1 {
		errs = append(errs, "commands.max_output_size must be >= 1")
	}
	if c.Commands.GracefulShutdownMs < 1 {
		errs = append(errs, "commands.graceful_shutdown_ms must be >= 1")
	}
	if c.Commands.DockerRetryAttempts < 1 {
		errs = append(errs, "commands.docker_retry_attempts must be >= 1")
	}
	if c.Commands.DockerRetryIntervalMs < 1 {
		errs = append(errs, "commands.docker_retry_interval_ms must be >= 1")
	}
	if c.Commands.MinComposeVersion != "" {
		if _, err := semver.NewVersion(c.Commands.MinComposeVersion); err != nil {
			errs = append(errs, "commands.min_compose_version must be a semantic version")
		}
	}

	// UI colors
	colors := []struct {
		key   string
		value string
	}{
		{"ui.color_info", c.UI.ColorInfo},
		{"ui.color_success", c.UI.ColorSuccess},
		{"ui.color_error", c.UI.ColorError},
		{"ui.color_prompt", c.UI.ColorPrompt},
	}
	for _, color := range colors {
		if color.value == "" {
			errs = append(errs, color.key+" must not be empty")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

func validPort(port int) bool {
	return port >= 1 && port <= 65535
}
