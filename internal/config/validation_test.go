package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Build(t *testing.T) {
	t.Run("Empty Working Directory Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Build.WorkingDirectory = "  "
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "working_directory")
	})

	t.Run("Port Out Of Range Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Build.AppExternalPort = 70000
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "app_external_port")
	})

	t.Run("Zero Mysql Port Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Build.MysqlExternalPort = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mysql_external_port")
	})

	t.Run("Zero Password Minimum Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Build.MysqlPasswordMin = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mysql_password_min")
	})
}

func TestValidate_Source(t *testing.T) {
	t.Run("Empty Repository Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Source.RepositoryURL = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "repository_url")
	})

	t.Run("Empty Template Name Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Source.Templates.WebServer = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "source.templates.web_server")
	})
}

func TestValidate_Commands(t *testing.T) {
	t.Run("Zero Docker Retry Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Commands.DockerRetryAttempts = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "docker_retry_attempts")
	})

	t.Run("Invalid Compose Version Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Commands.MinComposeVersion = "two"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "min_compose_version")
	})

	t.Run("Empty Compose Version Disables Check", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Commands.MinComposeVersion = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidate_MultipleErrors_ReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prompt.MaxAttempts = 0
	cfg.Commands.TimeoutSeconds = 0
	cfg.UI.ColorError = ""

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prompt.max_attempts")
	assert.Contains(t, err.Error(), "commands.timeout_seconds")
	assert.Contains(t, err.Error(), "ui.color_error")
}
