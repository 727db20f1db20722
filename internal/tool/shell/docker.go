package shell

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// IsDockerCommand checks if the command is a docker command by examining the base name.
// It handles both simple commands ("docker") and full paths ("/usr/bin/docker").
func IsDockerCommand(command []string) bool {
	if len(command) == 0 {
		return false
	}
	return filepath.Base(command[0]) == "docker"
}

// IsDockerComposeUpDetached checks if the command is 'docker compose up' with detached mode (-d or --detach).
func IsDockerComposeUpDetached(command []string) bool {
	if !IsDockerCommand(command) || len(command) < 3 {
		return false
	}

	foundCompose := false
	foundUp := false

	for _, arg := range command[1:] {
		switch {
		case !foundCompose:
			foundCompose = arg == "compose"
		case !foundUp:
			foundUp = arg == "up"
		case arg == "-d" || arg == "--detach":
			return true
		}
	}
	return false
}

// ComposeCommand returns a `docker compose` invocation with args appended.
func ComposeCommand(args ...string) []string {
	return append([]string{"docker", "compose"}, args...)
}

// ArtisanCommand runs an artisan command inside the app service without a TTY.
func ArtisanCommand(args ...string) []string {
	return ComposeCommand(append([]string{"exec", "-T", "app", "php", "artisan"}, args...)...)
}

// ComposerInstallCommand installs PHP dependencies of root in a throwaway composer container.
func ComposerInstallCommand(root string) []string {
	return []string{"docker", "run", "--rm", "-v", root + ":/app", "composer", "install"}
}

// ChownCommand hands root back to owner after container steps left root-owned files.
func ChownCommand(owner, root string) []string {
	return []string{"sudo", "chown", "-R", owner + ":" + owner, root}
}

func dockerAnswers(ctx context.Context, runner commandExecutor, check []string) error {
	res, err := runner.Run(ctx, check, "", nil)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("exit code %d", res.ExitCode)
	}
	return nil
}

// EnsureDockerReady checks if Docker is running and attempts to start it if not.
// After starting Docker it re-checks up to config.RetryAttempts times, config.RetryIntervalMs apart.
// Without a start command a failed check is final.
func EnsureDockerReady(ctx context.Context, runner commandExecutor, config DockerConfig) error {
	lastErr := dockerAnswers(ctx, runner, config.CheckCommand)
	if lastErr == nil {
		return nil
	}
	if len(config.StartCommand) == 0 {
		return &DockerNotReadyError{Attempts: 1, Cause: lastErr}
	}

	if _, err := runner.Run(ctx, config.StartCommand, "", nil); err != nil {
		return &DockerNotReadyError{Attempts: 1, Cause: err}
	}

	ticker := time.NewTicker(time.Duration(config.RetryIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	for range config.RetryAttempts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if lastErr = dockerAnswers(ctx, runner, config.CheckCommand); lastErr == nil {
				return nil
			}
		}
	}

	return &DockerNotReadyError{Attempts: config.RetryAttempts + 1, Cause: lastErr}
}

// CheckComposeVersion fails unless `docker compose version` reports at least required.
// An empty required skips the check.
func CheckComposeVersion(ctx context.Context, runner commandExecutor, dir, required string) (*semver.Version, error) {
	if required == "" {
		return nil, nil
	}
	minVersion, err := semver.NewVersion(required)
	if err != nil {
		return nil, &ComposeVersionError{Required: required, Cause: err}
	}

	res, err := runner.Run(ctx, ComposeCommand("version", "--short"), dir, nil)
	if err != nil {
		return nil, &ComposeVersionError{Required: required, Cause: err}
	}

	raw := strings.TrimSpace(res.Stdout)
	found, err := semver.NewVersion(raw)
	if err != nil {
		return nil, &ComposeVersionError{Found: raw, Required: required, Cause: err}
	}
	if found.LessThan(minVersion) {
		return found, &ComposeVersionError{Found: found.String(), Required: minVersion.String()}
	}
	return found, nil
}

// CollectComposeContainers collects container IDs from a docker compose project in the specified directory.
// It uses 'docker compose ps -q' to get the list of container IDs.
func CollectComposeContainers(ctx context.Context, runner commandExecutor, dir string) ([]string, error) {
	cmd := ComposeCommand("--project-directory", dir, "ps", "-q")
	res, err := runner.Run(ctx, cmd, dir, nil)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, line := range strings.Split(strings.TrimSpace(res.Stdout), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

// FormatContainerStartedNote returns a human-readable note about started containers.
func FormatContainerStartedNote(ids []string) string {
	switch len(ids) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Started 1 Docker container: %s", ids[0])
	default:
		return fmt.Sprintf("Started %d Docker containers", len(ids))
	}
}
