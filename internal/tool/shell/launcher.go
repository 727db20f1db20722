package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cyclone1070/larastack/internal/config"
	"github.com/Cyclone1070/larastack/internal/tool/executor"
	"github.com/sirupsen/logrus"
)

// stderrTailLines bounds how much stderr an ExitStatusError carries.
const stderrTailLines = 5

// Response is the outcome of a launched command.
type Response struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
	Duration  time.Duration
	Notes     []string
}

// Launcher runs external commands for a provisioning run and checks their exit status.
// Docker readiness is verified once, before the first docker command.
type Launcher struct {
	runner       commandExecutor
	dockerConfig DockerConfig
	timeout      time.Duration
	log          logrus.FieldLogger

	dockerReady bool
}

// NewLauncher creates a Launcher with injected dependencies.
func NewLauncher(runner commandExecutor, cfg *config.Config, log logrus.FieldLogger) *Launcher {
	if runner == nil {
		panic("runner is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &Launcher{
		runner:       runner,
		dockerConfig: NewDockerConfig(cfg),
		timeout:      time.Duration(cfg.Commands.TimeoutSeconds) * time.Second,
		log:          log,
	}
}

// Run executes command in dir. A non-zero exit status is returned as *ExitStatusError,
// an exceeded timeout as *TimeoutError. For `docker compose up -d` the started
// containers are listed in Response.Notes.
func (l *Launcher) Run(ctx context.Context, command []string, dir string) (*Response, error) {
	if IsDockerCommand(command) {
		if err := l.ensureDocker(ctx); err != nil {
			return nil, err
		}
	}

	result, execErr := l.runner.RunWithTimeout(ctx, command, dir, nil, l.timeout)
	if result == nil {
		if execErr == nil {
			execErr = errors.New("no result")
		}
		return nil, execErr
	}

	resp := &Response{
		Stdout:    result.Stdout,
		Stderr:    result.Stderr,
		ExitCode:  result.ExitCode,
		Truncated: result.Truncated,
		Duration:  result.Duration,
	}

	switch {
	case errors.Is(execErr, executor.ErrTimeout):
		return resp, &TimeoutError{Command: command, Duration: l.timeout}
	case errors.Is(execErr, context.Canceled), errors.Is(execErr, context.DeadlineExceeded):
		return resp, execErr
	case execErr != nil || result.ExitCode != 0:
		return resp, &ExitStatusError{
			Command:  command,
			ExitCode: result.ExitCode,
			Stderr:   tail(result.Stderr, stderrTailLines),
			Cause:    execErr,
		}
	}

	if IsDockerComposeUpDetached(command) {
		ids, err := CollectComposeContainers(ctx, l.runner, dir)
		if err == nil {
			if note := FormatContainerStartedNote(ids); note != "" {
				resp.Notes = append(resp.Notes, note)
			}
		} else {
			resp.Notes = append(resp.Notes, fmt.Sprintf("Warning: Could not list started containers: %v", err))
		}
	}

	l.log.WithField("command", strings.Join(command, " ")).Debug("command succeeded")
	return resp, nil
}

// Preflight makes sure Docker answers and the compose plugin is at least required.
func (l *Launcher) Preflight(ctx context.Context, dir, required string) error {
	if err := l.ensureDocker(ctx); err != nil {
		return err
	}
	found, err := CheckComposeVersion(ctx, l.runner, dir, required)
	if found != nil {
		l.log.WithField("version", found.String()).Debug("docker compose detected")
	}
	return err
}

func (l *Launcher) ensureDocker(ctx context.Context) error {
	if l.dockerReady {
		return nil
	}
	if err := EnsureDockerReady(ctx, l.runner, l.dockerConfig); err != nil {
		return err
	}
	l.dockerReady = true
	return nil
}

func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
