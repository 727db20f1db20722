package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Cyclone1070/larastack/internal/config"
	"github.com/sirupsen/logrus"
)

// Result represents the outcome of a command execution.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
	Duration  time.Duration
}

// OSCommandExecutor implements command execution using os/exec for real system commands.
type OSCommandExecutor struct {
	config *config.Config
	log    logrus.FieldLogger
}

// NewOSCommandExecutor creates a new OSCommandExecutor with injected config and logger.
func NewOSCommandExecutor(cfg *config.Config, log logrus.FieldLogger) *OSCommandExecutor {
	if cfg == nil {
		panic("cfg is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &OSCommandExecutor{config: cfg, log: log}
}

// Run executes a command and returns the result. It buffers output internally.
// A non-zero exit status is returned as the *exec.ExitError from Wait together with the result.
func (f *OSCommandExecutor) Run(ctx context.Context, command []string, dir string, env []string) (*Result, error) {
	if len(command) == 0 {
		return nil, os.ErrInvalid
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	stdout, stderr := f.prepare(cmd, dir, env)

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	err := cmd.Wait()
	res := f.result(stdout, stderr, started, err)
	f.logResult(command, dir, res, err)
	return res, err
}

// RunWithTimeout executes a command with a timeout and graceful shutdown.
func (f *OSCommandExecutor) RunWithTimeout(ctx context.Context, command []string, dir string, env []string, timeout time.Duration) (*Result, error) {
	if len(command) == 0 {
		return nil, os.ErrInvalid
	}

	// We don't use CommandContext's timeout here because we want to handle graceful shutdown
	cmd := exec.Command(command[0], command[1:]...)
	stdout, stderr := f.prepare(cmd, dir, env)

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	grace := time.Duration(f.config.Commands.GracefulShutdownMs) * time.Millisecond
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var execErr error
	select {
	case err := <-done:
		execErr = err
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		execErr = ctx.Err()
	case <-timer.C:
		// Try graceful shutdown
		_ = cmd.Process.Signal(os.Interrupt)
		select {
		case <-done:
		case <-time.After(grace):
			_ = cmd.Process.Kill()
			<-done
		}
		execErr = ErrTimeout
	}

	res := f.result(stdout, stderr, started, execErr)
	if errors.Is(execErr, ErrTimeout) {
		res.ExitCode = -1
	}
	f.logResult(command, dir, res, execErr)
	return res, execErr
}

// prepare wires capped collectors to the command. WaitDelay bounds how long Wait
// keeps draining pipes held open by grandchildren after the process exits.
func (f *OSCommandExecutor) prepare(cmd *exec.Cmd, dir string, env []string) (*collector, *collector) {
	maxBytes := int(f.config.Commands.MaxOutputSize)
	stdout := newCollector(maxBytes)
	stderr := newCollector(maxBytes)

	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = nil
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = time.Duration(f.config.Commands.GracefulShutdownMs) * time.Millisecond
	return stdout, stderr
}

func (f *OSCommandExecutor) result(stdout, stderr *collector, started time.Time, err error) *Result {
	return &Result{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		ExitCode:  f.getExitCode(err),
		Truncated: stdout.Truncated() || stderr.Truncated(),
		Duration:  time.Since(started),
	}
}

func (f *OSCommandExecutor) logResult(command []string, dir string, res *Result, err error) {
	entry := f.log.WithFields(logrus.Fields{
		"command":   strings.Join(command, " "),
		"dir":       dir,
		"exit_code": res.ExitCode,
		"duration":  res.Duration.Round(time.Millisecond),
	})
	if err != nil {
		entry.WithError(err).Debug("command failed")
		return
	}
	entry.Debug("command finished")
}

func (f *OSCommandExecutor) getExitCode(err error) int {
	if err == nil {
		return 0
	}
	type exitCoder interface {
		ExitCode() int
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}
