package shell

import (
	"fmt"
	"strings"
	"time"
)

// TimeoutError is returned when a command exceeds its timeout.
type TimeoutError struct {
	Command  []string
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command %q timed out after %v", strings.Join(e.Command, " "), e.Duration)
}

func (e *TimeoutError) Timeout() bool {
	return true
}

// ExitStatusError is returned when a command exits with a non-zero status.
// Stderr holds the last lines the command wrote.
type ExitStatusError struct {
	Command  []string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ExitStatusError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", strings.Join(e.Command, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ExitStatusError) Unwrap() error {
	return e.Cause
}

func (e *ExitStatusError) IOError() bool {
	return true
}

// DockerNotReadyError is returned when the Docker daemon does not answer.
type DockerNotReadyError struct {
	Attempts int
	Cause    error
}

func (e *DockerNotReadyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docker is not ready after %d checks: %v", e.Attempts, e.Cause)
	}
	return fmt.Sprintf("docker is not ready after %d checks", e.Attempts)
}

func (e *DockerNotReadyError) Unwrap() error {
	return e.Cause
}

// ComposeVersionError is returned when the installed compose plugin is missing or too old.
type ComposeVersionError struct {
	Found    string
	Required string
	Cause    error
}

func (e *ComposeVersionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot determine docker compose version (need >= %s): %v", e.Required, e.Cause)
	}
	return fmt.Sprintf("docker compose %s is older than required %s", e.Found, e.Required)
}

func (e *ComposeVersionError) Unwrap() error {
	return e.Cause
}

// EnvParseError is returned when an env file has an invalid format.
type EnvParseError struct {
	Name    string
	Line    int
	Content string
}

func (e *EnvParseError) Error() string {
	return fmt.Sprintf("invalid line %d in env file %s: %s", e.Line, e.Name, e.Content)
}

func (e *EnvParseError) InvalidInput() bool {
	return true
}
