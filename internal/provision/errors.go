package provision

import (
	"errors"
	"fmt"
)

// ErrAborted is returned when the operator declines to continue.
var ErrAborted = errors.New("installation stopped by operator")

// ValidationError is returned when the operator gives no valid value within the allowed attempts.
type ValidationError struct {
	Field    string
	Attempts int
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: no valid value after %d attempts: %s", e.Field, e.Attempts, e.Reason)
}

func (e *ValidationError) InvalidInput() bool {
	return true
}

// InvalidRequestError is returned when a run is started with unusable arguments.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidRequestError) InvalidInput() bool {
	return true
}

// StepError wraps the failure that halted a provisioning step.
type StepError struct {
	Step  string
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// ArtifactError is returned when a rendered artifact is not well formed.
type ArtifactError struct {
	Name  string
	Cause error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("rendered %s is invalid: %v", e.Name, e.Cause)
}

func (e *ArtifactError) Unwrap() error {
	return e.Cause
}

func (e *ArtifactError) InvalidInput() bool {
	return true
}

type existsError interface {
	Exists() bool
}

type notFoundError interface {
	NotFound() bool
}

func isExists(err error) bool {
	var e existsError
	return errors.As(err, &e) && e.Exists()
}

func isNotFound(err error) bool {
	var e notFoundError
	return errors.As(err, &e) && e.NotFound()
}
