package gitutil

import "fmt"

// CloneError is returned when cloning the application skeleton fails.
type CloneError struct {
	URL   string
	Dir   string
	Cause error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("failed to clone %s into %s: %v", e.URL, e.Dir, e.Cause)
}

func (e *CloneError) Unwrap() error {
	return e.Cause
}

func (e *CloneError) IOError() bool {
	return true
}
