package provision

import (
	"context"

	"github.com/Cyclone1070/larastack/internal/render"
)

// Request holds the arguments of one provisioning run.
type Request struct {
	Path       string // parent directory of the project
	AppName    string // project directory name
	SourcePath string // template directory; empty selects the built-in templates
}

// Context is the state accumulated across the pipeline of one run.
type Context struct {
	Path    string
	AppName string
	Root    string

	WorkingDir string
	AppPort    int
	DBPort     int
	DBName     string
	DBPassword string

	Source render.Source

	// Written lists generated artifacts relative to Root, in write order.
	Written []string
	// Notes collects launcher notes such as started containers.
	Notes []string
}

// Outcome tells the pipeline whether to go on after a step.
type Outcome int

const (
	Continue Outcome = iota
	Abort
)

func (o Outcome) String() string {
	if o == Abort {
		return "abort"
	}
	return "continue"
}

// Step is a named unit of provisioning work. A non-nil error is a
// collaborator failure; Abort means the operator stopped the run.
type Step struct {
	Name string
	Run  func(ctx context.Context, pc *Context) (Outcome, error)
}
