package provision

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/larastack/internal/config"
	"github.com/Cyclone1070/larastack/internal/render"
	"github.com/Cyclone1070/larastack/internal/ui"
	"github.com/sirupsen/logrus"
)

// Options tune a run beyond the loaded configuration.
type Options struct {
	// Owner receives ownership of the project after dependency install.
	// Empty skips the ownership fix.
	Owner string
	// AssumeYes answers every conflict prompt with yes.
	AssumeYes bool
}

// Engine runs the provisioning pipeline for one project.
type Engine struct {
	cfg      *config.Config
	ui       ui.UserInterface
	fs       fileSystem
	launcher launcher
	cloner   cloner
	log      logrus.FieldLogger
	owner    string
	policy   *conflictPolicy
}

// NewEngine creates an Engine with injected dependencies.
func NewEngine(
	cfg *config.Config,
	userInterface ui.UserInterface,
	fs fileSystem,
	l launcher,
	c cloner,
	log logrus.FieldLogger,
	opts Options,
) *Engine {
	if cfg == nil {
		panic("cfg is required")
	}
	if userInterface == nil {
		panic("userInterface is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	if l == nil {
		panic("launcher is required")
	}
	if c == nil {
		panic("cloner is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &Engine{
		cfg:      cfg,
		ui:       userInterface,
		fs:       fs,
		launcher: l,
		cloner:   c,
		log:      log,
		owner:    opts.Owner,
		policy:   &conflictPolicy{ui: userInterface, assumeYes: opts.AssumeYes},
	}
}

// Steps returns the pipeline in execution order.
func (e *Engine) Steps() []Step {
	return []Step{
		{Name: "clone", Run: e.cloneSource},
		{Name: "install", Run: e.installDependencies},
		{Name: "compose", Run: e.writeCompose},
		{Name: "dockerfile", Run: e.writeDockerfile},
		{Name: "php", Run: e.writeAppSettings},
		{Name: "nginx", Run: e.writeWebServer},
		{Name: "mysql", Run: e.writeDatabaseSettings},
		{Name: "env", Run: e.writeEnv},
		{Name: "launch", Run: e.launch},
	}
}

// Run executes every step in order. It stops at the first step that aborts
// or fails; failures are reported to the operator before returning.
func (e *Engine) Run(ctx context.Context, req Request) error {
	pc, err := e.newContext(req)
	if err != nil {
		e.ui.WriteStatus(ui.PhaseError, err.Error())
		return err
	}

	for _, step := range e.Steps() {
		log := e.log.WithField("step", step.Name)
		log.Debug("step started")

		outcome, err := step.Run(ctx, pc)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				e.ui.WriteStatus(ui.PhaseError, msgStopped)
			} else {
				e.ui.WriteStatus(ui.PhaseError, err.Error())
			}
			log.WithError(err).Debug("step failed")
			return &StepError{Step: step.Name, Cause: err}
		}
		if outcome == Abort {
			log.Debug("step aborted")
			return ErrAborted
		}
	}
	return nil
}

func (e *Engine) newContext(req Request) (*Context, error) {
	if req.Path == "" {
		return nil, &InvalidRequestError{Field: "path", Reason: "is required"}
	}
	switch {
	case req.AppName == "":
		return nil, &InvalidRequestError{Field: "appName", Reason: "is required"}
	case req.AppName == "." || req.AppName == ".." || strings.ContainsAny(req.AppName, `/\`):
		return nil, &InvalidRequestError{Field: "appName", Reason: "must be a plain directory name"}
	}

	path, err := filepath.Abs(req.Path)
	if err != nil {
		return nil, &InvalidRequestError{Field: "path", Reason: err.Error()}
	}

	return &Context{
		Path:    path,
		AppName: req.AppName,
		Root:    filepath.Join(path, req.AppName),
		Source:  render.NewSource(req.SourcePath, e.cfg.Source.Templates, e.fs),
	}, nil
}
