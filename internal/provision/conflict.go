package provision

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/larastack/internal/ui"
)

const msgStopped = "Installation stopped"

// conflictPolicy decides whether a run may reuse a target that already exists.
type conflictPolicy struct {
	ui        ui.UserInterface
	assumeYes bool
}

// confirm asks the operator and reports the stop on decline.
func (p *conflictPolicy) confirm(ctx context.Context, prompt string) (Outcome, error) {
	if p.assumeYes {
		return Continue, nil
	}

	ok, err := p.ui.ReadConfirm(ctx, prompt)
	if err != nil {
		return Abort, fmt.Errorf("failed to get operator confirmation: %w", err)
	}
	if !ok {
		p.ui.WriteStatus(ui.PhaseError, msgStopped)
		return Abort, nil
	}
	return Continue, nil
}

// CheckExisting applies the policy to a target that already exists.
func (p *conflictPolicy) CheckExisting(ctx context.Context, path string) (Outcome, error) {
	return p.confirm(ctx, fmt.Sprintf("Directory \"%s\" already exists. Continue? Y/N ", path))
}

// CheckMissing asks whether an absent parent directory may be created.
func (p *conflictPolicy) CheckMissing(ctx context.Context, path string) (Outcome, error) {
	return p.confirm(ctx, fmt.Sprintf("Directory \"%s\" is not exists. Create it? Y/N ", path))
}

// makeDir creates path. An existing path is a conflict resolved by the policy;
// any other failure halts the step.
func (e *Engine) makeDir(ctx context.Context, path string) (Outcome, error) {
	err := e.fs.MakeDir(path)
	switch {
	case err == nil:
		return Continue, nil
	case isExists(err):
		return e.policy.CheckExisting(ctx, path)
	default:
		return Abort, err
	}
}
