package shell

import (
	"context"
	"time"

	"github.com/Cyclone1070/larastack/internal/tool/executor"
)

// commandExecutor defines the interface for executing shell commands.
type commandExecutor interface {
	Run(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error)
	RunWithTimeout(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error)
}
