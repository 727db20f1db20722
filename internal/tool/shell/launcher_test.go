package shell

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Cyclone1070/larastack/internal/config"
	"github.com/Cyclone1070/larastack/internal/tool/executor"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLauncher(runner commandExecutor) *Launcher {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.DefaultConfig()
	cfg.Commands.TimeoutSeconds = 30
	return NewLauncher(runner, cfg, log)
}

func dockerInfoOK(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error) {
	return &executor.Result{ExitCode: 0}, nil
}

func TestLauncher_Run_Success(t *testing.T) {
	var gotTimeout time.Duration
	runner := &mockCommandExecutorForDocker{
		runWithTimeoutFunc: func(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error) {
			gotTimeout = timeout
			return &executor.Result{Stdout: "ok", ExitCode: 0}, nil
		},
	}

	resp, err := newTestLauncher(runner).Run(context.Background(), []string{"sudo", "chown", "-R", "u:u", "/tmp/x/demo"}, "/tmp/x/demo")

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Stdout)
	assert.Equal(t, 30*time.Second, gotTimeout)
	assert.Len(t, runner.calls, 1, "non-docker commands skip the readiness check")
}

func TestLauncher_Run_NonZeroExit(t *testing.T) {
	exitErr := errors.New("exit status 2")
	runner := &mockCommandExecutorForDocker{
		runFunc: dockerInfoOK,
		runWithTimeoutFunc: func(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error) {
			return &executor.Result{Stderr: "l1\nl2\nl3\nl4\nl5\nl6\nl7\n", ExitCode: 2}, exitErr
		},
	}

	resp, err := newTestLauncher(runner).Run(context.Background(), ComposeCommand("build"), "/tmp/x/demo")

	var statusErr *ExitStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 2, statusErr.ExitCode)
	assert.Equal(t, "l3\nl4\nl5\nl6\nl7", statusErr.Stderr)
	assert.ErrorIs(t, err, exitErr)
	assert.Equal(t, 2, resp.ExitCode)
}

func TestLauncher_Run_Timeout(t *testing.T) {
	runner := &mockCommandExecutorForDocker{
		runWithTimeoutFunc: func(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error) {
			return &executor.Result{ExitCode: -1}, executor.ErrTimeout
		},
	}

	_, err := newTestLauncher(runner).Run(context.Background(), []string{"sleep", "100"}, "")

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.True(t, timeoutErr.Timeout())
}

func TestLauncher_Run_StartFailure(t *testing.T) {
	startErr := &executor.CommandError{Cmd: "composer", Cause: errors.New("not found"), Stage: "start"}
	runner := &mockCommandExecutorForDocker{
		runWithTimeoutFunc: func(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error) {
			return nil, startErr
		},
	}

	resp, err := newTestLauncher(runner).Run(context.Background(), []string{"composer"}, "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, startErr)
}

func TestLauncher_Run_DockerCheckedOnce(t *testing.T) {
	infoCalls := 0
	runner := &mockCommandExecutorForDocker{
		runFunc: func(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error) {
			if cmd[1] == "info" {
				infoCalls++
			}
			return &executor.Result{ExitCode: 0}, nil
		},
		runWithTimeoutFunc: func(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error) {
			return &executor.Result{ExitCode: 0}, nil
		},
	}
	launcher := newTestLauncher(runner)

	_, err := launcher.Run(context.Background(), ComposerInstallCommand("/tmp/x/demo"), "/tmp/x/demo")
	require.NoError(t, err)
	_, err = launcher.Run(context.Background(), ComposeCommand("build"), "/tmp/x/demo")
	require.NoError(t, err)

	assert.Equal(t, 1, infoCalls)
}

func TestLauncher_Run_DockerNotReady(t *testing.T) {
	runner := &mockCommandExecutorForDocker{
		runFunc: func(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error) {
			return &executor.Result{ExitCode: 1}, nil
		},
		runWithTimeoutFunc: func(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error) {
			t.Error("command must not run without docker")
			return nil, nil
		},
	}

	_, err := newTestLauncher(runner).Run(context.Background(), ComposeCommand("build"), "")

	var notReady *DockerNotReadyError
	assert.ErrorAs(t, err, &notReady)
}

func TestLauncher_Run_ComposeUpListsContainers(t *testing.T) {
	runner := &mockCommandExecutorForDocker{
		runFunc: func(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error) {
			if len(cmd) > 2 && cmd[len(cmd)-2] == "ps" {
				return &executor.Result{Stdout: "a1\nb2\nc3\n"}, nil
			}
			return &executor.Result{ExitCode: 0}, nil
		},
		runWithTimeoutFunc: func(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error) {
			return &executor.Result{ExitCode: 0}, nil
		},
	}

	resp, err := newTestLauncher(runner).Run(context.Background(), ComposeCommand("up", "-d"), "/tmp/x/demo")

	require.NoError(t, err)
	assert.Equal(t, []string{"Started 3 Docker containers"}, resp.Notes)
}

func TestLauncher_Preflight(t *testing.T) {
	runner := &mockCommandExecutorForDocker{
		runFunc: func(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error) {
			if cmd[1] == "info" {
				return &executor.Result{ExitCode: 0}, nil
			}
			return &executor.Result{Stdout: "1.29.2"}, nil
		},
	}

	err := newTestLauncher(runner).Preflight(context.Background(), "/tmp/x/demo", "2.0.0")

	var versionErr *ComposeVersionError
	assert.ErrorAs(t, err, &versionErr)
}

func TestCommandBuilders(t *testing.T) {
	assert.Equal(t, []string{"docker", "run", "--rm", "-v", "/tmp/x/demo:/app", "composer", "install"}, ComposerInstallCommand("/tmp/x/demo"))
	assert.Equal(t, []string{"sudo", "chown", "-R", "dev:dev", "/tmp/x/demo"}, ChownCommand("dev", "/tmp/x/demo"))
	assert.Equal(t, []string{"docker", "compose", "exec", "-T", "app", "php", "artisan", "key:generate"}, ArtisanCommand("key:generate"))
}
