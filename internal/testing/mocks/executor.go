package mocks

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Cyclone1070/larastack/internal/tool/executor"
)

// MockCommandExecutor records commands and answers them from Responses,
// keyed by the space-joined command. Unknown commands succeed with no output.
type MockCommandExecutor struct {
	mu sync.Mutex

	Responses map[string]*executor.Result
	Errors    map[string]error
	Commands  []string
	Dirs      []string
}

// NewMockCommandExecutor creates an executor where Docker is up and compose is v2.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Responses: map[string]*executor.Result{
			"docker compose version --short": {Stdout: "2.24.6\n"},
		},
		Errors: map[string]error{},
	}
}

func (m *MockCommandExecutor) respond(cmd []string, dir string) (*executor.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.Join(cmd, " ")
	m.Commands = append(m.Commands, key)
	m.Dirs = append(m.Dirs, dir)

	res := &executor.Result{}
	if r, ok := m.Responses[key]; ok {
		copied := *r
		res = &copied
	}
	return res, m.Errors[key]
}

func (m *MockCommandExecutor) Run(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.respond(cmd, dir)
}

func (m *MockCommandExecutor) RunWithTimeout(ctx context.Context, cmd []string, dir string, env []string, timeout time.Duration) (*executor.Result, error) {
	return m.Run(ctx, cmd, dir, env)
}

// Ran reports whether command was executed.
func (m *MockCommandExecutor) Ran(command string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.Commands {
		if c == command {
			return true
		}
	}
	return false
}
