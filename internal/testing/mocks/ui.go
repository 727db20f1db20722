package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/Cyclone1070/larastack/internal/ui"
)

// Status is one line written through WriteStatus.
type Status struct {
	Phase   ui.Phase
	Message string
}

// MockUI answers prompts from a scripted queue and records everything written.
// ReadInput, ReadPassword and ReadConfirm all consume the same queue in order;
// an exhausted queue yields io.EOF.
type MockUI struct {
	mu sync.Mutex

	Answers  []string
	Prompts  []string
	Statuses []Status
	Messages []string
	Tasks    []string

	// RunTaskFunc replaces the default of calling fn directly.
	RunTaskFunc func(ctx context.Context, title string, fn func(context.Context) error) error
}

// NewMockUI creates a MockUI that will answer with answers.
func NewMockUI(answers ...string) *MockUI {
	return &MockUI{Answers: answers}
}

func (m *MockUI) next(prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
	if len(m.Answers) == 0 {
		return "", io.EOF
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}

func (m *MockUI) ReadInput(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.next(prompt)
}

func (m *MockUI) ReadPassword(ctx context.Context, prompt string) (string, error) {
	return m.ReadInput(ctx, prompt)
}

func (m *MockUI) ReadConfirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := m.ReadInput(ctx, prompt)
	if err != nil {
		return false, err
	}
	return answer == "Y" || answer == "y", nil
}

func (m *MockUI) WriteStatus(phase ui.Phase, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Statuses = append(m.Statuses, Status{Phase: phase, Message: message})
}

func (m *MockUI) WriteMessage(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, content)
}

func (m *MockUI) RunTask(ctx context.Context, title string, fn func(context.Context) error) error {
	m.mu.Lock()
	m.Tasks = append(m.Tasks, title)
	m.mu.Unlock()
	if m.RunTaskFunc != nil {
		return m.RunTaskFunc(ctx, title, fn)
	}
	return fn(ctx)
}

// StatusMessages returns the messages written with phase.
func (m *MockUI) StatusMessages(phase ui.Phase) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, s := range m.Statuses {
		if s.Phase == phase {
			out = append(out, s.Message)
		}
	}
	return out
}
