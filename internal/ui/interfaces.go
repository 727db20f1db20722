package ui

import "context"

// Phase tags a status line with its semantic color.
type Phase string

const (
	PhaseInfo    Phase = "info"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// UserInterface defines the contract for all operator interactions.
// It follows a Read/Write pattern for clarity.
//
// Context Usage:
// Blocking methods accept context.Context for cancellation support.
// If the operator interrupts (Ctrl+C), the context is cancelled
// and implementations return immediately with the context's error.
type UserInterface interface {
	// ReadInput prompts for a line of text. Surrounding whitespace is trimmed.
	ReadInput(ctx context.Context, prompt string) (string, error)

	// ReadPassword prompts for a line without echoing it.
	ReadPassword(ctx context.Context, prompt string) (string, error)

	// ReadConfirm prompts for a Y/N answer; only "Y" or "y" confirms.
	ReadConfirm(ctx context.Context, prompt string) (bool, error)

	// WriteStatus writes one colored line.
	WriteStatus(phase Phase, message string)

	// WriteMessage renders markdown content.
	WriteMessage(content string)

	// RunTask runs fn while showing title as in-progress work.
	RunTask(ctx context.Context, title string, fn func(context.Context) error) error
}

// MarkdownRenderer turns markdown into terminal output.
type MarkdownRenderer interface {
	Render(content string) (string, error)
}
