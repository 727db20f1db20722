package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Cyclone1070/larastack/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Console implements UserInterface as a line-oriented terminal session.
type Console struct {
	in       *bufio.Reader
	inFd     int // -1 when input is not a file
	out      io.Writer
	styles   Styles
	renderer MarkdownRenderer
	spinner  SpinnerFactory

	// interactive enables the animated spinner; it requires a terminal on out.
	interactive bool

	// pending holds a line read that outlived a cancelled prompt.
	pending chan lineResult

	// Terminal wrappers for testability
	readPassword func(fd int) ([]byte, error)
	getState     func(fd int) (*term.State, error)
	restore      func(fd int, state *term.State) error
}

type lineResult struct {
	line string
	err  error
}

// NewConsole creates a Console reading from in and writing to out.
// Terminal features are enabled only when in and out are terminals.
func NewConsole(in io.Reader, out io.Writer, cfg *config.Config, renderer MarkdownRenderer, spinnerFactory SpinnerFactory) *Console {
	if cfg == nil {
		panic("cfg is required")
	}
	c := &Console{
		in:       bufio.NewReader(in),
		inFd:     -1,
		out:      out,
		styles:   NewStyles(lipgloss.NewRenderer(out), cfg.UI),
		renderer: renderer,
		spinner:  spinnerFactory,

		readPassword: term.ReadPassword,
		getState:     term.GetState,
		restore:      term.Restore,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.inFd = int(f.Fd())
	}
	if f, ok := out.(*os.File); ok && spinnerFactory != nil {
		c.interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return c
}

// ReadInput prompts the operator for a line of text
func (c *Console) ReadInput(ctx context.Context, prompt string) (string, error) {
	c.writePrompt(prompt)
	line, err := c.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword prompts for a secret. On a terminal echo is disabled;
// otherwise the line is read as is. Lines already typed ahead into the line
// buffer are consumed from it before the terminal is read directly.
func (c *Console) ReadPassword(ctx context.Context, prompt string) (string, error) {
	c.writePrompt(prompt)
	if c.inFd < 0 || c.pending != nil || c.in.Buffered() > 0 {
		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	// ReadPassword restores echo only when its read returns, so a cancelled
	// prompt restores the saved state itself.
	state, err := c.getState(c.inFd)
	if err != nil {
		return "", err
	}

	result := make(chan lineResult, 1)
	go func() {
		b, err := c.readPassword(c.inFd)
		result <- lineResult{line: string(b), err: err}
	}()

	select {
	case <-ctx.Done():
		_ = c.restore(c.inFd, state)
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	case r := <-result:
		fmt.Fprintln(c.out)
		return r.line, r.err
	}
}

// ReadConfirm prompts for a Y/N answer
func (c *Console) ReadConfirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := c.ReadInput(ctx, prompt)
	if err != nil {
		return false, err
	}
	return answer == "Y" || answer == "y", nil
}

// WriteStatus writes a colored line
func (c *Console) WriteStatus(phase Phase, message string) {
	fmt.Fprintln(c.out, c.styles.For(phase).Render(message))
}

// WriteMessage renders markdown, falling back to the raw text
func (c *Console) WriteMessage(content string) {
	if c.renderer != nil {
		if rendered, err := c.renderer.Render(content); err == nil {
			fmt.Fprint(c.out, rendered)
			return
		}
	}
	fmt.Fprintln(c.out, content)
}

// RunTask runs fn behind a spinner when attached to a terminal.
// Without one, the title is printed as an info line.
func (c *Console) RunTask(ctx context.Context, title string, fn func(context.Context) error) error {
	if !c.interactive {
		c.WriteStatus(PhaseInfo, title)
		return fn(ctx)
	}

	program := tea.NewProgram(
		newTaskModel(c.spinner(), title, c.styles),
		tea.WithOutput(c.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	result := make(chan error, 1)
	go func() {
		err := fn(ctx)
		result <- err
		program.Send(taskDoneMsg{err: err})
	}()

	if _, err := program.Run(); err != nil {
		// The terminal failed, not the task; keep waiting for the task.
		fmt.Fprintln(c.out, c.styles.Info.Render(title))
	}
	return <-result
}

func (c *Console) writePrompt(prompt string) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(prompt))
}

// readLine returns the next input line. A read abandoned by a cancelled
// context is resumed by the next call rather than racing a second reader.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if c.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := c.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		c.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-c.pending:
		c.pending = nil
		if r.err != nil && !(errors.Is(r.err, io.EOF) && r.line != "") {
			return "", r.err
		}
		return r.line, nil
	}
}
