package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// taskDoneMsg reports that the background task returned.
type taskDoneMsg struct {
	err error
}

// taskModel shows a spinner next to a task title until the task finishes.
type taskModel struct {
	spinner spinner.Model
	title   string
	styles  Styles

	done bool
	err  error
}

func newTaskModel(sp spinner.Model, title string, styles Styles) taskModel {
	return taskModel{spinner: sp, title: title, styles: styles}
}

func (m taskModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m taskModel) View() string {
	switch {
	case !m.done:
		return m.spinner.View() + " " + m.styles.Info.Render(m.title) + "\n"
	case m.err != nil:
		return m.styles.Error.Render("✖ "+m.title) + "\n"
	default:
		return m.styles.Success.Render("✔ "+m.title) + "\n"
	}
}
