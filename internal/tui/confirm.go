package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "charm.land/bubbletea/v2"

	"tasnim.dev/netlab/internal/tui/theme"
)

// ConfirmModel asks a yes/no question. Anything but y declines.
type ConfirmModel struct {
	title     string
	details   []string
	answered  bool
	confirmed bool
}

func NewConfirmModel(title string, details ...string) ConfirmModel {
	return ConfirmModel{title: title, details: details}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.answered = true
		m.confirmed = true
		return m, tea.Quit
	case "n", "N", "q", "esc", "enter", "ctrl+c":
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() tea.View {
	if m.answered {
		answer := theme.MutedStyle.Render("aborted")
		if m.confirmed {
			answer = theme.SuccessStyle.Render("confirmed")
		}
		return tea.NewView(answer + "\n")
	}

	var body strings.Builder
	body.WriteString(theme.ErrorStyle.Render(m.title))
	for _, d := range m.details {
		body.WriteString("\n  " + d)
	}

	content := theme.DangerBoxStyle.Render(body.String()) + "\n" +
		theme.HelpStyle.Render("y confirm • n/enter abort")
	return tea.NewView(content + "\n")
}

// Confirmed reports whether the user answered yes.
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Confirm runs a ConfirmModel on the given terminal streams.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, title string, details ...string) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(title, details...),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	m, ok := final.(ConfirmModel)
	return ok && m.Confirmed(), nil
}
