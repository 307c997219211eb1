package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"logicgrid/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel is a yes/no prompt shown in place of the status line
// while a destructive action waits for an answer.
type ConfirmationModel struct {
	Question string
	Active   bool
	Keys     ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// Ask activates the prompt
func (m *ConfirmationModel) Ask(question string) {
	m.Question = question
	m.Active = true
}

// HandleKeyMsg processes key messages while the prompt is active.
// Returns (handled, cmd) where handled is true if the key was processed.
// The prompt closes on either answer.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.Active = false
		return true, func() tea.Msg { return onCancel() }
	case key.Matches(msg, m.Keys.Confirm):
		m.Active = false
		return true, func() tea.Msg { return onConfirm() }
	}
	return false, nil
}

// View renders the prompt
func (m *ConfirmationModel) View() string {
	if !m.Active {
		return ""
	}
	return RenderConfirmPrompt(m.Question)
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(styles.ErrorMsg.Render(question))
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
