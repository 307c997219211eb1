package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"logicgrid/internal/adapters/tui/views"
	"logicgrid/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewEditor ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state  ViewState
	editor *views.EditorModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application editing ed
func NewApp(ed ports.CircuitEditor) *App {
	return &App{
		state:  ViewEditor,
		editor: views.NewEditorModel(ed),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToEditorMsg:
		a.state = ViewEditor
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewEditor:
		_, cmd = a.editor.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.editor.View()
}
