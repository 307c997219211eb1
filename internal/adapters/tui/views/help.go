package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"logicgrid/internal/adapters/tui/styles"
	"logicgrid/internal/application/commands"
	"logicgrid/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToEditorMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("logicgrid Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Digital logic on a grid"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Cursor"))
	b.WriteString("\n")
	b.WriteString(helpLine("h j k l / arrows", "Move one grid cell"))
	b.WriteString(helpLine("H J K L", "Move five cells"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Modes"))
	b.WriteString("\n")
	b.WriteString(helpLine("s / w / g / o", "Select, wire, gate, lamp"))
	b.WriteString(helpLine("tab", "Next mode"))
	b.WriteString(helpLine("enter", "Select, add wire point, place gate or lamp"))
	b.WriteString(helpLine("f", "Finish the wire being drawn"))
	b.WriteString(helpLine("[ / ]", "Previous / next gate kind"))
	b.WriteString(helpLine("esc", "Drop wire points, back to select"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine("x", "Delete selection"))
	b.WriteString(helpLine("t", "Cycle selected gate kind"))
	b.WriteString(helpLine("0 / 1 / u", "Force selected wire LOW / HIGH / UNKNOWN"))
	b.WriteString(helpLine("p", "Propagate"))
	b.WriteString(helpLine("C", "Clear circuit"))
	b.WriteString(helpLine("y", "Copy report to clipboard"))
	b.WriteString(helpLine(":", "Script console"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Gate kinds"))
	b.WriteString("\n")
	for _, k := range domain.GateKinds {
		res, err := commands.NewTruthTableCommand(k).Execute(context.Background())
		if err != nil {
			continue
		}
		b.WriteString(styles.MutedText.Render("  " + padRight(k.String(), 5) + truthSummary(res.Rows)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

// truthSummary lists outputs for inputs 00, 01, 10, 11.
func truthSummary(rows []commands.TruthRow) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(" " + bit(r.A) + bit(r.B) + "→" + bit(r.Out))
	}
	return b.String()
}

func bit(v domain.Signal) string {
	if v == domain.High {
		return "1"
	}
	return "0"
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
