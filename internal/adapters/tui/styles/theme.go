package styles

import (
	"github.com/charmbracelet/lipgloss"

	"logicgrid/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Signal colors
	High    = lipgloss.Color("#22C55E") // Green
	Low     = lipgloss.Color("#4B5563") // Dark gray
	Unknown = Warning

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Canvas
	Canvas = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted)

	GridDot = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#374151"))

	GateBody = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")). // Blue
			Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(Primary)

	Cursor = lipgloss.NewStyle().
		Background(Primary).
		Foreground(White).
		Bold(true)

	Selected = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Bold(true)

	// Side panel
	Panel = lipgloss.NewStyle().
		PaddingLeft(2)

	ModeBadge = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// SignalColor returns the color a signal is drawn in
func SignalColor(v domain.Signal) lipgloss.Color {
	switch v {
	case domain.High:
		return High
	case domain.Low:
		return Low
	default:
		return Unknown
	}
}

// Signal returns the style for wires and lamps carrying v
func Signal(v domain.Signal) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SignalColor(v))
}
