package views

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"logicgrid/internal/adapters/report"
	"logicgrid/internal/adapters/script"
	"logicgrid/internal/adapters/tui/styles"
	"logicgrid/internal/application/commands"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// Mode decides what enter does at the cursor
type Mode int

const (
	ModeSelect Mode = iota
	ModeWire
	ModeGate
	ModeLamp
)

func (m Mode) String() string {
	switch m {
	case ModeWire:
		return "WIRE"
	case ModeGate:
		return "GATE"
	case ModeLamp:
		return "LAMP"
	default:
		return "SELECT"
	}
}

// EditorKeyMap defines key bindings for the editor view
type EditorKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	FastUp       key.Binding
	FastDown     key.Binding
	FastLeft     key.Binding
	FastRight    key.Binding
	Enter        key.Binding
	Finish       key.Binding
	Cancel       key.Binding
	NextMode     key.Binding
	SelectMode   key.Binding
	WireMode     key.Binding
	GateMode     key.Binding
	LampMode     key.Binding
	PrevKind     key.Binding
	NextKind     key.Binding
	Delete       key.Binding
	Cycle        key.Binding
	ForceLow     key.Binding
	ForceHigh    key.Binding
	ForceUnknown key.Binding
	Propagate    key.Binding
	Clear        key.Binding
	Copy         key.Binding
	Console      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var EditorKeys = EditorKeyMap{
	Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("hjkl", "move")),
	Down:         key.NewBinding(key.WithKeys("j", "down")),
	Left:         key.NewBinding(key.WithKeys("h", "left")),
	Right:        key.NewBinding(key.WithKeys("l", "right")),
	FastUp:       key.NewBinding(key.WithKeys("K", "shift+up")),
	FastDown:     key.NewBinding(key.WithKeys("J", "shift+down")),
	FastLeft:     key.NewBinding(key.WithKeys("H", "shift+left")),
	FastRight:    key.NewBinding(key.WithKeys("L", "shift+right")),
	Enter:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply")),
	Finish:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish wire")),
	Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	NextMode:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode")),
	SelectMode:   key.NewBinding(key.WithKeys("s")),
	WireMode:     key.NewBinding(key.WithKeys("w")),
	GateMode:     key.NewBinding(key.WithKeys("g")),
	LampMode:     key.NewBinding(key.WithKeys("o")),
	PrevKind:     key.NewBinding(key.WithKeys("[")),
	NextKind:     key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "kind")),
	Delete:       key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
	Cycle:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle kind")),
	ForceLow:     key.NewBinding(key.WithKeys("0")),
	ForceHigh:    key.NewBinding(key.WithKeys("1"), key.WithHelp("0/1/u", "force")),
	ForceUnknown: key.NewBinding(key.WithKeys("u")),
	Propagate:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "propagate")),
	Clear:        key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear")),
	Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy report")),
	Console:      key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "console")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ConsoleKeyMap defines key bindings for the script console
type ConsoleKeyMap struct {
	Run   key.Binding
	Close key.Binding
}

var ConsoleKeys = ConsoleKeyMap{
	Run: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

const (
	panelWidth   = 34
	consoleLines = 6
	logLimit     = 200
	fastStep     = 5
)

// EditorModel is the model for the circuit canvas
type EditorModel struct {
	ViewState
	editor ports.CircuitEditor

	mode    Mode
	kind    domain.GateKind
	cursor  Cell
	origin  Cell
	pending []domain.Point

	console     textinput.Model
	consoleOpen bool
	log         []string

	confirm ConfirmationModel
}

// NewEditorModel creates a new editor view model
func NewEditorModel(editor ports.CircuitEditor) *EditorModel {
	input := textinput.New()
	input.Prompt = ": "
	input.Placeholder = "wire 0,0 40,0 · gate AND 60 10 · show"

	return &EditorModel{
		editor:  editor,
		kind:    domain.And,
		console: input,
		confirm: NewConfirmationModel(),
	}
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

type clearConfirmedMsg struct{}

type clearCancelledMsg struct{}

// Init initializes the editor
func (m *EditorModel) Init() tea.Cmd {
	m.SetMessage("Press ? for help", false)
	return nil
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.SetError(msg.err)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case clearConfirmedMsg:
		res, err := commands.NewClearCommand(m.editor).Execute(context.Background())
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		m.pending = nil
		m.SetMessage(res.Message, false)
		return m, nil

	case clearCancelledMsg:
		m.ClearMessage()
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active {
			_, cmd := m.confirm.HandleKeyMsg(msg,
				func() tea.Msg { return clearConfirmedMsg{} },
				func() tea.Msg { return clearCancelledMsg{} },
			)
			return m, cmd
		}
		if m.consoleOpen {
			return m, m.updateConsole(msg)
		}
		return m, m.handleKey(msg)
	}

	if m.consoleOpen {
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.ClearMessage()

	switch {
	case key.Matches(msg, EditorKeys.Quit):
		return tea.Quit

	case key.Matches(msg, EditorKeys.Up):
		m.move(0, -1)
	case key.Matches(msg, EditorKeys.Down):
		m.move(0, 1)
	case key.Matches(msg, EditorKeys.Left):
		m.move(-1, 0)
	case key.Matches(msg, EditorKeys.Right):
		m.move(1, 0)
	case key.Matches(msg, EditorKeys.FastUp):
		m.move(0, -fastStep)
	case key.Matches(msg, EditorKeys.FastDown):
		m.move(0, fastStep)
	case key.Matches(msg, EditorKeys.FastLeft):
		m.move(-fastStep, 0)
	case key.Matches(msg, EditorKeys.FastRight):
		m.move(fastStep, 0)

	case key.Matches(msg, EditorKeys.NextMode):
		m.setMode((m.mode + 1) % 4)
	case key.Matches(msg, EditorKeys.SelectMode):
		m.setMode(ModeSelect)
	case key.Matches(msg, EditorKeys.WireMode):
		m.setMode(ModeWire)
	case key.Matches(msg, EditorKeys.GateMode):
		m.setMode(ModeGate)
	case key.Matches(msg, EditorKeys.LampMode):
		m.setMode(ModeLamp)

	case key.Matches(msg, EditorKeys.Enter):
		m.apply()
	case key.Matches(msg, EditorKeys.Finish):
		if m.mode == ModeWire {
			m.finishWire()
		}
	case key.Matches(msg, EditorKeys.Cancel):
		if len(m.pending) > 0 {
			m.pending = nil
			m.SetMessage("Wire cancelled", false)
		} else {
			m.setMode(ModeSelect)
		}

	case key.Matches(msg, EditorKeys.PrevKind):
		m.setKind(m.kind.Prev())
	case key.Matches(msg, EditorKeys.NextKind):
		m.setKind(m.kind.Next())

	case key.Matches(msg, EditorKeys.Delete):
		m.report(m.exec(func(ctx context.Context) (string, error) {
			res, err := commands.NewDeleteCommand(m.editor, commands.SelectedTarget()).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		}))
	case key.Matches(msg, EditorKeys.Cycle):
		m.report(m.exec(func(ctx context.Context) (string, error) {
			res, err := commands.NewCycleGateKindCommand(m.editor, commands.Selected).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		}))
	case key.Matches(msg, EditorKeys.ForceLow):
		m.force(domain.Low)
	case key.Matches(msg, EditorKeys.ForceHigh):
		m.force(domain.High)
	case key.Matches(msg, EditorKeys.ForceUnknown):
		m.force(domain.Unknown)
	case key.Matches(msg, EditorKeys.Propagate):
		m.report(m.exec(func(ctx context.Context) (string, error) {
			res, err := commands.NewPropagateCommand(m.editor).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		}))

	case key.Matches(msg, EditorKeys.Clear):
		m.confirm.Ask("Clear the whole circuit?")
	case key.Matches(msg, EditorKeys.Copy):
		return m.copyReport()
	case key.Matches(msg, EditorKeys.Console):
		m.consoleOpen = true
		m.console.Focus()
		return textinput.Blink
	case key.Matches(msg, EditorKeys.Help):
		return func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}
	return nil
}

func (m *EditorModel) updateConsole(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ConsoleKeys.Close):
		m.consoleOpen = false
		m.console.Blur()
		return nil
	case key.Matches(msg, ConsoleKeys.Run):
		m.runConsole()
		return nil
	}
	var cmd tea.Cmd
	m.console, cmd = m.console.Update(msg)
	return cmd
}

func (m *EditorModel) runConsole() {
	line := strings.TrimSpace(m.console.Value())
	m.console.SetValue("")
	if line == "" {
		return
	}
	m.appendLog(": " + line)

	var out bytes.Buffer
	err := script.NewRunner(m.editor, &out).RunString(context.Background(), line)
	last := ""
	for _, l := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if l != "" {
			m.appendLog(l)
			last = l
		}
	}
	if err != nil {
		m.appendLog("error: " + err.Error())
		m.SetError(err)
		return
	}
	m.SetMessage(last, false)
}

func (m *EditorModel) appendLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > logLimit {
		m.log = m.log[len(m.log)-logLimit:]
	}
}

func (m *EditorModel) exec(fn func(ctx context.Context) (string, error)) (string, error) {
	return fn(context.Background())
}

func (m *EditorModel) report(msg string, err error) {
	if err != nil {
		m.SetError(err)
		return
	}
	m.SetMessage(msg, false)
}

func (m *EditorModel) move(dx, dy int) {
	m.cursor.X = max(0, m.cursor.X+dx)
	m.cursor.Y = max(0, m.cursor.Y+dy)
	m.origin = m.canvas().Follow(m.cursor)
}

func (m *EditorModel) setMode(mode Mode) {
	if mode != ModeWire {
		m.pending = nil
	}
	m.mode = mode
}

func (m *EditorModel) setKind(k domain.GateKind) {
	m.kind = k
	if m.mode != ModeGate {
		m.setMode(ModeGate)
	}
	m.SetMessage("Gate kind "+k.String(), false)
}

func (m *EditorModel) force(v domain.Signal) {
	m.report(m.exec(func(ctx context.Context) (string, error) {
		res, err := commands.NewForceWireStateCommand(m.editor, commands.Selected, v).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	}))
}

// apply runs the current mode's action at the cursor.
func (m *EditorModel) apply() {
	at := m.cursorWorld()
	switch m.mode {
	case ModeSelect:
		m.report(m.exec(func(ctx context.Context) (string, error) {
			res, err := commands.NewSelectCommand(m.editor, at).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		}))
	case ModeWire:
		if n := len(m.pending); n > 0 && m.pending[n-1] == at {
			m.SetMessage("Point already added; press f to finish", true)
			return
		}
		m.pending = append(m.pending, at)
		m.SetMessage(fmt.Sprintf("%d point(s); enter adds, f finishes, esc cancels", len(m.pending)), false)
	case ModeGate:
		m.report(m.exec(func(ctx context.Context) (string, error) {
			res, err := commands.NewPlaceGateCommand(m.editor, m.kind, at).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		}))
	case ModeLamp:
		m.report(m.exec(func(ctx context.Context) (string, error) {
			res, err := commands.NewPlaceLampCommand(m.editor, at).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		}))
	}
}

func (m *EditorModel) finishWire() {
	if len(m.pending) == 0 {
		m.SetMessage("No wire points; press enter to add one", true)
		return
	}
	pts := m.pending
	m.pending = nil
	m.report(m.exec(func(ctx context.Context) (string, error) {
		res, err := commands.NewPlaceWireCommand(m.editor, pts).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	}))
}

func (m *EditorModel) copyReport() tea.Cmd {
	text := report.String(m.editor)
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{fmt.Errorf("copy report: %w", err)}
		}
		return successMsg{"Copied report to clipboard"}
	}
}

func (m *EditorModel) grid() float64 {
	return m.editor.Options().GridSize
}

func (m *EditorModel) cursorWorld() domain.Point {
	return m.cursor.World(m.grid())
}

// canvas sizes the drawing area to what the terminal leaves after the
// panel, header and footer.
func (m *EditorModel) canvas() Canvas {
	cols, rows := 60, 18
	if m.Width > 0 {
		cols = max(10, m.Width-panelWidth-8)
	}
	if m.Height > 0 {
		rows = max(5, m.Height-10-consoleLines)
	}
	return Canvas{Cols: cols, Rows: rows, Grid: m.grid(), Origin: m.origin}
}

// SetSize updates the view dimensions
func (m *EditorModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.origin = m.canvas().Follow(m.cursor)
}

// Mode returns the current editing mode
func (m *EditorModel) Mode() Mode {
	return m.mode
}

// Kind returns the gate kind placed in gate mode
func (m *EditorModel) Kind() domain.GateKind {
	return m.kind
}

// Cursor returns the cursor cell
func (m *EditorModel) Cursor() Cell {
	return m.cursor
}

// View renders the editor
func (m *EditorModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("logicgrid"))
	b.WriteString("\n")

	snap := m.editor.Snapshot()
	canvas := styles.Canvas.Render(m.canvas().Render(snap, m.cursor, m.pending))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, canvas, styles.Panel.Render(m.renderPanel())))
	b.WriteString("\n")

	if m.consoleOpen {
		start := max(0, len(m.log)-consoleLines)
		for _, l := range m.log[start:] {
			b.WriteString(styles.MutedText.Render(l))
			b.WriteString("\n")
		}
		b.WriteString(styles.InputField.Render(m.console.View()))
		b.WriteString("\n")
	}

	switch {
	case m.confirm.Active:
		b.WriteString(m.confirm.View())
	case m.Message != "":
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *EditorModel) renderPanel() string {
	var b strings.Builder

	b.WriteString(RenderLabelValue("Mode", styles.ModeBadge.Render(m.mode.String())))
	b.WriteString("\n")
	if m.mode == ModeGate {
		b.WriteString(RenderLabelValue("Kind", styles.GateBody.Render(m.kind.String())))
		b.WriteString("\n")
	}
	b.WriteString(RenderLabelValue("Cursor", domain.FormatPoint(m.cursorWorld())))
	b.WriteString("\n")
	if len(m.pending) > 0 {
		b.WriteString(RenderLabelValue("Points", fmt.Sprint(len(m.pending))))
		b.WriteString("\n")
	}
	b.WriteString(RenderLabelValue("Under", m.describe(m.editor.HitTest(m.cursorWorld()))))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("Selected", m.describe(m.editor.Selected())))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render(report.Summary(m.editor)))
	b.WriteString("\n\n")

	b.WriteString(RenderSignal(domain.High) + " " + RenderSignal(domain.Low) + " " + RenderSignal(domain.Unknown))

	return lipgloss.NewStyle().Width(panelWidth).Render(b.String())
}

// describe names sel by kind and slot-order position, with its signal
// or gate kind.
func (m *EditorModel) describe(sel domain.Selection) string {
	ed := m.editor
	if id, ok := sel.Wire(); ok {
		v, _ := ed.WireSignal(id)
		return fmt.Sprintf("wire %d %s", ed.WireIndex(id), RenderSignal(v))
	}
	if id, ok := sel.Gate(); ok {
		g, _ := ed.Gate(id)
		return fmt.Sprintf("gate %d %s", ed.GateIndex(id), g.Kind)
	}
	if id, ok := sel.Lamp(); ok {
		l, _ := ed.Lamp(id)
		return fmt.Sprintf("lamp %d %s", ed.LampIndex(id), RenderSignal(l.Signal))
	}
	return styles.MutedText.Render("nothing")
}

func (m *EditorModel) renderHelpLine() string {
	if m.consoleOpen {
		return RenderHelpLine(ConsoleKeys.Run, ConsoleKeys.Close)
	}
	if m.confirm.Active {
		return RenderHelpLine(m.confirm.Keys.Confirm, m.confirm.Keys.Cancel)
	}

	bindings := []key.Binding{EditorKeys.Up, EditorKeys.Enter, EditorKeys.NextMode}
	switch m.mode {
	case ModeWire:
		bindings = append(bindings, EditorKeys.Finish, EditorKeys.Cancel)
	case ModeGate:
		bindings = append(bindings, EditorKeys.NextKind)
	case ModeSelect:
		bindings = append(bindings, EditorKeys.Delete, EditorKeys.Cycle, EditorKeys.ForceHigh)
	}
	bindings = append(bindings, EditorKeys.Propagate, EditorKeys.Console, EditorKeys.Help, EditorKeys.Quit)
	return RenderHelpLine(bindings...)
}
