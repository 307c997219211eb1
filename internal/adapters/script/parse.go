// Package script implements the line-oriented command language shared by
// the CLI, the TUI console and the MCP run_script tool.
//
//	wire 0,0 40,0 40,20    # polyline, at least one point
//	gate AND 60 10         # kind, x, y
//	lamp 100 20
//	select 45 5
//	delete                 # current selection
//	delete wire 2          # by position in slot order
//	kind gate 0 NAND       # or: kind NAND (selected gate)
//	cycle gate 0           # or: cycle (selected gate)
//	force wire 0 HIGH      # or: force HIGH (selected wire)
//	propagate
//	clear
//	show
package script

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"logicgrid/internal/application"
	"logicgrid/internal/application/commands"
	"logicgrid/internal/domain"
)

// Op is a script verb.
type Op int

const (
	OpWire Op = iota
	OpGate
	OpLamp
	OpSelect
	OpDelete
	OpKind
	OpCycle
	OpForce
	OpPropagate
	OpClear
	OpShow
)

var opNames = map[string]Op{
	"wire":      OpWire,
	"gate":      OpGate,
	"lamp":      OpLamp,
	"select":    OpSelect,
	"delete":    OpDelete,
	"kind":      OpKind,
	"cycle":     OpCycle,
	"force":     OpForce,
	"propagate": OpPropagate,
	"clear":     OpClear,
	"show":      OpShow,
}

func (o Op) String() string {
	for name, op := range opNames {
		if op == o {
			return name
		}
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Statement is one parsed script line.
type Statement struct {
	Line   int
	Op     Op
	Points []domain.Point // wire; gate, lamp and select use Points[0]
	Kind   domain.GateKind
	Signal domain.Signal
	Target commands.Target
}

type token struct {
	text string
	col  int
}

func tokenize(line string) []token {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	var toks []token
	start := -1
	for i, r := range line {
		space := r == ' ' || r == '\t' || r == '\r'
		switch {
		case space && start >= 0:
			toks = append(toks, token{text: line[start:i], col: start + 1})
			start = -1
		case !space && start < 0:
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, token{text: line[start:], col: start + 1})
	}
	return toks
}

func parseError(line, col int, format string, args ...any) error {
	return errors.Errorf("line %d, col %d: "+format, append([]any{line, col}, args...)...)
}

// Parse parses a whole script. Blank lines and comments are skipped.
func Parse(src string) ([]Statement, error) {
	var out []Statement
	sc := bufio.NewScanner(strings.NewReader(src))
	n := 0
	for sc.Scan() {
		n++
		st, ok, err := ParseLine(sc.Text(), n)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, st)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return out, nil
}

// ParseLine parses one line. ok is false for blank and comment lines.
func ParseLine(line string, n int) (st Statement, ok bool, err error) {
	toks := tokenize(line)
	if len(toks) == 0 {
		return Statement{}, false, nil
	}
	op, known := opNames[strings.ToLower(toks[0].text)]
	if !known {
		return Statement{}, false, parseError(n, toks[0].col, "unknown command %q", toks[0].text)
	}
	st = Statement{Line: n, Op: op}
	p := &lineParser{line: n, toks: toks[1:], end: len(line) + 1}

	switch op {
	case OpWire:
		if len(p.toks) == 0 {
			return st, false, p.errorf("wire needs at least one point")
		}
		for len(p.toks) > 0 {
			pt, err := p.point()
			if err != nil {
				return st, false, err
			}
			st.Points = append(st.Points, pt)
		}
	case OpGate:
		if st.Kind, err = p.gateKind(); err != nil {
			return st, false, err
		}
		fallthrough
	case OpLamp, OpSelect:
		pt, err := p.point()
		if err != nil {
			return st, false, err
		}
		st.Points = []domain.Point{pt}
	case OpDelete:
		st.Target = commands.SelectedTarget()
		if len(p.toks) > 0 {
			if st.Target, err = p.target(); err != nil {
				return st, false, err
			}
		}
	case OpKind:
		st.Target = commands.Target{Kind: domain.SelectGate, Index: commands.Selected}
		if len(p.toks) > 1 {
			if st.Target, err = p.targetOf(domain.SelectGate); err != nil {
				return st, false, err
			}
		}
		if st.Kind, err = p.gateKind(); err != nil {
			return st, false, err
		}
	case OpCycle:
		st.Target = commands.Target{Kind: domain.SelectGate, Index: commands.Selected}
		if len(p.toks) > 0 {
			if st.Target, err = p.targetOf(domain.SelectGate); err != nil {
				return st, false, err
			}
		}
	case OpForce:
		st.Target = commands.Target{Kind: domain.SelectWire, Index: commands.Selected}
		if len(p.toks) > 1 {
			if st.Target, err = p.targetOf(domain.SelectWire); err != nil {
				return st, false, err
			}
		}
		if st.Signal, err = p.signal(); err != nil {
			return st, false, err
		}
	}

	if len(p.toks) > 0 {
		return st, false, parseError(n, p.toks[0].col, "unexpected %q after %s", p.toks[0].text, op)
	}
	return st, true, nil
}

type lineParser struct {
	line int
	toks []token
	end  int
}

func (p *lineParser) errorf(format string, args ...any) error {
	col := p.end
	if len(p.toks) > 0 {
		col = p.toks[0].col
	}
	return parseError(p.line, col, format, args...)
}

func (p *lineParser) next(what string) (token, error) {
	if len(p.toks) == 0 {
		return token{}, p.errorf("missing %s", what)
	}
	t := p.toks[0]
	p.toks = p.toks[1:]
	return t, nil
}

func (p *lineParser) number(what string) (float64, error) {
	t, err := p.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, parseError(p.line, t.col, "invalid %s %q", what, t.text)
	}
	return v, nil
}

// point accepts "x,y" as one token or "x y" as two.
func (p *lineParser) point() (domain.Point, error) {
	if len(p.toks) > 0 && strings.Contains(p.toks[0].text, ",") {
		t := p.toks[0]
		p.toks = p.toks[1:]
		xs, ys, _ := strings.Cut(t.text, ",")
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil {
			return domain.Point{}, parseError(p.line, t.col, "invalid point %q, expected x,y", t.text)
		}
		return domain.Pt(x, y), nil
	}
	x, err := p.number("x coordinate")
	if err != nil {
		return domain.Point{}, err
	}
	y, err := p.number("y coordinate")
	if err != nil {
		return domain.Point{}, err
	}
	return domain.Pt(x, y), nil
}

func (p *lineParser) gateKind() (domain.GateKind, error) {
	t, err := p.next("gate kind")
	if err != nil {
		return 0, err
	}
	k, err := domain.ParseGateKind(t.text)
	if err != nil {
		return 0, parseError(p.line, t.col, "unknown gate kind %q", t.text)
	}
	return k, nil
}

func (p *lineParser) signal() (domain.Signal, error) {
	t, err := p.next("signal")
	if err != nil {
		return 0, err
	}
	v, err := domain.ParseSignal(t.text)
	if err != nil {
		return 0, parseError(p.line, t.col, "invalid signal %q", t.text)
	}
	return v, nil
}

func (p *lineParser) index() (int, error) {
	t, err := p.next("index")
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(t.text)
	if err != nil || i < 0 {
		return 0, parseError(p.line, t.col, "invalid index %q", t.text)
	}
	return i, nil
}

// target parses "<wire|gate|lamp> N".
func (p *lineParser) target() (commands.Target, error) {
	t, err := p.next("entity kind")
	if err != nil {
		return commands.Target{}, err
	}
	kind, err := application.ParseSelectionKind(strings.ToLower(t.text))
	if err != nil {
		return commands.Target{}, parseError(p.line, t.col, "expected wire, gate or lamp, got %q", t.text)
	}
	i, err := p.index()
	if err != nil {
		return commands.Target{}, err
	}
	return commands.Target{Kind: kind, Index: i}, nil
}

// targetOf parses a target and requires it to be of kind want.
func (p *lineParser) targetOf(want domain.SelectionKind) (commands.Target, error) {
	col := p.toks[0].col
	t, err := p.target()
	if err != nil {
		return t, err
	}
	if t.Kind != want {
		return t, parseError(p.line, col, "expected %s, got %s", want, t.Kind)
	}
	return t, nil
}
