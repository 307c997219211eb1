package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"logicgrid/internal/adapters/report"
	"logicgrid/internal/application/commands"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// Runner executes statements against one circuit editor.
type Runner struct {
	editor ports.CircuitEditor
	out    io.Writer
}

// NewRunner returns a Runner that writes each command's message to out.
func NewRunner(editor ports.CircuitEditor, out io.Writer) *Runner {
	return &Runner{editor: editor, out: out}
}

// RunString parses and runs src. Nothing runs when src does not parse.
func (r *Runner) RunString(ctx context.Context, src string) error {
	stmts, err := Parse(src)
	if err != nil {
		return err
	}
	return r.Run(ctx, stmts)
}

// Run executes statements in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context, stmts []Statement) error {
	for _, st := range stmts {
		msg, err := r.Exec(ctx, st)
		if err != nil {
			return errors.Wrapf(err, "line %d", st.Line)
		}
		if msg != "" {
			if _, err := fmt.Fprintln(r.out, msg); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
	}
	return nil
}

// Exec executes one statement and returns its message.
func (r *Runner) Exec(ctx context.Context, st Statement) (string, error) {
	ed := r.editor
	switch st.Op {
	case OpWire:
		res, err := commands.NewPlaceWireCommand(ed, st.Points).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpGate:
		at, err := position(st)
		if err != nil {
			return "", err
		}
		res, err := commands.NewPlaceGateCommand(ed, st.Kind, at).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpLamp:
		at, err := position(st)
		if err != nil {
			return "", err
		}
		res, err := commands.NewPlaceLampCommand(ed, at).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpSelect:
		at, err := position(st)
		if err != nil {
			return "", err
		}
		res, err := commands.NewSelectCommand(ed, at).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpDelete:
		res, err := commands.NewDeleteCommand(ed, st.Target).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpKind:
		res, err := commands.NewSetGateKindCommand(ed, st.Target.Index, st.Kind).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpCycle:
		res, err := commands.NewCycleGateKindCommand(ed, st.Target.Index).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpForce:
		res, err := commands.NewForceWireStateCommand(ed, st.Target.Index, st.Signal).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpPropagate:
		res, err := commands.NewPropagateCommand(ed).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpClear:
		res, err := commands.NewClearCommand(ed).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	case OpShow:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return strings.TrimRight(report.String(ed), "\n"), nil
	default:
		return "", errors.Errorf("unsupported command %s", st.Op)
	}
}

// position returns the single point a gate, lamp or select statement
// carries.
func position(st Statement) (domain.Point, error) {
	if len(st.Points) == 0 {
		return domain.Point{}, errors.Errorf("%s needs a position", st.Op)
	}
	return st.Points[0], nil
}
