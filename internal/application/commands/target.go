package commands

import (
	"context"
	"fmt"

	"logicgrid/internal/application"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// Selected is the index value that refers to the current selection.
const Selected = -1

// Target names an entity by kind and slot-order position. Positions are
// resolved to handles when a command executes, so a Target stays
// meaningful across deletions. Index Selected means the current selection
// and Kind SelectNone accepts any selected kind.
type Target struct {
	Kind  domain.SelectionKind
	Index int
}

// SelectedTarget refers to whatever is currently selected.
func SelectedTarget() Target {
	return Target{Kind: domain.SelectNone, Index: Selected}
}

func (t Target) String() string {
	if t.Index == Selected {
		if t.Kind == domain.SelectNone {
			return "selection"
		}
		return "selected " + t.Kind.String()
	}
	return fmt.Sprintf("%s %d", t.Kind, t.Index)
}

func (t Target) validate() error {
	if t.Index == Selected {
		return nil
	}
	if t.Kind == domain.SelectNone {
		return &application.ValidationError{
			Field:   "kind",
			Message: "entity kind is required with an index",
		}
	}
	return application.ValidateIndex("index", t.Index)
}

// resolve turns t into a live selection.
func resolve(ed ports.CircuitReader, t Target) (domain.Selection, error) {
	if t.Index == Selected {
		sel := ed.Selected()
		if sel.IsNone() || (t.Kind != domain.SelectNone && sel.Kind != t.Kind) {
			if t.Kind == domain.SelectNone {
				return domain.NoSelection, application.ErrNothingSelected
			}
			return domain.NoSelection, fmt.Errorf("no %s selected: %w", t.Kind, application.ErrNothingSelected)
		}
		return sel, nil
	}

	var (
		sel domain.Selection
		ok  bool
	)
	switch t.Kind {
	case domain.SelectWire:
		var id domain.WireID
		id, ok = ed.WireAt(t.Index)
		sel = domain.WireSelection(id)
	case domain.SelectGate:
		var id domain.GateID
		id, ok = ed.GateAt(t.Index)
		sel = domain.GateSelection(id)
	case domain.SelectLamp:
		var id domain.LampID
		id, ok = ed.LampAt(t.Index)
		sel = domain.LampSelection(id)
	}
	if !ok {
		return domain.NoSelection, &application.NotFoundError{Kind: t.Kind.String(), Index: t.Index}
	}
	return sel, nil
}

// describe renders a selection by kind and current position.
func describe(ed ports.CircuitReader, sel domain.Selection) string {
	switch sel.Kind {
	case domain.SelectWire:
		return fmt.Sprintf("wire %d", ed.WireIndex(domain.WireID(sel.Handle)))
	case domain.SelectGate:
		return fmt.Sprintf("gate %d", ed.GateIndex(domain.GateID(sel.Handle)))
	case domain.SelectLamp:
		return fmt.Sprintf("lamp %d", ed.LampIndex(domain.LampID(sel.Handle)))
	default:
		return "nothing"
	}
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("command cancelled: %w", err)
	}
	return nil
}
