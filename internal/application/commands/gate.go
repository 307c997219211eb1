package commands

import (
	"context"
	"fmt"

	"logicgrid/internal/application"
	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// GateKindResult contains the result of changing a gate's kind
type GateKindResult struct {
	Gate    circuit.GateView
	Index   int
	Stats   circuit.PropagationStats
	Message string
}

// SetGateKindCommand changes the kind of a gate
type SetGateKindCommand struct {
	editor ports.CircuitEditor
	Index  int
	Kind   domain.GateKind
}

// NewSetGateKindCommand creates a new SetGateKindCommand. Index Selected
// targets the selected gate.
func NewSetGateKindCommand(editor ports.CircuitEditor, index int, kind domain.GateKind) *SetGateKindCommand {
	return &SetGateKindCommand{
		editor: editor,
		Index:  index,
		Kind:   kind,
	}
}

// Validate checks the target and kind
func (c *SetGateKindCommand) Validate() error {
	if err := (Target{Kind: domain.SelectGate, Index: c.Index}).validate(); err != nil {
		return err
	}
	return application.ValidateGateKind("kind", c.Kind)
}

// Execute sets the kind and propagates
func (c *SetGateKindCommand) Execute(ctx context.Context) (*GateKindResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	id, err := resolveGate(c.editor, c.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to set gate kind: %w", err)
	}
	c.editor.SetGateKind(id, c.Kind)
	return gateKindResult(c.editor, id), nil
}

// CycleGateKindCommand advances a gate to the next kind
type CycleGateKindCommand struct {
	editor ports.CircuitEditor
	Index  int
}

// NewCycleGateKindCommand creates a new CycleGateKindCommand. Index
// Selected targets the selected gate.
func NewCycleGateKindCommand(editor ports.CircuitEditor, index int) *CycleGateKindCommand {
	return &CycleGateKindCommand{
		editor: editor,
		Index:  index,
	}
}

// Validate checks the target
func (c *CycleGateKindCommand) Validate() error {
	return Target{Kind: domain.SelectGate, Index: c.Index}.validate()
}

// Execute cycles the kind and propagates
func (c *CycleGateKindCommand) Execute(ctx context.Context) (*GateKindResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	id, err := resolveGate(c.editor, c.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to cycle gate kind: %w", err)
	}
	view, _ := c.editor.Gate(id)
	c.editor.SetGateKind(id, view.Kind.Next())
	return gateKindResult(c.editor, id), nil
}

func resolveGate(ed ports.CircuitReader, index int) (domain.GateID, error) {
	sel, err := resolve(ed, Target{Kind: domain.SelectGate, Index: index})
	if err != nil {
		return domain.GateID{}, err
	}
	id, _ := sel.Gate()
	return id, nil
}

func gateKindResult(ed ports.CircuitEditor, id domain.GateID) *GateKindResult {
	view, _ := ed.Gate(id)
	idx := ed.GateIndex(id)
	stats := ed.LastPropagation()

	msg := fmt.Sprintf("Gate %d is now %s", idx, view.Kind)
	if sig, ok := outputSignal(ed, view); ok {
		msg += fmt.Sprintf(", output %s", sig)
	}
	return &GateKindResult{
		Gate:    view,
		Index:   idx,
		Stats:   stats,
		Message: msg,
	}
}

func outputSignal(ed ports.CircuitReader, g circuit.GateView) (domain.Signal, bool) {
	if g.Output.IsZero() {
		return domain.Unknown, false
	}
	n, ok := ed.Node(g.Output)
	return n.Signal, ok
}
