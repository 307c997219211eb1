package commands

import (
	"context"
	"fmt"

	"logicgrid/internal/application"
	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// ForceWireStateResult contains the result of forcing a wire
type ForceWireStateResult struct {
	Wire    circuit.WireView
	Index   int
	Stats   circuit.PropagationStats
	Message string
}

// ForceWireStateCommand writes a Signal onto a wire's node
type ForceWireStateCommand struct {
	editor ports.CircuitEditor
	Index  int
	Signal domain.Signal
}

// NewForceWireStateCommand creates a new ForceWireStateCommand. Index
// Selected targets the selected wire.
func NewForceWireStateCommand(editor ports.CircuitEditor, index int, v domain.Signal) *ForceWireStateCommand {
	return &ForceWireStateCommand{
		editor: editor,
		Index:  index,
		Signal: v,
	}
}

// Validate checks the target and signal
func (c *ForceWireStateCommand) Validate() error {
	if err := (Target{Kind: domain.SelectWire, Index: c.Index}).validate(); err != nil {
		return err
	}
	return application.ValidateSignal("signal", c.Signal)
}

// Execute forces the wire and propagates. A gate driving the wire wins
// over the forced value.
func (c *ForceWireStateCommand) Execute(ctx context.Context) (*ForceWireStateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	sel, err := resolve(c.editor, Target{Kind: domain.SelectWire, Index: c.Index})
	if err != nil {
		return nil, fmt.Errorf("failed to force wire: %w", err)
	}
	id, _ := sel.Wire()
	c.editor.ForceWireState(id, c.Signal)

	view, _ := c.editor.Wire(id)
	idx := c.editor.WireIndex(id)
	msg := fmt.Sprintf("Forced wire %d to %s", idx, c.Signal)
	if view.Signal != c.Signal {
		msg += fmt.Sprintf(", settled at %s", view.Signal)
	}

	return &ForceWireStateResult{
		Wire:    view,
		Index:   idx,
		Stats:   c.editor.LastPropagation(),
		Message: msg,
	}, nil
}
