package commands

import (
	"context"
	"fmt"

	"logicgrid/internal/circuit"
	"logicgrid/internal/ports"
)

// PropagateResult contains the result of a propagation run
type PropagateResult struct {
	Stats   circuit.PropagationStats
	Message string
}

// PropagateCommand relaxes the circuit to a fixpoint
type PropagateCommand struct {
	editor ports.CircuitEditor
}

// NewPropagateCommand creates a new PropagateCommand
func NewPropagateCommand(editor ports.CircuitEditor) *PropagateCommand {
	return &PropagateCommand{editor: editor}
}

// Execute runs propagation
func (c *PropagateCommand) Execute(ctx context.Context) (*PropagateResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	stats := c.editor.Propagate()
	msg := fmt.Sprintf("Settled after %d pass(es)", stats.Passes)
	if !stats.Converged {
		msg = fmt.Sprintf("Gave up after %d passes without settling (feedback loop?)", stats.Passes)
	}

	return &PropagateResult{
		Stats:   stats,
		Message: msg,
	}, nil
}

// ClearResult contains the result of clearing the circuit
type ClearResult struct {
	Wires   int
	Gates   int
	Lamps   int
	Message string
}

// ClearCommand discards the whole circuit
type ClearCommand struct {
	editor ports.CircuitEditor
}

// NewClearCommand creates a new ClearCommand
func NewClearCommand(editor ports.CircuitEditor) *ClearCommand {
	return &ClearCommand{editor: editor}
}

// Execute clears the circuit
func (c *ClearCommand) Execute(ctx context.Context) (*ClearResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	res := &ClearResult{
		Wires: c.editor.WireCount(),
		Gates: c.editor.GateCount(),
		Lamps: c.editor.LampCount(),
	}
	c.editor.Reset()
	res.Message = fmt.Sprintf("Cleared %d wire(s), %d gate(s), %d lamp(s)", res.Wires, res.Gates, res.Lamps)
	return res, nil
}
