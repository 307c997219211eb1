package commands

import (
	"context"
	"fmt"

	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Deleted domain.Selection
	Stats   circuit.PropagationStats
	Message string
}

// DeleteCommand deletes a wire, gate or lamp
type DeleteCommand struct {
	editor ports.CircuitEditor
	Target Target
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(editor ports.CircuitEditor, target Target) *DeleteCommand {
	return &DeleteCommand{
		editor: editor,
		Target: target,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	return c.Target.validate()
}

// Execute runs the delete command and propagates
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	sel, err := resolve(c.editor, c.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.Target, err)
	}
	name := describe(c.editor, sel)
	if !c.editor.Delete(sel) {
		return nil, fmt.Errorf("failed to delete %s: %s is stale", c.Target, name)
	}
	stats := c.editor.Propagate()

	return &DeleteResult{
		Deleted: sel,
		Stats:   stats,
		Message: fmt.Sprintf("Deleted %s", name),
	}, nil
}
