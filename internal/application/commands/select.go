package commands

import (
	"context"
	"fmt"

	"logicgrid/internal/application"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// SelectResult contains the result of a hit test
type SelectResult struct {
	Selection domain.Selection
	Message   string
}

// SelectCommand selects whatever lies under a point
type SelectCommand struct {
	editor ports.CircuitEditor
	At     domain.Point
}

// NewSelectCommand creates a new SelectCommand
func NewSelectCommand(editor ports.CircuitEditor, at domain.Point) *SelectCommand {
	return &SelectCommand{
		editor: editor,
		At:     at,
	}
}

// Validate checks the position
func (c *SelectCommand) Validate() error {
	return application.ValidatePoint("at", c.At)
}

// Execute runs the hit test; a miss clears the selection
func (c *SelectCommand) Execute(ctx context.Context) (*SelectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	sel := c.editor.SelectAt(c.At)
	msg := "Nothing selected"
	if !sel.IsNone() {
		msg = fmt.Sprintf("Selected %s", describe(c.editor, sel))
	}

	return &SelectResult{
		Selection: sel,
		Message:   msg,
	}, nil
}
