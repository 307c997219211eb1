package commands

import (
	"context"
	"fmt"
	"strings"

	"logicgrid/internal/application"
	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// PlaceWireResult contains the result of finalizing a wire
type PlaceWireResult struct {
	Wire    circuit.WireView
	Index   int
	Stats   circuit.PropagationStats
	Message string
}

// PlaceWireCommand finalizes a drawn polyline
type PlaceWireCommand struct {
	editor ports.CircuitEditor
	Points []domain.Point
}

// NewPlaceWireCommand creates a new PlaceWireCommand
func NewPlaceWireCommand(editor ports.CircuitEditor, points []domain.Point) *PlaceWireCommand {
	return &PlaceWireCommand{
		editor: editor,
		Points: points,
	}
}

// Validate checks the polyline
func (c *PlaceWireCommand) Validate() error {
	return application.ValidatePoints("points", c.Points)
}

// Execute places the wire and propagates
func (c *PlaceWireCommand) Execute(ctx context.Context) (*PlaceWireResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	id := c.editor.PlaceWire(c.Points)
	stats := c.editor.Propagate()
	view, _ := c.editor.Wire(id)
	idx := c.editor.WireIndex(id)

	return &PlaceWireResult{
		Wire:    view,
		Index:   idx,
		Stats:   stats,
		Message: fmt.Sprintf("Placed wire %d on %s (%s)%s", idx, view.Node, view.Signal, bindingSuffix(c.editor, view)),
	}, nil
}

func bindingSuffix(ed ports.CircuitReader, w circuit.WireView) string {
	var parts []string
	for _, b := range []circuit.Binding{w.Start, w.End} {
		if b.Bound() {
			parts = append(parts, fmt.Sprintf("gate %d %s", ed.GateIndex(b.Gate), b.Pin))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return ", bound to " + strings.Join(parts, " and ")
}

// PlaceGateResult contains the result of placing a gate
type PlaceGateResult struct {
	Gate    circuit.GateView
	Index   int
	Stats   circuit.PropagationStats
	Message string
}

// PlaceGateCommand places a gate with its top-left corner at At
type PlaceGateCommand struct {
	editor ports.CircuitEditor
	Kind   domain.GateKind
	At     domain.Point
}

// NewPlaceGateCommand creates a new PlaceGateCommand
func NewPlaceGateCommand(editor ports.CircuitEditor, kind domain.GateKind, at domain.Point) *PlaceGateCommand {
	return &PlaceGateCommand{
		editor: editor,
		Kind:   kind,
		At:     at,
	}
}

// Validate checks the kind and position
func (c *PlaceGateCommand) Validate() error {
	if err := application.ValidateGateKind("kind", c.Kind); err != nil {
		return err
	}
	return application.ValidatePoint("at", c.At)
}

// Execute places the gate and propagates
func (c *PlaceGateCommand) Execute(ctx context.Context) (*PlaceGateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	id := c.editor.PlaceGate(c.Kind, c.At)
	stats := c.editor.Propagate()
	view, _ := c.editor.Gate(id)
	idx := c.editor.GateIndex(id)

	bound := 0
	for _, p := range domain.Pins {
		if !view.PinNode(p).IsZero() {
			bound++
		}
	}

	return &PlaceGateResult{
		Gate:    view,
		Index:   idx,
		Stats:   stats,
		Message: fmt.Sprintf("Placed %s gate %d at %s, %d pin(s) bound", c.Kind, idx, domain.FormatPoint(c.At), bound),
	}, nil
}

// PlaceLampResult contains the result of placing a lamp
type PlaceLampResult struct {
	Lamp    circuit.LampView
	Index   int
	Message string
}

// PlaceLampCommand places a lamp centred at At
type PlaceLampCommand struct {
	editor ports.CircuitEditor
	At     domain.Point
}

// NewPlaceLampCommand creates a new PlaceLampCommand
func NewPlaceLampCommand(editor ports.CircuitEditor, at domain.Point) *PlaceLampCommand {
	return &PlaceLampCommand{
		editor: editor,
		At:     at,
	}
}

// Validate checks the position
func (c *PlaceLampCommand) Validate() error {
	return application.ValidatePoint("at", c.At)
}

// Execute places the lamp
func (c *PlaceLampCommand) Execute(ctx context.Context) (*PlaceLampResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	id := c.editor.PlaceLamp(c.At)
	view, _ := c.editor.Lamp(id)
	idx := c.editor.LampIndex(id)

	msg := fmt.Sprintf("Placed lamp %d at %s (unconnected)", idx, domain.FormatPoint(c.At))
	if !view.Input.IsZero() {
		msg = fmt.Sprintf("Placed lamp %d at %s on %s (%s)", idx, domain.FormatPoint(c.At), view.Input, view.Signal)
	}

	return &PlaceLampResult{
		Lamp:    view,
		Index:   idx,
		Message: msg,
	}, nil
}
