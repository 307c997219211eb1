package application

import "logicgrid/internal/domain"

// Re-export domain types for use by adapters
type (
	Signal        = domain.Signal
	GateKind      = domain.GateKind
	Point         = domain.Point
	Selection     = domain.Selection
	SelectionKind = domain.SelectionKind
)

const (
	SelectNone = domain.SelectNone
	SelectWire = domain.SelectWire
	SelectLamp = domain.SelectLamp
	SelectGate = domain.SelectGate
)

// ParseSignal parses a signal name such as HIGH, low, 1 or x
func ParseSignal(s string) (Signal, error) {
	return domain.ParseSignal(s)
}

// ParseGateKind parses a gate label such as AND or const_high
func ParseGateKind(s string) (GateKind, error) {
	return domain.ParseGateKind(s)
}

// ParseSelectionKind parses an entity kind name: wire, gate or lamp
func ParseSelectionKind(s string) (SelectionKind, error) {
	switch s {
	case "wire", "w":
		return SelectWire, nil
	case "gate", "g":
		return SelectGate, nil
	case "lamp", "l":
		return SelectLamp, nil
	default:
		return SelectNone, &ValidationError{
			Field:   "kind",
			Message: "expected wire, gate or lamp, got: " + s,
		}
	}
}
