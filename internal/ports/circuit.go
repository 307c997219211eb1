package ports

import (
	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
)

// CircuitReader exposes the read accessors renderers and reports need.
type CircuitReader interface {
	// Positional lookup, slot order
	WireAt(i int) (domain.WireID, bool)
	GateAt(i int) (domain.GateID, bool)
	LampAt(i int) (domain.LampID, bool)
	WireIndex(id domain.WireID) int
	GateIndex(id domain.GateID) int
	LampIndex(id domain.LampID) int

	// Entity views
	Wire(id domain.WireID) (circuit.WireView, bool)
	Gate(id domain.GateID) (circuit.GateView, bool)
	Lamp(id domain.LampID) (circuit.LampView, bool)
	WireSignal(id domain.WireID) (domain.Signal, bool)
	Node(id domain.NodeID) (circuit.NodeView, bool)
	Bindings() []circuit.BindingView
	Snapshot() circuit.Snapshot
	LastPropagation() circuit.PropagationStats

	WireCount() int
	GateCount() int
	LampCount() int

	Selected() domain.Selection
	HitTest(at domain.Point) domain.Selection
	Options() circuit.Options
}

// CircuitEditor is the editing surface of a circuit session. Coordinates
// are world coordinates already snapped by the caller.
type CircuitEditor interface {
	CircuitReader

	// Placement
	PlaceWire(points []domain.Point) domain.WireID
	PlaceGate(kind domain.GateKind, at domain.Point) domain.GateID
	PlaceLamp(at domain.Point) domain.LampID

	// Selection and deletion
	SelectAt(at domain.Point) domain.Selection
	Select(sel domain.Selection) bool
	Delete(sel domain.Selection) bool

	// Editing; both propagate before returning
	SetGateKind(id domain.GateID, kind domain.GateKind) bool
	ForceWireState(id domain.WireID, v domain.Signal) bool

	Propagate() circuit.PropagationStats
	Reset()
}

var _ CircuitEditor = (*circuit.Session)(nil)
