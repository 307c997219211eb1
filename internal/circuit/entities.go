package circuit

import (
	"slices"

	"logicgrid/internal/domain"
)

// End names one of a wire's two endpoints.
type End uint8

const (
	Start End = iota
	Finish
)

func (e End) String() string {
	if e == Start {
		return "start"
	}
	return "end"
}

// Binding records that a wire endpoint is locked to a gate pin.
// A zero Gate means the endpoint is free.
type Binding struct {
	Gate domain.GateID
	Pin  domain.Pin
}

// Bound reports whether the endpoint is attached to a gate.
func (b Binding) Bound() bool {
	return !b.Gate.IsZero()
}

type wire struct {
	points []domain.Point
	node   domain.NodeID
	ends   [2]Binding
}

// endIndex returns the index into points of endpoint e.
func (w *wire) endIndex(e End) int {
	if e == Start {
		return 0
	}
	return len(w.points) - 1
}

// endpoints lists the distinct endpoints: one for a single-point wire.
func (w *wire) endpoints() []End {
	if len(w.points) <= 1 {
		return []End{Start}
	}
	return []End{Start, Finish}
}

func (w *wire) endPoint(e End) domain.Point {
	return w.points[w.endIndex(e)]
}

type gate struct {
	kind domain.GateKind
	body domain.Rect
	in   [2]domain.NodeID
	out  domain.NodeID
}

func (g *gate) pin(p domain.Pin) domain.NodeID {
	switch p {
	case domain.PinA:
		return g.in[0]
	case domain.PinB:
		return g.in[1]
	default:
		return g.out
	}
}

func (g *gate) setPin(p domain.Pin, id domain.NodeID) {
	switch p {
	case domain.PinA:
		g.in[0] = id
	case domain.PinB:
		g.in[1] = id
	default:
		g.out = id
	}
}

type lamp struct {
	pos    domain.Point
	radius float64
	input  domain.NodeID
	state  domain.Signal
}

// WireView is a read-only copy of a placed wire.
type WireView struct {
	ID     domain.WireID
	Points []domain.Point
	Node   domain.NodeID
	Signal domain.Signal
	Start  Binding
	End    Binding
}

// GateView is a read-only copy of a placed gate.
type GateView struct {
	ID     domain.GateID
	Kind   domain.GateKind
	Body   domain.Rect
	InputA domain.NodeID
	InputB domain.NodeID
	Output domain.NodeID
	// Pins holds the world position of each pin, indexed by domain.Pin.
	Pins [3]domain.Point
}

// PinNode returns the node bound to pin p, zero when floating.
func (v GateView) PinNode(p domain.Pin) domain.NodeID {
	switch p {
	case domain.PinA:
		return v.InputA
	case domain.PinB:
		return v.InputB
	default:
		return v.Output
	}
}

// LampView is a read-only copy of a placed lamp.
type LampView struct {
	ID     domain.LampID
	Pos    domain.Point
	Radius float64
	Input  domain.NodeID
	Signal domain.Signal
}

// NodeView describes a logic node and everything attached to it.
type NodeView struct {
	ID     domain.NodeID
	Signal domain.Signal
	Wires  []domain.WireID
	Gates  []PinRef
	Lamps  []domain.LampID
}

// PinRef names one pin of one gate.
type PinRef struct {
	Gate domain.GateID
	Pin  domain.Pin
}

// BindingView is one endpoint-to-pin connection, for drawing markers.
type BindingView struct {
	Wire  domain.WireID
	End   End
	Gate  domain.GateID
	Pin   domain.Pin
	Point domain.Point
}

// Snapshot is a consistent copy of the whole circuit.
type Snapshot struct {
	Nodes     []NodeView
	Wires     []WireView
	Gates     []GateView
	Lamps     []LampView
	Bindings  []BindingView
	Selection domain.Selection
	Last      PropagationStats
}

func (s *Session) wireView(id domain.WireID, w *wire) WireView {
	sig, _ := s.nodes.Read(w.node)
	return WireView{
		ID:     id,
		Points: slices.Clone(w.points),
		Node:   w.node,
		Signal: sig,
		Start:  w.ends[Start],
		End:    w.ends[Finish],
	}
}

func (s *Session) gateView(id domain.GateID, g *gate) GateView {
	v := GateView{
		ID:     id,
		Kind:   g.kind,
		Body:   g.body,
		InputA: g.in[0],
		InputB: g.in[1],
		Output: g.out,
	}
	for _, p := range domain.Pins {
		v.Pins[p] = domain.PinPosition(g.body, p)
	}
	return v
}

func lampView(id domain.LampID, l *lamp) LampView {
	return LampView{
		ID:     id,
		Pos:    l.pos,
		Radius: l.radius,
		Input:  l.input,
		Signal: l.state,
	}
}
