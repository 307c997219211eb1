// Package circuit holds the editable circuit: the node registry, the placed
// wires, gates and lamps, the connectivity rules that keep them consistent
// and the propagation scheduler.
package circuit

import (
	"logicgrid/internal/domain"
)

// Session is the single owner of a circuit. It is not safe for concurrent
// use; callers that share a session must serialize access.
type Session struct {
	opts     Options
	nodes    NodeRegistry
	wires    Slots[wire]
	gates    Slots[gate]
	lamps    Slots[lamp]
	selected domain.Selection
	last     PropagationStats
}

// New returns an empty session. Zero fields in opts take their defaults.
func New(opts Options) *Session {
	return &Session{opts: opts.normalized()}
}

// Options returns the options the session runs with.
func (s *Session) Options() Options {
	return s.opts
}

// Reset discards every entity and node. Handles issued before the reset
// stay invalid.
func (s *Session) Reset() {
	s.nodes.clear()
	s.wires.Clear()
	s.gates.Clear()
	s.lamps.Clear()
	s.selected = domain.NoSelection
	s.last = PropagationStats{}
}

// Counts of live entities.
func (s *Session) WireCount() int { return s.wires.Len() }
func (s *Session) GateCount() int { return s.gates.Len() }
func (s *Session) LampCount() int { return s.lamps.Len() }
func (s *Session) NodeCount() int { return s.nodes.Len() }

// WireAt returns the handle of the i-th wire in slot order.
func (s *Session) WireAt(i int) (domain.WireID, bool) {
	h, ok := s.wires.At(i)
	return domain.WireID(h), ok
}

// GateAt returns the handle of the i-th gate in slot order.
func (s *Session) GateAt(i int) (domain.GateID, bool) {
	h, ok := s.gates.At(i)
	return domain.GateID(h), ok
}

// LampAt returns the handle of the i-th lamp in slot order.
func (s *Session) LampAt(i int) (domain.LampID, bool) {
	h, ok := s.lamps.At(i)
	return domain.LampID(h), ok
}

// WireIndex returns the slot-order position of a wire, or -1.
func (s *Session) WireIndex(id domain.WireID) int { return s.wires.Index(domain.Handle(id)) }

// GateIndex returns the slot-order position of a gate, or -1.
func (s *Session) GateIndex(id domain.GateID) int { return s.gates.Index(domain.Handle(id)) }

// LampIndex returns the slot-order position of a lamp, or -1.
func (s *Session) LampIndex(id domain.LampID) int { return s.lamps.Index(domain.Handle(id)) }

// WireSignal returns the Signal of the wire's node.
func (s *Session) WireSignal(id domain.WireID) (domain.Signal, bool) {
	w, ok := s.wires.Get(domain.Handle(id))
	if !ok {
		return domain.Unknown, false
	}
	return s.nodes.Read(w.node)
}

// Wire returns a copy of the wire.
func (s *Session) Wire(id domain.WireID) (WireView, bool) {
	w, ok := s.wires.Get(domain.Handle(id))
	if !ok {
		return WireView{}, false
	}
	return s.wireView(id, w), true
}

// Gate returns a copy of the gate.
func (s *Session) Gate(id domain.GateID) (GateView, bool) {
	g, ok := s.gates.Get(domain.Handle(id))
	if !ok {
		return GateView{}, false
	}
	return s.gateView(id, g), true
}

// Lamp returns a copy of the lamp.
func (s *Session) Lamp(id domain.LampID) (LampView, bool) {
	l, ok := s.lamps.Get(domain.Handle(id))
	if !ok {
		return LampView{}, false
	}
	return lampView(id, l), true
}

// PinPosition returns the world position of one pin of a gate.
func (s *Session) PinPosition(id domain.GateID, p domain.Pin) (domain.Point, bool) {
	g, ok := s.gates.Get(domain.Handle(id))
	if !ok {
		return domain.Point{}, false
	}
	return domain.PinPosition(g.body, p), true
}

// Wires returns every wire in slot order.
func (s *Session) Wires() []WireView {
	out := make([]WireView, 0, s.wires.Len())
	for h, w := range s.wires.All() {
		out = append(out, s.wireView(domain.WireID(h), w))
	}
	return out
}

// Gates returns every gate in slot order.
func (s *Session) Gates() []GateView {
	out := make([]GateView, 0, s.gates.Len())
	for h, g := range s.gates.All() {
		out = append(out, s.gateView(domain.GateID(h), g))
	}
	return out
}

// Lamps returns every lamp in slot order.
func (s *Session) Lamps() []LampView {
	out := make([]LampView, 0, s.lamps.Len())
	for h, l := range s.lamps.All() {
		out = append(out, lampView(domain.LampID(h), l))
	}
	return out
}

// Node describes a live node and its holders.
func (s *Session) Node(id domain.NodeID) (NodeView, bool) {
	sig, ok := s.nodes.Read(id)
	if !ok {
		return NodeView{}, false
	}
	v := NodeView{ID: id, Signal: sig}
	for h, w := range s.wires.All() {
		if w.node == id {
			v.Wires = append(v.Wires, domain.WireID(h))
		}
	}
	for h, g := range s.gates.All() {
		for _, p := range domain.Pins {
			if g.pin(p) == id {
				v.Gates = append(v.Gates, PinRef{Gate: domain.GateID(h), Pin: p})
			}
		}
	}
	for h, l := range s.lamps.All() {
		if l.input == id {
			v.Lamps = append(v.Lamps, domain.LampID(h))
		}
	}
	return v, true
}

// Nodes describes every live node in slot order.
func (s *Session) Nodes() []NodeView {
	ids := s.nodes.IDs()
	out := make([]NodeView, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.Node(id); ok {
			out = append(out, v)
		}
	}
	return out
}

// Bindings lists every wire endpoint that is locked to a gate pin.
func (s *Session) Bindings() []BindingView {
	var out []BindingView
	for h, w := range s.wires.All() {
		for _, e := range w.endpoints() {
			b := w.ends[e]
			if !b.Bound() {
				continue
			}
			out = append(out, BindingView{
				Wire:  domain.WireID(h),
				End:   e,
				Gate:  b.Gate,
				Pin:   b.Pin,
				Point: w.endPoint(e),
			})
		}
	}
	return out
}

// LastPropagation returns the stats of the most recent Propagate call.
func (s *Session) LastPropagation() PropagationStats {
	return s.last
}

// Snapshot copies the whole circuit.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Nodes:     s.Nodes(),
		Wires:     s.Wires(),
		Gates:     s.Gates(),
		Lamps:     s.Lamps(),
		Bindings:  s.Bindings(),
		Selection: s.Selected(),
		Last:      s.last,
	}
}
