package circuit

import "logicgrid/internal/domain"

// SetGateKind changes a gate's kind, primes its output node with the new
// kind's starting value and propagates.
func (s *Session) SetGateKind(id domain.GateID, kind domain.GateKind) bool {
	g, ok := s.gates.Get(domain.Handle(id))
	if !ok {
		return false
	}
	g.kind = kind
	s.nodes.Write(g.out, domain.PrimedOutput(kind))
	s.Propagate()
	return true
}

// CycleGateKind advances a gate to the next kind, wrapping XNOR back to the
// LOW constant, and propagates.
func (s *Session) CycleGateKind(id domain.GateID) (domain.GateKind, bool) {
	g, ok := s.gates.Get(domain.Handle(id))
	if !ok {
		return 0, false
	}
	next := g.kind.Next()
	s.SetGateKind(id, next)
	return next, true
}

// ForceWireState writes v to the wire's node and propagates. Gates driving
// the node may overwrite it during propagation.
func (s *Session) ForceWireState(id domain.WireID, v domain.Signal) bool {
	w, ok := s.wires.Get(domain.Handle(id))
	if !ok {
		return false
	}
	s.nodes.Write(w.node, v)
	s.Propagate()
	return true
}
