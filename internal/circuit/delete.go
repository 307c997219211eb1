package circuit

import "logicgrid/internal/domain"

// Delete removes the entity sel addresses. None and stale handles are a
// no-op and return false.
func (s *Session) Delete(sel domain.Selection) bool {
	var ok bool
	switch sel.Kind {
	case domain.SelectWire:
		ok = s.DeleteWire(domain.WireID(sel.Handle))
	case domain.SelectLamp:
		ok = s.DeleteLamp(domain.LampID(sel.Handle))
	case domain.SelectGate:
		ok = s.DeleteGate(domain.GateID(sel.Handle))
	}
	return ok
}

// DeleteSelected deletes the selected entity.
func (s *Session) DeleteSelected() bool {
	return s.Delete(s.selected)
}

func (s *Session) dropSelection(sel domain.Selection) {
	if s.selected == sel {
		s.selected = domain.NoSelection
	}
}

// DeleteWire removes a wire. When it was the last wire on its node, every
// gate pin and lamp on that node is detached and the node released.
// Otherwise the node survives with its Signal; only the gate pins bound
// through this wire and the lamps reachable only through its endpoints
// are detached.
func (s *Session) DeleteWire(id domain.WireID) bool {
	w, ok := s.wires.Get(domain.Handle(id))
	if !ok {
		return false
	}
	gone := *w
	gone.points = append([]domain.Point(nil), w.points...)
	s.wires.Remove(domain.Handle(id))
	s.dropSelection(domain.WireSelection(id))

	node := gone.node
	if !s.nodeHasWires(node) {
		for _, g := range s.gates.All() {
			for _, p := range domain.Pins {
				if g.pin(p) == node {
					g.setPin(p, domain.NodeID{})
				}
			}
		}
		for _, l := range s.lamps.All() {
			if l.input == node {
				detachLamp(l)
			}
		}
		s.nodes.Release(node)
		return true
	}

	for _, e := range gone.endpoints() {
		b := gone.ends[e]
		if !b.Bound() || s.pinStillWired(b) {
			continue
		}
		if g, ok := s.gates.Get(domain.Handle(b.Gate)); ok && g.pin(b.Pin) == node {
			g.setPin(b.Pin, domain.NodeID{})
		}
	}
	for _, l := range s.lamps.All() {
		if l.input != node || !nearEndpoint(&gone, l.pos, s.opts.LampConnectRadius) {
			continue
		}
		if !s.lampReachable(l.pos, node) {
			detachLamp(l)
		}
	}
	return true
}

func detachLamp(l *lamp) {
	l.input = domain.NodeID{}
	l.state = domain.Unknown
}

func (s *Session) nodeHasWires(node domain.NodeID) bool {
	for _, w := range s.wires.All() {
		if w.node == node {
			return true
		}
	}
	return false
}

// pinStillWired reports whether a remaining wire is bound to the same pin.
func (s *Session) pinStillWired(b Binding) bool {
	for _, w := range s.wires.All() {
		for _, e := range w.endpoints() {
			if w.ends[e] == b {
				return true
			}
		}
	}
	return false
}

// lampReachable reports whether a remaining wire on node has an endpoint
// within lamp connection radius of at.
func (s *Session) lampReachable(at domain.Point, node domain.NodeID) bool {
	for _, w := range s.wires.All() {
		if w.node == node && nearEndpoint(w, at, s.opts.LampConnectRadius) {
			return true
		}
	}
	return false
}

// DeleteGate removes a gate and clears the wire endpoint bindings that name
// it. Wires keep their nodes and the last Signal written to them.
func (s *Session) DeleteGate(id domain.GateID) bool {
	if !s.gates.Remove(domain.Handle(id)) {
		return false
	}
	for _, w := range s.wires.All() {
		for i := range w.ends {
			if w.ends[i].Gate == id {
				w.ends[i] = Binding{}
			}
		}
	}
	s.dropSelection(domain.GateSelection(id))
	return true
}

// DeleteLamp removes a lamp.
func (s *Session) DeleteLamp(id domain.LampID) bool {
	if !s.lamps.Remove(domain.Handle(id)) {
		return false
	}
	s.dropSelection(domain.LampSelection(id))
	return true
}
