package circuit

import (
	"math"
	"slices"

	"logicgrid/internal/domain"
)

// PlaceWire finalizes a drawn polyline. The wire gets a fresh node, then
// each endpoint is snapped: onto the nearest gate pin within the pin snap
// radius, or else onto the nearest endpoint of another wire within the
// merge radius, merging nodes as it goes. Unbound lamps near either
// endpoint are bound to the resulting node. An empty polyline places
// nothing and returns a zero handle.
func (s *Session) PlaceWire(points []domain.Point) domain.WireID {
	if len(points) == 0 {
		return domain.WireID{}
	}
	node := s.nodes.Create()
	h := s.wires.Insert(wire{points: slices.Clone(points), node: node})
	id := domain.WireID(h)
	w, _ := s.wires.Get(h)
	for _, e := range w.endpoints() {
		s.connectEnd(id, w, e)
	}
	s.bindFreeLamps(w)
	return id
}

func (s *Session) connectEnd(id domain.WireID, w *wire, e End) {
	at := w.endPoint(e)
	if gid, pin, pos, ok := s.nearestPin(at); ok {
		g, _ := s.gates.Get(domain.Handle(gid))
		w.points[w.endIndex(e)] = pos
		w.ends[e] = Binding{Gate: gid, Pin: pin}
		s.joinEndpoints(pos, s.attachPin(g, pin, w.node))
		return
	}
	if other, pos, ok := s.nearestEndpoint(at, id, s.opts.MergeRadius); ok {
		ow, _ := s.wires.Get(domain.Handle(other))
		w.points[w.endIndex(e)] = pos
		s.merge(ow.node, w.node)
	}
}

// attachPin connects node to pin p of g. A pin that already holds another
// live node keeps it: node is merged into the existing one.
func (s *Session) attachPin(g *gate, p domain.Pin, node domain.NodeID) domain.NodeID {
	cur := g.pin(p)
	if cur != node && s.nodes.Alive(cur) {
		return s.merge(cur, node)
	}
	g.setPin(p, node)
	return node
}

// nearestPin finds the closest gate pin within the pin snap radius. Ties
// keep the earliest gate.
func (s *Session) nearestPin(at domain.Point) (domain.GateID, domain.Pin, domain.Point, bool) {
	var (
		bestGate domain.GateID
		bestPin  domain.Pin
		bestPos  domain.Point
		found    bool
	)
	best := math.Inf(1)
	for h, g := range s.gates.All() {
		for _, p := range domain.Pins {
			pos := domain.PinPosition(g.body, p)
			d := domain.Distance(at, pos)
			if d <= s.opts.PinSnapRadius && d < best {
				best, bestGate, bestPin, bestPos, found = d, domain.GateID(h), p, pos, true
			}
		}
	}
	return bestGate, bestPin, bestPos, found
}

// nearestEndpoint finds the closest endpoint of any wire other than skip
// within radius.
func (s *Session) nearestEndpoint(at domain.Point, skip domain.WireID, radius float64) (domain.WireID, domain.Point, bool) {
	var (
		bestWire domain.WireID
		bestPos  domain.Point
		found    bool
	)
	best := math.Inf(1)
	for h, w := range s.wires.All() {
		if domain.WireID(h) == skip {
			continue
		}
		for _, e := range w.endpoints() {
			pos := w.endPoint(e)
			d := domain.Distance(at, pos)
			if d <= radius && d < best {
				best, bestWire, bestPos, found = d, domain.WireID(h), pos, true
			}
		}
	}
	return bestWire, bestPos, found
}

// nearEndpoint reports whether any endpoint of w lies within radius of at.
func nearEndpoint(w *wire, at domain.Point, radius float64) bool {
	for _, e := range w.endpoints() {
		if domain.Within(w.endPoint(e), at, radius) {
			return true
		}
	}
	return false
}

func (s *Session) bindFreeLamps(w *wire) {
	sig, _ := s.nodes.Read(w.node)
	for _, l := range s.lamps.All() {
		if s.nodes.Alive(l.input) {
			continue
		}
		if nearEndpoint(w, l.pos, s.opts.LampConnectRadius) {
			l.input = w.node
			l.state = sig
		}
	}
}

// PlaceLamp places a lamp centred at at. It binds to the node of the
// nearest wire endpoint within the lamp connection radius and shows that
// node's Signal; with nothing in reach the lamp is unbound and UNKNOWN.
func (s *Session) PlaceLamp(at domain.Point) domain.LampID {
	l := lamp{pos: at, radius: s.opts.LampRadius, state: domain.Unknown}
	if wid, _, ok := s.nearestEndpoint(at, domain.WireID{}, s.opts.LampConnectRadius); ok {
		w, _ := s.wires.Get(domain.Handle(wid))
		l.input = w.node
		l.state, _ = s.nodes.Read(w.node)
	}
	return domain.LampID(s.lamps.Insert(l))
}

// PlaceGate places a gate with its top-left corner at at and binds free
// wire endpoints lying within the pin snap radius of its pins. An endpoint
// nearest an input takes that input when it is free or already holds the
// endpoint's node, else the other input when that one is free; with both
// inputs taken it joins the nearest one, merging nodes. An endpoint nearest
// the output joins the output node. Every endpoint in reach ends up on a
// pin, and endpoints within the merge radius of a bound pin share its node.
func (s *Session) PlaceGate(kind domain.GateKind, at domain.Point) domain.GateID {
	h := s.gates.Insert(gate{
		kind: kind,
		body: domain.Rect{Min: at, Size: s.opts.GateSize},
	})
	id := domain.GateID(h)
	g, _ := s.gates.Get(h)

	for _, w := range s.wires.All() {
		for _, e := range w.endpoints() {
			if w.ends[e].Bound() {
				continue
			}
			pin, ok := s.closestPinOf(g, w.endPoint(e))
			if !ok {
				continue
			}
			if pin.IsInput() {
				pin = s.inputFor(g, pin, w.node)
			}
			s.attachPin(g, pin, w.node)
			w.points[w.endIndex(e)] = domain.PinPosition(g.body, pin)
			w.ends[e] = Binding{Gate: id, Pin: pin}
		}
	}

	for _, p := range domain.Pins {
		if node := g.pin(p); s.nodes.Alive(node) {
			s.joinEndpoints(domain.PinPosition(g.body, p), node)
		}
	}
	return id
}

// joinEndpoints merges the node of every wire with an endpoint within the
// merge radius of at into node. It returns the surviving node.
func (s *Session) joinEndpoints(at domain.Point, node domain.NodeID) domain.NodeID {
	for _, w := range s.wires.All() {
		if w.node == node {
			continue
		}
		if nearEndpoint(w, at, s.opts.MergeRadius) {
			node = s.merge(node, w.node)
		}
	}
	return node
}

func (s *Session) closestPinOf(g *gate, at domain.Point) (domain.Pin, bool) {
	var bestPin domain.Pin
	found := false
	best := math.Inf(1)
	for _, p := range domain.Pins {
		d := domain.Distance(at, domain.PinPosition(g.body, p))
		if d <= s.opts.PinSnapRadius && d < best {
			best, bestPin, found = d, p, true
		}
	}
	return bestPin, found
}

// inputFor picks the input an endpoint carrying node binds to: want when it
// is free or already holds node, else the other input when that one is
// free, else want, which the caller merges into.
func (s *Session) inputFor(g *gate, want domain.Pin, node domain.NodeID) domain.Pin {
	if cur := g.pin(want); cur == node || !s.nodes.Alive(cur) {
		return want
	}
	other := domain.PinA
	if want == domain.PinA {
		other = domain.PinB
	}
	if !s.nodes.Alive(g.pin(other)) {
		return other
	}
	return want
}
