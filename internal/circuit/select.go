package circuit

import "logicgrid/internal/domain"

// HitTest returns what lies under at without changing the selection.
// Lamps win over gates and gates over wires; within a kind the first
// entity in slot order wins.
func (s *Session) HitTest(at domain.Point) domain.Selection {
	for h, l := range s.lamps.All() {
		if domain.Within(at, l.pos, l.radius) {
			return domain.LampSelection(domain.LampID(h))
		}
	}
	for h, g := range s.gates.All() {
		if g.body.Contains(at) {
			return domain.GateSelection(domain.GateID(h))
		}
	}
	for h, w := range s.wires.All() {
		if domain.PolylineDistance(at, w.points) <= s.opts.PickRadius {
			return domain.WireSelection(domain.WireID(h))
		}
	}
	return domain.NoSelection
}

// SelectAt selects whatever lies under at, or nothing on a miss.
func (s *Session) SelectAt(at domain.Point) domain.Selection {
	s.selected = s.HitTest(at)
	return s.selected
}

// Select sets the selection. Stale handles are rejected and leave the
// selection unchanged; selecting None clears it.
func (s *Session) Select(sel domain.Selection) bool {
	if !sel.IsNone() && !s.Valid(sel) {
		return false
	}
	s.selected = sel
	return true
}

// Selected returns the current selection, or None when the selected entity
// no longer exists.
func (s *Session) Selected() domain.Selection {
	if s.selected.IsNone() || !s.Valid(s.selected) {
		return domain.NoSelection
	}
	return s.selected
}

// ClearSelection deselects.
func (s *Session) ClearSelection() {
	s.selected = domain.NoSelection
}

// Valid reports whether sel addresses a live entity.
func (s *Session) Valid(sel domain.Selection) bool {
	switch sel.Kind {
	case domain.SelectWire:
		return s.wires.Contains(sel.Handle)
	case domain.SelectLamp:
		return s.lamps.Contains(sel.Handle)
	case domain.SelectGate:
		return s.gates.Contains(sel.Handle)
	default:
		return false
	}
}
