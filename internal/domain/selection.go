package domain

// SelectionKind tags what a Selection points at
type SelectionKind uint8

const (
	SelectNone SelectionKind = iota
	SelectWire
	SelectLamp
	SelectGate
)

func (k SelectionKind) String() string {
	switch k {
	case SelectWire:
		return "wire"
	case SelectLamp:
		return "lamp"
	case SelectGate:
		return "gate"
	default:
		return "none"
	}
}

// Selection is a tagged reference to at most one placed entity.
type Selection struct {
	Kind   SelectionKind
	Handle Handle
}

// NoSelection selects nothing.
var NoSelection = Selection{}

// WireSelection selects a wire.
func WireSelection(id WireID) Selection {
	return Selection{Kind: SelectWire, Handle: Handle(id)}
}

// LampSelection selects a lamp.
func LampSelection(id LampID) Selection {
	return Selection{Kind: SelectLamp, Handle: Handle(id)}
}

// GateSelection selects a gate.
func GateSelection(id GateID) Selection {
	return Selection{Kind: SelectGate, Handle: Handle(id)}
}

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool {
	return s.Kind == SelectNone
}

// Wire returns the selected wire handle, if a wire is selected.
func (s Selection) Wire() (WireID, bool) {
	return WireID(s.Handle), s.Kind == SelectWire
}

// Lamp returns the selected lamp handle, if a lamp is selected.
func (s Selection) Lamp() (LampID, bool) {
	return LampID(s.Handle), s.Kind == SelectLamp
}

// Gate returns the selected gate handle, if a gate is selected.
func (s Selection) Gate() (GateID, bool) {
	return GateID(s.Handle), s.Kind == SelectGate
}

func (s Selection) String() string {
	if s.IsNone() {
		return "none"
	}
	return s.Kind.String() + " " + s.Handle.String()
}
