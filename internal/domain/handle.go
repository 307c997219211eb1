package domain

import "fmt"

// Handle addresses a slot in a registry. Gen is bumped every time the slot
// is freed, so a handle kept across a deletion no longer matches and is
// rejected instead of aliasing whatever reuses the slot. The zero Handle
// is never issued.
type Handle struct {
	Slot uint32
	Gen  uint32
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d.%d", h.Slot, h.Gen)
}

// Typed handles, one per registry.
type (
	NodeID Handle
	WireID Handle
	GateID Handle
	LampID Handle
)

func (id NodeID) IsZero() bool { return Handle(id).IsZero() }
func (id WireID) IsZero() bool { return Handle(id).IsZero() }
func (id GateID) IsZero() bool { return Handle(id).IsZero() }
func (id LampID) IsZero() bool { return Handle(id).IsZero() }
func (id NodeID) String() string { return "n" + Handle(id).String() }
func (id WireID) String() string { return "w" + Handle(id).String() }
func (id GateID) String() string { return "g" + Handle(id).String() }
func (id LampID) String() string { return "l" + Handle(id).String() }
