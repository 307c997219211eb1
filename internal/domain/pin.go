package domain

// Pin is one of a gate's three connection points
type Pin uint8

const (
	PinA   Pin = iota // input 1
	PinB              // input 2
	PinOut            // output
)

// Pins lists the pins in search order.
var Pins = []Pin{PinA, PinB, PinOut}

func (p Pin) String() string {
	switch p {
	case PinA:
		return "in1"
	case PinB:
		return "in2"
	case PinOut:
		return "out"
	default:
		return "?"
	}
}

// IsInput reports whether p is one of the two input pins.
func (p Pin) IsInput() bool {
	return p == PinA || p == PinB
}

// Default gate body size in world units.
const (
	GateWidth  = 20.0
	GateHeight = 14.0
)

// PinPosition returns the world position of pin p on a gate body r.
// Inputs sit on the left edge at a quarter and three quarters of the
// height, the output in the middle of the right edge.
func PinPosition(r Rect, p Pin) Point {
	switch p {
	case PinA:
		return Pt(r.Min.X, r.Min.Y+r.Size.Y*0.25)
	case PinB:
		return Pt(r.Min.X, r.Min.Y+r.Size.Y*0.75)
	default:
		return Pt(r.Min.X+r.Size.X, r.Min.Y+r.Size.Y*0.5)
	}
}
