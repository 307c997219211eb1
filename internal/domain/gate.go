package domain

import (
	"fmt"
	"strings"
)

// GateKind is the function computed by a gate
type GateKind uint8

const (
	ConstLow GateKind = iota
	ConstHigh
	And
	Or
	Not
	Nand
	Nor
	Xor
	Xnor
)

// GateKinds lists every kind in cycling order.
var GateKinds = []GateKind{ConstLow, ConstHigh, And, Or, Not, Nand, Nor, Xor, Xnor}

// String returns the label drawn on the gate body.
func (k GateKind) String() string {
	switch k {
	case ConstLow:
		return "0"
	case ConstHigh:
		return "1"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Not:
		return "NOT"
	case Nand:
		return "NAND"
	case Nor:
		return "NOR"
	case Xor:
		return "XOR"
	case Xnor:
		return "XNOR"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the known kinds.
func (k GateKind) Valid() bool {
	return k <= Xnor
}

// Next returns the kind that follows k, wrapping XNOR back to ConstLow.
func (k GateKind) Next() GateKind {
	if k >= Xnor {
		return ConstLow
	}
	return k + 1
}

// Prev is the inverse of Next.
func (k GateKind) Prev() GateKind {
	if k == ConstLow || k > Xnor {
		return Xnor
	}
	return k - 1
}

// IsConstant reports whether the gate ignores its inputs.
func (k GateKind) IsConstant() bool {
	return k == ConstLow || k == ConstHigh
}

// Unary reports whether the gate only reads its first input.
func (k GateKind) Unary() bool {
	return k == Not
}

var gateKindNames = map[string]GateKind{
	"0":          ConstLow,
	"low":        ConstLow,
	"const_low":  ConstLow,
	"constlow":   ConstLow,
	"1":          ConstHigh,
	"high":       ConstHigh,
	"const_high": ConstHigh,
	"consthigh":  ConstHigh,
	"and":        And,
	"or":         Or,
	"not":        Not,
	"inv":        Not,
	"invert":     Not,
	"nand":       Nand,
	"nor":        Nor,
	"xor":        Xor,
	"xnor":       Xnor,
}

// ParseGateKind parses a gate label or long name, case-insensitive.
func ParseGateKind(s string) (GateKind, error) {
	if k, ok := gateKindNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return ConstLow, fmt.Errorf("invalid gate kind: %q", s)
}

// Evaluate computes the output of a gate of kind k for inputs a and b.
//
// Every comparison keys off equality to HIGH, so an UNKNOWN input behaves
// like LOW. The result is never UNKNOWN.
func Evaluate(k GateKind, a, b Signal) Signal {
	hiA, hiB := a == High, b == High
	var out bool
	switch k {
	case ConstLow:
		out = false
	case ConstHigh:
		out = true
	case And:
		out = hiA && hiB
	case Or:
		out = hiA || hiB
	case Not:
		out = !hiA
	case Nand:
		out = !(hiA && hiB)
	case Nor:
		out = !(hiA || hiB)
	case Xor:
		out = hiA != hiB
	case Xnor:
		out = hiA == hiB
	default:
		// unknown kinds buffer input A
		out = hiA
	}
	if out {
		return High
	}
	return Low
}

// FloatingInput is the value read from an input pin with no node attached.
// It is LOW rather than UNKNOWN so that circuits built only from constants
// resolve deterministically, unlike a freshly drawn wire which starts UNKNOWN.
const FloatingInput = Low

// EvaluatePins evaluates a gate whose inputs may be floating (nil).
func EvaluatePins(k GateKind, a, b *Signal) Signal {
	in1, in2 := FloatingInput, FloatingInput
	if a != nil {
		in1 = *a
	}
	if b != nil {
		in2 = *b
	}
	return Evaluate(k, in1, in2)
}

// PrimedOutput is the value a gate's output node is reset to when the gate
// kind changes, before the next propagation.
func PrimedOutput(k GateKind) Signal {
	switch k {
	case ConstHigh:
		return High
	case ConstLow:
		return Low
	default:
		return Unknown
	}
}
