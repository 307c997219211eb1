package domain

import (
	"fmt"
	"strings"
)

// Signal is the tri-state value carried by a logic node
type Signal uint8

const (
	Low     Signal = iota // driven low
	High                  // driven high
	Unknown               // uninitialized or unresolved
)

func (s Signal) String() string {
	switch s {
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// Short returns the one-character form used in grid renderings and reports.
func (s Signal) Short() string {
	switch s {
	case Low:
		return "0"
	case High:
		return "1"
	default:
		return "x"
	}
}

// Defined reports whether s is LOW or HIGH.
func (s Signal) Defined() bool {
	return s == Low || s == High
}

// ParseSignal parses a signal name. Accepted forms are low/high/unknown,
// 0/1/x and l/h/u, case-insensitive.
func ParseSignal(s string) (Signal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "0", "l", "false":
		return Low, nil
	case "high", "1", "h", "true":
		return High, nil
	case "unknown", "x", "u", "?":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("invalid signal: %q", s)
}

// Resolve returns the state of a node formed by joining two nodes in states
// a and b. An UNKNOWN side takes the other side's value; two defined values
// that disagree form an ambiguous short and resolve to UNKNOWN.
func Resolve(a, b Signal) Signal {
	switch {
	case a == Unknown:
		return b
	case b == Unknown:
		return a
	case a != b:
		return Unknown
	default:
		return a
	}
}
