package mcp

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"logicgrid/internal/application"
	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// Session serializes tool calls against one circuit. The MCP server runs
// handlers concurrently, the circuit is single-threaded.
type Session struct {
	mu      sync.Mutex
	circuit *circuit.Session
}

// NewSession creates an empty circuit for the tools to share.
func NewSession(opts circuit.Options) *Session {
	return &Session{circuit: circuit.New(opts)}
}

// do runs fn under the lock and turns its message into a tool result.
func (s *Session) do(fn func(ed ports.CircuitEditor) (string, error)) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := fn(s.circuit)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(msg), nil
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// parsePoint accepts "x,y" or "x y".
func parsePoint(field, s string) (domain.Point, error) {
	s = strings.TrimSpace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 2 {
		return domain.Point{}, &application.ValidationError{Field: field, Message: fmt.Sprintf("expected x,y, got %q", s)}
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil {
		return domain.Point{}, &application.ValidationError{Field: field, Message: fmt.Sprintf("invalid point %q", s)}
	}
	return domain.Pt(x, y), nil
}

// parsePoints reads a whitespace separated list of x,y pairs.
func parsePoints(field, s string) ([]domain.Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, &application.ValidationError{Field: field, Message: "at least one point is required"}
	}
	pts := make([]domain.Point, 0, len(fields))
	for i, f := range fields {
		p, err := parsePoint(fmt.Sprintf("%s[%d]", field, i), f)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// parseIndex reads a slot-order position. Empty means the selection.
func parseIndex(field, s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return -1, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 {
		return 0, &application.ValidationError{Field: field, Message: fmt.Sprintf("invalid index %q", s)}
	}
	return i, nil
}
