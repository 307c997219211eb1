package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"logicgrid/internal/adapters/report"
	"logicgrid/internal/application"
	"logicgrid/internal/application/commands"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// RegisterReadTools adds the read-only circuit tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, sess *Session) {
	s.AddTool(snapshotTool(), snapshotHandler(sess))
	s.AddTool(inspectTool(), inspectHandler(sess))
	s.AddTool(hitTestTool(), hitTestHandler(sess))
	s.AddTool(truthTableTool(), truthTableHandler())
}

// --- snapshot ---

func snapshotTool() mcp.Tool {
	return mcp.NewTool("snapshot",
		mcp.WithDescription("Describe the whole circuit: nodes, wires, gates, lamps, the selection and the last propagation run."),
	)
}

func snapshotHandler(sess *Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			return report.String(ed), nil
		})
	}
}

// --- inspect ---

func inspectTool() mcp.Tool {
	return mcp.NewTool("inspect",
		mcp.WithDescription("Show one wire, gate or lamp by its position in slot order."),
		mcp.WithString("kind",
			mcp.Description("Entity kind: wire, gate or lamp"),
			mcp.Required(),
		),
		mcp.WithString("index",
			mcp.Description("Position in slot order, starting at 0"),
			mcp.Required(),
		),
	)
}

func inspectHandler(sess *Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := application.ParseSelectionKind(strings.ToLower(req.GetString("kind", "")))
		if err != nil {
			return toolError(err)
		}
		index, err := parseIndex("index", req.GetString("index", ""))
		if err != nil {
			return toolError(err)
		}
		if index < 0 {
			return toolError(fmt.Errorf("index is required"))
		}

		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			return inspect(ed, kind, index)
		})
	}
}

func inspect(ed ports.CircuitReader, kind domain.SelectionKind, index int) (string, error) {
	notFound := &application.NotFoundError{Kind: kind.String(), Index: index}
	switch kind {
	case domain.SelectWire:
		id, ok := ed.WireAt(index)
		if !ok {
			return "", notFound
		}
		w, _ := ed.Wire(id)
		pts := make([]string, len(w.Points))
		for i, p := range w.Points {
			pts[i] = domain.FormatPoint(p)
		}
		return fmt.Sprintf("wire %d: %s on %s, points %s", index, w.Signal, w.Node, strings.Join(pts, " ")), nil
	case domain.SelectGate:
		id, ok := ed.GateAt(index)
		if !ok {
			return "", notFound
		}
		g, _ := ed.Gate(id)
		return fmt.Sprintf("gate %d: %s at %s, a=%s b=%s out=%s",
			index, g.Kind, domain.FormatPoint(g.Body.Min), g.InputA, g.InputB, g.Output), nil
	default:
		id, ok := ed.LampAt(index)
		if !ok {
			return "", notFound
		}
		l, _ := ed.Lamp(id)
		return fmt.Sprintf("lamp %d: %s at %s, input %s", index, l.Signal, domain.FormatPoint(l.Pos), l.Input), nil
	}
}

// --- hit_test ---

func hitTestTool() mcp.Tool {
	return mcp.NewTool("hit_test",
		mcp.WithDescription("Report which entity is under a point without changing the selection. Lamps win over gates, gates over wires."),
		mcp.WithString("at",
			mcp.Description("Point as x,y"),
			mcp.Required(),
		),
	)
}

func hitTestHandler(sess *Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := parsePoint("at", req.GetString("at", ""))
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			sel := ed.HitTest(at)
			if sel.IsNone() {
				return "Nothing at " + domain.FormatPoint(at), nil
			}
			return fmt.Sprintf("%s at %s", describeHit(ed, sel), domain.FormatPoint(at)), nil
		})
	}
}

func describeHit(ed ports.CircuitReader, sel domain.Selection) string {
	if id, ok := sel.Wire(); ok {
		return fmt.Sprintf("wire %d", ed.WireIndex(id))
	}
	if id, ok := sel.Gate(); ok {
		return fmt.Sprintf("gate %d", ed.GateIndex(id))
	}
	id, _ := sel.Lamp()
	return fmt.Sprintf("lamp %d", ed.LampIndex(id))
}

// --- truth_table ---

func truthTableTool() mcp.Tool {
	return mcp.NewTool("truth_table",
		mcp.WithDescription("Print the truth table of a gate kind."),
		mcp.WithString("kind",
			mcp.Description("Gate kind: AND, OR, NOT, NAND, NOR, XOR, XNOR, 1 (constant HIGH) or 0 (constant LOW)"),
			mcp.Required(),
		),
	)
}

func truthTableHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := application.ParseGateKind(req.GetString("kind", ""))
		if err != nil {
			return toolError(err)
		}
		result, err := commands.NewTruthTableCommand(kind).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
