package mcp

import (
	"bytes"
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"logicgrid/internal/adapters/script"
	"logicgrid/internal/application"
	"logicgrid/internal/application/commands"
	"logicgrid/internal/ports"
)

// RegisterWriteTools adds the circuit editing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, sess *Session) {
	s.AddTool(placeWireTool(), placeWireHandler(sess))
	s.AddTool(placeGateTool(), placeGateHandler(sess))
	s.AddTool(placeLampTool(), placeLampHandler(sess))
	s.AddTool(selectAtTool(), selectAtHandler(sess))
	s.AddTool(deleteTool(), deleteHandler(sess))
	s.AddTool(setGateKindTool(), setGateKindHandler(sess))
	s.AddTool(cycleGateKindTool(), cycleGateKindHandler(sess))
	s.AddTool(forceWireStateTool(), forceWireStateHandler(sess))
	s.AddTool(propagateTool(), propagateHandler(sess))
	s.AddTool(clearTool(), clearHandler(sess))
	s.AddTool(runScriptTool(), runScriptHandler(sess))
}

// --- place_wire ---

func placeWireTool() mcp.Tool {
	return mcp.NewTool("place_wire",
		mcp.WithDescription("Draw a wire through a list of points. Each end snaps to a gate pin within reach, otherwise to another wire end, and joins that node."),
		mcp.WithString("points",
			mcp.Description("Space separated x,y points, e.g. \"0,0 40,0 40,20\""),
			mcp.Required(),
		),
	)
}

func placeWireHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pts, err := parsePoints("points", req.GetString("points", ""))
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewPlaceWireCommand(ed, pts).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- place_gate ---

func placeGateTool() mcp.Tool {
	return mcp.NewTool("place_gate",
		mcp.WithDescription("Place a gate with its top-left corner at a point. Free wire ends near its pins are connected."),
		mcp.WithString("kind",
			mcp.Description("Gate kind: AND, OR, NOT, NAND, NOR, XOR, XNOR, 1 (constant HIGH) or 0 (constant LOW)"),
			mcp.Required(),
		),
		mcp.WithString("at",
			mcp.Description("Top-left corner as x,y"),
			mcp.Required(),
		),
	)
}

func placeGateHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := application.ParseGateKind(req.GetString("kind", ""))
		if err != nil {
			return toolError(err)
		}
		at, err := parsePoint("at", req.GetString("at", ""))
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewPlaceGateCommand(ed, kind, at).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- place_lamp ---

func placeLampTool() mcp.Tool {
	return mcp.NewTool("place_lamp",
		mcp.WithDescription("Place a lamp. It reads the nearest wire end in reach, or shows UNKNOWN until a wire is drawn to it."),
		mcp.WithString("at",
			mcp.Description("Lamp centre as x,y"),
			mcp.Required(),
		),
	)
}

func placeLampHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := parsePoint("at", req.GetString("at", ""))
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewPlaceLampCommand(ed, at).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- select_at ---

func selectAtTool() mcp.Tool {
	return mcp.NewTool("select_at",
		mcp.WithDescription("Select whatever lies under a point, or clear the selection if nothing does."),
		mcp.WithString("at",
			mcp.Description("Point as x,y"),
			mcp.Required(),
		),
	)
}

func selectAtHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := parsePoint("at", req.GetString("at", ""))
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewSelectCommand(ed, at).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a wire, gate or lamp. Without arguments deletes the current selection."),
		mcp.WithString("kind",
			mcp.Description("Entity kind: wire, gate or lamp. Required with index."),
		),
		mcp.WithString("index",
			mcp.Description("Position in slot order. Omit to delete the selection."),
		),
	)
}

func deleteHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, err := parseTarget(req)
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewDeleteCommand(ed, target).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

func parseTarget(req mcp.CallToolRequest) (commands.Target, error) {
	target := commands.SelectedTarget()
	if k := req.GetString("kind", ""); k != "" {
		kind, err := application.ParseSelectionKind(strings.ToLower(k))
		if err != nil {
			return target, err
		}
		target.Kind = kind
	}
	index, err := parseIndex("index", req.GetString("index", ""))
	if err != nil {
		return target, err
	}
	target.Index = index
	return target, nil
}

// --- set_gate_kind ---

func setGateKindTool() mcp.Tool {
	return mcp.NewTool("set_gate_kind",
		mcp.WithDescription("Change a gate's kind and propagate."),
		mcp.WithString("kind",
			mcp.Description("New gate kind"),
			mcp.Required(),
		),
		mcp.WithString("index",
			mcp.Description("Gate position in slot order. Omit to use the selected gate."),
		),
	)
}

func setGateKindHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := application.ParseGateKind(req.GetString("kind", ""))
		if err != nil {
			return toolError(err)
		}
		index, err := parseIndex("index", req.GetString("index", ""))
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewSetGateKindCommand(ed, index, kind).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- cycle_gate_kind ---

func cycleGateKindTool() mcp.Tool {
	return mcp.NewTool("cycle_gate_kind",
		mcp.WithDescription("Advance a gate to the next kind, in the order 0, 1, AND, OR, NOT, NAND, NOR, XOR, XNOR, then back to 0."),
		mcp.WithString("index",
			mcp.Description("Gate position in slot order. Omit to use the selected gate."),
		),
	)
}

func cycleGateKindHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, err := parseIndex("index", req.GetString("index", ""))
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewCycleGateKindCommand(ed, index).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- force_wire_state ---

func forceWireStateTool() mcp.Tool {
	return mcp.NewTool("force_wire_state",
		mcp.WithDescription("Write a value onto a wire's node and propagate. A gate driving the node overwrites it."),
		mcp.WithString("signal",
			mcp.Description("HIGH, LOW or UNKNOWN (1, 0 and x also work)"),
			mcp.Required(),
		),
		mcp.WithString("index",
			mcp.Description("Wire position in slot order. Omit to use the selected wire."),
		),
	)
}

func forceWireStateHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		v, err := application.ParseSignal(req.GetString("signal", ""))
		if err != nil {
			return toolError(err)
		}
		index, err := parseIndex("index", req.GetString("index", ""))
		if err != nil {
			return toolError(err)
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewForceWireStateCommand(ed, index, v).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- propagate ---

func propagateTool() mcp.Tool {
	return mcp.NewTool("propagate",
		mcp.WithDescription("Evaluate every gate until no node changes or the pass cap is hit."),
	)
}

func propagateHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewPropagateCommand(ed).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- clear ---

func clearTool() mcp.Tool {
	return mcp.NewTool("clear",
		mcp.WithDescription("Remove every wire, gate and lamp."),
	)
}

func clearHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			result, err := commands.NewClearCommand(ed).Execute(ctx)
			if err != nil {
				return "", err
			}
			return result.Message, nil
		})
	}
}

// --- run_script ---

func runScriptTool() mcp.Tool {
	return mcp.NewTool("run_script",
		mcp.WithDescription("Run editor statements, one per line (wire, gate, lamp, select, delete, kind, cycle, force, propagate, clear, show). Stops at the first failing line."),
		mcp.WithString("script",
			mcp.Description("Statements separated by newlines; # starts a comment"),
			mcp.Required(),
		),
	)
}

func runScriptHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		src := req.GetString("script", "")
		if strings.TrimSpace(src) == "" {
			return toolError(&application.ValidationError{Field: "script", Message: "script is required"})
		}
		return sess.do(func(ed ports.CircuitEditor) (string, error) {
			var out bytes.Buffer
			if err := script.NewRunner(ed, &out).RunString(ctx, src); err != nil {
				if out.Len() == 0 {
					return "", err
				}
				return "", &scriptError{output: out.String(), err: err}
			}
			return strings.TrimRight(out.String(), "\n"), nil
		})
	}
}

// scriptError keeps the output of the statements that ran before a failure.
type scriptError struct {
	output string
	err    error
}

func (e *scriptError) Error() string {
	return e.output + "error: " + e.err.Error()
}

func (e *scriptError) Unwrap() error { return e.err }
