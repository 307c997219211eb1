// Package report renders a circuit as a plain-text netlist.
package report

import (
	"fmt"
	"io"
	"strings"

	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
	"logicgrid/internal/ports"
)

// Summary returns a one-line description of the circuit.
func Summary(c ports.CircuitReader) string {
	snap := c.Snapshot()
	return summary(snap)
}

func summary(snap circuit.Snapshot) string {
	st := "not propagated"
	if snap.Last.Passes > 0 {
		st = fmt.Sprintf("%d pass(es), converged", snap.Last.Passes)
		if !snap.Last.Converged {
			st = fmt.Sprintf("%d passes, did not settle", snap.Last.Passes)
		}
	}
	return fmt.Sprintf("%d wire(s), %d gate(s), %d lamp(s), %d node(s); %s",
		len(snap.Wires), len(snap.Gates), len(snap.Lamps), len(snap.Nodes), st)
}

// String renders the full report.
func String(c ports.CircuitReader) string {
	var b strings.Builder
	_ = Write(&b, c)
	return b.String()
}

// Write renders the full report to w. Entities are listed in slot order
// and referred to by their position in that order.
func Write(w io.Writer, c ports.CircuitReader) error {
	snap := c.Snapshot()
	ix := newIndex(snap)

	var b strings.Builder
	fmt.Fprintf(&b, "circuit: %s\n", summary(snap))
	fmt.Fprintf(&b, "selection: %s\n", ix.selection(snap.Selection))

	if len(snap.Nodes) > 0 {
		b.WriteString("\nnodes\n")
		for _, n := range snap.Nodes {
			fmt.Fprintf(&b, "  %s %s wires %s pins %s lamps %s\n",
				padRight(n.ID.String(), 7),
				padRight(n.Signal.String(), 7),
				padRight(ix.wireList(n.Wires), 8),
				padRight(ix.pinList(n.Gates), 16),
				ix.lampList(n.Lamps))
		}
	}

	if len(snap.Wires) > 0 {
		b.WriteString("\nwires\n")
		for i, wv := range snap.Wires {
			pts := make([]string, len(wv.Points))
			for j, p := range wv.Points {
				pts[j] = domain.FormatPoint(p)
			}
			fmt.Fprintf(&b, "  %s %s %s %s",
				padRight(fmt.Sprint(i), 3),
				padRight(wv.Node.String(), 7),
				padRight(wv.Signal.String(), 7),
				strings.Join(pts, " -> "))
			if wv.Start.Bound() {
				fmt.Fprintf(&b, "  start=%s", ix.binding(wv.Start))
			}
			if wv.End.Bound() && len(wv.Points) > 1 {
				fmt.Fprintf(&b, "  end=%s", ix.binding(wv.End))
			}
			b.WriteString("\n")
		}
	}

	if len(snap.Gates) > 0 {
		b.WriteString("\ngates\n")
		for i, g := range snap.Gates {
			fmt.Fprintf(&b, "  %s %s at %s",
				padRight(fmt.Sprint(i), 3),
				padRight(g.Kind.String(), 5),
				padRight(domain.FormatPoint(g.Body.Min), 9))
			for _, p := range domain.Pins {
				fmt.Fprintf(&b, " %s=%s", p, ix.pinNode(g.PinNode(p)))
			}
			b.WriteString("\n")
		}
	}

	if len(snap.Lamps) > 0 {
		b.WriteString("\nlamps\n")
		for i, l := range snap.Lamps {
			fmt.Fprintf(&b, "  %s at %s %s %s\n",
				padRight(fmt.Sprint(i), 3),
				padRight(domain.FormatPoint(l.Pos), 9),
				padRight(ix.pinNode(l.Input), 7),
				l.Signal)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// index maps handles back to slot-order positions.
type index struct {
	wires map[domain.WireID]int
	gates map[domain.GateID]int
	lamps map[domain.LampID]int
	nodes map[domain.NodeID]domain.Signal
}

func newIndex(snap circuit.Snapshot) *index {
	ix := &index{
		wires: make(map[domain.WireID]int, len(snap.Wires)),
		gates: make(map[domain.GateID]int, len(snap.Gates)),
		lamps: make(map[domain.LampID]int, len(snap.Lamps)),
		nodes: make(map[domain.NodeID]domain.Signal, len(snap.Nodes)),
	}
	for i, w := range snap.Wires {
		ix.wires[w.ID] = i
	}
	for i, g := range snap.Gates {
		ix.gates[g.ID] = i
	}
	for i, l := range snap.Lamps {
		ix.lamps[l.ID] = i
	}
	for _, n := range snap.Nodes {
		ix.nodes[n.ID] = n.Signal
	}
	return ix
}

func (ix *index) selection(sel domain.Selection) string {
	switch sel.Kind {
	case domain.SelectWire:
		return fmt.Sprintf("wire %d", ix.wires[domain.WireID(sel.Handle)])
	case domain.SelectGate:
		return fmt.Sprintf("gate %d", ix.gates[domain.GateID(sel.Handle)])
	case domain.SelectLamp:
		return fmt.Sprintf("lamp %d", ix.lamps[domain.LampID(sel.Handle)])
	default:
		return "none"
	}
}

func (ix *index) binding(b circuit.Binding) string {
	return fmt.Sprintf("gate %d %s", ix.gates[b.Gate], b.Pin)
}

func (ix *index) pinNode(id domain.NodeID) string {
	if _, ok := ix.nodes[id]; !ok {
		return "-"
	}
	return id.String()
}

func (ix *index) wireList(ids []domain.WireID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(ix.wires[id])
	}
	return list(parts)
}

func (ix *index) lampList(ids []domain.LampID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(ix.lamps[id])
	}
	return list(parts)
}

func (ix *index) pinList(refs []circuit.PinRef) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = fmt.Sprintf("g%d.%s", ix.gates[r.Gate], r.Pin)
	}
	return list(parts)
}

func list(parts []string) string {
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
