package circuit

import (
	"reflect"
	"testing"

	"logicgrid/internal/domain"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	return New(Options{})
}

func wireSignal(t *testing.T, s *Session, id domain.WireID) domain.Signal {
	t.Helper()
	v, ok := s.WireSignal(id)
	if !ok {
		t.Fatalf("wire %s not found", id)
	}
	return v
}

func lampSignal(t *testing.T, s *Session, id domain.LampID) domain.Signal {
	t.Helper()
	l, ok := s.Lamp(id)
	if !ok {
		t.Fatalf("lamp %s not found", id)
	}
	return l.Signal
}

func wireNode(t *testing.T, s *Session, id domain.WireID) domain.NodeID {
	t.Helper()
	w, ok := s.Wire(id)
	if !ok {
		t.Fatalf("wire %s not found", id)
	}
	return w.Node
}

func pts(xy ...float64) []domain.Point {
	out := make([]domain.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, domain.Pt(xy[i], xy[i+1]))
	}
	return out
}

// buildAnd wires a HIGH source and a LOW source into an AND gate and
// returns the AND gate's output wire.
func buildAnd(t *testing.T, s *Session) (domain.GateID, domain.WireID) {
	t.Helper()
	s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
	s.PlaceGate(domain.ConstLow, domain.Pt(0, 40))
	and := s.PlaceGate(domain.And, domain.Pt(100, 20))

	s.PlaceWire(pts(20, 7, 100, 20))
	s.PlaceWire(pts(20, 47, 100, 30))
	out := s.PlaceWire(pts(120, 27, 160, 27))
	return and, out
}

func TestPropagate_ConstantsIntoAnd(t *testing.T) {
	s := newSession(t)
	and, out := buildAnd(t, s)

	g, _ := s.Gate(and)
	if g.InputA.IsZero() || g.InputB.IsZero() || g.Output.IsZero() {
		t.Fatalf("AND pins not all bound: %+v", g)
	}
	if g.InputA == g.InputB {
		t.Fatal("AND inputs share a node")
	}

	st := s.Propagate()
	if !st.Converged {
		t.Errorf("propagation did not converge: %+v", st)
	}
	if got := wireSignal(t, s, out); got != domain.Low {
		t.Errorf("AND output = %s, want LOW", got)
	}

	w, _ := s.WireAt(0)
	view, _ := s.Wire(w)
	if end := view.Points[len(view.Points)-1]; end != domain.Pt(100, 23.5) {
		t.Errorf("wire end not snapped onto input 1: %v", end)
	}
	if len(s.Bindings()) != 5 {
		t.Errorf("expected 5 endpoint bindings, got %d", len(s.Bindings()))
	}
}

func TestPlaceWire_CoincidentEndpointsShareNode(t *testing.T) {
	s := newSession(t)
	w1 := s.PlaceWire(pts(0, 0, 40, 0))
	w2 := s.PlaceWire(pts(40, 2, 40, 40))

	if wireNode(t, s, w1) != wireNode(t, s, w2) {
		t.Fatal("wires drawn to the same cell have different nodes")
	}
	if s.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", s.NodeCount())
	}
	view, _ := s.Wire(w2)
	if view.Points[0] != domain.Pt(40, 0) {
		t.Errorf("endpoint not snapped onto existing endpoint: %v", view.Points[0])
	}

	s.ForceWireState(w1, domain.High)
	if got := wireSignal(t, s, w2); got != domain.High {
		t.Errorf("second wire reads %s, want HIGH", got)
	}
}

func TestPlaceLamp_FollowsWire(t *testing.T) {
	s := newSession(t)
	w := s.PlaceWire(pts(0, 0, 40, 0))
	s.ForceWireState(w, domain.High)

	l := s.PlaceLamp(domain.Pt(45, 0))
	s.Propagate()
	if got := lampSignal(t, s, l); got != domain.High {
		t.Fatalf("lamp = %s, want HIGH", got)
	}

	s.DeleteWire(w)
	s.Propagate()
	if got := lampSignal(t, s, l); got != domain.Unknown {
		t.Errorf("lamp after wire deletion = %s, want UNKNOWN", got)
	}
	if lv, _ := s.Lamp(l); !lv.Input.IsZero() {
		t.Error("lamp still bound after its wire was deleted")
	}
}

func TestPlaceWire_BindsExistingLamp(t *testing.T) {
	s := newSession(t)
	l := s.PlaceLamp(domain.Pt(0, 5))
	if got := lampSignal(t, s, l); got != domain.Unknown {
		t.Fatalf("unbound lamp = %s, want UNKNOWN", got)
	}

	w := s.PlaceWire(pts(0, 0, 40, 0))
	s.ForceWireState(w, domain.High)
	if got := lampSignal(t, s, l); got != domain.High {
		t.Errorf("lamp = %s, want HIGH", got)
	}
}

func TestPropagate_NandWithFloatingInputs(t *testing.T) {
	s := newSession(t)
	s.PlaceGate(domain.Nand, domain.Pt(0, 0))
	out := s.PlaceWire(pts(20, 7, 60, 7))

	s.Propagate()
	if got := wireSignal(t, s, out); got != domain.High {
		t.Errorf("NAND(floating, floating) = %s, want HIGH", got)
	}
}

func TestDeleteGate_DriverLeavesStaleValue(t *testing.T) {
	s := newSession(t)
	src := s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
	w := s.PlaceWire(pts(20, 7, 60, 7))
	s.Propagate()

	if !s.DeleteGate(src) {
		t.Fatal("DeleteGate failed")
	}
	s.Propagate()

	if got := wireSignal(t, s, w); got != domain.High {
		t.Errorf("orphaned wire = %s, want last value HIGH", got)
	}
	view, _ := s.Wire(w)
	if view.Start.Bound() {
		t.Error("binding to the deleted gate survived")
	}
}

func TestDeleteGate_LeavesOtherGatesBound(t *testing.T) {
	build := func(t *testing.T) (*Session, domain.GateID, domain.GateID, domain.WireID, domain.WireID) {
		t.Helper()
		s := newSession(t)
		src := s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
		not := s.PlaceGate(domain.Not, domain.Pt(60, 0))
		link := s.PlaceWire(pts(20, 7, 60, 3.5))
		out := s.PlaceWire(pts(80, 7, 120, 7))
		s.Propagate()
		return s, src, not, link, out
	}

	t.Run("delete driver", func(t *testing.T) {
		s, src, not, link, out := build(t)
		before, _ := s.Gate(not)

		if !s.DeleteGate(src) {
			t.Fatal("DeleteGate failed")
		}
		after, ok := s.Gate(not)
		if !ok {
			t.Fatal("remaining gate is gone")
		}
		if after.InputA != before.InputA || after.Output != before.Output {
			t.Errorf("remaining gate pins changed: %+v -> %+v", before, after)
		}
		if after.InputA != wireNode(t, s, link) {
			t.Error("remaining gate input no longer on the link wire's node")
		}

		v, _ := s.Wire(link)
		if v.Start.Bound() {
			t.Error("binding to the deleted gate survived")
		}
		if v.End != (Binding{Gate: not, Pin: domain.PinA}) {
			t.Errorf("link end binding = %+v", v.End)
		}
		ov, _ := s.Wire(out)
		if ov.Start != (Binding{Gate: not, Pin: domain.PinOut}) {
			t.Errorf("output wire binding = %+v", ov.Start)
		}

		s.Propagate()
		if got := wireSignal(t, s, out); got != domain.Low {
			t.Errorf("NOT output = %s, want LOW from the stale HIGH", got)
		}
	})

	t.Run("delete receiver", func(t *testing.T) {
		s, src, not, link, _ := build(t)

		if !s.DeleteGate(not) {
			t.Fatal("DeleteGate failed")
		}
		g, _ := s.Gate(src)
		if g.Output != wireNode(t, s, link) {
			t.Error("driver output detached")
		}
		v, _ := s.Wire(link)
		if v.Start != (Binding{Gate: src, Pin: domain.PinOut}) {
			t.Errorf("link start binding = %+v", v.Start)
		}
		if v.End.Bound() {
			t.Error("binding to the deleted gate survived")
		}
	})
}

func TestMerge_ResolvesAndRepointsEveryHolder(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Signal
		want domain.Signal
	}{
		{"unknown with high", domain.Unknown, domain.High, domain.High},
		{"high with low", domain.High, domain.Low, domain.Unknown},
		{"high with high", domain.High, domain.High, domain.High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t)
			w1 := s.PlaceWire(pts(0, 0, 40, 0))
			w2 := s.PlaceWire(pts(200, 0, 240, 0))
			l1 := s.PlaceLamp(domain.Pt(0, 5))
			l2 := s.PlaceLamp(domain.Pt(240, 5))
			s.nodes.Write(wireNode(t, s, w1), tt.a)
			s.nodes.Write(wireNode(t, s, w2), tt.b)
			absorbed := wireNode(t, s, w1)

			kept := s.merge(wireNode(t, s, w2), wireNode(t, s, w1))

			if s.nodes.Alive(absorbed) {
				t.Error("absorbed node is still alive")
			}
			for _, w := range []domain.WireID{w1, w2} {
				if wireNode(t, s, w) != kept {
					t.Errorf("wire %s not repointed", w)
				}
				if got := wireSignal(t, s, w); got != tt.want {
					t.Errorf("wire %s = %s, want %s", w, got, tt.want)
				}
			}
			s.Propagate()
			for _, l := range []domain.LampID{l1, l2} {
				if got := lampSignal(t, s, l); got != tt.want {
					t.Errorf("lamp %s = %s, want %s", l, got, tt.want)
				}
			}
		})
	}
}

func TestPlaceWire_BridgesTwoNodes(t *testing.T) {
	s := newSession(t)
	w1 := s.PlaceWire(pts(0, 0, 40, 0))
	w2 := s.PlaceWire(pts(100, 0, 140, 0))
	s.ForceWireState(w1, domain.High)
	s.ForceWireState(w2, domain.Low)

	bridge := s.PlaceWire(pts(40, 0, 100, 0))

	n := wireNode(t, s, bridge)
	if wireNode(t, s, w1) != n || wireNode(t, s, w2) != n {
		t.Fatal("bridge did not join both wires")
	}
	if s.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", s.NodeCount())
	}
	if got := wireSignal(t, s, bridge); got != domain.Unknown {
		t.Errorf("short between HIGH and LOW = %s, want UNKNOWN", got)
	}
}

func TestPlaceWire_SharedOutputPinKeepsExistingNode(t *testing.T) {
	s := newSession(t)
	g := s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
	w1 := s.PlaceWire(pts(20, 7, 60, 7))
	before := wireNode(t, s, w1)
	w2 := s.PlaceWire(pts(20, 7, 20, 60))

	if wireNode(t, s, w2) != before || wireNode(t, s, w1) != before {
		t.Error("output pin merge did not keep the pre-existing node")
	}
	gv, _ := s.Gate(g)
	if gv.Output != before {
		t.Errorf("gate output = %s, want %s", gv.Output, before)
	}

	s.Propagate()
	if got := wireSignal(t, s, w2); got != domain.High {
		t.Errorf("second output wire = %s, want HIGH", got)
	}
}

func TestPlaceGate_BindsExistingEndpoints(t *testing.T) {
	s := newSession(t)
	w1 := s.PlaceWire(pts(-40, 0, 0, 0))
	w2 := s.PlaceWire(pts(-40, 20, 0, 10))
	w3 := s.PlaceWire(pts(20, 7, 60, 7))

	g := s.PlaceGate(domain.Or, domain.Pt(0, 0))
	gv, _ := s.Gate(g)

	if gv.InputA != wireNode(t, s, w1) {
		t.Error("input 1 not bound to the nearest wire")
	}
	if gv.InputB != wireNode(t, s, w2) {
		t.Error("input 2 not bound to the nearest wire")
	}
	if gv.Output != wireNode(t, s, w3) {
		t.Error("output not bound")
	}

	v1, _ := s.Wire(w1)
	if v1.End != (Binding{Gate: g, Pin: domain.PinA}) {
		t.Errorf("wire 1 end binding = %+v", v1.End)
	}
	if v1.Points[1] != domain.Pt(0, 3.5) {
		t.Errorf("wire 1 end not moved onto the pin: %v", v1.Points[1])
	}
}

func TestPlaceGate_TakenInputFallsBackToOther(t *testing.T) {
	s := newSession(t)
	w1 := s.PlaceWire(pts(-40, 0, 0, 0))
	w2 := s.PlaceWire(pts(-40, 40, 0, 6))

	g := s.PlaceGate(domain.And, domain.Pt(0, 0))
	gv, _ := s.Gate(g)

	if gv.InputA != wireNode(t, s, w1) {
		t.Error("first wire should take input 1")
	}
	if gv.InputB != wireNode(t, s, w2) {
		t.Error("second wire should fall back to input 2")
	}
}

// checkJunctions fails when two wire endpoints within the merge radius hold
// different nodes, or when an endpoint on a bound gate pin holds a node
// other than the pin's.
func checkJunctions(t *testing.T, s *Session) {
	t.Helper()
	radius := s.Options().MergeRadius
	type end struct {
		at   domain.Point
		node domain.NodeID
	}
	var ends []end
	for _, w := range s.Wires() {
		ends = append(ends, end{w.Points[0], w.Node}, end{w.Points[len(w.Points)-1], w.Node})
	}
	for i := range ends {
		for j := i + 1; j < len(ends); j++ {
			if domain.Within(ends[i].at, ends[j].at, radius) && ends[i].node != ends[j].node {
				t.Errorf("endpoints %v (%s) and %v (%s) are on different nodes",
					ends[i].at, ends[i].node, ends[j].at, ends[j].node)
			}
		}
	}
	for _, g := range s.Gates() {
		for _, p := range domain.Pins {
			node := g.PinNode(p)
			if node.IsZero() {
				continue
			}
			for _, e := range ends {
				if domain.Within(e.at, g.Pins[p], radius) && e.node != node {
					t.Errorf("gate %s pin %s holds %s but the endpoint at %v holds %s", g.ID, p, node, e.at, e.node)
				}
			}
		}
	}
}

func TestPlaceGate_BothInputsTakenMergesIntoNearest(t *testing.T) {
	s := newSession(t)
	w1 := s.PlaceWire(pts(0, 60, 50, 50))
	w2 := s.PlaceWire(pts(40, 30, 40, 50))
	checkJunctions(t, s)
	s.PlaceWire(pts(0, 30, 10, 20))
	s.PlaceGate(domain.Xor, domain.Pt(60, 70))
	s.PlaceWire(pts(0, 10, 20, 10))
	checkJunctions(t, s)

	g := s.PlaceGate(domain.Xnor, domain.Pt(40, 40))
	checkJunctions(t, s)

	gv, _ := s.Gate(g)
	node := wireNode(t, s, w1)
	if wireNode(t, s, w2) != node {
		t.Error("wire ending on a taken input was not merged into its node")
	}
	if gv.InputA != node || gv.InputB != node {
		t.Errorf("inputs = %s, %s, want both %s", gv.InputA, gv.InputB, node)
	}
	v2, _ := s.Wire(w2)
	if v2.End != (Binding{Gate: g, Pin: domain.PinB}) {
		t.Errorf("wire 2 end binding = %+v", v2.End)
	}
	if v2.Points[1] != gv.Pins[domain.PinB] {
		t.Errorf("wire 2 end not moved onto input 2: %v", v2.Points[1])
	}
}

func TestPlaceGate_JunctionBindsOneInput(t *testing.T) {
	s := newSession(t)
	a := s.PlaceWire(pts(-40, 0, 0, 0))
	b := s.PlaceWire(pts(0, -40, 0, 0))
	if wireNode(t, s, a) != wireNode(t, s, b) {
		t.Fatal("wires ending at one point should share a node")
	}

	g := s.PlaceGate(domain.Xor, domain.Pt(0, -3))
	gv, _ := s.Gate(g)
	if gv.InputA != wireNode(t, s, a) {
		t.Errorf("input 1 = %s, want the junction node %s", gv.InputA, wireNode(t, s, a))
	}
	if !gv.InputB.IsZero() {
		t.Errorf("input 2 = %s, want floating", gv.InputB)
	}
	for _, id := range []domain.WireID{a, b} {
		v, _ := s.Wire(id)
		if v.End != (Binding{Gate: g, Pin: domain.PinA}) {
			t.Errorf("wire %s end binding = %+v, want input 1", id, v.End)
		}
		if v.Points[1] != gv.Pins[domain.PinA] {
			t.Errorf("wire %s end = %v, want %v", id, v.Points[1], gv.Pins[domain.PinA])
		}
	}
	checkJunctions(t, s)

	out := s.PlaceWire(pts(20, 4, 60, 4))
	s.ForceWireState(a, domain.High)
	if got := wireSignal(t, s, out); got != domain.High {
		t.Errorf("XOR(HIGH, floating) = %s, want HIGH", got)
	}
}

func TestPropagate_Idempotent(t *testing.T) {
	s := newSession(t)
	buildAnd(t, s)
	s.PlaceLamp(domain.Pt(165, 27))

	s.Propagate()
	nodes, lamps := s.Nodes(), s.Lamps()
	st := s.Propagate()

	if !reflect.DeepEqual(nodes, s.Nodes()) {
		t.Error("node states changed on a second propagate")
	}
	if !reflect.DeepEqual(lamps, s.Lamps()) {
		t.Error("lamp states changed on a second propagate")
	}
	if st.Passes != 1 || !st.Converged {
		t.Errorf("second propagate = %+v, want one converged pass", st)
	}
}

// buildNotChain places a HIGH source followed by n inverters. With reverse
// set, the gates are placed last-first so slot order runs against the
// signal flow.
func buildNotChain(t *testing.T, s *Session, n int, reverse bool) domain.WireID {
	t.Helper()
	xs := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		xs = append(xs, float64(100*i))
	}
	if reverse {
		for i := n; i >= 1; i-- {
			s.PlaceGate(domain.Not, domain.Pt(xs[i], 0))
		}
		s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
	} else {
		s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
		for i := 1; i <= n; i++ {
			s.PlaceGate(domain.Not, domain.Pt(xs[i], 0))
		}
	}
	for i := 0; i < n; i++ {
		s.PlaceWire(pts(xs[i]+20, 7, xs[i+1], 3.5))
	}
	return s.PlaceWire(pts(xs[n]+20, 7, xs[n]+60, 7))
}

func TestPropagate_ChainTerminatesWithinDepthPlusOne(t *testing.T) {
	tests := []struct {
		name     string
		nots     int
		reverse  bool
		maxPass  int
		wantLast domain.Signal
	}{
		{"forward order", 5, false, 2, domain.Low},
		{"reverse order", 5, true, 7, domain.Low},
		{"reverse even chain", 4, true, 6, domain.High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t)
			out := buildNotChain(t, s, tt.nots, tt.reverse)

			st := s.Propagate()
			if !st.Converged {
				t.Fatalf("chain did not converge: %+v", st)
			}
			if st.Passes > tt.maxPass {
				t.Errorf("Passes = %d, want at most %d", st.Passes, tt.maxPass)
			}
			if got := wireSignal(t, s, out); got != tt.wantLast {
				t.Errorf("chain output = %s, want %s", got, tt.wantLast)
			}
		})
	}
}

func TestPropagate_OscillatorStopsAtCap(t *testing.T) {
	tests := []struct {
		name      string
		maxPasses int
		want      int
	}{
		{"default cap", 0, DefaultMaxPasses},
		{"custom cap", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{MaxPasses: tt.maxPasses})
			g := s.PlaceGate(domain.Not, domain.Pt(0, 0))
			s.PlaceWire(pts(20, 7, 40, 7, 40, -20, -20, -20, -20, 3.5, 0, 3.5))

			gv, _ := s.Gate(g)
			if gv.InputA != gv.Output || gv.Output.IsZero() {
				t.Fatalf("feedback loop not closed: %+v", gv)
			}

			st := s.Propagate()
			if st.Converged {
				t.Error("oscillator reported convergence")
			}
			if st.Passes != tt.want {
				t.Errorf("Passes = %d, want %d", st.Passes, tt.want)
			}
			if s.LastPropagation() != st {
				t.Error("LastPropagation does not match the returned stats")
			}
		})
	}
}

func TestDeleteWire_SharedNodeSurvives(t *testing.T) {
	s := newSession(t)
	w1 := s.PlaceWire(pts(0, 0, 40, 0))
	w2 := s.PlaceWire(pts(40, 0, 80, 0))
	near := s.PlaceLamp(domain.Pt(0, 5))
	far := s.PlaceLamp(domain.Pt(85, 0))
	s.ForceWireState(w2, domain.High)

	s.DeleteWire(w1)

	if s.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", s.NodeCount())
	}
	if got := wireSignal(t, s, w2); got != domain.High {
		t.Errorf("remaining wire = %s, want HIGH", got)
	}
	if lv, _ := s.Lamp(near); !lv.Input.IsZero() {
		t.Error("lamp reachable only through the deleted wire is still bound")
	}
	s.Propagate()
	if got := lampSignal(t, s, far); got != domain.High {
		t.Errorf("far lamp = %s, want HIGH", got)
	}
}

func TestDeleteWire_DetachesPinBoundThroughIt(t *testing.T) {
	s := newSession(t)
	g := s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
	w1 := s.PlaceWire(pts(20, 7, 60, 7))
	w2 := s.PlaceWire(pts(60, 7, 60, 60))
	s.Propagate()

	s.DeleteWire(w1)

	gv, _ := s.Gate(g)
	if !gv.Output.IsZero() {
		t.Error("gate output still bound after its only wire was deleted")
	}
	s.Propagate()
	if got := wireSignal(t, s, w2); got != domain.High {
		t.Errorf("remaining wire = %s, want last value HIGH", got)
	}
}

func TestDeleteWire_LastWireReleasesNode(t *testing.T) {
	s := newSession(t)
	g := s.PlaceGate(domain.Not, domain.Pt(0, 0))
	w := s.PlaceWire(pts(-40, 3.5, 0, 3.5))

	s.DeleteWire(w)

	if s.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", s.NodeCount())
	}
	gv, _ := s.Gate(g)
	if !gv.InputA.IsZero() {
		t.Error("gate input still points at a released node")
	}
}

func TestStaleHandles(t *testing.T) {
	s := newSession(t)
	old := s.PlaceWire(pts(0, 0, 40, 0))
	s.SelectAt(domain.Pt(20, 0))
	if !s.DeleteSelected() {
		t.Fatal("DeleteSelected failed")
	}
	if !s.Selected().IsNone() {
		t.Error("selection survived deleting its entity")
	}

	fresh := s.PlaceWire(pts(0, 100, 40, 100))
	if domain.Handle(fresh).Slot != domain.Handle(old).Slot {
		t.Fatalf("expected slot reuse, got %s and %s", old, fresh)
	}

	if _, ok := s.Wire(old); ok {
		t.Error("stale wire handle resolved")
	}
	if s.Delete(domain.WireSelection(old)) {
		t.Error("deleting through a stale handle succeeded")
	}
	if s.Select(domain.WireSelection(old)) {
		t.Error("selecting a stale handle succeeded")
	}
	if s.ForceWireState(old, domain.High) {
		t.Error("forcing a stale wire succeeded")
	}
	if s.WireCount() != 1 {
		t.Errorf("WireCount() = %d, want 1", s.WireCount())
	}
	if s.Delete(domain.NoSelection) {
		t.Error("deleting nothing reported success")
	}
}

func TestSelectAt_Priority(t *testing.T) {
	s := newSession(t)
	g := s.PlaceGate(domain.And, domain.Pt(0, 0))
	w := s.PlaceWire(pts(-20, 7, 40, 7))
	l := s.PlaceLamp(domain.Pt(10, 7))

	tests := []struct {
		name string
		at   domain.Point
		want domain.Selection
	}{
		{"lamp over gate and wire", domain.Pt(10, 7), domain.LampSelection(l)},
		{"gate over wire", domain.Pt(5, 2), domain.GateSelection(g)},
		{"wire", domain.Pt(35, 8), domain.WireSelection(w)},
		{"miss", domain.Pt(200, 200), domain.NoSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.SelectAt(tt.at); got != tt.want {
				t.Errorf("SelectAt(%v) = %s, want %s", tt.at, got, tt.want)
			}
			if got := s.Selected(); got != tt.want {
				t.Errorf("Selected() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSetGateKind(t *testing.T) {
	s := newSession(t)
	g := s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
	w := s.PlaceWire(pts(20, 7, 60, 7))
	s.Propagate()

	if !s.SetGateKind(g, domain.ConstLow) {
		t.Fatal("SetGateKind failed")
	}
	if got := wireSignal(t, s, w); got != domain.Low {
		t.Errorf("after ConstLow = %s, want LOW", got)
	}

	s.SetGateKind(g, domain.Xnor)
	kind, ok := s.CycleGateKind(g)
	if !ok || kind != domain.ConstLow {
		t.Errorf("CycleGateKind from XNOR = %s, %v, want ConstLow", kind, ok)
	}
	if _, ok := s.CycleGateKind(domain.GateID{}); ok {
		t.Error("cycling a zero handle succeeded")
	}
}

func TestForceWireState_DriverWins(t *testing.T) {
	s := newSession(t)
	s.PlaceGate(domain.ConstHigh, domain.Pt(0, 0))
	driven := s.PlaceWire(pts(20, 7, 60, 7))
	free := s.PlaceWire(pts(0, 100, 40, 100))

	s.ForceWireState(driven, domain.Low)
	if got := wireSignal(t, s, driven); got != domain.High {
		t.Errorf("driven wire = %s, want HIGH", got)
	}
	s.ForceWireState(free, domain.Low)
	if got := wireSignal(t, s, free); got != domain.Low {
		t.Errorf("free wire = %s, want LOW", got)
	}
}

func TestReset(t *testing.T) {
	s := newSession(t)
	_, out := buildAnd(t, s)
	s.Reset()

	if s.WireCount()+s.GateCount()+s.LampCount()+s.NodeCount() != 0 {
		t.Error("Reset left entities behind")
	}
	if _, ok := s.Wire(out); ok {
		t.Error("handle from before Reset still resolves")
	}
	if w := s.PlaceWire(pts(0, 0, 10, 0)); w == out {
		t.Error("Reset reissued an old handle")
	}
}

func TestPlaceWire_EmptyIsNoop(t *testing.T) {
	s := newSession(t)
	if id := s.PlaceWire(nil); !id.IsZero() {
		t.Errorf("PlaceWire(nil) = %s, want zero handle", id)
	}
	if s.WireCount() != 0 || s.NodeCount() != 0 {
		t.Error("empty polyline created state")
	}
}
