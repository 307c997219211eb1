package script

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"logicgrid/internal/application"
	"logicgrid/internal/application/commands"
	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Statement
		wantOK bool
	}{
		{
			name:   "blank",
			line:   "   ",
			wantOK: false,
		},
		{
			name:   "comment",
			line:   "# a comment",
			wantOK: false,
		},
		{
			name:   "wire with comma points",
			line:   "wire 0,0 40,0 40,20",
			want:   Statement{Line: 1, Op: OpWire, Points: []domain.Point{domain.Pt(0, 0), domain.Pt(40, 0), domain.Pt(40, 20)}},
			wantOK: true,
		},
		{
			name:   "gate",
			line:   "gate nand 60 10  # trailing comment",
			want:   Statement{Line: 1, Op: OpGate, Kind: domain.Nand, Points: []domain.Point{domain.Pt(60, 10)}},
			wantOK: true,
		},
		{
			name:   "lamp with comma point",
			line:   "LAMP 100,20",
			want:   Statement{Line: 1, Op: OpLamp, Points: []domain.Point{domain.Pt(100, 20)}},
			wantOK: true,
		},
		{
			name:   "delete selection",
			line:   "delete",
			want:   Statement{Line: 1, Op: OpDelete, Target: commands.SelectedTarget()},
			wantOK: true,
		},
		{
			name:   "delete by index",
			line:   "delete lamp 3",
			want:   Statement{Line: 1, Op: OpDelete, Target: commands.Target{Kind: domain.SelectLamp, Index: 3}},
			wantOK: true,
		},
		{
			name:   "kind by index",
			line:   "kind gate 0 XOR",
			want:   Statement{Line: 1, Op: OpKind, Kind: domain.Xor, Target: commands.Target{Kind: domain.SelectGate, Index: 0}},
			wantOK: true,
		},
		{
			name:   "kind on selection",
			line:   "kind or",
			want:   Statement{Line: 1, Op: OpKind, Kind: domain.Or, Target: commands.Target{Kind: domain.SelectGate, Index: commands.Selected}},
			wantOK: true,
		},
		{
			name:   "force by index",
			line:   "force wire 2 1",
			want:   Statement{Line: 1, Op: OpForce, Signal: domain.High, Target: commands.Target{Kind: domain.SelectWire, Index: 2}},
			wantOK: true,
		},
		{
			name:   "propagate",
			line:   "propagate",
			want:   Statement{Line: 1, Op: OpPropagate},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseLine(tt.line, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Op != tt.want.Op || got.Kind != tt.want.Kind || got.Signal != tt.want.Signal || got.Target != tt.want.Target {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if len(got.Points) != len(tt.want.Points) {
				t.Fatalf("points = %v, want %v", got.Points, tt.want.Points)
			}
			for i := range got.Points {
				if got.Points[i] != tt.want.Points[i] {
					t.Errorf("point %d = %v, want %v", i, got.Points[i], tt.want.Points[i])
				}
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		errMsg string
	}{
		{"unknown command", "wire 0,0 1,1\nfrobnicate", "line 2, col 1: unknown command \"frobnicate\""},
		{"bad kind", "gate MUX 0 0", "line 1, col 6: unknown gate kind \"MUX\""},
		{"missing y", "lamp 10", "line 1, col 8: missing y coordinate"},
		{"bad point", "wire 0,a", "line 1, col 6: invalid point \"0,a\""},
		{"empty wire", "wire", "line 1, col 5: wire needs at least one point"},
		{"wrong target kind", "force lamp 0 HIGH", "line 1, col 7: expected wire, got lamp"},
		{"trailing token", "propagate now", "line 1, col 11: unexpected \"now\" after propagate"},
		{"negative index", "delete gate -1", "line 1, col 13: invalid index \"-1\""},
		{"bad signal", "force maybe", "line 1, col 7: invalid signal \"maybe\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestRunner_Demos(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *circuit.Session)
	}{
		{"and-gate", func(t *testing.T, s *circuit.Session) {
			l, _ := s.LampAt(0)
			if v, _ := s.Lamp(l); v.Signal != domain.Low {
				t.Errorf("lamp = %s, want LOW", v.Signal)
			}
		}},
		{"junction", func(t *testing.T, s *circuit.Session) {
			w, _ := s.WireAt(1)
			if v, _ := s.WireSignal(w); v != domain.High {
				t.Errorf("second wire = %s, want HIGH", v)
			}
		}},
		{"lamp", func(t *testing.T, s *circuit.Session) {
			l, _ := s.LampAt(0)
			if v, _ := s.Lamp(l); v.Signal != domain.Unknown {
				t.Errorf("lamp = %s, want UNKNOWN", v.Signal)
			}
		}},
		{"floating-nand", func(t *testing.T, s *circuit.Session) {
			w, _ := s.WireAt(0)
			if v, _ := s.WireSignal(w); v != domain.High {
				t.Errorf("NAND output = %s, want HIGH", v)
			}
		}},
		{"stale-driver", func(t *testing.T, s *circuit.Session) {
			w, _ := s.WireAt(0)
			if v, _ := s.WireSignal(w); v != domain.High {
				t.Errorf("orphaned wire = %s, want HIGH", v)
			}
			if s.GateCount() != 0 {
				t.Errorf("GateCount() = %d, want 0", s.GateCount())
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			demo, ok := FindDemo(tt.name)
			if !ok {
				t.Fatalf("demo %s not found", tt.name)
			}
			s := circuit.New(circuit.DefaultOptions())
			var out bytes.Buffer
			if err := NewRunner(s, &out).RunString(context.Background(), demo.Script); err != nil {
				t.Fatalf("demo %s failed: %v\n%s", tt.name, err, out.String())
			}
			if !strings.Contains(out.String(), "circuit: ") {
				t.Errorf("demo output has no report:\n%s", out.String())
			}
			tt.check(t, s)
		})
	}
}

func TestRunner_ExecWithoutPosition(t *testing.T) {
	tests := []struct {
		name string
		st   Statement
	}{
		{"gate", Statement{Op: OpGate, Kind: domain.And}},
		{"lamp", Statement{Op: OpLamp}},
		{"select", Statement{Op: OpSelect}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := circuit.New(circuit.DefaultOptions())
			_, err := NewRunner(s, io.Discard).Exec(context.Background(), tt.st)
			if err == nil || !strings.Contains(err.Error(), "needs a position") {
				t.Errorf("expected a missing position error, got %v", err)
			}
			if s.GateCount()+s.LampCount() != 0 {
				t.Error("nothing should have been placed")
			}
		})
	}
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	s := circuit.New(circuit.DefaultOptions())
	var out bytes.Buffer
	src := "wire 0,0 40,0\ndelete gate 4\nlamp 0 5"

	err := NewRunner(s, &out).RunString(context.Background(), src)
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "line 2: ") {
		t.Errorf("error %q does not name the line", err.Error())
	}
	if s.LampCount() != 0 {
		t.Error("statements after the failure ran")
	}
	if !strings.Contains(out.String(), "Placed wire 0") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunner_SelectionCommands(t *testing.T) {
	s := circuit.New(circuit.DefaultOptions())
	var out bytes.Buffer
	src := `gate AND 0 0
select 10 7
kind NOR
cycle
select 500 500
`
	if err := NewRunner(s, &out).RunString(context.Background(), src); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	g, _ := s.GateAt(0)
	if v, _ := s.Gate(g); v.Kind != domain.Xor {
		t.Errorf("kind = %s, want XOR", v.Kind)
	}
	if !strings.Contains(out.String(), "Selected gate 0") || !strings.Contains(out.String(), "Nothing selected") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
