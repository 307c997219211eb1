package circuit

import "logicgrid/internal/domain"

// PropagationStats reports how a propagation run ended.
type PropagationStats struct {
	Passes    int
	Converged bool
}

// Propagate relaxes the circuit to a fixpoint. Each pass evaluates every
// gate in slot order and writes bound outputs; runs stop on the first pass
// that changes nothing or after MaxPasses. Lamps are synced afterwards.
//
// This is not a timing simulation: a circuit with feedback that never
// settles simply stops at the cap with Converged false.
func (s *Session) Propagate() PropagationStats {
	var st PropagationStats
	for st.Passes < s.opts.MaxPasses {
		st.Passes++
		if !s.propagatePass() {
			st.Converged = true
			break
		}
	}
	s.syncLamps()
	s.last = st
	return st
}

func (s *Session) propagatePass() bool {
	changed := false
	for _, g := range s.gates.All() {
		out := domain.Evaluate(g.kind, s.readInput(g.in[0]), s.readInput(g.in[1]))
		cur, ok := s.nodes.Read(g.out)
		if !ok || cur == out {
			continue
		}
		s.nodes.Write(g.out, out)
		changed = true
	}
	return changed
}

// readInput reads an input pin; floating pins read as domain.FloatingInput.
func (s *Session) readInput(id domain.NodeID) domain.Signal {
	v, ok := s.nodes.Read(id)
	if !ok {
		return domain.FloatingInput
	}
	return v
}

func (s *Session) syncLamps() {
	for _, l := range s.lamps.All() {
		v, ok := s.nodes.Read(l.input)
		if !ok {
			l.state = domain.Unknown
			continue
		}
		l.state = v
	}
}
