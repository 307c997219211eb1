package circuit

import (
	"logicgrid/internal/domain"
)

// NodeRegistry owns the logic nodes of a circuit. A node is the unit of
// electrical identity: every wire, gate pin and lamp that holds the same
// NodeID is the same physical connection.
type NodeRegistry struct {
	slots Slots[domain.Signal]
}

// Create allocates a node in the UNKNOWN state.
func (r *NodeRegistry) Create() domain.NodeID {
	return domain.NodeID(r.slots.Insert(domain.Unknown))
}

// Read returns the node's state. Released or zero ids read as UNKNOWN
// with ok=false.
func (r *NodeRegistry) Read(id domain.NodeID) (domain.Signal, bool) {
	s, ok := r.slots.Get(domain.Handle(id))
	if !ok {
		return domain.Unknown, false
	}
	return *s, true
}

// Write sets the node's state. Writes to released nodes are rejected.
func (r *NodeRegistry) Write(id domain.NodeID, v domain.Signal) bool {
	s, ok := r.slots.Get(domain.Handle(id))
	if !ok {
		return false
	}
	*s = v
	return true
}

// Alive reports whether id addresses a node that has not been released.
func (r *NodeRegistry) Alive(id domain.NodeID) bool {
	return r.slots.Contains(domain.Handle(id))
}

// Release discards a node. Holders must have been repointed or detached.
func (r *NodeRegistry) Release(id domain.NodeID) bool {
	return r.slots.Remove(domain.Handle(id))
}

// Len returns the number of live nodes.
func (r *NodeRegistry) Len() int {
	return r.slots.Len()
}

// IDs returns the live node ids in slot order.
func (r *NodeRegistry) IDs() []domain.NodeID {
	ids := make([]domain.NodeID, 0, r.slots.Len())
	for h := range r.slots.All() {
		ids = append(ids, domain.NodeID(h))
	}
	return ids
}

func (r *NodeRegistry) clear() {
	r.slots.Clear()
}

// merge joins absorb into keep: keep takes the resolved state of both,
// every holder of absorb is repointed to keep and absorb is released, all
// in one step. Merging a node with itself is a no-op.
func (s *Session) merge(keep, absorb domain.NodeID) domain.NodeID {
	if keep == absorb {
		return keep
	}
	ks, keepOK := s.nodes.Read(keep)
	as, absorbOK := s.nodes.Read(absorb)
	switch {
	case !keepOK && !absorbOK:
		return keep
	case !keepOK:
		keep, absorb = absorb, keep
	case absorbOK:
		s.nodes.Write(keep, domain.Resolve(ks, as))
	}

	for _, w := range s.wires.All() {
		if w.node == absorb {
			w.node = keep
		}
	}
	for _, g := range s.gates.All() {
		for i := range g.in {
			if g.in[i] == absorb {
				g.in[i] = keep
			}
		}
		if g.out == absorb {
			g.out = keep
		}
	}
	for _, l := range s.lamps.All() {
		if l.input == absorb {
			l.input = keep
		}
	}
	s.nodes.Release(absorb)
	return keep
}
