package circuit

import (
	"iter"

	"logicgrid/internal/domain"
)

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// Slots is a growable registry addressed by generational handles.
// Iteration always runs in slot order, which keeps every pass over a
// registry deterministic.
type Slots[T any] struct {
	items []slot[T]
	free  []uint32
	live  int
}

// Insert stores v and returns its handle. Freed slots are reused, lowest
// index first.
func (s *Slots[T]) Insert(v T) domain.Handle {
	if n := len(s.free); n > 0 {
		idx := s.free[0]
		s.free = s.free[1:]
		it := &s.items[idx]
		it.live = true
		it.val = v
		s.live++
		return domain.Handle{Slot: idx, Gen: it.gen}
	}
	s.items = append(s.items, slot[T]{gen: 1, live: true, val: v})
	s.live++
	return domain.Handle{Slot: uint32(len(s.items) - 1), Gen: 1}
}

// Get returns a pointer to the value addressed by h, or false when h is
// zero, out of range or stale.
func (s *Slots[T]) Get(h domain.Handle) (*T, bool) {
	if h.IsZero() || int(h.Slot) >= len(s.items) {
		return nil, false
	}
	it := &s.items[h.Slot]
	if !it.live || it.gen != h.Gen {
		return nil, false
	}
	return &it.val, true
}

// Contains reports whether h addresses a live value.
func (s *Slots[T]) Contains(h domain.Handle) bool {
	_, ok := s.Get(h)
	return ok
}

// Remove frees the slot addressed by h. It returns false for stale handles.
func (s *Slots[T]) Remove(h domain.Handle) bool {
	if !s.Contains(h) {
		return false
	}
	it := &s.items[h.Slot]
	var zero T
	it.val = zero
	it.live = false
	it.gen++
	s.live--
	s.insertFree(h.Slot)
	return true
}

func (s *Slots[T]) insertFree(idx uint32) {
	i := 0
	for i < len(s.free) && s.free[i] < idx {
		i++
	}
	s.free = append(s.free, 0)
	copy(s.free[i+1:], s.free[i:])
	s.free[i] = idx
}

// Len returns the number of live values.
func (s *Slots[T]) Len() int {
	return s.live
}

// All yields every live value with its handle, in slot order.
func (s *Slots[T]) All() iter.Seq2[domain.Handle, *T] {
	return func(yield func(domain.Handle, *T) bool) {
		for i := range s.items {
			it := &s.items[i]
			if !it.live {
				continue
			}
			if !yield(domain.Handle{Slot: uint32(i), Gen: it.gen}, &it.val) {
				return
			}
		}
	}
}

// At returns the handle of the i-th live value in slot order.
func (s *Slots[T]) At(i int) (domain.Handle, bool) {
	if i < 0 {
		return domain.Handle{}, false
	}
	n := 0
	for h := range s.All() {
		if n == i {
			return h, true
		}
		n++
	}
	return domain.Handle{}, false
}

// Index returns the position of h among live values, or -1.
func (s *Slots[T]) Index(h domain.Handle) int {
	n := 0
	for cur := range s.All() {
		if cur == h {
			return n
		}
		n++
	}
	return -1
}

// Clear drops every value. Generations keep counting so handles issued
// before the clear stay invalid.
func (s *Slots[T]) Clear() {
	var zero T
	s.free = s.free[:0]
	for i := range s.items {
		it := &s.items[i]
		if it.live {
			it.live = false
			it.val = zero
			it.gen++
		}
		s.free = append(s.free, uint32(i))
	}
	s.live = 0
}
