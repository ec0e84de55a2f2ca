// Package sparse provides a sparse integer set with O(1) insert, membership
// test and clear.
//
// The subset construction and the minimizer repeatedly build small sets of
// state IDs drawn from a known, bounded universe (the automaton's state
// count). A sparse set makes those inner loops cheap: clearing is O(1), so
// one set can be reused across every closure computation.
package sparse

// Set is a set of uint32 values below a fixed capacity.
//
// It pairs a sparse index array (membership) with a dense array (iteration
// in insertion order). The dense array doubles as a work queue during
// epsilon-closure computation: values inserted while scanning Values() are
// picked up by the same scan.
type Set struct {
	sparse []uint32 // value -> index into dense
	dense  []uint32 // members, in insertion order
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set; inserting an existing value is a no-op.
// value must be below the capacity given at construction.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Clear empties the set in O(1) without releasing storage.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the members in insertion order. The slice aliases the
// set's storage and is invalidated by Clear; index into it rather than
// holding a copy when inserting during iteration.
func (s *Set) Values() []uint32 {
	return s.dense
}
