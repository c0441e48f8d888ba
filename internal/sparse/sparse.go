// Package sparse provides a sparse set data structure for efficient
// membership testing over a small, known universe of integers — in this
// module, NFA state IDs visited during a single epsilon-closure pass.
package sparse

// SparseSet is a set of uint32 values supporting O(1) insert, membership
// test and clear, with iteration in insertion order via the dense array. The sparse array maps a value to its index in dense; a slot is
// only meaningful when dense[sparse[value]] == value, so Clear need not
// zero anything.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// NewSparseSet creates a sparse set whose universe is [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. A no-op if already present. Panics if
// value >= capacity, mirroring a plain slice index.
func (s *SparseSet) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.sparse[value] = s.size
	s.dense = append(s.dense, value)
	s.size++
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1) time.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements currently in the set.
func (s *SparseSet) Len() int {
	return int(s.size)
}

// Iter calls f for each value in the set, in insertion order.
func (s *SparseSet) Iter(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}
