package sparse

import "testing"

func TestSparseSetBasic(t *testing.T) {
	s := NewSparseSet(100)
	if s.Len() != 0 {
		t.Errorf("new set should be empty, got len %d", s.Len())
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	s.Insert(5) // duplicate, no-op
	if s.Len() != 1 {
		t.Errorf("len should be 1 after duplicate insert, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("len should be 0 after Clear, got %d", s.Len())
	}
	if s.Contains(5) {
		t.Error("set should not contain 5 after Clear")
	}
}

func TestSparseSetIterOrder(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(7)
	s.Insert(2)
	s.Insert(5)

	var got []uint32
	s.Iter(func(v uint32) { got = append(got, v) })

	want := []uint32{7, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSparseSetContainsOutOfBounds(t *testing.T) {
	s := NewSparseSet(10)
	if s.Contains(100) {
		t.Error("Contains beyond capacity should be false, not panic")
	}
}

func TestSparseSetClearThenReuse(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	s.Insert(1)
	if s.Len() != 1 {
		t.Errorf("len should be 1 after clear+reinsert, got %d", s.Len())
	}
	if !s.Contains(1) {
		t.Error("set should contain 1 after clear+reinsert")
	}
}
