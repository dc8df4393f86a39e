// Package seen implements the encoder's back-reference table: an
// identity-keyed map from a previously visited value to the byte offset
// at which its tagged encoding begins.
package seen

// initialCapacity is the size hint used the first time a Table is
// lazily allocated.
const initialCapacity = 4

// Table tracks every non-boolean input value the dispatcher has
// visited, keyed by object identity (not value equality).
//
// A Table is created empty and lazily allocates its backing map on the
// first Insert, matching the spec's "lazily created on first insertion"
// sizing policy. Deletion is unnecessary: a Table lives for the
// duration of one encoding session and is discarded (or Reset) wholesale.
type Table struct {
	offsets map[uintptr]int
}

// Lookup returns the recorded offset for id, and whether it was found.
func (t *Table) Lookup(id uintptr) (int, bool) {
	if t.offsets == nil {
		return 0, false
	}
	off, ok := t.offsets[id]
	return off, ok
}

// Insert records that the value identified by id begins at offset. It
// must be called before that value's encoding is emitted, so that a
// self-referential composite would, in principle, find itself.
func (t *Table) Insert(id uintptr, offset int) {
	if t.offsets == nil {
		t.offsets = make(map[uintptr]int, initialCapacity)
	}
	t.offsets[id] = offset
}

// Reset discards all recorded entries, retaining the backing map for reuse.
func (t *Table) Reset() {
	for k := range t.offsets {
		delete(t.offsets, k)
	}
}

// Len reports the number of tracked values.
func (t *Table) Len() int {
	return len(t.offsets)
}
