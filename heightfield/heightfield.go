package heightfield

import "github.com/mirovelk/lozenge-tiling-go/vector"

// Floor is the sentinel height meaning "no box stacked in this column".
// It is never stored; its absence from the backing map IS the floor.
const Floor int32 = -1

// HeightField is a sparse mapping from lattice column to column height.
// The zero value is not usable; construct with New.
//
// Invariants (see package doc): no entry ever holds Floor; every stored
// value is >= 0.
type HeightField struct {
	heights map[vector.Vec2]int32
}

// New returns an empty HeightField.
func New() *HeightField {
	return &HeightField{heights: make(map[vector.Vec2]int32)}
}

// Get returns the stored height at column, or Floor if column is absent.
//
// Complexity: O(1).
func (hf *HeightField) Get(column vector.Vec2) int32 {
	if h, ok := hf.heights[column]; ok {
		return h
	}
	return Floor
}

// Increment raises the height of column by one level. An absent column
// becomes height 0 (the first box in that column); otherwise the stored
// value is incremented.
//
// Complexity: O(1).
func (hf *HeightField) Increment(column vector.Vec2) {
	if h, ok := hf.heights[column]; ok {
		hf.heights[column] = h + 1
		return
	}
	hf.heights[column] = 0
}

// Decrement lowers the height of column by one level. It panics with
// ErrColumnNotFound if column has no entry — the caller must never
// decrement a column it has not previously incremented. If the new
// value would equal Floor, the entry is removed instead of stored.
//
// Complexity: O(1).
func (hf *HeightField) Decrement(column vector.Vec2) {
	h, ok := hf.heights[column]
	if !ok {
		panic(ErrColumnNotFound)
	}
	if h-1 == Floor {
		delete(hf.heights, column)
		return
	}
	hf.heights[column] = h - 1
}

// BoxCount returns sum(height+1) over all stored columns: the total
// number of unit boxes represented by the field.
//
// Complexity: O(number of occupied columns).
func (hf *HeightField) BoxCount() int64 {
	var total int64
	for _, h := range hf.heights {
		total += int64(h) + 1
	}
	return total
}

// Clear drops every stored entry, returning the field to empty.
//
// Complexity: O(number of occupied columns).
func (hf *HeightField) Clear() {
	hf.heights = make(map[vector.Vec2]int32)
}

// Len returns the number of occupied columns (not the box count).
//
// Complexity: O(1).
func (hf *HeightField) Len() int {
	return len(hf.heights)
}
