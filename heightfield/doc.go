// Package heightfield implements the sparse column-height map at the
// center of the tiling engine: a mapping from a lattice column (vector.Vec2)
// to a signed integer height, with a sentinel "floor" value of -1 meaning
// "no box stacked here".
//
// What:
//
//   - Get returns the stored height, or the floor value -1 if the column
//     has never been built up.
//   - Increment/Decrement mutate a column's height by exactly one level,
//     pruning the entry once it returns to the floor so memory tracks
//     only occupied columns.
//   - BoxCount sums (height + 1) across all stored columns: each stored
//     column contributes one unit box per integer level from 0 up
//     through its height, inclusive.
//
// Why a sparse map instead of a dense 2D array: a random plane partition
// occupies an unbounded, typically tiny fraction of the lattice, so the
// structural invariant "floor == -1 == absent" keeps memory proportional
// to the occupied columns rather than to the bounding box.
//
// Errors:
//
//   - ErrColumnNotFound: Decrement called on a column with no entry.
//     This is a programmer error (the caller must only decrement what it
//     has previously incremented) — see HeightField.Decrement.
package heightfield
