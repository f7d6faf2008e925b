package heightfield

import "errors"

// ErrColumnNotFound indicates Decrement was called on a column with no
// stored height. The caller has violated the increment/decrement pairing
// invariant; this is a programmer error, not a recoverable condition.
var ErrColumnNotFound = errors.New("heightfield: decrement called on column with no stored height")
