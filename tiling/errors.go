package tiling

import "errors"

// ErrNoAddableSite indicates AddRandomBox was called while the addable
// candidate set was empty. This cannot happen from a well-formed
// initial configuration (the corner (0,0,0) is always addable when
// the engine is empty) — it signals a broken invariant, not a
// recoverable runtime condition.
var ErrNoAddableSite = errors.New("tiling: no addable site available")
