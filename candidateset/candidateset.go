package candidateset

import (
	"math/rand"

	"github.com/mirovelk/lozenge-tiling-go/internal/xrand"
	"github.com/mirovelk/lozenge-tiling-go/vector"
)

// Option configures a CandidateSet at construction time.
type Option func(*config)

type config struct {
	seed int64
}

// WithSeed pins the CandidateSet's internal RNG to a deterministic
// seed, so GetRandom draws are reproducible. Intended for tests; the
// zero value (no WithSeed option) seeds from the current time.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// CandidateSet is a set of vector.Vec3 supporting O(1) insert, remove,
// size, and uniform-random draw, plus reset to an immutable initial
// snapshot taken at construction.
type CandidateSet struct {
	initial []vector.Vec3
	index   map[vector.Vec3]int // value -> position in slots
	slots   []vector.Vec3        // parallel to index, enables O(1) random draw
	rng     *rand.Rand
}

// New returns a CandidateSet whose initial (and current) members are
// initial. Duplicate values in initial are collapsed, matching Insert's
// idempotence.
func New(initial []vector.Vec3, opts ...Option) *CandidateSet {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	cs := &CandidateSet{
		initial: append([]vector.Vec3(nil), initial...),
		rng:     xrand.New(cfg.seed),
	}
	cs.rebuildFrom(initial)
	return cs
}

func (cs *CandidateSet) rebuildFrom(values []vector.Vec3) {
	cs.index = make(map[vector.Vec3]int, len(values))
	cs.slots = cs.slots[:0]
	for _, v := range values {
		if _, ok := cs.index[v]; ok {
			continue
		}
		cs.index[v] = len(cs.slots)
		cs.slots = append(cs.slots, v)
	}
}

// Insert adds v to the set. A no-op if v is already a member.
//
// Complexity: O(1) amortized.
func (cs *CandidateSet) Insert(v vector.Vec3) {
	if _, ok := cs.index[v]; ok {
		return
	}
	cs.index[v] = len(cs.slots)
	cs.slots = append(cs.slots, v)
}

// Remove drops v from the set. A no-op if v is not a member.
//
// Complexity: O(1) — implemented as a swap with the last slot so no
// slice elements are shifted.
func (cs *CandidateSet) Remove(v vector.Vec3) {
	i, ok := cs.index[v]
	if !ok {
		return
	}
	last := len(cs.slots) - 1
	cs.slots[i] = cs.slots[last]
	cs.index[cs.slots[i]] = i
	cs.slots = cs.slots[:last]
	delete(cs.index, v)
}

// Contains reports whether v is currently a member.
//
// Complexity: O(1).
func (cs *CandidateSet) Contains(v vector.Vec3) bool {
	_, ok := cs.index[v]
	return ok
}

// Size returns the number of current members.
//
// Complexity: O(1).
func (cs *CandidateSet) Size() int {
	return len(cs.slots)
}

// Reset restores the set to the immutable snapshot passed at
// construction, discarding every Insert/Remove made since.
//
// Complexity: O(len(initial)).
func (cs *CandidateSet) Reset() {
	cs.rebuildFrom(cs.initial)
}

// GetRandom returns a uniformly random member, or false if the set is
// empty. Draw is uniform over current members regardless of insertion
// order, since it indexes directly into the parallel slot slice rather
// than walking map iteration order.
//
// Complexity: O(1).
func (cs *CandidateSet) GetRandom() (vector.Vec3, bool) {
	if len(cs.slots) == 0 {
		return vector.Vec3{}, false
	}
	return cs.slots[cs.rng.Intn(len(cs.slots))], true
}
