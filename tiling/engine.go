package tiling

import (
	"fmt"

	xexprand "golang.org/x/exp/rand"

	"github.com/mirovelk/lozenge-tiling-go/candidateset"
	"github.com/mirovelk/lozenge-tiling-go/heightfield"
	"github.com/mirovelk/lozenge-tiling-go/internal/xrand"
	"github.com/mirovelk/lozenge-tiling-go/vector"
)

// Option configures a TilingEngine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	seed int64
}

// WithSeed pins the engine's random sources (both candidate sets and
// the Markov-chain exponential clocks) to a deterministic seed, so
// AddRandomBox, RemoveRandomBox and StepMarkov become reproducible.
// Intended for tests; omitted by default, which seeds from the
// current time.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.seed = seed
	}
}

// TilingEngine is the stateful core of lozenge-tiling-go. It owns one
// HeightField, two CandidateSets (addable, removable), a periodicity
// descriptor, and a draw-distance descriptor, and is mutated only
// through its exported methods.
//
// Concurrency: TilingEngine is single-threaded by design — no method
// suspends, performs I/O, or takes a lock. It is not safe to share
// across goroutines without external synchronization.
type TilingEngine struct {
	heights      *heightfield.HeightField
	addable      *candidateset.CandidateSet
	removable    *candidateset.CandidateSet
	periods      Periods
	drawDistance DrawDistance
	markovSrc    *xexprand.Rand
	seed         int64
}

// New constructs a TilingEngine with the given periodicity
// (xShift, yShift, zHeight) and draw distance (ddX, ddY, ddZ), in the
// initial empty-configuration state: heights empty, addable = {(0,0,0)},
// removable = {}.
func New(xShift, yShift, zHeight, ddX, ddY, ddZ int32, opts ...Option) *TilingEngine {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &TilingEngine{
		heights:      heightfield.New(),
		periods:      Periods{XShift: xShift, YShift: yShift, ZHeight: zHeight},
		drawDistance: DrawDistance{X: ddX, Y: ddY, Z: ddZ},
		seed:         cfg.seed,
	}
	e.addable = candidateset.New([]vector.Vec3{vector.NewVec3(0, 0, 0)}, candidateset.WithSeed(xrand.Derive(xrand.New(e.seed), 1).Int63()))
	e.removable = candidateset.New(nil, candidateset.WithSeed(xrand.Derive(xrand.New(e.seed), 2).Int63()))
	e.markovSrc = newMarkovSource(e.seed)

	return e
}

func newMarkovSource(seed int64) *xexprand.Rand {
	return xexprand.New(xexprand.NewSource(uint64(xrand.Derive(xrand.New(seed), 3).Int63())))
}

// Reset clears the heightfield and restores both candidate sets to
// their initial snapshot ({(0,0,0)} addable, {} removable).
func (e *TilingEngine) Reset() {
	e.heights.Clear()
	e.addable.Reset()
	e.removable.Reset()
}

// SetPeriods reconfigures the periodicity descriptor and implicitly
// resets the engine to the empty configuration, since an existing
// configuration's candidacy is not guaranteed consistent with new
// periods.
func (e *TilingEngine) SetPeriods(xShift, yShift, zHeight int32) {
	e.periods = Periods{XShift: xShift, YShift: yShift, ZHeight: zHeight}
	e.Reset()
}

// SetDrawDistance updates the voxel-enumeration window without
// touching engine state.
func (e *TilingEngine) SetDrawDistance(x, y, z int32) {
	e.drawDistance = DrawDistance{X: x, Y: y, Z: z}
}

// GetPeriodBoxCount returns the total number of unit boxes currently
// represented in the heightfield.
func (e *TilingEngine) GetPeriodBoxCount() int64 {
	return e.heights.BoxCount()
}

// addBox flips p on if CanAdd(p), incrementally repairing the
// candidate sets by inspecting only p's six axis neighbors.
func (e *TilingEngine) addBox(p vector.Vec3) {
	if !e.CanAdd(p) {
		return
	}

	n := e.normalize3(p)
	e.heights.Increment(n.XY())
	e.addable.Remove(n)
	e.removable.Insert(n)

	for _, q := range []vector.Vec3{p.Right(), p.Front(), p.Above()} {
		if e.CanAdd(q) {
			e.addable.Insert(e.normalize3(q))
		}
	}
	for _, r := range []vector.Vec3{p.Left(), p.Behind(), p.Below()} {
		if !e.CanRemove(r) {
			e.removable.Remove(e.normalize3(r))
		}
	}
}

// removeBox flips p off if CanRemove(p), the mirror image of addBox.
func (e *TilingEngine) removeBox(p vector.Vec3) {
	if !e.CanRemove(p) {
		return
	}

	n := e.normalize3(p)
	e.heights.Decrement(n.XY())
	e.removable.Remove(n)
	e.addable.Insert(n)

	for _, q := range []vector.Vec3{p.Right(), p.Front(), p.Above()} {
		if !e.CanAdd(q) {
			e.addable.Remove(e.normalize3(q))
		}
	}
	for _, r := range []vector.Vec3{p.Left(), p.Behind(), p.Below()} {
		if e.CanRemove(r) {
			e.removable.Insert(e.normalize3(r))
		}
	}
}

// AddRandomBox draws a uniformly random addable site and adds a box
// there. It panics with ErrNoAddableSite if the addable set is empty —
// unreachable from a well-formed initial state.
func (e *TilingEngine) AddRandomBox() {
	p, ok := e.addable.GetRandom()
	if !ok {
		panic(ErrNoAddableSite)
	}
	e.addBox(p)
}

// RemoveRandomBox draws a uniformly random removable site and removes
// the box there. It is a silent no-op if the removable set is empty —
// a removal attempt on the empty configuration is a legal Markov-chain
// event that simply rejects, deliberately asymmetric with
// AddRandomBox's panic.
func (e *TilingEngine) RemoveRandomBox() {
	p, ok := e.removable.GetRandom()
	if !ok {
		return
	}
	e.removeBox(p)
}

// GenerateByAddingOnly calls AddRandomBox n times.
func (e *TilingEngine) GenerateByAddingOnly(n int) {
	for i := 0; i < n; i++ {
		e.AddRandomBox()
	}
}

// String reports the engine's periodicity, draw distance, and current
// candidate-set sizes, for debugging and logging.
func (e *TilingEngine) String() string {
	return fmt.Sprintf(
		"TilingEngine{periods: (%d, %d, %d), drawDistance: (%d, %d, %d), addable: %d, removable: %d, boxes: %d}",
		e.periods.XShift, e.periods.YShift, e.periods.ZHeight,
		e.drawDistance.X, e.drawDistance.Y, e.drawDistance.Z,
		e.addable.Size(), e.removable.Size(), e.GetPeriodBoxCount(),
	)
}
