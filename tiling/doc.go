// Package tiling implements TilingEngine, the stateful core of
// lozenge-tiling-go: it maintains a sparse column-height field over a
// 2D integer lattice, an optional periodicity quotient turning the
// configuration into a torus-with-slope, and two incrementally
// maintained candidate sets (addable and removable lattice sites), and
// drives a reversible Markov chain over valid plane-partition
// configurations.
//
// What:
//
//   - normalize3 (and normalize2 for columns) maps any lattice point to
//     its canonical representative under the configured periodicity.
//   - IsWall / IsBox / CanAdd / CanRemove are the four geometric
//     predicates that define the monotone "staircase" surface.
//   - addBox / removeBox (reached through AddRandomBox / RemoveRandomBox)
//     flip a single site and incrementally repair
//     the candidate sets by inspecting only the flipped site's six
//     axis neighbors — the predicates are local, so nothing further
//     away can change candidacy.
//   - StepMarkov realizes one step of a continuous-time Markov chain
//     by racing two independent exponential clocks (rate a*q for
//     addition, rate r for removal) and applying whichever fires first.
//   - GetBoxVoxels / GetWallVoxels enumerate the visible surface inside
//     a bounded draw-distance window, for a real-time visualizer.
//
// Why these choices:
//
//   - The periodicity quotient identifies (x,y,z) ~ (x-xShift,
//     y-yShift, z+zHeight); normalize3 always returns the representative
//     whose canonical coordinate (on the axis whose shift is larger, Y on
//     a tie) lies in [0, shift), using Euclidean (floor) division so
//     negative coordinates normalize consistently.
//   - Competing exponential clocks with rates a*q and r realize the
//     equilibrium distribution weighted by q^boxCount; see
//     StepMarkov and gonum.org/v1/gonum/stat/distuv.Exponential.
//
// Concurrency: TilingEngine is single-threaded and holds no lock — see
// the package-level concurrency note on TilingEngine. It performs no
// I/O; callers needing duration logging wrap calls themselves (see
// cmd/lozenge-tiling).
//
// Errors:
//
//   - ErrNoAddableSite: AddRandomBox called with an empty addable set.
//     Programmer error — unreachable from a well-formed initial state,
//     since the corner (0,0,0) is always addable when the
//     configuration is empty. TilingEngine panics with this sentinel
//     rather than returning it, matching spec's "process abort with a
//     diagnostic message" error model.
package tiling
