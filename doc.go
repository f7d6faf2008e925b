// Package lozenge is the documentation root of lozenge-tiling-go, a small
// engine for generating and maintaining random plane partitions (3D Young
// diagrams / lozenge tilings) under optional periodic boundary conditions.
//
// What it is:
//
//   - A reversible Markov chain over the set of valid plane-partition
//     configurations, driven by competing exponential clocks.
//   - A sparse, incrementally-maintained surface representation suitable
//     for a real-time visualizer that repeatedly steps the chain and
//     re-queries the visible voxels inside a bounded view volume.
//
// Why it's organized this way:
//
//	vector/      — Vec2/Vec3 value types shared by every other package
//	heightfield/ — sparse column-height field over the 2D lattice
//	candidateset/— uniform-random membership sets (addable/removable sites)
//	tiling/      — TilingEngine: normalization, predicates, stepping, voxels
//	cmd/lozenge-tiling/ — CLI driver matching the historical reference tool
//
// The engine is in-memory, single-threaded, and has no I/O of its own;
// see tiling.TilingEngine for the full public surface.
//
//	go get github.com/mirovelk/lozenge-tiling-go/tiling
package lozenge
