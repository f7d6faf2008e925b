package tiling

// Periods describes the periodicity quotient: lattice points p and
// p + (XShift, YShift, -ZHeight) are identified. The distinguished case
// XShift == 0 && YShift == 0 disables quotienting entirely — the
// engine behaves as a genuine octant, not a torus.
type Periods struct {
	XShift  int32
	YShift  int32
	ZHeight int32
}

// disabled reports whether this Periods value turns off quotienting.
func (p Periods) disabled() bool {
	return p.XShift == 0 && p.YShift == 0
}

// canonicalOnY reports whether Y (rather than X) is the canonical axis
// used to zero out the quotient shift, per the ys >= xs rule.
func (p Periods) canonicalOnY() bool {
	return p.YShift >= p.XShift
}

// DrawDistance bounds the voxel enumeration window along each axis.
type DrawDistance struct {
	X, Y, Z int32
}

// voxelKind selects which predicate getVoxels enumerates against. It is
// an internal, closed selector (not a public callback type) per the
// design note favoring a small enumerated dispatch value over an
// exported function value.
type voxelKind int

const (
	voxelBox voxelKind = iota
	voxelWall
)
