package tiling

import "github.com/mirovelk/lozenge-tiling-go/vector"

// effectiveHeight returns the top of the stored column at the already-
// normalized coordinates (nx, ny), accounting for how the quotient
// carries empty space back around when the normalized point lands with
// a negative canonical coordinate: the slab it lies in is lifted by one
// zHeight per full period it sits behind the origin.
func (e *TilingEngine) effectiveHeight(nx, ny int32) int32 {
	h := e.heights.Get(vector.NewVec2(nx, ny))

	xs, ys, zh := e.periods.XShift, e.periods.YShift, e.periods.ZHeight
	if e.periods.canonicalOnY() {
		if nx >= 0 {
			return h
		}
		return h + zh*(floorDiv(-nx-1, xs)+1)
	}
	if ny >= 0 {
		return h
	}
	return h + zh*(floorDiv(-ny-1, ys)+1)
}

// IsWall reports whether p lies on one of the empty octant's back
// walls under the configured periodicity.
func (e *TilingEngine) IsWall(p vector.Vec3) bool {
	if e.periods.disabled() {
		return p.X < 0 || p.Y < 0 || p.Z < 0
	}

	n := e.normalize3(p)
	zh := e.periods.ZHeight
	if n.Z < 0 || zh == 0 {
		return true
	}

	floorZ := floorDiv(n.Z, zh) // n.Z >= 0 and zh > 0 here, so floor == trunc
	if e.periods.canonicalOnY() {
		return n.X < -floorZ*e.periods.XShift
	}
	return n.Y < -floorZ*e.periods.YShift
}

// IsBox reports whether p is occupied by a unit box.
func (e *TilingEngine) IsBox(p vector.Vec3) bool {
	if e.IsWall(p) {
		return false
	}
	n := e.normalize3(p)
	return e.effectiveHeight(n.X, n.Y) >= n.Z
}

func (e *TilingEngine) isWallOrBox(p vector.Vec3) bool {
	return e.IsWall(p) || e.IsBox(p)
}

// CanAdd reports whether a new box fits at p: p must be empty, and the
// three neighbors behind it (left, back, below) must already be wall
// or box, so the new box is fully supported.
func (e *TilingEngine) CanAdd(p vector.Vec3) bool {
	if e.periods.disabled() && e.periods.ZHeight > 0 && p.Z > e.periods.ZHeight-1 {
		return false
	}

	return !e.isWallOrBox(p) &&
		e.isWallOrBox(p.Left()) &&
		e.isWallOrBox(p.Behind()) &&
		e.isWallOrBox(p.Below())
}

// CanRemove reports whether the box at p can be removed: p must be a
// box, and none of the three neighbors in front of it (right, front,
// above) may rest on it.
func (e *TilingEngine) CanRemove(p vector.Vec3) bool {
	return e.IsBox(p) &&
		!e.IsBox(p.Right()) &&
		!e.IsBox(p.Front()) &&
		!e.IsBox(p.Above())
}
