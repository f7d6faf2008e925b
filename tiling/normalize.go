package tiling

import "github.com/mirovelk/lozenge-tiling-go/vector"

// floorDiv returns the Euclidean (floor) division of a by b: it rounds
// toward negative infinity rather than toward zero, so it is well
// defined for negative a with b > 0 — exactly what normalization over
// negative lattice coordinates requires.
func floorDiv(a, b int32) int32 {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

// normalize3 returns the canonical representative of p under the
// configured periodicity: p identified with p + (xs, ys, -zh) for any
// integer multiple. When periods are disabled, p is returned unchanged.
func (e *TilingEngine) normalize3(p vector.Vec3) vector.Vec3 {
	if e.periods.disabled() {
		return p
	}

	xs, ys, zh := e.periods.XShift, e.periods.YShift, e.periods.ZHeight
	var shift int32
	if e.periods.canonicalOnY() {
		shift = floorDiv(p.Y, ys)
	} else {
		shift = floorDiv(p.X, xs)
	}

	return vector.NewVec3(p.X-shift*xs, p.Y-shift*ys, p.Z+shift*zh)
}

// normalize2 normalizes the column (x, y) by lifting it to (x, y, 0),
// normalizing in 3D, and dropping z.
func (e *TilingEngine) normalize2(c vector.Vec2) vector.Vec2 {
	return e.normalize3(vector.NewVec3(c.X, c.Y, 0)).XY()
}
