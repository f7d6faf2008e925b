package tiling

import "github.com/mirovelk/lozenge-tiling-go/vector"

type voxelBounds struct {
	xMin, xMax int32
	yMin, yMax int32
	zMin, zMax int32
}

func (e *TilingEngine) voxelBounds() voxelBounds {
	dd := e.drawDistance
	p := e.periods

	b := voxelBounds{xMax: dd.X, yMax: dd.Y, zMax: dd.Z}
	if p.XShift == 0 {
		b.xMin = -1
	} else {
		b.xMin = -dd.X
	}
	if p.YShift == 0 {
		b.yMin = -1
	} else {
		b.yMin = -dd.Y
	}
	if p.ZHeight == 0 {
		b.zMin = -1
	} else {
		b.zMin = -dd.Z
	}
	return b
}

func (e *TilingEngine) predicate(kind voxelKind) func(vector.Vec3) bool {
	if kind == voxelWall {
		return e.IsWall
	}
	return e.IsBox
}

// getVoxels enumerates the surface voxels matching the given predicate
// kind inside the draw-distance window. A filled voxel is emitted if
// it lies on the window's boundary (when includeEdges is set) or any
// of its three front-facing neighbors (right, front, above) is empty —
// the usual definition of "visible surface". Once a column's "above"
// neighbor is empty, nothing higher in that column can add more
// surface, so the inner z loop breaks early.
func (e *TilingEngine) getVoxels(kind voxelKind, includeEdges bool) []vector.Vec3 {
	pred := e.predicate(kind)
	b := e.voxelBounds()

	var voxels []vector.Vec3
	for x := b.xMin; x < b.xMax; x++ {
		for y := b.yMin; y < b.yMax; y++ {
			for z := b.zMin; z < b.zMax; z++ {
				p := vector.NewVec3(x, y, z)
				if !pred(p) {
					continue
				}

				rightFilled := pred(p.Right())
				frontFilled := pred(p.Front())
				aboveFilled := pred(p.Above())

				onBoundary := x == b.xMin || y == b.yMin || z == b.zMin ||
					x == b.xMax-1 || y == b.yMax-1 || z == b.zMax-1

				if (includeEdges && onBoundary) || !rightFilled || !frontFilled || !aboveFilled {
					voxels = append(voxels, p)
				}
				if !aboveFilled {
					break
				}
			}
		}
	}
	return voxels
}

// GetBoxVoxels returns the visible box voxels inside the draw-distance
// window, including those cut off at the window's boundary.
func (e *TilingEngine) GetBoxVoxels() []vector.Vec3 {
	return e.getVoxels(voxelBox, true)
}

// GetWallVoxels returns the visible back-wall voxels of the empty
// octant inside the draw-distance window.
func (e *TilingEngine) GetWallVoxels() []vector.Vec3 {
	return e.getVoxels(voxelWall, false)
}
