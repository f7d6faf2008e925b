package vector

import "fmt"

// Vec2 is an immutable pair of signed 32-bit integers, used as a lattice
// column coordinate (x, y). Zero value is the origin column (0, 0).
type Vec2 struct {
	X, Y int32
}

// NewVec2 returns the column (x, y).
func NewVec2(x, y int32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the componentwise sum of v and w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// String renders v as "(x, y)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Vec3 is an immutable triple of signed 32-bit integers, used as a
// lattice point coordinate (x, y, z). Zero value is the origin (0, 0, 0).
type Vec3 struct {
	X, Y, Z int32
}

// NewVec3 returns the point (x, y, z).
func NewVec3(x, y, z int32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// XY drops the z component, returning the underlying column.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Add returns the componentwise sum of v and w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the componentwise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v with each component multiplied by k.
func (v Vec3) Scale(k int32) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Left returns the neighbor one step in the -X direction.
func (v Vec3) Left() Vec3 { return Vec3{X: v.X - 1, Y: v.Y, Z: v.Z} }

// Right returns the neighbor one step in the +X direction.
func (v Vec3) Right() Vec3 { return Vec3{X: v.X + 1, Y: v.Y, Z: v.Z} }

// Behind returns the neighbor one step in the -Y direction.
func (v Vec3) Behind() Vec3 { return Vec3{X: v.X, Y: v.Y - 1, Z: v.Z} }

// Front returns the neighbor one step in the +Y direction.
func (v Vec3) Front() Vec3 { return Vec3{X: v.X, Y: v.Y + 1, Z: v.Z} }

// Below returns the neighbor one step in the -Z direction.
func (v Vec3) Below() Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z - 1} }

// Above returns the neighbor one step in the +Z direction.
func (v Vec3) Above() Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z + 1} }

// String renders v as "(x, y, z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}
