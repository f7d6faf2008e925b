// Package vector defines the plain integer coordinate types used across
// lozenge-tiling-go: Vec2 for lattice columns, Vec3 for lattice points.
//
// Both types are small value types (two, resp. three, signed 32-bit
// integers), comparable with ==, and usable directly as map keys —
// equality and hashing are componentwise, matching the original
// Rust implementation's #[derive(Hash, Eq, PartialEq)] Vector2/Vector3.
package vector
