package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box. Min starts at +Inf and
// Max at -Inf on every axis, so a box that was never extended is the
// degenerate sentinel: callers must check IsEmpty (or the triangle
// count of the source mesh) before trusting Min/Max.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether the box still holds its degenerate sentinel,
// i.e. no point was ever added.
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}
