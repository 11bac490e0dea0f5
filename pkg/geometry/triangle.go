package geometry

// Triangle represents a triangular facet in 3D space.
// The normal is taken from the source file as declared; it is not
// re-derived from the vertices or checked against their winding.
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	cross := edge1.Cross(edge2)
	return cross.Length() / 2.0
}

// SignedVolume returns the signed volume of the tetrahedron formed by
// the triangle and the coordinate origin. Summed over a closed,
// consistently wound mesh these volumes add up to the enclosed volume
// (divergence theorem); the sign depends on the winding direction.
func (t Triangle) SignedVolume() float64 {
	return (-t.V3.X*t.V2.Y*t.V1.Z +
		t.V2.X*t.V3.Y*t.V1.Z +
		t.V3.X*t.V1.Y*t.V2.Z -
		t.V1.X*t.V3.Y*t.V2.Z -
		t.V2.X*t.V1.Y*t.V3.Z +
		t.V1.X*t.V2.Y*t.V3.Z) / 6.0
}

// Reversed returns the triangle with opposite winding order.
// The declared normal is kept as-is.
func (t Triangle) Reversed() Triangle {
	return Triangle{
		Normal: t.Normal,
		V1:     t.V3,
		V2:     t.V2,
		V3:     t.V1,
	}
}
