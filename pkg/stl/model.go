package stl

import (
	"github.com/philipparndt/stlcost/pkg/geometry"
)

// Model represents a parsed STL mesh. Triangles are kept in file order.
// A Model is built once by the parser and not mutated afterwards, so it
// is safe to share across goroutines for analysis.
type Model struct {
	Name      string
	Triangles []geometry.Triangle
	Binary    bool
}

// NewModel creates a new STL model
func NewModel(name string, binary bool) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
		Binary:    binary,
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}
