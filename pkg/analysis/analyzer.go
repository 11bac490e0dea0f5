package analysis

import (
	"math"

	"github.com/philipparndt/stlcost/pkg/geometry"
	"github.com/philipparndt/stlcost/pkg/stl"
)

// Bounds computes the axis-aligned bounding box over every vertex of
// every triangle. For a mesh with zero triangles the result is the
// degenerate +Inf/-Inf sentinel box; callers must check the triangle
// count before trusting it.
func Bounds(model *stl.Model) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range model.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// Volume computes the enclosed volume in mm³ by summing the signed
// origin tetrahedron of every triangle and taking the absolute value
// of the total (divergence theorem). The result is only meaningful for
// a closed, consistently wound manifold mesh; an open or inconsistently
// wound mesh produces a wrong but finite number. No manifold check is
// performed here.
func Volume(model *stl.Model) float64 {
	total := 0.0
	for _, triangle := range model.Triangles {
		total += triangle.SignedVolume()
	}
	return math.Abs(total)
}

// SurfaceArea computes the total surface area in mm²
func SurfaceArea(model *stl.Model) float64 {
	totalArea := 0.0
	for _, triangle := range model.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Footprint describes the bounding-box extents of a model in
// millimeters, used for print-bed fit estimation. Values are rounded
// to two decimal places for display stability.
type Footprint struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// FootprintOf derives the footprint from a bounding box
func FootprintOf(bbox geometry.BoundingBox) Footprint {
	size := bbox.Size()
	return Footprint{
		Width:  round2(size.X),
		Depth:  round2(size.Y),
		Height: round2(size.Z),
	}
}

// FitsBuildVolume reports whether the footprint fits a printer build
// volume of the given dimensions (all in millimeters).
func (f Footprint) FitsBuildVolume(width, depth, height float64) bool {
	return f.Width <= width && f.Depth <= depth && f.Height <= height
}

// Result contains the geometric measurements of an STL model
type Result struct {
	Bounds        geometry.BoundingBox
	Footprint     Footprint
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
}

// Analyze computes all geometric measurements for a model. It is a
// convenience wrapper over the individual pure functions above.
func Analyze(model *stl.Model) *Result {
	bounds := Bounds(model)
	return &Result{
		Bounds:        bounds,
		Footprint:     FootprintOf(bounds),
		Volume:        Volume(model),
		SurfaceArea:   SurfaceArea(model),
		TriangleCount: model.TriangleCount(),
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
