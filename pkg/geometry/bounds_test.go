package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(-1, 5, 0))

	expectedMin := NewVector3(-1, 2, 0)
	expectedMax := NewVector3(1, 5, 3)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmptySentinel(t *testing.T) {
	bbox := NewBoundingBox()

	if !bbox.IsEmpty() {
		t.Error("Fresh bounding box should be empty")
	}
	if !math.IsInf(bbox.Min.X, 1) || !math.IsInf(bbox.Max.X, -1) {
		t.Errorf("Empty box should hold Inf sentinels, got min=%v max=%v", bbox.Min, bbox.Max)
	}

	bbox.Extend(NewVector3(0, 0, 0))
	if bbox.IsEmpty() {
		t.Error("Extended bounding box should not be empty")
	}
}

func TestBoundingBoxSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	size := bbox.Size()
	expected := NewVector3(10, 20, 30)

	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 10, 10))

	center := bbox.Center()
	expected := NewVector3(5, 5, 5)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}
