package pipeline

import (
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/stlcost/pkg/geometry"
	"github.com/philipparndt/stlcost/pkg/stl"
)

// encodeBinarySTL builds a binary STL buffer from triangles with the
// given declared count.
func encodeBinarySTL(triangles []geometry.Triangle, declaredCount uint32) []byte {
	buf := make([]byte, 80, 84+50*len(triangles))
	buf = binary.LittleEndian.AppendUint32(buf, declaredCount)

	putVector := func(v geometry.Vector3) {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.X)))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.Y)))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.Z)))
	}

	for _, tri := range triangles {
		putVector(tri.Normal)
		putVector(tri.V1)
		putVector(tri.V2)
		putVector(tri.V3)
		buf = binary.LittleEndian.AppendUint16(buf, 0)
	}

	return buf
}

// cubeTriangles builds a closed 10mm cube from (0,0,0) to (10,10,10)
func cubeTriangles() []geometry.Triangle {
	const s = 10.0
	p000 := geometry.NewVector3(0, 0, 0)
	p100 := geometry.NewVector3(s, 0, 0)
	p110 := geometry.NewVector3(s, s, 0)
	p010 := geometry.NewVector3(0, s, 0)
	p001 := geometry.NewVector3(0, 0, s)
	p101 := geometry.NewVector3(s, 0, s)
	p111 := geometry.NewVector3(s, s, s)
	p011 := geometry.NewVector3(0, s, s)

	faces := [][3]geometry.Vector3{
		{p000, p010, p110}, {p000, p110, p100},
		{p001, p101, p111}, {p001, p111, p011},
		{p000, p100, p101}, {p000, p101, p001},
		{p010, p011, p111}, {p010, p111, p110},
		{p000, p001, p011}, {p000, p011, p010},
		{p100, p110, p111}, {p100, p111, p101},
	}

	triangles := make([]geometry.Triangle, 0, len(faces))
	for _, f := range faces {
		triangles = append(triangles, geometry.NewTriangle(geometry.Vector3{}, f[0], f[1], f[2]))
	}
	return triangles
}

func TestProcessBytesCube(t *testing.T) {
	cube := cubeTriangles()
	data := encodeBinarySTL(cube, uint32(len(cube)))

	outcome := New(Options{}).ProcessBytes(data)
	if !outcome.OK() {
		t.Fatalf("ProcessBytes failed at stage %s: %v", outcome.Stage, outcome.Err)
	}

	if outcome.Stage != StageDone {
		t.Errorf("Stage failed: expected %s, got %s", StageDone, outcome.Stage)
	}
	if !outcome.Binary {
		t.Error("Binary flag should be set for a binary buffer")
	}
	if outcome.TriangleCount != 12 {
		t.Errorf("TriangleCount failed: expected 12, got %d", outcome.TriangleCount)
	}
	if outcome.Footprint.Width != 10 || outcome.Footprint.Depth != 10 || outcome.Footprint.Height != 10 {
		t.Errorf("Footprint failed: got %+v", outcome.Footprint)
	}
	if math.Abs(outcome.Stats.VolumeMM3-1000) > 1e-6 {
		t.Errorf("Volume failed: expected 1000, got %v", outcome.Stats.VolumeMM3)
	}
	if math.Abs(outcome.Stats.WeightGrams-1.24) > 1e-10 {
		t.Errorf("WeightGrams failed: expected 1.24, got %v", outcome.Stats.WeightGrams)
	}
	if outcome.Stats.PrintMinutes != 2 {
		t.Errorf("PrintMinutes failed: expected 2, got %d", outcome.Stats.PrintMinutes)
	}
}

func TestProcessBytesDegenerateMesh(t *testing.T) {
	data := encodeBinarySTL(nil, 0)

	outcome := New(Options{}).ProcessBytes(data)
	if outcome.OK() {
		t.Fatal("A zero-triangle mesh must not be reported as success")
	}
	if outcome.Stage != StageGeometry {
		t.Errorf("Stage failed: expected %s, got %s", StageGeometry, outcome.Stage)
	}
	if !errors.Is(outcome.Err, ErrDegenerateMesh) {
		t.Errorf("Expected ErrDegenerateMesh, got %v", outcome.Err)
	}
}

func TestProcessBytesTruncated(t *testing.T) {
	cube := cubeTriangles()
	data := encodeBinarySTL(cube[:3], uint32(len(cube)))

	outcome := New(Options{}).ProcessBytes(data)
	if outcome.OK() {
		t.Fatal("A truncated payload must not be reported as success")
	}
	if outcome.Stage != StageParse {
		t.Errorf("Stage failed: expected %s, got %s", StageParse, outcome.Stage)
	}
	if !errors.Is(outcome.Err, stl.ErrTruncatedPayload) {
		t.Errorf("Expected ErrTruncatedPayload, got %v", outcome.Err)
	}
}

func TestProcessBytesMalformedHeader(t *testing.T) {
	outcome := New(Options{}).ProcessBytes([]byte("so"))

	if outcome.OK() {
		t.Fatal("A 2-byte buffer must not be reported as success")
	}
	if !errors.Is(outcome.Err, stl.ErrMalformedHeader) {
		t.Errorf("Expected ErrMalformedHeader, got %v", outcome.Err)
	}
}

func TestProcessBytesStrictNumbers(t *testing.T) {
	bad := "solid bad\n facet normal 0 0 1\n outer loop\n vertex x 0 0\n vertex 1 0 0\n vertex 0 1 0\n endloop\n endfacet\nendsolid bad\n"

	outcome := New(Options{StrictNumbers: true}).ProcessBytes([]byte(bad))
	if outcome.OK() {
		t.Fatal("Strict mode must reject unparseable numeric tokens")
	}
	if !errors.Is(outcome.Err, stl.ErrBadNumber) {
		t.Errorf("Expected ErrBadNumber, got %v", outcome.Err)
	}
}

func TestProcessFileMissing(t *testing.T) {
	outcome := New(Options{}).ProcessFile(filepath.Join(t.TempDir(), "missing.stl"))

	if outcome.OK() {
		t.Fatal("A missing file must not be reported as success")
	}
	if outcome.Stage != StageRead {
		t.Errorf("Stage failed: expected %s, got %s", StageRead, outcome.Stage)
	}
	if !errors.Is(outcome.Err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", outcome.Err)
	}
}

func TestProcessFileCube(t *testing.T) {
	cube := cubeTriangles()
	path := filepath.Join(t.TempDir(), "cube.stl")
	if err := os.WriteFile(path, encodeBinarySTL(cube, uint32(len(cube))), 0o644); err != nil {
		t.Fatal(err)
	}

	outcome := New(Options{}).ProcessFile(path)
	if !outcome.OK() {
		t.Fatalf("ProcessFile failed at stage %s: %v", outcome.Stage, outcome.Err)
	}
	if outcome.TriangleCount != 12 {
		t.Errorf("TriangleCount failed: expected 12, got %d", outcome.TriangleCount)
	}
}
