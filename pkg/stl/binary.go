package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/philipparndt/stlcost/pkg/geometry"
)

const (
	binaryHeaderSize   = 80
	binaryTriangleSize = 50 // 12 float32 + uint16 attribute count
)

// parseBinary decodes the fixed binary STL layout: an 80-byte header,
// a little-endian uint32 triangle count and one 50-byte record per
// triangle. The declared count is validated against the actual buffer
// length up front, so a corrupted or hostile count can never cause a
// read past the end of the buffer.
func parseBinary(data []byte) (*Model, error) {
	if len(data) < binaryHeaderSize+4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedHeader, len(data))
	}

	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])

	need := uint64(binaryHeaderSize) + 4 + uint64(count)*binaryTriangleSize
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: %d triangles declared, need %d bytes, have %d",
			ErrTruncatedPayload, count, need, len(data))
	}

	name := string(bytes.TrimRight(data[:binaryHeaderSize], "\x00"))
	model := NewModel(name, true)

	offset := binaryHeaderSize + 4
	for i := uint32(0); i < count; i++ {
		record := data[offset : offset+binaryTriangleSize]

		normal := readVector(record, 0)
		v1 := readVector(record, 12)
		v2 := readVector(record, 24)
		v3 := readVector(record, 36)
		// Trailing 2 attribute bytes are ignored.

		model.AddTriangle(geometry.NewTriangle(normal, v1, v2, v3))
		offset += binaryTriangleSize
	}

	return model, nil
}

// readVector decodes three consecutive little-endian float32 values
// starting at the given offset.
func readVector(record []byte, offset int) geometry.Vector3 {
	x := math.Float32frombits(binary.LittleEndian.Uint32(record[offset:]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(record[offset+4:]))
	z := math.Float32frombits(binary.LittleEndian.Uint32(record[offset+8:]))
	return geometry.NewVector3(float64(x), float64(y), float64(z))
}
