package stl

import (
	"fmt"
	"os"
)

// Parse reads an STL file and returns a Model.
// It automatically detects whether the file is ASCII or binary format.
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses STL data from an in-memory buffer.
// Malformed ASCII numeric tokens propagate as NaN coordinates.
func ParseBytes(data []byte) (*Model, error) {
	return parseBytes(data, false)
}

// ParseBytesStrict is like ParseBytes but rejects ASCII files
// containing numeric tokens that fail to parse.
func ParseBytesStrict(data []byte) (*Model, error) {
	return parseBytes(data, true)
}

// parseBytes routes the buffer to the right reader. A file whose first
// five bytes are the ASCII text "solid" is treated as ASCII STL,
// everything else as binary. This is the conventional heuristic: a
// binary file whose 80-byte header happens to start with "solid" is
// misclassified. That ambiguity is inherent to the STL format and the
// convention is kept for compatibility with the wider ecosystem.
func parseBytes(data []byte, strict bool) (*Model, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedHeader, len(data))
	}

	if string(data[:5]) == "solid" {
		return parseASCII(data, strict)
	}

	return parseBinary(data)
}
