package stl

import "errors"

var (
	// ErrMalformedHeader is returned when a file is too short to even
	// decide between the ASCII and binary STL variants.
	ErrMalformedHeader = errors.New("stl: file too short to detect format")

	// ErrTruncatedPayload is returned when a binary file declares more
	// triangles than its payload actually contains.
	ErrTruncatedPayload = errors.New("stl: binary payload shorter than declared triangle count")

	// ErrBadNumber is returned in strict mode when an ASCII numeric
	// token fails to parse. The default (permissive) mode propagates
	// NaN instead, matching the wider STL ecosystem.
	ErrBadNumber = errors.New("stl: unparseable numeric token")
)
