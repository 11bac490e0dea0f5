package stl

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/stlcost/pkg/geometry"
)

// parseASCII tokenizes the line-oriented ASCII STL grammar. Each
// facet normal / outer loop / vertex*3 / endloop / endfacet block
// emits one triangle. An incomplete trailing block (fewer than three
// vertex lines before end of input) is dropped silently.
//
// In permissive mode a numeric token that fails to parse yields NaN in
// the resulting coordinate rather than an error; strict mode rejects
// the file instead.
func parseASCII(data []byte, strict bool) (*Model, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	model := NewModel("", false)

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	var parseErr error

	parse := func(token string) float64 {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			if strict && parseErr == nil {
				parseErr = fmt.Errorf("%w: %q", ErrBadNumber, token)
			}
			return math.NaN()
		}
		return value
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				currentNormal = geometry.NewVector3(
					parse(fields[2]),
					parse(fields[3]),
					parse(fields[4]),
				)
			}

		case "vertex":
			if len(fields) >= 4 {
				vertices = append(vertices, geometry.NewVector3(
					parse(fields[1]),
					parse(fields[2]),
					parse(fields[3]),
				))
			}

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(
					currentNormal,
					vertices[0],
					vertices[1],
					vertices[2],
				))
			}
			vertices = vertices[:0]
		}

		if parseErr != nil {
			return nil, parseErr
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}
