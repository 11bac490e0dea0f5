// Package pipeline sequences STL parsing, geometry analysis and print
// estimation into a single processing step for the upload flow. The
// result of a run is always one Outcome value: either the complete set
// of derived figures, or the stage that failed and why. Geometry is
// never substituted with defaults on failure.
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipparndt/stlcost/pkg/analysis"
	"github.com/philipparndt/stlcost/pkg/estimate"
	"github.com/philipparndt/stlcost/pkg/geometry"
	"github.com/philipparndt/stlcost/pkg/stl"
)

// ErrDegenerateMesh is returned when a file parses cleanly but
// contains zero triangles. The bounding box of such a mesh is the Inf
// sentinel and all derived statistics would be meaningless, so the
// pipeline refuses to report them as a success.
var ErrDegenerateMesh = errors.New("pipeline: mesh contains no triangles")

// Stage identifies the processing stage an outcome refers to
type Stage string

const (
	StageRead     Stage = "read"
	StageParse    Stage = "parse"
	StageGeometry Stage = "geometry"
	StageStats    Stage = "stats"
	StageDone     Stage = "done"
)

// Outcome is the uniform result of one pipeline run. On success Err is
// nil, Stage is StageDone and the derived fields are populated. On
// failure Err holds the typed reason, Stage names the stage that
// failed and the derived fields must not be read.
type Outcome struct {
	Stage         Stage                    `json:"stage"`
	Footprint     analysis.Footprint       `json:"footprint"`
	Bounds        geometry.BoundingBox     `json:"bounds"`
	Stats         estimate.PrintStatistics `json:"stats"`
	TriangleCount int                      `json:"triangle_count"`
	Binary        bool                     `json:"binary"`
	Err           error                    `json:"-"`
}

// OK reports whether the run completed successfully
func (o Outcome) OK() bool {
	return o.Err == nil
}

func failed(stage Stage, err error) Outcome {
	return Outcome{Stage: stage, Err: err}
}

// Options configures a Processor
type Options struct {
	// StrictNumbers rejects ASCII files with unparseable numeric
	// tokens instead of propagating NaN coordinates.
	StrictNumbers bool
}

// Processor runs the STL ingestion pipeline. A Processor is stateless
// apart from its options and safe for concurrent use.
type Processor struct {
	opts Options
}

// New creates a Processor with the given options
func New(opts Options) *Processor {
	return &Processor{opts: opts}
}

// ProcessFile reads a file and runs the pipeline on its contents.
// A read failure is reported as StageRead with the os error wrapped
// unchanged; no retry is attempted here.
func (p *Processor) ProcessFile(path string) Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return failed(StageRead, fmt.Errorf("read %s: %w", path, err))
	}
	return p.ProcessBytes(data)
}

// ProcessBytes runs the pipeline on an in-memory STL buffer:
// format detection, parsing, geometry analysis, print estimation.
// The stages run strictly in order and the first failure stops the run.
func (p *Processor) ProcessBytes(data []byte) Outcome {
	var model *stl.Model
	var err error

	if p.opts.StrictNumbers {
		model, err = stl.ParseBytesStrict(data)
	} else {
		model, err = stl.ParseBytes(data)
	}
	if err != nil {
		return failed(StageParse, err)
	}

	if model.TriangleCount() == 0 {
		return failed(StageGeometry, ErrDegenerateMesh)
	}

	result := analysis.Analyze(model)
	stats := estimate.Estimate(result.Volume, result.SurfaceArea, result.TriangleCount)

	return Outcome{
		Stage:         StageDone,
		Footprint:     result.Footprint,
		Bounds:        result.Bounds,
		Stats:         stats,
		TriangleCount: result.TriangleCount,
		Binary:        model.Binary,
	}
}
