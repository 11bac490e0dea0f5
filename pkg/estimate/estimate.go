package estimate

import "math"

// Physical constants for the estimation heuristic. Density is for PLA;
// material selection is a concern of the calling application, not of
// this estimator.
const (
	// PLADensity is the density of PLA filament in g/cm³
	PLADensity = 1.24

	// MinutesPerGram is a rough print-duration heuristic
	MinutesPerGram = 2.0
)

// PrintStatistics contains the derived print-planning figures for a
// model. All fields are recomputed fresh on each estimate.
type PrintStatistics struct {
	VolumeMM3      float64 `json:"volume_mm3"`
	SurfaceAreaMM2 float64 `json:"surface_area_mm2"`
	WeightGrams    float64 `json:"weight_grams"`
	PrintMinutes   int     `json:"print_minutes"`
	TriangleCount  int     `json:"triangle_count"`
}

// Estimate derives print statistics from a model's volume (mm³),
// surface area (mm²) and triangle count.
//
// This is a deliberately rough heuristic for upfront cost display, not
// a slicer simulation: weight is volume times PLA density, duration is
// two minutes per gram. Rounding happens once here, at the boundary:
// weight to two decimals, duration to whole minutes.
func Estimate(volumeMM3, surfaceAreaMM2 float64, triangleCount int) PrintStatistics {
	volumeCM3 := volumeMM3 / 1000.0
	weight := volumeCM3 * PLADensity
	minutes := weight * MinutesPerGram

	return PrintStatistics{
		VolumeMM3:      volumeMM3,
		SurfaceAreaMM2: surfaceAreaMM2,
		WeightGrams:    math.Round(weight*100) / 100,
		PrintMinutes:   int(math.Round(minutes)),
		TriangleCount:  triangleCount,
	}
}
