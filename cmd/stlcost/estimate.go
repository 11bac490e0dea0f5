package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/stlcost/pkg/estimate"
	"github.com/philipparndt/stlcost/pkg/pipeline"
	"github.com/spf13/cobra"
)

var (
	estimateJSON   bool
	estimateStrict bool
	filamentPerKG  float64
	machinePerHour float64
	marginPercent  float64
	bedWidth       float64
	bedDepth       float64
	bedHeight      float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [file]",
	Short: "Estimate print weight, duration and cost for an STL file",
	Long: `Run the full ingestion pipeline on an STL file and print the derived
footprint, material weight, print duration and cost breakdown.
The estimates are rough planning figures, not a slicer simulation.`,
	Args: cobra.ExactArgs(1),
	Run:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "Output machine-readable JSON")
	estimateCmd.Flags().BoolVar(&estimateStrict, "strict", false, "Reject files with unparseable numeric tokens")
	estimateCmd.Flags().Float64Var(&filamentPerKG, "filament-per-kg", estimate.DefaultRates().FilamentPerKG, "Filament price per kilogram")
	estimateCmd.Flags().Float64Var(&machinePerHour, "machine-per-hour", estimate.DefaultRates().MachinePerHour, "Machine cost per hour")
	estimateCmd.Flags().Float64Var(&marginPercent, "margin-percent", estimate.DefaultRates().MarginPercent, "Margin percentage")
	estimateCmd.Flags().Float64Var(&bedWidth, "bed-width", 220, "Printer bed width in mm")
	estimateCmd.Flags().Float64Var(&bedDepth, "bed-depth", 220, "Printer bed depth in mm")
	estimateCmd.Flags().Float64Var(&bedHeight, "bed-height", 250, "Printer bed height in mm")
}

func runEstimate(cmd *cobra.Command, args []string) {
	filename := args[0]

	processor := pipeline.New(pipeline.Options{StrictNumbers: estimateStrict})
	outcome := processor.ProcessFile(filename)
	if !outcome.OK() {
		fmt.Fprintf(os.Stderr, "Error processing STL file (stage %s): %v\n", outcome.Stage, outcome.Err)
		os.Exit(1)
	}

	rates := estimate.Rates{
		FilamentPerKG:  filamentPerKG,
		MachinePerHour: machinePerHour,
		MarginPercent:  marginPercent,
	}
	cost := estimate.Cost(outcome.Stats, rates)
	fits := outcome.Footprint.FitsBuildVolume(bedWidth, bedDepth, bedHeight)

	if estimateJSON {
		printEstimateJSON(outcome, cost, fits)
		return
	}

	fmt.Println("Print Estimate")
	fmt.Println("==============")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Footprint:")
	fmt.Printf("  Width (X): %.2f mm\n", outcome.Footprint.Width)
	fmt.Printf("  Depth (Y): %.2f mm\n", outcome.Footprint.Depth)
	fmt.Printf("  Height (Z): %.2f mm\n", outcome.Footprint.Height)
	if fits {
		fmt.Printf("  Fits %.0fx%.0fx%.0f mm bed: yes\n\n", bedWidth, bedDepth, bedHeight)
	} else {
		fmt.Printf("  Fits %.0fx%.0fx%.0f mm bed: no\n\n", bedWidth, bedDepth, bedHeight)
	}

	fmt.Println("Print Statistics:")
	fmt.Printf("  Triangles: %d\n", outcome.Stats.TriangleCount)
	fmt.Printf("  Volume: %.2f mm³\n", outcome.Stats.VolumeMM3)
	fmt.Printf("  Surface Area: %.2f mm²\n", outcome.Stats.SurfaceAreaMM2)
	fmt.Printf("  Estimated Weight: %.2f g\n", outcome.Stats.WeightGrams)
	fmt.Printf("  Estimated Print Time: %d min\n\n", outcome.Stats.PrintMinutes)

	fmt.Println("Cost Breakdown:")
	fmt.Printf("  Material: %.2f\n", cost.Material)
	fmt.Printf("  Machine: %.2f\n", cost.Machine)
	fmt.Printf("  Margin: %.2f\n", cost.Margin)
	fmt.Printf("  Total: %.2f\n", cost.Total)
}

func printEstimateJSON(outcome pipeline.Outcome, cost estimate.CostBreakdown, fits bool) {
	payload := struct {
		Footprint interface{}            `json:"footprint"`
		Stats     interface{}            `json:"stats"`
		Cost      estimate.CostBreakdown `json:"cost"`
		FitsBed   bool                   `json:"fits_bed"`
	}{
		Footprint: outcome.Footprint,
		Stats:     outcome.Stats,
		Cost:      cost,
		FitsBed:   fits,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
