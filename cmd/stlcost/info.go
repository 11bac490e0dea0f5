package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlcost/pkg/analysis"
	"github.com/philipparndt/stlcost/pkg/geometry"
	"github.com/philipparndt/stlcost/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display geometric information about an STL file",
	Long:  "Show dimensions, triangle count, volume and surface area of an STL file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	format := "ASCII"
	if model.Binary {
		format = "binary"
	}
	fmt.Printf("File: %s (%s)\n\n", filename, format)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Surface Area: %.6f mm²\n", result.SurfaceArea)
	fmt.Printf("  Volume: %.6f mm³\n\n", result.Volume)

	if result.TriangleCount == 0 {
		fmt.Println("Model contains no triangles; bounding box is undefined.")
		return
	}

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", formatVector(result.Bounds.Min))
	fmt.Printf("  Max: %s\n", formatVector(result.Bounds.Max))
	fmt.Printf("  Center: %s\n\n", formatVector(result.Bounds.Center()))

	fmt.Println("Footprint:")
	fmt.Printf("  Width (X): %.2f mm\n", result.Footprint.Width)
	fmt.Printf("  Depth (Y): %.2f mm\n", result.Footprint.Depth)
	fmt.Printf("  Height (Z): %.2f mm\n", result.Footprint.Height)
	fmt.Printf("  Diagonal: %.2f mm\n", result.Bounds.Diagonal())
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
