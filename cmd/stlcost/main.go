package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlcost/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stlcost",
	Short: "A CLI tool for analyzing STL files and estimating print cost",
	Long: `stlcost analyzes STL (Stereolithography) files for print planning.
It supports both ASCII and binary STL formats and derives bounding box,
footprint, volume, surface area, estimated material weight, print time
and a print-cost breakdown.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
