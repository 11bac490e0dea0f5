package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/stlcost/pkg/pipeline"
	"github.com/philipparndt/stlcost/pkg/toolchain"
	"github.com/spf13/cobra"
)

var (
	convertGLB       string
	convertThumbnail string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a validated STL file via the external toolchain",
	Long: `Validate an STL file through the ingestion pipeline, then hand it to
the external tools for GLB conversion and thumbnail rendering. Tool
availability is detected once from PATH; a missing tool fails the
corresponding output instead of being silently skipped.`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertGLB, "glb", "", "Output path for the GLB conversion")
	convertCmd.Flags().StringVar(&convertThumbnail, "thumbnail", "", "Output path for the PNG thumbnail")
}

func runConvert(cmd *cobra.Command, args []string) {
	filename := args[0]

	if convertGLB == "" && convertThumbnail == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one of --glb or --thumbnail is required")
		os.Exit(1)
	}

	// Conversion only makes sense for a model the pipeline accepts.
	outcome := pipeline.New(pipeline.Options{}).ProcessFile(filename)
	if !outcome.OK() {
		fmt.Fprintf(os.Stderr, "Error processing STL file (stage %s): %v\n", outcome.Stage, outcome.Err)
		os.Exit(1)
	}

	caps := toolchain.Detect()
	converter := toolchain.NewConverter(caps)

	if convertGLB != "" {
		if err := converter.ConvertGLB(filename, convertGLB); err != nil {
			fmt.Fprintf(os.Stderr, "Error converting to GLB: %v\n", strings.TrimSpace(err.Error()))
			os.Exit(1)
		}
		fmt.Printf("GLB written to %s\n", convertGLB)
	}

	if convertThumbnail != "" {
		if err := converter.RenderThumbnail(filename, convertThumbnail); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering thumbnail: %v\n", strings.TrimSpace(err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Thumbnail written to %s\n", convertThumbnail)
	}
}
