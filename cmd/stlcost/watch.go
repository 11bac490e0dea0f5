package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/stlcost/pkg/pipeline"
	"github.com/philipparndt/stlcost/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-estimate an STL file whenever it changes",
	Long: `Watch an STL file and re-run the estimation pipeline after every
write, debounced so a single export triggers one run. Useful while
iterating on a model in a CAD tool.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period before re-analyzing")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]
	processor := pipeline.New(pipeline.Options{})

	report := func(path string) {
		outcome := processor.ProcessFile(path)
		if !outcome.OK() {
			fmt.Fprintf(os.Stderr, "[%s] %s: failed at stage %s: %v\n",
				time.Now().Format("15:04:05"), path, outcome.Stage, outcome.Err)
			return
		}
		fmt.Printf("[%s] %s: %d triangles, %.2fx%.2fx%.2f mm, %.2f g, %d min\n",
			time.Now().Format("15:04:05"), path,
			outcome.TriangleCount,
			outcome.Footprint.Width, outcome.Footprint.Depth, outcome.Footprint.Height,
			outcome.Stats.WeightGrams, outcome.Stats.PrintMinutes)
	}

	mw, err := watcher.NewModelWatcher(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer mw.Close()

	if err := mw.Watch(filename, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching file: %v\n", err)
		os.Exit(1)
	}

	// Initial run before the first change event.
	report(filename)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
}
