// Package toolchain locates and invokes the external mesh tools used
// after ingestion: GLB conversion for the browser viewer and thumbnail
// rendering for listings. Both run as black-box processes; this
// package only builds their command lines from the pipeline's output.
package toolchain

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Default binaries probed by Detect
const (
	converterBinary   = "assimp"
	thumbnailerBinary = "f3d"
)

// Capabilities describes which external tools are available. It is
// meant to be resolved once at startup with Detect and passed to the
// components that need it, instead of each call probing PATH again.
type Capabilities struct {
	ConverterPath   string
	ThumbnailerPath string
}

// Detect probes PATH for the external tools
func Detect() Capabilities {
	var caps Capabilities
	if path, err := exec.LookPath(converterBinary); err == nil {
		caps.ConverterPath = path
	}
	if path, err := exec.LookPath(thumbnailerBinary); err == nil {
		caps.ThumbnailerPath = path
	}
	return caps
}

// HasConverter reports whether GLB conversion is available
func (c Capabilities) HasConverter() bool {
	return c.ConverterPath != ""
}

// HasThumbnailer reports whether thumbnail rendering is available
func (c Capabilities) HasThumbnailer() bool {
	return c.ThumbnailerPath != ""
}

// Converter invokes the external tools on validated model files
type Converter struct {
	caps Capabilities
}

// NewConverter creates a converter bound to the given capabilities
func NewConverter(caps Capabilities) *Converter {
	return &Converter{caps: caps}
}

// ConvertGLB converts an STL file to GLB using the external converter
func (c *Converter) ConvertGLB(stlFile, outputFile string) error {
	if !c.caps.HasConverter() {
		return fmt.Errorf("%s not found in PATH, cannot convert to GLB", converterBinary)
	}

	cmd := exec.Command(c.caps.ConverterPath, "export", stlFile, outputFile)
	return run(cmd, stlFile)
}

// RenderThumbnail renders a PNG thumbnail of an STL file using the
// external renderer
func (c *Converter) RenderThumbnail(stlFile, outputFile string) error {
	if !c.caps.HasThumbnailer() {
		return fmt.Errorf("%s not found in PATH, cannot render thumbnail", thumbnailerBinary)
	}

	cmd := exec.Command(c.caps.ThumbnailerPath, "--output", outputFile, stlFile)
	return run(cmd, stlFile)
}

// run executes a tool command and folds its captured output into the
// error on failure.
func run(cmd *exec.Cmd, inputFile string) error {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to process %s: %v\n", inputFile, err))
		if stderr.Len() > 0 {
			errMsg.WriteString("stderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("stdout: ")
			errMsg.WriteString(stdout.String())
		}
		return fmt.Errorf("%s", errMsg.String())
	}

	return nil
}
