// SPDX-License-Identifier: MIT

// xform composes a YAML transform pipeline into a 4×4 matrix, prints it, or
// applies it to a point.
//
//	xform build -f scene.yaml --format grid
//	xform apply -f scene.yaml --point 1,2,3
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/openmath/mat4"
	"github.com/katalvlaran/openmath/transform"
	"github.com/katalvlaran/openmath/vector"
)

const (
	formatGrid  = "grid"
	formatArray = "array"
	formatJSON  = "json"
)

var cmdRoot = &cobra.Command{
	Use:           "xform",
	Short:         "Compose 4x4 transform pipelines",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	pipelineFile string
	noFiniteChk  bool
)

func init() {
	cmdRoot.PersistentFlags().StringVarP(&pipelineFile, "file", "f", "", "Pipeline YAML file (- for stdin).")
	cmdRoot.PersistentFlags().BoolVar(&noFiniteChk, "allow-non-finite", false, "Do not reject NaN/Inf results.")
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmdRoot.AddCommand(cmdBuild, cmdApply)
}

var cmdBuild = &cobra.Command{
	Use:   "build",
	Short: "Print the composed matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(cmd.InOrStdin(), pipelineFile)
		if err != nil {
			return err
		}
		if err := writeMatrix(cmd.OutOrStdout(), m, buildFormat); err != nil {
			return fmt.Errorf("while writing matrix: %w", err)
		}
		return nil
	},
}

var buildFormat string

func init() {
	cmdBuild.Flags().StringVar(&buildFormat, "format", formatGrid, "Output format: grid, array (column-major) or json.")
}

var cmdApply = &cobra.Command{
	Use:   "apply",
	Short: "Multiply the composed matrix by a point",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePoint(applyPoint)
		if err != nil {
			return fmt.Errorf("while parsing --point: %w", err)
		}
		m, err := loadMatrix(cmd.InOrStdin(), pipelineFile)
		if err != nil {
			return err
		}

		out := m.MulVec(p)
		glog.V(1).Infof("apply: %v -> %v", p, out)
		fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g %g\n", out.X, out.Y, out.Z, out.W)
		return nil
	},
}

var applyPoint string

func init() {
	cmdApply.Flags().StringVar(&applyPoint, "point", "", "Point as x,y,z or x,y,z,w (w defaults to 1).")
}

// loadMatrix decodes and runs the pipeline in path; "-" reads stdin.
func loadMatrix(stdin io.Reader, path string) (mat4.Mat4, error) {
	if path == "" {
		return mat4.Mat4{}, fmt.Errorf("while reading pipeline: --file is required")
	}

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return mat4.Mat4{}, fmt.Errorf("while opening pipeline: %w", err)
		}
		defer f.Close()
		r = f
	}

	p, err := transform.Decode(r)
	if err != nil {
		return mat4.Mat4{}, fmt.Errorf("while decoding %s: %w", path, err)
	}
	glog.V(1).Infof("Decoded %d steps from %s", len(p.Steps), path)

	m, err := p.Build(transform.WithFiniteCheck(!noFiniteChk))
	if err != nil {
		return mat4.Mat4{}, fmt.Errorf("while building %s: %w", path, err)
	}
	glog.V(2).Infof("Composed matrix:\n%v", m)
	return m, nil
}

func writeMatrix(w io.Writer, m mat4.Mat4, format string) error {
	switch format {
	case formatGrid:
		_, err := fmt.Fprint(w, m)
		return err
	case formatArray:
		a := m.Array()
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, " "))
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}
	return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatGrid, formatArray, formatJSON)
}

// parsePoint reads "x,y,z" or "x,y,z,w".
func parsePoint(s string) (vector.Vec4d, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return vector.Vec4d{}, fmt.Errorf("%q: want 3 or 4 comma-separated numbers", s)
	}

	c := [4]float64{3: 1}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return vector.Vec4d{}, fmt.Errorf("%q: component %d: %w", s, i, err)
		}
		c[i] = v
	}
	return vector.New4(c[0], c[1], c[2], c[3]), nil
}

func main() {
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	if err := cmdRoot.Execute(); err != nil {
		glog.Errorf("xform: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
