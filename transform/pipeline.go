// SPDX-License-Identifier: MIT

// Package transform - YAML pipeline documents.
//
// Layout:
//
//	start: [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,0,1]   # optional, column-major
//	steps:
//	  - op: scale
//	    by: 2                                     # or vector: [x, y, z]
//	  - op: rotate
//	    angle: 90deg                              # "1.5rad" or a bare number (radians)
//	    axis: [0, 0, 1]
//	  - op: translate
//	    vector: [1, 2, 3]
//	  - op: perspective
//	    angle: 60deg
//	    ratio: 1.5
//	    near: 0.1
//	    far: 100
//	  - op: ortho                                 # left, right, bottom, top, near, far
//	    left: -1
//	    right: 1
//	    ...
//	  - op: lookat                                # from, to, up: [x, y, z] each
//	    from: [0, 0, 5]
//	    ...
//	  - op: matrix
//	    columns: [16 numbers, column-major]
//
// Unknown keys are rejected at decode time.

package transform

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/openmath/mat4"
	"github.com/katalvlaran/openmath/scalar"
	"github.com/katalvlaran/openmath/vector"
)

// Op names accepted in a pipeline document.
const (
	OpTranslate   = "translate"
	OpRotate      = "rotate"
	OpScale       = "scale"
	OpPerspective = "perspective"
	OpOrtho       = "ortho"
	OpLookAt      = "lookat"
	OpMatrix      = "matrix"
)

const cellCount = 16

// Pipeline is a decoded pipeline document.
type Pipeline struct {
	Start []float64  `yaml:"start,omitempty"`
	Steps []StepSpec `yaml:"steps"`
}

// StepSpec is one entry of Pipeline.Steps. Which fields are read depends
// on Op; setting any other field is an error (ErrUnexpectedField).
type StepSpec struct {
	Op string `yaml:"op"`

	Vector []float64 `yaml:"vector,omitempty"`
	By     *float64  `yaml:"by,omitempty"`
	Angle  AngleText `yaml:"angle,omitempty"`
	Axis   []float64 `yaml:"axis,omitempty"`

	Ratio  *float64 `yaml:"ratio,omitempty"`
	Near   *float64 `yaml:"near,omitempty"`
	Far    *float64 `yaml:"far,omitempty"`
	Left   *float64 `yaml:"left,omitempty"`
	Right  *float64 `yaml:"right,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty"`
	Top    *float64 `yaml:"top,omitempty"`

	From []float64 `yaml:"from,omitempty"`
	To   []float64 `yaml:"to,omitempty"`
	Up   []float64 `yaml:"up,omitempty"`

	Columns []float64 `yaml:"columns,omitempty"`
}

// Decode reads one YAML pipeline document from r.
func Decode(r io.Reader) (*Pipeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Pipeline
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	return &p, nil
}

// Encode writes p as YAML to w.
func (p *Pipeline) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return enc.Close()
}

// Compile turns the document into Step values. It checks the document's
// shape only; parameter domains are checked when the steps run.
func (p *Pipeline) Compile() ([]Step, error) {
	steps := make([]Step, 0, len(p.Steps))
	for i, spec := range p.Steps {
		s, err := spec.compile()
		if err != nil {
			return nil, fmt.Errorf("Compile: step %d (%s): %w", i, spec.Op, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Options returns the Build options the document implies (its start matrix).
func (p *Pipeline) Options() ([]Option, error) {
	if p.Start == nil {
		return nil, nil
	}
	a, err := cells("start", p.Start)
	if err != nil {
		return nil, fmt.Errorf("Options: %w", err)
	}
	return []Option{WithStart(mat4.FromArray(a))}, nil
}

// Build compiles and runs the pipeline. opts are applied after the
// document's own options, so they take precedence.
func (p *Pipeline) Build(opts ...Option) (mat4.Mat4, error) {
	base, err := p.Options()
	if err != nil {
		return mat4.Mat4{}, err
	}
	steps, err := p.Compile()
	if err != nil {
		return mat4.Mat4{}, err
	}
	return Build(append(base, opts...), steps...)
}

// AngleText is an angle exactly as written in the document: "90deg",
// "1.5rad" or a bare number of radians. YAML may type a bare number as
// !!int or !!float; the node's source text is kept either way.
type AngleText string

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *AngleText) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: angle must be a scalar", n.Line)
	}
	*a = AngleText(n.Value)
	return nil
}

// opFields lists, per op, the keys the op reads.
var opFields = map[string][]string{
	OpTranslate:   {"vector"},
	OpRotate:      {"angle", "axis"},
	OpScale:       {"vector", "by"},
	OpPerspective: {"angle", "ratio", "near", "far"},
	OpOrtho:       {"left", "right", "bottom", "top", "near", "far"},
	OpLookAt:      {"from", "to", "up"},
	OpMatrix:      {"columns"},
}

// setFields returns the YAML names of every parameter key present in s.
func (s StepSpec) setFields() []string {
	var set []string
	add := func(name string, present bool) {
		if present {
			set = append(set, name)
		}
	}
	add("vector", s.Vector != nil)
	add("by", s.By != nil)
	add("angle", s.Angle != "")
	add("axis", s.Axis != nil)
	add("ratio", s.Ratio != nil)
	add("near", s.Near != nil)
	add("far", s.Far != nil)
	add("left", s.Left != nil)
	add("right", s.Right != nil)
	add("bottom", s.Bottom != nil)
	add("top", s.Top != nil)
	add("from", s.From != nil)
	add("to", s.To != nil)
	add("up", s.Up != nil)
	add("columns", s.Columns != nil)
	return set
}

func (s StepSpec) compile() (Step, error) {
	op := strings.ToLower(strings.TrimSpace(s.Op))
	allowed, ok := opFields[op]
	if !ok {
		return nil, fmt.Errorf("%q: %w", s.Op, ErrUnknownOp)
	}
	for _, name := range s.setFields() {
		if !slices.Contains(allowed, name) {
			return nil, fmt.Errorf("%s: not read by %s: %w", name, op, ErrUnexpectedField)
		}
	}

	switch op {
	case OpTranslate:
		v, err := vec3("vector", s.Vector)
		if err != nil {
			return nil, err
		}
		return Translate(v), nil

	case OpRotate:
		a, err := angle(s.Angle)
		if err != nil {
			return nil, err
		}
		axis, err := vec3("axis", s.Axis)
		if err != nil {
			return nil, err
		}
		return Rotate(a, axis), nil

	case OpScale:
		if s.By != nil && s.Vector != nil {
			return nil, fmt.Errorf("by and vector are exclusive: %w", ErrUnexpectedField)
		}
		if s.By != nil {
			return ScaleBy(*s.By), nil
		}
		v, err := vec3("vector", s.Vector)
		if err != nil {
			return nil, fmt.Errorf("%w (or by)", err)
		}
		return Scale(v), nil

	case OpPerspective:
		a, err := angle(s.Angle)
		if err != nil {
			return nil, err
		}
		n, err := numbers(map[string]*float64{"ratio": s.Ratio, "near": s.Near, "far": s.Far})
		if err != nil {
			return nil, err
		}
		return Perspective(a, n["ratio"], n["near"], n["far"]), nil

	case OpOrtho:
		n, err := numbers(map[string]*float64{
			"left": s.Left, "right": s.Right,
			"bottom": s.Bottom, "top": s.Top,
			"near": s.Near, "far": s.Far,
		})
		if err != nil {
			return nil, err
		}
		return Ortho(n["left"], n["right"], n["bottom"], n["top"], n["near"], n["far"]), nil

	case OpLookAt:
		from, err := vec3("from", s.From)
		if err != nil {
			return nil, err
		}
		to, err := vec3("to", s.To)
		if err != nil {
			return nil, err
		}
		up, err := vec3("up", s.Up)
		if err != nil {
			return nil, err
		}
		return LookAt(from, to, up), nil

	case OpMatrix:
		a, err := cells("columns", s.Columns)
		if err != nil {
			return nil, err
		}
		return Matrix(mat4.FromArray(a)), nil
	}

	return nil, fmt.Errorf("%q: %w", s.Op, ErrUnknownOp)
}

func angle(s AngleText) (scalar.Angle, error) {
	if s == "" {
		return scalar.Angle{}, fmt.Errorf("angle: %w", ErrMissingField)
	}
	return scalar.ParseAngle(string(s))
}

func vec3(field string, xs []float64) (vector.Vec3, error) {
	if xs == nil {
		return vector.Vec3{}, fmt.Errorf("%s: %w", field, ErrMissingField)
	}
	if len(xs) != 3 {
		return vector.Vec3{}, fmt.Errorf("%s: got %d, want 3: %w", field, len(xs), ErrBadArity)
	}
	return vector.New3(xs[0], xs[1], xs[2]), nil
}

func cells(field string, xs []float64) ([cellCount]float64, error) {
	var a [cellCount]float64
	if xs == nil {
		return a, fmt.Errorf("%s: %w", field, ErrMissingField)
	}
	if len(xs) != cellCount {
		return a, fmt.Errorf("%s: got %d, want %d: %w", field, len(xs), cellCount, ErrBadArity)
	}
	copy(a[:], xs)
	return a, nil
}

// numbers dereferences every required scalar field. Missing names are
// reported in sorted order so the message is stable.
func numbers(fields map[string]*float64) (map[string]float64, error) {
	out := make(map[string]float64, len(fields))
	var missing []string
	for name, p := range fields {
		if p == nil {
			missing = append(missing, name)
			continue
		}
		out[name] = *p
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrMissingField)
	}
	return out, nil
}
