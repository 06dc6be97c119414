// Package config loads map-generation plans from YAML.
//
// A plan describes the map size, a base seed, optional glyphs for rendering,
// and the features (roads, rivers, trails) to carve into it. Zero values mean
// "use the default", so a minimal file only needs a feature list.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathwalk/gridgraph"
	"github.com/katalvlaran/pathwalk/walker"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults applied to zero-valued fields.
const (
	DefaultWidth   = 10
	DefaultHeight  = 10
	DefaultCount   = 1
	DefaultRetries = 3
)

// Map is a complete generation plan.
type Map struct {
	Width    int            `yaml:"width" json:"width"`
	Height   int            `yaml:"height" json:"height"`
	Seed     int64          `yaml:"seed" json:"seed"`
	Legend   map[int]string `yaml:"legend,omitempty" json:"legend,omitempty"`
	Features []Feature      `yaml:"features" json:"features"`
}

// Feature is one kind of line to carve, painted Count times.
//
// Count, Exponent, StepPace and Retries are pointers so that an omitted key
// (nil, filled by ApplyDefaults) differs from an explicit zero: count 0
// paints nothing, retries 0 allows a single attempt, and a zero exponent or
// pace is rejected by Validate.
type Feature struct {
	Name     string   `yaml:"name" json:"name"`
	Fill     int      `yaml:"fill" json:"fill"`
	Count    *int     `yaml:"count,omitempty" json:"count,omitempty"`
	Exponent *float64 `yaml:"exponent,omitempty" json:"exponent,omitempty"`
	StepPace *float64 `yaml:"step_pace,omitempty" json:"step_pace,omitempty"`
	// Bias names the walker's bias policy: "linear" or "quadratic".
	Bias string `yaml:"bias,omitempty" json:"bias,omitempty"`
	// MaxSteps of 0 lets the walker pick its ceiling.
	MaxSteps int `yaml:"max_steps" json:"max_steps"`
	// Retries is how many extra attempts a non-converging walk gets.
	Retries *int   `yaml:"retries,omitempty" json:"retries,omitempty"`
	Start   *Coord `yaml:"start,omitempty" json:"start,omitempty"`
	End     *Coord `yaml:"end,omitempty" json:"end,omitempty"`
}

// Copies returns Count, or DefaultCount when it was omitted.
func (f Feature) Copies() int { return deref(f.Count, DefaultCount) }

// Attempts returns how many walks a copy may take: Retries+1, with
// DefaultRetries when Retries was omitted.
func (f Feature) Attempts() int { return deref(f.Retries, DefaultRetries) + 1 }

// WalkExponent returns Exponent, or walker.DefaultExponent when omitted.
func (f Feature) WalkExponent() float64 { return deref(f.Exponent, walker.DefaultExponent) }

// WalkPace returns StepPace, or walker.DefaultStepPace when omitted.
func (f Feature) WalkPace() float64 { return deref(f.StepPace, walker.DefaultStepPace) }

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func ptr[T any](v T) *T { return &v }

// Coord is a grid point written as a two-element YAML sequence [x, y].
type Coord gridgraph.Point

// UnmarshalYAML accepts exactly [x, y].
func (c *Coord) UnmarshalYAML(node *yaml.Node) error {
	var xy []int
	if err := node.Decode(&xy); err != nil {
		return fmt.Errorf("line %d: point must be [x, y]: %w", node.Line, err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point must be [x, y], got %d values", node.Line, len(xy))
	}
	*c = Coord{X: xy[0], Y: xy[1]}
	return nil
}

// MarshalYAML writes c back as a flow sequence.
func (c Coord) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range [2]int{c.X, c.Y} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}
	return n, nil
}

// Point converts c to a grid point.
func (c Coord) Point() gridgraph.Point { return gridgraph.Point(c) }

// Load reads and parses the plan at path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML plan, rejects unknown keys, applies defaults and
// validates the result.
func Parse(data []byte) (*Map, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Map
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	m.ApplyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ApplyDefaults fills omitted fields in place. A zero map size or an empty
// name or bias counts as omitted; explicit zeros in the pointer fields of
// Feature are kept for Validate to judge.
func (m *Map) ApplyDefaults() {
	if m.Width == 0 {
		m.Width = DefaultWidth
	}
	if m.Height == 0 {
		m.Height = DefaultHeight
	}
	for i := range m.Features {
		f := &m.Features[i]
		if f.Name == "" {
			f.Name = fmt.Sprintf("feature-%d", i+1)
		}
		if f.Count == nil {
			f.Count = ptr(DefaultCount)
		}
		if f.Exponent == nil {
			f.Exponent = ptr(walker.DefaultExponent)
		}
		if f.StepPace == nil {
			f.StepPace = ptr(walker.DefaultStepPace)
		}
		if f.Bias == "" {
			f.Bias = walker.BiasLinear
		}
		if f.Retries == nil {
			f.Retries = ptr(DefaultRetries)
		}
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
// Omitted feature fields are judged by their defaults.
func (m *Map) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: map size %dx%d must be positive", ErrInvalidConfig, m.Width, m.Height)
	}
	for v, glyph := range m.Legend {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("%w: legend glyph for %d must be one character, got %q", ErrInvalidConfig, v, glyph)
		}
	}
	for i, f := range m.Features {
		if err := m.validateFeature(f); err != nil {
			return fmt.Errorf("%w: feature %d (%s): %v", ErrInvalidConfig, i, f.Name, err)
		}
	}
	return nil
}

func (m *Map) validateFeature(f Feature) error {
	exp, pace := f.WalkExponent(), f.WalkPace()
	switch {
	case f.Copies() < 0:
		return fmt.Errorf("count %d is negative", f.Copies())
	case math.IsNaN(exp) || exp <= 0:
		return fmt.Errorf("exponent %v must be > 0", exp)
	case math.IsNaN(pace) || math.IsInf(pace, 0) || pace <= 0:
		return fmt.Errorf("step_pace %v must be finite and > 0", pace)
	case f.MaxSteps < 0:
		return fmt.Errorf("max_steps %d is negative", f.MaxSteps)
	case f.Attempts() < 1:
		return fmt.Errorf("retries %d is negative", f.Attempts()-1)
	case (f.Start == nil) != (f.End == nil):
		return errors.New("start and end must be given together")
	}
	if _, err := walker.BiasByName(f.Bias); err != nil {
		return err
	}
	for _, c := range []*Coord{f.Start, f.End} {
		if c == nil {
			continue
		}
		if c.X < 0 || c.X >= m.Width || c.Y < 0 || c.Y >= m.Height {
			return fmt.Errorf("point [%d, %d] outside %dx%d map", c.X, c.Y, m.Width, m.Height)
		}
	}
	return nil
}

// GridLegend builds the render legend: glyphs from Legend, labels from the
// feature names painting each value.
func (m *Map) GridLegend() gridgraph.Legend {
	out := make(gridgraph.Legend, len(m.Legend)+len(m.Features))
	for v, glyph := range m.Legend {
		r, _ := utf8.DecodeRuneInString(glyph)
		out[v] = gridgraph.Glyph{Rune: r}
	}
	for _, f := range m.Features {
		g := out[f.Fill]
		if g.Label == "" {
			g.Label = f.Name
		}
		out[f.Fill] = g
	}
	return out
}
