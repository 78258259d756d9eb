package geometry

import (
	"math"

	"github.com/abhisek/geomotion/internal/trig"
)

// WaveConfig sizes the wave view. The x axis spans one trig.Domain.
type WaveConfig struct {
	Width    float64
	Height   float64
	Padding  float64
	Samples  int
	Clamp    float64
	Headroom float64
}

// DefaultWaveConfig returns the standard wave view dimensions.
func DefaultWaveConfig() WaveConfig {
	return WaveConfig{
		Width:    300,
		Height:   200,
		Padding:  20,
		Samples:  101,
		Clamp:    3,
		Headroom: 0.8,
	}
}

// ScaleX is view units per radian.
func (c WaveConfig) ScaleX() float64 {
	return (c.Width - 2*c.Padding) / trig.Domain
}

// ScaleY is view units per unit of function value.
func (c WaveConfig) ScaleY() float64 {
	return (c.Height - 2*c.Padding) / 2 * c.Headroom
}

// MidY is the y coordinate of the zero line.
func (c WaveConfig) MidY() float64 {
	return c.Height / 2
}

// Display clamps a value for plotting. Only tangent is clamped.
func (c WaveConfig) Display(fn trig.Function, v float64) float64 {
	if fn != trig.Tangent {
		return v
	}
	return math.Max(-c.Clamp, math.Min(c.Clamp, v))
}

// Sample is one evaluation of the function along the wave.
type Sample struct {
	T       float64 // radians
	Value   float64 // raw evaluator output
	Display float64 // clamped for plotting
	Break   bool    // starts a new disconnected segment
}

// SampleWave evaluates fn at cfg.Samples evenly spaced points over [0, 4π].
// For tangent, a sample whose raw magnitude reaches the clamp breaks the path.
func SampleWave(cfg WaveConfig, fn trig.Function) []Sample {
	n := cfg.Samples
	if n < 2 {
		n = 2
	}
	out := make([]Sample, n)
	for i := range out {
		t := float64(i) / float64(n-1) * trig.Domain
		v := trig.Evaluate(fn, t)
		out[i] = Sample{
			T:       t,
			Value:   v,
			Display: cfg.Display(fn, v),
			Break:   i == 0 || (fn == trig.Tangent && math.Abs(v) >= cfg.Clamp),
		}
	}
	return out
}

// Segments splits samples into the connected runs of the path.
func Segments(samples []Sample) [][]Sample {
	var out [][]Sample
	for _, s := range samples {
		if s.Break || len(out) == 0 {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], s)
	}
	return out
}

// Tick is a labelled position on the x axis.
type Tick struct {
	Label string
	X     float64
}

// WaveView is everything needed to draw the wave plot for one frame.
type WaveView struct {
	// Paths holds the curve as disconnected polylines in view space.
	Paths  [][]Point
	Marker Point
	// Drop runs from the marker straight down (or up) to the zero line.
	Drop  Segment
	Ticks []Tick
	// Value is the raw function value at the angle; MarkerValue is the
	// clamped value the marker is drawn at.
	Value       float64
	MarkerValue float64
}

// Wave computes the wave view for angle under fn.
func Wave(cfg WaveConfig, fn trig.Function, angle float64) WaveView {
	sx, sy, mid := cfg.ScaleX(), cfg.ScaleY(), cfg.MidY()
	toView := func(t, v float64) Point {
		return Point{X: cfg.Padding + t*sx, Y: mid - v*sy}
	}

	var paths [][]Point
	for _, seg := range Segments(SampleWave(cfg, fn)) {
		path := make([]Point, len(seg))
		for i, s := range seg {
			path[i] = toView(s.T, s.Display)
		}
		paths = append(paths, path)
	}

	value := trig.Evaluate(fn, angle)
	display := cfg.Display(fn, value)
	marker := toView(trig.Wrap(angle), display)

	return WaveView{
		Paths:       paths,
		Marker:      marker,
		Drop:        Segment{From: marker, To: Point{X: marker.X, Y: mid}},
		Ticks:       AxisTicks(cfg),
		Value:       value,
		MarkerValue: display,
	}
}

// AxisTicks returns the π, 2π and 3π labels on the zero line.
func AxisTicks(cfg WaveConfig) []Tick {
	sx := cfg.ScaleX()
	return []Tick{
		{Label: "π", X: cfg.Padding + math.Pi*sx},
		{Label: "2π", X: cfg.Padding + 2*math.Pi*sx},
		{Label: "3π", X: cfg.Padding + 3*math.Pi*sx},
	}
}
