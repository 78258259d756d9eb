package export

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/abhisek/geomotion/internal/geometry"
	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/theme"
)

// WavePlot plots fn over [0, 4π] with a marker at angle. Tangent is
// clamped and split at its asymptotes.
func WavePlot(fn trig.Function, angle float64) (*plot.Plot, error) {
	cfg := geometry.DefaultWaveConfig()
	wrapped := trig.Wrap(angle)
	value := cfg.Display(fn, trig.Evaluate(fn, wrapped))

	p := newPlot(
		fmt.Sprintf("%s(θ) at θ = %.2f rad", fn, wrapped),
		"θ (rad)",
		fn.String(),
	)
	p.X.Tick.Marker = plot.ConstantTicks(piTicks())

	ink := theme.FunctionColor(fn)

	axis, err := solidLine(plotter.XYs{{X: 0, Y: 0}, {X: trig.Domain, Y: 0}}, theme.AxisColor, vg.Points(0.5))
	if err != nil {
		return nil, err
	}
	p.Add(axis)

	for _, seg := range geometry.Segments(geometry.SampleWave(cfg, fn)) {
		pts := make(plotter.XYs, len(seg))
		for i, s := range seg {
			pts[i] = plotter.XY{X: s.T, Y: s.Display}
		}
		l, err := solidLine(pts, ink, vg.Points(2))
		if err != nil {
			return nil, fmt.Errorf("wave segment: %w", err)
		}
		p.Add(l)
	}

	drop, err := dashedLine(plotter.XYs{{X: wrapped, Y: 0}, {X: wrapped, Y: value}}, theme.GuideColor)
	if err != nil {
		return nil, err
	}
	m, err := marker(plotter.XY{X: wrapped, Y: value}, ink)
	if err != nil {
		return nil, err
	}
	p.Add(drop, m)

	limit := 1.2
	if fn == trig.Tangent {
		limit = cfg.Clamp
	}
	p.X.Min, p.X.Max = 0, trig.Domain
	p.Y.Min, p.Y.Max = -limit, limit
	return p, nil
}

func piTicks() []plot.Tick {
	labels := []string{"0", "π", "2π", "3π", "4π"}
	ticks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i) * math.Pi, Label: l}
	}
	return ticks
}
