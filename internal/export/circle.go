package export

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/abhisek/geomotion/internal/geometry"
	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/theme"
)

const circleSteps = 180

// layer is one polyline of the circle view.
type layer struct {
	pts    plotter.XYs
	color  color.Color
	width  float64
	dashed bool
}

// CirclePlot draws the unit circle view for fn at angle in math
// orientation (y up, radius 1).
func CirclePlot(fn trig.Function, angle float64) (*plot.Plot, error) {
	cfg := geometry.DefaultCircleConfig()
	view := geometry.Circle(cfg, fn, angle)
	toXY := func(pt geometry.Point) plotter.XY {
		return plotter.XY{X: pt.X / cfg.Radius, Y: -pt.Y / cfg.Radius}
	}
	seg := func(s geometry.Segment) plotter.XYs {
		return plotter.XYs{toXY(s.From), toXY(s.To)}
	}

	p := newPlot(
		fmt.Sprintf("%s on the unit circle at %.0f°", fn, trig.DisplayDegrees(angle)),
		"x = cos θ",
		"y = sin θ",
	)
	ink := theme.FunctionColor(fn)

	outline := make(plotter.XYs, circleSteps+1)
	for i := range outline {
		a := 2 * math.Pi * float64(i) / circleSteps
		outline[i] = plotter.XY{X: math.Cos(a), Y: math.Sin(a)}
	}
	tri := plotter.XYs{toXY(view.Triangle[0]), toXY(view.Triangle[1]), toXY(view.Triangle[2])}

	layers := []layer{
		{pts: outline, color: theme.CircleColor, width: 1.5},
		{pts: tri, color: theme.GuideColor, width: 1, dashed: true},
		{pts: seg(geometry.Segment{To: view.Tip}), color: theme.GuideColor, width: 2},
	}
	for _, s := range []*geometry.Segment{view.Guide, view.TangentLine, view.TangentExtension} {
		if s != nil {
			layers = append(layers, layer{pts: seg(*s), color: theme.GuideColor, width: 1, dashed: true})
		}
	}
	for _, s := range []*geometry.Segment{view.Projection, view.TangentSegment} {
		if s != nil {
			layers = append(layers, layer{pts: seg(*s), color: ink, width: 3})
		}
	}

	for _, ly := range layers {
		var (
			l   *plotter.Line
			err error
		)
		if ly.dashed {
			l, err = dashedLine(ly.pts, ly.color)
		} else {
			l, err = solidLine(ly.pts, ly.color, vg.Points(ly.width))
		}
		if err != nil {
			return nil, fmt.Errorf("circle view: %w", err)
		}
		p.Add(l)
	}

	tip, err := marker(toXY(view.Tip), theme.GuideColor)
	if err != nil {
		return nil, err
	}
	p.Add(tip)
	for _, pt := range []*geometry.Point{view.Foot, view.TangentMarker} {
		if pt == nil {
			continue
		}
		m, err := marker(toXY(*pt), ink)
		if err != nil {
			return nil, err
		}
		p.Add(m)
	}

	// Add widens the axes to fit the data; clip back to the view extent.
	ext := cfg.Extent / cfg.Radius
	p.X.Min, p.X.Max = -ext, ext
	p.Y.Min, p.Y.Max = -ext, ext
	return p, nil
}
