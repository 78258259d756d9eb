package render

import (
	"math"
	"strings"

	"github.com/abhisek/geomotion/internal/geometry"
	"github.com/abhisek/geomotion/internal/trig"
	"github.com/abhisek/geomotion/internal/ui/theme"
)

// circleOutlineSteps is the number of chords used for the unit circle.
const circleOutlineSteps = 96

// maxLineSpan bounds how far outside the canvas a line end may lie before
// it is clipped. Tangent extensions near the asymptote are very long.
const maxLineSpan = 4096

// DefaultPalette colors fn's projection, wave and marker with the
// function's ink.
func DefaultPalette(fn trig.Function) Palette {
	c := theme.FunctionColor(fn)
	return Palette{
		InkAxis:     theme.AxisColor,
		InkGuide:    theme.GuideColor,
		InkCircle:   theme.CircleColor,
		InkRadius:   theme.RadiusColor,
		InkFunction: c,
		InkMarker:   c,
	}
}

// viewport maps view coordinates onto canvas dots.
type viewport struct {
	minX, minY float64
	scaleX     float64
	scaleY     float64
	offX, offY float64
}

func (v viewport) project(p geometry.Point) (int, int) {
	x := v.offX + (p.X-v.minX)*v.scaleX
	y := v.offY + (p.Y-v.minY)*v.scaleY
	x = math.Max(-maxLineSpan, math.Min(maxLineSpan, x))
	y = math.Max(-maxLineSpan, math.Min(maxLineSpan, y))
	return int(math.Round(x)), int(math.Round(y))
}

func (v viewport) line(c *Canvas, s geometry.Segment, ink Ink) {
	x0, y0 := v.project(s.From)
	x1, y1 := v.project(s.To)
	c.DrawLine(x0, y0, x1, y1, ink)
}

func (v viewport) polyline(c *Canvas, pts []geometry.Point, ink Ink) {
	for i := 1; i < len(pts); i++ {
		v.line(c, geometry.Segment{From: pts[i-1], To: pts[i]}, ink)
	}
	if len(pts) == 1 {
		x, y := v.project(pts[0])
		c.Set(x, y, ink)
	}
}

func (v viewport) dot(c *Canvas, p geometry.Point, ink Ink) {
	x, y := v.project(p)
	c.Dot(x, y, ink)
}

// DrawCircle rasterizes a circle view. The square view area is fitted into
// the canvas and centered, so the circle stays round.
func DrawCircle(c *Canvas, cfg geometry.CircleConfig, view geometry.CircleView) {
	ext := cfg.Extent
	size := float64(min(c.Width(), c.Height()) - 1)
	scale := size / (2 * ext)
	vp := viewport{
		minX:   -ext,
		minY:   -ext,
		scaleX: scale,
		scaleY: scale,
		offX:   (float64(c.Width()-1) - size) / 2,
		offY:   (float64(c.Height()-1) - size) / 2,
	}

	vp.line(c, geometry.Segment{From: geometry.Point{X: -ext}, To: geometry.Point{X: ext}}, InkAxis)
	vp.line(c, geometry.Segment{From: geometry.Point{Y: -ext}, To: geometry.Point{Y: ext}}, InkAxis)

	outline := make([]geometry.Point, circleOutlineSteps+1)
	for i := range outline {
		a := 2 * math.Pi * float64(i) / circleOutlineSteps
		outline[i] = geometry.Point{X: view.Radius * math.Cos(a), Y: -view.Radius * math.Sin(a)}
	}
	vp.polyline(c, outline, InkCircle)
	vp.polyline(c, view.Arc, InkGuide)

	tri := view.Triangle
	vp.polyline(c, []geometry.Point{tri[0], tri[1], tri[2]}, InkGuide)

	if view.Guide != nil {
		vp.line(c, *view.Guide, InkGuide)
	}
	if view.TangentLine != nil {
		vp.line(c, *view.TangentLine, InkGuide)
	}
	if view.TangentExtension != nil {
		vp.line(c, *view.TangentExtension, InkGuide)
	}

	vp.line(c, geometry.Segment{To: view.Tip}, InkRadius)

	if view.Projection != nil {
		vp.line(c, *view.Projection, InkFunction)
	}
	if view.Foot != nil {
		vp.dot(c, *view.Foot, InkFunction)
	}
	if view.TangentSegment != nil {
		vp.line(c, *view.TangentSegment, InkFunction)
	}
	if view.TangentMarker != nil {
		vp.dot(c, *view.TangentMarker, InkMarker)
	}
	vp.dot(c, view.Tip, InkRadius)
}

// DrawWave rasterizes a wave view stretched over the whole canvas.
func DrawWave(c *Canvas, cfg geometry.WaveConfig, view geometry.WaveView) {
	vp := waveViewport(c, cfg)
	mid := cfg.MidY()

	vp.line(c, geometry.Segment{From: geometry.Point{Y: mid}, To: geometry.Point{X: cfg.Width, Y: mid}}, InkAxis)
	vp.line(c, geometry.Segment{From: geometry.Point{X: cfg.Padding}, To: geometry.Point{X: cfg.Padding, Y: cfg.Height}}, InkAxis)
	for _, t := range view.Ticks {
		x, y := vp.project(geometry.Point{X: t.X, Y: mid})
		c.DrawLine(x, y-1, x, y+1, InkAxis)
	}

	for _, path := range view.Paths {
		vp.polyline(c, path, InkFunction)
	}
	vp.line(c, view.Drop, InkGuide)
	vp.dot(c, view.Marker, InkMarker)
}

func waveViewport(c *Canvas, cfg geometry.WaveConfig) viewport {
	return viewport{
		scaleX: float64(c.Width()-1) / cfg.Width,
		scaleY: float64(c.Height()-1) / cfg.Height,
	}
}

// WaveAxisLabels returns a line of cols characters with the tick labels
// placed under their ticks.
func WaveAxisLabels(cfg geometry.WaveConfig, ticks []geometry.Tick, cols int) string {
	line := []rune(strings.Repeat(" ", max(cols, 0)))
	c := NewCanvas(cols, 1)
	vp := waveViewport(c, cfg)
	for _, t := range ticks {
		x, _ := vp.project(geometry.Point{X: t.X})
		label := []rune(t.Label)
		start := x/2 - len(label)/2
		for i, r := range label {
			if p := start + i; p >= 0 && p < len(line) {
				line[p] = r
			}
		}
	}
	return string(line)
}

// Circle renders fn's circle view at angle as colored text.
func Circle(fn trig.Function, angle float64, cols, rows int) string {
	cfg := geometry.DefaultCircleConfig()
	c := NewCanvas(cols, rows)
	DrawCircle(c, cfg, geometry.Circle(cfg, fn, angle))
	return c.Render(DefaultPalette(fn))
}

// Wave renders fn's wave view at angle as colored text, with the axis
// labels as an extra line.
func Wave(fn trig.Function, angle float64, cols, rows int) string {
	cfg := geometry.DefaultWaveConfig()
	view := geometry.Wave(cfg, fn, angle)
	c := NewCanvas(cols, rows)
	DrawWave(c, cfg, view)
	return c.Render(DefaultPalette(fn)) + "\n" + WaveAxisLabels(cfg, view.Ticks, cols)
}

// Plain renders both views without color, side by side.
func Plain(fn trig.Function, angle float64, cols, rows int) string {
	circleCfg := geometry.DefaultCircleConfig()
	waveCfg := geometry.DefaultWaveConfig()

	cc := NewCanvas(rows*2, rows)
	DrawCircle(cc, circleCfg, geometry.Circle(circleCfg, fn, angle))
	wc := NewCanvas(cols, rows)
	wv := geometry.Wave(waveCfg, fn, angle)
	DrawWave(wc, waveCfg, wv)

	left := strings.Split(cc.String(), "\n")
	right := strings.Split(wc.String(), "\n")
	var b strings.Builder
	for i := range left {
		b.WriteString(left[i])
		b.WriteString("  ")
		b.WriteString(right[i])
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", rows*2+2))
	b.WriteString(WaveAxisLabels(waveCfg, wv.Ticks, cols))
	return b.String()
}
