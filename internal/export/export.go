// Package export draws the circle and wave views with gonum/plot and
// writes them to image files.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/abhisek/geomotion/internal/trig"
)

// View selects which plot to export.
type View string

const (
	ViewWave   View = "wave"
	ViewCircle View = "circle"
)

// ErrUnsupportedFormat is returned for output files gonum/plot cannot write.
var ErrUnsupportedFormat = errors.New("unsupported output format")

var formats = map[string]bool{
	".svg": true, ".png": true, ".pdf": true, ".eps": true,
	".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
}

// ParseView parses "wave" or "circle".
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewWave:
		return ViewWave, nil
	case ViewCircle:
		return ViewCircle, nil
	}
	return "", fmt.Errorf("unknown view %q (want wave or circle)", s)
}

// Options describes one export.
type Options struct {
	Function trig.Function
	Angle    float64
	View     View
	// Size is the width in inches. Circle plots are square; wave plots
	// use a 3:2 aspect.
	Size float64
}

// DefaultSize is the plot width in inches.
const DefaultSize = 6

// Plot builds the plot for opts without writing it.
func Plot(opts Options) (*plot.Plot, error) {
	switch opts.View {
	case ViewCircle:
		return CirclePlot(opts.Function, opts.Angle)
	case ViewWave, "":
		return WavePlot(opts.Function, opts.Angle)
	}
	return nil, fmt.Errorf("unknown view %q", opts.View)
}

// Save writes the plot for opts to path. The format follows the file
// extension.
func Save(opts Options, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !formats[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	p, err := Plot(opts)
	if err != nil {
		return err
	}

	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	w := vg.Length(size) * vg.Inch
	h := w
	if opts.View != ViewCircle {
		h = w * 2 / 3
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save %s plot: %w", opts.View, err)
	}
	return nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func solidLine(pts plotter.XYs, c color.Color, width vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	return l, nil
}

func dashedLine(pts plotter.XYs, c color.Color) (*plotter.Line, error) {
	l, err := solidLine(pts, c, vg.Points(1))
	if err != nil {
		return nil, err
	}
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return l, nil
}

func marker(at plotter.XY, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{at})
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(4)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}
