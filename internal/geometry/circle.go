// Package geometry maps an angle and a trig function onto the coordinates
// of the two coupled views: the unit circle and the wave plot.
//
// Both views use screen coordinates: y grows downward, so mathematical y
// values are negated.
package geometry

import (
	"math"

	"github.com/abhisek/geomotion/internal/trig"
)

// Point is a 2D coordinate in view space.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// CircleConfig sizes the circle view. The view is centered on the origin
// and spans [-Extent, Extent] on both axes.
type CircleConfig struct {
	Radius         float64
	Extent         float64
	ArcRadius      float64
	ArcSteps       int
	TangentEpsilon float64
}

// DefaultCircleConfig returns the standard circle view dimensions.
func DefaultCircleConfig() CircleConfig {
	return CircleConfig{
		Radius:         100,
		Extent:         140,
		ArcRadius:      30,
		ArcSteps:       24,
		TangentEpsilon: 0.01,
	}
}

// CircleView is everything needed to draw the unit circle for one frame.
type CircleView struct {
	Radius float64
	Tip    Point

	// Triangle is origin -> (x,0) -> tip. Its legs are the cosine and
	// sine projections.
	Triangle [3]Point

	// SIN and COS only: the highlighted projection, the faint guide to the
	// other axis, and the dot where the projection meets its axis.
	Projection *Segment
	Guide      *Segment
	Foot       *Point

	// TAN only. TangentLine is always set in tangent mode. The other three
	// are nil when cos θ is too close to zero for the intersection to exist.
	TangentLine      *Segment
	TangentExtension *Segment
	TangentSegment   *Segment
	TangentMarker    *Point

	// Arc traces the angle from 0 to θ mod 2π.
	Arc []Point
}

// Circle computes the circle view for angle under fn.
func Circle(cfg CircleConfig, fn trig.Function, angle float64) CircleView {
	r := cfg.Radius
	cos, sin := math.Cos(angle), math.Sin(angle)
	tip := Point{X: r * cos, Y: -r * sin}

	v := CircleView{
		Radius:   r,
		Tip:      tip,
		Triangle: [3]Point{{0, 0}, {tip.X, 0}, tip},
		Arc:      arc(cfg, angle),
	}

	switch fn {
	case trig.Sine:
		foot := Point{X: 0, Y: tip.Y}
		v.Projection = &Segment{From: tip, To: foot}
		v.Guide = &Segment{From: tip, To: Point{X: tip.X, Y: 0}}
		v.Foot = &foot
	case trig.Cosine:
		foot := Point{X: tip.X, Y: 0}
		v.Projection = &Segment{From: tip, To: foot}
		v.Guide = &Segment{From: tip, To: Point{X: 0, Y: tip.Y}}
		v.Foot = &foot
	case trig.Tangent:
		v.TangentLine = &Segment{From: Point{X: r, Y: -2 * r}, To: Point{X: r, Y: 2 * r}}
		if math.Abs(cos) > cfg.TangentEpsilon {
			hit := Point{X: r, Y: -r * sin / cos}
			v.TangentExtension = &Segment{From: Point{}, To: hit}
			v.TangentSegment = &Segment{From: Point{X: r, Y: 0}, To: hit}
			v.TangentMarker = &hit
		}
	}
	return v
}

func arc(cfg CircleConfig, angle float64) []Point {
	steps := cfg.ArcSteps
	if steps < 1 {
		steps = 1
	}
	end := math.Mod(angle, 2*math.Pi)
	if end < 0 {
		end += 2 * math.Pi
	}
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := end * float64(i) / float64(steps)
		pts = append(pts, Point{X: cfg.ArcRadius * math.Cos(a), Y: -cfg.ArcRadius * math.Sin(a)})
	}
	return pts
}
