package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geomotion/internal/trig"
)

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func TestCircle_TipFlipsY(t *testing.T) {
	v := Circle(DefaultCircleConfig(), trig.Sine, math.Pi/2)
	assert.InDelta(t, 0, v.Tip.X, 1e-9)
	assert.InDelta(t, -100, v.Tip.Y, 1e-9)
}

func TestCircle_TriangleLegsArePythagorean(t *testing.T) {
	cfg := DefaultCircleConfig()
	for _, a := range []float64{0.3, 1.2, 2.5, 4.0, 5.9, 9.1} {
		v := Circle(cfg, trig.Cosine, a)
		legX := v.Triangle[1].X - v.Triangle[0].X
		legY := v.Triangle[2].Y - v.Triangle[1].Y
		assert.InDelta(t, cfg.Radius*cfg.Radius, legX*legX+legY*legY, 1e-6)
	}
}

func TestCircle_Projections(t *testing.T) {
	cfg := DefaultCircleConfig()
	a := 1.0

	sin := Circle(cfg, trig.Sine, a)
	require.NotNil(t, sin.Foot)
	assert.Equal(t, 0.0, sin.Foot.X)
	assert.InDelta(t, -100*math.Sin(a), sin.Foot.Y, 1e-9)
	assert.Nil(t, sin.TangentLine)

	cos := Circle(cfg, trig.Cosine, a)
	require.NotNil(t, cos.Foot)
	assert.InDelta(t, 100*math.Cos(a), cos.Foot.X, 1e-9)
	assert.Equal(t, 0.0, cos.Foot.Y)
	require.NotNil(t, cos.Guide)
	assert.Equal(t, 0.0, cos.Guide.To.X)
}

func TestCircle_TangentMarker(t *testing.T) {
	cfg := DefaultCircleConfig()
	v := Circle(cfg, trig.Tangent, math.Pi/4)
	require.NotNil(t, v.TangentLine)
	require.NotNil(t, v.TangentMarker)
	assert.InDelta(t, 100, v.TangentMarker.X, 1e-9)
	assert.InDelta(t, -100, v.TangentMarker.Y, 1e-9)
	require.NotNil(t, v.TangentExtension)
	assert.Equal(t, Point{}, v.TangentExtension.From)
	assert.Nil(t, v.Projection)
}

func TestCircle_TangentAtAsymptoteOmitsMarker(t *testing.T) {
	cfg := DefaultCircleConfig()
	for _, a := range []float64{math.Pi / 2, 3 * math.Pi / 2, 5 * math.Pi / 2, math.Pi/2 + 0.005} {
		v := Circle(cfg, trig.Tangent, a)
		assert.NotNil(t, v.TangentLine, "angle=%v", a)
		assert.Nil(t, v.TangentMarker, "angle=%v", a)
		assert.Nil(t, v.TangentExtension, "angle=%v", a)
		assert.Nil(t, v.TangentSegment, "angle=%v", a)
		assert.True(t, finite(v.Tip))
		for _, p := range v.Arc {
			assert.True(t, finite(p))
		}
	}
}

func TestCircle_ArcEndsAtAngleModTurn(t *testing.T) {
	cfg := DefaultCircleConfig()
	a := 2*math.Pi + 1
	v := Circle(cfg, trig.Sine, a)
	require.Len(t, v.Arc, cfg.ArcSteps+1)
	assert.Equal(t, Point{X: cfg.ArcRadius, Y: 0}, v.Arc[0])
	last := v.Arc[len(v.Arc)-1]
	assert.InDelta(t, cfg.ArcRadius*math.Cos(1), last.X, 1e-9)
	assert.InDelta(t, -cfg.ArcRadius*math.Sin(1), last.Y, 1e-9)
}

func TestWave_QuarterTurnSineMarker(t *testing.T) {
	cfg := DefaultWaveConfig()
	v := Wave(cfg, trig.Sine, math.Pi/4)

	assert.InDelta(t, 0.707, v.Value, 1e-3)
	assert.InDelta(t, cfg.Padding+math.Pi/4*cfg.ScaleX(), v.Marker.X, 1e-9)
	assert.InDelta(t, cfg.MidY()-v.Value*cfg.ScaleY(), v.Marker.Y, 1e-9)
	require.Len(t, v.Paths, 1)
	assert.Len(t, v.Paths[0], cfg.Samples)
}

func TestWave_Scales(t *testing.T) {
	cfg := DefaultWaveConfig()
	assert.InDelta(t, 260/(4*math.Pi), cfg.ScaleX(), 1e-12)
	assert.InDelta(t, 64, cfg.ScaleY(), 1e-12)
	assert.Equal(t, 100.0, cfg.MidY())
}

func TestWave_MarkerUsesWrappedAngle(t *testing.T) {
	cfg := DefaultWaveConfig()
	a := trig.Domain + 1
	v := Wave(cfg, trig.Cosine, a)
	assert.InDelta(t, cfg.Padding+1*cfg.ScaleX(), v.Marker.X, 1e-9)
}

func TestWave_TangentClampsAndBreaks(t *testing.T) {
	cfg := DefaultWaveConfig()
	samples := SampleWave(cfg, trig.Tangent)
	require.Len(t, samples, cfg.Samples)

	breaks := 0
	for _, s := range samples {
		assert.LessOrEqual(t, math.Abs(s.Display), cfg.Clamp)
		if s.Break {
			breaks++
		}
		if math.Abs(s.Value) >= cfg.Clamp {
			assert.True(t, s.Break, "t=%v", s.T)
		}
	}
	assert.Greater(t, breaks, 1)

	v := Wave(cfg, trig.Tangent, math.Pi/2)
	assert.Greater(t, len(v.Paths), 1)
	assert.Equal(t, cfg.Clamp, v.MarkerValue)
	assert.True(t, finite(v.Marker))
	for _, path := range v.Paths {
		for _, p := range path {
			assert.True(t, finite(p))
			assert.GreaterOrEqual(t, p.Y, cfg.MidY()-cfg.Clamp*cfg.ScaleY()-1e-9)
			assert.LessOrEqual(t, p.Y, cfg.MidY()+cfg.Clamp*cfg.ScaleY()+1e-9)
		}
	}
}

func TestWave_SineNeverBreaks(t *testing.T) {
	segs := Segments(SampleWave(DefaultWaveConfig(), trig.Sine))
	assert.Len(t, segs, 1)
}

func TestAxisTicks(t *testing.T) {
	cfg := DefaultWaveConfig()
	ticks := AxisTicks(cfg)
	require.Len(t, ticks, 3)
	assert.Equal(t, "2π", ticks[1].Label)
	assert.InDelta(t, cfg.Width/2, ticks[1].X, 1e-9)
}
