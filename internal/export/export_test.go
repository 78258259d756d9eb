package export

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geomotion/internal/trig"
)

func TestParseView(t *testing.T) {
	v, err := ParseView(" Circle ")
	require.NoError(t, err)
	assert.Equal(t, ViewCircle, v)

	v, err = ParseView("wave")
	require.NoError(t, err)
	assert.Equal(t, ViewWave, v)

	_, err = ParseView("polar")
	assert.Error(t, err)
}

func TestSave_Formats(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file string
		opts Options
	}{
		{"sine.svg", Options{Function: trig.Sine, Angle: math.Pi / 4, View: ViewWave}},
		{"cos.png", Options{Function: trig.Cosine, Angle: 2, View: ViewCircle, Size: 3}},
		{"tan.pdf", Options{Function: trig.Tangent, Angle: 1, View: ViewWave, Size: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, Save(tt.opts, path))
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestSave_SVGContainsTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.svg")
	require.NoError(t, Save(Options{Function: trig.Sine, Angle: math.Pi / 4}, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "<svg"))
}

func TestSave_UnsupportedFormat(t *testing.T) {
	err := Save(Options{Function: trig.Sine}, filepath.Join(t.TempDir(), "plot.bmp"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPlot_UnknownView(t *testing.T) {
	_, err := Plot(Options{View: "polar"})
	assert.Error(t, err)
}

func TestCirclePlot_TangentAsymptote(t *testing.T) {
	for _, a := range []float64{math.Pi / 2, 3 * math.Pi / 2} {
		p, err := CirclePlot(trig.Tangent, a)
		require.NoError(t, err)
		assert.InDelta(t, 1.4, p.X.Max, 1e-9)

		path := filepath.Join(t.TempDir(), "tan.svg")
		require.NoError(t, Save(Options{Function: trig.Tangent, Angle: a, View: ViewCircle}, path))
	}
}

func TestWavePlot_Ranges(t *testing.T) {
	p, err := WavePlot(trig.Tangent, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X.Min)
	assert.InDelta(t, trig.Domain, p.X.Max, 1e-12)
	assert.Equal(t, 3.0, p.Y.Max)

	p, err = WavePlot(trig.Sine, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.2, p.Y.Max)
	assert.Contains(t, p.Title.Text, "SIN(θ)")
}
