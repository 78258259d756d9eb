package trig

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunction(t *testing.T) {
	tests := []struct {
		in      string
		want    Function
		wantErr bool
	}{
		{"sin", Sine, false},
		{"COS", Cosine, false},
		{" Tan ", Tangent, false},
		{"tangent", Tangent, false},
		{"sec", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFunction(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPythagoreanIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		theta := (r.Float64()*2 - 1) * 100
		c := Evaluate(Cosine, theta)
		s := Evaluate(Sine, theta)
		assert.InDelta(t, 1.0, c*c+s*s, 1e-9, "theta=%v", theta)
	}
}

func TestEvaluate_QuarterTurn(t *testing.T) {
	assert.InDelta(t, 0.707, Evaluate(Sine, math.Pi/4), 1e-3)
	assert.InDelta(t, 0.707, Evaluate(Cosine, math.Pi/4), 1e-3)
	assert.InDelta(t, 1.0, Evaluate(Tangent, math.Pi/4), 1e-9)
}

func TestEvaluate_TangentIsUnclamped(t *testing.T) {
	v := Evaluate(Tangent, math.Pi/2-1e-6)
	assert.Greater(t, v, 1e5)
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "y", Sine.Symbol())
	assert.Equal(t, "x", Cosine.Symbol())
	assert.Equal(t, "slope", Tangent.Symbol())
}

func TestDisplayDegrees(t *testing.T) {
	assert.InDelta(t, 45, DisplayDegrees(math.Pi/4), 1e-9)
	assert.InDelta(t, 45, DisplayDegrees(2*math.Pi+math.Pi/4), 1e-9)
}

func TestReadout(t *testing.T) {
	assert.Equal(t, "0.707", Readout(Sine, InitialAngle))
	assert.Equal(t, "1.000", Readout(Cosine, 0))
}
