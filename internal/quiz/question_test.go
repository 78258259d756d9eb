package quiz

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geomotion/internal/trig"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.70710678, "0.71"},
		{-0.5, "-0.50"},
		{-0.001, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{1, "1.00"},
		{12.345, "12.35"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%v)", tt.in)
	}
}

func TestGenerate_ManyAngles(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(42, 1)))
	for _, fn := range trig.AllFunctions() {
		for i := 0; i < 10000; i++ {
			q := g.Generate(fn)
			require.NoError(t, Validate(q), "fn=%s angle=%v", fn, q.Angle)
			require.GreaterOrEqual(t, q.Angle, 0.0)
			require.Less(t, q.Angle, trig.Domain)
			require.Equal(t, Format(trig.Evaluate(fn, q.Angle)), q.Options[q.CorrectIndex])
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewSeededGenerator(7)
	b := NewSeededGenerator(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Generate(trig.Tangent), b.Generate(trig.Tangent))
	}
}

func TestGenerateAt_CollidingDistractors(t *testing.T) {
	// At these angles the sign flip of the value formats to the value itself.
	cases := []struct {
		fn    trig.Function
		angle float64
	}{
		{trig.Sine, 0},
		{trig.Sine, math.Pi},
		{trig.Cosine, math.Pi / 2},
		{trig.Tangent, 0},
		{trig.Tangent, 2 * math.Pi},
		{trig.Sine, 0.003},
	}
	g := NewGenerator(rand.New(rand.NewPCG(1, 1)))
	for _, c := range cases {
		q := g.GenerateAt(c.fn, c.angle)
		require.NoError(t, Validate(q), "fn=%s angle=%v", c.fn, c.angle)
		assert.Equal(t, "0.00", q.Answer)
	}
}

func TestGenerateAt_CandidateOrder(t *testing.T) {
	// 0.5 has every seeded distractor: sign flip, complement and both offsets.
	g := NewGenerator(rand.New(rand.NewPCG(3, 3)))
	q := g.GenerateAt(trig.Sine, math.Pi/6)

	assert.Equal(t, "0.50", q.Answer)
	assert.Contains(t, q.Options, "-0.50")
	require.NoError(t, Validate(q))
}

func TestGenerateAt_LargeTangent(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(9, 9)))
	q := g.GenerateAt(trig.Tangent, math.Pi/2-1e-4)
	require.NoError(t, Validate(q))
	assert.Greater(t, q.Value, 1000.0)
}

func TestValidate_Rejects(t *testing.T) {
	good := Question{
		Function:     trig.Sine,
		Value:        0.5,
		Answer:       "0.50",
		Options:      [OptionCount]string{"0.50", "-0.50", "0.80", "0.20"},
		CorrectIndex: 0,
	}
	require.NoError(t, Validate(good))

	dup := good
	dup.Options[3] = "0.80"
	assert.Error(t, Validate(dup))

	empty := good
	empty.Options[2] = " "
	assert.Error(t, Validate(empty))

	wrongIdx := good
	wrongIdx.CorrectIndex = 1
	assert.Error(t, Validate(wrongIdx))

	outOfRange := good
	outOfRange.CorrectIndex = 4
	var ve *ValidationError
	assert.ErrorAs(t, Validate(outOfRange), &ve)
}

func TestNext_ValidatesAndKeepsSequence(t *testing.T) {
	next := NewSeededGenerator(9)
	plain := NewSeededGenerator(9)
	for _, fn := range trig.AllFunctions() {
		for range 20 {
			q, err := next.Next(fn)
			require.NoError(t, err)
			require.NoError(t, Validate(q))
			assert.Equal(t, plain.Generate(fn), q)
		}
	}
}
