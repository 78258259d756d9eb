// Package quiz builds multiple-choice "estimate the value" questions and
// tracks the answer state of the current question.
package quiz

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/abhisek/geomotion/internal/trig"
)

// OptionCount is the number of choices per question.
const OptionCount = 4

// Distractor tuning.
const (
	// ComplementThreshold is the magnitude below which the 1-v / -1-v
	// distractor is offered.
	ComplementThreshold = 0.9
	MinOffset           = 0.1
	MaxOffset           = 0.5
	// TangentBackfillScale widens random backfill for the unbounded function.
	TangentBackfillScale = 3
	// maxBackfill bounds random backfill draws before falling back to a
	// deterministic walk away from the correct value.
	maxBackfill = 1000
)

// Question is one generated challenge.
type Question struct {
	Function     trig.Function
	Angle        float64
	Value        float64
	Answer       string
	Options      [OptionCount]string
	CorrectIndex int
}

// Format renders a value at the fixed answer precision. Negative zero is
// printed as "0.00" so it cannot collide with its positive twin.
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// Generator creates questions from an injectable random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from rng. A nil rng uses a
// randomly seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a deterministic generator. A zero seed is
// treated as "no seed" and picks a random one.
func NewSeededGenerator(seed uint64) *Generator {
	if seed == 0 {
		return NewGenerator(nil)
	}
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate draws a uniform angle in [0, 4π) and builds a question for fn.
func (g *Generator) Generate(fn trig.Function) Question {
	return g.GenerateAt(fn, g.rng.Float64()*trig.Domain)
}

// GenerateAt builds a question for fn at a fixed angle.
func (g *Generator) GenerateAt(fn trig.Function, angle float64) Question {
	v := trig.Evaluate(fn, angle)
	answer := Format(v)

	opts := newOptionSet(answer)
	opts.add(Format(-v))
	if math.Abs(v) < ComplementThreshold {
		if v > 0 {
			opts.add(Format(1 - v))
		} else {
			opts.add(Format(-1 - v))
		}
	}
	opts.add(Format(v + g.offset()))
	opts.add(Format(v - g.offset()))

	scale := 1.0
	if fn == trig.Tangent {
		scale = TangentBackfillScale
	}
	for i := 0; opts.len() < OptionCount && i < maxBackfill; i++ {
		opts.add(Format((g.rng.Float64()*2 - 1) * scale))
	}
	for step := 1; opts.len() < OptionCount; step++ {
		opts.add(Format(v + float64(step)*0.01))
	}

	list := opts.first(OptionCount)
	g.rng.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })

	q := Question{Function: fn, Angle: angle, Value: v, Answer: answer}
	for i, o := range list {
		q.Options[i] = o
		if o == answer {
			q.CorrectIndex = i
		}
	}
	return q
}

func (g *Generator) offset() float64 {
	return MinOffset + g.rng.Float64()*(MaxOffset-MinOffset)
}

// optionSet keeps insertion order and rejects exact string duplicates.
type optionSet struct {
	order []string
	seen  map[string]struct{}
}

func newOptionSet(first string) *optionSet {
	s := &optionSet{seen: make(map[string]struct{}, OptionCount+2)}
	s.add(first)
	return s
}

func (s *optionSet) add(o string) {
	if _, ok := s.seen[o]; ok {
		return
	}
	s.seen[o] = struct{}{}
	s.order = append(s.order, o)
}

func (s *optionSet) len() int { return len(s.order) }

func (s *optionSet) first(n int) []string {
	out := make([]string, n)
	copy(out, s.order[:n])
	return out
}
