package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/geomotion/internal/trig"
)

// maxAttempts bounds how many angles Next draws before giving up.
const maxAttempts = 3

// ValidationError describes why a question is malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid question: " + e.Message
}

// Validate checks that q has four non-empty distinct options and that the
// option at CorrectIndex is the formatted answer.
func Validate(q Question) error {
	seen := make(map[string]bool, OptionCount)
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return &ValidationError{Message: fmt.Sprintf("option %d is empty", i+1)}
		}
		if seen[o] {
			return &ValidationError{Message: fmt.Sprintf("duplicate option %q", o)}
		}
		seen[o] = true
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return &ValidationError{Message: fmt.Sprintf("correct index %d out of range", q.CorrectIndex)}
	}
	if q.Options[q.CorrectIndex] != q.Answer {
		return &ValidationError{
			Message: fmt.Sprintf("option %d is %q, want answer %q", q.CorrectIndex+1, q.Options[q.CorrectIndex], q.Answer),
		}
	}
	if want := Format(q.Value); q.Answer != want {
		return &ValidationError{Message: fmt.Sprintf("answer %q does not match value %s", q.Answer, want)}
	}
	return nil
}

// Next generates a question for fn and validates it, drawing a fresh angle
// when validation fails.
func (g *Generator) Next(fn trig.Function) (Question, error) {
	var err error
	for range maxAttempts {
		q := g.Generate(fn)
		if err = Validate(q); err == nil {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("generate %s question: %w", fn, err)
}
