package trig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Function is one of the three trigonometric functions the views can show.
type Function string

const (
	Sine    Function = "SIN"
	Cosine  Function = "COS"
	Tangent Function = "TAN"
)

// AllFunctions lists the functions in display order.
func AllFunctions() []Function {
	return []Function{Sine, Cosine, Tangent}
}

// ParseFunction accepts "sin", "cos" or "tan" in any case.
func ParseFunction(s string) (Function, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SIN", "SINE":
		return Sine, nil
	case "COS", "COSINE":
		return Cosine, nil
	case "TAN", "TANGENT":
		return Tangent, nil
	}
	return "", fmt.Errorf("unknown function %q: must be sin, cos or tan", s)
}

// String returns the upper-case identifier, e.g. "SIN".
func (f Function) String() string {
	return string(f)
}

// Lower returns the lower-case name used in formulas, e.g. "sin".
func (f Function) Lower() string {
	return strings.ToLower(string(f))
}

// Symbol is the label of the live readout: the circle coordinate the
// function corresponds to.
func (f Function) Symbol() string {
	switch f {
	case Sine:
		return "y"
	case Cosine:
		return "x"
	default:
		return "slope"
	}
}

// Evaluate returns the raw function value at angle. Tangent is unbounded
// near odd multiples of π/2; callers clamp for display only.
func Evaluate(f Function, angle float64) float64 {
	switch f {
	case Sine:
		return math.Sin(angle)
	case Cosine:
		return math.Cos(angle)
	case Tangent:
		return math.Tan(angle)
	}
	return 0
}

// Degrees converts radians to degrees.
func Degrees(angle float64) float64 {
	return angle * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DisplayDegrees reduces the angle to one turn and converts it to degrees,
// the form shown next to the slider and in quiz prompts.
func DisplayDegrees(angle float64) float64 {
	return Degrees(math.Mod(angle, 2*math.Pi))
}

// Readout formats the live value shown under the wave view.
func Readout(f Function, angle float64) string {
	return strconv.FormatFloat(Evaluate(f, angle), 'f', 3, 64)
}
