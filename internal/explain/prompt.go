package explain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/geomotion/internal/trig"
)

const systemPrompt = `You are a friendly, world-class math tutor. The user is watching an interactive animation of a radius turning on the unit circle next to the graph of a trigonometric function.`

// Input is the visual state being explained.
type Input struct {
	Function trig.Function
	Angle    float64
}

func (in Input) degrees() int {
	return int(math.Round(trig.Degrees(in.Angle)))
}

func (in Input) value() string {
	return strconv.FormatFloat(trig.Evaluate(in.Function, in.Angle), 'f', 2, 64)
}

func buildUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString("Current state:\n")
	fmt.Fprintf(&b, "- Function: %s\n", in.Function)
	fmt.Fprintf(&b, "- Angle: %d degrees (%.2f radians)\n", in.degrees(), in.Angle)
	fmt.Fprintf(&b, "- Value: %s\n", in.value())

	b.WriteString(`
Instructions:
1. In English, give a short, insightful explanation (2-3 sentences at most) of what the function is doing visually at this exact angle.
2. Relate the unit circle coordinates to the value on the wave graph.
3. Do not use LaTeX. Plain text or simple Markdown only.`)

	return b.String()
}
