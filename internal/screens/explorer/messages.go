package explorer

import "time"

// frameMsg drives the animation at frameRate.
type frameMsg time.Time

// explanationMsg delivers an explanation for the request with the given
// generation. Replies from an older generation are dropped.
type explanationMsg struct {
	gen  int
	text string
}
