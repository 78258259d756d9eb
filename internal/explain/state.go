package explain

// State is the explanation shown next to the views.
type State struct {
	Text    string
	Pending bool
}

// Begin marks a request in flight. It returns false if one already is.
func (s *State) Begin() bool {
	if s.Pending {
		return false
	}
	s.Pending = true
	s.Text = ""
	return true
}

// Complete stores the reply and clears Pending.
func (s *State) Complete(text string) {
	s.Text = text
	s.Pending = false
}

// Clear drops any text and pending request.
func (s *State) Clear() {
	*s = State{}
}

// Visible reports whether there is anything to show.
func (s State) Visible() bool {
	return s.Pending || s.Text != ""
}
