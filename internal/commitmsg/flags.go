package commitmsg

// Flags are the editor's toggles. Sign, Spellcheck and AutoWrap are backed
// by configuration; Amend and NoVerify only live for the session.
type Flags struct {
	Amend      bool
	Sign       bool
	NoVerify   bool
	Spellcheck bool
	AutoWrap   bool
}

// TakeNoVerify returns NoVerify and turns it off. Bypassing hooks applies to
// one commit only.
func (f *Flags) TakeNoVerify() bool {
	v := f.NoVerify
	f.NoVerify = false
	return v
}

// Session holds single-use commit options.
type Session struct {
	date string
}

// SetDate arms a date override for the next commit. An empty date disarms it.
func (s *Session) SetDate(date string) { s.date = date }

func (s *Session) HasDate() bool { return s.date != "" }

// PeekDate returns the armed date without consuming it.
func (s *Session) PeekDate() string { return s.date }

// TakeDate returns the armed date, or "" when none is set, and disarms it.
func (s *Session) TakeDate() string {
	d := s.date
	s.date = ""
	return d
}
