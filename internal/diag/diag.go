// Package diag implements the compiler's diagnostics side channel.
// Diagnostics never stop a compilation; they are counted and printed.
package diag

// ID is a unique diagnostic number.
type ID int

// Pos is any source position a diagnostic can be attached to.
type Pos interface {
	IsValid() bool
	String() string
}

// Diag is a diagnostic template: a numbered, printf-style message with an optional position.
type Diag struct {
	ID       ID       // a unique identifier, 0 if none.
	Severity Severity // the default severity used by Report.
	Pos      Pos      // the source position, if any.
	Message  string   // a format string for the message.
}

// At returns a copy of the diagnostic attached to the given position.
func (d *Diag) At(pos Pos) *Diag {
	c := *d
	c.Pos = pos
	return &c
}

func newWarning(id ID, msg string) *Diag {
	return &Diag{ID: id, Severity: Warning, Message: msg}
}

func newError(id ID, msg string) *Diag {
	return &Diag{ID: id, Severity: Error, Message: msg}
}
