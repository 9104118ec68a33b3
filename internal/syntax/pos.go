package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Pos represents a position in a shader source file, as reported by the
// front end that produced the tree. The zero value is an unknown position.
type Pos struct {
	filename string // source file name
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number
}

// NoPos is the unknown position.
var NoPos Pos

// NewPos creates a new Pos with the given filename, line, and column.
// Line and column numbers are 1-based.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// ParsePos parses the "filename:line:col" or "line:col" form produced by
// String. The filename may itself contain colons.
func ParsePos(s string) (Pos, error) {
	if s == "" {
		return NoPos, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return NoPos, errors.Errorf("malformed position %q", s)
	}
	line, err := strconv.ParseUint(parts[len(parts)-2], 10, 32)
	if err != nil {
		return NoPos, errors.Wrapf(err, "malformed line in position %q", s)
	}
	col, err := strconv.ParseUint(parts[len(parts)-1], 10, 32)
	if err != nil {
		return NoPos, errors.Wrapf(err, "malformed column in position %q", s)
	}
	filename := strings.Join(parts[:len(parts)-2], ":")
	return NewPos(filename, uint32(line), uint32(col)), nil
}

// String returns a string representation of the position in the format
// "filename:line:col" or "line:col" if filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is known (line > 0).
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}
