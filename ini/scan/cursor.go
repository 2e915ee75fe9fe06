// Package scan implements the character cursor the INI parser walks.
//
// A Cursor is a small value. Every operation returns the advanced cursor
// instead of mutating shared state, so scanner steps can be tested in
// isolation and the parser owns the only live copy.
package scan

import (
	"errors"

	"github.com/joshuapare/inikit/ini/alloc"
	"github.com/joshuapare/inikit/internal/format"
)

// ErrUnterminatedComment indicates input ended before the newline closing a comment.
var ErrUnterminatedComment = errors.New("scan: comment not terminated by newline")

// Cursor is a forward-only position in an input buffer.
//
// pos is the index of the current character and never decreases; readPos is
// the next index to load and always equals pos+1.
type Cursor struct {
	input   []byte
	pos     int
	readPos int
	ch      byte
}

// New returns a cursor positioned on the first character of input.
func New(input []byte) Cursor {
	return Cursor{input: input}.Advance()
}

// Advance moves to the next character. Past the end the current character
// is the format.EOF sentinel.
func (c Cursor) Advance() Cursor {
	if c.readPos >= len(c.input) {
		c.ch = format.EOF
	} else {
		c.ch = c.input[c.readPos]
	}
	c.pos = c.readPos
	c.readPos++
	return c
}

// Char returns the current character.
func (c Cursor) Char() byte { return c.ch }

// Pos returns the byte offset of the current character.
func (c Cursor) Pos() int { return c.pos }

// Len returns the input length.
func (c Cursor) Len() int { return len(c.input) }

// AtEOF reports whether the cursor ran past the end of the input.
// A NUL byte inside the input is an ordinary (illegal) character, not EOF.
func (c Cursor) AtEOF() bool { return c.pos >= len(c.input) }

// Peek returns the character after the current one without moving.
func (c Cursor) Peek() byte {
	if c.readPos >= len(c.input) {
		return format.EOF
	}
	return c.input[c.readPos]
}

// ReadLiteral consumes identifier characters starting at the current
// position and returns the consumed bytes. The slice aliases the input.
// A zero-length literal is returned when the current character is not an
// identifier character; callers decide whether that is an error.
func (c Cursor) ReadLiteral() (Cursor, []byte) {
	start := c.pos
	for !c.AtEOF() && IsIdentChar(c.ch) {
		c = c.Advance()
	}
	end := min(c.pos, len(c.input))
	return c, c.input[start:end]
}

// ReadLiteralCopy is ReadLiteral that duplicates the literal into a, so it
// outlives the input buffer.
func (c Cursor) ReadLiteralCopy(a *alloc.Arena) (Cursor, alloc.Span, error) {
	next, lit := c.ReadLiteral()
	sp, err := a.CopyBytes(lit)
	if err != nil {
		return c, alloc.Span{}, err
	}
	return next, sp, nil
}

// SkipWhitespace consumes spaces, tabs, carriage returns and newlines.
func (c Cursor) SkipWhitespace() Cursor {
	for !c.AtEOF() && IsWhitespace(c.ch) {
		c = c.Advance()
	}
	return c
}

// SkipToEndOfLine consumes characters up to, not including, the next newline.
// Reaching the end of input first is ErrUnterminatedComment: the only caller
// is the comment branch, and a comment must be newline-terminated.
func (c Cursor) SkipToEndOfLine() (Cursor, error) {
	for c.ch != format.LineFeed {
		if c.AtEOF() {
			return c, ErrUnterminatedComment
		}
		c = c.Advance()
	}
	return c, nil
}
