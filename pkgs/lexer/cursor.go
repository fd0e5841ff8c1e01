package lexer

import "unicode/utf8"

// eof is the end-of-input sentinel held in cursor.ch
const eof rune = -1

// cursor tracks the read position over an immutable source buffer.
//
// column counts the characters consumed on the current line and is reset to
// 0 immediately after a newline is consumed; reported columns are column+1.
type cursor struct {
	src    string
	offset int  // byte offset of ch
	line   int  // 1-based
	column int  // characters consumed on this line
	ch     rune // current character or eof
	width  int  // byte width of ch
}

func newCursor(src string) cursor {
	c := cursor{src: src, line: 1}
	c.decode()
	return c
}

// decode loads the character at offset
func (c *cursor) decode() {
	if c.offset >= len(c.src) {
		c.ch, c.width = eof, 0
		return
	}
	ch := rune(c.src[c.offset])
	if ch < utf8.RuneSelf {
		c.ch, c.width = ch, 1
		return
	}

	// Invalid UTF-8 decodes as RuneError with width 1
	c.ch, c.width = utf8.DecodeRuneInString(c.src[c.offset:])
}

// advance consumes the current character; it is a no-op at end of input
func (c *cursor) advance() {
	if c.ch == eof {
		return
	}
	if c.ch == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	c.offset += c.width
	c.decode()
}

// advanceN consumes n characters
func (c *cursor) advanceN(n int) {
	for i := 0; i < n; i++ {
		c.advance()
	}
}

// peek returns the character after the current one without consuming anything
func (c *cursor) peek() rune {
	next := c.offset + c.width
	if c.ch == eof || next >= len(c.src) {
		return eof
	}
	ch := rune(c.src[next])
	if ch < utf8.RuneSelf {
		return ch
	}
	ch, _ = utf8.DecodeRuneInString(c.src[next:])
	return ch
}

// rest returns the unconsumed source starting at the current character
func (c *cursor) rest() string {
	return c.src[c.offset:]
}

// current returns the raw bytes of the current character
func (c *cursor) current() string {
	return c.src[c.offset : c.offset+c.width]
}

func (c *cursor) pos() Position {
	return Position{Line: c.line, Column: c.column + 1, Offset: c.offset}
}
