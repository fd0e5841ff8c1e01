package lexer

import "strings"

// escapes maps the character after a backslash to its decoded text.
// Braces must be escapable because string values are later used as
// interpolation templates.
var escapes = map[rune]string{
	'n':  "\n",
	't':  "\t",
	'\'': "'",
	'\\': "\\",
	'{':  "{",
	'}':  "}",
}

// scanString reads a single-quoted string and decodes its escapes.
// Strings may span lines.
func (l *Lexer) scanString() {
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("enter_scanString", "'")
	}
	start := l.cur.pos()
	l.cur.advance() // opening quote

	var sb strings.Builder
	for l.cur.ch != eof && l.cur.ch != '\'' {
		if l.cur.ch != '\\' {
			sb.WriteString(l.cur.current())
			l.cur.advance()
			continue
		}

		l.cur.advance() // backslash
		decoded, ok := escapes[l.cur.ch]
		if !ok {
			// Abort the string; scanning resumes after the offending character.
			pos := l.cur.pos()
			l.cur.advance()
			l.emitError(InvalidEscapeSequence, msgInvalidEscapeSequence, pos)
			return
		}
		sb.WriteString(decoded)
		l.cur.advance()
	}

	if l.cur.ch != '\'' {
		l.emitError(StringNotClosed, msgStringNotClosed, start)
		return
	}
	l.cur.advance() // closing quote

	l.emit(STRING, sb.String(), start)
}
