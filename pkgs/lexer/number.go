package lexer

import (
	"strconv"
	"strings"
)

// scanNumber reads an integer or a float with a single decimal point.
//
// A '.' followed by another '.' ends the literal without consuming either
// dot, so 5...10 lexes as 5, ..., 10 instead of a malformed float.
func (l *Lexer) scanNumber() {
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("enter_scanNumber", l.cur.current())
	}
	start := l.cur.pos()
	decimals := 0

	for isDigit(l.cur.ch) || l.cur.ch == '.' {
		if l.cur.ch == '.' {
			if l.cur.peek() == '.' {
				break
			}
			if decimals == 1 {
				l.emitError(TooManyDecimals, msgTooManyDecimals, l.cur.pos())
				return
			}
			decimals++
		}
		l.cur.advance()
	}

	l.emitNumber(l.source[start.Offset:l.cur.offset], decimals == 1, start)
}

func (l *Lexer) emitNumber(lexeme string, isFloat bool, pos Position) {
	tok := Token{Type: NUMBER, Text: lexeme, Position: pos}

	if isFloat {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			l.emitError(NumberOutOfRange, msgNumberOutOfRange, pos)
			return
		}
		tok.Number = Number{Float: f, IsFloat: true}
	} else {
		n, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			l.emitError(NumberOutOfRange, msgNumberOutOfRange, pos)
			return
		}
		tok.Number = Number{Int: n}
	}

	l.tokens = append(l.tokens, tok)
}

// scanRange handles a run of dots. Exactly three produce the range operator
// followed by its end value; the end defaults to 0 when no integer follows.
// Any other count is a single ERROR naming the run that was found.
func (l *Lexer) scanRange() {
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("enter_scanRange", l.cur.current())
	}
	start := l.cur.pos()

	dots := 0
	for l.cur.ch == '.' {
		dots++
		l.cur.advance()
	}

	if dots != 3 {
		l.emitError(InvalidRangeOperator, invalidRangeMessage(strings.Repeat(".", dots)), start)
		return
	}
	l.emit(OPERATOR, "...", start)

	l.skipWhitespace()
	if !isDigit(l.cur.ch) {
		// The implied end has no lexeme; it sits right after the operator.
		pos := Position{Line: start.Line, Column: start.Column + 3, Offset: start.Offset + 3}
		l.tokens = append(l.tokens, Token{Type: NUMBER, Position: pos})
		return
	}

	end := l.cur.pos()
	for isDigit(l.cur.ch) {
		l.cur.advance()
	}
	l.emitNumber(l.source[end.Offset:l.cur.offset], false, end)
}
