package lexer

import (
	"unicode"
	"unicode/utf8"
)

// charCategory is the dispatch class of the character under the cursor.
// Classes are checked in declaration order by the tokenize loop.
type charCategory uint8

const (
	catOther charCategory = iota // anything else: Unknown Character
	catWhitespace
	catCommentOpen // #{
	catIdentStart
	catDigit
	catQuote
	catSymbol
	catEOF
)

var categoryLabels = [...]string{
	catOther:       "other",
	catWhitespace:  "whitespace",
	catCommentOpen: "comment",
	catIdentStart:  "ident",
	catDigit:       "digit",
	catQuote:       "quote",
	catSymbol:      "symbol",
	catEOF:         "eof",
}

func (c charCategory) String() string {
	return categoryLabels[c]
}

// ASCII character lookup tables for fast classification
var (
	asciiCategory [utf8.RuneSelf]charCategory
	isIdentPart   [utf8.RuneSelf]bool
)

// symbols lists every character routed to the operator scanner, including
// the ones that have no operator form and are reported as unrecognized.
const symbols = `()+-*/%&|!<>{}[],.:#=\`

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		ch := byte(i)

		// Identifiers start with a lowercase ASCII letter only
		if 'a' <= ch && ch <= 'z' {
			asciiCategory[i] = catIdentStart
		}
		if '0' <= ch && ch <= '9' {
			asciiCategory[i] = catDigit
		}

		isIdentPart[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') ||
			('0' <= ch && ch <= '9') || ch == '_'
	}

	for _, ch := range " \t\r\n" {
		asciiCategory[ch] = catWhitespace
	}
	for _, ch := range symbols {
		asciiCategory[ch] = catSymbol
	}
	asciiCategory['\''] = catQuote
}

// classify returns the dispatch class of ch given the character after it
func classify(ch, next rune) charCategory {
	switch {
	case ch == eof:
		return catEOF
	case ch >= utf8.RuneSelf || ch < 0:
		return catOther
	case ch == '#' && next == '{':
		return catCommentOpen
	}
	return asciiCategory[ch]
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// identPart accepts letters and digits of any script after the first character
func identPart(ch rune) bool {
	if ch < 0 {
		return false
	}
	if ch < utf8.RuneSelf {
		return isIdentPart[ch]
	}
	return ch != utf8.RuneError && (unicode.IsLetter(ch) || unicode.IsDigit(ch))
}
