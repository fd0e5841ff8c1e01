package lexer

import (
	"fmt"
	"sort"
	"strconv"
)

// TokenType represents the lexical category of a token in Trim
//
// The set is closed: the parser switches over these seven values and
// treats anything else as a programming error.
type TokenType int

const (
	NUMBER   TokenType = iota // 8080, 3.14
	STRING                    // 'decoded text'
	NAME                      // identifiers
	KEYWORD                   // fn, class, if, ...
	OPERATOR                  // operators and punctuation, including ...
	EOF                       // end of input, always last
	ERROR                     // lexical error, Text holds the message
)

// Pre-computed token name lookup for fast debugging
var tokenNames = [...]string{
	NUMBER:   "NUMBER",
	STRING:   "STRING",
	NAME:     "NAME",
	KEYWORD:  "KEYWORD",
	OPERATOR: "OPERATOR",
	EOF:      "EOF",
	ERROR:    "ERROR",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) && int(t) >= 0 {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// ParseTokenType maps a name produced by String back to its TokenType
func ParseTokenType(name string) (TokenType, bool) {
	for i, n := range tokenNames {
		if n == name {
			return TokenType(i), true
		}
	}
	return 0, false
}

// ErrorCategory classifies an ERROR token
type ErrorCategory int

const (
	NoError ErrorCategory = iota
	UnclosedComment
	TooManyDecimals
	InvalidRangeOperator
	InvalidEscapeSequence
	StringNotClosed
	BitwiseUnsupported
	OperatorNotRecognized
	UnknownCharacter
	NumberOutOfRange
)

var categoryNames = [...]string{
	NoError:               "NoError",
	UnclosedComment:       "UnclosedComment",
	TooManyDecimals:       "TooManyDecimals",
	InvalidRangeOperator:  "InvalidRangeOperator",
	InvalidEscapeSequence: "InvalidEscapeSequence",
	StringNotClosed:       "StringNotClosed",
	BitwiseUnsupported:    "BitwiseUnsupported",
	OperatorNotRecognized: "OperatorNotRecognized",
	UnknownCharacter:      "UnknownCharacter",
	NumberOutOfRange:      "NumberOutOfRange",
}

func (c ErrorCategory) String() string {
	if int(c) < len(categoryNames) && int(c) >= 0 {
		return categoryNames[c]
	}
	return fmt.Sprintf("ErrorCategory(%d)", int(c))
}

// Code returns the stable diagnostic code for the category (L0001, L0002, ...).
// NoError has no code.
func (c ErrorCategory) Code() string {
	if c <= NoError || int(c) >= len(categoryNames) {
		return ""
	}
	return fmt.Sprintf("L%04d", int(c))
}

// Messages carried by ERROR tokens
const (
	msgUnclosedComment       = "Unclosed Comment"
	msgTooManyDecimals       = "Too many decimals"
	msgInvalidEscapeSequence = "Invalid Escape Sequence"
	msgStringNotClosed       = "String not closed"
	msgBitwiseUnsupported    = "Bitwise operations not supported"
	msgOperatorNotRecognized = "Operator Not Recognized"
	msgUnknownCharacter      = "Unknown Character"
	msgNumberOutOfRange      = "Number out of range"
)

func invalidRangeMessage(dots string) string {
	return fmt.Sprintf("Invalid operator: expected '...', found '%s'", dots)
}

// Position represents a position in the source code
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Number is the value of a NUMBER token. Exactly one decimal point in the
// literal makes it a float.
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool
}

func (n Number) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

// Token represents a single token with its starting position
type Token struct {
	Type TokenType

	// Text is the lexeme for NAME, KEYWORD, OPERATOR and NUMBER, the decoded
	// contents for STRING, the diagnostic message for ERROR and empty for EOF.
	Text string

	Number   Number        // NUMBER only
	Err      ErrorCategory // ERROR only
	Position Position
}

// Value returns int64 or float64 for NUMBER tokens and Text otherwise
func (t Token) Value() any {
	if t.Type == NUMBER {
		if t.Number.IsFloat {
			return t.Number.Float
		}
		return t.Number.Int
	}
	return t.Text
}

// Line returns the 1-based line the lexeme starts on
func (t Token) Line() int { return t.Position.Line }

// Column returns the 1-based column the lexeme starts at
func (t Token) Column() int { return t.Position.Column }

func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return fmt.Sprintf("%s(%s)@%s", t.Type, t.Number, t.Position)
	case EOF:
		return fmt.Sprintf("%s@%s", t.Type, t.Position)
	default:
		return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text, t.Position)
	}
}

// keywords is the fixed keyword set of Trim
var keywords = map[string]struct{}{
	"fn":       {},
	"class":    {},
	"hide":     {},
	"export":   {},
	"if":       {},
	"elif":     {},
	"else":     {},
	"for":      {},
	"return":   {},
	"raise":    {},
	"break":    {},
	"continue": {},
	"handles":  {},
	"not":      {},
	"in":       {},
	"is":       {},
	"import":   {},
	"use":      {},
	"as":       {},
	"null":     {},
	"true":     {},
	"false":    {},
	"and":      {},
	"or":       {},
	"from":     {},
	"where":    {},
	"by":       {},
}

// IsKeyword reports whether word is a reserved keyword
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Keywords returns the keyword set in sorted order
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// HasErrors reports whether any ERROR token is present
func HasErrors(tokens []Token) bool {
	for _, tok := range tokens {
		if tok.Type == ERROR {
			return true
		}
	}
	return false
}

// Errors returns the ERROR tokens in stream order
func Errors(tokens []Token) []Token {
	var errs []Token
	for _, tok := range tokens {
		if tok.Type == ERROR {
			errs = append(errs, tok)
		}
	}
	return errs
}
