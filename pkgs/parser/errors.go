package parser

import (
	"fmt"

	"github.com/aledsdavies/trim/pkgs/lexer"
)

// ParseError represents an error raised while consuming the token stream.
// It carries the token that triggered it so callers can point at the source.
type ParseError struct {
	Message string      // The error message
	Token   lexer.Token // The offending token
}

// Error formats the parse error as a string
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s",
		e.Token.Position.Line, e.Token.Position.Column, e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(tok lexer.Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}

// CheckLexical returns a ParseError for the first ERROR token in tokens, or
// nil when the stream is free of lexical errors.
func CheckLexical(tokens []lexer.Token) error {
	for _, tok := range tokens {
		if tok.Type == lexer.ERROR {
			return &ParseError{Message: tok.Text, Token: tok}
		}
	}
	return nil
}
