// Package parser holds the parser side of the token stream contract: a
// cursor over lexer output and the ParseError type raised on unexpected
// tokens. Grammar rules live on top of Stream.
package parser

import (
	"github.com/aledsdavies/trim/pkgs/lexer"
)

// Stream is a read cursor over a token sequence produced by the lexer
type Stream struct {
	tokens   []lexer.Token
	pos      int
	previous lexer.Token
}

// NewStream creates a stream over tokens. A missing trailing EOF is added
// so reads past the end always see EOF.
func NewStream(tokens []lexer.Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.EOF {
		var pos lexer.Position
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].Position
		} else {
			pos = lexer.Position{Line: 1, Column: 1}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], lexer.Token{Type: lexer.EOF, Position: pos})
	}
	return &Stream{tokens: tokens}
}

// Current returns the token under the cursor
func (s *Stream) Current() lexer.Token {
	return s.tokens[s.pos]
}

// Previous returns the most recently consumed token
func (s *Stream) Previous() lexer.Token {
	return s.previous
}

// Peek returns the next token without consuming it
func (s *Stream) Peek() lexer.Token {
	if s.pos+1 < len(s.tokens) {
		return s.tokens[s.pos+1]
	}
	return s.tokens[len(s.tokens)-1]
}

// Advance consumes the current token. At EOF it stays put.
func (s *Stream) Advance() lexer.Token {
	tok := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.previous = tok
		s.pos++
	}
	return tok
}

// AtEOF reports whether the cursor is on the EOF token
func (s *Stream) AtEOF() bool {
	return s.Current().Type == lexer.EOF
}

// Match checks if the current token has any of the given types
func (s *Stream) Match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if s.Current().Type == t {
			return true
		}
	}
	return false
}

// ExpectType consumes the current token if it has type typ
func (s *Stream) ExpectType(typ lexer.TokenType) (lexer.Token, error) {
	tok := s.Current()
	if tok.Type == lexer.ERROR {
		return tok, &ParseError{Message: tok.Text, Token: tok}
	}
	if tok.Type != typ {
		return tok, NewParseError(tok, "expected %s, got %s", typ, describe(tok))
	}
	return s.Advance(), nil
}

// Expect consumes the current token if both its type and text match
func (s *Stream) Expect(typ lexer.TokenType, text string) (lexer.Token, error) {
	tok := s.Current()
	if tok.Type == lexer.ERROR {
		return tok, &ParseError{Message: tok.Text, Token: tok}
	}
	if tok.Type != typ || tok.Text != text {
		return tok, NewParseError(tok, "expected %s '%s', got %s", typ, text, describe(tok))
	}
	return s.Advance(), nil
}

func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF:
		return "end of input"
	case lexer.NUMBER:
		return "NUMBER " + tok.Number.String()
	default:
		return tok.Type.String() + " '" + tok.Text + "'"
	}
}
