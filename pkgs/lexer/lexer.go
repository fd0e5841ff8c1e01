// Package lexer turns Trim source text into a token stream.
//
// Tokenization is a single pass over a fully materialized buffer. Lexical
// problems never abort the pass: they are reported as ERROR tokens at the
// point of failure and scanning resumes at the next unconsumed character,
// so one run surfaces every error in the file. The stream always ends with
// exactly one EOF token.
package lexer

import (
	"log/slog"
	"time"
)

// Lexer tokenizes one Trim source buffer
type Lexer struct {
	source string
	cur    cursor
	tokens []Token
	done   bool

	// Telemetry (nil when disabled)
	telemetryMode  TelemetryMode
	tokenTelemetry map[TokenType]*TokenTelemetry

	// Debug (nil when disabled)
	debugLevel  DebugLevel
	debugEvents []DebugEvent
	logger      *slog.Logger
}

// NewLexer creates a lexer over source with optional configuration
func NewLexer(source string, opts ...LexerOpt) *Lexer {
	config := &LexerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	estimatedTokens := len(source) / 4
	if estimatedTokens < 16 {
		estimatedTokens = 16
	}

	l := &Lexer{
		source:        source,
		cur:           newCursor(source),
		tokens:        make([]Token, 0, estimatedTokens),
		telemetryMode: config.telemetry,
		debugLevel:    config.debug,
	}

	if config.telemetry > TelemetryOff {
		l.tokenTelemetry = make(map[TokenType]*TokenTelemetry)
	}
	if config.debug > DebugOff {
		l.debugEvents = make([]DebugEvent, 0, 64)
		l.logger = config.logger
	}
	return l
}

// Tokenize lexes source with a fresh lexer and returns the token stream
func Tokenize(source string, opts ...LexerOpt) []Token {
	return NewLexer(source, opts...).Tokenize()
}

// Tokenize runs the lexer to the end of input and returns every token.
// Calling it again returns the same stream without re-lexing.
func (l *Lexer) Tokenize() []Token {
	if l.done {
		return l.tokens
	}

	for {
		var start time.Time
		if l.telemetryMode >= TelemetryTiming {
			start = time.Now()
		}
		emitted := len(l.tokens)

		category := classify(l.cur.ch, l.cur.peek())
		if l.debugLevel >= DebugDetailed {
			l.recordDebugEvent("dispatch", category.String()+" "+l.cur.current())
		}

		switch category {
		case catWhitespace:
			l.skipWhitespace()
		case catCommentOpen:
			l.skipComment()
		case catIdentStart:
			l.scanName()
		case catDigit:
			l.scanNumber()
		case catQuote:
			l.scanString()
		case catSymbol:
			l.scanOperator()
		case catEOF:
			l.tokens = append(l.tokens, Token{Type: EOF, Position: l.cur.pos()})
			l.record(emitted, start)
			l.done = true
			return l.tokens
		default:
			pos := l.cur.pos()
			l.cur.advance()
			l.emitError(UnknownCharacter, msgUnknownCharacter, pos)
		}

		l.record(emitted, start)
	}
}

// record attributes telemetry to the tokens appended since index from
func (l *Lexer) record(from int, start time.Time) {
	if l.telemetryMode == TelemetryOff || from == len(l.tokens) {
		return
	}

	var elapsed time.Duration
	if l.telemetryMode >= TelemetryTiming {
		elapsed = time.Since(start) / time.Duration(len(l.tokens)-from)
	}
	for _, tok := range l.tokens[from:] {
		l.recordTokenTelemetry(tok.Type, elapsed)
	}
}

func (l *Lexer) emit(typ TokenType, text string, pos Position) {
	l.tokens = append(l.tokens, Token{Type: typ, Text: text, Position: pos})
}

func (l *Lexer) emitError(category ErrorCategory, message string, pos Position) {
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("error", message)
	}
	l.tokens = append(l.tokens, Token{Type: ERROR, Text: message, Err: category, Position: pos})
}

// skipWhitespace consumes spaces, tabs, carriage returns and newlines
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.cur.ch) {
		l.cur.advance()
	}
}

// skipComment consumes a #{ ... }# block. Blocks do not nest: the first }#
// closes the comment.
func (l *Lexer) skipComment() {
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("enter_skipComment", "#{")
	}
	start := l.cur.pos()
	l.cur.advanceN(2) // #{

	for !(l.cur.ch == '}' && l.cur.peek() == '#') {
		if l.cur.ch == eof {
			l.emitError(UnclosedComment, msgUnclosedComment, start)
			return
		}
		l.cur.advance()
	}
	l.cur.advanceN(2) // }#
}

// scanName reads a name or keyword. Dispatch has already checked that the
// first character is a lowercase letter.
func (l *Lexer) scanName() {
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("enter_scanName", l.cur.current())
	}
	start := l.cur.pos()
	for identPart(l.cur.ch) {
		l.cur.advance()
	}

	word := l.source[start.Offset:l.cur.offset]
	if IsKeyword(word) {
		l.emit(KEYWORD, word, start)
		return
	}
	l.emit(NAME, word, start)
}
