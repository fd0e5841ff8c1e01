package lexer

import "strings"

// operatorForms lists the operators for each leading symbol, longest first,
// so the first prefix match is the maximal munch.
var operatorForms = map[rune][]string{
	'+': {"++", "+=", "+"},
	'-': {"--", "-=", "-"},
	'*': {"**=", "**", "*/", "*=", "*"},
	'/': {"//=", "//", "/%", "/=", "/"},
	'%': {"%=", "%"},
	'=': {"==", "="},
	'!': {"!=", "!"},
	'<': {"<=", "<"},
	'>': {">=", ">"},
	'&': {"&"},
	'.': {"."},
	'(': {"("},
	')': {")"},
	'[': {"["},
	']': {"]"},
	'{': {"{"},
	'}': {"}"},
	',': {","},
	':': {":"},
}

// scanOperator reads one operator or punctuation token and always finishes
// on the character after the consumed lexeme.
func (l *Lexer) scanOperator() {
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("enter_scanOperator", l.cur.current())
	}
	start := l.cur.pos()
	ch, next := l.cur.ch, l.cur.peek()

	switch {
	case ch == '.' && next == '.':
		l.scanRange()
		return
	case ch == '&' && next == '=':
		l.cur.advanceN(2)
		l.emitError(BitwiseUnsupported, msgBitwiseUnsupported, start)
		return
	}

	rest := l.cur.rest()
	for _, form := range operatorForms[ch] {
		if strings.HasPrefix(rest, form) {
			l.cur.advanceN(len(form))
			l.emit(OPERATOR, form, start)
			return
		}
	}

	// Symbols without an operator form: | \ and a lone #
	l.cur.advance()
	l.emitError(OperatorNotRecognized, msgOperatorNotRecognized, start)
}
