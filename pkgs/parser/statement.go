package parser

import (
	"fmt"

	"github.com/aledsdavies/trim/pkgs/lexer"
)

// StatementKind is the kind of statement starting at a token
type StatementKind int

const (
	StmtEnd StatementKind = iota // no statement: end of input
	StmtFunction
	StmtClass
	StmtConditional
	StmtFlowControl
	StmtLoop
	StmtModule
	StmtVariable
	StmtExpression
)

var statementNames = [...]string{
	StmtEnd:         "end",
	StmtFunction:    "function",
	StmtClass:       "class",
	StmtConditional: "conditional",
	StmtFlowControl: "flow-control",
	StmtLoop:        "loop",
	StmtModule:      "module",
	StmtVariable:    "variable",
	StmtExpression:  "expression",
}

func (k StatementKind) String() string {
	if int(k) < len(statementNames) && int(k) >= 0 {
		return statementNames[k]
	}
	return fmt.Sprintf("StatementKind(%d)", int(k))
}

// ClassifyStatement decides which statement rule applies at the cursor
// without consuming anything. ERROR tokens and keywords that cannot start a
// statement are reported as a *ParseError.
func ClassifyStatement(s *Stream) (StatementKind, error) {
	tok := s.Current()

	switch tok.Type {
	case lexer.EOF:
		return StmtEnd, nil
	case lexer.ERROR:
		return StmtEnd, &ParseError{Message: tok.Text, Token: tok}
	case lexer.NAME:
		return StmtVariable, nil
	case lexer.KEYWORD:
		// handled below
	default:
		return StmtExpression, nil
	}

	switch tok.Text {
	case "fn":
		return StmtFunction, nil
	case "class":
		return StmtClass, nil
	case "if":
		return StmtConditional, nil
	case "hide":
		next := s.Peek()
		if next.Type == lexer.KEYWORD {
			switch next.Text {
			case "fn":
				return StmtFunction, nil
			case "class":
				return StmtClass, nil
			}
		}
		return StmtEnd, NewParseError(tok, "Unexpected keyword after hide '%s'", next.Text)
	case "return", "break", "continue":
		return StmtFlowControl, nil
	case "for":
		return StmtLoop, nil
	case "import", "export":
		return StmtModule, nil
	}

	return StmtEnd, NewParseError(tok, "Unexpected keyword '%s'", tok.Text)
}
