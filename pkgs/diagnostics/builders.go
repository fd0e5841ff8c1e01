package diagnostics

import (
	"github.com/aledsdavies/trim/pkgs/lexer"
)

var categoryHelp = map[lexer.ErrorCategory]string{
	lexer.UnclosedComment:       "close the comment with '}#'",
	lexer.TooManyDecimals:       "a number may contain at most one '.'",
	lexer.InvalidRangeOperator:  "ranges are written with exactly three dots, as in '1...10'",
	lexer.InvalidEscapeSequence: "valid escapes are \\n \\t \\' \\\\ \\{ and \\}",
	lexer.StringNotClosed:       "add a closing \"'\" before the end of the file",
	lexer.BitwiseUnsupported:    "bitwise compound assignment is not part of the language",
	lexer.NumberOutOfRange:      "integer literals must fit in a signed 64-bit value",
}

var categoryLabel = map[lexer.ErrorCategory]string{
	lexer.UnclosedComment:       "comment starts here",
	lexer.StringNotClosed:       "string starts here",
	lexer.TooManyDecimals:       "second decimal point",
	lexer.InvalidEscapeSequence: "unknown escape",
	lexer.InvalidRangeOperator:  "expected '...'",
}

// FromToken converts an ERROR token into an error diagnostic. Tokens of any
// other type yield nil.
func FromToken(tok lexer.Token) *Diagnostic {
	if tok.Type != lexer.ERROR {
		return nil
	}

	diag := NewError(tok.Text).
		WithCode(tok.Err.Code()).
		At(tok.Position, categoryLabel[tok.Err])

	if help, ok := categoryHelp[tok.Err]; ok {
		diag.WithHelp(help)
	}
	return diag
}

// FromTokens collects a diagnostic for every ERROR token in tokens
func FromTokens(filename string, tokens []lexer.Token) *Bag {
	bag := NewBag(filename)
	for _, tok := range tokens {
		if diag := FromToken(tok); diag != nil {
			bag.Add(diag)
		}
	}
	return bag
}
