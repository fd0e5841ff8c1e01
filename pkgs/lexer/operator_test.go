package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOperators(t *testing.T) {
	operators := []string{
		"+", "+=", "++",
		"-", "-=", "--",
		"*", "*=", "**", "**=", "*/",
		"/", "/=", "//", "//=", "/%",
		"%", "%=",
		"=", "==",
		"!", "!=",
		"<", "<=",
		">", ">=",
		"&",
		".",
		"(", ")", "[", "]", "{", "}", ",", ":",
	}

	for _, op := range operators {
		t.Run(op, func(t *testing.T) {
			assertTokens(t, op, []tokenExpectation{
				{OPERATOR, op, 1, 1},
				{EOF, "", 1, len(op) + 1},
			})
		})
	}
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"+++", []string{"++", "+"}},
		{"***", []string{"**", "*"}},
		{"**/", []string{"**", "/"}},
		{"***=", []string{"**", "*="}},
		{"//=/", []string{"//=", "/"}},
		{"/%=", []string{"/%", "="}},
		{"===", []string{"==", "="}},
		{"!==", []string{"!=", "="}},
		{"<=>", []string{"<=", ">"}},
		{"-->", []string{"--", ">"}},
		{"x++", []string{"x", "++"}},
		{"a+=-1", []string{"a", "+=", "-", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got []string
			for _, tok := range Tokenize(tt.input) {
				if tok.Type != EOF {
					got = append(got, tok.Text)
				}
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("lexemes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIncrementAfterName(t *testing.T) {
	assertTokens(t, "x++", []tokenExpectation{
		{NAME, "x", 1, 1},
		{OPERATOR, "++", 1, 2},
		{EOF, "", 1, 4},
	})
}

func TestBitwiseRejected(t *testing.T) {
	assertTokens(t, "&=", []tokenExpectation{
		{ERROR, "Bitwise operations not supported", 1, 1},
		{EOF, "", 1, 3},
	})

	assertTokens(t, "a &= b", []tokenExpectation{
		{NAME, "a", 1, 1},
		{ERROR, "Bitwise operations not supported", 1, 3},
		{NAME, "b", 1, 6},
		{EOF, "", 1, 7},
	})
}

func TestUnrecognizedOperators(t *testing.T) {
	for _, input := range []string{"|", "#", `\`} {
		t.Run(input, func(t *testing.T) {
			assertTokens(t, input, []tokenExpectation{
				{ERROR, "Operator Not Recognized", 1, 1},
				{EOF, "", 1, 2},
			})
		})
	}
}

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		input    string
		category ErrorCategory
	}{
		{"#{", UnclosedComment},
		{"1.2.3", TooManyDecimals},
		{"..", InvalidRangeOperator},
		{`'\x'`, InvalidEscapeSequence},
		{"'open", StringNotClosed},
		{"&=", BitwiseUnsupported},
		{"|", OperatorNotRecognized},
		{"$", UnknownCharacter},
		{strings.Repeat("9", 30), NumberOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			errs := Errors(Tokenize(tt.input))
			if len(errs) == 0 {
				t.Fatalf("%q: expected an ERROR token", tt.input)
			}
			if errs[0].Err != tt.category {
				t.Errorf("%q: category = %v, want %v", tt.input, errs[0].Err, tt.category)
			}
			if errs[0].Err.Code() == "" {
				t.Errorf("%q: category %v has no code", tt.input, errs[0].Err)
			}
		})
	}
}
