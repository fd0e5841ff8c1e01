package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenExpectation represents an expected token for testing
type tokenExpectation struct {
	Type   TokenType
	Text   string
	Line   int
	Column int
}

// assertTokens compares actual tokens with expected, providing clear error messages
func assertTokens(t *testing.T, input string, expected []tokenExpectation) {
	t.Helper()

	var actual []tokenExpectation
	for _, token := range Tokenize(input) {
		actual = append(actual, tokenExpectation{
			Type:   token.Type,
			Text:   token.Text,
			Line:   token.Position.Line,
			Column: token.Position.Column,
		})
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("%q: token mismatch (-expected +actual):\n%s", input, diff)
	}
}

func TestEmptyInput(t *testing.T) {
	assertTokens(t, "", []tokenExpectation{
		{EOF, "", 1, 1},
	})
}

func TestWhitespaceOnly(t *testing.T) {
	assertTokens(t, " \t\r\n  ", []tokenExpectation{
		{EOF, "", 2, 3},
	})
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "integer",
			input: "123",
			expected: []tokenExpectation{
				{NUMBER, "123", 1, 1},
				{EOF, "", 1, 4},
			},
		},
		{
			name:  "float",
			input: "3.14",
			expected: []tokenExpectation{
				{NUMBER, "3.14", 1, 1},
				{EOF, "", 1, 5},
			},
		},
		{
			name:  "trailing decimal point",
			input: "7.",
			expected: []tokenExpectation{
				{NUMBER, "7.", 1, 1},
				{EOF, "", 1, 3},
			},
		},
		{
			name:  "second decimal point",
			input: "1.2.3",
			expected: []tokenExpectation{
				{ERROR, "Too many decimals", 1, 4},
				{OPERATOR, ".", 1, 4},
				{NUMBER, "3", 1, 5},
				{EOF, "", 1, 6},
			},
		},
		{
			name:  "integer out of range",
			input: "99999999999999999999",
			expected: []tokenExpectation{
				{ERROR, "Number out of range", 1, 1},
				{EOF, "", 1, 21},
			},
		},
		{
			name:  "number followed by name",
			input: "12ab",
			expected: []tokenExpectation{
				{NUMBER, "12", 1, 1},
				{NAME, "ab", 1, 3},
				{EOF, "", 1, 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestNumberValues(t *testing.T) {
	tokens := Tokenize("42 3.5 7. 0")

	want := []any{int64(42), 3.5, 7.0, int64(0), ""}
	var got []any
	for _, tok := range tokens {
		got = append(got, tok.Value())
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRanges(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "number range",
			input: "1...5",
			expected: []tokenExpectation{
				{NUMBER, "1", 1, 1},
				{OPERATOR, "...", 1, 2},
				{NUMBER, "5", 1, 5},
				{EOF, "", 1, 6},
			},
		},
		{
			name:  "float before range",
			input: "1.5...3",
			expected: []tokenExpectation{
				{NUMBER, "1.5", 1, 1},
				{OPERATOR, "...", 1, 4},
				{NUMBER, "3", 1, 7},
				{EOF, "", 1, 8},
			},
		},
		{
			name:  "whitespace before end",
			input: "for i in 1... 10",
			expected: []tokenExpectation{
				{KEYWORD, "for", 1, 1},
				{NAME, "i", 1, 5},
				{KEYWORD, "in", 1, 7},
				{NUMBER, "1", 1, 10},
				{OPERATOR, "...", 1, 11},
				{NUMBER, "10", 1, 15},
				{EOF, "", 1, 17},
			},
		},
		{
			name:  "implied end",
			input: "1...",
			expected: []tokenExpectation{
				{NUMBER, "1", 1, 1},
				{OPERATOR, "...", 1, 2},
				{NUMBER, "", 1, 5},
				{EOF, "", 1, 5},
			},
		},
		{
			name:  "implied end before name",
			input: "...x",
			expected: []tokenExpectation{
				{OPERATOR, "...", 1, 1},
				{NUMBER, "", 1, 4},
				{NAME, "x", 1, 4},
				{EOF, "", 1, 5},
			},
		},
		{
			name:  "two dots",
			input: "..5",
			expected: []tokenExpectation{
				{ERROR, "Invalid operator: expected '...', found '..'", 1, 1},
				{NUMBER, "5", 1, 3},
				{EOF, "", 1, 4},
			},
		},
		{
			name:  "four dots",
			input: "....",
			expected: []tokenExpectation{
				{ERROR, "Invalid operator: expected '...', found '....'", 1, 1},
				{EOF, "", 1, 5},
			},
		},
		{
			name:  "single dot",
			input: "a.b",
			expected: []tokenExpectation{
				{NAME, "a", 1, 1},
				{OPERATOR, ".", 1, 2},
				{NAME, "b", 1, 3},
				{EOF, "", 1, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestImpliedRangeEndIsZero(t *testing.T) {
	tokens := Tokenize("1...")
	end := tokens[2]

	if end.Type != NUMBER || end.Value() != int64(0) {
		t.Fatalf("range end = %v, want NUMBER(0)", end)
	}
	if end.Position.Offset != 4 {
		t.Errorf("range end offset = %d, want 4", end.Position.Offset)
	}
}

func TestNamesAndKeywords(t *testing.T) {
	for _, kw := range Keywords() {
		t.Run(kw, func(t *testing.T) {
			assertTokens(t, kw, []tokenExpectation{
				{KEYWORD, kw, 1, 1},
				{EOF, "", 1, len(kw) + 1},
			})
		})
	}

	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "keyword prefix is a name",
			input: "fnx",
			expected: []tokenExpectation{
				{NAME, "fnx", 1, 1},
				{EOF, "", 1, 4},
			},
		},
		{
			name:  "underscore and digits continue a name",
			input: "class_1 x2_Y",
			expected: []tokenExpectation{
				{NAME, "class_1", 1, 1},
				{NAME, "x2_Y", 1, 9},
				{EOF, "", 1, 13},
			},
		},
		{
			name:  "uppercase start is not an identifier",
			input: "Foo",
			expected: []tokenExpectation{
				{ERROR, "Unknown Character", 1, 1},
				{NAME, "oo", 1, 2},
				{EOF, "", 1, 4},
			},
		},
		{
			name:  "underscore start is not an identifier",
			input: "_x",
			expected: []tokenExpectation{
				{ERROR, "Unknown Character", 1, 1},
				{NAME, "x", 1, 2},
				{EOF, "", 1, 3},
			},
		},
		{
			name:  "non-ASCII letters continue a name",
			input: "café",
			expected: []tokenExpectation{
				{NAME, "café", 1, 1},
				{EOF, "", 1, 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "decoded newline",
			input: `'a\nb'`,
			expected: []tokenExpectation{
				{STRING, "a\nb", 1, 1},
				{EOF, "", 1, 7},
			},
		},
		{
			name:  "all escapes",
			input: `'\t\'\\\{\}'`,
			expected: []tokenExpectation{
				{STRING, "\t'\\{}", 1, 1},
				{EOF, "", 1, 13},
			},
		},
		{
			name:  "empty string",
			input: `''`,
			expected: []tokenExpectation{
				{STRING, "", 1, 1},
				{EOF, "", 1, 3},
			},
		},
		{
			name:  "unescaped braces",
			input: `'{x}'`,
			expected: []tokenExpectation{
				{STRING, "{x}", 1, 1},
				{EOF, "", 1, 6},
			},
		},
		{
			name:  "not closed",
			input: "'abc",
			expected: []tokenExpectation{
				{ERROR, "String not closed", 1, 1},
				{EOF, "", 1, 5},
			},
		},
		{
			name:  "invalid escape",
			input: `'a\qb'`,
			expected: []tokenExpectation{
				{ERROR, "Invalid Escape Sequence", 1, 4},
				{NAME, "b", 1, 5},
				{ERROR, "String not closed", 1, 6},
				{EOF, "", 1, 7},
			},
		},
		{
			name:  "backslash at end of input",
			input: `'abc\`,
			expected: []tokenExpectation{
				{ERROR, "Invalid Escape Sequence", 1, 6},
				{EOF, "", 1, 6},
			},
		},
		{
			name:  "multi-line string",
			input: "'a\nb' c",
			expected: []tokenExpectation{
				{STRING, "a\nb", 1, 1},
				{NAME, "c", 2, 4},
				{EOF, "", 2, 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "skipped block",
			input: "#{ hidden }# x",
			expected: []tokenExpectation{
				{NAME, "x", 1, 14},
				{EOF, "", 1, 15},
			},
		},
		{
			name:  "empty block",
			input: "#{}#",
			expected: []tokenExpectation{
				{EOF, "", 1, 5},
			},
		},
		{
			name:  "multi-line block",
			input: "#{ one\ntwo }#\ny",
			expected: []tokenExpectation{
				{NAME, "y", 3, 1},
				{EOF, "", 3, 2},
			},
		},
		{
			name:  "no nesting",
			input: "#{ a #{ b }# c }#",
			expected: []tokenExpectation{
				{NAME, "c", 1, 14},
				{OPERATOR, "}", 1, 16},
				{ERROR, "Operator Not Recognized", 1, 17},
				{EOF, "", 1, 18},
			},
		},
		{
			name:  "unclosed",
			input: "x #{ open",
			expected: []tokenExpectation{
				{NAME, "x", 1, 1},
				{ERROR, "Unclosed Comment", 1, 3},
				{EOF, "", 1, 10},
			},
		},
		{
			name:  "opener at end of input",
			input: "#{",
			expected: []tokenExpectation{
				{ERROR, "Unclosed Comment", 1, 1},
				{EOF, "", 1, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestUnknownCharacters(t *testing.T) {
	assertTokens(t, "x @ é", []tokenExpectation{
		{NAME, "x", 1, 1},
		{ERROR, "Unknown Character", 1, 3},
		{ERROR, "Unknown Character", 1, 5},
		{EOF, "", 1, 6},
	})
}

func TestMultiLinePositions(t *testing.T) {
	input := "fn\n  x\n'a\nb' y"
	assertTokens(t, input, []tokenExpectation{
		{KEYWORD, "fn", 1, 1},
		{NAME, "x", 2, 3},
		{STRING, "a\nb", 3, 1},
		{NAME, "y", 4, 4},
		{EOF, "", 4, 5},
	})
}

func TestProgram(t *testing.T) {
	input := `#{ squares }#
fn square(n) {
	return n ** 2
}
for i in 1...10 {
	total += square(i)
}
`
	assertTokens(t, input, []tokenExpectation{
		{KEYWORD, "fn", 2, 1},
		{NAME, "square", 2, 4},
		{OPERATOR, "(", 2, 10},
		{NAME, "n", 2, 11},
		{OPERATOR, ")", 2, 12},
		{OPERATOR, "{", 2, 14},
		{KEYWORD, "return", 3, 2},
		{NAME, "n", 3, 9},
		{OPERATOR, "**", 3, 11},
		{NUMBER, "2", 3, 14},
		{OPERATOR, "}", 4, 1},
		{KEYWORD, "for", 5, 1},
		{NAME, "i", 5, 5},
		{KEYWORD, "in", 5, 7},
		{NUMBER, "1", 5, 10},
		{OPERATOR, "...", 5, 11},
		{NUMBER, "10", 5, 14},
		{OPERATOR, "{", 5, 17},
		{NAME, "total", 6, 2},
		{OPERATOR, "+=", 6, 8},
		{NAME, "square", 6, 11},
		{OPERATOR, "(", 6, 17},
		{NAME, "i", 6, 18},
		{OPERATOR, ")", 6, 19},
		{OPERATOR, "}", 7, 1},
		{EOF, "", 8, 1},
	})
}

func TestTokenizeIsRepeatable(t *testing.T) {
	l := NewLexer("x = 1")
	first := l.Tokenize()
	second := l.Tokenize()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second Tokenize call differs (-first +second):\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []string{
		"",
		"x++ 1...5 'a\\nb' #{ c }#",
		"&= | \\ @ 1.2.3 ..",
		"'unterminated",
	}

	for _, input := range inputs {
		first := NewLexer(input).Tokenize()
		second := NewLexer(input).Tokenize()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%q: non-deterministic output (-first +second):\n%s", input, diff)
		}
	}
}
