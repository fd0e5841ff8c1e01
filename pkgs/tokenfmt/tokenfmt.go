// Package tokenfmt writes token streams in the formats offered by the trim
// CLI: an aligned text table, JSON and CBOR.
package tokenfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/aledsdavies/trim/pkgs/lexer"
	"github.com/fxamacker/cbor/v2"
)

// Format names a token dump encoding
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	CBOR Format = "cbor"
)

var writers = map[Format]func(io.Writer, []lexer.Token) error{
	Text: WriteText,
	JSON: WriteJSON,
	CBOR: WriteCBOR,
}

// ParseFormat resolves a format by name, case-insensitively
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := writers[f]; !ok {
		return "", fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Formats lists the supported format names
func Formats() []string {
	names := make([]string, 0, len(writers))
	for f := range writers {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Write encodes tokens to w in format f
func Write(w io.Writer, f Format, tokens []lexer.Token) error {
	write, ok := writers[f]
	if !ok {
		return fmt.Errorf("unknown format %q", string(f))
	}
	return write(w, tokens)
}

// Record is the serialized form of a token
type Record struct {
	Type   string `json:"type" cbor:"type"`
	Text   string `json:"text" cbor:"text"`
	Value  any    `json:"value" cbor:"value"`
	Line   int    `json:"line" cbor:"line"`
	Column int    `json:"column" cbor:"column"`
	Offset int    `json:"offset" cbor:"offset"`
	Code   string `json:"code,omitempty" cbor:"code,omitempty"`
}

// Records converts tokens into their serialized form
func Records(tokens []lexer.Token) []Record {
	out := make([]Record, len(tokens))
	for i, tok := range tokens {
		out[i] = Record{
			Type:   tok.Type.String(),
			Text:   tok.Text,
			Value:  tok.Value(),
			Line:   tok.Position.Line,
			Column: tok.Position.Column,
			Offset: tok.Position.Offset,
			Code:   tok.Err.Code(),
		}
	}
	return out
}

// WriteText writes one token per line as two aligned columns: the token
// kind and its value
func WriteText(w io.Writer, tokens []lexer.Token) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", tok.Type, textValue(tok)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func textValue(tok lexer.Token) string {
	switch tok.Type {
	case lexer.NUMBER:
		return tok.Number.String()
	case lexer.STRING:
		return fmt.Sprintf("%q", tok.Text)
	case lexer.ERROR:
		return fmt.Sprintf("%s [%s] at %s", tok.Text, tok.Err.Code(), tok.Position)
	default:
		return tok.Text
	}
}

// WriteJSON writes tokens as an indented JSON array of records
func WriteJSON(w io.Writer, tokens []lexer.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(tokens))
}

// WriteCBOR writes tokens as a CBOR array of records
func WriteCBOR(w io.Writer, tokens []lexer.Token) error {
	return cbor.NewEncoder(w).Encode(Records(tokens))
}

// DecodeCBOR reads records written by WriteCBOR
func DecodeCBOR(data []byte) ([]Record, error) {
	var records []Record
	if err := cbor.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode cbor token dump: %w", err)
	}
	return records, nil
}
