// Package parser turns raw report bodies into the generic document tree the
// validators walk.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"volumetrico/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Result is a decoded report plus the decoding findings collected on the way.
type Result struct {
	Data     map[string]any
	Decoding []domain.ErrorRecord
}

// Decode parses body as a single JSON object. Numbers are kept as
// json.Number so integer and decimal literals stay distinguishable.
//
// Invalid UTF-8 sequences and literal U+FFFD runes do not fail the decode;
// each one is reported as a KindDecoding record instead.
func Decode(body []byte) (*Result, error) {
	body = bytes.TrimPrefix(body, utf8BOM)
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("decoding report: %w", domain.ErrEmptyReport)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, syntaxError(body, dec.InputOffset(), err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, NewSyntaxError(body, dec.InputOffset(), errors.New("unexpected data after top-level value"))
	}

	data, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoding report: top-level value is %T: %w", value, domain.ErrEmptyReport)
	}

	return &Result{Data: data, Decoding: ReplacementRecords(body)}, nil
}

func syntaxError(body []byte, fallback int64, err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return NewSyntaxError(body, se.Offset, err)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return NewSyntaxError(body, int64(len(body)), err)
	}
	return NewSyntaxError(body, fallback, err)
}

// ReplacementRecords returns one KindDecoding record per replacement rune in
// body, in order of appearance. Positions are rune indexes.
func ReplacementRecords(body []byte) []domain.ErrorRecord {
	var records []domain.ErrorRecord
	idx := 0
	for len(body) > 0 {
		r, size := utf8.DecodeRune(body)
		if r == utf8.RuneError {
			records = append(records, domain.ErrorRecord{
				Kind:  domain.KindDecoding,
				Error: fmt.Sprintf("Caracter encontrado: '%c' en posición '%d'", utf8.RuneError, idx),
			})
		}
		body = body[size:]
		idx++
	}
	return records
}

// Pretty renders data as four-space indented JSON.
func Pretty(data map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
