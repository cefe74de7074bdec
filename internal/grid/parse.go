package grid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads a board in CSV form: one row per line, one letter per field.
//
// Fields are trimmed and lower-cased. A field that is not exactly one letter
// is reported as a MalformedGridError with its position.
func Parse(r io.Reader) (*Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported by New
	cr.TrimLeadingSpace = true

	var rows [][]rune
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse grid: %w", err)
		}

		row := make([]rune, 0, len(record))
		for c, field := range record {
			field = strings.TrimSpace(field)
			letter, size := utf8.DecodeRuneInString(field)
			if size == 0 || size != len(field) || !unicode.IsLetter(letter) {
				return nil, &MalformedGridError{
					Reason: ReasonBadLetter,
					Row:    len(rows),
					Col:    c,
					Detail: fmt.Sprintf("field %q is not a single letter", field),
				}
			}
			row = append(row, unicode.ToLower(letter))
		}
		rows = append(rows, row)
	}
	return New(rows)
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
