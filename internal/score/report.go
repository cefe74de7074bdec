package score

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	totalPrefix  = "Total score: "
	reportHeader = "Value,Word"
)

// WriteReport writes the result set as
//
//	Total score: N
//	Value,Word
//	value,word
//	...
//
// Words are listed in Sorted order so reports are reproducible.
func WriteReport(w io.Writer, s *Set) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%d\n", totalPrefix, s.Total())
	fmt.Fprintln(bw, reportHeader)
	for _, fw := range s.Sorted() {
		fmt.Fprintf(bw, "%d,%s\n", fw.Value, fw.Word)
	}
	return bw.Flush()
}

// ParseReport reads a report produced by WriteReport. Values are recomputed
// from the words; a stated value or total that disagrees is an error.
func ParseReport(r io.Reader) (*Set, error) {
	sc := bufio.NewScanner(r)
	set := NewSet()

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("parse report: %w", err)
		}
		return nil, fmt.Errorf("parse report: empty input")
	}
	line := sc.Text()
	if !strings.HasPrefix(line, totalPrefix) {
		return nil, fmt.Errorf("parse report: missing %q line", strings.TrimSpace(totalPrefix))
	}
	total, err := strconv.Atoi(strings.TrimPrefix(line, totalPrefix))
	if err != nil {
		return nil, fmt.Errorf("parse report: total: %w", err)
	}

	if !sc.Scan() || sc.Text() != reportHeader {
		return nil, fmt.Errorf("parse report: missing %q header", reportHeader)
	}

	for n := 3; sc.Scan(); n++ {
		line := sc.Text()
		if line == "" {
			continue
		}
		valueStr, word, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("parse report: line %d: expected value,word", n)
		}
		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return nil, fmt.Errorf("parse report: line %d: %w", n, err)
		}
		fw := New(word)
		if fw.Value != value {
			return nil, fmt.Errorf("parse report: line %d: %q is worth %d, not %d", n, word, fw.Value, value)
		}
		set.Add(fw)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	if set.Total() != total {
		return nil, fmt.Errorf("parse report: total %d does not match words (%d)", total, set.Total())
	}
	return set, nil
}
