// SPDX-License-Identifier: MIT

// Package sparse - plain-text (de)serialization.
//
// Purpose:
//   - Implement the round-trippable text format:
//
//     rows=<non-negative integer>
//     cols=<non-negative integer>
//     (<row>, <col>, <value>)   ... zero or more element lines
//
//   - Blank body lines are ignored on input. Parentheses around a triple are
//     optional on input but always emitted on output. Output carries no
//     trailing newline.
//   - Emission order is insertion order of the store (an overwritten
//     coordinate keeps its original position), so serialize→parse→serialize
//     is byte-stable and files produced by ToText round-trip exactly.
//
// Quirk preserved on purpose: a body line may reference coordinates beyond
// the declared header dimensions; Set-driven growth silently enlarges the
// matrix instead of failing. Compatibility with existing files depends on it.
//
// Determinism & Performance:
//   - Single pass over input lines; O(nnz) emission via strings.Builder.
//   - No map iteration anywhere on the observable path.

package sparse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ---------- format literals ----------

const (
	headerRowsKey = "rows" // key of the first header line
	headerColsKey = "cols" // key of the second header line
	headerSep     = "="    // key/value separator in header lines
	tripleOpen    = "("    // optional on input, always emitted
	tripleClose   = ")"    // optional on input, always emitted
	tripleSep     = ","    // field separator inside a triple
	tripleFields  = 3      // row, col, value
)

// ---------- error context tags ----------

const (
	ctxFromText = "FromText"
	ctxFromFile = "FromFile"
	ctxSave     = "Save"
)

// codecErrorf wraps a sentinel with parse context (operation tag plus a
// human-readable detail such as line number or offending text).
func codecErrorf(op, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", op, detail, err)
}

// FromText parses serialized text into a populated Matrix.
//
// Implementation:
//   - Stage 1: split into lines; fewer than two lines is a malformed header.
//   - Stage 2: parse line 1 as rows=<int> and line 2 as cols=<int>; any
//     deviation (missing separator, wrong key, non-integer or negative value)
//     fails with ErrMalformedHeader identifying the offending line.
//   - Stage 3: for each remaining line, trim whitespace; blank lines are
//     skipped. Otherwise parse a (row, col, value) triple and Set it in file
//     order, growing dimensions past the header when the body overflows them.
//
// Inputs:
//   - text: raw serialized form, as produced by ToText or written by hand.
//
// Returns:
//   - *Matrix: populated matrix.
//
// Errors:
//   - ErrMalformedHeader, ErrMalformedElement, ErrInvalidCoordinate.
//
// Complexity:
//   - Time O(lines), Space O(nnz).
func FromText(text string) (*Matrix, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, codecErrorf(ctxFromText, "fewer than two lines", ErrMalformedHeader)
	}

	rows, err := parseHeaderLine(lines[0], headerRowsKey, 1)
	if err != nil {
		return nil, err
	}
	cols, err := parseHeaderLine(lines[1], headerColsKey, 2)
	if err != nil {
		return nil, err
	}

	m, err := New(rows, cols)
	if err != nil {
		// Unreachable: parseHeaderLine rejects negative dimensions.
		return nil, err
	}

	var line string
	var row, col int
	var value int64
	for i := 2; i < len(lines); i++ {
		line = strings.TrimSpace(lines[i])
		if line == "" {
			continue // blank body lines are not an error
		}
		row, col, value, err = parseTriple(line)
		if err != nil {
			return nil, err
		}
		// File order fixes insertion order; out-of-header coordinates grow
		// the matrix here, negative ones surface ErrInvalidCoordinate.
		if err = m.Set(row, col, value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromFile reads the file at path and parses it via FromText. A failure to
// open or read the source surfaces as ErrSourceNotFound carrying the path;
// the handle is fully consumed before parsing starts, so parse failures never
// leak it.
func FromFile(path string) (*Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, codecErrorf(ctxFromFile, strconv.Quote(path), ErrSourceNotFound)
	}

	return FromText(string(raw))
}

// ToText serializes the matrix:
//
//	rows=<row_count>
//	cols=<col_count>
//	(<row>, <col>, <value>)  — one line per stored entry, explicit zeros
//	                            included, in insertion order
//
// No trailing newline. Complexity: O(nnz).
func (m *Matrix) ToText() string {
	var b strings.Builder
	b.WriteString(headerRowsKey + headerSep + strconv.Itoa(m.rows))
	b.WriteString("\n")
	b.WriteString(headerColsKey + headerSep + strconv.Itoa(m.cols))
	for _, k := range m.order { // insertion order, never the map
		b.WriteString(fmt.Sprintf("\n%s%d, %d, %d%s", tripleOpen, k.r, k.c, m.values[k], tripleClose))
	}

	return b.String()
}

// Save writes the serialized text to path, replacing any existing content at
// that location. A write failure surfaces as ErrWrite carrying the path.
func (m *Matrix) Save(path string) error {
	if err := os.WriteFile(path, []byte(m.ToText()), 0o644); err != nil {
		return codecErrorf(ctxSave, strconv.Quote(path), ErrWrite)
	}

	return nil
}

// parseHeaderLine parses one dimension line ("rows=N" or "cols=N").
//
// Implementation:
//   - Stage 1: trim and split on the single "=" separator.
//   - Stage 2: require the expected key and a non-negative integer value.
//
// Any deviation returns ErrMalformedHeader wrapped with the 1-based line
// number and the original text. Complexity: O(len(line)).
func parseHeaderLine(line, key string, lineNo int) (int, error) {
	detail := fmt.Sprintf("line %d %q", lineNo, line)

	trimmed := strings.TrimSpace(line)
	k, v, found := strings.Cut(trimmed, headerSep)
	if !found {
		return 0, codecErrorf(ctxFromText, detail, ErrMalformedHeader)
	}
	if strings.TrimSpace(k) != key {
		return 0, codecErrorf(ctxFromText, detail, ErrMalformedHeader)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, codecErrorf(ctxFromText, detail, ErrMalformedHeader)
	}

	return n, nil
}

// parseTriple parses one element line into (row, col, value).
//
// Implementation:
//   - Stage 1: strip a single leading "(" and trailing ")" when present
//     (each independently; bare "r, c, v" lines are accepted).
//   - Stage 2: split on "," into exactly three fields.
//   - Stage 3: parse row/col as ints and value as int64.
//
// Any failure returns ErrMalformedElement wrapped with the line's original
// text. Complexity: O(len(line)).
func parseTriple(line string) (row, col int, value int64, err error) {
	s := strings.TrimPrefix(line, tripleOpen)
	s = strings.TrimSuffix(s, tripleClose)

	fields := strings.Split(s, tripleSep)
	if len(fields) != tripleFields {
		return 0, 0, 0, codecErrorf(ctxFromText, strconv.Quote(line), ErrMalformedElement)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, 0, codecErrorf(ctxFromText, strconv.Quote(line), ErrMalformedElement)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, 0, codecErrorf(ctxFromText, strconv.Quote(line), ErrMalformedElement)
	}
	if value, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64); err != nil {
		return 0, 0, 0, codecErrorf(ctxFromText, strconv.Quote(line), ErrMalformedElement)
	}

	return row, col, value, nil
}
