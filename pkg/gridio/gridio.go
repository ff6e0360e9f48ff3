// Package gridio converts between the JSON wire formats and the typed
// inputs and outputs of [table.Layout].
//
// A span spec is a JSON object mapping cell identifiers to two-element
// [rows, cols] arrays. A table spec is a two-dimensional JSON array of
// string identifiers. The encoded layout is a two-dimensional JSON array
// where spanned-over cells appear as null:
//
//	spans: {"a": [2, 2]}
//	table: [["a", "b"], ["c", "d"]]
//	layout: [["a", null, "b"], [null, null, "c", "d"]]
//
// Decoding failures carry code [errors.ErrCodeInvalidInput]; a span spec
// with a zero dimension carries [errors.ErrCodeInvalidSpan]. The two are
// distinct so callers can tell malformed input from misconfigured spans.
package gridio

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/spantable/pkg/errors"
	"github.com/matzehuels/spantable/pkg/table"
)

// ReadSpans decodes a JSON span spec from r into a validated span table.
//
// The input must be an object whose values are exactly two-element integer
// arrays. Shape mismatches (non-object input, wrong arity, non-integer
// dimensions) return an INVALID_INPUT error; zero or negative dimensions
// return the INVALID_SPAN configuration error from span construction.
func ReadSpans(r io.Reader) (table.Spans[string], error) {
	var raw map[string][]int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode span spec")
	}
	if raw == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "span spec must be an object, got null")
	}

	dims := make(map[string][2]int, len(raw))
	for id, d := range raw {
		if len(d) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"span for %q must be a [rows, cols] pair, got %d elements", id, len(d))
		}
		dims[id] = [2]int{d[0], d[1]}
	}

	spans, err := table.NewSpans(dims)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpan, err, "invalid span spec")
	}
	return spans, nil
}

// DecodeSpans decodes a JSON span spec from a string.
func DecodeSpans(s string) (table.Spans[string], error) {
	return ReadSpans(strings.NewReader(s))
}

// ReadTable decodes a JSON table spec from r.
//
// The input must be a two-dimensional array of string identifiers: anchors
// only, never pre-populated with nulls. Rows may have differing lengths.
// Null cells are a shape error; stdlib json would silently decode them as
// empty strings, so cells are checked individually.
func ReadTable(r io.Reader) ([][]string, error) {
	var raw [][]*string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode table spec")
	}
	if raw == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "table spec must be an array, got null")
	}

	rows := make([][]string, len(raw))
	for i, cells := range raw {
		row := make([]string, len(cells))
		for j, cell := range cells {
			if cell == nil {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"table spec cell [%d][%d] must be a string, got null", i, j)
			}
			row[j] = *cell
		}
		rows[i] = row
	}
	return rows, nil
}

// DecodeTable decodes a JSON table spec from a string.
func DecodeTable(s string) ([][]string, error) {
	return ReadTable(strings.NewReader(s))
}

// WriteLayout encodes a computed layout as JSON and writes it to w,
// followed by a newline. Empty cells encode as null. When indent is true
// the output is pretty-printed with two-space indentation.
func WriteLayout(w io.Writer, layout [][]table.Cell[string], indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(layout); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return nil
}

// EncodeLayout encodes a computed layout as compact JSON.
func EncodeLayout(layout [][]table.Cell[string]) ([]byte, error) {
	data, err := json.Marshal(layout)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return data, nil
}
