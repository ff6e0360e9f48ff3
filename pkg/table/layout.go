package table

import "encoding/json"

// Cell is one position of a dense grid: either occupied by an identifier
// (Present true) or spanned over by a neighboring anchor (the zero value).
// Cells marshal to JSON as the identifier itself, or null when empty.
type Cell[T any] struct {
	Value   T
	Present bool
}

// NewCell wraps an identifier as an occupied cell.
func NewCell[T any](v T) Cell[T] {
	return Cell[T]{Value: v, Present: true}
}

// MarshalJSON encodes an occupied cell as its identifier and an empty cell
// as null.
func (c Cell[T]) MarshalJSON() ([]byte, error) {
	if !c.Present {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// UnmarshalJSON decodes null as an empty cell and anything else as an
// occupied cell holding the decoded identifier.
func (c *Cell[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Cell[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Cell[T]{Value: v, Present: true}
	return nil
}

// Layout expands a sparse anchor table into a dense grid.
//
// rows lists anchors only, row-major, with spanned-over positions omitted;
// spans supplies each anchor's extent (absent identifiers default to a
// single cell). The result has one output row per input row, plus trailing
// all-empty rows for rowspans that extend past the last input row. Row
// lengths vary: each row ends one past its highest written column.
//
// Layout is total over validated inputs and has no failure path; span
// validity is enforced earlier, at [NewSpans] construction.
func Layout[T comparable](spans Spans[T], rows [][]T) [][]Cell[T] {
	grid := make([][]Cell[T], 0, len(rows))
	active := NewTracker()

	for _, anchors := range rows {
		row := make([]Cell[T], 0, len(anchors))
		for _, id := range anchors {
			span := spans.Get(id)

			// Displace the anchor rightward past any column where its full
			// colspan would overlap an active rowspan from a previous row.
			for !fits(active, len(row), span.Cols) {
				row = append(row, Cell[T]{})
			}

			active.Track(len(row), span.Rows)
			row = append(row, NewCell(id))
			for i := 1; i < span.Cols; i++ {
				active.Track(len(row), span.Rows)
				row = append(row, Cell[T]{})
			}
		}
		grid = append(grid, row)
		active.Advance()
	}

	// Rowspans anchored near the end outlive the input; emit empty rows
	// until every block expires.
	for {
		col, ok := active.MaxBlockedColumn()
		if !ok {
			break
		}
		grid = append(grid, make([]Cell[T], col+1))
		active.Advance()
	}

	return grid
}

// fits reports whether a span of width cols can be placed with its leftmost
// column at col without overlapping any actively blocked column.
func fits(active *Tracker, col, cols int) bool {
	for c := col; c < col+cols; c++ {
		if active.Blocked(c) {
			return false
		}
	}
	return true
}
