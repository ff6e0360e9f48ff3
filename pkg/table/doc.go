// Package table computes dense grid layouts for tables whose cells may
// span multiple rows and/or columns.
//
// # Overview
//
// Callers describe a table sparsely: a span table mapping cell identifiers
// to their (rows, cols) extent, and a row-major sequence of anchor
// identifiers with spanned-over positions omitted. [Layout] expands that
// description into a dense grid where every position holds either the
// identifier occupying it or an empty marker.
//
// The expansion accounts for the three ways spans consume space:
//
//   - A colspan pushes later anchors in the same row to the right.
//   - A rowspan bleeds into subsequent rows, displacing their anchors past
//     the blocked columns.
//   - A rowspan anchored near the bottom of the input outlives the explicit
//     rows; trailing all-empty rows are emitted until it expires.
//
// # Basic Usage
//
// Build a span table with [NewSpans] and lay out the anchors with [Layout]:
//
//	spans, err := table.NewSpans(map[string][2]int{"D": {1, 2}})
//	if err != nil {
//		return err
//	}
//	grid := table.Layout(spans, [][]string{
//		{"A", "B", "C"},
//		{"D", "E"},
//	})
//	// grid[1] is [D, empty, E]: D's colspan displaced E one column right.
//
// Identifiers absent from the span table occupy a single cell. Identifier
// types need only be comparable; they are used both as map keys and as the
// payload placed into output cells.
//
// # Placement Model
//
// Layout processes one input row at a time with a cursor walking left to
// right. Before an anchor is written, every column its colspan would cover
// is checked against a [Tracker] of columns still blocked by rowspans from
// earlier rows; while any covered column is blocked, the cursor emits an
// empty cell and the full-width check is retried one column further right.
// Every column of a multi-column span carries the anchor's row-blocking
// duration independently.
//
// # Concurrency
//
// A layout computation is a single deterministic in-memory pass. Spans
// values are safe to share between concurrent computations as long as no
// caller mutates them; each call to Layout owns a private Tracker.
package table
