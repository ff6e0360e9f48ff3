package table

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRowSpan is returned by [NewSpan] when the row dimension is
	// zero or negative. Spans always cover at least one row.
	ErrInvalidRowSpan = errors.New("span must cover at least one row")

	// ErrInvalidColSpan is returned by [NewSpan] when the column dimension
	// is zero or negative. Spans always cover at least one column.
	ErrInvalidColSpan = errors.New("span must cover at least one column")
)

// Span is the number of rows and columns a table cell occupies. Both
// dimensions are at least 1; use [NewSpan] to construct validated values.
type Span struct {
	Rows int
	Cols int
}

// NewSpan creates a span with the given dimensions. It returns
// ErrInvalidRowSpan or ErrInvalidColSpan if either dimension is less than 1.
// Invalid dimensions are a configuration error on the caller's side, not a
// layout-time condition, so they are rejected eagerly here.
func NewSpan(rows, cols int) (Span, error) {
	if rows < 1 {
		return Span{}, fmt.Errorf("rows=%d: %w", rows, ErrInvalidRowSpan)
	}
	if cols < 1 {
		return Span{}, fmt.Errorf("cols=%d: %w", cols, ErrInvalidColSpan)
	}
	return Span{Rows: rows, Cols: cols}, nil
}

// DefaultSpan is the span of an ordinary unspanned cell: one row, one
// column. Identifiers absent from a span table receive this span.
func DefaultSpan() Span {
	return Span{Rows: 1, Cols: 1}
}

// Spans maps cell identifiers to their spans. Identifiers not present in
// the map default to [DefaultSpan]; lookups never fail.
//
// Spans values built by [NewSpans] or [NewSpansFromEntries] are fully
// validated. Treat them as immutable once constructed.
type Spans[T comparable] map[T]Span

// Get returns the span stored for id, or [DefaultSpan] if id is absent.
// Get is safe on a nil Spans.
func (s Spans[T]) Get(id T) Span {
	if span, ok := s[id]; ok {
		return span
	}
	return DefaultSpan()
}

// NewSpans builds a span table from raw (rows, cols) dimensions, validating
// every entry with [NewSpan]. The input map may be nil or empty, yielding a
// table where every identifier defaults to a single cell.
func NewSpans[T comparable](dims map[T][2]int) (Spans[T], error) {
	spans := make(Spans[T], len(dims))
	for id, d := range dims {
		span, err := NewSpan(d[0], d[1])
		if err != nil {
			return nil, fmt.Errorf("span for %v: %w", id, err)
		}
		spans[id] = span
	}
	return spans, nil
}

// Entry is an (identifier, dimensions) pair for order-sensitive span table
// construction.
type Entry[T comparable] struct {
	ID   T
	Rows int
	Cols int
}

// NewSpansFromEntries builds a span table from an ordered list of entries.
// Duplicate identifiers overwrite earlier ones (last write wins). Every
// entry is validated with [NewSpan].
func NewSpansFromEntries[T comparable](entries []Entry[T]) (Spans[T], error) {
	spans := make(Spans[T], len(entries))
	for _, e := range entries {
		span, err := NewSpan(e.Rows, e.Cols)
		if err != nil {
			return nil, fmt.Errorf("span for %v: %w", e.ID, err)
		}
		spans[e.ID] = span
	}
	return spans, nil
}
