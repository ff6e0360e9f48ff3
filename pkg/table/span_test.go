package table

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewSpan(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr error
	}{
		{"single cell", 1, 1, nil},
		{"wide", 1, 5, nil},
		{"tall", 4, 1, nil},
		{"block", 3, 2, nil},
		{"zero rows", 0, 2, ErrInvalidRowSpan},
		{"zero cols", 2, 0, ErrInvalidColSpan},
		{"both zero", 0, 0, ErrInvalidRowSpan},
		{"negative rows", -1, 1, ErrInvalidRowSpan},
		{"negative cols", 1, -3, ErrInvalidColSpan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := NewSpan(tt.rows, tt.cols)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewSpan(%d, %d) error = %v, want %v", tt.rows, tt.cols, err, tt.wantErr)
			}
			if err == nil && (span.Rows != tt.rows || span.Cols != tt.cols) {
				t.Errorf("NewSpan(%d, %d) = %+v", tt.rows, tt.cols, span)
			}
		})
	}
}

func TestDefaultSpan(t *testing.T) {
	if got := DefaultSpan(); got.Rows != 1 || got.Cols != 1 {
		t.Errorf("DefaultSpan() = %+v, want {1 1}", got)
	}
}

func TestSpansGet(t *testing.T) {
	spans, err := NewSpans(map[string][2]int{"A": {2, 3}})
	if err != nil {
		t.Fatalf("NewSpans: %v", err)
	}

	if got := spans.Get("A"); got != (Span{Rows: 2, Cols: 3}) {
		t.Errorf("Get(A) = %+v", got)
	}
	// Unknown identifiers fall back to the default span.
	if got := spans.Get("missing"); got != DefaultSpan() {
		t.Errorf("Get(missing) = %+v, want default", got)
	}
	// Lookup on a nil table never fails.
	var nilSpans Spans[string]
	if got := nilSpans.Get("A"); got != DefaultSpan() {
		t.Errorf("nil Spans Get = %+v, want default", got)
	}
}

func TestNewSpansRejectsZeroDimension(t *testing.T) {
	_, err := NewSpans(map[string][2]int{"ok": {1, 1}, "bad": {0, 4}})
	if !errors.Is(err, ErrInvalidRowSpan) {
		t.Fatalf("NewSpans with zero rows: err = %v, want ErrInvalidRowSpan", err)
	}

	_, err = NewSpans(map[string][2]int{"bad": {4, 0}})
	if !errors.Is(err, ErrInvalidColSpan) {
		t.Fatalf("NewSpans with zero cols: err = %v, want ErrInvalidColSpan", err)
	}
}

func TestNewSpansFromEntriesLastWriteWins(t *testing.T) {
	spans, err := NewSpansFromEntries([]Entry[string]{
		{ID: "A", Rows: 2, Cols: 2},
		{ID: "B", Rows: 1, Cols: 3},
		{ID: "A", Rows: 4, Cols: 1},
	})
	if err != nil {
		t.Fatalf("NewSpansFromEntries: %v", err)
	}
	if got := spans.Get("A"); got != (Span{Rows: 4, Cols: 1}) {
		t.Errorf("Get(A) = %+v, want later entry to win", got)
	}
}

func TestSpansConstructionOrderInsensitive(t *testing.T) {
	// With no duplicate identifiers, entry order is irrelevant.
	forward, err := NewSpansFromEntries([]Entry[string]{
		{ID: "A", Rows: 2, Cols: 1},
		{ID: "B", Rows: 1, Cols: 3},
	})
	if err != nil {
		t.Fatalf("NewSpansFromEntries: %v", err)
	}
	backward, err := NewSpansFromEntries([]Entry[string]{
		{ID: "B", Rows: 1, Cols: 3},
		{ID: "A", Rows: 2, Cols: 1},
	})
	if err != nil {
		t.Fatalf("NewSpansFromEntries: %v", err)
	}
	if !reflect.DeepEqual(forward, backward) {
		t.Errorf("order-sensitive result: %v vs %v", forward, backward)
	}
}
