package table

import (
	"reflect"
	"testing"
)

// cell and gap shorten expected-grid literals in this file.
func cell(id string) Cell[string] { return NewCell(id) }

var gap = Cell[string]{}

func mustSpans(t *testing.T, dims map[string][2]int) Spans[string] {
	t.Helper()
	spans, err := NewSpans(dims)
	if err != nil {
		t.Fatalf("NewSpans: %v", err)
	}
	return spans
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		dims  map[string][2]int
		rows  [][]string
		want  [][]Cell[string]
	}{
		{
			name: "no spans returns input wrapped as present",
			rows: [][]string{
				{"A", "B", "C"},
				{"D", "E", "F"},
				{"G", "H", "I"},
			},
			want: [][]Cell[string]{
				{cell("A"), cell("B"), cell("C")},
				{cell("D"), cell("E"), cell("F")},
				{cell("G"), cell("H"), cell("I")},
			},
		},
		{
			name: "colspan pushes later anchors right",
			dims: map[string][2]int{"D": {1, 2}},
			rows: [][]string{
				{"A", "B", "C"},
				{"D", "E"},
				{"G", "H", "I"},
			},
			want: [][]Cell[string]{
				{cell("A"), cell("B"), cell("C")},
				{cell("D"), gap, cell("E")},
				{cell("G"), cell("H"), cell("I")},
			},
		},
		{
			name: "rowspan displaces the next row's anchors",
			dims: map[string][2]int{"E": {2, 1}},
			rows: [][]string{
				{"A", "B", "C"},
				{"D", "E", "F"},
				{"G", "H"},
				{"J", "K", "L"},
			},
			want: [][]Cell[string]{
				{cell("A"), cell("B"), cell("C")},
				{cell("D"), cell("E"), cell("F")},
				{cell("G"), gap, cell("H")},
				{cell("J"), cell("K"), cell("L")},
			},
		},
		{
			name: "block span consumes rows and columns",
			dims: map[string][2]int{"D": {3, 2}, "E": {1, 2}},
			rows: [][]string{
				{"A", "B", "C"},
				{"D", "E", "F"},
				{"G", "H", "I"},
				{"J", "K", "L"},
				{"M", "N", "O"},
			},
			want: [][]Cell[string]{
				{cell("A"), cell("B"), cell("C")},
				{cell("D"), gap, cell("E"), gap, cell("F")},
				{gap, gap, cell("G"), cell("H"), cell("I")},
				{gap, gap, cell("J"), cell("K"), cell("L")},
				{cell("M"), cell("N"), cell("O")},
			},
		},
		{
			name: "overlapping rowspans from different anchors",
			dims: map[string][2]int{"E": {2, 1}, "H": {2, 1}},
			rows: [][]string{
				{"A", "B", "C"},
				{"D", "E", "F"},
				{"G", "H", "I"},
				{"J", "K", "L"},
				{"M", "N", "O"},
			},
			want: [][]Cell[string]{
				{cell("A"), cell("B"), cell("C")},
				{cell("D"), cell("E"), cell("F")},
				{cell("G"), gap, cell("H"), cell("I")},
				{cell("J"), cell("K"), gap, cell("L")},
				{cell("M"), cell("N"), cell("O")},
			},
		},
		{
			name: "rowspan pushes a colspan past the blocked region",
			dims: map[string][2]int{"E": {2, 1}, "G": {2, 2}},
			rows: [][]string{
				{"A", "B", "C"},
				{"D", "E", "F"},
				{"G", "H", "I"},
				{"J", "K", "L"},
				{"M", "N", "O"},
			},
			want: [][]Cell[string]{
				{cell("A"), cell("B"), cell("C")},
				{cell("D"), cell("E"), cell("F")},
				{gap, gap, cell("G"), gap, cell("H"), cell("I")},
				{cell("J"), cell("K"), gap, gap, cell("L")},
				{cell("M"), cell("N"), cell("O")},
			},
		},
		{
			name: "trailing rowspans emit extra empty rows",
			dims: map[string][2]int{"B": {3, 1}, "C": {2, 1}},
			rows: [][]string{{"A", "B", "C"}},
			want: [][]Cell[string]{
				{cell("A"), cell("B"), cell("C")},
				{gap, gap, gap},
				{gap, gap},
			},
		},
		{
			name: "empty input row stays empty but still advances spans",
			dims: map[string][2]int{"A": {3, 1}},
			rows: [][]string{
				{"A"},
				{},
				{"B"},
			},
			want: [][]Cell[string]{
				{cell("A")},
				{},
				{gap, cell("B")},
			},
		},
		{
			name: "empty input",
			rows: [][]string{},
			want: [][]Cell[string]{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := mustSpans(t, tt.dims)
			got := Layout(spans, tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Layout() =\n%v\nwant\n%v", got, tt.want)
			}
		})
	}
}

// Spans never duplicate an identifier: the number of present cells equals
// the number of anchors regardless of span shapes.
func TestLayoutPreservesAnchorCount(t *testing.T) {
	spans := mustSpans(t, map[string][2]int{
		"B": {2, 2},
		"H": {1, 2},
		"F": {3, 1},
	})
	rows := [][]string{
		{"A", "B", "C"},
		{"D", "E"},
		{"F", "G", "H"},
		{"I"},
	}

	anchors := 0
	for _, r := range rows {
		anchors += len(r)
	}

	present := 0
	for _, r := range Layout(spans, rows) {
		for _, c := range r {
			if c.Present {
				present++
			}
		}
	}
	if present != anchors {
		t.Errorf("present cells = %d, want %d anchors", present, anchors)
	}
}

// When no rowspan outlives the input, the output has exactly one row per
// input row.
func TestLayoutNoTrailingRowsWithoutOverhang(t *testing.T) {
	spans := mustSpans(t, map[string][2]int{"A": {2, 1}})
	rows := [][]string{
		{"A", "B"},
		{"C"},
	}
	got := Layout(spans, rows)
	if len(got) != len(rows) {
		t.Errorf("output rows = %d, want %d", len(got), len(rows))
	}
}

// Each output row ends exactly one past its highest written column.
func TestLayoutRowLengths(t *testing.T) {
	spans := mustSpans(t, map[string][2]int{"B": {3, 1}, "C": {2, 1}})
	got := Layout(spans, [][]string{{"A", "B", "C"}})

	wantLens := []int{3, 3, 2}
	if len(got) != len(wantLens) {
		t.Fatalf("output rows = %d, want %d", len(got), len(wantLens))
	}
	for i, want := range wantLens {
		if len(got[i]) != want {
			t.Errorf("row %d length = %d, want %d", i, len(got[i]), want)
		}
	}
}

// Identifier types beyond string work as long as they are comparable.
func TestLayoutIntIdentifiers(t *testing.T) {
	spans, err := NewSpans(map[int][2]int{10: {1, 2}})
	if err != nil {
		t.Fatalf("NewSpans: %v", err)
	}
	got := Layout(spans, [][]int{{10, 20}})
	want := [][]Cell[int]{{NewCell(10), {}, NewCell(20)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Layout() = %v, want %v", got, want)
	}
}

func TestCellJSON(t *testing.T) {
	occupied, err := NewCell("A").MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(occupied) != `"A"` {
		t.Errorf("occupied cell = %s, want %q", occupied, `"A"`)
	}

	empty, err := Cell[string]{}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(empty) != "null" {
		t.Errorf("empty cell = %s, want null", empty)
	}

	var c Cell[string]
	if err := c.UnmarshalJSON([]byte(`"B"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !c.Present || c.Value != "B" {
		t.Errorf("round-trip cell = %+v", c)
	}
	if err := c.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("UnmarshalJSON(null): %v", err)
	}
	if c.Present {
		t.Error("null must decode to an empty cell")
	}
}
