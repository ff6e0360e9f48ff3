package table

// Tracker records which columns are currently occupied by active rowspans.
//
// The tracker is unaware of multi-column spans: the layout loop calls
// [Tracker.Track] once per column a span covers. It also does not remember
// which cell owns a block, only that some cell does. State is relative to
// the current row; [Tracker.Advance] must be called exactly once after each
// fully processed row.
//
// The zero value is not usable; create trackers with [NewTracker]. A
// Tracker belongs to a single layout computation and is not safe for
// concurrent use.
type Tracker struct {
	blocked map[int]int // column index -> remaining rows, including the one being entered
}

// NewTracker creates an empty tracker with no blocked columns.
func NewTracker() *Tracker {
	return &Tracker{blocked: make(map[int]int)}
}

// Track records a rowspan anchored at col covering rowCount rows in total.
// Single-row spans never block future rows, so rowCount <= 1 is a no-op.
// An existing entry for col is overwritten; the layout loop never anchors
// two simultaneously active rowspans on the same column.
func (t *Tracker) Track(col, rowCount int) {
	if rowCount > 1 {
		t.blocked[col] = rowCount
	}
}

// Blocked reports whether col is part of an active rowspan.
func (t *Tracker) Blocked(col int) bool {
	_, ok := t.blocked[col]
	return ok
}

// Advance decrements every active block by one row, dropping blocks that
// expire. Call it once after each fully processed row, including trailing
// rows emitted after the input is exhausted.
func (t *Tracker) Advance() {
	for col, remaining := range t.blocked {
		if remaining > 1 {
			t.blocked[col] = remaining - 1
		} else {
			delete(t.blocked, col)
		}
	}
}

// MaxBlockedColumn returns the highest column index still blocked by an
// active rowspan. The second return value is false when no blocks remain.
// The layout loop uses this after the last input row to size trailing rows.
func (t *Tracker) MaxBlockedColumn() (int, bool) {
	max, found := 0, false
	for col := range t.blocked {
		if !found || col > max {
			max, found = col, true
		}
	}
	return max, found
}
