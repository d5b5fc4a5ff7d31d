package core

// RowSource supplies the current number of items per row.
// *LayoutEstimator satisfies it.
type RowSource interface {
	ItemsPerRow() int
}

// RowCount is a fixed RowSource, handy when the row width is already known.
type RowCount int

func (r RowCount) ItemsPerRow() int { return int(r) }

const noActive = -1

// Navigator owns the active index of a grid and moves it on directional input.
// It never fails: invalid moves are clamped or ignored.
type Navigator struct {
	count  int
	active int
	rows   RowSource
}

// NewNavigator starts at index 0, or with no active item when count is 0.
func NewNavigator(count int, rows RowSource) *Navigator {
	if count < 0 {
		count = 0
	}
	n := &Navigator{count: count, active: 0, rows: rows}
	if count == 0 {
		n.active = noActive
	}
	return n
}

// Active returns the active index. ok is false when there is no active item.
func (n *Navigator) Active() (index int, ok bool) {
	if !n.inRange() {
		return 0, false
	}
	return n.active, true
}

func (n *Navigator) inRange() bool {
	return n.active >= 0 && n.active < n.count
}

func (n *Navigator) ItemCount() int { return n.count }

func (n *Navigator) perRow() int {
	if n.rows == nil {
		return 0
	}
	return n.rows.ItemsPerRow()
}

// Move applies one directional input and reports whether the index changed.
func (n *Navigator) Move(dir Direction) bool {
	if dir == DirNone || !n.inRange() {
		return false
	}
	next := Next(n.active, dir, n.perRow(), n.count)
	if next == n.active {
		return false
	}
	n.active = next
	return true
}

// HandleKey routes a key name through DirectionForKey and Move.
func (n *Navigator) HandleKey(key string) bool {
	return n.Move(DirectionForKey(key))
}

// SetItemCount records a new item count. When the active item no longer
// exists the index steps back by exactly one. Callers are expected to change
// the count by one item at a time; larger drops can leave the index past the
// end, which Active reports as no active item.
func (n *Navigator) SetItemCount(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	if n.active > count-1 {
		n.active--
	}
}

// Reset puts the active index back on the first item. The renderer calls it
// when items reappear after the grid was emptied.
func (n *Navigator) Reset() {
	if n.count == 0 {
		n.active = noActive
		return
	}
	n.active = 0
}
