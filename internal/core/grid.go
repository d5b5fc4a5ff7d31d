package core

// Direction is a single directional input on the grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionForKey maps a key name to a direction.
// Both DOM-style names ("ArrowUp") and terminal names ("up") are accepted.
// Any other key returns DirNone.
func DirectionForKey(key string) Direction {
	switch key {
	case "ArrowUp", "up":
		return DirUp
	case "ArrowDown", "down":
		return DirDown
	case "ArrowLeft", "left":
		return DirLeft
	case "ArrowRight", "right":
		return DirRight
	default:
		return DirNone
	}
}

// LastRowStart returns the index of the first item in the row holding the
// highest-indexed item. Returns 0 when perRow or count is not positive.
func LastRowStart(perRow, count int) int {
	if perRow <= 0 || count <= 0 {
		return 0
	}
	return ((count - 1) / perRow) * perRow
}

// IsInLastRow reports whether index sits in the same row as the last item.
// With no known row width nothing is considered to be in the last row.
func IsInLastRow(index, perRow, count int) bool {
	if perRow <= 0 || count <= 0 {
		return false
	}
	return index >= LastRowStart(perRow, count)
}

// MoveUp goes one row back. Row 0 stays put.
func MoveUp(index, perRow int) int {
	if perRow <= 0 {
		return index
	}
	next := index - perRow
	if next < 0 {
		return index
	}
	return next
}

// MoveDown goes one row forward. Every member of the last row stays put,
// even when the last row is short, and so does any move past count-1.
func MoveDown(index, perRow, count int) int {
	if perRow <= 0 {
		return index
	}
	next := index + perRow
	if IsInLastRow(index, perRow, count) || next > count-1 {
		return index
	}
	return next
}

func MoveLeft(index int) int {
	return max(index-1, 0)
}

func MoveRight(index, count int) int {
	return min(index+1, count-1)
}

// Next computes the index after a single directional input.
func Next(index int, dir Direction, perRow, count int) int {
	switch dir {
	case DirUp:
		return MoveUp(index, perRow)
	case DirDown:
		return MoveDown(index, perRow, count)
	case DirLeft:
		return MoveLeft(index)
	case DirRight:
		return MoveRight(index, count)
	default:
		return index
	}
}
