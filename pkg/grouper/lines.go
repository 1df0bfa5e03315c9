package grouper

import "sort"

// LineIndex resolves byte offsets to line numbers.
type LineIndex interface {
	// Line returns the zero-based line of offset.
	Line(offset int) int
	// Position returns the one-based line and byte column of offset.
	Position(offset int) (line, column int)
}

// lineTable is a LineIndex backed by the offsets of every line start.
type lineTable []int

// NewLineIndex builds a LineIndex for src.
func NewLineIndex(src []byte) LineIndex {
	starts := lineTable{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (t lineTable) Line(offset int) int {
	return sort.SearchInts(t, offset+1) - 1
}

func (t lineTable) Position(offset int) (line, column int) {
	l := t.Line(offset)
	return l + 1, offset - t[l] + 1
}
