package prettytable

import (
	"strings"
	"unicode/utf8"
)

// columnWidths returns the widest cell of every column, counted in runes.
func columnWidths(rows [][]string) []int {
	if len(rows) == 0 {
		return []int{}
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// justify left-aligns s in a field of width runes filled with fill.
func justify(s string, width int, fill string) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(fill, pad)
}

// position classifies an index within a collection of n elements. A
// single-element collection is first, never last.
type position int

const (
	positionFirst position = iota
	positionIntermediate
	positionLast
)

func positionOf(i, n int) position {
	switch {
	case i == 0:
		return positionFirst
	case i == n-1:
		return positionLast
	default:
		return positionIntermediate
	}
}
