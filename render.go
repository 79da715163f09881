package prettytable

import (
	"io"
	"strings"
)

// borderChars names every glyph by the corner or junction it occupies:
// topLeft sits left of the first column on the first frame line.
type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

// ┏━┳┓
// ┃ ┃┃
// ┣━╋┫
// ┗━┻┛
var heavy = borderChars{
	topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
	horizontal: "━", vertical: "┃",
	topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
	cross: "╋",
}

// lineGlyphs is what a single output line is drawn with. Data lines fill
// with spaces; frame lines fill with the horizontal rule.
type lineGlyphs struct {
	left, fill, junction, right string
}

func (t *Table) render(rows [][]string, widths []int) error {
	lw := &lineWriter{w: t.out}
	for i, row := range rows {
		if t.border {
			if err := t.writeSeparator(lw, widths, positionOf(i, len(rows))); err != nil {
				return err
			}
		}
		if err := lw.writeLine(t.composeLine(row, widths, t.dataGlyphs())); err != nil {
			return err
		}
	}
	if !t.border {
		return nil
	}
	return lw.writeLine(t.composeLine(nil, widths, lineGlyphs{
		left:     heavy.bottomLeft,
		fill:     heavy.horizontal,
		junction: heavy.bottomTee,
		right:    heavy.bottomRight,
	}))
}

// writeSeparator draws the frame line that precedes a data row: the top of
// the frame for the first row, a junction line for the others.
func (t *Table) writeSeparator(lw *lineWriter, widths []int, pos position) error {
	g := lineGlyphs{fill: heavy.horizontal}
	switch pos {
	case positionFirst:
		g.left, g.junction, g.right = heavy.topLeft, heavy.topTee, heavy.topRight
	default:
		if !t.innerBorder {
			return nil
		}
		g.left, g.junction, g.right = heavy.leftTee, heavy.cross, heavy.rightTee
	}
	return lw.writeLine(t.composeLine(nil, widths, g))
}

func (t *Table) dataGlyphs() lineGlyphs {
	if !t.border {
		return lineGlyphs{fill: " "}
	}
	return lineGlyphs{
		left:     heavy.vertical,
		fill:     " ",
		junction: heavy.vertical,
		right:    heavy.vertical,
	}
}

// composeLine lays out one line: the left edge and inset, every column
// justified to its width with the gap between columns, then the inset and
// right edge. Missing cells render as fill.
func (t *Table) composeLine(cells []string, widths []int, g lineGlyphs) string {
	inset := strings.Repeat(g.fill, t.padding)
	var gap string
	if t.border && t.innerBorder {
		gap = inset + g.junction + inset
	} else {
		gap = strings.Repeat(g.fill, t.spacing)
	}

	var sb strings.Builder
	sb.WriteString(g.left)
	sb.WriteString(inset)
	for j, width := range widths {
		if positionOf(j, len(widths)) != positionFirst {
			sb.WriteString(gap)
		}
		cell := ""
		if j < len(cells) {
			cell = cells[j]
		}
		sb.WriteString(justify(cell, width, g.fill))
	}
	sb.WriteString(inset)
	sb.WriteString(g.right)
	return sb.String()
}

// lineWriter separates lines with a single line feed and never ends the
// output with one.
type lineWriter struct {
	w       io.Writer
	started bool
}

func (lw *lineWriter) writeLine(s string) error {
	if lw.started {
		s = "\n" + s
	}
	lw.started = true
	_, err := io.WriteString(lw.w, s)
	return err
}
