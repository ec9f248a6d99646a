package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const gap = 2

// Format returns the rows padded according to the widest entry in each column.
// Widths are measured in terminal cells, so wide glyphs and accented labels
// line up. Rows may be ragged; missing cells are treated as empty.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatWidth(rows, alignments, 0)
}

// FormatWidth behaves like Format but widens the gap before the last column so
// that every row spans total cells. A total narrower than the natural width is
// ignored.
func FormatWidth(rows [][]string, alignments []Alignment, total int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	natural := 0
	for _, w := range widths {
		natural += w
	}
	natural += gap * (colCount - 1)
	extra := 0
	if total > natural && colCount > 1 {
		extra = total - natural
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				spaces := gap
				if c == colCount-1 {
					spaces += extra
				}
				b.WriteString(strings.Repeat(" ", spaces))
			}
			pad := widths[c] - runewidth.StringWidth(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < colCount-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[i] = b.String()
	}
	return out
}
