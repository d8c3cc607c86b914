package bench

import (
	"strconv"
	"strings"
)

const (
	labelWidth = 14
	cellWidth  = 12
)

// Render lays the reports out as a fixed-width table: one header line
// with a column per size, one line per report with the entry's time or
// speed string depending on the display mode.
func Render(sizes []int, reports []Report, display DisplayMode) string {
	var b strings.Builder

	cells := make([]string, 0, len(sizes)+1)
	cells = append(cells, Cell("cipher name", labelWidth))
	for _, s := range sizes {
		cells = append(cells, Cell(strconv.Itoa(s), cellWidth))
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteByte('\n')

	for _, r := range reports {
		cells = cells[:0]
		cells = append(cells, Cell(r.Label, labelWidth))
		for _, e := range r.Entries {
			s := e.FormattedSpeed
			if display == Time {
				s = e.FormattedTime
			}
			cells = append(cells, Cell(s, cellWidth))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Cell fits s to exactly width characters: right-padded with spaces
// when short, hard-truncated when long.
func Cell(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
