package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// paintAt composites overlay lines onto canvas with the top-left corner at
// cell (x, y). Cells outside the canvas are clipped. Leading and trailing
// blanks of each overlay line are transparent so the canvas shows through.
func paintAt(canvas, overlay []string, x, y, width int) {
	for i, line := range overlay {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		start, end, ok := segmentBounds(line)
		if !ok {
			continue
		}
		absStart, absEnd := x+start, x+end
		if absStart < 0 {
			start -= absStart
			absStart = 0
		}
		if absEnd > width {
			end -= absEnd - width
			absEnd = width
		}
		if absStart >= absEnd {
			continue
		}
		segment := ansi.Truncate(dropColumns(line, start), end-start, "")
		target := padRightANSI(canvas[row], width)
		left := ansi.Truncate(target, absStart, "")
		right := dropColumns(target, absEnd)
		canvas[row] = left + segment + right
	}
}

// segmentBounds returns the column span between the first and last non-blank
// cell of line.
func segmentBounds(line string) (start, end int, ok bool) {
	plain := ansi.Strip(line)
	trimmed := strings.TrimRight(plain, " ")
	if strings.TrimSpace(trimmed) == "" {
		return 0, 0, false
	}
	start = len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	end = ansi.StringWidth(trimmed)
	return start, end, start < end
}

// fitBlock pads or clips s to exactly width x height cells.
func fitBlock(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func blankCanvas(width, height int) []string {
	out := make([]string, max(0, height))
	row := strings.Repeat(" ", max(0, width))
	for i := range out {
		out[i] = row
	}
	return out
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
