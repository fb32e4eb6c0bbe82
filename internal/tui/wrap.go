package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// clipLines expands tabs and truncates every line to width display cells.
func clipLines(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
		if width > 0 && runewidth.StringWidth(line) > width {
			line = runewidth.Truncate(line, width, "…")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
