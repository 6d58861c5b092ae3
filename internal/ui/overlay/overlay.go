// Package overlay draws small boxes on top of a rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, row y.
// Box cells replace base cells; everything else is kept. Both strings may
// carry ANSI styling. Rows or columns outside base are dropped.
func Place(base, box string, x, y int) string {
	if box == "" || x < 0 || y < 0 {
		return base
	}
	baseLines := strings.Split(base, "\n")

	for i, boxLine := range strings.Split(box, "\n") {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		baseLine := baseLines[row]
		baseWidth := ansi.StringWidth(baseLine)
		if x >= baseWidth {
			continue
		}

		boxWidth := min(ansi.StringWidth(boxLine), baseWidth-x)
		end := x + boxWidth

		// base[0:x] + box + base[end:]
		baseLines[row] = ansi.Cut(baseLine, 0, x) +
			ansi.Cut(boxLine, 0, boxWidth) +
			ansi.Cut(baseLine, end, baseWidth)
	}

	return strings.Join(baseLines, "\n")
}
