package luqyfile

import (
	"strconv"
	"strings"
)

// SplitCells splits one line into cells. Lines containing a tab split on
// tabs (preserving empty cells, which mark skipped measurement slots);
// everything else splits on whitespace runs.
func SplitCells(line string) []string {
	if strings.Contains(line, "\t") {
		return strings.Split(line, "\t")
	}
	return strings.Fields(line)
}

// ParseFloat parses a numeric cell accepting either decimal comma or dot.
func ParseFloat(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	return strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64)
}

// cellAt returns the trimmed cell for a measurement slot, or "" when the
// row is too short to supply it.
func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}
