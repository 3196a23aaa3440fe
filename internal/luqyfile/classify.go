package luqyfile

import (
	"regexp"
	"strings"

	"luqy/internal/headerkey"
)

// Layout describes where a file's header ends and how many measurements
// share it. Produced by Classify and consumed by Extract and ParseSpectra.
type Layout struct {
	// DelimIndex is the index of the all-dash boundary line, or len(lines)
	// when the file has no spectral section.
	DelimIndex int
	// TimeRowIndex is the index of the time/identifier row, -1 when absent.
	TimeRowIndex int
	// Times holds the raw per-measurement time values, already expanded
	// against a shared date prefix for old-style rows.
	Times []string
	// Measurements is the per-file measurement count, always >= 1.
	Measurements int
}

// delimiterLine matches the header/data boundary: dashes, optionally with
// interleaved whitespace.
var delimiterLine = regexp.MustCompile(`^-[-\s]*$`)

// Classify locates the header/data boundary, detects the time row, and
// derives the measurement count for one file.
func Classify(lines []string) Layout {
	layout := Layout{DelimIndex: len(lines), TimeRowIndex: -1, Measurements: 1}
	for i, line := range lines {
		if delimiterLine.MatchString(strings.TrimSpace(line)) {
			layout.DelimIndex = i
			break
		}
	}

	header := lines[:layout.DelimIndex]
	if times, idx := findTimeRow(header); len(times) > 0 {
		layout.Times = times
		layout.TimeRowIndex = idx
		layout.Measurements = len(times)
		return layout
	}

	layout.Measurements = maxValueCells(header)
	return layout
}

// findTimeRow scans header lines for the first time/identifier row and
// returns its expanded values. A row qualifies when its first cell reads
// "time" (canonicalized, case-insensitive) or contains a date-like "/".
func findTimeRow(header []string) ([]string, int) {
	for i, line := range header {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if strings.Contains(line, "\t") {
			parts := strings.Split(line, "\t")
			first := strings.ToLower(headerkey.Canonicalize(parts[0]))
			if len(parts) > 2 && (first == "time" || strings.Contains(parts[0], "/")) {
				values := parts
				if first == "time" {
					values = parts[1:]
				}
				return expandTimes(values), i
			}
			if len(parts) == 2 && first == "time" {
				return []string{strings.TrimSpace(parts[1])}, i
			}
			continue
		}
		// A lone untabbed line starting with a date is a one-measurement
		// time row in the oldest exports.
		if fields := strings.Fields(stripped); len(fields) > 0 && strings.Contains(fields[0], "/") {
			return []string{stripped}, i
		}
	}
	return nil, -1
}

// expandTimes resolves a time row's value cells. Old-style rows carry a
// bare date in the first cell shared by the remaining clock-only entries;
// entries that already hold both "/" and ":" are complete and kept as-is.
func expandTimes(values []string) []string {
	if len(values) > 1 && strings.Contains(values[0], "/") && !strings.Contains(values[0], ":") {
		prefix := strings.TrimSpace(values[0])
		times := make([]string, 0, len(values)-1)
		for _, v := range values[1:] {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if strings.Contains(v, "/") && strings.Contains(v, ":") {
				times = append(times, v)
			} else {
				times = append(times, prefix+" "+v)
			}
		}
		return times
	}
	times := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			times = append(times, v)
		}
	}
	return times
}

// maxValueCells infers the measurement count for files without a time row:
// the widest recognized setting/result row wins, defaulting to 1.
func maxValueCells(header []string) int {
	widest := 1
	for _, line := range header {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := SplitCells(line)
		if len(cells) < 2 {
			continue
		}
		if !knownHeaderKey(headerkey.Canonicalize(cells[0])) {
			continue
		}
		count := 0
		for _, c := range cells[1:] {
			if strings.TrimSpace(c) != "" {
				count++
			}
		}
		if count > widest {
			widest = count
		}
	}
	return widest
}
