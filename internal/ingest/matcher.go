package ingest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"luqy/internal/luqyfile"
)

// mainFilePattern gates which filenames are considered instrument exports.
var mainFilePattern = regexp.MustCompile(`.*\.(?:txt|csv|tsv)$`)

// Matches reports whether filename looks like a LuQY Pro export.
func Matches(filename string) bool {
	return mainFilePattern.MatchString(filepath.Base(filename))
}

// readHead returns up to limit leading lines of the file at path.
func readHead(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	lines := make([]string, 0, limit)
	sc := bufio.NewScanner(f)
	for len(lines) < limit && sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %q: %w", path, err)
	}
	return lines, nil
}

// ProbeChildren inspects only the head of a file and reports one label per
// measurement when the file packs more than one, nil otherwise. This is the
// multiplicity signal: orchestrators call it before the full parse to
// pre-allocate per-measurement output slots.
func (s *Service) ProbeChildren(path string) ([]string, error) {
	lines, err := readHead(path, s.probeLines)
	if err != nil {
		return nil, err
	}
	return luqyfile.MeasurementLabels(lines), nil
}
