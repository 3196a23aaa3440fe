package ingest

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadLines reads one export file and returns its decoded lines. Files that
// are not valid UTF-8 decode as Windows-1252 when the fallback is enabled;
// the "Â²" mojibake left behind by earlier double encodings is repaired
// either way. An empty file yields zero lines and no error.
func ReadLines(path string, legacyFallback bool) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	text := decode(raw, legacyFallback)
	text = strings.ReplaceAll(text, "Â²", "²")
	if text == "" {
		return nil, nil
	}
	return splitLines(text), nil
}

func decode(raw []byte, legacyFallback bool) string {
	if !legacyFallback || utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// splitLines splits on newlines without introducing a phantom trailing
// line, and strips carriage returns from CRLF files.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
