package luqyfile

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order when normalizing a raw time cell:
// 12-hour with AM/PM first (the instrument's default locale), then 24-hour,
// then already-ISO forms.
var timestampLayouts = []string{
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeTimestamp converts a raw time cell to YYYY-MM-DDTHH:MM:SS form.
// A value no layout can parse is returned unchanged rather than dropped.
func NormalizeTimestamp(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02T15:04:05")
		}
	}
	return raw
}
