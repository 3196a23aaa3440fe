package luqyfile

import (
	"log/slog"
	"strings"

	"luqy/internal/headerkey"
	"luqy/internal/logging"
)

// Extract builds per-measurement settings and results maps from the header
// block. Every returned slice has exactly layout.Measurements entries; rows
// shorter than the measurement count pad their trailing slots with missing
// values, and cell-level failures never abort the row or the file.
func Extract(lines []string, layout Layout, logger *slog.Logger) ([]map[SettingField]Value, []map[ResultField]Value) {
	if logger == nil {
		logger = logging.NewNop()
	}

	n := layout.Measurements
	settings := make([]map[SettingField]Value, n)
	results := make([]map[ResultField]Value, n)
	for i := range settings {
		settings[i] = make(map[SettingField]Value)
		results[i] = make(map[ResultField]Value)
	}

	for idx, line := range lines[:layout.DelimIndex] {
		if idx == layout.TimeRowIndex || strings.TrimSpace(line) == "" {
			continue
		}
		cells := SplitCells(line)
		if len(cells) < 2 {
			continue
		}
		key := headerkey.Canonicalize(cells[0])
		values := cells[1:]

		if field, ok := LookupSetting(key); ok {
			for i := 0; i < n; i++ {
				settings[i][field] = settingValue(field, key, cellAt(values, i), logger)
			}
			continue
		}
		if field, ok := LookupResult(key); ok {
			for i := 0; i < n; i++ {
				results[i][field] = resultValue(key, cellAt(values, i), logger)
			}
			continue
		}
		logger.Debug("unrecognized header key", "key", key)
	}

	if layout.TimeRowIndex >= 0 {
		for i := 0; i < n; i++ {
			if i < len(layout.Times) && strings.TrimSpace(layout.Times[i]) != "" {
				settings[i][SettingTimestamp] = StringValue(NormalizeTimestamp(layout.Times[i]))
			} else {
				settings[i][SettingTimestamp] = Missing()
			}
		}
	}

	return settings, results
}

// settingValue converts one header cell for a setting field. Categorical
// fields keep the raw trimmed string; numeric fields accept decimal comma
// or dot, with the suns header scaled to mW/cm^2.
func settingValue(field SettingField, key, cell string, logger *slog.Logger) Value {
	if cell == "" {
		return Missing()
	}
	if field.Categorical() {
		return StringValue(cell)
	}
	v, err := ParseFloat(cell)
	if err != nil {
		logger.Debug("could not convert setting to float", "key", key, "value", cell)
		return Missing()
	}
	if key == sunsKey {
		v *= 100.0
	}
	return FloatValue(v)
}

// resultValue converts one header cell for a result field. All result
// fields are numeric.
func resultValue(key, cell string, logger *slog.Logger) Value {
	if cell == "" {
		return Missing()
	}
	v, err := ParseFloat(cell)
	if err != nil {
		logger.Debug("could not convert result to float", "key", key, "value", cell)
		return Missing()
	}
	return FloatValue(v)
}
