package luqyfile

import (
	"log/slog"
	"strconv"
)

// Measurement is one parsed reading: its scalar settings and results plus
// its slice of the file's shared spectra. Raw and Dark are nil when the
// file never supplied those columns.
type Measurement struct {
	Index      int
	Settings   map[SettingField]Value
	Results    map[ResultField]Value
	Wavelength []float64
	Flux       []float64
	Raw        []float64
	Dark       []float64
}

// Parse converts one file's lines into per-measurement records. Zero input
// lines yield zero measurements; structural absences (no delimiter, no time
// row, no data block) degrade to a single measurement with empty spectra.
func Parse(lines []string, logger *slog.Logger) []Measurement {
	if len(lines) == 0 {
		return nil
	}

	layout := Classify(lines)
	settings, results := Extract(lines, layout, logger)
	spectra := ParseSpectra(lines, layout, logger)

	out := make([]Measurement, layout.Measurements)
	for i := range out {
		out[i] = Measurement{
			Index:      i,
			Settings:   settings[i],
			Results:    results[i],
			Wavelength: spectra.Wavelength,
			Flux:       spectra.Flux[i],
		}
		if spectra.Raw != nil {
			out[i].Raw = spectra.Raw[i]
		}
		if spectra.Dark != nil {
			out[i].Dark = spectra.Dark[i]
		}
	}
	return out
}

// MeasurementLabels reports the measurement multiplicity a file's header
// declares, as zero-based labels, without running the full parse. It
// returns nil for single-measurement files so callers can distinguish the
// common case cheaply.
func MeasurementLabels(lines []string) []string {
	layout := Classify(lines)
	if layout.Measurements <= 1 {
		return nil
	}
	labels := make([]string, layout.Measurements)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}
