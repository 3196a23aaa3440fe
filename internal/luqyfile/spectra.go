package luqyfile

import (
	"log/slog"
	"math"
	"strings"

	"luqy/internal/logging"
)

// Spectra holds the numeric data block: one shared wavelength axis and one
// flux channel per measurement. Raw and dark detector counts appear only
// for single-measurement files whose rows supply a third and fourth column.
// All populated slices have equal length.
type Spectra struct {
	Wavelength []float64
	Flux       [][]float64
	Raw        [][]float64
	Dark       [][]float64
}

// ParseSpectra parses the data block after the header/data boundary. Rows
// whose first cell is not a number (footers, stray comments) are dropped
// without shifting the indices of valid rows; short rows pad their missing
// channel slots with NaN.
func ParseSpectra(lines []string, layout Layout, logger *slog.Logger) Spectra {
	if logger == nil {
		logger = logging.NewNop()
	}

	n := layout.Measurements
	sp := Spectra{Flux: make([][]float64, n)}

	start := layout.DelimIndex + 1
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start < len(lines) {
		start++ // column-header row, e.g. "Wavelength (nm)\tLum. flux ..."
	}
	if start >= len(lines) {
		return sp
	}

	for _, line := range lines[start:] {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		cells := SplitCells(line)
		wl, err := ParseFloat(cells[0])
		if err != nil {
			logger.Debug("skipping non-numeric spectral row", "row", stripped)
			continue
		}

		values := cells[1:]
		if n > 1 {
			appendSweepRow(&sp, values, n)
		} else {
			appendSingleRow(&sp, values)
		}
		sp.Wavelength = append(sp.Wavelength, wl)
	}
	return sp
}

// appendSweepRow distributes one flux cell per measurement. Missing or
// malformed cells become NaN so every channel keeps the shared length.
func appendSweepRow(sp *Spectra, values []string, n int) {
	for i := 0; i < n; i++ {
		sp.Flux[i] = append(sp.Flux[i], parseOrNaN(cellAt(values, i)))
	}
}

// appendSingleRow interprets a single-measurement row positionally: one
// value is flux alone, three or more are flux, raw, and dark. Raw and dark
// channels allocate on the first row that supplies them, backfilled with
// NaN so earlier rows stay aligned.
func appendSingleRow(sp *Spectra, values []string) {
	accepted := len(sp.Wavelength)

	sp.Flux[0] = append(sp.Flux[0], parseOrNaN(cellAt(values, 0)))

	if len(values) >= 3 && sp.Raw == nil {
		sp.Raw = [][]float64{nanSlice(accepted)}
		sp.Dark = [][]float64{nanSlice(accepted)}
	}
	if sp.Raw != nil {
		sp.Raw[0] = append(sp.Raw[0], parseOrNaN(cellAt(values, 1)))
		sp.Dark[0] = append(sp.Dark[0], parseOrNaN(cellAt(values, 2)))
	}
}

func parseOrNaN(cell string) float64 {
	if cell == "" {
		return math.NaN()
	}
	v, err := ParseFloat(cell)
	if err != nil {
		return math.NaN()
	}
	return v
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
