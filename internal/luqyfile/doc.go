// Package luqyfile parses LuQY Pro photoluminescence export files into
// structured per-measurement records.
//
// A file is a block of tab- or whitespace-delimited header rows (scalar
// settings and derived results, one value column per measurement), a
// delimiter line of dashes, and a numeric spectral table sharing one
// wavelength axis across all measurements. Single-measurement files carry
// four spectral columns (wavelength, flux, raw counts, dark counts);
// multi-measurement sweep files carry one flux column per measurement.
//
// The package is deliberately forgiving: unparseable cells, unknown header
// keys, and short rows degrade to missing values with debug logs, so a
// single bad cell never discards an otherwise valid file. Parsing is a pure
// transformation over the input lines; nothing is retained across calls.
package luqyfile
