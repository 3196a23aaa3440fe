// Package logging assembles the structured slog loggers used across the
// luqy CLI and parsing engine.
//
// It centralizes level and output plumbing (console text or JSON, with an
// optional log-file tee) and provides a no-op logger for tests and for core
// code paths that run without a caller-supplied logger. Prefer these
// constructors over hand-rolled slog setup so every component emits the
// same shape of log data.
package logging
