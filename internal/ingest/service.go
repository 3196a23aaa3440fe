package ingest

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"luqy/internal/config"
	"luqy/internal/logging"
	"luqy/internal/luqyfile"
	"luqy/internal/schema"
)

// Service ingests export files into schema records.
type Service struct {
	logger         *slog.Logger
	probeLines     int
	legacyFallback bool
}

// NewService builds an ingest service from application config. Both
// arguments may be nil, in which case defaults apply and logs are dropped.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	settings := config.Default().Ingest
	if cfg != nil {
		settings = cfg.Ingest
	}
	return &Service{
		logger:         logger,
		probeLines:     settings.ProbeLines,
		legacyFallback: settings.LegacyCharsetFallback,
	}
}

// Ingest reads, parses, and assembles one export file. Every invocation
// tags its log lines with a fresh ingest ID so concurrent runs stay
// distinguishable. An empty file yields zero records and no error.
func (s *Service) Ingest(ctx context.Context, path string) ([]*schema.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := s.logger.With(
		slog.String("file", filepath.Base(path)),
		slog.String("ingest_id", uuid.NewString()),
	)

	lines, err := ReadLines(path, s.legacyFallback)
	if err != nil {
		logger.Error("failed to read export file", "error", err)
		return nil, err
	}
	if len(lines) == 0 {
		logger.Warn("empty export file")
		return nil, nil
	}

	measurements := luqyfile.Parse(lines, logger)
	records := schema.Build(measurements, logger)
	logger.Info("parsed export file",
		"measurements", len(records),
		"spectral_rows", spectralRows(measurements),
	)
	return records, nil
}

func spectralRows(measurements []luqyfile.Measurement) int {
	if len(measurements) == 0 {
		return 0
	}
	return len(measurements[0].Wavelength)
}
