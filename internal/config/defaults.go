package config

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultProbeLines    = 50
	defaultOutputFormat  = "table"
	defaultLegacyCharset = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Ingest: Ingest{
			ProbeLines:            defaultProbeLines,
			LegacyCharsetFallback: defaultLegacyCharset,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
