package config

import "fmt"

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q", c.Output.Format)
	}
	return nil
}
