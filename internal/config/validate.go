package config

import (
	"errors"
	"fmt"
)

const (
	maxIndent         = 8
	maxCatalogWorkers = 64
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Indent < 0 || c.Output.Indent > maxIndent {
		return fmt.Errorf("output.indent must be between 0 and %d", maxIndent)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Workers <= 0 || c.Catalog.Workers > maxCatalogWorkers {
		return fmt.Errorf("catalog.workers must be between 1 and %d", maxCatalogWorkers)
	}
	if c.Catalog.SearchLimit <= 0 {
		return errors.New("catalog.search_limit must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
