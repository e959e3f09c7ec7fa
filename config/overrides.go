package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/magcell/magnetism"
	"github.com/katalvlaran/magcell/tags"
)

// Catalog describes the value kind of every overridable key.
func Catalog() tags.Catalog {
	return tags.Catalog{
		"magnetization.scheme":        tags.Choice(magnetism.SchemeNames()...),
		"magnetization.max_antiferro": tags.Int(tags.Positive),
		"magnetization.max_attempts":  tags.Int(tags.Positive),
		"magnetization.seed":          tags.Int(tags.Unbounded),
		"calculation.type":            tags.Choice(CalculationBulk, CalculationDefect),
		"calculation.defect":          tags.String(),
		"classification.tolerance":    tags.Float(tags.NonNegative),
		"classification.cutoff":       tags.Float(tags.Positive),
		"classification.workers":      tags.Int(tags.Positive),
		"log.level":                   tags.Choice(logLevels...),
		"log.format":                  tags.Choice(logFormats...),
	}
}

// Set parses raw with the key's catalog spec and stores it. The config is
// not revalidated; call Validate after the last Set.
func (c *Config) Set(key, raw string) error {
	v, err := Catalog().Parse(key, raw)
	if err != nil {
		return fmt.Errorf("override: %w", err)
	}

	switch key {
	case "magnetization.scheme":
		c.Magnetization.Scheme = v.Str
	case "magnetization.max_antiferro":
		c.Magnetization.MaxAntiferro = int(v.Int)
	case "magnetization.max_attempts":
		c.Magnetization.MaxAttempts = int(v.Int)
	case "magnetization.seed":
		c.Magnetization.Seed = v.Int
	case "calculation.type":
		c.Calculation.Type = v.Str
	case "calculation.defect":
		c.Calculation.Defect = v.Str
	case "classification.tolerance":
		c.Classification.Tolerance = v.Float
	case "classification.cutoff":
		c.Classification.Cutoff = v.Float
	case "classification.workers":
		c.Classification.Workers = int(v.Int)
	case "log.level":
		c.Logging.Level = v.Str
	case "log.format":
		c.Logging.Format = v.Str
	}

	return nil
}

// ApplyOverrides applies "key=value" pairs in order and revalidates.
func (c *Config) ApplyOverrides(pairs []string) error {
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("override %q: want key=value: %w", pair, ErrInvalid)
		}
		if err := c.Set(strings.TrimSpace(key), raw); err != nil {
			return err
		}
	}
	c.normalize()

	return c.Validate()
}
