package config

import (
	"fmt"
	"math"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"auto", "console", "json"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMagnetization(); err != nil {
		return err
	}
	if err := c.validateCalculation(); err != nil {
		return err
	}
	if err := c.validateClassification(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateMagnetization() error {
	if _, err := c.Scheme(); err != nil {
		return fmt.Errorf("magnetization.scheme: %w: %w", ErrInvalid, err)
	}
	if c.Magnetization.MaxAntiferro < 1 {
		return fmt.Errorf("magnetization.max_antiferro must be > 0, got %d: %w", c.Magnetization.MaxAntiferro, ErrInvalid)
	}
	if c.Magnetization.MaxAttempts < 1 {
		return fmt.Errorf("magnetization.max_attempts must be > 0, got %d: %w", c.Magnetization.MaxAttempts, ErrInvalid)
	}

	return nil
}

func (c *Config) validateCalculation() error {
	switch c.Calculation.Type {
	case CalculationBulk:
	case CalculationDefect:
		if c.Calculation.Defect == "" {
			return fmt.Errorf("calculation.defect is required for defect calculations: %w", ErrInvalid)
		}
	default:
		return fmt.Errorf("calculation.type %q (allowed bulk, defect): %w", c.Calculation.Type, ErrInvalid)
	}

	return nil
}

func (c *Config) validateClassification() error {
	tol := c.Classification.Tolerance
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("classification.tolerance must be a finite value >= 0, got %g: %w", tol, ErrInvalid)
	}
	cut := c.Classification.Cutoff
	if !(cut > 0) || math.IsInf(cut, 0) {
		return fmt.Errorf("classification.cutoff must be a finite value > 0, got %g: %w", cut, ErrInvalid)
	}
	if c.Classification.Workers < 1 {
		return fmt.Errorf("classification.workers must be > 0, got %d: %w", c.Classification.Workers, ErrInvalid)
	}

	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("log.level %q (allowed %v): %w", c.Logging.Level, logLevels, ErrInvalid)
	}
	if !slices.Contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("log.format %q (allowed %v): %w", c.Logging.Format, logFormats, ErrInvalid)
	}

	return nil
}
