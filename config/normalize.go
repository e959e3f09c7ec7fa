package config

import "strings"

func (c *Config) normalize() {
	c.Magnetization.Scheme = strings.TrimSpace(c.Magnetization.Scheme)
	c.Calculation.Type = strings.ToLower(strings.TrimSpace(c.Calculation.Type))
	c.Calculation.Defect = strings.TrimSpace(c.Calculation.Defect)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
