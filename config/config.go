package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magcell/magnetism"
)

var (
	// ErrInvalid indicates a configuration value failed validation.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownFormat indicates a file extension other than .yml, .yaml or .toml.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Calculation types.
const (
	CalculationBulk   = "bulk"
	CalculationDefect = "defect"
)

// Format selects the decoder.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Magnetization contains the magnetic enumeration policy.
type Magnetization struct {
	// Scheme is one of preserve, FM, AFM, FM+AFM.
	Scheme string `yaml:"scheme" toml:"scheme"`
	// MaxAntiferro bounds the number of AFM variants per structure.
	MaxAntiferro int `yaml:"max_antiferro" toml:"max_antiferro"`
	// MaxAttempts is the random-search budget per structure.
	MaxAttempts int `yaml:"max_attempts" toml:"max_attempts"`
	// Seed fixes the RNG; 0 seeds from the clock.
	Seed int64 `yaml:"seed" toml:"seed"`
}

// Calculation selects what happens to the magnetic variants.
type Calculation struct {
	// Type is bulk (pass through) or defect (rescale and classify).
	Type string `yaml:"type" toml:"type"`
	// Defect is the element to be inserted; required for defect runs.
	Defect string `yaml:"defect" toml:"defect"`
}

// Classification contains coordination-environment settings.
type Classification struct {
	// Tolerance is the Euclidean signature tolerance (>= 0).
	Tolerance float64 `yaml:"tolerance" toml:"tolerance"`
	// Cutoff is the neighbour radius in Å for the cutoff finder.
	Cutoff float64 `yaml:"cutoff" toml:"cutoff"`
	// Workers bounds concurrent signature computation.
	Workers int `yaml:"workers" toml:"workers"`
}

// Logging contains log output settings.
type Logging struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Config encapsulates all workflow configuration.
type Config struct {
	Magnetization  Magnetization  `yaml:"magnetization" toml:"magnetization"`
	Calculation    Calculation    `yaml:"calculation" toml:"calculation"`
	Classification Classification `yaml:"classification" toml:"classification"`
	Logging        Logging        `yaml:"log" toml:"log"`
}

// Scheme returns the parsed magnetization scheme.
func (c *Config) Scheme() (magnetism.Scheme, error) {
	return magnetism.ParseScheme(c.Magnetization.Scheme)
}

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
}

// Load reads, normalises and validates the configuration at path. An empty
// path yields the validated defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		if err := cfg.finish(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	return Decode(file, format)
}

// Decode reads a configuration document in the given format over the
// defaults, then normalises and validates it. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) finish() error {
	c.normalize()

	return c.Validate()
}
