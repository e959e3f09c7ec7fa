package config

const (
	defaultScheme       = "FM"
	defaultMaxAntiferro = 3
	defaultMaxAttempts  = 100
	defaultCalculation  = CalculationBulk
	defaultTolerance    = 0.0
	defaultCutoff       = 3.0
	defaultWorkers      = 1
	defaultLogLevel     = "info"
	defaultLogFormat    = "auto"
)

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Magnetization: Magnetization{
			Scheme:       defaultScheme,
			MaxAntiferro: defaultMaxAntiferro,
			MaxAttempts:  defaultMaxAttempts,
		},
		Calculation: Calculation{
			Type: defaultCalculation,
		},
		Classification: Classification{
			Tolerance: defaultTolerance,
			Cutoff:    defaultCutoff,
			Workers:   defaultWorkers,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
