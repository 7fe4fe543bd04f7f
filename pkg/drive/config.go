package drive

import "flag"

// Config defines the configurable mapping parameters.
type Config struct {
	Threshold float64
	Duty      uint
}

var defaultConfig = Config{
	Threshold: float64(DefaultThreshold),
	Duty:      uint(DefaultDuty),
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.Threshold, "threshold", defaultConfig.Threshold, "Tilt threshold for directional commands.")
	flag.UintVar(&defaultConfig.Duty, "duty", defaultConfig.Duty, "PWM duty for directional commands.")
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewMapper creates a Mapper using the config.
func (c *Config) NewMapper() *Mapper {
	return &Mapper{Threshold: float32(c.Threshold), Duty: uint16(c.Duty)}
}
