package serialport

import (
	"flag"
	"time"
)

// Config defines the serial link settings.
type Config struct {
	Path        string
	BaudRate    int
	ReadTimeout time.Duration
	ResetOnOpen bool
}

var defaultConfig = Config{
	BaudRate: DefaultBaudRate,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Path, "port", defaultConfig.Path, "Serial device path (e.g. /dev/ttyUSB0).")
	flag.IntVar(&defaultConfig.BaudRate, "baud", defaultConfig.BaudRate, "Serial baud rate.")
	flag.DurationVar(&defaultConfig.ReadTimeout, "read-timeout", defaultConfig.ReadTimeout, "Bound blocking reads, 0 to block forever.")
	flag.BoolVar(&defaultConfig.ResetOnOpen, "reset-link", defaultConfig.ResetOnOpen, "Reset the link module after opening the port.")
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Open opens the configured port.
func (c *Config) Open() (*Port, error) {
	port, err := Open(c.Path, c.BaudRate)
	if err != nil {
		return nil, err
	}
	if c.ResetOnOpen {
		if err = port.Reset(); err != nil {
			port.Close()
			return nil, err
		}
	}
	if c.ReadTimeout > 0 {
		if err = port.SetReadTimeout(c.ReadTimeout); err != nil {
			port.Close()
			return nil, err
		}
	}
	return port, nil
}
