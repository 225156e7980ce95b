package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/iburimskiy/analog-clock/internal/face"
)

// Prefix of every environment variable read by Load.
const Prefix = "CLOCK"

// MinSize is the smallest surface edge that fits the dial and its marks.
const MinSize = 2 * (face.FaceRadius + face.HourMarkDiameter)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width    int           `envconfig:"WIDTH" default:"400"`
	Height   int           `envconfig:"HEIGHT" default:"400"`
	Interval time.Duration `envconfig:"INTERVAL" default:"100ms"`
	Title    string        `envconfig:"TITLE" default:"Analog Clock"`

	TickSound bool    `envconfig:"TICK_SOUND" default:"false"`
	Volume    float64 `envconfig:"VOLUME" default:"0.3"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from CLOCK_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "process env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Width < MinSize || c.Height < MinSize {
		return errors.Wrapf(ErrInvalid, "surface %dx%d is smaller than %dx%d", c.Width, c.Height, MinSize, MinSize)
	}
	if c.Interval <= 0 {
		return errors.Wrapf(ErrInvalid, "interval %s must be positive", c.Interval)
	}
	return nil
}
