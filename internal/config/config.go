package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/petterw/motion/dynamics"
	"github.com/petterw/motion/rubberband"
	"github.com/petterw/motion/vector"
)

const (
	DefaultResponse = 0.5
	DefaultDamping  = 0.85
	DefaultRate     = 0.998
	DefaultFPS      = 60
	DefaultDuration = 4.0
)

type Config struct {
	Model    string  `yaml:"model"` // spring | decay | still
	Response float64 `yaml:"response"`
	Damping  float64 `yaml:"damping"`
	Rate     float64 `yaml:"rate"`
	Epsilon  float64 `yaml:"epsilon"`
	FPS      int     `yaml:"fps"`
	Duration float64 `yaml:"duration"`
	From     float64 `yaml:"from"`
	Velocity float64 `yaml:"velocity"`
	Target   float64 `yaml:"target"`
	Band     Band    `yaml:"band"`
}

type Band struct {
	Enabled bool    `yaml:"enabled"`
	Lower   float64 `yaml:"lower"`
	Upper   float64 `yaml:"upper"`
	Dim     float64 `yaml:"dim"`
	Coeff   float64 `yaml:"coeff"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "spring",
		Response: DefaultResponse,
		Damping:  DefaultDamping,
		Rate:     DefaultRate,
		Epsilon:  dynamics.DefaultEpsilon,
		FPS:      DefaultFPS,
		Duration: DefaultDuration,
		Target:   1.0,
		Band: Band{
			Lower: 0,
			Upper: 1,
			Dim:   0.1,
			Coeff: rubberband.DefaultCoeff,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the physical parameters without constructing a model,
// returning the dynamics sentinel errors the constructors would panic with.
func (c *Config) Validate() error {
	switch c.Model {
	case "spring":
		if c.Response <= 0 {
			return fmt.Errorf("config: %w (got %g)", dynamics.ErrResponseRange, c.Response)
		}
		if c.Damping <= 0 || c.Damping > 1 {
			return fmt.Errorf("config: %w (got %g)", dynamics.ErrDampingRange, c.Damping)
		}
	case "decay":
		if c.Rate <= 0 || c.Rate >= 1 {
			return fmt.Errorf("config: %w (got %g)", dynamics.ErrDecayRange, c.Rate)
		}
	case "still":
	default:
		return fmt.Errorf("config: unknown model %q", c.Model)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %g", c.Duration)
	}
	if c.Band.Enabled {
		if c.Band.Dim <= 0 {
			return fmt.Errorf("config: band dim must be positive, got %g", c.Band.Dim)
		}
		if c.Band.Coeff <= 0 {
			return fmt.Errorf("config: band coeff must be positive, got %g", c.Band.Coeff)
		}
		if c.Band.Upper < c.Band.Lower {
			return fmt.Errorf("config: band upper %g below lower %g", c.Band.Upper, c.Band.Lower)
		}
	}
	return nil
}

// NewModel builds the configured dynamics model for a scalar track.
func (c *Config) NewModel() (dynamics.Model[vector.Scalar], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Model {
	case "spring":
		s := dynamics.NewSpring[vector.Scalar](c.Response, c.Damping)
		if c.Epsilon > 0 {
			s.Epsilon = c.Epsilon
		}
		return s, nil
	case "decay":
		d := dynamics.NewDecay[vector.Scalar](c.Rate)
		if c.Epsilon > 0 {
			d.Epsilon = c.Epsilon
		}
		return d, nil
	default:
		return dynamics.Still[vector.Scalar]{}, nil
	}
}

// NewBand builds the configured rubber band, or reports that banding is
// disabled.
func (c *Config) NewBand() (rubberband.Band[vector.Scalar], bool) {
	if !c.Band.Enabled {
		return rubberband.Band[vector.Scalar]{}, false
	}
	b := rubberband.New(vector.Scalar(c.Band.Lower), vector.Scalar(c.Band.Upper), c.Band.Dim)
	if c.Band.Coeff > 0 {
		b.Coeff = c.Band.Coeff
	}
	return b, true
}
