package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// InstrumentConfig holds the transducer mounting angles of the profiler
// head, in degrees from vertical with the vehicle level.
type InstrumentConfig struct {
	ForeAftAngleDeg       float64 `yaml:"fore_aft_angle_deg"`       // e.g. 47.5
	PortStarboardAngleDeg float64 `yaml:"port_starboard_angle_deg"` // e.g. 25
}

// AttitudeConfig holds the default vehicle attitude used when the CLI
// supplies none. Pitch is nose-up positive, roll starboard-down positive.
type AttitudeConfig struct {
	PitchDeg float64 `yaml:"pitch_deg"`
	RollDeg  float64 `yaml:"roll_deg"`
}

// SweepConfig describes the pitch range scanned in sweep and balance modes.
type SweepConfig struct {
	FromDeg float64 `yaml:"from_deg"`
	ToDeg   float64 `yaml:"to_deg"`
	Samples int     `yaml:"samples"`
}

// DefaultsConfig contains generic parameters (output, verbosity).
type DefaultsConfig struct {
	DebugLevel   int    `yaml:"debug_level"`   // debug level 0-3 (0=off)
	OutputFormat string `yaml:"output_format"` // "text" or "csv"
}

// Config aggregates all application configuration.
type Config struct {
	Instrument InstrumentConfig `yaml:"instrument"`
	Attitude   AttitudeConfig   `yaml:"attitude"`
	Sweep      SweepConfig      `yaml:"sweep"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
}

// Default returns the built-in configuration: the standard 47.5/25 head,
// level attitude, and a -30..30 degree pitch sweep at half-degree steps.
func Default() *Config {
	return &Config{
		Instrument: InstrumentConfig{
			ForeAftAngleDeg:       47.5,
			PortStarboardAngleDeg: 25,
		},
		Sweep: SweepConfig{
			FromDeg: -30,
			ToDeg:   30,
			Samples: 121,
		},
		Defaults: DefaultsConfig{
			OutputFormat: "text",
		},
	}
}

// Load reads a YAML file and returns the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate fills in defaults for omitted values and rejects values that
// cannot describe a physical head or a usable sweep.
func (c *Config) validate() error {
	def := Default()

	if c.Instrument.ForeAftAngleDeg == 0 {
		c.Instrument.ForeAftAngleDeg = def.Instrument.ForeAftAngleDeg
	}
	if c.Instrument.PortStarboardAngleDeg == 0 {
		c.Instrument.PortStarboardAngleDeg = def.Instrument.PortStarboardAngleDeg
	}
	if err := validMountingAngle("fore_aft_angle_deg", c.Instrument.ForeAftAngleDeg); err != nil {
		return err
	}
	if err := validMountingAngle("port_starboard_angle_deg", c.Instrument.PortStarboardAngleDeg); err != nil {
		return err
	}

	if !isFinite(c.Attitude.PitchDeg) || !isFinite(c.Attitude.RollDeg) {
		return fmt.Errorf("attitude angles must be finite, got pitch=%g roll=%g",
			c.Attitude.PitchDeg, c.Attitude.RollDeg)
	}

	if c.Sweep.FromDeg == 0 && c.Sweep.ToDeg == 0 {
		c.Sweep.FromDeg = def.Sweep.FromDeg
		c.Sweep.ToDeg = def.Sweep.ToDeg
	}
	if !isFinite(c.Sweep.FromDeg) || !isFinite(c.Sweep.ToDeg) {
		return fmt.Errorf("sweep bounds must be finite, got from=%g to=%g",
			c.Sweep.FromDeg, c.Sweep.ToDeg)
	}
	if c.Sweep.FromDeg > c.Sweep.ToDeg {
		return fmt.Errorf("sweep from_deg %g is beyond to_deg %g", c.Sweep.FromDeg, c.Sweep.ToDeg)
	}
	if c.Sweep.Samples == 0 {
		c.Sweep.Samples = def.Sweep.Samples
	}
	if c.Sweep.Samples < 2 {
		return fmt.Errorf("sweep samples must be >= 2, got %d", c.Sweep.Samples)
	}

	if c.Defaults.OutputFormat == "" {
		c.Defaults.OutputFormat = def.Defaults.OutputFormat
	}
	if c.Defaults.OutputFormat != "text" && c.Defaults.OutputFormat != "csv" {
		return fmt.Errorf("output_format must be \"text\" or \"csv\", got %q", c.Defaults.OutputFormat)
	}
	if c.Defaults.DebugLevel < 0 || c.Defaults.DebugLevel > 3 {
		return fmt.Errorf("debug_level must be between 0 and 3, got %d", c.Defaults.DebugLevel)
	}

	return nil
}

func validMountingAngle(name string, v float64) error {
	if !isFinite(v) || v <= 0 || v >= 90 {
		return fmt.Errorf("%s must be between 0 and 90 exclusive, got %g", name, v)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
