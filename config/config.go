// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Vehicle   VehicleConfig   `yaml:"vehicle"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Warnings  WarningsConfig  `yaml:"warnings"`
	Timers    TimersConfig    `yaml:"timers"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// VehicleConfig holds input ranges and power-on defaults.
// Sliders are bounded by these ranges; event values outside them are clamped.
type VehicleConfig struct {
	SpeedMaxKmh     int `yaml:"speed_max_kmh"`
	FrontDistMaxM   int `yaml:"front_dist_max_m"`
	PressureMinPSI  int `yaml:"pressure_min_psi"`
	PressureMaxPSI  int `yaml:"pressure_max_psi"`
	InitialSpeedKmh int `yaml:"initial_speed_kmh"`
	InitialFrontM   int `yaml:"initial_front_m"`
	InitialBasePSI  int `yaml:"initial_base_psi"`
}

// PhysicsConfig holds the stopping-distance model parameters.
type PhysicsConfig struct {
	ReactionTimeS float64 `yaml:"reaction_time_s"` // Driver reaction time
	Friction      float64 `yaml:"friction"`        // Tyre-road friction coefficient (mu)
	GravityMS2    float64 `yaml:"gravity_ms2"`
}

// WarningsConfig holds warning-engine thresholds.
type WarningsConfig struct {
	VehicleLengthM      float64 `yaml:"vehicle_length_m"`
	FCWMarginM          float64 `yaml:"fcw_margin_m"`           // Safety margin added before ceiling
	FCWMaxThresholdM    int     `yaml:"fcw_max_threshold_m"`    // Front-distance sensor range cap
	LowPressureDeltaPSI int     `yaml:"low_pressure_delta_psi"` // Corner fires strictly below base minus this
}

// TimersConfig holds transient banner durations and the headless tick period.
type TimersConfig struct {
	DoorBlockMs    int `yaml:"door_block_ms"`
	LaneMsgMs      int `yaml:"lane_msg_ms"`
	HeadlessTickMs int `yaml:"headless_tick_ms"`
}

// AudioConfig holds alert-dispatcher parameters.
type AudioConfig struct {
	BeepIntervalMs int `yaml:"beep_interval_ms"` // Minimum gap between pattern starts
	SampleRate     int `yaml:"sample_rate"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowSec float64 `yaml:"stats_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
