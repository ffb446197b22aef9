package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/home-hub/internal/logger"
)

// Config holds every setting the hub needs to build a simulated home.
type Config struct {
	// LogLevel is the minimum level for engine and console narration.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// Home selects which devices get manufactured.
	Home HomeConfig `yaml:"home" toml:"home"`
	// Security configures the motion-driven security system.
	Security SecurityConfig `yaml:"security" toml:"security"`
	// Detection configures the smoke/gas detection engine.
	Detection DetectionConfig `yaml:"detection" toml:"detection"`
}

// HomeConfig describes the device inventory.
type HomeConfig struct {
	// DeviceBrand picks the abstract factory for lights, cameras, TVs and sound systems.
	DeviceBrand string `yaml:"device_brand" toml:"device_brand"`
	// DetectorBrand picks the abstract factory for smoke and gas detectors.
	DetectorBrand string `yaml:"detector_brand" toml:"detector_brand"`
	// Lights is the number of lights shared by both systems.
	Lights int `yaml:"lights" toml:"lights"`
	// Cameras is the number of motion-sensing cameras.
	Cameras int `yaml:"cameras" toml:"cameras"`
	// DeviceLogLevel is the minimum level for device narration.
	DeviceLogLevel string `yaml:"device_log_level" toml:"device_log_level"`
}

// SecurityConfig configures the security system.
type SecurityConfig struct {
	// StartActive arms the security system at startup.
	StartActive bool `yaml:"start_active" toml:"start_active"`
}

// DetectionConfig configures the hazard detection engine.
type DetectionConfig struct {
	// StartActive arms the detection engine at startup. Nil means true.
	StartActive *bool `yaml:"start_active" toml:"start_active"`
	// AlarmDuration is how long the alarm step sounds.
	AlarmDuration time.Duration `yaml:"alarm_duration" toml:"alarm_duration"`
	// BlinkDuration is the total time the blink step spends blinking.
	BlinkDuration time.Duration `yaml:"blink_duration" toml:"blink_duration"`
	// BlinkCount is the number of blink rounds.
	BlinkCount int `yaml:"blink_count" toml:"blink_count"`
	// FireCallDuration is how long the simulated fire station call lasts.
	FireCallDuration time.Duration `yaml:"fire_call_duration" toml:"fire_call_duration"`
	// RealTime makes steps actually wait their durations on cancellable timers.
	RealTime bool `yaml:"real_time" toml:"real_time"`
}

const (
	// DefaultConfigFilename is the default filename for hub settings.
	DefaultConfigFilename = "home-hub.yaml"

	// DefaultLights is the number of lights manufactured when unset.
	DefaultLights = 3

	// DefaultCameras is the number of cameras manufactured when unset.
	DefaultCameras = 1

	// DefaultAlarmDuration is the nominal alarm sounding time.
	DefaultAlarmDuration = 3 * time.Second

	// DefaultBlinkDuration is the nominal total blinking time.
	DefaultBlinkDuration = 5 * time.Second

	// DefaultBlinkCount is the number of blink rounds.
	DefaultBlinkCount = 5

	// DefaultFireCallDuration is the nominal fire station call time.
	DefaultFireCallDuration = 1 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// defaultDeviceBrand and defaultDetectorBrand are the factory names used when unset.
	defaultDeviceBrand   = "samsung"
	defaultDetectorBrand = "nest"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for an unknown level name.
	errInvalidLogLevel = errors.New("invalid log level")
	// errNegativeCount is returned when a device count is below zero.
	errNegativeCount = errors.New("device count must not be negative")
	// errNegativeDuration is returned when a step duration is below zero.
	errNegativeDuration = errors.New("duration must not be negative")
)

// Default returns a fully populated configuration.
func Default() *Config {
	cfg := new(Config)

	// Validation of an empty config only fills defaults and cannot fail.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	path = filepath.Clean(path)

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config

	if isTOML(path) {
		if _, err := toml.Decode(string(contents), &cfg); err != nil {
			return nil, fmt.Errorf("decode toml settings: %w", err)
		}
	} else if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file is missing.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Save writes the configuration to the provided path as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults.
//
//nolint:cyclop // One branch per field keeps defaults readable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	if _, ok := logger.ParseLogLevel(cfg.Home.DeviceLogLevel); !ok {
		return fmt.Errorf("device %w: %q", errInvalidLogLevel, cfg.Home.DeviceLogLevel)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.Home.DeviceLogLevel == "" {
		cfg.Home.DeviceLogLevel = "info"
	}

	cfg.Home.DeviceBrand = strings.ToLower(strings.TrimSpace(cfg.Home.DeviceBrand))
	if cfg.Home.DeviceBrand == "" {
		cfg.Home.DeviceBrand = defaultDeviceBrand
	}

	cfg.Home.DetectorBrand = strings.ToLower(strings.TrimSpace(cfg.Home.DetectorBrand))
	if cfg.Home.DetectorBrand == "" {
		cfg.Home.DetectorBrand = defaultDetectorBrand
	}

	if cfg.Home.Lights < 0 || cfg.Home.Cameras < 0 {
		return errNegativeCount
	}

	// Zero means unset for the light count; a lightless home is not useful.
	if cfg.Home.Lights == 0 {
		cfg.Home.Lights = DefaultLights
	}

	if cfg.Home.Cameras == 0 {
		cfg.Home.Cameras = DefaultCameras
	}

	return validateDetection(&cfg.Detection)
}

// validateDetection fills detection defaults and rejects negative durations.
func validateDetection(d *DetectionConfig) error {
	if d.StartActive == nil {
		active := true
		d.StartActive = &active
	}

	if d.AlarmDuration < 0 || d.BlinkDuration < 0 || d.FireCallDuration < 0 {
		return errNegativeDuration
	}

	if d.AlarmDuration == 0 {
		d.AlarmDuration = DefaultAlarmDuration
	}

	if d.BlinkDuration == 0 {
		d.BlinkDuration = DefaultBlinkDuration
	}

	if d.BlinkCount <= 0 {
		d.BlinkCount = DefaultBlinkCount
	}

	if d.FireCallDuration == 0 {
		d.FireCallDuration = DefaultFireCallDuration
	}

	return nil
}

// DetectionStartsActive reports whether the detection engine is armed at startup.
func (c *Config) DetectionStartsActive() bool {
	return c.Detection.StartActive == nil || *c.Detection.StartActive
}

// isTOML reports whether the path names a TOML file.
func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
