package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDefault checks the defaults, including the active-by-default detection engine.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "samsung", cfg.Home.DeviceBrand)
	require.Equal(t, "nest", cfg.Home.DetectorBrand)
	require.Equal(t, DefaultLights, cfg.Home.Lights)
	require.Equal(t, DefaultCameras, cfg.Home.Cameras)
	require.False(t, cfg.Security.StartActive)
	require.True(t, cfg.DetectionStartsActive())
	require.Equal(t, DefaultAlarmDuration, cfg.Detection.AlarmDuration)
	require.Equal(t, DefaultBlinkCount, cfg.Detection.BlinkCount)
	require.False(t, cfg.Detection.RealTime)
}

// TestValidate checks rejected values and normalization.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	require.Error(t, Validate(&Config{LogLevel: "loud"}))
	require.Error(t, Validate(&Config{Home: HomeConfig{DeviceLogLevel: "chatty"}}))
	require.Error(t, Validate(&Config{Home: HomeConfig{Lights: -1}}))
	require.Error(t, Validate(&Config{Detection: DetectionConfig{AlarmDuration: -time.Second}}))

	cfg := &Config{Home: HomeConfig{DeviceBrand: " Premium ", DetectorBrand: "BUDGET"}}
	require.NoError(t, Validate(cfg))
	require.Equal(t, "premium", cfg.Home.DeviceBrand)
	require.Equal(t, "budget", cfg.Home.DetectorBrand)

	inactive := false
	cfg = &Config{Detection: DetectionConfig{StartActive: &inactive}}
	require.NoError(t, Validate(cfg))
	require.False(t, cfg.DetectionStartsActive())
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := Default()
	cfg.Home.DeviceBrand = "premium"
	cfg.Home.Lights = 5
	cfg.Detection.BlinkDuration = 2500 * time.Millisecond
	cfg.Detection.RealTime = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)

	require.Error(t, Save(path, nil))
}

// TestLoad_YAMLDurations verifies human-readable durations in YAML files.
func TestLoad_YAMLDurations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hub.yaml")
	contents := `
log_level: debug
home:
  lights: 2
detection:
  start_active: false
  alarm_duration: 1500ms
  blink_count: 3
`
	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 2, cfg.Home.Lights)
	require.False(t, cfg.DetectionStartsActive())
	require.Equal(t, 1500*time.Millisecond, cfg.Detection.AlarmDuration)
	require.Equal(t, 3, cfg.Detection.BlinkCount)
	require.Equal(t, DefaultBlinkDuration, cfg.Detection.BlinkDuration)
}

// TestLoad_TOML verifies that the .toml extension selects the TOML decoder.
func TestLoad_TOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hub.toml")
	contents := `
log_level = "warn"

[home]
device_brand = "premium"
detector_brand = "budget"
cameras = 2

[security]
start_active = true

[detection]
blink_duration = "2s"
real_time = true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "premium", cfg.Home.DeviceBrand)
	require.Equal(t, "budget", cfg.Home.DetectorBrand)
	require.Equal(t, 2, cfg.Home.Cameras)
	require.True(t, cfg.Security.StartActive)
	require.True(t, cfg.DetectionStartsActive())
	require.Equal(t, 2*time.Second, cfg.Detection.BlinkDuration)
	require.True(t, cfg.Detection.RealTime)
}

// TestLoadOrDefault_Missing returns defaults for a missing file but surfaces other errors.
func TestLoadOrDefault_Missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := LoadOrDefault(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("home: [1, 2"), DefaultFilePermissions))

	_, err = LoadOrDefault(broken)
	require.Error(t, err)
}
