package hub

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oshokin/home-hub/internal/config"
	"github.com/oshokin/home-hub/internal/console"
	"github.com/oshokin/home-hub/internal/home"
)

// quietHome keeps device chatter out of test output.
func quietHome() []home.Option {
	return []home.Option{
		home.WithActor(&home.Actor{Hostname: "hub-host", Username: "operator"}),
		home.WithDeviceLogger(zap.NewNop().Sugar()),
	}
}

// writeFile creates a file in a temporary directory and returns its path.
func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

// TestRun_ScriptWithDefaults checks a script run against the built-in defaults.
func TestRun_ScriptWithDefaults(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)

	err := Run(context.Background(), &Options{
		ConfigPath:  filepath.Join(t.TempDir(), "missing.yaml"),
		ScriptPath:  writeFile(t, "demo.txt", "status\nsmoke\n"),
		Output:      out,
		HomeOptions: quietHome(),
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Detection sequence completed")
}

// TestRun_ConfigFromFile checks that a saved configuration shapes the home.
func TestRun_ConfigFromFile(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Home.Lights = 7
	cfg.Security.StartActive = true

	path := filepath.Join(t.TempDir(), "home-hub.yaml")
	require.NoError(t, config.Save(path, cfg))

	out := new(bytes.Buffer)

	err := Run(context.Background(), &Options{
		ConfigPath:  path,
		ScriptPath:  writeFile(t, "status.txt", "status\n"),
		Output:      out,
		HomeOptions: quietHome(),
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "lights: 7")
	require.Contains(t, out.String(), "=== Security System ===\n  Status: ACTIVE")
}

// TestRun_Errors checks the failures surfaced before and during a run.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")

	err := Run(context.Background(), &Options{ConfigPath: missing, LogLevel: "loud"})
	require.ErrorIs(t, err, ErrInvalidLogLevel)

	err = Run(context.Background(), &Options{
		ConfigPath:  missing,
		ScriptPath:  filepath.Join(t.TempDir(), "absent.txt"),
		HomeOptions: quietHome(),
	})
	require.ErrorIs(t, err, os.ErrNotExist)

	err = Run(context.Background(), &Options{
		ConfigPath:  missing,
		ScriptPath:  writeFile(t, "bad.txt", "fly\n"),
		Output:      new(bytes.Buffer),
		HomeOptions: quietHome(),
	})
	require.ErrorIs(t, err, console.ErrUnknownCommand)

	err = Run(context.Background(), &Options{ConfigPath: writeFile(t, "broken.yaml", "home: [")})
	require.Error(t, err)
}
