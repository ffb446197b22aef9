package hub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/home-hub/internal/config"
	"github.com/oshokin/home-hub/internal/console"
	"github.com/oshokin/home-hub/internal/home"
	"github.com/oshokin/home-hub/internal/logger"
)

// Options controls the hub process.
type Options struct {
	// ConfigPath specifies the path to the settings file. A missing file means defaults.
	ConfigPath string
	// LogLevel overrides the configured log level when not empty.
	LogLevel string
	// ScriptPath runs commands from a file instead of the console input.
	ScriptPath string
	// RealTime forces the detection steps to wait for their configured durations.
	RealTime bool
	// Input is read when no script is given. Defaults to os.Stdin.
	Input *os.File
	// Output receives console output. Defaults to os.Stdout.
	Output io.Writer
	// HomeOptions are passed to home.New.
	HomeOptions []home.Option
}

// ErrInvalidLogLevel is returned for an unrecognised log level override.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Run assembles the home and drives it until the console or script finishes.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "home-hub")

	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}

	level, ok := logger.ParseLogLevel(levelName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, levelName)
	}

	logger.SetLevel(level)

	if opts.RealTime {
		cfg.Detection.RealTime = true
	}

	h, err := home.New(ctx, cfg, opts.HomeOptions...)
	if err != nil {
		return fmt.Errorf("assemble home: %w", err)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	c := console.New(h, out)

	if opts.ScriptPath != "" {
		return runScript(ctx, c, opts.ScriptPath)
	}

	in := opts.Input
	if in == nil {
		in = os.Stdin
	}

	return c.Run(ctx, in)
}

// runScript executes the commands stored in path.
func runScript(ctx context.Context, c *console.Console, path string) error {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	logger.InfoKV(ctx, "Running script", "path", path)

	if err := c.RunScript(ctx, file); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}

	return nil
}
