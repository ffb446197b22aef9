package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/home-hub/internal/config"
	"github.com/oshokin/home-hub/internal/service/hub"
	"github.com/oshokin/home-hub/internal/version"
)

var (
	// configPath to the configuration YAML or TOML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// realTime makes detection steps wait for their configured durations.
	realTime bool

	// rootCmd represents the interactive home hub console.
	rootCmd = &cobra.Command{
		Use:   "home-hub",
		Short: "Simulate a smart home with security and hazard detection.",
		Long: `Assembles a simulated smart home from configuration and opens a console.

The home has lights, cameras, a TV, a sound system, smoke and gas detectors
and a shared alarm. Motion triggers the security sequence when it is armed.
Smoke or gas triggers the detection sequence: the alarm rings, the lights
blink and the fire station is called. Type "ack" while it runs to interrupt it.

When stdin is not a terminal, commands are read from it line by line.
A missing configuration file means built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return hub.Run(ctx, options(""))
		},
	}

	// runCmd executes a script of console commands.
	runCmd = &cobra.Command{
		Use:   "run <script>",
		Short: "Run console commands from a file.",
		Long: `Runs console commands from a file, one per line. Blank lines and lines
starting with # are skipped. The run stops at the first failing command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return hub.Run(ctx, options(args[0]))
		},
	}
)

// options collects the flag values for hub.Run.
func options(scriptPath string) *hub.Options {
	return &hub.Options{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		ScriptPath: scriptPath,
		RealTime:   realTime,
	}
}

// Execute runs the home-hub CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&realTime, "real-time", false, "wait for configured step durations")

	rootCmd.AddCommand(runCmd)
}
