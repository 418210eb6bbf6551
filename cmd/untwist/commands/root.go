// SPDX-License-Identifier: EPL-2.0

// Package commands holds the cobra command tree of the untwist CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/untwist/internal/config"
)

// app carries the state shared by every command of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger

	openDriver func(cfg *config.Config, logger *slog.Logger) (driver, error)
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{openDriver: openPortAudio})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "untwist",
		Short: "Separate mixed audio with time-frequency masks",
		Long: `untwist - inspect, mix and separate audio files.

Files are read and written by extension: wav and aiff can be read and
written, mp3 and ogg can be read.

Settings such as the STFT geometry and the mask kind come from an optional
YAML file given with --config or $UNTWIST_CONFIG; flags override it.

Examples:
  # Mix a voice with noise
  untwist mix -o mixture.wav voice.wav noise.wav

  # Recover the voice from the mixture with a ratio mask
  untwist separate --kind ratio -o estimate.wav mixture.wav voice.wav noise.wav

  # Draw the mask over the voice spectrogram
  untwist mask --overlay -o mask.png voice.wav noise.wav`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file (default $"+config.EnvPath+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.infoCmd(),
		a.mixCmd(),
		a.padCmd(),
		a.waveformCmd(),
		a.spectrogramCmd(),
		a.maskCmd(),
		a.separateCmd(),
		a.playCmd(),
		a.recordCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvPath)
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	a.cfg = cfg

	level := cfg.LogLevel.Slog()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if path != "" {
		a.logger.Debug("config loaded", slog.String("path", path))
	}
	return nil
}

func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
