// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/untwist"
	"github.com/ik5/untwist/device/portaudio"
	"github.com/ik5/untwist/internal/config"
	"github.com/ik5/untwist/wave"
)

// driver is a sound device the CLI owns for one command.
type driver interface {
	wave.Driver
	Close() error
}

func openPortAudio(cfg *config.Config, logger *slog.Logger) (driver, error) {
	d, err := portaudio.New(
		portaudio.WithLogger(logger),
		portaudio.WithFramesPerBuffer(cfg.Device.FramesPerBuffer),
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// withDriver opens the device, runs fn and closes the device again.
func (a *app) withDriver(fn func(d driver) error) (err error) {
	d, err := a.openDriver(a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	defer func() {
		err = errors.Join(err, d.Close())
	}()

	return fn(d)
}

func (a *app) playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play FILE",
		Short: "Play a file on the default output device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := untwist.Open(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			return a.withDriver(func(d driver) error {
				if err := w.Play(d, nil); err != nil {
					return err
				}
				a.logger.Info("playing",
					slog.String("path", args[0]),
					slog.Duration("duration", w.Duration().Round(time.Millisecond)))

				waitErr := w.Wait(ctx)
				if errors.Is(waitErr, context.Canceled) {
					waitErr = nil
				}
				return errors.Join(waitErr, w.Stop())
			})
		},
	}
}

func (a *app) recordCmd() *cobra.Command {
	var (
		duration time.Duration
		channels int
		rate     int
	)

	cmd := &cobra.Command{
		Use:   "record OUT",
		Short: "Record from the default input device",
		Long: `Record from the default input device until --duration has passed or the
command is interrupted, then write what was captured to OUT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if duration <= 0 {
				return errors.New("--duration must be positive")
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			var w *wave.Wave
			err := a.withDriver(func(d driver) error {
				var err error
				w, err = wave.Record(ctx, d, duration.Seconds(), channels, rate, nil)
				return err
			})
			if err != nil {
				return err
			}

			if err := untwist.Save(w, args[0]); err != nil {
				return err
			}

			a.logger.Info("recorded",
				slog.String("output", args[0]),
				slog.Int("frames", w.NumFrames()),
				slog.Duration("duration", w.Duration().Round(time.Millisecond)))
			return nil
		},
	}

	cmd.Flags().DurationVarP(&duration, "duration", "d", 5*time.Second, "recording length")
	cmd.Flags().IntVar(&channels, "channels", 1, "number of input channels")
	cmd.Flags().IntVar(&rate, "rate", 44100, "sample rate in Hz")
	return cmd
}
