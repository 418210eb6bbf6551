// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/untwist"
	"github.com/ik5/untwist/wave"
)

func (a *app) mixCmd() *cobra.Command {
	var (
		output string
		pad    bool
	)

	cmd := &cobra.Command{
		Use:   "mix -o OUT FILE...",
		Short: "Normalize and mix files into one",
		Long: `Normalize every input channel by its maximum, scale by the number of
inputs and sum. Inputs are resampled to the rate of the first one. They
must have the same length and channel count unless --pad is given, which
extends shorter inputs with silence.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}

			waves := make([]*wave.Wave, len(args))
			longest := 0
			for i, path := range args {
				w, err := untwist.Open(path)
				if err != nil {
					return err
				}
				if i > 0 && w.SampleRate() != waves[0].SampleRate() {
					if w, err = w.Resample(waves[0].SampleRate()); err != nil {
						return err
					}
				}
				waves[i] = w
				longest = max(longest, w.NumFrames())
			}

			if pad {
				for i, w := range waves {
					waves[i] = fitFrames(w, longest)
				}
			}

			mixed, err := wave.Mix(waves...)
			if err != nil {
				return err
			}
			if err := untwist.Save(mixed, output); err != nil {
				return err
			}

			a.logger.Info("mixed",
				slog.Int("inputs", len(waves)),
				slog.String("output", output),
				slog.Duration("duration", mixed.Duration().Round(time.Millisecond)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&pad, "pad", false, "pad shorter inputs with silence")
	return cmd
}
