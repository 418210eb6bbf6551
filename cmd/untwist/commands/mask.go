// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/ik5/untwist/mask"
	"github.com/ik5/untwist/plot"
)

func (a *app) maskCmd() *cobra.Command {
	var (
		img      imageFlags
		geometry stftFlags
		settings maskFlags
		overlay  bool
	)

	cmd := &cobra.Command{
		Use:   "mask -o OUT.png TARGET BACKGROUND",
		Short: "Build a time-frequency mask and draw it as a PNG",
		Long: `Build a binary or ratio mask that keeps TARGET and suppresses BACKGROUND.
Both files are mixed down to mono and BACKGROUND is resampled to the rate
of TARGET. BACKGROUND is padded or trimmed to the length of TARGET.

With --overlay the mask is drawn in red over the TARGET spectrogram.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, opts, err := a.maskSettings(cmd, settings)
			if err != nil {
				return err
			}

			waves, err := a.openMono(args...)
			if err != nil {
				return err
			}
			waves[1] = fitFrames(waves[1], waves[0].NumFrames())

			specs, err := a.analyze(geometry, waves...)
			if err != nil {
				return err
			}

			m, err := mask.Build(kind, specs[0], specs[1], opts...)
			if err != nil {
				return err
			}

			bins, frames := m.Dims()
			a.printf(cmd, "kind: %s\nbins: %d\nframes: %d\nmean: %.4f\n",
				m.Kind(), bins, frames, stat.Mean(m.Data().Raw(), nil))

			err = img.render(func(r *plot.PNG) error {
				if !overlay {
					return r.Heatmap(m.Heatmap(plot.WithTitle(args[0])))
				}
				return r.Layers(
					specs[0].Heatmap(plot.WithTitle(args[0]), plot.WithColorbar(false)),
					m.Heatmap(mask.Overlay()),
				)
			})
			if err != nil {
				return err
			}

			a.logger.Info("drew mask", slog.String("kind", m.Kind().String()), slog.String("output", img.output))
			return nil
		},
	}

	img.register(cmd)
	geometry.register(cmd)
	settings.register(cmd)
	cmd.Flags().BoolVar(&overlay, "overlay", false, "draw the mask over the target spectrogram")
	return cmd
}
