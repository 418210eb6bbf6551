// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/untwist"
	"github.com/ik5/untwist/mask"
	"github.com/ik5/untwist/stft"
)

func (a *app) separateCmd() *cobra.Command {
	var (
		output   string
		geometry stftFlags
		settings maskFlags
	)

	cmd := &cobra.Command{
		Use:   "separate -o OUT MIXTURE TARGET BACKGROUND",
		Short: "Estimate TARGET from MIXTURE with an oracle mask",
		Long: `Build a mask from the clean TARGET and BACKGROUND sources, apply it to
the spectrogram of MIXTURE and write the resynthesized estimate. All files
are mixed down to mono at the rate of MIXTURE; the sources are padded or
trimmed to its length.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}

			kind, opts, err := a.maskSettings(cmd, settings)
			if err != nil {
				return err
			}

			waves, err := a.openMono(args...)
			if err != nil {
				return err
			}
			n := waves[0].NumFrames()
			for i := 1; i < len(waves); i++ {
				waves[i] = fitFrames(waves[i], n)
			}

			specs, err := a.analyze(geometry, waves...)
			if err != nil {
				return err
			}

			m, err := mask.Build(kind, specs[1], specs[2], opts...)
			if err != nil {
				return err
			}
			masked, err := mask.Apply(specs[0], m)
			if err != nil {
				return err
			}

			estimate, err := stft.Inverse(masked, n)
			if err != nil {
				return err
			}
			if err := untwist.Save(estimate, output); err != nil {
				return err
			}

			a.logger.Info("separated",
				slog.String("kind", kind.String()),
				slog.String("output", output),
				slog.Int("frames", estimate.NumFrames()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	geometry.register(cmd)
	settings.register(cmd)
	return cmd
}
