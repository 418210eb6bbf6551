// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/untwist"
	"github.com/ik5/untwist/audio"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Show format, rate, channels and peaks of audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				w, err := untwist.Open(path)
				if err != nil {
					return err
				}

				peaks := make([]float64, w.NumChannels())
				for c := range peaks {
					if ch := w.Channel(c); len(ch) > 0 {
						peaks[c] = floats.Norm(ch, math.Inf(1))
					}
				}

				a.printf(cmd, "%s\n", path)
				a.printf(cmd, "  format:      %s\n", audio.FormatOf(path))
				a.printf(cmd, "  sample rate: %d Hz\n", w.SampleRate())
				a.printf(cmd, "  channels:    %d\n", w.NumChannels())
				a.printf(cmd, "  frames:      %d\n", w.NumFrames())
				a.printf(cmd, "  duration:    %s\n", w.Duration())
				a.printf(cmd, "  peaks:       %.4f\n", peaks)
			}
			return nil
		},
	}
}
