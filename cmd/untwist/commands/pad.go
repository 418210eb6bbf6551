// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/untwist"
)

func (a *app) padCmd() *cobra.Command {
	var start, end time.Duration

	cmd := &cobra.Command{
		Use:   "pad IN OUT",
		Short: "Add silence before and after a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start < 0 || end < 0 {
				return errors.New("--start and --end must not be negative")
			}

			w, err := untwist.Open(args[0])
			if err != nil {
				return err
			}

			frames := func(d time.Duration) int {
				return int(math.Round(d.Seconds() * float64(w.SampleRate())))
			}
			head, tail := frames(start), frames(end)

			if err := untwist.Save(w.ZeroPad(head, tail), args[1]); err != nil {
				return err
			}

			a.logger.Info("padded",
				slog.String("output", args[1]),
				slog.Int("start_frames", head),
				slog.Int("end_frames", tail))
			return nil
		},
	}

	cmd.Flags().DurationVar(&start, "start", 0, "silence before the signal, e.g. 500ms")
	cmd.Flags().DurationVar(&end, "end", 0, "silence after the signal")
	return cmd
}
