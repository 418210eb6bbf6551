// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/untwist"
	"github.com/ik5/untwist/plot"
)

// imageFlags choose where and how big a PNG is drawn.
type imageFlags struct {
	output string
	width  int
	height int
}

func (f *imageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output PNG file")
	cmd.Flags().IntVar(&f.width, "width", 1024, "image width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 512, "image height in pixels")
}

// render creates the output file and hands a PNG renderer to draw.
func (f imageFlags) render(draw func(r *plot.PNG) error) error {
	if f.output == "" {
		return errors.New("--output is required")
	}

	out, err := os.Create(f.output)
	if err != nil {
		return err
	}

	if err := draw(plot.NewPNG(out, f.width, f.height)); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (a *app) waveformCmd() *cobra.Command {
	var img imageFlags

	cmd := &cobra.Command{
		Use:   "waveform -o OUT.png FILE",
		Short: "Draw the channels of a file as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := untwist.Open(args[0])
			if err != nil {
				return err
			}

			fig := w.Plot()
			fig.Title = args[0]
			if err := img.render(func(r *plot.PNG) error { return r.Figure(fig) }); err != nil {
				return err
			}

			a.logger.Info("drew waveform", slog.String("output", img.output), slog.Int("panels", len(fig.Panels)))
			return nil
		},
	}

	img.register(cmd)
	return cmd
}

func (a *app) spectrogramCmd() *cobra.Command {
	var (
		img      imageFlags
		geometry stftFlags
		linear   bool
		colormap string
		minFreq  float64
		maxFreq  float64
	)

	cmd := &cobra.Command{
		Use:   "spectrogram -o OUT.png FILE",
		Short: "Draw the spectrogram of a file as a PNG",
		Long: `Draw the magnitude spectrogram of a file, mixed down to mono. Magnitudes
are shown in dB relative to the peak, from -60 to 0, unless --linear is
given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, ok := plot.Named(colormap)
			if !ok {
				return fmt.Errorf("unknown colormap %q", colormap)
			}

			waves, err := a.openMono(args[0])
			if err != nil {
				return err
			}
			specs, err := a.analyze(geometry, waves...)
			if err != nil {
				return err
			}

			h := specs[0].Heatmap(
				plot.WithColormap(cm),
				plot.WithLogScale(!linear),
				plot.WithFreqRange(minFreq, maxFreq),
				plot.WithTitle(args[0]),
			)
			if err := img.render(func(r *plot.PNG) error { return r.Heatmap(h) }); err != nil {
				return err
			}

			a.logger.Info("drew spectrogram", slog.String("output", img.output))
			return nil
		},
	}

	img.register(cmd)
	geometry.register(cmd)
	cmd.Flags().BoolVar(&linear, "linear", false, "linear magnitude instead of dB")
	cmd.Flags().StringVar(&colormap, "colormap", plot.CMRmap.Name, "colormap: CMRmap, gray or white-black")
	cmd.Flags().Float64Var(&minFreq, "min-freq", 0, "lowest frequency label in Hz")
	cmd.Flags().Float64Var(&maxFreq, "max-freq", 0, "highest frequency label in Hz (default Nyquist)")
	return cmd
}
