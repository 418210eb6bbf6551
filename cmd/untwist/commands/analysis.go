// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/untwist"
	"github.com/ik5/untwist/mask"
	"github.com/ik5/untwist/spectral"
	"github.com/ik5/untwist/stft"
	"github.com/ik5/untwist/wave"
)

// stftFlags override the stft section of the config.
type stftFlags struct {
	window int
	hop    int
}

func (f *stftFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.window, "window", 0, "STFT window size in samples (default from config)")
	cmd.Flags().IntVar(&f.hop, "hop", 0, "STFT hop size in samples (default from config)")
}

func (a *app) stftOptions(f stftFlags) []stft.Option {
	opts := a.cfg.STFT.Options()
	if f.window > 0 {
		opts = append(opts, stft.WithWindowSize(f.window))
	}
	if f.hop > 0 {
		opts = append(opts, stft.WithHopSize(f.hop))
	}
	return opts
}

// maskFlags override the mask section of the config.
type maskFlags struct {
	kind      string
	threshold float64
	exponent  float64
}

func (f *maskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "", "mask kind: binary or ratio (default from config)")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "binary mask threshold in dB (default from config)")
	cmd.Flags().Float64Var(&f.exponent, "exponent", 0, "ratio mask exponent (default from config)")
}

func (a *app) maskSettings(cmd *cobra.Command, f maskFlags) (mask.Kind, []mask.Option, error) {
	name := a.cfg.Mask.Kind
	if f.kind != "" {
		name = f.kind
	}
	kind, err := mask.ParseKind(name)
	if err != nil {
		return 0, nil, err
	}

	opts := a.cfg.Mask.Options()
	if cmd.Flags().Changed("threshold") {
		opts = append(opts, mask.WithThreshold(f.threshold))
	}
	if cmd.Flags().Changed("exponent") {
		if f.exponent <= 0 {
			return 0, nil, fmt.Errorf("--exponent %g must be positive", f.exponent)
		}
		opts = append(opts, mask.WithExponent(f.exponent))
	}

	return kind, opts, nil
}

// openMono reads every path as mono at the rate of the first one. The
// files after the first are decoded concurrently.
func (a *app) openMono(paths ...string) ([]*wave.Wave, error) {
	out := make([]*wave.Wave, len(paths))

	open := func(i, rate int) error {
		w, err := untwist.OpenMono(paths[i], rate)
		if err != nil {
			return err
		}

		a.logger.Debug("opened",
			slog.String("path", paths[i]),
			slog.Int("frames", w.NumFrames()),
			slog.Int("sample_rate", w.SampleRate()))
		out[i] = w
		return nil
	}

	if err := open(0, 0); err != nil {
		return nil, err
	}

	var eg errgroup.Group
	for i := 1; i < len(paths); i++ {
		eg.Go(func() error { return open(i, out[0].SampleRate()) })
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// analyze transforms every wave with the same geometry, concurrently.
func (a *app) analyze(f stftFlags, waves ...*wave.Wave) ([]*spectral.Spectrogram, error) {
	opts := a.stftOptions(f)

	out := make([]*spectral.Spectrogram, len(waves))
	var eg errgroup.Group
	for i, w := range waves {
		eg.Go(func() error {
			s, err := stft.Forward(w, opts...)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug("analyzed",
		slog.Int("bins", out[0].NumBins()),
		slog.Int("frames", out[0].NumFrames()),
		slog.Int("window", out[0].WindowSize()),
		slog.Int("hop", out[0].HopSize()))
	return out, nil
}

// fitFrames pads or trims w to n frames.
func fitFrames(w *wave.Wave, n int) *wave.Wave {
	switch {
	case w.NumFrames() < n:
		return w.ZeroPad(0, n-w.NumFrames())
	case w.NumFrames() > n:
		return w.Slice(0, n)
	default:
		return w
	}
}
