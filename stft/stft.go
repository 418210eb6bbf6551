// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"

	"github.com/ik5/untwist/buffer"
	"github.com/ik5/untwist/spectral"
	"github.com/ik5/untwist/wave"
)

// Config is the analysis window geometry in samples.
type Config struct {
	WindowSize int
	HopSize    int
}

// DefaultConfig matches the spectrogram defaults.
func DefaultConfig() Config {
	return Config{WindowSize: spectral.DefaultWindowSize, HopSize: spectral.DefaultHopSize}
}

// Validate reports ErrConfig unless 0 < HopSize <= WindowSize.
func (c Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: window size %d", ErrConfig, c.WindowSize)
	}
	if c.HopSize <= 0 || c.HopSize > c.WindowSize {
		return fmt.Errorf("%w: hop size %d for window %d", ErrConfig, c.HopSize, c.WindowSize)
	}
	return nil
}

// Bins is the number of frequency rows a frame produces.
func (c Config) Bins() int { return c.WindowSize/2 + 1 }

// Option tunes Forward.
type Option func(*Config)

func WithWindowSize(n int) Option {
	return func(c *Config) { c.WindowSize = n }
}

func WithHopSize(n int) Option {
	return func(c *Config) { c.HopSize = n }
}

// WithConfig replaces the whole geometry.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// Hann returns a periodic Hann window of n points.
func Hann(n int) []float64 {
	seq := make([]float64, n+1)
	for i := range seq {
		seq[i] = 1
	}
	return window.Hann(seq)[:n]
}

// Forward transforms a mono wave into a bins x frames spectrogram that
// carries the sample rate of w and the window geometry used.
func Forward(w *wave.Wave, opts ...Option) (*spectral.Spectrogram, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := w.CheckMono(); err != nil {
		return nil, fmt.Errorf("stft: %w", err)
	}
	if w.NumChannels() == 0 {
		return nil, fmt.Errorf("stft: %w: no channels", wave.ErrChannelLayout)
	}

	half := cfg.WindowSize / 2
	x := w.ZeroPad(half, half).Channel(0)

	frames := 0
	if len(x) >= cfg.WindowSize {
		frames = 1 + (len(x)-cfg.WindowSize)/cfg.HopSize
	}

	bins := cfg.Bins()
	out := buffer.Zeros[complex128](bins, frames)
	out.Meta = buffer.Meta{
		SampleRate: w.SampleRate(),
		WindowSize: cfg.WindowSize,
		HopSize:    cfg.HopSize,
	}

	win := Hann(cfg.WindowSize)
	fft := fourier.NewFFT(cfg.WindowSize)
	frame := make([]float64, cfg.WindowSize)
	coeffs := make([]complex128, bins)

	for t := range frames {
		start := t * cfg.HopSize
		for i := range frame {
			frame[i] = x[start+i] * win[i]
		}

		fft.Coefficients(coeffs, frame)
		for k, c := range coeffs {
			out.Set(k, t, c)
		}
	}

	return spectral.NewSpectrogram(out), nil
}

// Inverse rebuilds a mono wave from s by weighted overlap-add. The result
// has length frames, padded with silence or truncated as needed, or its
// natural length of (frames-1)*hop when length <= 0.
func Inverse(s *spectral.Spectrogram, length int) (*wave.Wave, error) {
	cfg := Config{WindowSize: s.WindowSize(), HopSize: s.HopSize()}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s.NumBins() != cfg.Bins() {
		return nil, fmt.Errorf("%w: %d bins for window %d", ErrConfig, s.NumBins(), cfg.WindowSize)
	}

	frames := s.NumFrames()
	half := cfg.WindowSize / 2

	natural := 0
	if frames > 0 {
		natural = (frames - 1) * cfg.HopSize
	}
	if length <= 0 {
		length = natural
	}

	total := 0
	if frames > 0 {
		total = (frames-1)*cfg.HopSize + cfg.WindowSize
	}
	y := make([]float64, total)
	norm := make([]float64, total)

	win := Hann(cfg.WindowSize)
	fft := fourier.NewFFT(cfg.WindowSize)
	seq := make([]float64, cfg.WindowSize)
	coeffs := make([]complex128, cfg.Bins())
	scale := 1 / float64(cfg.WindowSize)

	for t := range frames {
		for k := range coeffs {
			coeffs[k] = s.At(k, t)
		}
		fft.Sequence(seq, coeffs)

		start := t * cfg.HopSize
		for i, v := range seq {
			y[start+i] += v * scale * win[i]
			norm[start+i] += win[i] * win[i]
		}
	}

	out := make([]float64, length)
	for i := range out {
		j := i + half
		if j >= total || norm[j] <= spectral.Eps {
			continue
		}
		out[i] = y[j] / norm[j]
	}

	return wave.FromSamples(out, s.SampleRate()), nil
}
