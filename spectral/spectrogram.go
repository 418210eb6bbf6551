// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"

	"github.com/ik5/untwist/buffer"
	"github.com/ik5/untwist/plot"
)

// Geometry applied by NewSpectrogram to fields the buffer leaves unknown.
const (
	DefaultSampleRate = 44100
	DefaultWindowSize = 1024
	DefaultHopSize    = 512
)

// Display floors for DisplayMagnitude.
const (
	LogFloor    = -60.0
	LinearFloor = 0.0
)

// Spectrogram is a complex bins x frames grid.
type Spectrogram struct {
	Spectrum
}

// NewSpectrogram wraps b, filling unknown metadata with the defaults.
// The values of b are shared; its metadata is left untouched.
func NewSpectrogram(b *buffer.Complex) *Spectrogram {
	own := *b
	if own.Meta.SampleRate == buffer.Unknown {
		own.Meta.SampleRate = DefaultSampleRate
	}
	if own.Meta.WindowSize == buffer.Unknown {
		own.Meta.WindowSize = DefaultWindowSize
	}
	if own.Meta.HopSize == buffer.Unknown {
		own.Meta.HopSize = DefaultHopSize
	}
	return derived(&own)
}

// derived wraps b as computed, keeping unknown fields unknown.
func derived(b *buffer.Complex) *Spectrogram {
	return &Spectrogram{Spectrum{data: b}}
}

func (s *Spectrogram) SampleRate() int { return s.data.Meta.SampleRate }
func (s *Spectrogram) WindowSize() int { return s.data.Meta.WindowSize }
func (s *Spectrogram) HopSize() int    { return s.data.Meta.HopSize }

// NumChannels is always 1.
func (s *Spectrogram) NumChannels() int { return 1 }

// NumFrames counts columns.
func (s *Spectrogram) NumFrames() int { _, c := s.data.Dims(); return c }

// NumBins counts rows.
func (s *Spectrogram) NumBins() int { r, _ := s.data.Dims(); return r }

// At returns bin k of frame t.
func (s *Spectrogram) At(k, t int) complex128 { return s.data.At(k, t) }

// BinHz is the frequency step between rows: SampleRate / (2 * NumBins).
func (s *Spectrogram) BinHz() float64 {
	return float64(s.SampleRate()) / float64(s.NumBins()*2)
}

// Frequencies returns the frequency of every row in Hz.
func (s *Spectrogram) Frequencies() []float64 {
	out := make([]float64, s.NumBins())
	hz := s.BinHz()
	for k := range out {
		out[k] = float64(k) * hz
	}
	return out
}

// Times returns the start of every frame in seconds.
func (s *Spectrogram) Times() []float64 {
	out := make([]float64, s.NumFrames())
	step := float64(s.HopSize()) / float64(s.SampleRate())
	for t := range out {
		out[t] = float64(t) * step
	}
	return out
}

// MaxFreq is the Nyquist frequency.
func (s *Spectrogram) MaxFreq() float64 {
	return float64(s.SampleRate()) / 2
}

// DisplayMagnitude returns the magnitude scaled for display with its value
// range. In log mode the magnitude is divided by its maximum and converted
// to decibels as 20*log10(m/max + Eps), with a floor of -60 dB and a
// ceiling of 0. In linear mode the raw magnitude is returned with a floor
// of 0 and its maximum as ceiling.
func (s *Spectrogram) DisplayMagnitude(logScale bool) (mag *buffer.Real, floor, ceiling float64) {
	mag = s.Magnitude()
	if mag.Len() == 0 {
		return mag, LinearFloor, 0
	}

	peak := buffer.Max(mag)
	if !logScale {
		return mag, LinearFloor, peak
	}

	raw := mag.Raw()
	for i, v := range raw {
		raw[i] = 20 * math.Log10(v/peak+Eps)
	}
	return mag, LogFloor, 0
}

// DefaultHeatmap is the configuration Heatmap starts from.
func DefaultHeatmap() plot.HeatmapConfig {
	return plot.HeatmapConfig{
		Colormap: plot.CMRmap,
		LabelX:   true,
		LabelY:   true,
		Colorbar: true,
		LogScale: true,
	}
}

// Heatmap builds a magnitude heat map request.
func (s *Spectrogram) Heatmap(opts ...plot.HeatmapOption) plot.Heatmap {
	return s.HeatmapWith(DefaultHeatmap().Apply(opts...))
}

// HeatmapWith builds a request from a complete configuration.
func (s *Spectrogram) HeatmapWith(cfg plot.HeatmapConfig) plot.Heatmap {
	mag, floor, ceiling := s.DisplayMagnitude(cfg.LogScale)

	maxFreq := cfg.MaxFreq
	if maxFreq == 0 {
		maxFreq = s.MaxFreq()
	}

	end := 0.0
	if times := s.Times(); len(times) > 0 {
		end = times[len(times)-1]
	}

	colormap := cfg.Colormap
	if cfg.Overlay != nil {
		colormap = plot.FadeIn(cfg.Overlay)
	}

	return plot.Heatmap{
		Data:     mag,
		Colormap: colormap,
		Floor:    floor,
		Ceiling:  ceiling,
		Extent:   [4]float64{0, end, cfg.MinFreq, maxFreq},
		Colorbar: cfg.Colorbar,
		LabelX:   cfg.LabelX,
		LabelY:   cfg.LabelY,
		Title:    cfg.Title,
	}
}

// Equal compares values, shape and metadata.
func (s *Spectrogram) Equal(o *Spectrogram) bool {
	return buffer.Equal(s.data, o.data)
}

func (s *Spectrogram) Add(o *Spectrogram) *Spectrogram { return derived(buffer.Add(s.data, o.data)) }
func (s *Spectrogram) Sub(o *Spectrogram) *Spectrogram { return derived(buffer.Sub(s.data, o.data)) }
func (s *Spectrogram) Mul(o *Spectrogram) *Spectrogram { return derived(buffer.Mul(s.data, o.data)) }

func (s *Spectrogram) Scale(c complex128) *Spectrogram { return derived(buffer.Scale(s.data, c)) }

// MulReal scales every cell by the matching real value, such as a mask.
func (s *Spectrogram) MulReal(m *buffer.Real) *Spectrogram {
	return derived(buffer.MulReal(s.data, m))
}

// SliceFrames returns frames [from, to).
func (s *Spectrogram) SliceFrames(from, to int) *Spectrogram {
	return derived(buffer.SliceCols(s.data, from, to))
}

var _ plot.HeatmapSource = (*Spectrogram)(nil)
