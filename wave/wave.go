// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"runtime"
	"time"

	"github.com/ik5/untwist/buffer"
)

// Wave is a time-domain signal: one row per frame, one column per channel.
//
// Every operation returns a new Wave with its own storage. The playback
// stream, if any, belongs to the Wave it was started on and is never
// copied to derived waves.
type Wave struct {
	data *buffer.Real

	stream  Stream
	cleanup runtime.Cleanup
}

// New wraps b. A positive sampleRate overrides the rate carried by b, and
// a wave whose rate is still unknown gets DefaultSampleRate. The samples
// of b are shared; its metadata is left untouched.
func New(b *buffer.Real, sampleRate int) *Wave {
	own := *b
	switch {
	case sampleRate > 0:
		own.Meta.SampleRate = sampleRate
	case own.Meta.SampleRate <= 0:
		own.Meta.SampleRate = DefaultSampleRate
	}
	return &Wave{data: &own}
}

// FromSamples builds a mono wave from samples.
func FromSamples(samples []float64, sampleRate int) *Wave {
	return New(buffer.Ensure2D(samples), sampleRate)
}

// FromInterleaved builds a wave from interleaved frames. A trailing
// partial frame is dropped.
func FromInterleaved(samples []float64, channels, sampleRate int) *Wave {
	if channels <= 0 {
		channels = 1
	}

	frames := len(samples) / channels
	return New(buffer.Ensure2D(samples[:frames*channels], frames, channels), sampleRate)
}

func fromInterleaved32(samples []float32, channels, sampleRate int) *Wave {
	wide := make([]float64, len(samples))
	for i, v := range samples {
		wide[i] = float64(v)
	}
	return FromInterleaved(wide, channels, sampleRate)
}

// derived wraps a freshly computed buffer.
func derived(b *buffer.Real) *Wave {
	return &Wave{data: b}
}

func (w *Wave) SampleRate() int  { return w.data.Meta.SampleRate }
func (w *Wave) NumChannels() int { _, c := w.data.Dims(); return c }
func (w *Wave) NumFrames() int   { r, _ := w.data.Dims(); return r }

// Duration is zero when the sample rate is unknown.
func (w *Wave) Duration() time.Duration {
	if w.SampleRate() <= 0 {
		return 0
	}
	return time.Duration(float64(w.NumFrames()) / float64(w.SampleRate()) * float64(time.Second))
}

// Frame returns a copy of frame i across all channels.
func (w *Wave) Frame(i int) []float64 { return w.data.Row(i) }

// Channel returns a copy of channel c.
func (w *Wave) Channel(c int) []float64 { return w.data.Col(c) }

func (w *Wave) At(frame, channel int) float64 { return w.data.At(frame, channel) }

// Buffer returns a copy of the underlying buffer, metadata included.
func (w *Wave) Buffer() *buffer.Real { return w.data.Clone() }

// Interleaved returns the samples frame by frame.
func (w *Wave) Interleaved() []float64 {
	out := make([]float64, w.data.Len())
	copy(out, w.data.Raw())
	return out
}

// Interleaved32 is Interleaved narrowed to float32, the layout audio
// drivers and audio.Source expect.
func (w *Wave) Interleaved32() []float32 {
	raw := w.data.Raw()
	out := make([]float32, len(raw))
	for i, v := range raw {
		out[i] = float32(v)
	}
	return out
}

// Equal compares samples, shape and sample rate. The stream is ignored.
func (w *Wave) Equal(o *Wave) bool {
	return buffer.Equal(w.data, o.data)
}

// CheckMono fails with ErrChannelLayout for multi-channel waves.
func (w *Wave) CheckMono() error {
	if w.NumChannels() > 1 {
		return ErrChannelLayout
	}
	return nil
}

func (w *Wave) Add(o *Wave) *Wave { return derived(buffer.Add(w.data, o.data)) }
func (w *Wave) Sub(o *Wave) *Wave { return derived(buffer.Sub(w.data, o.data)) }
func (w *Wave) Mul(o *Wave) *Wave { return derived(buffer.Mul(w.data, o.data)) }
func (w *Wave) Div(o *Wave) *Wave { return derived(buffer.Div(w.data, o.data)) }

func (w *Wave) Scale(c float64) *Wave { return derived(buffer.Scale(w.data, c)) }

// Slice returns frames [from, to).
func (w *Wave) Slice(from, to int) *Wave {
	return derived(buffer.SliceRows(w.data, from, to))
}

// Concat appends the frames of others after w. The sample rate is w's.
func (w *Wave) Concat(others ...*Wave) *Wave {
	parts := []*buffer.Real{w.data}
	for _, o := range others {
		parts = append(parts, o.data)
	}
	return derived(buffer.ConcatRows(parts...))
}
