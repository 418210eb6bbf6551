// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrBroken is returned by sources created with NewFailingSource.
var ErrBroken = errors.New("audiotest: broken source")

// Source generates interleaved audio from a waveform function.
// It satisfies audio.Source without importing it.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	closed     bool
	waveform   func(frame, channel int) float32
}

// NewSource creates a source of frames frames per channel.
func NewSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource generates the same sine tone on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates value on every sample.
func NewConstantSource(sampleRate, channels, frames int, value float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewRampSource generates frame/frames on every channel, useful for
// checking ordering.
func NewRampSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}

// NewSliceSource replays interleaved samples.
func NewSliceSource(sampleRate, channels int, interleaved []float32) *Source {
	return NewSource(sampleRate, channels, len(interleaved)/channels, func(frame, channel int) float32 {
		return interleaved[frame*channels+channel]
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *Source) Closed() bool { return s.closed }

// Reset rewinds the source.
func (s *Source) Reset() { s.pos = 0 }

// ReadSamples fills dst with whole frames. The final chunk is returned
// together with io.EOF.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.waveform(s.pos+f, c)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}

// FailingSource returns ErrBroken after delivering a number of frames.
type FailingSource struct {
	*Source
}

// NewFailingSource returns silence for frames frames and then fails.
func NewFailingSource(sampleRate, channels, frames int) *FailingSource {
	return &FailingSource{Source: NewSilentSource(sampleRate, channels, frames)}
}

func (s *FailingSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, ErrBroken
	}
	n, _ := s.Source.ReadSamples(dst)
	return n, nil
}
