// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"

	"github.com/ik5/untwist/audio"
)

// source replays a wave as an audio.Source.
type source struct {
	samples  []float32
	channels int
	rate     int
	pos      int
}

// Source returns an audio.Source that streams w as float32. Values are
// passed through without rescaling.
func (w *Wave) Source() audio.Source {
	return &source{
		samples:  w.Interleaved32(),
		channels: w.NumChannels(),
		rate:     w.SampleRate(),
	}
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := len(dst) - len(dst)%s.channels
	n = copy(dst[:n], s.samples[s.pos:])
	s.pos += n
	return n, nil
}

func process(src audio.Source) (*Wave, error) {
	clip, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return FromInterleaved(clip.Samples, clip.Channels, clip.SampleRate), nil
}

// Resample converts w to rate with cubic interpolation. Processing runs
// in float32.
func (w *Wave) Resample(rate int) (*Wave, error) {
	if rate <= 0 || w.SampleRate() <= 0 {
		return nil, ErrSampleRate
	}
	if rate == w.SampleRate() {
		return derived(w.data.Clone()), nil
	}

	return process(audio.NewResampler(w.Source(), rate))
}

// Downmix averages all channels into one. Processing runs in float32.
func (w *Wave) Downmix() (*Wave, error) {
	if w.NumChannels() <= 1 {
		return derived(w.data.Clone()), nil
	}

	return process(audio.NewMonoMixer(w.Source()))
}
