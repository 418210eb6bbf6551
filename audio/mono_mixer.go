// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages all channels of src into one. Samples that end in
// the middle of a frame are kept until the rest of the frame arrives.
type MonoMixer struct {
	src     Source
	buf     []float32
	pending int
}

// NewMonoMixer returns a one-channel view of src.
func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("mono mixer: %w", err)
	}
	return nil
}

// ReadSamples fills dst with averaged frames, one sample each.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	channels := m.src.Channels()
	if len(dst) == 0 {
		return 0, nil
	}
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	want := len(dst) * channels
	if cap(m.buf) < want {
		grown := make([]float32, want)
		copy(grown, m.buf[:m.pending])
		m.buf = grown
	}
	m.buf = m.buf[:want]

	n, err := m.src.ReadSamples(m.buf[m.pending:])
	have := m.pending + n
	frames := have / channels

	scale := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range m.buf[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * scale
	}

	m.pending = copy(m.buf, m.buf[frames*channels:have])

	return frames, err
}
