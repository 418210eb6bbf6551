// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/untwist/audio"
)

type fakeReader struct {
	rate     int
	channels int
	samples  []float32
	failWith error
}

func (f *fakeReader) SampleRate() int { return f.rate }
func (f *fakeReader) Channels() int   { return f.channels }

func (f *fakeReader) Read(p []float32) (int, error) {
	if len(f.samples) == 0 {
		if f.failWith != nil {
			return 0, f.failWith
		}
		return 0, io.EOF
	}
	n := copy(p, f.samples)
	f.samples = f.samples[n:]
	return n, nil
}

func TestSource_Drain(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := newSource(&fakeReader{rate: 48000, channels: 2, samples: in})

	assert.Equal(t, 48000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	clip, err := audio.ReadAll(src)
	require.NoError(t, err)
	require.Len(t, clip.Samples, len(in))
	for i, v := range in {
		assert.InDelta(t, float64(v), clip.Samples[i], 1e-9)
	}
}

func TestSource_ShortDestination(t *testing.T) {
	t.Parallel()

	src := newSource(&fakeReader{rate: 8000, channels: 2, samples: []float32{1, 2}})
	n, err := src.ReadSamples(make([]float32, 1))
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt page")
	src := newSource(&fakeReader{rate: 8000, channels: 1, failWith: boom})
	_, err := src.ReadSamples(make([]float32, 8))
	assert.ErrorIs(t, err, boom)
}

func TestDecoder_NotVorbis(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not ogg")))
	assert.Error(t, err)

	_, err = Decoder{}.DecodeClip(bytes.NewReader([]byte("definitely not ogg")))
	assert.Error(t, err)
}
