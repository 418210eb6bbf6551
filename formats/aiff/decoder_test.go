// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/untwist/audio"
)

func writeTemp(t *testing.T, enc Encoder, c *audio.Clip) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clip.aiff")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(f, c))
	require.NoError(t, f.Close())
	return path
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	stored := []int16{0, 1000, -1000, 32767, -32768, 7}
	path := writeTemp(t, Encoder{}, &audio.Clip{SampleRate: 22050, Channels: 2, PCM16: stored})

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	clip, err := Decoder{}.DecodeClip(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 22050, clip.SampleRate)
	assert.Equal(t, 2, clip.Channels)
	assert.Equal(t, stored, clip.PCM16)

	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	require.NoError(t, err)
	streamed, err := audio.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1000.0 / 32768, 1000.0 / 32768, -32767.0 / 32768, 1, -7.0 / 32768}, streamed.Samples)
}

func TestRoundTrip_Float(t *testing.T) {
	t.Parallel()

	samples := []float64{0.5, 1.5, -2, 0, 0.125, -7}
	clip := &audio.Clip{SampleRate: 44100, Channels: 3, Samples: samples}

	buf := new(bytes.Buffer)
	require.NoError(t, Encoder{}.Encode(buf, clip), "float output needs no seeker")
	data := buf.Bytes()
	assert.Equal(t, "AIFC", string(data[8:12]))

	got, err := Decoder{}.DecodeClip(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 44100, got.SampleRate)
	assert.Equal(t, 3, got.Channels)
	assert.Nil(t, got.PCM16)
	assert.Equal(t, samples, got.Samples)

	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, 44100, src.SampleRate())
	streamed, err := audio.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, samples, streamed.Samples)

	path := writeTemp(t, Encoder{}, clip)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err = Decoder{}.DecodeClip(f)
	require.NoError(t, err)
	assert.Equal(t, samples, got.Samples)
}

func TestRoundTrip_PCM16Quantizes(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, Encoder{PCM16: true}, &audio.Clip{SampleRate: 8000, Channels: 1, Samples: []float64{0.5, 1.5, -2}})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	clip, err := Decoder{}.DecodeClip(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []int16{-16384, -32768, 32767}, clip.PCM16)
}

func TestExtended(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{8000, 11025, 44100, 48000, 96000, 1} {
		b := make([]byte, 10)
		putExtended(b, rate)
		assert.Equal(t, rate, extended(b))
	}

	// 44100 Hz as written by common tools
	assert.Equal(t, 44100.0, extended([]byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0}))
}

func TestDecoder_Invalid(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not AIFF data")} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrNotAiffFile)
	}
}

func TestEncoder_Errors(t *testing.T) {
	t.Parallel()

	clip := &audio.Clip{SampleRate: 8000, Channels: 1, Samples: []float64{0}}
	assert.ErrorIs(t, Encoder{PCM16: true}.Encode(new(bytes.Buffer), clip), ErrNeedsSeeker)
	assert.ErrorIs(t, Encoder{}.Encode(new(bytes.Buffer), &audio.Clip{}), ErrInvalidClip)
}
