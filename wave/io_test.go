// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/untwist/audio"
	"github.com/ik5/untwist/formats/wav"
)

func registry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.RegisterEncoder("wav", wav.Encoder{})
	return reg
}

func TestRead_PCM16Scaling(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	require.NoError(t, wav.WriteWAV16(buf, 11025, []int16{-32768, 16384, 0, 32767}))

	w, err := Read(buf, wav.Decoder{})
	require.NoError(t, err)

	assert.Equal(t, 11025, w.SampleRate())
	assert.Equal(t, 1, w.NumChannels())
	assert.Equal(t, []float64{1, -0.5, 0, -32767.0 / 32768.0}, w.Channel(0))
}

func TestFromClip_FloatStorage(t *testing.T) {
	t.Parallel()

	w, err := FromClip(&audio.Clip{SampleRate: 48000, Channels: 2, Samples: []float64{0.1, 0.2, 0.3, 0.4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.4}, w.Channel(1))

	_, err = FromClip(&audio.Clip{SampleRate: 48000})
	require.ErrorIs(t, err, audio.ErrNoChannels)

	_, err = FromClip(&audio.Clip{Channels: 1})
	require.ErrorIs(t, err, ErrSampleRate)
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	reg := registry()
	orig := stereo(44100, [2]float64{0.5, -0.25}, [2]float64{1.5, -2}, [2]float64{0.123456, 0})
	path := filepath.Join(t.TempDir(), "rt.wav")

	require.NoError(t, orig.WriteFile(path, reg))
	got, err := ReadFile(path, reg)
	require.NoError(t, err)

	assert.Equal(t, 44100, got.SampleRate())
	require.Equal(t, orig.NumFrames(), got.NumFrames())
	assert.Equal(t, orig.Interleaved(), got.Interleaved())

	// a second pass changes nothing either
	again := filepath.Join(t.TempDir(), "again.wav")
	require.NoError(t, got.WriteFile(again, reg))
	second, err := ReadFile(again, reg)
	require.NoError(t, err)
	assert.True(t, second.Equal(got))
}

func TestFile_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := ReadFile("song.flac", registry())
	require.ErrorIs(t, err, audio.ErrUnknownFormat)

	err = FromSamples([]float64{0}, 8000).WriteFile(filepath.Join(t.TempDir(), "x.flac"), registry())
	require.ErrorIs(t, err, audio.ErrUnknownFormat)
}
