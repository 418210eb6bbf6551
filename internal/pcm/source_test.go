// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder mimics go-audio: the end of data is n == 0 with a nil error.
type fakeDecoder struct {
	channels int
	data     []int
	fail     error
}

func (f *fakeDecoder) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: f.channels, SampleRate: 8000}
}

func (f *fakeDecoder) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if len(f.data) == 0 {
		return 0, f.fail
	}
	n := copy(buf.Data, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeDecoder{channels: 2, data: []int{0, 4194304, -8388608, 1}}, 24)
	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	assert.Equal(t, 4, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []float32{0, -0.5, 1, -1.0 / 8388608}, dst[:n])

	n, err = src.ReadSamples(dst)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("short chunk")
	src := NewSource(&fakeDecoder{channels: 1, fail: boom}, 16)
	_, err := src.ReadSamples(make([]float32, 4))
	assert.ErrorIs(t, err, boom)
}

func TestReadInts(t *testing.T) {
	t.Parallel()

	data := make([]int, 20000)
	for i := range data {
		data[i] = i % 100
	}

	got, err := ReadInts(&fakeDecoder{channels: 1, data: append([]int(nil), data...)})
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = ReadInts(&fakeDecoder{channels: 1, fail: io.ErrClosedPipe})
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestScaled(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{-0.5, 1}, Scaled([]int{1 << 30, -1 << 31}, 32))
	assert.Equal(t, []int16{-3, 9}, Int16s([]int{-3, 9}))
}

func TestScaled_SamePolarityAcrossDepths(t *testing.T) {
	t.Parallel()

	// one waveform stored at every supported width
	wave := []float64{0.5, -0.25, 0.75}
	for _, bits := range []int{16, 24, 32} {
		stored := make([]int, len(wave))
		for i, x := range wave {
			stored[i] = int(x * FullScale(bits))
		}

		got := Scaled(stored, bits)
		assert.Equal(t, []float64{-0.5, 0.25, -0.75}, got, "%d-bit", bits)
		if bits == 16 {
			assert.Equal(t, got, ToFloats(Int16s(stored)))
		}
	}
}
