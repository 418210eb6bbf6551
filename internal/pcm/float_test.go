// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloats_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []float64{0.5, 1.5, -2, 0, math.SmallestNonzeroFloat64, -1e9}
	for _, order := range []binary.AppendByteOrder{binary.LittleEndian, binary.BigEndian} {
		raw := AppendFloat64s(nil, order, samples)
		require.Len(t, raw, 8*len(samples))

		got, err := ReadFloats(bytes.NewReader(raw), order.(binary.ByteOrder), 64)
		require.NoError(t, err)
		assert.Equal(t, samples, got, "%v", order)
	}
}

func TestReadFloats_32Bit(t *testing.T) {
	t.Parallel()

	raw := binary.LittleEndian.AppendUint32(nil, math.Float32bits(-3.25))
	raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(0.125))
	raw = append(raw, 0xFF) // partial sample

	got, err := ReadFloats(bytes.NewReader(raw), binary.LittleEndian, 32)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3.25, 0.125}, got)
}

func TestFloatSource_ReadSamples(t *testing.T) {
	t.Parallel()

	raw := AppendFloat64s(nil, binary.BigEndian, []float64{0.25, 2, -4})
	src := NewFloatSource(bytes.NewReader(raw), binary.BigEndian, 64, 22050, 1)
	assert.Equal(t, 22050, src.SampleRate())
	assert.Equal(t, 1, src.Channels())

	dst := make([]float32, 2)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 2}, dst[:n])

	n, err = src.ReadSamples(dst)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, float32(-4), dst[0])

	n, err = src.ReadSamples(dst)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestFloatBits(t *testing.T) {
	t.Parallel()

	assert.True(t, FloatBits(32))
	assert.True(t, FloatBits(64))
	assert.False(t, FloatBits(16))
}
