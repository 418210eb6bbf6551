// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/untwist/buffer"
)

func stereo(rate int, frames ...[2]float64) *Wave {
	rows := make([][]float64, len(frames))
	for i, f := range frames {
		rows[i] = []float64{f[0], f[1]}
	}
	return New(buffer.FromRows(rows), rate)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	w := FromSamples([]float64{1, 2, 3}, 8000)
	assert.Equal(t, 3, w.NumFrames())
	assert.Equal(t, 1, w.NumChannels())
	assert.Equal(t, 8000, w.SampleRate())

	w = FromInterleaved([]float64{1, 2, 3, 4, 5}, 2, 16000)
	assert.Equal(t, 2, w.NumFrames())
	assert.Equal(t, []float64{3, 4}, w.Frame(1))
	assert.Equal(t, []float64{2, 4}, w.Channel(1))
	assert.Equal(t, 4.0, w.At(1, 1))
	assert.Equal(t, []float32{1, 2, 3, 4}, w.Interleaved32())

	assert.Equal(t, 500*time.Millisecond, FromSamples(make([]float64, 4000), 8000).Duration())
	assert.Equal(t, time.Second, FromSamples(make([]float64, DefaultSampleRate), 0).Duration())
}

func TestNew_SampleRate(t *testing.T) {
	t.Parallel()

	b := buffer.FromRows([][]float64{{1}, {2}})
	b.Meta.SampleRate = 8000

	assert.Equal(t, 16000, New(b, 16000).SampleRate())
	assert.Equal(t, 8000, New(b, 0).SampleRate())
	assert.Equal(t, 8000, New(b, -1).SampleRate())
	assert.Equal(t, 8000, b.Meta.SampleRate, "the caller's buffer keeps its rate")

	plain := buffer.Ensure2D([]float64{1, 2})
	w := New(plain, 0)
	assert.Equal(t, DefaultSampleRate, w.SampleRate())
	assert.Zero(t, plain.Meta.SampleRate)

	plain.Set(0, 0, 7)
	assert.Equal(t, 7.0, w.At(0, 0), "samples are shared")
}

func TestBufferIsCopy(t *testing.T) {
	t.Parallel()

	w := FromSamples([]float64{1, 2}, 8000)
	b := w.Buffer()
	b.Set(0, 0, 99)
	assert.Equal(t, 1.0, w.At(0, 0))
	assert.Equal(t, 8000, b.Meta.SampleRate)
}

func TestCheckMono(t *testing.T) {
	t.Parallel()

	require.NoError(t, FromSamples([]float64{1}, 8000).CheckMono())
	require.ErrorIs(t, stereo(8000, [2]float64{1, 2}).CheckMono(), ErrChannelLayout)
}

func TestNormalize_SignedColumnMax(t *testing.T) {
	t.Parallel()

	w := stereo(8000, [2]float64{1, -8}, [2]float64{2, -4}, [2]float64{-4, -2})
	got := w.Normalize()

	assert.Equal(t, []float64{0.5, 1, -2}, got.Channel(0))
	// max of the second channel is -2
	assert.Equal(t, []float64{4, 2, 1}, got.Channel(1))
	assert.Equal(t, 8000, got.SampleRate())
}

func TestNormalize_ZeroColumnUnguarded(t *testing.T) {
	t.Parallel()

	got := FromSamples([]float64{0, 0}, 8000).Normalize()
	assert.True(t, math.IsNaN(got.At(0, 0)))
}

func TestMix(t *testing.T) {
	t.Parallel()

	w := stereo(22050, [2]float64{0.5, 0.2}, [2]float64{-0.25, 0.4}, [2]float64{0.1, -0.3})

	t.Run("single", func(t *testing.T) {
		t.Parallel()

		got, err := Mix(w)
		require.NoError(t, err)
		assert.True(t, got.Equal(w.Normalize()))
	})

	t.Run("identical pair", func(t *testing.T) {
		t.Parallel()

		got, err := Mix(w, w)
		require.NoError(t, err)
		assert.True(t, got.Equal(w.Normalize()))
	})

	t.Run("average", func(t *testing.T) {
		t.Parallel()

		a := FromSamples([]float64{1, 0.5}, 8000)
		b := FromSamples([]float64{0, 2}, 16000)
		got, err := Mix(a, b)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 0.75}, got.Channel(0))
		assert.Equal(t, 8000, got.SampleRate(), "rate of the first input")
	})

	t.Run("shape mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := Mix(w, w.Slice(0, 2))
		require.ErrorIs(t, err, ErrArgument)

		_, err = Mix(w, FromSamples([]float64{1, 2, 3}, 22050))
		require.ErrorIs(t, err, ErrArgument)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		_, err := Mix()
		require.ErrorIs(t, err, ErrArgument)
	})
}

func TestZeroPad(t *testing.T) {
	t.Parallel()

	w := stereo(8000, [2]float64{1, 2}, [2]float64{3, 4})
	got := w.ZeroPad(2, 1)

	require.Equal(t, 5, got.NumFrames())
	require.Equal(t, 2, got.NumChannels())
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 2, 3, 4, 0, 0}, got.Interleaved())
	assert.True(t, got.Slice(2, 4).Equal(w))
	assert.Equal(t, 8000, got.SampleRate())

	assert.True(t, w.ZeroPad(0, 0).Equal(w))
	assert.Panics(t, func() { w.ZeroPad(-1, 0) })
}

func TestArithmeticSampleRate(t *testing.T) {
	t.Parallel()

	a := FromSamples([]float64{1, 2}, 8000)
	b := FromSamples([]float64{3, 4}, 16000)
	unset := FromSamples([]float64{5, 6}, 0)

	tests := []struct {
		name string
		got  *Wave
		rate int
	}{
		{"left wins", a.Add(b), 8000},
		{"left wins sub", b.Sub(a), 16000},
		{"default rate on the left", unset.Mul(b), DefaultSampleRate},
		{"default rate on the right", a.Div(unset), 8000},
		{"scale", b.Scale(2), 16000},
		{"slice", b.Slice(1, 2), 16000},
		{"concat", unset.Concat(a, b), DefaultSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.rate, tt.got.SampleRate())
		})
	}

	assert.Equal(t, []float64{4, 6}, a.Add(b).Channel(0))
	assert.Equal(t, []float64{1, 2, 1, 2, 3, 4}, a.Concat(a, b).Channel(0))
}

func TestPlot(t *testing.T) {
	t.Parallel()

	fig := stereo(4, [2]float64{1, 2}, [2]float64{3, 4}).Plot()
	require.Len(t, fig.Panels, 2)
	assert.Equal(t, "time (s)", fig.Panels[0].XLabel)
	assert.Equal(t, []float64{0, 0.25}, fig.Panels[1].Lines[0].X)
	assert.Equal(t, []float64{2, 4}, fig.Panels[1].Lines[0].Y)
}

func TestPlot_DefaultRate(t *testing.T) {
	t.Parallel()

	fig := FromSamples([]float64{1, 2, 3}, 0).Plot()
	require.Len(t, fig.Panels, 1)

	xs := fig.Panels[0].Lines[0].X
	for _, x := range xs {
		assert.False(t, math.IsNaN(x) || math.IsInf(x, 0))
	}
	assert.Equal(t, 2.0/DefaultSampleRate, xs[2])
}
