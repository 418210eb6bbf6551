// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/untwist/buffer"
	"github.com/ik5/untwist/plot"
)

func grid(meta buffer.Meta, rows [][]complex128) *buffer.Complex {
	b := buffer.FromRows(rows)
	b.Meta = meta
	return b
}

func TestEps(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2.220446049250313e-16, Eps)
}

func TestSpectrum_MagnitudePhase(t *testing.T) {
	t.Parallel()

	s := NewSpectrum(grid(buffer.Meta{SampleRate: 8000}, [][]complex128{{3 + 4i}, {-1}, {-2i}}))

	mag := s.Magnitude()
	assert.Equal(t, []float64{5, 1, 2}, mag.Raw())
	assert.Equal(t, 8000, mag.Meta.SampleRate)

	phase := s.Phase().Raw()
	assert.InDelta(t, math.Atan2(4, 3), phase[0], 1e-12)
	assert.Equal(t, math.Pi, phase[1], "negative real axis maps to +pi")
	assert.Equal(t, -math.Pi/2, phase[2])

	back := buffer.Polar(s.Magnitude(), s.Phase())
	assert.True(t, buffer.EqualApprox(s.Buffer(), back, 1e-12))
}

func TestSpectrum_Plot(t *testing.T) {
	t.Parallel()

	fig := NewSpectrum(buffer.FromRows([][]complex128{{1, 1i}, {-1, 0}})).Plot()
	require.Len(t, fig.Panels, 2)
	assert.Equal(t, "magnitude", fig.Panels[0].YLabel)
	require.Len(t, fig.Panels[1].Lines, 2)
	assert.Equal(t, []float64{0, 1}, fig.Panels[1].Lines[0].X)
	assert.Equal(t, []float64{0, math.Pi}, fig.Panels[1].Lines[0].Y)
}

func TestSpectrogram_Defaults(t *testing.T) {
	t.Parallel()

	s := NewSpectrogram(buffer.Zeros[complex128](513, 4))
	assert.Equal(t, 44100, s.SampleRate())
	assert.Equal(t, 1024, s.WindowSize())
	assert.Equal(t, 512, s.HopSize())

	s = NewSpectrogram(grid(buffer.Meta{SampleRate: 8000, HopSize: 128}, [][]complex128{{0}}))
	assert.Equal(t, 8000, s.SampleRate())
	assert.Equal(t, 1024, s.WindowSize())
	assert.Equal(t, 128, s.HopSize())
}

func TestNewSpectrogram_LeavesBufferAlone(t *testing.T) {
	t.Parallel()

	b := grid(buffer.Meta{HopSize: 64}, [][]complex128{{1, 2}})
	s := NewSpectrogram(b)

	assert.Equal(t, buffer.Meta{SampleRate: DefaultSampleRate, WindowSize: DefaultWindowSize, HopSize: 64}, s.Meta())
	assert.Equal(t, buffer.Meta{HopSize: 64}, b.Meta)

	b.Set(0, 1, 5i)
	assert.Equal(t, 5i, s.Buffer().At(0, 1), "values are shared")
}

func TestSpectrogram_Geometry(t *testing.T) {
	t.Parallel()

	shapes := [][2]int{{1, 1}, {4, 3}, {513, 10}, {2, 200}, {0, 0}}
	for _, sh := range shapes {
		s := NewSpectrogram(buffer.Zeros[complex128](sh[0], sh[1]))
		assert.Equal(t, 1, s.NumChannels(), "shape %v", sh)
		assert.Equal(t, sh[1], s.NumFrames())
		assert.Equal(t, sh[0], s.NumBins())
	}

	s := NewSpectrogram(grid(buffer.Meta{SampleRate: 8000, WindowSize: 8, HopSize: 4}, make2(4, 3)))
	assert.Equal(t, 1000.0, s.BinHz())
	assert.Equal(t, []float64{0, 1000, 2000, 3000}, s.Frequencies())
	assert.Equal(t, []float64{0, 0.0005, 0.001}, s.Times())
	assert.Equal(t, 4000.0, s.MaxFreq())
}

func make2(rows, cols int) [][]complex128 {
	out := make([][]complex128, rows)
	for i := range out {
		out[i] = make([]complex128, cols)
	}
	return out
}

func TestDisplayMagnitude(t *testing.T) {
	t.Parallel()

	s := NewSpectrogram(buffer.FromRows([][]complex128{{10, -1}, {0, 1i}}))

	lin, floor, ceil := s.DisplayMagnitude(false)
	assert.Equal(t, []float64{10, 1, 0, 1}, lin.Raw())
	assert.Equal(t, 0.0, floor)
	assert.Equal(t, 10.0, ceil)

	db, floor, ceil := s.DisplayMagnitude(true)
	assert.Equal(t, -60.0, floor)
	assert.Equal(t, 0.0, ceil)
	raw := db.Raw()
	assert.InDelta(t, 0, raw[0], 1e-12)
	assert.InDelta(t, -20, raw[1], 1e-12)
	assert.InDelta(t, 20*math.Log10(Eps), raw[2], 1e-9)
	assert.False(t, math.IsInf(raw[2], 0))
}

func TestHeatmap(t *testing.T) {
	t.Parallel()

	s := NewSpectrogram(grid(buffer.Meta{SampleRate: 8000, WindowSize: 8, HopSize: 4}, make2(4, 3)))
	s.data.Set(1, 1, 2)

	h := s.Heatmap()
	assert.Equal(t, "CMRmap", h.Colormap.Name)
	assert.True(t, h.Colorbar)
	assert.True(t, h.LabelX)
	assert.True(t, h.LabelY)
	assert.Equal(t, -60.0, h.Floor)
	assert.Equal(t, [4]float64{0, 0.001, 0, 4000}, h.Extent)

	h = s.Heatmap(plot.WithLogScale(false), plot.WithFreqRange(100, 2000), plot.WithTitle("t"), plot.WithColorbar(false))
	assert.Equal(t, 0.0, h.Floor)
	assert.Equal(t, 2.0, h.Ceiling)
	assert.Equal(t, [4]float64{0, 0.001, 100, 2000}, h.Extent)
	assert.Equal(t, "t", h.Title)
	assert.False(t, h.Colorbar)
}

func TestArithmetic_LeftMetadataWins(t *testing.T) {
	t.Parallel()

	a := derived(grid(buffer.Meta{SampleRate: 8000, WindowSize: 256, HopSize: 64}, [][]complex128{{1, 2}}))
	b := derived(grid(buffer.Meta{SampleRate: 16000, WindowSize: 512, HopSize: 128}, [][]complex128{{3, 4i}}))
	bare := derived(grid(buffer.Meta{}, [][]complex128{{1, 1}}))

	assert.Equal(t, a.Meta(), a.Add(b).Meta())
	assert.Equal(t, b.Meta(), b.Sub(a).Meta())
	assert.Equal(t, b.Meta(), bare.Mul(b).Meta())
	assert.Equal(t, a.Meta(), a.Scale(2).Meta())
	assert.Equal(t, a.Meta(), a.SliceFrames(1, 2).Meta())
	assert.Equal(t, buffer.Meta{}, bare.Scale(1).Meta(), "unknown stays unknown")

	assert.Equal(t, []complex128{4, 2 + 4i}, a.Add(b).Buffer().Raw())
	assert.Equal(t, []complex128{3, 8i}, a.Mul(b).Buffer().Raw())
	assert.Equal(t, []complex128{2}, a.SliceFrames(1, 2).Buffer().Raw())

	m := buffer.FromRows([][]float64{{0.5, 0}})
	assert.Equal(t, []complex128{0.5, 0}, a.MulReal(m).Buffer().Raw())
	assert.Equal(t, a.Meta(), a.MulReal(m).Meta())
}

func TestPolarReconstructsArbitrary(t *testing.T) {
	t.Parallel()

	values := []complex128{0, 1, -1, 1i, -1i, 3 - 7i, -2.5 + 0.1i, cmplx.Rect(4, 3)}
	s := NewSpectrogram(buffer.Ensure2D(values))
	back := buffer.Polar(s.Magnitude(), s.Phase())
	assert.True(t, buffer.EqualApprox(s.Buffer(), back, 1e-12))
}
