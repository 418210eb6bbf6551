// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"fmt"

	"github.com/ik5/untwist/buffer"
	"github.com/ik5/untwist/plot"
)

// Eps keeps magnitudes away from zero before taking logarithms. It is the
// distance from 1.0 to the next float64.
const Eps = 0x1p-52

// Spectrum is a set of complex spectral columns.
type Spectrum struct {
	data *buffer.Complex
}

// NewSpectrum wraps b without copying it.
func NewSpectrum(b *buffer.Complex) *Spectrum {
	return &Spectrum{data: b}
}

func (s *Spectrum) Meta() buffer.Meta { return s.data.Meta }

// Buffer returns a copy of the complex data.
func (s *Spectrum) Buffer() *buffer.Complex { return s.data.Clone() }

// Magnitude returns |s| elementwise with the metadata of s.
func (s *Spectrum) Magnitude() *buffer.Real { return buffer.Magnitude(s.data) }

// Phase returns the argument of s elementwise, in (-pi, pi].
func (s *Spectrum) Phase() *buffer.Real { return buffer.Angle(s.data) }

// Plot returns two panels against bin index: magnitude, then phase. Each
// column becomes one line.
func (s *Spectrum) Plot() plot.Figure {
	return plot.Figure{Panels: []plot.Panel{
		columnsPanel(s.Magnitude(), "magnitude"),
		columnsPanel(s.Phase(), "phase (rad)"),
	}}
}

func columnsPanel(b *buffer.Real, ylabel string) plot.Panel {
	rows, cols := b.Dims()
	bins := make([]float64, rows)
	for i := range bins {
		bins[i] = float64(i)
	}

	p := plot.Panel{XLabel: "bin", YLabel: ylabel, Lines: make([]plot.Line, cols)}
	for j := range cols {
		p.Lines[j] = plot.Line{Label: fmt.Sprintf("frame %d", j), X: bins, Y: b.Col(j)}
	}
	return p
}
