// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Magnitude returns |a| elementwise.
func Magnitude(a *Complex) *Real {
	re, im := Parts(a)
	out := derive[float64](a.rows, a.cols, a.Meta)
	if len(out.data) > 0 {
		vecmath.Magnitude(out.data, re, im)
	}
	return out
}

// Angle returns arg(a) elementwise, in (-pi, pi].
func Angle(a *Complex) *Real {
	return Convert(a, cmplx.Phase)
}

// Parts splits a into its real and imaginary parts, row-major.
func Parts(a *Complex) (re, im []float64) {
	re = make([]float64, len(a.data))
	im = make([]float64, len(a.data))
	for i, c := range a.data {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// Polar builds mag * e^(i*phase) elementwise. Metadata is taken from mag
// first, then phase.
func Polar(mag, phase *Real) *Complex {
	mustSameShape(mag, phase)

	out := derive[complex128](mag.rows, mag.cols, Pick(mag.Meta, phase.Meta))
	for i := range out.data {
		out.data[i] = cmplx.Rect(mag.data[i], phase.data[i])
	}
	return out
}

// ToComplex widens a to a complex buffer with zero imaginary part.
func ToComplex(a *Real) *Complex {
	return Convert(a, func(x float64) complex128 { return complex(x, 0) })
}

// RealPart returns the real part of a.
func RealPart(a *Complex) *Real {
	return Convert(a, func(c complex128) float64 { return real(c) })
}

// MulReal scales every complex element of a by the matching real element
// of b. Metadata comes from a unless a has none.
func MulReal(a *Complex, b *Real) *Complex {
	mustSameShape(a, b)

	out := derive[complex128](a.rows, a.cols, Pick(a.Meta, b.Meta))
	for i := range out.data {
		out.data[i] = a.data[i] * complex(b.data[i], 0)
	}
	return out
}

// Max returns the largest element of a. It panics on an empty buffer.
func Max(a *Real) float64 {
	return floats.Max(a.data)
}

// ColMax returns the maximum of every column taken over the rows. The sign
// is kept: this is not the maximum absolute value. Columns of an empty
// buffer report NaN.
func ColMax(a *Real) []float64 {
	out := make([]float64, a.cols)
	for j := range a.cols {
		if a.rows == 0 {
			out[j] = math.NaN()
			continue
		}
		out[j] = floats.Max(a.Col(j))
	}
	return out
}

// DivCols divides every column j of a by d[j].
func DivCols(a *Real, d []float64) *Real {
	if len(d) != a.cols {
		panic(ErrShape)
	}

	out := derive[float64](a.rows, a.cols, a.Meta)
	for i := range a.rows {
		off := i * a.cols
		floats.DivTo(out.data[off:off+a.cols], a.data[off:off+a.cols], d)
	}
	return out
}
