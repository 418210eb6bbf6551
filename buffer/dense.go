// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"math"
	"math/cmplx"
)

// Number is the element type of a Dense buffer.
type Number interface {
	float64 | complex128
}

// Dense is a row-major 2D numeric buffer tagged with metadata.
type Dense[T Number] struct {
	rows int
	cols int
	data []T

	// Meta travels with the buffer through every derived operation.
	Meta Meta
}

type (
	// Real is a buffer of float64 samples or magnitudes.
	Real = Dense[float64]
	// Complex is a buffer of complex spectral values.
	Complex = Dense[complex128]
)

// New creates a rows x cols buffer backed by data. A nil data allocates
// zeros; otherwise len(data) must be rows*cols and the buffer takes
// ownership of the slice.
func New[T Number](rows, cols int, data []T) *Dense[T] {
	if rows < 0 || cols < 0 {
		panic(ErrShape)
	}

	if data == nil {
		data = make([]T, rows*cols)
	} else if len(data) != rows*cols {
		panic(ErrShape)
	}

	return &Dense[T]{rows: rows, cols: cols, data: data}
}

// Zeros returns a rows x cols buffer of zeros.
func Zeros[T Number](rows, cols int) *Dense[T] {
	return New[T](rows, cols, nil)
}

// Ensure2D stores data as a 2D buffer. Without a shape, or with a single
// dimension, data becomes an (N, 1) column. A two dimensional shape is
// kept as-is. data is copied.
func Ensure2D[T Number](data []T, shape ...int) *Dense[T] {
	cp := make([]T, len(data))
	copy(cp, data)

	switch len(shape) {
	case 0:
		return New(len(cp), 1, cp)
	case 1:
		if shape[0] != len(cp) {
			panic(ErrShape)
		}
		return New(len(cp), 1, cp)
	case 2:
		return New(shape[0], shape[1], cp)
	default:
		panic(ErrShape)
	}
}

// FromRows builds a buffer from a slice of equally sized rows.
func FromRows[T Number](rows [][]T) *Dense[T] {
	if len(rows) == 0 {
		return New[T](0, 0, nil)
	}

	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for _, r := range rows {
		if len(r) != cols {
			panic(ErrShape)
		}
		data = append(data, r...)
	}

	return New(len(rows), cols, data)
}

// Dims returns the number of rows and columns.
func (d *Dense[T]) Dims() (rows, cols int) {
	return d.rows, d.cols
}

// Len returns the number of elements.
func (d *Dense[T]) Len() int {
	return len(d.data)
}

// At returns the element at row i, column j.
func (d *Dense[T]) At(i, j int) T {
	d.check(i, j)
	return d.data[i*d.cols+j]
}

// Set stores v at row i, column j.
func (d *Dense[T]) Set(i, j int, v T) {
	d.check(i, j)
	d.data[i*d.cols+j] = v
}

func (d *Dense[T]) check(i, j int) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(ErrIndex)
	}
}

// Row returns a copy of row i.
func (d *Dense[T]) Row(i int) []T {
	d.check(i, 0)
	out := make([]T, d.cols)
	copy(out, d.data[i*d.cols:(i+1)*d.cols])
	return out
}

// Col returns a copy of column j.
func (d *Dense[T]) Col(j int) []T {
	if j < 0 || j >= d.cols {
		panic(ErrIndex)
	}

	out := make([]T, d.rows)
	for i := range d.rows {
		out[i] = d.data[i*d.cols+j]
	}
	return out
}

// Raw returns the row-major backing slice. Writes through it modify d.
func (d *Dense[T]) Raw() []T {
	return d.data
}

// Clone returns a deep copy of d, metadata included.
func (d *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(d.data))
	copy(data, d.data)
	return &Dense[T]{rows: d.rows, cols: d.cols, data: data, Meta: d.Meta}
}

// SameShape reports whether a and b have equal dimensions.
func SameShape[T, U Number](a *Dense[T], b *Dense[U]) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Equal reports whether a and b have the same shape, values and metadata.
func Equal[T Number](a, b *Dense[T]) bool {
	if !SameShape(a, b) || a.Meta != b.Meta {
		return false
	}

	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox is like Equal but tolerates an absolute difference of tol per
// element.
func EqualApprox[T Number](a, b *Dense[T], tol float64) bool {
	if !SameShape(a, b) || a.Meta != b.Meta {
		return false
	}

	for i := range a.data {
		if !(distance(a.data[i], b.data[i]) <= tol) {
			return false
		}
	}
	return true
}

func distance[T Number](x, y T) float64 {
	switch d := any(x - y).(type) {
	case float64:
		return math.Abs(d)
	case complex128:
		return cmplx.Abs(d)
	}
	return math.NaN()
}
