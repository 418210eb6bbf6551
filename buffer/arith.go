// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

func derive[T Number](rows, cols int, meta Meta) *Dense[T] {
	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols), Meta: meta}
}

func mustSameShape[T, U Number](a *Dense[T], b *Dense[U]) {
	if !SameShape(a, b) {
		panic(ErrShape)
	}
}

// asReal reports the float64 views of the given buffers when T is float64.
func asReal[T Number](bufs ...*Dense[T]) ([]*Real, bool) {
	out := make([]*Real, len(bufs))
	for i, b := range bufs {
		r, ok := any(b).(*Real)
		if !ok {
			return nil, false
		}
		out[i] = r
	}
	return out, true
}

func zip[T Number](a, b *Dense[T], op func(x, y T) T) *Dense[T] {
	mustSameShape(a, b)

	out := derive[T](a.rows, a.cols, Pick(a.Meta, b.Meta))
	for i := range out.data {
		out.data[i] = op(a.data[i], b.data[i])
	}
	return out
}

// Add returns a + b elementwise.
func Add[T Number](a, b *Dense[T]) *Dense[T] {
	if r, ok := asReal(a, b); ok {
		mustSameShape(a, b)
		out := r[0].Clone()
		out.Meta = Pick(a.Meta, b.Meta)
		vecmath.AddBlockInPlace(out.data, r[1].data)
		return any(out).(*Dense[T])
	}

	return zip(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise.
func Sub[T Number](a, b *Dense[T]) *Dense[T] {
	if r, ok := asReal(a, b); ok {
		mustSameShape(a, b)
		out := derive[float64](a.rows, a.cols, Pick(a.Meta, b.Meta))
		floats.SubTo(out.data, r[0].data, r[1].data)
		return any(out).(*Dense[T])
	}

	return zip(a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise.
func Mul[T Number](a, b *Dense[T]) *Dense[T] {
	if r, ok := asReal(a, b); ok {
		mustSameShape(a, b)
		out := derive[float64](a.rows, a.cols, Pick(a.Meta, b.Meta))
		vecmath.MulBlock(out.data, r[0].data, r[1].data)
		return any(out).(*Dense[T])
	}

	return zip(a, b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise. Division by zero follows IEEE 754.
func Div[T Number](a, b *Dense[T]) *Dense[T] {
	if r, ok := asReal(a, b); ok {
		mustSameShape(a, b)
		out := derive[float64](a.rows, a.cols, Pick(a.Meta, b.Meta))
		floats.DivTo(out.data, r[0].data, r[1].data)
		return any(out).(*Dense[T])
	}

	return zip(a, b, func(x, y T) T { return x / y })
}

// Scale returns c * a.
func Scale[T Number](a *Dense[T], c T) *Dense[T] {
	if r, ok := asReal(a); ok {
		out := derive[float64](a.rows, a.cols, a.Meta)
		vecmath.ScaleBlock(out.data, r[0].data, any(c).(float64))
		return any(out).(*Dense[T])
	}

	return Map(a, func(x T) T { return c * x })
}

// AddScalar returns a + c.
func AddScalar[T Number](a *Dense[T], c T) *Dense[T] {
	return Map(a, func(x T) T { return x + c })
}

// Map returns f applied to every element of a.
func Map[T Number](a *Dense[T], f func(T) T) *Dense[T] {
	out := derive[T](a.rows, a.cols, a.Meta)
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}

// Convert returns f applied to every element of a, producing a buffer of
// another element type with the same shape and metadata.
func Convert[T, U Number](a *Dense[T], f func(T) U) *Dense[U] {
	out := derive[U](a.rows, a.cols, a.Meta)
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}

// SliceRows returns a copy of rows [from, to).
func SliceRows[T Number](a *Dense[T], from, to int) *Dense[T] {
	if from < 0 || to > a.rows || from > to {
		panic(ErrIndex)
	}

	out := derive[T](to-from, a.cols, a.Meta)
	copy(out.data, a.data[from*a.cols:to*a.cols])
	return out
}

// SliceCols returns a copy of columns [from, to).
func SliceCols[T Number](a *Dense[T], from, to int) *Dense[T] {
	if from < 0 || to > a.cols || from > to {
		panic(ErrIndex)
	}

	width := to - from
	out := derive[T](a.rows, width, a.Meta)
	for i := range a.rows {
		copy(out.data[i*width:(i+1)*width], a.data[i*a.cols+from:i*a.cols+to])
	}
	return out
}

// ConcatRows stacks parts vertically. All parts must have the same column
// count. Metadata comes from the first part that has any.
func ConcatRows[T Number](parts ...*Dense[T]) *Dense[T] {
	if len(parts) == 0 {
		return New[T](0, 0, nil)
	}

	cols := parts[0].cols
	rows := 0
	metas := make([]Meta, len(parts))
	for i, p := range parts {
		if p.cols != cols {
			panic(ErrShape)
		}
		rows += p.rows
		metas[i] = p.Meta
	}

	out := derive[T](rows, cols, Pick(metas...))
	off := 0
	for _, p := range parts {
		off += copy(out.data[off:], p.data)
	}
	return out
}

// ConcatCols places parts side by side. All parts must have the same row
// count.
func ConcatCols[T Number](parts ...*Dense[T]) *Dense[T] {
	if len(parts) == 0 {
		return New[T](0, 0, nil)
	}

	rows := parts[0].rows
	cols := 0
	metas := make([]Meta, len(parts))
	for i, p := range parts {
		if p.rows != rows {
			panic(ErrShape)
		}
		cols += p.cols
		metas[i] = p.Meta
	}

	out := derive[T](rows, cols, Pick(metas...))
	for i := range rows {
		off := i * cols
		for _, p := range parts {
			off += copy(out.data[off:], p.data[i*p.cols:(i+1)*p.cols])
		}
	}
	return out
}
