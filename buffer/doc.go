// SPDX-License-Identifier: EPL-2.0

// Package buffer provides the metadata-carrying numeric container every
// signal type in untwist is built on.
//
// # Dense
//
// A [Dense] is a row-major two dimensional array of float64 ([Real]) or
// complex128 ([Complex]) values plus a [Meta] record:
//
//	b := buffer.Ensure2D([]float64{0.1, 0.2, 0.3}) // 3x1
//	b.Meta = buffer.Meta{SampleRate: 44100}
//
// A buffer is never one dimensional: rank-1 input is stored as a single
// column.
//
// # Metadata propagation
//
// Every derived buffer (arithmetic, slicing, concatenation) owns its storage
// and inherits its metadata from the leftmost operand that carries any, see
// [Pick]:
//
//	sum := buffer.Add(a, b)   // sum.Meta == a.Meta unless a.Meta is zero
//
// Operands are not checked for matching metadata. Shapes are: combining two
// buffers of different dimensions panics with [ErrShape], the same way
// gonum's mat package reports programmer errors.
package buffer
