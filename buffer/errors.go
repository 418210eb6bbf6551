// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	// ErrShape is the panic value for operations on buffers with incompatible dimensions.
	ErrShape = errors.New("buffer: dimension mismatch")

	// ErrIndex is the panic value for out of range element access.
	ErrIndex = errors.New("buffer: index out of range")
)
