// SPDX-License-Identifier: EPL-2.0

package mask

import "errors"

var (
	// ErrGeometry is returned when two spectrograms, or a spectrogram and a
	// mask, do not have the same number of bins and frames.
	ErrGeometry = errors.New("mask: geometry mismatch")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("mask: unknown kind")
)
