// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat is returned when no codec is registered for a format key.
	ErrUnknownFormat = errors.New("no codec registered for format")

	// ErrNoChannels is returned for streams that report zero channels.
	ErrNoChannels = errors.New("stream has no channels")
)
