// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	// ErrArgument is returned by Mix when its inputs cannot be combined.
	ErrArgument = errors.New("wave: invalid argument")

	// ErrChannelLayout is returned when a mono-only operation receives a
	// multi-channel wave. Downmix recovers from it.
	ErrChannelLayout = errors.New("wave: operation requires a mono signal")

	// ErrNoDriver is returned by Play and Record without an audio driver.
	ErrNoDriver = errors.New("wave: no audio driver")

	ErrSampleRate = errors.New("wave: sample rate must be positive")
)
