// SPDX-License-Identifier: EPL-2.0

package portaudio

import "errors"

var (
	// ErrClosed is returned by a Driver after Close.
	ErrClosed = errors.New("portaudio: driver closed")

	// ErrChannels is returned for a channel count below one.
	ErrChannels = errors.New("portaudio: invalid channel count")

	// ErrSampleRate is returned for a sample rate below one.
	ErrSampleRate = errors.New("portaudio: invalid sample rate")
)
