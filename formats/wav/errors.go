// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	// ErrUnsupportedBitDepth is returned for PCM that is not 16, 24 or 32 bits wide.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrInvalidClip         = errors.New("invalid clip")
)
