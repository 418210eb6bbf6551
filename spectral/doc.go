// SPDX-License-Identifier: EPL-2.0

// Package spectral holds complex frequency-domain data.
//
// A Spectrum is one or more complex spectral columns. A Spectrogram is a
// bins x frames grid, row 0 being 0 Hz, that also carries the analysis
// window and hop size. Spectrograms report a single channel and count
// frames along columns, unlike time-domain buffers.
//
// Derived spectrograms take their metadata from the left operand, or from
// the right one when the left has none; missing fields stay
// buffer.Unknown.
package spectral
