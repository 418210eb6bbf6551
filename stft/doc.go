// SPDX-License-Identifier: EPL-2.0

// Package stft computes the short-time Fourier transform of a mono wave
// and its overlap-add inverse.
//
// Forward centres the signal by padding half a window of silence on each
// side, weights every frame with a periodic Hann window and keeps the
// window/2+1 non-negative frequency bins of each frame:
//
//	spec, err := stft.Forward(w, stft.WithWindowSize(2048), stft.WithHopSize(512))
//
// Inverse undoes Forward for any hop up to half the window. Samples that
// no window covers come back as zero.
//
// Coefficients are unnormalized, as returned by gonum's fourier.FFT.
package stft
