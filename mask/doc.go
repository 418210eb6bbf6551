// SPDX-License-Identifier: EPL-2.0

// Package mask builds time-frequency masks from a target and a background
// spectrogram.
//
// A binary mask is 1 where the target is louder than the background by
// more than a threshold in dB, and 0 elsewhere. A ratio mask holds the
// share of the combined magnitude that belongs to the target, raised to
// an exponent. Both add spectral.Eps to the magnitudes first, so silent
// cells never divide by zero.
//
//	m, err := mask.Binary(voice, noise, mask.WithThreshold(3))
//	if err != nil {
//		return err
//	}
//	estimate, err := mask.Apply(mixture, m)
//
// Masks carry the sample rate and window geometry of the target.
package mask
