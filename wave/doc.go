// SPDX-License-Identifier: EPL-2.0

// Package wave holds time-domain audio signals.
//
// A Wave is a frames x channels buffer of float64 samples tagged with its
// sample rate. Arithmetic returns new waves whose sample rate comes from
// the left operand, or from the right one when the left has none.
//
// # Reading and writing
//
// Read and ReadFile go through the codec collaborators in package audio.
// Integer PCM is divided by the most negative value of its width (-32768
// for 16-bit), which gives values in (-1, 1] and flips the sign of the
// data at every bit depth. Float files are read as stored. Write hands samples to the
// encoder untouched, and the bundled encoders store them as 64-bit floats.
//
//	w, err := wave.ReadFile("take1.wav", untwist.DefaultRegistry())
//	mono, err := w.Downmix()
//
// # Mixing
//
// Mix normalizes each input by its per-channel maximum, scales by the
// number of inputs and sums. Inputs must share frame and channel counts,
// otherwise ErrArgument is returned.
//
// # Playback
//
// Play and Record talk to a Driver, such as the one in device/portaudio.
// A playing Wave owns its Stream until Stop or Close; a Wave is not safe
// for concurrent use.
package wave
