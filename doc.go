// SPDX-License-Identifier: EPL-2.0

// Package untwist separates mixed audio with time-frequency masks.
//
// Signals are numeric buffers that carry their sample rate, and spectral
// data also carries the analysis window and hop size, through every
// arithmetic operation. The pieces live in subpackages:
//
//   - buffer: the 2D numeric container and its metadata
//   - wave: time-domain signals, mixing, padding, playback and recording
//   - spectral: spectra and spectrograms
//   - stft: the short-time Fourier transform and its inverse
//   - mask: binary and ratio masks
//   - plot: line and heat-map requests and a PNG renderer
//   - audio and formats/...: decoders and encoders
//   - device/portaudio: a wave.Driver for the default sound devices
//
// # Quick Start
//
// This package ties the codecs together so files can be opened by name:
//
//	voice, _ := untwist.OpenMono("voice.wav", 16000)
//	noise, _ := untwist.OpenMono("noise.wav", 16000)
//	mixture, _ := wave.Mix(voice, noise)
//
//	vs, _ := stft.Forward(voice)
//	ns, _ := stft.Forward(noise)
//	ms, _ := stft.Forward(mixture)
//
//	m, _ := mask.Binary(vs, ns)
//	estimate, _ := mask.Apply(ms, m)
//	out, _ := stft.Inverse(estimate, mixture.NumFrames())
//	_ = untwist.Save(out, "estimate.wav")
//
// # Supported Formats
//
// Reading: WAV (PCM 16/24/32-bit, float 32/64-bit), AIFF and AIFF-C float,
// MP3 and Ogg Vorbis. Writing: WAV and AIFF.
//
// Integer PCM is read as sample / -2^(bits-1), so every bit depth decodes
// with the same inverted polarity. Samples are written as 64-bit floats,
// bit for bit, so a read-write-read cycle is exact.
package untwist
