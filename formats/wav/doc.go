// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files on top of go-audio/wav.
//
// Decoding accepts integer PCM at 16, 24 or 32 bits and IEEE float data at
// 32 or 64 bits, with any channel count and sample rate. Integer samples
// are divided by the most negative value of their width, so every depth
// decodes with the same inverted polarity; float samples are passed
// through. Decoder.DecodeClip returns 16-bit data exactly as stored so
// that callers can apply that scaling themselves.
//
// By default the encoder stores float samples as 64-bit IEEE floats, bit
// for bit:
//
//	clip := &audio.Clip{SampleRate: 44100, Channels: 2, Samples: samples}
//	err := wav.Encoder{}.Encode(file, clip)
//
// Encoder{PCM16: true} writes 16-bit PCM instead. Float samples are then
// quantized with pcm.FromFloat, which inverts the read scaling and clamps
// values outside (-1, 1]. When the destination is an io.WriteSeeker the
// go-audio encoder is used for 16-bit output; every other case gets a
// canonical 44-byte header followed by the data.
package wav
