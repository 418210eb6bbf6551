// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF files using github.com/go-audio/aiff.
//
// Decoding supports integer PCM at 16, 24 or 32 bits through go-audio, and
// AIFF-C files whose sound data is fl32 or fl64. As with the wav package,
// DecodeClip keeps 16-bit samples as stored, integer samples are divided by
// the most negative value of their width and float samples are passed
// through.
//
// Encoder stores float samples bit for bit as AIFF-C fl64 and can write to
// any io.Writer. Encoder{PCM16: true} writes plain 16-bit PCM instead and
// needs an io.WriteSeeker, such as an *os.File.
package aiff
