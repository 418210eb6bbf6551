// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer 3 audio with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields 16-bit interleaved stereo at the stream's
// sample rate. DecodeClip returns those samples as stored; Decode streams
// them as float32 divided by pcm.Scale16, the same rule the clip path
// applies, so values lie in (-1, 1] with inverted polarity.
package mp3
