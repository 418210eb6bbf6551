// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to floats, so DecodeClip returns Samples rather than
// PCM16, and no integer rescaling is applied.
package vorbis
