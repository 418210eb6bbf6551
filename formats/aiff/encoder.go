// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/untwist/audio"
	"github.com/ik5/untwist/internal/pcm"
)

// Encoder writes AIFF files.
//
// Float samples are stored exactly as given in an AIFF-C file with fl64
// sound data. With PCM16 set they are quantized by pcm.FromFloat into a
// plain 16-bit AIFF instead, as are clips holding 16-bit storage. The
// 16-bit writer needs an io.WriteSeeker because the header is patched once
// the sample count is known.
type Encoder struct {
	PCM16 bool
}

func (e Encoder) Encode(w io.Writer, c *audio.Clip) error {
	if c == nil || c.Channels <= 0 || c.SampleRate <= 0 {
		return ErrInvalidClip
	}

	if c.PCM16 == nil && !e.PCM16 {
		samples := c.Samples[:len(c.Samples)-len(c.Samples)%c.Channels]
		return writeFloat64(w, c.SampleRate, c.Channels, samples)
	}

	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return ErrNeedsSeeker
	}

	samples := c.PCM16
	if samples == nil {
		samples = pcm.FromFloats(c.Samples)
	}
	samples = samples[:len(samples)-len(samples)%c.Channels]

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

	enc := aiff.NewEncoder(ws, c.SampleRate, 16, c.Channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: c.Channels, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
