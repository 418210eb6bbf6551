// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/untwist/audio"
	"github.com/ik5/untwist/internal/pcm"
)

// Encoder writes WAV files.
//
// Float samples are stored as 64-bit IEEE floats exactly as given, so
// values outside [-1, 1] survive. With PCM16 set they are quantized to
// 16-bit PCM by pcm.FromFloat instead, the inverse of the read scaling,
// clamping anything out of range. A clip holding 16-bit storage is always
// written as 16-bit PCM.
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

	samples := c.PCM16
	if samples == nil {
		samples = pcm.FromFloats(c.Samples)
	}
	samples = samples[:len(samples)-len(samples)%c.Channels]

	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return writePCM16(w, c.SampleRate, c.Channels, samples)
	}

	enc := wav.NewEncoder(ws, c.SampleRate, 16, c.Channels, formatPCM)
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

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
