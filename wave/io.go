// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/untwist/audio"
	"github.com/ik5/untwist/internal/pcm"
)

// Read decodes a whole stream with dec. 16-bit PCM is divided by -32768,
// so values lie in (-1, 1] with inverted polarity; float data is kept as
// decoded.
func Read(r io.Reader, dec audio.Decoder) (*Wave, error) {
	clip, err := audio.Decode(dec, r)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	return FromClip(clip)
}

// FromClip converts decoded storage into a Wave.
func FromClip(clip *audio.Clip) (*Wave, error) {
	if clip.Channels <= 0 {
		return nil, audio.ErrNoChannels
	}
	if clip.SampleRate <= 0 {
		return nil, ErrSampleRate
	}

	samples := clip.Samples
	if clip.PCM16 != nil {
		samples = pcm.ToFloats(clip.PCM16)
	}

	return FromInterleaved(samples, clip.Channels, clip.SampleRate), nil
}

// ReadFile opens path and decodes it with the decoder registered for its
// extension.
func ReadFile(path string, reg *audio.Registry) (*Wave, error) {
	dec, err := reg.DecoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	w, err := Read(f, dec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Clip returns the interleaved samples and rate of w, unscaled.
func (w *Wave) Clip() *audio.Clip {
	return &audio.Clip{
		SampleRate: w.SampleRate(),
		Channels:   w.NumChannels(),
		Samples:    w.Interleaved(),
	}
}

// Write hands the raw samples to enc. No scaling is applied here.
func (w *Wave) Write(out io.Writer, enc audio.Encoder) error {
	if err := enc.Encode(out, w.Clip()); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	return nil
}

// WriteFile creates path and encodes w with the encoder registered for
// its extension.
func (w *Wave) WriteFile(path string, reg *audio.Registry) error {
	enc, err := reg.EncoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := w.Write(f, enc); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
