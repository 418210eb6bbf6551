// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/untwist/audio"
	"github.com/ik5/untwist/internal/pcm"
)

type Decoder struct{}

func seekable(r io.Reader) (io.ReadSeeker, error) {
	// go-audio requires io.ReadSeeker
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}
	return bytes.NewReader(data), nil
}

func open(rs io.ReadSeeker) (*aiff.Decoder, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return dec, nil
}

// Decode returns a stream of samples. Integer PCM is divided by the most
// negative value of its width; float data is passed through.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, err
	}

	fs, err := readFloat(rs)
	if err != nil {
		return nil, err
	}
	if fs != nil {
		return pcm.NewFloatSource(fs.data, binary.BigEndian, fs.bits, fs.sampleRate, fs.channels), nil
	}

	dec, err := open(rs)
	if err != nil {
		return nil, err
	}

	return pcm.NewSource(dec, int(dec.BitDepth)), nil
}

// DecodeClip reads the whole file. 16-bit data is returned as stored and
// float data unchanged.
func (Decoder) DecodeClip(r io.Reader) (*audio.Clip, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, err
	}

	fs, err := readFloat(rs)
	if err != nil {
		return nil, err
	}
	if fs != nil {
		samples, err := pcm.ReadFloats(fs.data, binary.BigEndian, fs.bits)
		if err != nil {
			return nil, err
		}
		return &audio.Clip{
			SampleRate: fs.sampleRate,
			Channels:   fs.channels,
			Samples:    samples[:len(samples)-len(samples)%fs.channels],
		}, nil
	}

	dec, err := open(rs)
	if err != nil {
		return nil, err
	}

	ints, err := pcm.ReadInts(dec)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	format := dec.Format()
	clip := &audio.Clip{SampleRate: format.SampleRate, Channels: format.NumChannels}
	ints = ints[:len(ints)-len(ints)%clip.Channels]

	if dec.BitDepth == 16 {
		clip.PCM16 = pcm.Int16s(ints)
	} else {
		clip.Samples = pcm.Scaled(ints, int(dec.BitDepth))
	}

	return clip, nil
}
