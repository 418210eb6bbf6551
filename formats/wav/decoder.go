// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/untwist/audio"
	"github.com/ik5/untwist/internal/pcm"
)

// WAVE format tags.
const (
	formatPCM   = 1
	formatFloat = 3
)

type Decoder struct{}

func open(r io.Reader) (*wav.Decoder, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	// IsValidFile rejects files without samples, so headers are checked
	// by hand.
	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	switch dec.WavAudioFormat {
	case formatPCM:
		switch dec.BitDepth {
		case 16, 24, 32:
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
		}
	case formatFloat:
		if !pcm.FloatBits(int(dec.BitDepth)) {
			return nil, fmt.Errorf("%w: float %d", ErrUnsupportedBitDepth, dec.BitDepth)
		}
	default:
		return nil, ErrUnsupportedWavLayout
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	return dec, nil
}

// floatData limits reads to the data chunk of a float file.
func floatData(dec *wav.Decoder) io.Reader {
	return io.LimitReader(dec.PCMChunk.R, int64(dec.PCMChunk.Size))
}

// Decode returns a stream of samples. Integer PCM is divided by the most
// negative value of its width; float data is passed through.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := open(r)
	if err != nil {
		return nil, err
	}

	if dec.WavAudioFormat == formatFloat {
		return pcm.NewFloatSource(floatData(dec), binary.LittleEndian, int(dec.BitDepth), int(dec.SampleRate), int(dec.NumChans)), nil
	}
	return pcm.NewSource(dec, int(dec.BitDepth)), nil
}

// DecodeClip reads the whole file. 16-bit data is returned as stored,
// float data unchanged, and 24 or 32-bit PCM is scaled by pcm.Scaled.
func (Decoder) DecodeClip(r io.Reader) (*audio.Clip, error) {
	dec, err := open(r)
	if err != nil {
		return nil, err
	}

	clip := &audio.Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}

	if dec.WavAudioFormat == formatFloat {
		samples, err := pcm.ReadFloats(floatData(dec), binary.LittleEndian, int(dec.BitDepth))
		if err != nil {
			return nil, err
		}
		clip.Samples = samples[:len(samples)-len(samples)%clip.Channels]
		return clip, nil
	}

	ints, err := pcm.ReadInts(dec)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	ints = ints[:len(ints)-len(ints)%clip.Channels]

	if dec.BitDepth == 16 {
		clip.PCM16 = pcm.Int16s(ints)
	} else {
		clip.Samples = pcm.Scaled(ints, int(dec.BitDepth))
	}

	return clip, nil
}
